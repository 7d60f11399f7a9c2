package bsmslack

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"

	"github.com/bcdannyboy/bsmparity/models"
)

type BSMHandler struct{}

func NewBSMHandler() *BSMHandler {
	return &BSMHandler{}
}

func (h *BSMHandler) HandleCommand(data slack.SlashCommand, client *socketmode.Client) error {
	reply, err := Reply(data.Text)
	if err != nil {
		reply = fmt.Sprintf("Could not price option: %v\n\n%s", err, helpText)
	}
	_, _, err = client.PostMessage(data.ChannelID,
		slack.MsgOptionText(reply, false))
	return err
}

// ParseArgs reads "key=value" pairs into option inputs. Every input is required.
func ParseArgs(text string) (models.Params, error) {
	values := map[models.Field]string{}
	for _, arg := range strings.Fields(text) {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return models.Params{}, fmt.Errorf("expected key=value, got %q", arg)
		}
		field := models.FieldType
		if !strings.EqualFold(key, string(models.FieldType)) {
			f, err := models.ParseInputField(key)
			if err != nil {
				return models.Params{}, err
			}
			field = f
		}
		values[field] = value
	}

	var missing []string
	for _, f := range append([]models.Field{models.FieldType}, models.InputFields...) {
		if _, ok := values[f]; !ok {
			missing = append(missing, string(f))
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return models.Params{}, fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}

	optionType, err := models.ParseOptionType(values[models.FieldType])
	if err != nil {
		return models.Params{}, err
	}
	p := models.Params{Type: optionType}
	targets := map[models.Field]*float64{
		models.FieldStrike:         &p.Strike,
		models.FieldDividend:       &p.Dividend,
		models.FieldVolatility:     &p.Volatility,
		models.FieldStockPrice:     &p.StockPrice,
		models.FieldInterestRate:   &p.InterestRate,
		models.FieldTimeToMaturity: &p.TimeToMaturity,
	}
	for f, dst := range targets {
		v, err := strconv.ParseFloat(values[f], 64)
		if err != nil {
			return models.Params{}, fmt.Errorf("%s: %w", f, err)
		}
		*dst = v
	}
	return p, nil
}

// Reply prices the option described by text together with its parity
// counterpart and renders both as a table.
func Reply(text string) (string, error) {
	p, err := ParseArgs(text)
	if err != nil {
		return "", err
	}
	option, err := models.NewOption(p)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("```\n")
	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"", "d1", "d2", "price", "delta", "gamma", "vega", "theta"})
	for _, g := range []models.Greeks{option.Greeks(), option.Parity().Greeks()} {
		table.Append([]string{
			string(g.Type),
			formatFloat(g.D1), formatFloat(g.D2), formatFloat(g.Price), formatFloat(g.Delta),
			formatFloat(g.Gamma), formatFloat(g.Vega), formatFloat(g.Theta),
		})
	}
	table.Render()
	b.WriteString("```")
	return b.String(), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
