package server

import (
	"errors"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/xhhuango/json"

	"github.com/bcdannyboy/bsmparity/charts"
	"github.com/bcdannyboy/bsmparity/models"
)

type PriceResponse struct {
	Params models.Params `json:"params"`
	Option models.Greeks `json:"option"`
	Parity models.Greeks `json:"parity"`
}

type SweepOption struct {
	models.Params
	WithParity bool `json:"with_parity"`
}

type SweepRequestDTO struct {
	Options  []SweepOption `json:"options"`
	XAxis    string        `json:"x_axis"`
	YAxis    string        `json:"y_axis"`
	XStart   float64       `json:"x_start"`
	XEnd     float64       `json:"x_end"`
	XSamples int           `json:"x_samples"`
}

type SeriesDTO struct {
	Name string            `json:"name"`
	Type models.OptionType `json:"type"`
	Y    []float64         `json:"y"`
}

type SweepResponse struct {
	XAxis    models.Field `json:"x_axis"`
	YAxis    models.Field `json:"y_axis"`
	Inverted bool         `json:"inverted"`
	X        []float64    `json:"x"`
	Series   []SeriesDTO  `json:"series"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON uses a NaN-aware encoder: outputs at zero spot or expiry are NaN.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var reqErr *requestError
	if errors.Is(err, models.ErrInvalidInput) || errors.As(err, &reqErr) {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

type requestError struct {
	msg string
}

func (e *requestError) Error() string { return e.msg }

func badRequest(format string, args ...interface{}) error {
	return &requestError{msg: fmt.Sprintf(format, args...)}
}

func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) PriceHandler(w http.ResponseWriter, r *http.Request) {
	var params models.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, decodeError(err))
		return
	}

	option, err := models.NewOption(params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PriceResponse{
		Params: option.Params(),
		Option: option.Greeks(),
		Parity: option.Parity().Greeks(),
	})
}

func (s *Server) SweepHandler(w http.ResponseWriter, r *http.Request) {
	var req SweepRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, decodeError(err))
		return
	}
	if len(req.Options) == 0 {
		writeError(w, badRequest("no options supplied"))
		return
	}
	if req.XSamples < 1 || req.XSamples > MaxSamples {
		writeError(w, badRequest("x_samples must be between 1 and %d", MaxSamples))
		return
	}

	var options []*models.Option
	for i, o := range req.Options {
		option, err := models.NewOption(o.Params)
		if err != nil {
			writeError(w, fmt.Errorf("option %d: %w", i+1, err))
			return
		}
		options = append(options, option)
		if o.WithParity {
			options = append(options, option.Parity())
		}
	}

	result, err := charts.Sweep(charts.SweepRequest{
		Options: options,
		XAxis:   req.XAxis,
		YAxis:   req.YAxis,
		Start:   req.XStart,
		End:     req.XEnd,
		Samples: req.XSamples,
	})
	if err != nil {
		if !errors.Is(err, models.ErrInvalidInput) {
			err = badRequest("%v", err)
		}
		writeError(w, err)
		return
	}

	resp := SweepResponse{
		XAxis:    result.XAxis,
		YAxis:    result.YAxis,
		Inverted: result.Inverted,
		X:        result.X,
	}
	for _, series := range result.Series {
		resp.Series = append(resp.Series, SeriesDTO{Name: series.Name, Type: series.Type, Y: series.Y})
	}
	writeJSON(w, http.StatusOK, resp)
}

func decodeError(err error) error {
	if errors.Is(err, models.ErrInvalidInput) {
		return err
	}
	return badRequest("invalid request body: %v", err)
}
