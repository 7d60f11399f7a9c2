package charts

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/bcdannyboy/bsmparity/models"
)

type SampleRow struct {
	Series string            `csv:"series"`
	Type   models.OptionType `csv:"type"`
	X      float64           `csv:"x"`
	Y      float64           `csv:"y"`
}

// Rows flattens a sweep into one row per series and sample.
func (r *SweepResult) Rows() []*SampleRow {
	rows := make([]*SampleRow, 0, len(r.Series)*len(r.X))
	for _, s := range r.Series {
		for i, x := range r.X {
			rows = append(rows, &SampleRow{Series: s.Name, Type: s.Type, X: x, Y: s.Y[i]})
		}
	}
	return rows
}

func WriteCSV(result *SweepResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	rows := result.Rows()
	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error marshalling file: %w", err)
	}
	return nil
}
