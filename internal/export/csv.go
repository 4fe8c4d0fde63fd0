package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/nmrsim/internal/nmr"
)

// WriteCSV writes the combined scenario table: one time column, one
// amplitude column per scenario, in scenario order.
func WriteCSV(w io.Writer, curves nmr.ScenarioCurves) error {
	if len(curves) == 0 {
		return fmt.Errorf("export: no curves")
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"time_ms"}
	for _, sc := range curves {
		header = append(header, sc.Label)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, s := range curves[0].Curve {
		row := []string{strconv.FormatFloat(float64(s.Time), 'f', 6, 64)}
		for _, sc := range curves {
			row = append(row, strconv.FormatFloat(sc.Curve[i].Amplitude, 'f', 6, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
