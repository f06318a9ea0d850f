package app

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/AnkushinDaniil/flyscan/entity"
)

func (a *App) writeTable(w io.Writer, line *entity.Line) error {
	labels := axisLabels(a.Params.Mode)
	cw := csv.NewWriter(w)
	if err := cw.Write(labels.columns[:]); err != nil {
		return err
	}
	x, y := line.X(), line.Values()
	for i := range x {
		record := []string{
			formatFloat(x[i]),
			formatFloat(y[i]),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatInt(v int) string {
	return strconv.Itoa(v)
}
