package app

import (
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/AnkushinDaniil/flyscan/entity"
)

func (a *App) writePlot(w io.Writer, line *entity.Line) error {
	labels := axisLabels(a.Params.Mode)

	p := plot.New()
	p.Title.Text = "Fly scan " + a.Params.Mode.String()
	p.X.Label.Text = labels.x
	p.Y.Label.Text = labels.y
	p.Add(plotter.NewGrid())

	x, y := line.X(), line.Values()
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.Width = vg.Points(1)
	l.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	p.Add(l)
	p.Legend.Add(line.Name(), l)
	p.Legend.Top = true

	wt, err := p.WriterTo(10*vg.Inch, 5*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
