package entity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/AnkushinDaniil/flyscan/entity/parameters"
)

// Line is one named chart series evaluated from the fly-scan models.
type Line struct {
	name   string
	x      []float64
	data   []opts.LineData
	params *parameters.Parameters
}

func NewLine(name string, params *parameters.Parameters) (*Line, error) {
	if name == "" {
		return nil, errors.New("name is empty")
	}
	if params == nil {
		return nil, errors.New("parameters are nil")
	}
	return &Line{name: name, params: params}, nil
}

func (l *Line) Name() string {
	return l.name
}

func (l *Line) X() []float64 {
	return l.x
}

func (l *Line) Data() []opts.LineData {
	return l.data
}

// Values returns the y values of the series.
func (l *Line) Values() []float64 {
	values := make([]float64, len(l.data))
	for i, d := range l.data {
		values[i] = d.Value.(float64)
	}
	return values
}

// SweepGrid returns the x values described by the sweep parameters.
func SweepGrid(s parameters.Sweep) ([]float64, error) {
	if s.Steps < 2 {
		return nil, fmt.Errorf("%w: sweep needs at least 2 steps, got %d", ErrInvalidInput, s.Steps)
	}
	if err := checkFinite("sweep min", s.Min); err != nil {
		return nil, err
	}
	if err := checkFinite("sweep max", s.Max); err != nil {
		return nil, err
	}
	return floats.Span(make([]float64, s.Steps), s.Min, s.Max), nil
}

// SetBlurSweep evaluates the measured blur for every exposure time.
func (l *Line) SetBlurSweep(ctx context.Context, exposures []float64) error {
	p := l.params
	return l.sweep(ctx, exposures, func(exposure float64) (float64, error) {
		est, err := EstimateBlur(exposure, p.ReadoutTime, p.CameraSizeX, p.AngularRange, p.NumberOfProj)
		if err != nil {
			return 0, err
		}
		return est.BlurMeasured, nil
	})
}

// SetSpeedSweep evaluates the maximum rotation speed for every blur budget.
func (l *Line) SetSpeedSweep(ctx context.Context, budgets []float64) error {
	p := l.params
	return l.sweep(ctx, budgets, func(budget float64) (float64, error) {
		plan, err := PlanAcquisition(budget, p.ExposureTime, p.ReadoutTime, p.CameraSizeX, p.AngularRange, p.NumberOfProj)
		if err != nil {
			return 0, err
		}
		return plan.RotSpeed, nil
	})
}

// SetThetaSweep fills the series with the projection angles by index.
func (l *Line) SetThetaSweep(ctx context.Context) error {
	theta, err := Theta(l.params.AngularRange, l.params.NumberOfProj)
	if err != nil {
		return err
	}
	index := make([]float64, len(theta))
	for i := range index {
		index[i] = float64(i)
	}
	return l.sweep(ctx, index, func(i float64) (float64, error) {
		return theta[int(i)], nil
	})
}

func (l *Line) sweep(ctx context.Context, x []float64, eval func(float64) (float64, error)) error {
	timestamp := time.Now()
	defer func() {
		log.WithFields(log.Fields{
			"name":   l.name,
			"points": len(x),
			"time":   time.Since(timestamp),
		}).Debug("Sweep evaluated")
	}()

	data := make([]opts.LineData, 0, len(x))
	for _, v := range x {
		if err := ctx.Err(); err != nil {
			return err
		}
		y, err := eval(v)
		if err != nil {
			return fmt.Errorf("failed to evaluate %s at %v: %w", l.name, v, err)
		}
		data = append(data, opts.LineData{Value: y})
	}
	l.x = x
	l.data = data
	return nil
}
