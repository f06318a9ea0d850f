package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/flyscan/entity"
	"github.com/AnkushinDaniil/flyscan/entity/format"
	"github.com/AnkushinDaniil/flyscan/entity/mode"
	"github.com/AnkushinDaniil/flyscan/entity/parameters"
)

type App struct {
	Output string
	Params *parameters.Parameters
	Report io.Writer
}

func New(output string, params *parameters.Parameters) *App {
	return &App{
		Output: output,
		Params: params,
		Report: os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("App finished")
	}()
	log.WithFields(log.Fields{
		"mode":         a.Params.Mode,
		"format":       a.Params.Format,
		"output":       a.Output,
		"exposureTime": a.Params.ExposureTime,
		"readoutTime":  a.Params.ReadoutTime,
		"cameraSizeX":  a.Params.CameraSizeX,
		"angularRange": a.Params.AngularRange,
		"numberOfProj": a.Params.NumberOfProj,
		"blurBudget":   a.Params.BlurBudget,
	}).Debug("App started")

	if err := a.Params.Validate(); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}

	var report bytes.Buffer
	if err := a.writeReport(&report); err != nil {
		return err
	}
	if _, err := a.Report.Write(report.Bytes()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if a.Output == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if filepath.Ext(a.Output) != a.Params.Format.Ext() {
		log.WithFields(log.Fields{
			"output": a.Output,
			"format": a.Params.Format,
			"want":   a.Params.Format.Ext(),
		}).Warn("Output extension does not match format")
	}

	f, err := os.Create(a.Output)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if a.Params.Format == format.Text {
		if _, err := f.Write(report.Bytes()); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		log.WithField("output", a.Output).Info("Report saved")
		return nil
	}

	line, err := a.createLine(ctx)
	if err != nil {
		return fmt.Errorf("failed to create line: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	renderTime := time.Now()
	switch a.Params.Format {
	case format.HTML:
		err = a.createChart(line).Render(f)
	case format.Png:
		err = a.writePlot(f, line)
	case format.Csv:
		err = a.writeTable(f, line)
	}
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", a.Params.Format, err)
	}
	log.WithFields(log.Fields{
		"output": a.Output,
		"time":   time.Since(renderTime),
	}).Info("Sweep rendered and saved")

	return nil
}

func (a *App) writeReport(w io.Writer) error {
	p := a.Params
	switch p.Mode {
	case mode.Blur:
		est, err := entity.EstimateBlur(p.ExposureTime, p.ReadoutTime, p.CameraSizeX, p.AngularRange, p.NumberOfProj)
		if err != nil {
			return fmt.Errorf("failed to estimate blur: %w", err)
		}
		return writeBlurReport(w, p, est)
	case mode.Acquisition:
		plan, err := entity.PlanAcquisition(p.BlurBudget, p.ExposureTime, p.ReadoutTime, p.CameraSizeX, p.AngularRange, p.NumberOfProj)
		if err != nil {
			return fmt.Errorf("failed to plan acquisition: %w", err)
		}
		return writeAcquisitionReport(w, p, plan)
	case mode.Theta:
		theta, err := entity.Theta(p.AngularRange, p.NumberOfProj)
		if err != nil {
			return fmt.Errorf("failed to generate theta: %w", err)
		}
		return writeThetaReport(w, p, theta)
	default:
		return fmt.Errorf("unknown mode %v", p.Mode)
	}
}

func (a *App) createLine(ctx context.Context) (*entity.Line, error) {
	labels := axisLabels(a.Params.Mode)
	line, err := entity.NewLine(labels.series, a.Params)
	if err != nil {
		return nil, err
	}

	if a.Params.Mode == mode.Theta {
		return line, line.SetThetaSweep(ctx)
	}

	grid, err := entity.SweepGrid(a.Params.Sweep)
	if err != nil {
		return nil, err
	}
	if a.Params.Mode == mode.Acquisition {
		return line, line.SetSpeedSweep(ctx, grid)
	}
	return line, line.SetBlurSweep(ctx, grid)
}

type seriesLabels struct {
	series  string
	x, y    string
	columns [2]string
}

func axisLabels(m mode.Mode) seriesLabels {
	switch m {
	case mode.Acquisition:
		return seriesLabels{
			series:  "Rotation speed",
			x:       "Blur budget, px",
			y:       "Rotation speed, deg/s",
			columns: [2]string{"blur_budget_px", "rot_speed_deg_s"},
		}
	case mode.Theta:
		return seriesLabels{
			series:  "Theta",
			x:       "Projection",
			y:       "Theta, deg",
			columns: [2]string{"projection", "theta_deg"},
		}
	default:
		return seriesLabels{
			series:  "Blur",
			x:       "Exposure time, s",
			y:       "Blur, px",
			columns: [2]string{"exposure_time_s", "blur_px"},
		}
	}
}
