package parameters

import (
	"errors"
	"fmt"

	"github.com/AnkushinDaniil/flyscan/entity/format"
	"github.com/AnkushinDaniil/flyscan/entity/mode"
)

// Sweep is the x range of a chart: exposure times in blur mode, blur
// budgets in acquisition mode. Theta mode ignores it.
type Sweep struct {
	Min   float64
	Max   float64
	Steps int
}

type Parameters struct {
	Mode         mode.Mode
	Format       format.Format
	ExposureTime float64 // seconds
	ReadoutTime  float64 // seconds
	CameraSizeX  float64 // pixels
	AngularRange float64 // degrees
	NumberOfProj int
	BlurBudget   float64 // pixels, acquisition mode only
	Sweep        Sweep
}

// Validate checks the combination of mode and format. The physical
// quantities are checked by the models themselves.
func (p *Parameters) Validate() error {
	switch p.Mode {
	case mode.Blur, mode.Acquisition, mode.Theta:
	default:
		return fmt.Errorf("unknown mode %v", p.Mode)
	}
	switch p.Format {
	case format.Text, format.HTML, format.Png, format.Csv:
	default:
		return fmt.Errorf("unknown format %v", p.Format)
	}
	if p.Mode == mode.Theta || p.Format == format.Text {
		return nil
	}
	if p.Sweep.Steps < 2 {
		return fmt.Errorf("sweep needs at least 2 steps, got %d", p.Sweep.Steps)
	}
	if p.Sweep.Min < 0 || p.Sweep.Max <= p.Sweep.Min {
		return errors.New("sweep range must satisfy 0 <= min < max")
	}
	return nil
}
