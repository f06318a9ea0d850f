package app

import (
	"fmt"
	"io"

	"github.com/AnkushinDaniil/flyscan/entity"
	"github.com/AnkushinDaniil/flyscan/entity/parameters"
)

const separator = "*************************************"

// reportWriter keeps the first write error so the report can be written
// line by line.
type reportWriter struct {
	w   io.Writer
	err error
}

func (r *reportWriter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format+"\n", args...)
}

func (r *reportWriter) inputs(p *parameters.Parameters) {
	r.printf(separator)
	r.printf("Total # of proj: %d", p.NumberOfProj)
	r.printf("Exposure Time: %v s", p.ExposureTime)
	r.printf("Readout Time: %v s", p.ReadoutTime)
	r.printf("Angular Range: %v degrees", p.AngularRange)
	r.printf("Camera X size: %v", p.CameraSizeX)
}

func writeBlurReport(w io.Writer, p *parameters.Parameters, est *entity.Estimate) error {
	r := &reportWriter{w: w}
	r.inputs(p)
	r.printf(separator)
	r.printf("Angular Step: %v degrees", est.AngularStep)
	r.printf("Scan Time: %v s", est.ScanTime)
	r.printf("Rot Speed: %v degrees/s", est.RotSpeed)
	r.printf("Frame Rate: %v fps", est.FrameRate)
	r.printf("Blur: %v pixels", est.BlurMeasured)
	r.printf(separator)
	return r.err
}

func writeAcquisitionReport(w io.Writer, p *parameters.Parameters, plan *entity.Plan) error {
	r := &reportWriter{w: w}
	r.inputs(p)
	r.printf("Blur Error: %v pixels", plan.BlurBudget)
	r.printf(separator)
	r.printf("Rot Speed: %v degrees/s", plan.RotSpeed)
	if plan.StepScan() {
		r.printf("Scan Time: step scan, the stage stops during each exposure")
	} else {
		r.printf("Scan Time: %v s", plan.ScanTime)
	}
	r.printf("Frame Rate: %v fps", plan.FrameRate)
	r.printf(separator)
	return r.err
}

func writeThetaReport(w io.Writer, p *parameters.Parameters, theta []float64) error {
	r := &reportWriter{w: w}
	r.printf(separator)
	r.printf("Total # of proj: %d", p.NumberOfProj)
	r.printf("Angular Range: %v degrees", p.AngularRange)
	r.printf(separator)
	r.printf("First Angle: %v degrees", theta[0])
	r.printf("Last Angle: %v degrees", theta[len(theta)-1])
	if len(theta) > 1 {
		r.printf("Angular Step: %v degrees", theta[1]-theta[0])
	}
	r.printf(separator)
	return r.err
}
