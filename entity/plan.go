package entity

import (
	"fmt"
	"math"
)

type Plan struct {
	BlurBudget float64 // pixels
	DeltaBlur  float64 // degrees
	RotSpeed   float64 // degrees/second
	ScanTime   float64 // seconds, +Inf for a step scan
	FrameRate  float64 // frames/second
}

func (p *Plan) StepScan() bool {
	return p.RotSpeed == 0
}

// PlanAcquisition returns the fastest rotation keeping the edge blur within
// blurBudget, which must lie in [0, c/2). A zero budget is a step scan.
func PlanAcquisition(blurBudget, exposureTime, readoutTime, cameraSizeX, angularRange float64, numberOfProj int) (*Plan, error) {
	if err := checkNonNegative("exposure time", exposureTime); err != nil {
		return nil, err
	}
	if err := checkGeometry(readoutTime, cameraSizeX, angularRange, numberOfProj); err != nil {
		return nil, err
	}
	if err := checkNonNegative("blur budget", blurBudget); err != nil {
		return nil, err
	}
	if blurBudget >= cameraSizeX/2 {
		return nil, fmt.Errorf("%w: blur budget %v px must be below half the camera width (%v px)",
			ErrInvalidInput, blurBudget, cameraSizeX/2)
	}
	if exposureTime == 0 {
		return nil, fmt.Errorf("%w: exposure time is zero", ErrDegenerate)
	}

	if blurBudget == 0 {
		return &Plan{ScanTime: math.Inf(1)}, nil
	}

	// acos((c/2 - b)/(c/2)) == 2 asin(sqrt(b/c))
	deltaBlur := radToDeg(2 * math.Asin(math.Sqrt(blurBudget/cameraSizeX)))
	rotSpeed := deltaBlur / exposureTime
	scanTime := angularRange / rotSpeed
	frameRate := float64(numberOfProj) / scanTime
	if err := checkTiming(rotSpeed, scanTime, frameRate); err != nil {
		return nil, err
	}

	return &Plan{
		BlurBudget: blurBudget,
		DeltaBlur:  deltaBlur,
		RotSpeed:   rotSpeed,
		ScanTime:   scanTime,
		FrameRate:  frameRate,
	}, nil
}
