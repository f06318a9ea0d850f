package entity

import "math"

type Estimate struct {
	AngularStep  float64 // degrees
	ScanTime     float64 // seconds
	RotSpeed     float64 // degrees/second
	FrameRate    float64 // frames/second
	BlurDelta    float64 // degrees rotated during one exposure
	BlurMeasured float64 // pixels
}

// EstimateBlur computes the scan timing and the blur at the detector edge
// for a continuous rotation with the given detector timing and geometry.
func EstimateBlur(exposureTime, readoutTime, cameraSizeX, angularRange float64, numberOfProj int) (*Estimate, error) {
	if err := checkPositive("exposure time", exposureTime); err != nil {
		return nil, err
	}
	if err := checkGeometry(readoutTime, cameraSizeX, angularRange, numberOfProj); err != nil {
		return nil, err
	}

	n := float64(numberOfProj)
	scanTime := n * (exposureTime + readoutTime)
	rotSpeed := angularRange / scanTime
	frameRate := n / scanTime
	if err := checkTiming(rotSpeed, scanTime, frameRate); err != nil {
		return nil, err
	}
	blurDelta := exposureTime * rotSpeed

	// (c/2)(1 - cos d) == c sin^2(d/2)
	half := math.Sin(degToRad(blurDelta) / 2)

	return &Estimate{
		AngularStep:  angularRange / n,
		ScanTime:     scanTime,
		RotSpeed:     rotSpeed,
		FrameRate:    frameRate,
		BlurDelta:    blurDelta,
		BlurMeasured: cameraSizeX * half * half,
	}, nil
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func radToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
