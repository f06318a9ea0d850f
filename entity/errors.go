package entity

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrDegenerate   = errors.New("numeric degenerate")
)

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidInput, name, v)
	}
	return nil
}

func checkPositive(name string, v float64) error {
	if err := checkFinite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidInput, name, v)
	}
	return nil
}

func checkNonNegative(name string, v float64) error {
	if err := checkFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidInput, name, v)
	}
	return nil
}

func checkProjections(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: number of projections must be positive, got %d", ErrInvalidInput, n)
	}
	return nil
}

func checkGeometry(readoutTime, cameraSizeX, angularRange float64, numberOfProj int) error {
	if err := checkNonNegative("readout time", readoutTime); err != nil {
		return err
	}
	if err := checkPositive("camera size x", cameraSizeX); err != nil {
		return err
	}
	if err := checkPositive("angular range", angularRange); err != nil {
		return err
	}
	return checkProjections(numberOfProj)
}

// checkTiming rejects timings that overflowed or underflowed for finite
// inputs.
func checkTiming(rotSpeed, scanTime, frameRate float64) error {
	quantities := []struct {
		name  string
		value float64
	}{
		{"rotation speed", rotSpeed},
		{"scan time", scanTime},
		{"frame rate", frameRate},
	}
	for _, q := range quantities {
		if math.IsNaN(q.value) || math.IsInf(q.value, 0) || q.value == 0 {
			return fmt.Errorf("%w: %s evaluates to %v", ErrDegenerate, q.name, q.value)
		}
	}
	return nil
}
