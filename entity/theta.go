package entity

import "gonum.org/v1/gonum/floats"

// Theta returns numberOfProj projection angles in degrees, equally spaced
// from 0 to angularRange inclusive.
func Theta(angularRange float64, numberOfProj int) ([]float64, error) {
	if err := checkPositive("angular range", angularRange); err != nil {
		return nil, err
	}
	if err := checkProjections(numberOfProj); err != nil {
		return nil, err
	}
	if numberOfProj == 1 {
		return []float64{0}, nil
	}
	return floats.Span(make([]float64, numberOfProj), 0, angularRange), nil
}
