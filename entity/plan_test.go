package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestPlanAcquisition(t *testing.T) {
	t.Parallel()

	plan, err := PlanAcquisition(0.1, 0.1, 0, 2048, 180, 180)
	require.NoError(t, err)

	assert.InDelta(t, 0.8007393778683, plan.DeltaBlur, 1e-9)
	assert.InDelta(t, 8.007393778683, plan.RotSpeed, 1e-9)
	assert.InDelta(t, 22.4792241989132, plan.ScanTime, 1e-9)
	assert.InDelta(t, 8.007393778683, plan.FrameRate, 1e-9)
	assert.False(t, math.IsInf(plan.RotSpeed, 0) || math.IsNaN(plan.RotSpeed))
	assert.Positive(t, plan.FrameRate)
	assert.False(t, plan.StepScan())
}

func TestPlanAcquisitionMatchesArccosForm(t *testing.T) {
	t.Parallel()

	for _, budget := range []float64{0.01, 0.5, 3, 100, 1000} {
		plan, err := PlanAcquisition(budget, 0.2, 0.05, 2048, 180, 900)
		require.NoError(t, err)

		want := math.Acos((1024-budget)/1024) * 180 / math.Pi
		assert.InEpsilon(t, want, plan.DeltaBlur, 1e-9, "budget %v", budget)
	}
}

func TestPlanAcquisitionRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                                   string
		exposure, readout, camera, angularRange float64
		proj                                   int
	}{
		{"reference scan", 0.4, 0.1, 2048, 180, 1500},
		{"fast scan", 0.001, 0.0002, 2560, 180, 1800},
		{"full turn", 0.05, 0, 1024, 360, 3600},
		{"coarse scan", 1.5, 0.3, 4096, 180, 90},
		{"no readout", 0.1, 0, 2048, 180, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est, err := EstimateBlur(tt.exposure, tt.readout, tt.camera, tt.angularRange, tt.proj)
			require.NoError(t, err)

			plan, err := PlanAcquisition(est.BlurMeasured, tt.exposure, tt.readout, tt.camera, tt.angularRange, tt.proj)
			require.NoError(t, err)

			assert.True(t, scalar.EqualWithinRel(est.RotSpeed, plan.RotSpeed, 1e-9),
				"rot speed %v != %v", est.RotSpeed, plan.RotSpeed)
			if tt.readout == 0 {
				assert.True(t, scalar.EqualWithinRel(est.ScanTime, plan.ScanTime, 1e-9))
				assert.True(t, scalar.EqualWithinRel(est.FrameRate, plan.FrameRate, 1e-9))
			}
		})
	}
}

func TestPlanAcquisitionZeroBudget(t *testing.T) {
	t.Parallel()

	plan, err := PlanAcquisition(0, 0.4, 0.1, 2048, 180, 1500)
	require.NoError(t, err)

	assert.True(t, plan.StepScan())
	assert.Zero(t, plan.RotSpeed)
	assert.Zero(t, plan.FrameRate)
	assert.Zero(t, plan.DeltaBlur)
	assert.True(t, math.IsInf(plan.ScanTime, 1))
}

func TestPlanAcquisitionDomainError(t *testing.T) {
	t.Parallel()

	for _, budget := range []float64{1024, 1024.5, 5000, -0.1, math.NaN()} {
		plan, err := PlanAcquisition(budget, 0.4, 0.1, 2048, 180, 1500)
		require.ErrorIs(t, err, ErrInvalidInput, "budget %v", budget)
		assert.Nil(t, plan)
	}
}

func TestPlanAcquisitionDegenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		budget   float64
		exposure float64
		camera   float64
		angular  float64
	}{
		{"zero exposure", 0.1, 0, 2048, 180},
		{"subnormal exposure", 0.1, 5e-324, 2048, 180},
		{"budget underflows", 5e-324, 0.1, 2048, 180},
		{"scan time underflows", 0.1, 0.1, 2048, 5e-324},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := PlanAcquisition(tt.budget, tt.exposure, 0, tt.camera, tt.angular, 180)
			require.ErrorIs(t, err, ErrDegenerate)
			assert.NotErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, plan)
		})
	}
}

func TestPlanAcquisitionInvalidGeometry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                                   string
		exposure, readout, camera, angularRange float64
		proj                                   int
	}{
		{"negative exposure", -0.1, 0.1, 2048, 180, 1500},
		{"negative readout", 0.1, -1, 2048, 180, 1500},
		{"zero camera", 0.1, 0.1, 0, 180, 1500},
		{"zero range", 0.1, 0.1, 2048, 0, 1500},
		{"zero projections", 0.1, 0.1, 2048, 180, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanAcquisition(0.1, tt.exposure, tt.readout, tt.camera, tt.angularRange, tt.proj)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
