package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlendedMonthlyPayment_Formula(t *testing.T) {
	m1, d1 := 700.0, 120.0
	M2, r2, d2 := 200000.0, 0.0036667, 300.0

	expected := (M2 + m1/AnnuityFactor(d1, r2)) * AnnuityFactor(d2, r2)
	assert.Equal(t, expected, BlendedMonthlyPayment(m1, d1, M2, r2, d2))
}

func TestBlendedMonthlyPayment_NoShortTrancheIsTheLongPayment(t *testing.T) {
	assert.InDelta(t,
		MonthlyPayment(300000, 300, 0.0036667),
		BlendedMonthlyPayment(0, 120, 300000, 0.0036667, 300),
		1e-9)
}

func TestBlendedMonthlyPayment_SameDurationFoldsBack(t *testing.T) {
	// Discounting and re-amortizing over the same duration cancels out.
	r := 0.003
	assert.InDelta(t, 500.0+MonthlyPayment(1000, 180, r), BlendedMonthlyPayment(500, 180, 1000, r, 180), 1e-9)
}
