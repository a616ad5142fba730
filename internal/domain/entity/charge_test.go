package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kipkemoi/tillprint-api/pkg/apperror"
)

func TestNewCharge_Valid(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		fixed  bool
	}{
		{"Fixed Fee", 10.0, true},
		{"Fixed Fee", 0.5, true},
		{"Fixed Fee", 0.0, true},
		{"Service Fee", 0.7, false},
		{"Service Fee", 1.0, false},
		{"Service Fee", 0.0, false},
	}

	for _, tt := range tests {
		c, err := NewCharge(tt.name, tt.amount, tt.fixed)
		require.NoError(t, err)
		assert.Equal(t, tt.name, c.Name)
		assert.Equal(t, tt.amount, c.Amount)
		assert.Equal(t, tt.fixed, c.Fixed)
	}
}

func TestNewCharge_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		chargeName string
		amount     float64
		fixed      bool
	}{
		{"empty name", "", 10.0, true},
		{"whitespace name", "   ", 10.0, true},
		{"name too long", "This name is way too long", 10.0, true},
		{"negative fixed amount", "Fixed Charge", -5.0, true},
		{"rate above 1", "Service Charge", 1.5, false},
		{"negative rate", "Service Charge", -0.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCharge(tt.chargeName, tt.amount, tt.fixed)
			assert.Nil(t, c)
			assert.True(t, apperror.IsValidationError(err))
		})
	}
}

func TestNewCharge_TrimsName(t *testing.T) {
	c, err := NewCharge("  Tax  ", 0.1, false)
	require.NoError(t, err)
	assert.Equal(t, "Tax", c.Name)
}

func TestNewChargeApplication_Invalid(t *testing.T) {
	charge, err := NewCharge("Tax", 0.1, false)
	require.NoError(t, err)

	tests := []struct {
		name       string
		count      int
		baseAmount float64
	}{
		{"zero count", 0, 5.0},
		{"negative count", -1, 5.0},
		{"negative base amount", 2, -5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := NewChargeApplication(charge, tt.count, tt.baseAmount, "")
			assert.Nil(t, app)
			assert.True(t, apperror.IsValidationError(err))
		})
	}
}

func TestChargeApplication_DisplayNameDefaultsToChargeName(t *testing.T) {
	charge, err := NewCharge("Tax", 0.1, false)
	require.NoError(t, err)

	app, err := NewChargeApplication(charge, 2, 58.60, "")
	require.NoError(t, err)
	assert.Equal(t, "Tax", app.DisplayName)

	named, err := NewChargeApplication(charge, 2, 58.60, "City Tax")
	require.NoError(t, err)
	assert.Equal(t, "City Tax", named.DisplayName)
}

func TestChargeApplication_TotalAmount(t *testing.T) {
	rate, err := NewCharge("Tax", 0.125, false)
	require.NoError(t, err)
	app, err := NewChargeApplication(rate, 2, 100.0, "")
	require.NoError(t, err)
	// 12.5% of 100, twice
	assert.InDelta(t, 25.0, app.TotalAmount(), 1e-9)

	fixed, err := NewCharge("Service Fee", 5.0, true)
	require.NoError(t, err)
	app, err = NewChargeApplication(fixed, 3, 5.0, "")
	require.NoError(t, err)
	// base amount is ignored for fixed charges
	assert.InDelta(t, 15.0, app.TotalAmount(), 1e-9)
}
