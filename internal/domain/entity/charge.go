package entity

import (
	"fmt"
	"strings"

	"github.com/kipkemoi/tillprint-api/pkg/apperror"
)

// Charge is a named additional charge on a receipt, such as tax or a service
// fee. A fixed charge is a flat amount (5.00 for $5.00); a rate charge is a
// fraction applied to a base amount (0.125 for 12.5%). Charges are immutable
// and freely shared: a shop's surcharge list is referenced by every order it
// produces, never copied.
type Charge struct {
	Name   string
	Amount float64
	Fixed  bool
}

// NewCharge validates and creates a Charge. The name must be 1-15 characters
// after trimming; a fixed amount must be non-negative and a rate must lie in
// [0, 1].
func NewCharge(name string, amount float64, fixed bool) (*Charge, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 15 {
		return nil, apperror.NewValidationError("Charge name must be 1-15 characters")
	}
	if fixed {
		if amount < 0 {
			return nil, apperror.NewValidationError("Fixed charge must not be negative")
		}
	} else if amount < 0.0 || amount > 1.0 {
		return nil, apperror.NewValidationError("Rate charge must be between 0 and 1")
	}
	return &Charge{Name: name, Amount: amount, Fixed: fixed}, nil
}

// ChargeApplication binds a Charge to a count and a base amount. Orders build
// one per extra charge and one per shop surcharge at construction time; the
// application is never mutated afterwards.
type ChargeApplication struct {
	Charge      *Charge
	Count       int
	BaseAmount  float64
	DisplayName string
}

// NewChargeApplication validates and creates a ChargeApplication. displayName
// defaults to the charge's own name when empty.
func NewChargeApplication(charge *Charge, count int, baseAmount float64, displayName string) (*ChargeApplication, error) {
	if count <= 0 {
		return nil, apperror.NewValidationError(fmt.Sprintf("%s - Count must be greater than 0", charge.Name))
	}
	if baseAmount < 0 {
		return nil, apperror.NewValidationError(fmt.Sprintf("%s - Base amount must be greater than or equal to 0", charge.Name))
	}
	if displayName == "" {
		displayName = charge.Name
	}
	return &ChargeApplication{
		Charge:      charge,
		Count:       count,
		BaseAmount:  baseAmount,
		DisplayName: displayName,
	}, nil
}

// TotalAmount is a pure function of the application's inputs: count times the
// charge amount for fixed charges, scaled by the base amount for rates. No
// rounding happens here; amounts round only at render time.
func (a *ChargeApplication) TotalAmount() float64 {
	if a.Charge.Fixed {
		return float64(a.Count) * a.Charge.Amount
	}
	return float64(a.Count) * a.Charge.Amount * a.BaseAmount
}
