package entity

import (
	"fmt"
	"strings"

	"github.com/kipkemoi/tillprint-api/pkg/apperror"
)

// ShopProfile is the static merchant identity printed at the top of every
// receipt, plus the surcharges the shop applies to each order (tax, service
// charge). A profile is typically built once per session and shared across
// many orders.
type ShopProfile struct {
	Name       string
	Address1   string
	Address2   string
	City       string
	State      string
	ZipCode    string
	Phone      string
	Email      string
	Surcharges []*Charge
}

// ShopProfileParams carries the inputs for NewShopProfile. Address2 and
// Email are optional; everything else is required.
type ShopProfileParams struct {
	Name     string
	Address1 string
	Address2 string
	City     string
	State    string
	ZipCode  string
	Phone    string
	Email    string
	// Surcharges are applied to every order from this shop, in order.
	Surcharges []*Charge
}

// NewShopProfile validates and creates a ShopProfile. All required fields
// must be non-empty after trimming. The surcharge slice is copied so later
// caller mutations cannot leak into the profile; the charges themselves stay
// shared.
func NewShopProfile(p ShopProfileParams) (*ShopProfile, error) {
	sp := &ShopProfile{
		Name:     strings.TrimSpace(p.Name),
		Address1: strings.TrimSpace(p.Address1),
		Address2: strings.TrimSpace(p.Address2),
		City:     strings.TrimSpace(p.City),
		State:    strings.TrimSpace(p.State),
		ZipCode:  strings.TrimSpace(p.ZipCode),
		Phone:    strings.TrimSpace(p.Phone),
		Email:    strings.TrimSpace(p.Email),
	}

	required := []struct {
		value string
		label string
	}{
		{sp.Name, "name"},
		{sp.Address1, "address"},
		{sp.City, "city"},
		{sp.State, "state"},
		{sp.ZipCode, "zip code"},
		{sp.Phone, "phone"},
	}
	for _, f := range required {
		if f.value == "" {
			return nil, apperror.NewValidationError("Shop " + f.label + " cannot be empty")
		}
	}

	if len(p.Surcharges) > 0 {
		sp.Surcharges = make([]*Charge, len(p.Surcharges))
		copy(sp.Surcharges, p.Surcharges)
	}
	return sp, nil
}

// Print48 renders the shop header lines: name, address lines, "city, state
// zip", then phone and email when present. Lines are truncated to 46
// characters and carry no padding; callers add any border padding themselves.
func (sp *ShopProfile) Print48() []string {
	lines := []string{
		truncate(sp.Name, 46),
		truncate(sp.Address1, 46),
	}
	if sp.Address2 != "" {
		lines = append(lines, truncate(sp.Address2, 46))
	}
	lines = append(lines, truncate(fmt.Sprintf("%s, %s %s", sp.City, sp.State, sp.ZipCode), 46))
	if sp.Phone != "" {
		lines = append(lines, truncate("Tel: "+sp.Phone, 46))
	}
	if sp.Email != "" {
		lines = append(lines, truncate("Email: "+sp.Email, 46))
	}
	return lines
}
