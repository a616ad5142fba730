package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kipkemoi/tillprint-api/pkg/apperror"
)

func validShopParams() ShopProfileParams {
	return ShopProfileParams{
		Name:     "My Shop",
		Address1: "123 Main St",
		City:     "Colombo",
		State:    "Western",
		ZipCode:  "12345",
		Phone:    "0123456780",
	}
}

func TestNewShopProfile_Valid(t *testing.T) {
	sp, err := NewShopProfile(validShopParams())
	require.NoError(t, err)
	assert.Equal(t, "My Shop", sp.Name)
	assert.Empty(t, sp.Surcharges)

	p := validShopParams()
	p.Address2 = "Suite 100"
	p.Email = "myshop@example.com"
	sp, err = NewShopProfile(p)
	require.NoError(t, err)
	assert.Equal(t, "Suite 100", sp.Address2)
	assert.Equal(t, "myshop@example.com", sp.Email)
}

func TestNewShopProfile_RequiredFields(t *testing.T) {
	mutations := map[string]func(*ShopProfileParams){
		"empty name":     func(p *ShopProfileParams) { p.Name = "" },
		"empty address":  func(p *ShopProfileParams) { p.Address1 = "" },
		"empty city":     func(p *ShopProfileParams) { p.City = "" },
		"empty state":    func(p *ShopProfileParams) { p.State = "" },
		"empty zip code": func(p *ShopProfileParams) { p.ZipCode = "" },
		"empty phone":    func(p *ShopProfileParams) { p.Phone = "" },
		"blank name":     func(p *ShopProfileParams) { p.Name = "   " },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			p := validShopParams()
			mutate(&p)
			sp, err := NewShopProfile(p)
			assert.Nil(t, sp)
			assert.True(t, apperror.IsValidationError(err))
		})
	}
}

func TestNewShopProfile_CopiesSurchargeSlice(t *testing.T) {
	tax, err := NewCharge("Tax", 0.15, false)
	require.NoError(t, err)

	surcharges := []*Charge{tax}
	p := validShopParams()
	p.Surcharges = surcharges
	sp, err := NewShopProfile(p)
	require.NoError(t, err)

	// mutating the caller's slice must not reach the profile
	surcharges[0] = nil
	require.Len(t, sp.Surcharges, 1)
	assert.Equal(t, "Tax", sp.Surcharges[0].Name)
}

func TestShopProfile_Print48(t *testing.T) {
	p := validShopParams()
	p.Name = "My Cool Shop"
	sp, err := NewShopProfile(p)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"My Cool Shop",
		"123 Main St",
		"Colombo, Western 12345",
		"Tel: 0123456780",
	}, sp.Print48())

	p = validShopParams()
	p.Address2 = "Suite 100"
	p.City = "Austin"
	p.State = "TX"
	p.ZipCode = "78729"
	p.Email = "myshop@example.com"
	sp, err = NewShopProfile(p)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"My Shop",
		"123 Main St",
		"Suite 100",
		"Austin, TX 78729",
		"Tel: 0123456780",
		"Email: myshop@example.com",
	}, sp.Print48())
}

func TestShopProfile_Print48_TruncatesTo46(t *testing.T) {
	sp, err := NewShopProfile(ShopProfileParams{
		Name:     "My Very Long Shop Name That Exceeds 48 Characters",
		Address1: "123 Main St That Also Exceeds Forty Eight Characters In Length",
		City:     "New York With A Very Long Name That Exceeds Forty Eight Characters",
		State:    "Western With A Very Long Name That Exceeds Forty Eight Characters",
		ZipCode:  "12345 With A Very Long Zip Code That Exceeds Forty Eight Characters",
		Phone:    "0123456780",
	})
	require.NoError(t, err)

	lines := sp.Print48()
	assert.Equal(t, []string{
		"My Very Long Shop Name That Exceeds 48 Charact",
		"123 Main St That Also Exceeds Forty Eight Char",
		"New York With A Very Long Name That Exceeds Fo",
		"Tel: 0123456780",
	}, lines)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 46)
	}
}
