package entity

import (
	"fmt"
	"strings"

	"github.com/kipkemoi/tillprint-api/pkg/apperror"
	"github.com/kipkemoi/tillprint-api/pkg/textwrap"
)

const (
	noteMaxWidth = 48
	noteMaxLines = 3
)

// Order aggregates a shop profile, the purchased line items and any
// order-specific extra charges. All monetary totals are computed exactly once
// at construction and never recomputed: an Order is a value object, not a
// live aggregate, so concurrent reads need no coordination.
type Order struct {
	OrderID      string
	Currency     string
	Shop         *ShopProfile
	Items        []*LineItem
	Extras       []*ChargeApplication
	Surcharges   []*ChargeApplication
	CustomerName string
	Notes        []string

	SubTotal           float64
	ExtrasSubTotal     float64
	SurchargesSubTotal float64
	Total              float64
}

// OrderParams carries the inputs for NewOrder. Extras are charges applied to
// this order only; the shop's surcharges apply automatically.
type OrderParams struct {
	OrderID      string
	Shop         *ShopProfile
	Items        []*LineItem
	Extras       []*Charge
	Currency     string
	CustomerName string
	Notes        string
}

// NewOrder validates and creates an Order.
//
// The order id must be 1-12 characters after trimming, and the order must
// contain at least one line item or one extra charge. Rate charges (extras
// and shop surcharges alike) are applied against the item subtotal. The
// customer name defaults to "Customer {orderID}" and is capped at 32
// characters; free-form notes are wrapped to at most 3 lines of 48 columns.
func NewOrder(p OrderParams) (*Order, error) {
	orderID := strings.TrimSpace(p.OrderID)
	if orderID == "" || len(orderID) > 12 {
		return nil, apperror.NewValidationError("Order ID must be 1-12 characters")
	}
	if len(p.Items) == 0 && len(p.Extras) == 0 {
		return nil, apperror.NewValidationError(fmt.Sprintf("Order %s must contain at least one item or extra charge", orderID))
	}

	o := &Order{
		OrderID:  orderID,
		Currency: p.Currency,
		Shop:     p.Shop,
	}
	if len(p.Items) > 0 {
		o.Items = make([]*LineItem, len(p.Items))
		copy(o.Items, p.Items)
	}

	for _, item := range o.Items {
		o.SubTotal += item.TotalPrice()
	}

	var err error
	if o.Extras, err = applyCharges(p.Extras, o.SubTotal); err != nil {
		return nil, err
	}
	for _, app := range o.Extras {
		o.ExtrasSubTotal += app.TotalAmount()
	}

	if o.Surcharges, err = applyCharges(p.Shop.Surcharges, o.SubTotal); err != nil {
		return nil, err
	}
	for _, app := range o.Surcharges {
		o.SurchargesSubTotal += app.TotalAmount()
	}

	o.Total = o.SubTotal + o.ExtrasSubTotal + o.SurchargesSubTotal

	o.CustomerName = strings.TrimSpace(p.CustomerName)
	if o.CustomerName == "" {
		o.CustomerName = "Customer " + orderID
	} else {
		o.CustomerName = truncate(o.CustomerName, 32)
	}

	o.Notes = textwrap.Split(p.Notes, noteMaxWidth, noteMaxLines)
	return o, nil
}

// applyCharges builds one ChargeApplication per charge, each with count 1
// and the order subtotal as the rate base.
func applyCharges(charges []*Charge, subTotal float64) ([]*ChargeApplication, error) {
	if len(charges) == 0 {
		return nil, nil
	}
	apps := make([]*ChargeApplication, 0, len(charges))
	for _, c := range charges {
		app, err := NewChargeApplication(c, 1, subTotal, "")
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, nil
}

// Print48 renders each line item in order, then the summary line:
// "TOTAL" right-justified to column 42, a space, the grouped total, and a
// trailing space.
func (o *Order) Print48() []string {
	var lines []string
	for _, item := range o.Items {
		lines = append(lines, item.Print48()...)
	}
	lines = append(lines, fmt.Sprintf("%42s %s ", "TOTAL", formatAmount(o.Total, 6)))
	return lines
}
