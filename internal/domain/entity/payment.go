package entity

import (
	"fmt"
	"strings"

	"github.com/kipkemoi/tillprint-api/pkg/apperror"
)

// PaymentMethods lists the methods a till normally offers. The list is
// advisory: any method string of 1-12 characters is accepted, so a new
// wallet does not require a code change.
var PaymentMethods = []string{
	"Cash",
	"CreditCard",
	"DebitCard",
	"ApplePay",
	"GooglePay",
	"Check",
	"PayPal",
	"Venmo",
	"Other",
}

// IsKnownMethod reports whether method is one of the standard PaymentMethods.
func IsKnownMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// Payment records one tendered amount.
type Payment struct {
	Amount float64
	Method string
}

// NewPayment validates and creates a Payment. The method must be 1-12
// characters after trimming and the amount non-negative.
func NewPayment(amount float64, method string) (*Payment, error) {
	method = strings.TrimSpace(method)
	if method == "" || len(method) > 12 {
		return nil, apperror.NewValidationError("Payment method must be 1-12 characters")
	}
	if amount < 0 {
		return nil, apperror.NewValidationError("Payment amount must be greater than or equal to 0")
	}
	return &Payment{Amount: amount, Method: method}, nil
}

// OrderPayment settles an Order with an ordered list of Payments. Partial
// payment is not representable: construction fails unless the payments cover
// the order total, and the surplus becomes Change.
type OrderPayment struct {
	Order    *Order
	Payments []*Payment
	Change   float64
}

// NewOrderPayment validates and creates an OrderPayment.
func NewOrderPayment(order *Order, payments []*Payment) (*OrderPayment, error) {
	op := &OrderPayment{Order: order}
	if len(payments) > 0 {
		op.Payments = make([]*Payment, len(payments))
		copy(op.Payments, payments)
	}

	totalPaid := op.TotalPaid()
	if totalPaid < order.Total {
		return nil, apperror.NewValidationError(
			fmt.Sprintf("Order %s - Total payment must be >= order total (%.2f)", order.OrderID, order.Total))
	}
	op.Change = totalPaid - order.Total
	return op, nil
}

// TotalPaid sums the tendered amounts.
func (op *OrderPayment) TotalPaid() float64 {
	var total float64
	for _, p := range op.Payments {
		total += p.Amount
	}
	return total
}

// Print48 renders one 48-column line per payment (method on the left, the
// grouped amount right-justified), then a Change line.
func (op *OrderPayment) Print48() []string {
	lines := make([]string, 0, len(op.Payments)+1)
	for _, p := range op.Payments {
		lines = append(lines, settlementLine(p.Method, p.Amount))
	}
	lines = append(lines, settlementLine("Change", op.Change))
	return lines
}

// settlementLine lays out a label and amount inside the 48-column frame:
// leading space, label, right-justified amount, trailing space. The gap
// never drops below one space, so oversized amounts grow the line instead of
// colliding with the label.
func settlementLine(label string, amount float64) string {
	amountStr := formatAmount(amount, 6)
	gap := 46 - len(label) - len(amountStr)
	if gap < 1 {
		gap = 1
	}
	return " " + label + strings.Repeat(" ", gap) + amountStr + " "
}
