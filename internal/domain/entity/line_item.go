package entity

import (
	"fmt"

	"github.com/kipkemoi/tillprint-api/pkg/apperror"
)

// LineItem is one purchasable product line on a receipt.
type LineItem struct {
	Name  string
	Price float64
	Count int
	Note  string
}

// NewLineItem validates and creates a LineItem. Price must be non-negative
// and count positive; name and note are free text.
func NewLineItem(name string, price float64, count int, note string) (*LineItem, error) {
	if price < 0 {
		return nil, apperror.NewValidationError(fmt.Sprintf("%s - Price must be greater than or equal to 0", name))
	}
	if count <= 0 {
		return nil, apperror.NewValidationError(fmt.Sprintf("%s - Count must be greater than 0", name))
	}
	return &LineItem{Name: name, Price: price, Count: count, Note: note}, nil
}

// TotalPrice returns price times count, unrounded.
func (li *LineItem) TotalPrice() float64 {
	return li.Price * float64(li.Count)
}

// Print48 renders the item as one 48-column line, plus a note line when a
// note is present:
//
//	" Milk                         1  150.00  150.00 "
//
// Layout, left to right: leading space, name field, space, 2+ char count,
// two spaces, price, two spaces, total, trailing space. The numeric fields
// are grouped two-decimal currency right-justified to at least 6 characters
// and grow as needed; only the name field shrinks, down to a floor of 10
// characters, so a very large count or total pushes the line past 48 columns
// rather than corrupting a number.
func (li *LineItem) Print48() []string {
	countStr := fmt.Sprintf("%2d", li.Count)
	priceStr := formatAmount(li.Price, 6)
	totalStr := formatAmount(li.TotalPrice(), 6)

	nameLen := nameFieldWidth(len(countStr)+len(priceStr)+len(totalStr)+4, len(li.Name))
	nameStr := fmt.Sprintf("%-*s", nameLen, truncate(li.Name, nameLen))

	lines := []string{fmt.Sprintf(" %s %s  %s  %s ", nameStr, countStr, priceStr, totalStr)}
	if li.Note != "" {
		// note gets its own line, truncated to 32 chars, no padding
		lines = append(lines, " "+truncate(li.Note, 32))
	}
	return lines
}

// Print48Header returns the column header printed above the item list. It
// uses the nominal field widths, so it lines up whenever the item lines fit
// the 48-column target.
func Print48Header() string {
	nameLen := 48 - (2 + 6 + 6 + 4) - 3
	return fmt.Sprintf(" %-*s %2s  %6s  %6s ", nameLen, "Item", "Ct", "Price", "Total")
}

// nameFieldWidth computes the width left for the name field after the
// numeric fields claim theirs. numLen counts the numeric fields plus their
// internal separators; three more columns frame the line (leading space,
// name/count gap, trailing space). When the computed width drops below 10
// and the name would not fit it anyway, the floor of 10 wins and the line
// grows past 48 columns.
func nameFieldWidth(numLen, nameLen int) int {
	w := 48 - numLen - 3
	if w < 10 && nameLen > w {
		w = 10
	}
	return w
}
