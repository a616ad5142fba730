package service

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kipkemoi/tillprint-api/internal/config"
	"github.com/kipkemoi/tillprint-api/internal/presentation/http/dto/request"
	"github.com/kipkemoi/tillprint-api/pkg/apperror"
)

type capturePrinter struct {
	jobs      [][]byte
	connected bool
	err       error
}

func (p *capturePrinter) Print(data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, data)
	return nil
}

func (p *capturePrinter) Close() error      { return nil }
func (p *capturePrinter) IsConnected() bool { return p.connected }

func testConfig() *config.Config {
	return &config.Config{
		Printer:  config.PrinterConfig{Type: "network", Width: 48},
		Currency: config.CurrencyConfig{Name: "USD", Symbol: "$"},
	}
}

func newTestService(p *capturePrinter) *ReceiptService {
	s := NewReceiptService(p, testConfig())
	s.now = func() time.Time {
		return time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)
	}
	return s
}

func sampleRequest() *request.ReceiptRequest {
	return &request.ReceiptRequest{
		Shop: request.ShopPayload{
			Name:     "Corner Grocers",
			Address1: "12 Market Lane",
			City:     "Austin",
			State:    "TX",
			ZipCode:  "78701",
			Phone:    "012-345-6789",
		},
		Order: request.OrderPayload{
			OrderID:      "ORD003",
			CustomerName: "John Doe",
			Items: []request.ItemPayload{
				{Name: "Apple Juice", Price: 250.00, Count: 1},
				{Name: "Biscuits (Large)", Price: 180.00, Count: 1},
			},
		},
		Payments: []request.PaymentPayload{
			{Amount: 50.00, Method: "Cash"},
			{Amount: 400.00, Method: "CreditCard"},
		},
	}
}

func TestAssemble_BuildsEntities(t *testing.T) {
	s := newTestService(&capturePrinter{})

	order, settlement, err := s.Assemble(sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, "ORD003", order.OrderID)
	assert.InDelta(t, 430.00, order.Total, 1e-9)
	assert.Equal(t, "USD", order.Currency) // configured default
	require.NotNil(t, settlement)
	assert.InDelta(t, 20.00, settlement.Change, 1e-9)
}

func TestAssemble_CurrencyOverride(t *testing.T) {
	s := newTestService(&capturePrinter{})

	req := sampleRequest()
	req.Order.Currency = "GBP"
	order, _, err := s.Assemble(req)
	require.NoError(t, err)
	assert.Equal(t, "GBP", order.Currency)
}

func TestAssemble_NoPayments(t *testing.T) {
	s := newTestService(&capturePrinter{})

	req := sampleRequest()
	req.Payments = nil
	order, settlement, err := s.Assemble(req)
	require.NoError(t, err)
	assert.NotNil(t, order)
	assert.Nil(t, settlement)
}

func TestAssemble_ValidationErrorsPropagate(t *testing.T) {
	s := newTestService(&capturePrinter{})

	tests := []struct {
		name   string
		mutate func(r *request.ReceiptRequest)
	}{
		{"missing shop name", func(r *request.ReceiptRequest) { r.Shop.Name = "  " }},
		{"order id too long", func(r *request.ReceiptRequest) { r.Order.OrderID = "ORD1234567890" }},
		{"negative item price", func(r *request.ReceiptRequest) { r.Order.Items[0].Price = -1 }},
		{"bad surcharge rate", func(r *request.ReceiptRequest) {
			r.Shop.Surcharges = []request.ChargePayload{{Name: "Tax", Amount: 1.5, Fixed: false}}
		}},
		{"insufficient payment", func(r *request.ReceiptRequest) { r.Payments = r.Payments[:1] }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := sampleRequest()
			tt.mutate(req)
			order, settlement, err := s.Assemble(req)
			assert.Nil(t, order)
			assert.Nil(t, settlement)
			assert.True(t, apperror.IsValidationError(err))
		})
	}
}

func TestRenderBody(t *testing.T) {
	s := newTestService(&capturePrinter{})
	order, settlement, err := s.Assemble(sampleRequest())
	require.NoError(t, err)

	lines := s.RenderBody(order, settlement)

	assert.Contains(t, lines, "Corner Grocers")
	assert.Contains(t, lines, "ORDER: ORD003")
	assert.Contains(t, lines, "Name: John Doe")
	assert.Contains(t, lines, "Date & Time: 2026-08-28 14:30:00")
	assert.Contains(t, lines, "Currency: USD")
	assert.Contains(t, lines, " Apple Juice                  1  250.00  250.00 ")
	assert.Contains(t, lines, " Biscuits (Large)             1  180.00  180.00 ")
	assert.Contains(t, lines, " Cash                                     50.00 ")
	assert.Contains(t, lines, " CreditCard                              400.00 ")
	assert.Contains(t, lines, " Change                                   20.00 ")
	assert.Contains(t, lines, "Grand Total: 430.00")
	assert.Equal(t, "Thank you for shopping with us!", lines[len(lines)-1])
}

func TestRenderBody_NoSettlementOmitsPaymentBlock(t *testing.T) {
	s := newTestService(&capturePrinter{})
	req := sampleRequest()
	req.Payments = nil
	order, settlement, err := s.Assemble(req)
	require.NoError(t, err)

	lines := s.RenderBody(order, settlement)
	assert.NotContains(t, lines, " Payments:")
	assert.Contains(t, lines, "Grand Total: 430.00")
}

func TestFormatReceipt(t *testing.T) {
	s := newTestService(&capturePrinter{})
	order, settlement, err := s.Assemble(sampleRequest())
	require.NoError(t, err)

	data := s.FormatReceipt(order, settlement)

	assert.True(t, bytes.HasPrefix(data, []byte{0x1B, 0x40})) // ESC @ init
	assert.Contains(t, string(data), "ORDER: ORD003")
	assert.Contains(t, string(data), "Grand Total: 430.00")
	assert.True(t, bytes.Contains(data, []byte{0x1D, 0x56, 0x00})) // GS V full cut
}

func TestPrint_SendsJobAndReturnsBody(t *testing.T) {
	p := &capturePrinter{connected: true}
	s := newTestService(p)
	order, settlement, err := s.Assemble(sampleRequest())
	require.NoError(t, err)

	lines, err := s.Print(order, settlement)
	require.NoError(t, err)
	assert.Contains(t, lines, "ORDER: ORD003")
	require.Len(t, p.jobs, 1)
	assert.Equal(t, s.FormatReceipt(order, settlement), p.jobs[0])
}

func TestPrint_HardwareFailureStillReturnsBody(t *testing.T) {
	p := &capturePrinter{err: errors.New("connection refused")}
	s := newTestService(p)
	order, settlement, err := s.Assemble(sampleRequest())
	require.NoError(t, err)

	lines, err := s.Print(order, settlement)
	assert.Error(t, err)
	assert.Contains(t, lines, "ORDER: ORD003")
}

func TestGetStatus(t *testing.T) {
	p := &capturePrinter{connected: true}
	s := newTestService(p)

	status := s.GetStatus()
	assert.True(t, status.Configured)
	assert.True(t, status.Connected)
	assert.Equal(t, "network", status.Type)

	s2 := NewReceiptService(&capturePrinter{}, &config.Config{
		Printer:  config.PrinterConfig{Type: "none"},
		Currency: config.CurrencyConfig{Name: "USD"},
	})
	status = s2.GetStatus()
	assert.False(t, status.Configured)
	assert.False(t, status.Connected)
}

func TestTestPrint(t *testing.T) {
	p := &capturePrinter{connected: true}
	s := newTestService(p)

	lines, err := s.TestPrint()
	require.NoError(t, err)
	assert.Contains(t, lines, "ORDER: TEST-001")
	require.Len(t, p.jobs, 1)
}
