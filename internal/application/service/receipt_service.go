package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/kipkemoi/tillprint-api/internal/config"
	"github.com/kipkemoi/tillprint-api/internal/domain/entity"
	"github.com/kipkemoi/tillprint-api/internal/presentation/http/dto/request"
	"github.com/kipkemoi/tillprint-api/pkg/printer"
)

// ReceiptService assembles receipt entities from request payloads, renders
// them into fixed-width lines and drives the thermal printer transport.
type ReceiptService struct {
	printer     printer.Printer
	printerType string
	width       int
	currency    config.CurrencyConfig
	now         func() time.Time
}

// NewReceiptService creates a new receipt service.
func NewReceiptService(p printer.Printer, cfg *config.Config) *ReceiptService {
	width := cfg.Printer.Width
	if width <= 0 {
		width = 48
	}
	return &ReceiptService{
		printer:     p,
		printerType: cfg.Printer.Type,
		width:       width,
		currency:    cfg.Currency,
		now:         time.Now,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *ReceiptService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// Assemble builds the validated entity graph from a receipt payload. Any
// domain invariant violation surfaces as a validation error; nothing is
// partially constructed.
func (s *ReceiptService) Assemble(req *request.ReceiptRequest) (*entity.Order, *entity.OrderPayment, error) {
	surcharges, err := buildCharges(req.Shop.Surcharges)
	if err != nil {
		return nil, nil, err
	}

	shop, err := entity.NewShopProfile(entity.ShopProfileParams{
		Name:       req.Shop.Name,
		Address1:   req.Shop.Address1,
		Address2:   req.Shop.Address2,
		City:       req.Shop.City,
		State:      req.Shop.State,
		ZipCode:    req.Shop.ZipCode,
		Phone:      req.Shop.Phone,
		Email:      req.Shop.Email,
		Surcharges: surcharges,
	})
	if err != nil {
		return nil, nil, err
	}

	items := make([]*entity.LineItem, 0, len(req.Order.Items))
	for _, it := range req.Order.Items {
		item, err := entity.NewLineItem(it.Name, it.Price, it.Count, it.Note)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
	}

	extras, err := buildCharges(req.Order.Extras)
	if err != nil {
		return nil, nil, err
	}

	currency := req.Order.Currency
	if currency == "" {
		currency = s.currency.Name
	}

	order, err := entity.NewOrder(entity.OrderParams{
		OrderID:      req.Order.OrderID,
		Shop:         shop,
		Items:        items,
		Extras:       extras,
		Currency:     currency,
		CustomerName: req.Order.CustomerName,
		Notes:        req.Order.Notes,
	})
	if err != nil {
		return nil, nil, err
	}

	if len(req.Payments) == 0 {
		return order, nil, nil
	}

	payments := make([]*entity.Payment, 0, len(req.Payments))
	for _, p := range req.Payments {
		payment, err := entity.NewPayment(p.Amount, p.Method)
		if err != nil {
			return nil, nil, err
		}
		payments = append(payments, payment)
	}
	settlement, err := entity.NewOrderPayment(order, payments)
	if err != nil {
		return nil, nil, err
	}
	return order, settlement, nil
}

func buildCharges(payloads []request.ChargePayload) ([]*entity.Charge, error) {
	if len(payloads) == 0 {
		return nil, nil
	}
	charges := make([]*entity.Charge, 0, len(payloads))
	for _, p := range payloads {
		c, err := entity.NewCharge(p.Name, p.Amount, p.Fixed)
		if err != nil {
			return nil, err
		}
		charges = append(charges, c)
	}
	return charges, nil
}

// RenderBody produces the complete receipt body as ordered plain-text lines:
// shop header, order banner, customer and date, item table, totals and the
// payment block. This is the transport-independent view returned to API
// clients; settlement may be nil.
func (s *ReceiptService) RenderBody(order *entity.Order, settlement *entity.OrderPayment) []string {
	rule := strings.Repeat("-", s.width)

	var lines []string
	lines = append(lines, order.Shop.Print48()...)
	lines = append(lines, "", "ORDER: "+order.OrderID, rule)
	lines = append(lines, "Name: "+order.CustomerName)
	lines = append(lines, "Date & Time: "+s.now().Format("2006-01-02 15:04:05"))
	lines = append(lines, "Currency: "+order.Currency)
	if len(order.Notes) > 0 {
		lines = append(lines, order.Notes...)
	}
	lines = append(lines, rule, entity.Print48Header(), rule)

	orderLines := order.Print48()
	lines = append(lines, orderLines[:len(orderLines)-1]...)
	lines = append(lines, rule, orderLines[len(orderLines)-1])

	if settlement != nil {
		lines = append(lines, "", " Payments:")
		lines = append(lines, settlement.Print48()...)
		lines = append(lines, rule)
	}

	lines = append(lines, fmt.Sprintf("Grand Total: %.2f", order.Total))
	lines = append(lines, "", "Thank you for shopping with us!")
	return lines
}

// FormatReceipt converts the entity graph into an ESC/POS byte stream:
// reset, USA character set, CP437, then the styled sections (bold shop name,
// double-size order banner and grand total, centered footer) and a cut.
func (s *ReceiptService) FormatReceipt(order *entity.Order, settlement *entity.OrderPayment) []byte {
	doc := printer.NewDocument(s.width)
	doc.SetCharacterSet(0).SetCodePage(0)

	// Shop header: bold name, plain remainder
	doc.SetAlign(printer.AlignCenter)
	shopLines := order.Shop.Print48()
	doc.SetBold(true).Text(shopLines[0]).SetBold(false)
	doc.Lines(shopLines[1:])

	// Order banner, double size
	doc.LineFeed().
		SetFontSize(printer.FontDouble).
		Text("ORDER: " + order.OrderID).
		SetFontSize(printer.FontNormal)

	// Customer, date, currency
	doc.Separator('-').
		SetAlign(printer.AlignLeft).
		SetBold(true).
		Text("Name: " + order.CustomerName).
		SetBold(false).
		Text("Date & Time: " + s.now().Format("2006-01-02 15:04:05")).
		Text("Currency: " + order.Currency)
	if len(order.Notes) > 0 {
		doc.Lines(order.Notes)
	}

	// Item table
	doc.Separator('-').
		SetBold(true).
		Text(entity.Print48Header()).
		SetBold(false).
		Separator('-')
	orderLines := order.Print48()
	doc.Lines(orderLines[:len(orderLines)-1]).
		Separator('-').
		Text(orderLines[len(orderLines)-1])

	// Payment block
	if settlement != nil {
		doc.LineFeed().Text(" Payments:")
		doc.Lines(settlement.Print48())
		doc.Separator('-')
	}

	// Grand total, double size
	doc.SetAlign(printer.AlignCenter).
		SetFontSize(printer.FontDouble).
		TextF("Grand Total: %.2f", order.Total).
		SetFontSize(printer.FontNormal)

	doc.LineFeed().
		Text("Thank you for shopping with us!").
		FeedLines(3).
		Cut()

	return doc.Bytes()
}

// Print renders the entity graph and sends it to the configured transport.
// The rendered body is returned even when the hardware write fails, so
// callers can still hand the receipt text back to the client.
func (s *ReceiptService) Print(order *entity.Order, settlement *entity.OrderPayment) ([]string, error) {
	body := s.RenderBody(order, settlement)
	if err := s.printer.Print(s.FormatReceipt(order, settlement)); err != nil {
		log.Printf("Printer error (order %s): %v", order.OrderID, err)
		return body, fmt.Errorf("failed to print receipt: %w", err)
	}
	return body, nil
}

// TestPrint sends a built-in test receipt to the printer. The rendered body
// is returned so the handler can show it as JSON when no hardware is
// configured.
func (s *ReceiptService) TestPrint() ([]string, error) {
	order, settlement, err := s.Assemble(testReceiptRequest())
	if err != nil {
		return nil, err
	}
	body := s.RenderBody(order, settlement)
	if err := s.printer.Print(s.FormatReceipt(order, settlement)); err != nil {
		return body, fmt.Errorf("test print failed: %w", err)
	}
	return body, nil
}

func testReceiptRequest() *request.ReceiptRequest {
	return &request.ReceiptRequest{
		Shop: request.ShopPayload{
			Name:     "PRINTER TEST",
			Address1: "123 Business Road",
			City:     "Austin",
			State:    "TX",
			ZipCode:  "78701",
			Phone:    "012-345-6789",
		},
		Order: request.OrderPayload{
			OrderID:      "TEST-001",
			CustomerName: "System",
			Items: []request.ItemPayload{
				{Name: "Test Item 1", Price: 10.00, Count: 1},
				{Name: "Test Item 2", Price: 5.00, Count: 2},
			},
		},
		Payments: []request.PaymentPayload{
			{Amount: 20.00, Method: "Cash"},
		},
	}
}
