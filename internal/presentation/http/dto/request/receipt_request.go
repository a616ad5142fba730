package request

// ChargePayload describes one fixed or rate charge. Fixed charges carry a
// flat amount; rate charges carry a fraction applied to the order subtotal.
type ChargePayload struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount"`
	Fixed  bool    `json:"fixed"`
}

// ItemPayload describes one purchasable line item.
type ItemPayload struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
	Count int     `json:"count" binding:"required"`
	Note  string  `json:"note,omitempty"`
}

// ShopPayload describes the merchant header and its standing surcharges.
type ShopPayload struct {
	Name       string          `json:"name" binding:"required"`
	Address1   string          `json:"address1" binding:"required"`
	Address2   string          `json:"address2,omitempty"`
	City       string          `json:"city" binding:"required"`
	State      string          `json:"state" binding:"required"`
	ZipCode    string          `json:"zip_code" binding:"required"`
	Phone      string          `json:"phone" binding:"required"`
	Email      string          `json:"email,omitempty"`
	Surcharges []ChargePayload `json:"surcharges,omitempty"`
}

// OrderPayload describes one order: its items, order-specific extra charges
// and the optional customer/notes metadata. Currency defaults to the
// configured currency when omitted.
type OrderPayload struct {
	OrderID      string          `json:"order_id" binding:"required"`
	Currency     string          `json:"currency,omitempty"`
	CustomerName string          `json:"customer_name,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	Items        []ItemPayload   `json:"items,omitempty"`
	Extras       []ChargePayload `json:"extras,omitempty"`
}

// PaymentPayload describes one tendered amount.
type PaymentPayload struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method" binding:"required"`
}

// ReceiptRequest is the body for rendering or printing a receipt. Payments
// are optional; when present they must cover the order total.
type ReceiptRequest struct {
	Shop     ShopPayload      `json:"shop" binding:"required"`
	Order    OrderPayload     `json:"order" binding:"required"`
	Payments []PaymentPayload `json:"payments,omitempty"`
}

// LoginRequest is the body for station authentication.
type LoginRequest struct {
	StationID string `json:"station_id" binding:"required"`
	Password  string `json:"password" binding:"required"`
}
