package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kipkemoi/tillprint-api/internal/application/service"
	"github.com/kipkemoi/tillprint-api/internal/presentation/http/dto/request"
	"github.com/kipkemoi/tillprint-api/internal/presentation/http/dto/response"
)

// ReceiptHandler handles receipt rendering and printing requests.
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler.
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Render validates the payload and returns the receipt body as ordered
// lines, without touching the printer.
func (h *ReceiptHandler) Render(c *gin.Context) {
	var req request.ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	order, settlement, err := h.receiptService.Assemble(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	body := gin.H{
		"order_id": order.OrderID,
		"total":    order.Total,
		"lines":    h.receiptService.RenderBody(order, settlement),
	}
	if settlement != nil {
		body["change"] = settlement.Change
	}
	response.OK(c, "Receipt rendered", body)
}

// Print renders the receipt and sends it to the configured printer. When the
// hardware write fails the rendered body is still returned, with a warning,
// so the till can fall back to displaying it.
func (h *ReceiptHandler) Print(c *gin.Context) {
	var req request.ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	order, settlement, err := h.receiptService.Assemble(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	lines, err := h.receiptService.Print(order, settlement)
	if err != nil {
		response.OK(c, "Receipt generated but printing failed", gin.H{
			"order_id": order.OrderID,
			"lines":    lines,
			"warning":  err.Error(),
		})
		return
	}

	response.OK(c, "Receipt printed successfully", gin.H{
		"order_id": order.OrderID,
		"lines":    lines,
	})
}
