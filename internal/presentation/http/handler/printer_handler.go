package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kipkemoi/tillprint-api/internal/application/service"
	"github.com/kipkemoi/tillprint-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer status and test requests.
type PrinterHandler struct {
	receiptService *service.ReceiptService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(receiptService *service.ReceiptService) *PrinterHandler {
	return &PrinterHandler{receiptService: receiptService}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	status := h.receiptService.GetStatus()
	response.OK(c, "Printer status retrieved", status)
}

// TestPrint sends a built-in test receipt to the printer.
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	lines, err := h.receiptService.TestPrint()
	if err != nil {
		// Return the rendered body anyway (useful when printer type is "none")
		response.OK(c, "Test print completed (printer may be disabled)", gin.H{
			"lines":   lines,
			"warning": err.Error(),
		})
		return
	}

	response.OK(c, "Test page sent to printer", gin.H{
		"lines": lines,
	})
}
