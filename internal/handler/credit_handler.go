package handler

import (
	"github.com/gin-gonic/gin"

	"chequero/internal/service"
)

// CreditHandler handles standalone credit lookup endpoints.
type CreditHandler struct {
	chequeService service.ChequeService
}

// NewCreditHandler creates a new CreditHandler.
func NewCreditHandler(chequeService service.ChequeService) *CreditHandler {
	return &CreditHandler{chequeService: chequeService}
}

// Check handles GET /api/v1/credit/:cuit
// @Summary Check credit status for a CUIT
// @Description Query the BCRA Central de Deudores for debts and rejected cheques and derive a risk tier
// @Tags credit
// @Produce json
// @Param cuit path string true "CUIT, with or without dashes"
// @Success 200 {object} APIResponse{data=domain.CreditStatus} "Consolidated credit status"
// @Failure 400 {object} APIResponse "Invalid CUIT"
// @Router /credit/{cuit} [get]
func (h *CreditHandler) Check(c *gin.Context) {
	status, err := h.chequeService.CheckCredit(c.Request.Context(), c.Param("cuit"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, status)
}
