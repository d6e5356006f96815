package server

import (
	"github.com/gin-gonic/gin"

	billingdomain "github.com/vasavigrand/vgbilling/internal/billing/domain"
)

// @Summary      Preview Billing
// @Description  Compute the live bill summary for a booking specification
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        request body billingdomain.BillingInput true "Booking specification"
// @Success      200  {object}  DataResponse
// @Router       /billing/preview [post]
func (s *Server) PreviewBilling(c *gin.Context) {
	var input billingdomain.BillingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}

	// Incomplete dates are fine here: the form previews continuously and the
	// zero sentinel result tells the caller "not yet computable".
	respondData(c, s.billSvc.Preview(c.Request.Context(), input))
}
