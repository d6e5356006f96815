package server

import (
	"github.com/gin-gonic/gin"

	billingdomain "github.com/vasavigrand/vgbilling/internal/billing/domain"
)

// @Summary      List Bill Types
// @Description  List the bill types the form offers
// @Tags         reference
// @Produce      json
// @Success      200  {object}  ListResponse
// @Router       /reference/bill-types [get]
func (s *Server) ListBillTypes(c *gin.Context) {
	respondList(c, billingdomain.AllBillTypes())
}

// @Summary      Hotel Profile
// @Description  The letterhead identity printed on bills
// @Tags         reference
// @Produce      json
// @Success      200  {object}  DataResponse
// @Router       /reference/hotel [get]
func (s *Server) GetHotelProfile(c *gin.Context) {
	respondData(c, s.cfg.Hotel)
}
