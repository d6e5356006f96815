package server

import (
	"strings"

	"github.com/gin-gonic/gin"

	billdomain "github.com/vasavigrand/vgbilling/internal/bill/domain"
)

func idempotencyKeyFromHeader(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader("Idempotency-Key"))
}

// @Summary      Issue Bill
// @Description  Validate the booking form and issue a numbered bill
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header  string  false  "Idempotency Key"
// @Param        request body billdomain.IssueRequest true "Issue Bill Request"
// @Success      200  {object}  DataResponse
// @Router       /bills [post]
func (s *Server) CreateBill(c *gin.Context) {
	var req billdomain.IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}
	req.IdempotencyKey = idempotencyKeyFromHeader(c)

	bill, err := s.billSvc.Issue(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, bill)
}

// @Summary      List Bills
// @Description  List bills issued this session
// @Tags         bills
// @Produce      json
// @Success      200  {object}  ListResponse
// @Router       /bills [get]
func (s *Server) ListBills(c *gin.Context) {
	respondList(c, s.billSvc.List(c.Request.Context()))
}

// @Summary      Get Bill
// @Description  Get an issued bill by number
// @Tags         bills
// @Produce      json
// @Param        number  path  string  true  "Bill Number"
// @Success      200  {object}  DataResponse
// @Router       /bills/{number} [get]
func (s *Server) GetBill(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))
	bill, err := s.billSvc.Get(c.Request.Context(), number)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, bill)
}

// @Summary      Download Bill PDF
// @Description  Render an issued bill onto the hotel letterhead
// @Tags         bills
// @Produce      application/pdf
// @Param        number  path  string  true  "Bill Number"
// @Success      200  {file}  binary
// @Router       /bills/{number}/pdf [get]
func (s *Server) GetBillPDF(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))
	bill, err := s.billSvc.Get(c.Request.Context(), number)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	out, err := s.renderer.Render(bill)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+bill.Number+`.pdf"`)
	c.Data(200, "application/pdf", out)
}

// @Summary      Reset Bill Sequence
// @Description  Rewind the bill-number counter to 1
// @Tags         admin
// @Produce      json
// @Success      200  {object}  DataResponse
// @Router       /admin/sequence/reset [post]
func (s *Server) ResetSequence(c *gin.Context) {
	if err := s.billSvc.ResetSequence(c.Request.Context()); err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, gin.H{"reset": true})
}
