package render

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotocfg "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/vasavigrand/vgbilling/internal/bill/domain"
	billingdomain "github.com/vasavigrand/vgbilling/internal/billing/domain"
	"github.com/vasavigrand/vgbilling/internal/config"
)

type pdfRenderer struct {
	hotel config.HotelConfig
}

// NewPDFRenderer renders issued bills onto the hotel letterhead.
func NewPDFRenderer(cfg *config.Config) domain.Renderer {
	return &pdfRenderer{hotel: cfg.Hotel}
}

func (r *pdfRenderer) Render(bill *domain.Bill) ([]byte, error) {
	m := maroto.New(marotocfg.NewBuilder().
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(12).
		Build())

	r.addLetterhead(m)
	r.addBillHeader(m, bill)
	r.addGuestAndBooking(m, bill)
	r.addChargesTable(m, bill)
	r.addSummary(m, bill)
	r.addFooter(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("render bill %s: %w", bill.Number, err)
	}
	return doc.GetBytes(), nil
}

func (r *pdfRenderer) addLetterhead(m core.Maroto) {
	m.AddRow(10, text.NewCol(12, r.hotel.Name, props.Text{
		Size: 18, Style: fontstyle.Bold, Align: align.Center,
	}))
	m.AddRow(5, text.NewCol(12, r.hotel.Address, props.Text{
		Size: 8, Align: align.Center,
	}))
	m.AddRow(5, text.NewCol(12,
		fmt.Sprintf("Phone: %s | WhatsApp: %s", r.hotel.Phone, r.hotel.WhatsApp),
		props.Text{Size: 8, Align: align.Center},
	))
	m.AddRow(5, text.NewCol(12,
		fmt.Sprintf("Email: %s | GST: %s", r.hotel.Email, r.hotel.GSTIN),
		props.Text{Size: 8, Align: align.Center},
	))
	m.AddRow(4, line.NewCol(12))
}

func (r *pdfRenderer) addBillHeader(m core.Maroto, bill *domain.Bill) {
	m.AddRow(8, text.NewCol(12, string(bill.Type), props.Text{
		Size: 13, Style: fontstyle.Bold,
	}))
	m.AddRows(
		row.New(5).Add(
			text.NewCol(6, "Bill No: "+bill.Number, props.Text{Size: 9}),
			text.NewCol(6, "Total: "+amount(bill.Calculations.Total), props.Text{
				Size: 11, Style: fontstyle.Bold, Align: align.Right,
			}),
		),
		row.New(5).Add(
			text.NewCol(6, "Date: "+bill.IssueDate, props.Text{Size: 9}),
		),
		row.New(5).Add(
			text.NewCol(6, "Time: "+bill.IssueTime, props.Text{Size: 9}),
		),
	)
	m.AddRow(4, line.NewCol(12))
}

func (r *pdfRenderer) addGuestAndBooking(m core.Maroto, bill *domain.Bill) {
	m.AddRows(row.New(6).Add(
		text.NewCol(6, "Guest Information", props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(6, "Booking Details", props.Text{Size: 10, Style: fontstyle.Bold}),
	))

	left := []string{
		"Name: " + bill.Guest.Name,
		"Contact: " + bill.Guest.Contact,
		fmt.Sprintf("Guests: %d Adults, %d Children", bill.Guest.Adults, bill.Guest.Children),
	}
	if bill.Guest.Address != "" {
		left = append(left, "Address: "+bill.Guest.Address)
	}

	right := []string{
		fmt.Sprintf("Check-In: %s %s", bill.Window.CheckInDate, bill.Window.CheckInTime),
		fmt.Sprintf("Check-Out: %s %s", bill.Window.CheckOutDate, bill.Window.CheckOutTime),
		fmt.Sprintf("No. of Days: %d", bill.Calculations.Days),
		fmt.Sprintf("Total Rooms: %d", bill.RoomsRequested),
	}

	for i := 0; i < len(left) || i < len(right); i++ {
		cols := make([]core.Col, 0, 2)
		if i < len(left) {
			cols = append(cols, text.NewCol(6, left[i], props.Text{Size: 9}))
		} else {
			cols = append(cols, col.New(6))
		}
		if i < len(right) {
			cols = append(cols, text.NewCol(6, right[i], props.Text{Size: 9}))
		}
		m.AddRows(row.New(5).Add(cols...))
	}
	m.AddRow(4, line.NewCol(12))
}

func (r *pdfRenderer) addChargesTable(m core.Maroto, bill *domain.Bill) {
	header := props.Text{Size: 9, Style: fontstyle.Bold}
	m.AddRows(row.New(6).Add(
		text.NewCol(4, "Description", header),
		text.NewCol(2, "Rooms", headerAligned(align.Center)),
		text.NewCol(2, "Days", headerAligned(align.Center)),
		text.NewCol(2, "Rate", headerAligned(align.Right)),
		text.NewCol(2, "Amount", headerAligned(align.Right)),
	))

	cell := props.Text{Size: 9}
	for _, charge := range bill.Calculations.Rooms {
		m.AddRows(row.New(5).Add(
			text.NewCol(4, charge.RoomType, cell),
			text.NewCol(2, fmt.Sprintf("%d", charge.Count), cellAligned(align.Center)),
			text.NewCol(2, fmt.Sprintf("%d", charge.Days), cellAligned(align.Center)),
			text.NewCol(2, amount(charge.UnitPrice), cellAligned(align.Right)),
			text.NewCol(2, amount(charge.Amount), cellAligned(align.Right)),
		))
	}

	if bill.Type == billingdomain.BillTypeCheckOut && bill.BeveragesBill > 0 {
		m.AddRows(row.New(5).Add(
			text.NewCol(4, "Beverages", cell),
			text.NewCol(2, "-", cellAligned(align.Center)),
			text.NewCol(2, "-", cellAligned(align.Center)),
			text.NewCol(2, "-", cellAligned(align.Right)),
			text.NewCol(2, amount(bill.BeveragesBill), cellAligned(align.Right)),
		))
	}
	m.AddRow(4, line.NewCol(12))
}

func (r *pdfRenderer) addSummary(m core.Maroto, bill *domain.Bill) {
	calc := bill.Calculations
	rows := []struct {
		label string
		value float64
		bold  bool
	}{
		{"Subtotal:", calc.Subtotal, false},
		{"CGST:", calc.Tax / 2, false},
		{"SGST:", calc.Tax / 2, false},
		{"Total:", calc.Total, true},
		{"Advance Paid:", bill.AdvancePaid, false},
		{"Balance Due:", calc.Balance, true},
	}

	for _, entry := range rows {
		style := props.Text{Size: 9, Align: align.Right}
		if entry.bold {
			style.Style = fontstyle.Bold
			style.Size = 10
		}
		m.AddRows(row.New(5).Add(
			col.New(6),
			text.NewCol(3, entry.label, style),
			text.NewCol(3, amount(entry.value), style),
		))
	}
	m.AddRow(4, line.NewCol(12))
}

func (r *pdfRenderer) addFooter(m core.Maroto) {
	m.AddRow(6, text.NewCol(12,
		fmt.Sprintf("Thank you for choosing %s. We hope you have a pleasant stay!", r.hotel.Name),
		props.Text{Size: 8, Align: align.Center},
	))
	m.AddRow(14, text.NewCol(12, "Authorized Signatory", props.Text{
		Size: 9, Align: align.Right, Top: 10,
	}))
}

func headerAligned(a align.Type) props.Text {
	return props.Text{Size: 9, Style: fontstyle.Bold, Align: a}
}

func cellAligned(a align.Type) props.Text {
	return props.Text{Size: 9, Align: a}
}

// amount formats rupee figures. The rupee glyph is missing from the core PDF
// fonts, so "Rs." stands in.
func amount(v float64) string {
	return fmt.Sprintf("Rs. %.2f", v)
}
