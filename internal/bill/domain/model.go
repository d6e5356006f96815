package domain

import (
	"github.com/bwmarrin/snowflake"

	billingdomain "github.com/vasavigrand/vgbilling/internal/billing/domain"
)

type Guest struct {
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Address  string `json:"address,omitempty"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
}

// Bill is one issued document. Bills live in the session store only; the
// bill-number counter is the sole persisted state.
type Bill struct {
	ID              snowflake.ID                `json:"id"`
	Number          string                      `json:"number"`
	Type            billingdomain.BillType      `json:"bill_type"`
	Guest           Guest                       `json:"guest"`
	Window          billingdomain.BookingWindow `json:"window"`
	Rooms           []billingdomain.RoomLineItem `json:"rooms"`
	RoomsRequested  int                         `json:"rooms_requested"`
	AdvancePaid     float64                     `json:"advance_paid"`
	BeveragesBill   float64                     `json:"beverages_bill"`
	SpecialRequests string                      `json:"special_requests,omitempty"`
	IssueDate       string                      `json:"issue_date"`
	IssueTime       string                      `json:"issue_time"`
	Calculations    billingdomain.BillingResult `json:"calculations"`
}

// IssueRequest is the finalize-form payload. RoomsRequested is the guest's
// total room count and must match the sum of line-item counts.
type IssueRequest struct {
	Guest           Guest                        `json:"guest"`
	Window          billingdomain.BookingWindow  `json:"window"`
	Rooms           []billingdomain.RoomLineItem `json:"rooms"`
	RoomsRequested  int                          `json:"rooms_requested"`
	AdvancePaid     float64                      `json:"advance_paid"`
	BeveragesBill   float64                      `json:"beverages_bill"`
	BillType        billingdomain.BillType       `json:"bill_type"`
	Override        billingdomain.OverridePolicy `json:"override_extra_day,omitempty"`
	SpecialRequests string                       `json:"special_requests,omitempty"`

	IdempotencyKey string `json:"-"`
}

// BillingInput projects the request into the calculator's input shape.
func (r IssueRequest) BillingInput() billingdomain.BillingInput {
	return billingdomain.BillingInput{
		Window:        r.Window,
		Rooms:         r.Rooms,
		AdvancePaid:   r.AdvancePaid,
		BeveragesBill: r.BeveragesBill,
		BillType:      r.BillType,
		Override:      r.Override,
	}
}
