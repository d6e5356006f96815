package domain

// BillType selects which document is being produced. Beverages are billed on
// checkout only.
type BillType string

const (
	BillTypeBookingConfirmation BillType = "Booking Confirmation"
	BillTypeCheckIn             BillType = "Check-In Bill"
	BillTypeCheckOut            BillType = "Check-Out Bill"
	BillTypeAdvanceBooking      BillType = "Advance Booking"
)

func (t BillType) Valid() bool {
	switch t {
	case BillTypeBookingConfirmation, BillTypeCheckIn, BillTypeCheckOut, BillTypeAdvanceBooking:
		return true
	}
	return false
}

func (t BillType) Code() string {
	switch t {
	case BillTypeBookingConfirmation:
		return "CONF"
	case BillTypeCheckIn:
		return "CHECKIN"
	case BillTypeCheckOut:
		return "CHECKOUT"
	case BillTypeAdvanceBooking:
		return "ADV"
	}
	return ""
}

type BillTypeInfo struct {
	ID   int      `json:"id"`
	Name BillType `json:"name"`
	Code string   `json:"code"`
}

func AllBillTypes() []BillTypeInfo {
	return []BillTypeInfo{
		{ID: 1, Name: BillTypeBookingConfirmation, Code: "CONF"},
		{ID: 2, Name: BillTypeCheckIn, Code: "CHECKIN"},
		{ID: 3, Name: BillTypeCheckOut, Code: "CHECKOUT"},
		{ID: 4, Name: BillTypeAdvanceBooking, Code: "ADV"},
	}
}

// OverridePolicy decides whether a late checkout past the grace threshold is
// billed as an extra day. The zero value means charge, so an unset policy
// always defaults toward charging.
type OverridePolicy string

const (
	OverrideCharge OverridePolicy = "charge"
	OverrideWaive  OverridePolicy = "waive"
)

func (p OverridePolicy) Waived() bool {
	return p == OverrideWaive
}

func (p OverridePolicy) Valid() bool {
	switch p {
	case "", OverrideCharge, OverrideWaive:
		return true
	}
	return false
}

// RoomLineItem is one room-type/price grouping within a bill: count identical
// rooms billed at the same nightly rate. A line item may carry its own
// booking window overriding the bill-level one.
type RoomLineItem struct {
	RoomType  string         `json:"room_type"`
	UnitPrice float64        `json:"unit_price"`
	Count     int            `json:"count"`
	Window    *BookingWindow `json:"window,omitempty"`
	Override  OverridePolicy `json:"override_extra_day,omitempty"`
}

// BillingInput is the full specification for one computation. It is rebuilt
// by the caller on every relevant field change and never mutated here.
type BillingInput struct {
	Window        BookingWindow  `json:"window"`
	Rooms         []RoomLineItem `json:"rooms"`
	AdvancePaid   float64        `json:"advance_paid"`
	BeveragesBill float64        `json:"beverages_bill"`
	BillType      BillType       `json:"bill_type"`
	Override      OverridePolicy `json:"override_extra_day,omitempty"`
}

type RoomCharge struct {
	RoomType  string  `json:"room_type"`
	Days      int     `json:"days"`
	UnitPrice float64 `json:"unit_price"`
	Count     int     `json:"count"`
	Amount    float64 `json:"amount"`
}

// BillingResult is the computed summary. Days is the bill-level figure shown
// in the header; individual rooms may resolve to different day counts in the
// breakdown.
type BillingResult struct {
	Days               int          `json:"days"`
	Subtotal           float64      `json:"subtotal"`
	Tax                float64      `json:"tax"`
	Total              float64      `json:"total"`
	Balance            float64      `json:"balance"`
	ShowOverrideToggle bool         `json:"show_override_toggle"`
	Rooms              []RoomCharge `json:"per_room_breakdown"`
}

// ZeroResult is the "not yet computable" sentinel returned while mandatory
// dates are missing. It is not an error.
func ZeroResult() BillingResult {
	return BillingResult{Rooms: []RoomCharge{}}
}
