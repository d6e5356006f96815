package domain

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	midnight = "00:00"
)

// BookingWindow is a check-in/check-out date pair with optional clock times.
// Dates are required for a computable window; a missing time means midnight.
type BookingWindow struct {
	CheckInDate  string `json:"check_in_date"`
	CheckInTime  string `json:"check_in_time,omitempty"`
	CheckOutDate string `json:"check_out_date,omitempty"`
	CheckOutTime string `json:"check_out_time,omitempty"`
}

func (w BookingWindow) Complete() bool {
	return w.CheckInDate != "" && w.CheckOutDate != ""
}

// Resolve combines each date with its time into two instants. Nothing
// enforces check-out after check-in; the calculator clamps negative spans.
func (w BookingWindow) Resolve() (checkIn, checkOut time.Time, err error) {
	checkIn, err = resolveInstant(w.CheckInDate, w.CheckInTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err = resolveInstant(w.CheckOutDate, w.CheckOutTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}

// MergedWith fills every empty field from base, so a room-level window can
// override the bill-level one field by field.
func (w BookingWindow) MergedWith(base BookingWindow) BookingWindow {
	if w.CheckInDate == "" {
		w.CheckInDate = base.CheckInDate
	}
	if w.CheckInTime == "" {
		w.CheckInTime = base.CheckInTime
	}
	if w.CheckOutDate == "" {
		w.CheckOutDate = base.CheckOutDate
	}
	if w.CheckOutTime == "" {
		w.CheckOutTime = base.CheckOutTime
	}
	return w
}

func resolveInstant(date, clock string) (time.Time, error) {
	if clock == "" {
		clock = midnight
	}
	return time.Parse(DateLayout+" "+TimeLayout, date+" "+clock)
}
