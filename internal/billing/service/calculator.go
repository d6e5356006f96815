package service

import (
	"math"
	"time"

	"github.com/vasavigrand/vgbilling/internal/billing/domain"
	taxdomain "github.com/vasavigrand/vgbilling/internal/tax/domain"
)

const (
	nominalStay   = 24 * time.Hour
	checkoutGrace = 4 * time.Hour

	// A stay past nominal + grace is eligible for an extra-day charge.
	extraDayThreshold = nominalStay + checkoutGrace
)

// Calculator derives a bill summary from a booking specification. Compute is
// a pure mapping: no clock reads, no stored state, identical inputs yield
// identical results.
type Calculator struct {
	taxes taxdomain.Resolver
}

func NewCalculator(taxes taxdomain.Resolver) *Calculator {
	return &Calculator{taxes: taxes}
}

func (c *Calculator) Compute(in domain.BillingInput) domain.BillingResult {
	if !in.Window.Complete() {
		return domain.ZeroResult()
	}

	checkIn, checkOut, err := in.Window.Resolve()
	if err != nil {
		// Malformed dates degrade the same way as missing ones: the input is
		// not yet computable. Rejecting them is the validation layer's job.
		return domain.ZeroResult()
	}

	span := checkOut.Sub(checkIn)
	days := chargeableDays(span)
	showOverrideToggle := span > extraDayThreshold
	if showOverrideToggle && in.Override.Waived() {
		days = floorOne(days - 1)
	}

	var roomsTotal float64
	rooms := make([]domain.RoomCharge, 0, len(in.Rooms))
	for _, room := range in.Rooms {
		roomDays := days
		if room.Window != nil {
			roomDays = c.roomDays(room, in.Window, days)
		}

		amount := room.UnitPrice * float64(roomDays) * float64(room.Count)
		roomsTotal += amount
		rooms = append(rooms, domain.RoomCharge{
			RoomType:  room.RoomType,
			Days:      roomDays,
			UnitPrice: room.UnitPrice,
			Count:     room.Count,
			Amount:    amount,
		})
	}

	beverages := 0.0
	if in.BillType == domain.BillTypeCheckOut {
		beverages = in.BeveragesBill
	}

	subtotal := roomsTotal + beverages
	tax := c.taxes.RateFor(in.BillType).AmountOn(subtotal)

	return domain.BillingResult{
		Days:               days,
		Subtotal:           subtotal,
		Tax:                tax,
		Total:              subtotal + tax,
		Balance:            subtotal - in.AdvancePaid,
		ShowOverrideToggle: showOverrideToggle,
		Rooms:              rooms,
	}
}

// roomDays resolves one line item's own window, falling back to the
// bill-level window for any missing field. An unresolvable room window
// inherits the bill-level day count.
func (c *Calculator) roomDays(room domain.RoomLineItem, base domain.BookingWindow, inherited int) int {
	window := room.Window.MergedWith(base)
	if !window.Complete() {
		return inherited
	}
	checkIn, checkOut, err := window.Resolve()
	if err != nil {
		return inherited
	}

	span := checkOut.Sub(checkIn)
	days := chargeableDays(span)
	if span > extraDayThreshold && room.Override.Waived() {
		days = floorOne(days - 1)
	}
	return days
}

// chargeableDays is ceil(span / 24h) on whole milliseconds, floored at one:
// a one-minute stay bills as one day, exactly 24h bills as one day.
func chargeableDays(span time.Duration) int {
	days := int(math.Ceil(float64(span.Milliseconds()) / float64(nominalStay.Milliseconds())))
	return floorOne(days)
}

func floorOne(days int) int {
	if days < 1 {
		return 1
	}
	return days
}
