package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasavigrand/vgbilling/internal/billing/domain"
	taxservice "github.com/vasavigrand/vgbilling/internal/tax/service"
)

func newCalculator() *Calculator {
	return NewCalculator(taxservice.NewResolver())
}

func window(checkInDate, checkInTime, checkOutDate, checkOutTime string) domain.BookingWindow {
	return domain.BookingWindow{
		CheckInDate:  checkInDate,
		CheckInTime:  checkInTime,
		CheckOutDate: checkOutDate,
		CheckOutTime: checkOutTime,
	}
}

func TestComputeSentinelWhenDatesMissing(t *testing.T) {
	calc := newCalculator()

	cases := map[string]domain.BookingWindow{
		"both missing":      {},
		"check-in missing":  {CheckOutDate: "2024-01-02"},
		"check-out missing": {CheckInDate: "2024-01-01"},
	}

	for name, w := range cases {
		t.Run(name, func(t *testing.T) {
			got := calc.Compute(domain.BillingInput{
				Window:      w,
				Rooms:       []domain.RoomLineItem{{RoomType: "Standard AC", UnitPrice: 2500, Count: 1}},
				AdvancePaid: 1000,
			})
			assert.Equal(t, domain.ZeroResult(), got)
			assert.False(t, got.ShowOverrideToggle)
		})
	}
}

func TestComputeSentinelOnMalformedDates(t *testing.T) {
	calc := newCalculator()

	got := calc.Compute(domain.BillingInput{
		Window: window("01/01/2024", "", "2024-01-02", ""),
	})
	assert.Equal(t, domain.ZeroResult(), got)
}

func TestComputeExactTwentyFourHoursIsOneDay(t *testing.T) {
	calc := newCalculator()

	got := calc.Compute(domain.BillingInput{
		Window: window("2024-01-01", "", "2024-01-02", ""),
		Rooms:  []domain.RoomLineItem{{RoomType: "Standard AC", UnitPrice: 2500, Count: 1}},
	})

	assert.Equal(t, 1, got.Days)
	assert.False(t, got.ShowOverrideToggle)
	assert.Equal(t, 2500.0, got.Subtotal)
}

func TestComputeOneMinuteStayBillsOneDay(t *testing.T) {
	calc := newCalculator()

	got := calc.Compute(domain.BillingInput{
		Window: window("2024-01-01", "10:00", "2024-01-01", "10:01"),
		Rooms:  []domain.RoomLineItem{{RoomType: "Standard AC", UnitPrice: 2500, Count: 1}},
	})

	assert.Equal(t, 1, got.Days)
}

func TestComputeClampsCheckoutBeforeCheckin(t *testing.T) {
	calc := newCalculator()

	got := calc.Compute(domain.BillingInput{
		Window: window("2024-01-05", "", "2024-01-01", ""),
		Rooms:  []domain.RoomLineItem{{RoomType: "Standard AC", UnitPrice: 2500, Count: 1}},
	})

	assert.Equal(t, 1, got.Days)
	assert.False(t, got.ShowOverrideToggle)
}

func TestComputeLateCheckoutOverride(t *testing.T) {
	calc := newCalculator()

	// 29h span: past the 24h+4h grace threshold.
	input := domain.BillingInput{
		Window: window("2024-01-01", "10:00", "2024-01-02", "15:00"),
		Rooms:  []domain.RoomLineItem{{RoomType: "Standard AC", UnitPrice: 2500, Count: 1}},
	}

	t.Run("default charges the extra day", func(t *testing.T) {
		got := calc.Compute(input)
		assert.True(t, got.ShowOverrideToggle)
		assert.Equal(t, 2, got.Days)
	})

	t.Run("explicit charge keeps the extra day", func(t *testing.T) {
		charged := input
		charged.Override = domain.OverrideCharge
		got := calc.Compute(charged)
		assert.True(t, got.ShowOverrideToggle)
		assert.Equal(t, 2, got.Days)
	})

	t.Run("waiver drops one day", func(t *testing.T) {
		waived := input
		waived.Override = domain.OverrideWaive
		got := calc.Compute(waived)
		assert.True(t, got.ShowOverrideToggle)
		assert.Equal(t, 1, got.Days)
	})
}

func TestComputeToggleHiddenAtExactThreshold(t *testing.T) {
	calc := newCalculator()

	// Exactly 28h is within grace; the toggle only appears past it.
	got := calc.Compute(domain.BillingInput{
		Window: window("2024-01-01", "10:00", "2024-01-02", "14:00"),
		Rooms:  []domain.RoomLineItem{{RoomType: "Standard AC", UnitPrice: 2500, Count: 1}},
	})

	assert.False(t, got.ShowOverrideToggle)
	assert.Equal(t, 2, got.Days)
}

func TestComputeMultiRoomAggregation(t *testing.T) {
	calc := newCalculator()

	input := domain.BillingInput{
		Window: window("2024-01-01", "", "2024-01-03", ""),
		Rooms: []domain.RoomLineItem{
			{RoomType: "Standard AC", UnitPrice: 2500, Count: 2},
			{RoomType: "Deluxe", UnitPrice: 3500, Count: 1},
		},
		BeveragesBill: 500,
		BillType:      domain.BillTypeCheckOut,
	}

	got := calc.Compute(input)

	require.Len(t, got.Rooms, 2)
	assert.Equal(t, 2, got.Days)
	assert.Equal(t, 10000.0, got.Rooms[0].Amount) // 2500 * 2 days * 2 rooms
	assert.Equal(t, 7000.0, got.Rooms[1].Amount)  // 3500 * 2 days * 1 room
	assert.Equal(t, 17500.0, got.Subtotal)        // 17000 rooms + 500 beverages
	assert.Equal(t, 0.0, got.Tax)
	assert.Equal(t, 17500.0, got.Total)
}

func TestComputeBeveragesOnlyOnCheckoutBill(t *testing.T) {
	calc := newCalculator()

	base := domain.BillingInput{
		Window:        window("2024-01-01", "", "2024-01-03", ""),
		Rooms:         []domain.RoomLineItem{{RoomType: "Standard AC", UnitPrice: 2500, Count: 1}},
		BeveragesBill: 750,
	}

	for _, billType := range []domain.BillType{
		domain.BillTypeBookingConfirmation,
		domain.BillTypeCheckIn,
		domain.BillTypeAdvanceBooking,
	} {
		t.Run(string(billType), func(t *testing.T) {
			input := base
			input.BillType = billType
			assert.Equal(t, 5000.0, calc.Compute(input).Subtotal)
		})
	}

	t.Run(string(domain.BillTypeCheckOut), func(t *testing.T) {
		input := base
		input.BillType = domain.BillTypeCheckOut
		assert.Equal(t, 5750.0, calc.Compute(input).Subtotal)
	})
}

func TestComputeBalanceMayGoNegative(t *testing.T) {
	calc := newCalculator()

	got := calc.Compute(domain.BillingInput{
		Window:      window("2024-01-01", "", "2024-01-02", ""),
		Rooms:       []domain.RoomLineItem{{RoomType: "Standard AC", UnitPrice: 2500, Count: 1}},
		AdvancePaid: 4000,
	})

	assert.Equal(t, -1500.0, got.Balance)
	assert.Equal(t, got.Subtotal-4000, got.Balance)
}

func TestComputePerRoomWindowOverride(t *testing.T) {
	calc := newCalculator()

	// Bill-level window spans 3 days; one room stays a single day with its
	// own window, another overstays past grace with a waiver.
	shortStay := window("2024-01-01", "", "2024-01-02", "")
	overstay := window("2024-01-01", "10:00", "2024-01-02", "15:00")

	got := calc.Compute(domain.BillingInput{
		Window: window("2024-01-01", "", "2024-01-04", ""),
		Rooms: []domain.RoomLineItem{
			{RoomType: "Standard AC", UnitPrice: 2500, Count: 1, Window: &shortStay},
			{RoomType: "Deluxe", UnitPrice: 3500, Count: 1, Window: &overstay, Override: domain.OverrideWaive},
			{RoomType: "Suite", UnitPrice: 5000, Count: 1},
		},
	})

	require.Len(t, got.Rooms, 3)
	// The header keeps the bill-level figure even though rooms differ.
	assert.Equal(t, 3, got.Days)
	assert.Equal(t, 1, got.Rooms[0].Days)
	assert.Equal(t, 1, got.Rooms[1].Days) // naive ceiling 2, waived down to 1
	assert.Equal(t, 3, got.Rooms[2].Days) // no window, inherits bill-level days
	assert.Equal(t, 2500.0+3500.0+15000.0, got.Subtotal)
}

func TestComputeRoomWindowFallsBackFieldByField(t *testing.T) {
	calc := newCalculator()

	// Room supplies only a check-out time; dates and check-in time come from
	// the bill-level window, stretching this room's span to 29h.
	partial := domain.BookingWindow{CheckOutTime: "15:00"}

	got := calc.Compute(domain.BillingInput{
		Window: window("2024-01-01", "10:00", "2024-01-02", ""),
		Rooms: []domain.RoomLineItem{
			{RoomType: "Standard AC", UnitPrice: 2500, Count: 1, Window: &partial},
		},
	})

	require.Len(t, got.Rooms, 1)
	assert.Equal(t, 2, got.Rooms[0].Days)
	// Bill-level span is under the threshold, so no toggle at the top level.
	assert.False(t, got.ShowOverrideToggle)
	assert.Equal(t, 1, got.Days)
}

func TestComputeDaysMonotonicInSpan(t *testing.T) {
	calc := newCalculator()

	previous := 0
	for hours := 1; hours <= 96; hours++ {
		checkOut := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(hours) * time.Hour)
		got := calc.Compute(domain.BillingInput{
			Window: window(
				"2024-01-01", "00:00",
				checkOut.Format(domain.DateLayout), checkOut.Format(domain.TimeLayout),
			),
		})
		require.GreaterOrEqual(t, got.Days, 1)
		require.GreaterOrEqual(t, got.Days, previous, "days regressed at %dh", hours)
		previous = got.Days
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	calc := newCalculator()

	overstay := window("2024-01-01", "10:00", "2024-01-02", "15:00")
	input := domain.BillingInput{
		Window: window("2024-01-01", "09:30", "2024-01-03", "14:45"),
		Rooms: []domain.RoomLineItem{
			{RoomType: "Standard AC", UnitPrice: 2500, Count: 2},
			{RoomType: "Deluxe", UnitPrice: 3500, Count: 1, Window: &overstay, Override: domain.OverrideWaive},
		},
		AdvancePaid:   3000,
		BeveragesBill: 500,
		BillType:      domain.BillTypeCheckOut,
	}

	first := calc.Compute(input)
	second := calc.Compute(input)
	assert.Equal(t, first, second)
}

func TestComputeDoesNotRejectNonsense(t *testing.T) {
	calc := newCalculator()

	// Negative prices are the validation layer's problem; the calculator
	// still produces a result.
	got := calc.Compute(domain.BillingInput{
		Window: window("2024-01-01", "", "2024-01-02", ""),
		Rooms:  []domain.RoomLineItem{{RoomType: "Standard AC", UnitPrice: -100, Count: 1}},
	})

	assert.Equal(t, -100.0, got.Subtotal)
}
