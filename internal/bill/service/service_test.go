package service

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vasavigrand/vgbilling/internal/bill/domain"
	billingdomain "github.com/vasavigrand/vgbilling/internal/billing/domain"
	billingservice "github.com/vasavigrand/vgbilling/internal/billing/service"
	"github.com/vasavigrand/vgbilling/internal/bill/repository"
	"github.com/vasavigrand/vgbilling/internal/clock"
	"github.com/vasavigrand/vgbilling/internal/config"
	"github.com/vasavigrand/vgbilling/internal/observability"
	taxservice "github.com/vasavigrand/vgbilling/internal/tax/service"
)

func testConfig() *config.Config {
	return &config.Config{
		Sequence: config.SequenceConfig{
			Backend: config.BackendSQLite,
			Key:     "vasavi_bill_counter",
			Prefix:  "VG",
		},
		Hotel: config.HotelConfig{
			Name:     "Vasavi Grand",
			Timezone: "Asia/Kolkata",
		},
	}
}

func newTestService(t *testing.T, clk clock.Clock) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec(`CREATE TABLE bill_sequences (
		key        TEXT PRIMARY KEY,
		value      INTEGER NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`).Error)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	cfg := testConfig()
	svc, err := New(Params{
		Config:   cfg,
		Log:      zap.NewNop(),
		Clock:    clk,
		GenID:    node,
		Calc:     billingservice.NewCalculator(taxservice.NewResolver()),
		Sequence: repository.NewGormSequence(db, cfg.Sequence.Key),
		Store:    repository.NewMemoryStore(),
		Metrics:  observability.NewMetrics(),
	})
	require.NoError(t, err)
	return svc
}

// 13:00 UTC is 18:30 IST on the same day.
var issueInstant = time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC)

func TestIssueAssignsSequentialNumbers(t *testing.T) {
	svc := newTestService(t, clock.Fixed{T: issueInstant})
	ctx := context.Background()

	first, err := svc.Issue(ctx, validIssueRequest())
	require.NoError(t, err)
	second, err := svc.Issue(ctx, validIssueRequest())
	require.NoError(t, err)

	assert.Equal(t, "VG-2025-001", first.Number)
	assert.Equal(t, "VG-2025-002", second.Number)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestIssueStampsHotelLocalTime(t *testing.T) {
	svc := newTestService(t, clock.Fixed{T: issueInstant})

	bill, err := svc.Issue(context.Background(), validIssueRequest())
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", bill.IssueDate)
	assert.Equal(t, "06:30:00 PM", bill.IssueTime)
}

func TestIssueCarriesCalculations(t *testing.T) {
	svc := newTestService(t, clock.Fixed{T: issueInstant})

	req := validIssueRequest()
	req.BillType = billingdomain.BillTypeCheckOut
	req.BeveragesBill = 500

	bill, err := svc.Issue(context.Background(), req)
	require.NoError(t, err)

	// 2-day window: 2500*2*2 + 3500*2*1 rooms, plus beverages on checkout.
	assert.Equal(t, 2, bill.Calculations.Days)
	assert.Equal(t, 17500.0, bill.Calculations.Subtotal)
	assert.Equal(t, 0.0, bill.Calculations.Tax)
	assert.Equal(t, 17500.0, bill.Calculations.Balance)
	assert.Len(t, bill.Calculations.Rooms, 2)
}

func TestIssueRejectsInvalidRequest(t *testing.T) {
	svc := newTestService(t, clock.Fixed{T: issueInstant})

	req := validIssueRequest()
	req.Guest.Contact = "12345"

	_, err := svc.Issue(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrContactInvalid)

	// A rejected request must not consume a sequence number.
	bill, err := svc.Issue(context.Background(), validIssueRequest())
	require.NoError(t, err)
	assert.Equal(t, "VG-2025-001", bill.Number)
}

func TestIssueIdempotencyKeyReturnsSameBill(t *testing.T) {
	svc := newTestService(t, clock.Fixed{T: issueInstant})
	ctx := context.Background()

	req := validIssueRequest()
	req.IdempotencyKey = "front-desk-42"

	first, err := svc.Issue(ctx, req)
	require.NoError(t, err)
	second, err := svc.Issue(ctx, req)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Len(t, svc.List(ctx), 1)
}

func TestGetAndList(t *testing.T) {
	svc := newTestService(t, clock.Fixed{T: issueInstant})
	ctx := context.Background()

	issued, err := svc.Issue(ctx, validIssueRequest())
	require.NoError(t, err)

	got, err := svc.Get(ctx, issued.Number)
	require.NoError(t, err)
	assert.Equal(t, issued, got)

	_, err = svc.Get(ctx, "VG-2025-999")
	assert.ErrorIs(t, err, domain.ErrBillNotFound)

	assert.Len(t, svc.List(ctx), 1)
}

func TestResetSequenceRestartsNumbering(t *testing.T) {
	svc := newTestService(t, clock.Fixed{T: issueInstant})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Issue(ctx, validIssueRequest())
		require.NoError(t, err)
	}

	require.NoError(t, svc.ResetSequence(ctx))

	bill, err := svc.Issue(ctx, validIssueRequest())
	require.NoError(t, err)
	assert.Equal(t, "VG-2025-001", bill.Number)
}

func TestPreviewReturnsSentinelForIncompleteDates(t *testing.T) {
	svc := newTestService(t, clock.Fixed{T: issueInstant})

	got := svc.Preview(context.Background(), billingdomain.BillingInput{
		Rooms: []billingdomain.RoomLineItem{{RoomType: "Standard AC", UnitPrice: 2500, Count: 1}},
	})

	assert.Equal(t, billingdomain.ZeroResult(), got)
}
