package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/vasavigrand/vgbilling/internal/bill/domain"
	billingdomain "github.com/vasavigrand/vgbilling/internal/billing/domain"
	billingservice "github.com/vasavigrand/vgbilling/internal/billing/service"
	"github.com/vasavigrand/vgbilling/internal/clock"
	"github.com/vasavigrand/vgbilling/internal/config"
	"github.com/vasavigrand/vgbilling/internal/observability"
)

type Params struct {
	fx.In

	Config   *config.Config
	Log      *zap.Logger
	Clock    clock.Clock
	GenID    *snowflake.Node
	Calc     *billingservice.Calculator
	Sequence domain.SequenceGenerator
	Store    domain.Store
	Metrics  *observability.Metrics
}

type Service struct {
	log      *zap.Logger
	clock    clock.Clock
	genID    *snowflake.Node
	calc     *billingservice.Calculator
	sequence domain.SequenceGenerator
	store    domain.Store
	metrics  *observability.Metrics
	tracer   trace.Tracer

	prefix   string
	location *time.Location
}

func New(p Params) (domain.Service, error) {
	location, err := time.LoadLocation(p.Config.Hotel.Timezone)
	if err != nil {
		return nil, fmt.Errorf("hotel timezone: %w", err)
	}

	return &Service{
		log:      p.Log.Named("bill.service"),
		clock:    p.Clock,
		genID:    p.GenID,
		calc:     p.Calc,
		sequence: p.Sequence,
		store:    p.Store,
		metrics:  p.Metrics,
		tracer:   otel.Tracer("bill.service"),
		prefix:   p.Config.Sequence.Prefix,
		location: location,
	}, nil
}

func (s *Service) Preview(_ context.Context, input billingdomain.BillingInput) billingdomain.BillingResult {
	timer := prometheus.NewTimer(s.metrics.ComputeDuration)
	defer timer.ObserveDuration()
	return s.calc.Compute(input)
}

func (s *Service) Issue(ctx context.Context, req domain.IssueRequest) (*domain.Bill, error) {
	ctx, span := s.tracer.Start(ctx, "bill.issue")
	defer span.End()

	if key := req.IdempotencyKey; key != "" {
		if bill, ok := s.store.GetByIdempotencyKey(key); ok {
			return bill, nil
		}
	}

	if err := validateIssueRequest(req); err != nil {
		return nil, err
	}

	calculations := s.calc.Compute(req.BillingInput())

	number, err := s.nextNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("next bill number: %w", err)
	}

	now := s.clock.Now(ctx).In(s.location)
	roomsRequested := req.RoomsRequested
	if roomsRequested == 0 {
		for _, room := range req.Rooms {
			roomsRequested += room.Count
		}
	}

	bill := &domain.Bill{
		ID:     s.genID.Generate(),
		Number: number,
		Type:   req.BillType,
		Guest: domain.Guest{
			Name:     strings.TrimSpace(req.Guest.Name),
			Contact:  strings.TrimSpace(req.Guest.Contact),
			Address:  strings.TrimSpace(req.Guest.Address),
			Adults:   req.Guest.Adults,
			Children: req.Guest.Children,
		},
		Window:          req.Window,
		Rooms:           req.Rooms,
		RoomsRequested:  roomsRequested,
		AdvancePaid:     req.AdvancePaid,
		BeveragesBill:   req.BeveragesBill,
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
		IssueDate:       now.Format("2006-01-02"),
		IssueTime:       now.Format("03:04:05 PM"),
		Calculations:    calculations,
	}

	s.store.Save(bill)
	if req.IdempotencyKey != "" {
		s.store.SaveIdempotencyKey(req.IdempotencyKey, bill)
	}

	span.SetAttributes(attribute.String("bill.number", number))
	s.metrics.BillsIssued.WithLabelValues(req.BillType.Code()).Inc()
	s.log.Info("bill issued",
		zap.String("number", number),
		zap.String("bill_type", req.BillType.Code()),
		zap.Int("days", calculations.Days),
		zap.Float64("subtotal", calculations.Subtotal),
		zap.Float64("balance", calculations.Balance),
	)

	return bill, nil
}

func (s *Service) Get(_ context.Context, number string) (*domain.Bill, error) {
	bill, ok := s.store.Get(number)
	if !ok {
		return nil, domain.ErrBillNotFound
	}
	return bill, nil
}

func (s *Service) List(_ context.Context) []*domain.Bill {
	return s.store.List()
}

func (s *Service) ResetSequence(ctx context.Context) error {
	if err := s.sequence.Reset(ctx); err != nil {
		return err
	}
	s.metrics.SequenceResets.Inc()
	s.log.Warn("bill sequence reset")
	return nil
}

func (s *Service) nextNumber(ctx context.Context) (string, error) {
	n, err := s.sequence.Next(ctx)
	if err != nil {
		return "", err
	}
	year := s.clock.Now(ctx).In(s.location).Year()
	return fmt.Sprintf("%s-%d-%03d", s.prefix, year, n), nil
}
