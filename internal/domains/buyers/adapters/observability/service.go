package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	buyerdomain "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/domain"
	buyerports "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/ports"
)

const tracerName = "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/buyers/adapters/observability/service"

// Service decorates the buyer service with tracing, logging, and metrics.
type Service struct {
	inner   buyerports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) { s.metrics = newServiceMetrics(m) }
}

// New wraps the core buyer service.
func New(inner buyerports.Service, opts ...Option) buyerports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

func (s *Service) CreateBuyer(ctx context.Context, buyer *buyerdomain.Buyer) (*buyerdomain.Buyer, error) {
	ctx, span := s.tracer.Start(ctx, "BuyerService.CreateBuyer", trace.WithAttributes(attribute.String("buyer.email", buyer.Email)))
	defer span.End()
	s.logInfo(ctx, "creating buyer", slog.String("email", buyer.Email))
	result, err := s.inner.CreateBuyer(ctx, buyer)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create buyer", slog.String("email", buyer.Email))
	}
	s.metrics.recordCreated(ctx)
	s.logInfo(ctx, "buyer created", slog.Int64("id", result.ID))
	return result, nil
}

func (s *Service) GetBuyer(ctx context.Context, id int64) (*buyerdomain.Buyer, error) {
	ctx, span := s.tracer.Start(ctx, "BuyerService.GetBuyer", trace.WithAttributes(attribute.Int64("buyer.id", id)))
	defer span.End()
	return s.inner.GetBuyer(ctx, id)
}

func (s *Service) ListBuyers(ctx context.Context) ([]*buyerdomain.Buyer, error) {
	ctx, span := s.tracer.Start(ctx, "BuyerService.ListBuyers")
	defer span.End()
	return s.inner.ListBuyers(ctx)
}

func (s *Service) UpdateBuyer(ctx context.Context, id int64, updated *buyerdomain.Buyer) (*buyerdomain.Buyer, error) {
	ctx, span := s.tracer.Start(ctx, "BuyerService.UpdateBuyer", trace.WithAttributes(attribute.Int64("buyer.id", id)))
	defer span.End()
	result, err := s.inner.UpdateBuyer(ctx, id, updated)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update buyer", slog.Int64("id", id))
	}
	s.metrics.recordUpdated(ctx)
	return result, nil
}

func (s *Service) DeleteBuyer(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "BuyerService.DeleteBuyer", trace.WithAttributes(attribute.Int64("buyer.id", id)))
	defer span.End()
	if err := s.inner.DeleteBuyer(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete buyer", slog.Int64("id", id))
	}
	s.metrics.recordDeleted(ctx)
	return nil
}

func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "BuyerService.Exists", trace.WithAttributes(attribute.Int64("buyer.id", id)))
	defer span.End()
	return s.inner.Exists(ctx, id)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

type serviceMetrics struct {
	buyersCreated metric.Int64Counter
	buyersUpdated metric.Int64Counter
	buyersDeleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("buyers.service.created", metric.WithDescription("Number of buyers created"))
	updated, _ := m.Int64Counter("buyers.service.updated", metric.WithDescription("Number of buyers updated"))
	deleted, _ := m.Int64Counter("buyers.service.deleted", metric.WithDescription("Number of buyers deleted"))
	return serviceMetrics{buyersCreated: created, buyersUpdated: updated, buyersDeleted: deleted}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.buyersCreated != nil {
		m.buyersCreated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordUpdated(ctx context.Context) {
	if m.buyersUpdated != nil {
		m.buyersUpdated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.buyersDeleted != nil {
		m.buyersDeleted.Add(ctx, 1)
	}
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var _ buyerports.Service = (*Service)(nil)
