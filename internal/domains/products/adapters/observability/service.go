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

	productdomain "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/domain"
	productports "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/ports"
)

const tracerName = "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/products/adapters/observability/service"

// Service decorates the product service with tracing, logging, and metrics.
type Service struct {
	inner   productports.Service
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

// New wraps the core product service.
func New(inner productports.Service, opts ...Option) productports.Service {
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

func (s *Service) CreateProduct(ctx context.Context, product *productdomain.Product) (*productdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.CreateProduct", trace.WithAttributes(attribute.String("product.name", product.ProductName)))
	defer span.End()
	s.logInfo(ctx, "creating product", slog.String("name", product.ProductName))
	result, err := s.inner.CreateProduct(ctx, product)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create product", slog.String("name", product.ProductName))
	}
	s.metrics.recordCreated(ctx)
	s.logInfo(ctx, "product created", slog.Int64("id", result.ID))
	return result, nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*productdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.GetProduct", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()
	return s.inner.GetProduct(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context) ([]*productdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.ListProducts")
	defer span.End()
	return s.inner.ListProducts(ctx)
}

func (s *Service) ListByIDs(ctx context.Context, ids []int64) ([]*productdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.ListByIDs", trace.WithAttributes(attribute.Int("product.batch.count", len(ids))))
	defer span.End()
	return s.inner.ListByIDs(ctx, ids)
}

func (s *Service) UpdateProduct(ctx context.Context, id int64, updated *productdomain.Product) (*productdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.UpdateProduct", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()
	result, err := s.inner.UpdateProduct(ctx, id, updated)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update product", slog.Int64("id", id))
	}
	s.metrics.recordUpdated(ctx)
	return result, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "ProductService.DeleteProduct", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()
	if err := s.inner.DeleteProduct(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete product", slog.Int64("id", id))
	}
	s.metrics.recordDeleted(ctx)
	return nil
}

func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.Exists", trace.WithAttributes(attribute.Int64("product.id", id)))
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
	productsCreated metric.Int64Counter
	productsUpdated metric.Int64Counter
	productsDeleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("products.service.created", metric.WithDescription("Number of products created"))
	updated, _ := m.Int64Counter("products.service.updated", metric.WithDescription("Number of products updated"))
	deleted, _ := m.Int64Counter("products.service.deleted", metric.WithDescription("Number of products deleted"))
	return serviceMetrics{productsCreated: created, productsUpdated: updated, productsDeleted: deleted}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.productsCreated != nil {
		m.productsCreated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordUpdated(ctx context.Context) {
	if m.productsUpdated != nil {
		m.productsUpdated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.productsDeleted != nil {
		m.productsDeleted.Add(ctx, 1)
	}
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var _ productports.Service = (*Service)(nil)
