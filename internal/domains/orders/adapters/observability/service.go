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

	orderdomain "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/domain"
	orderports "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/ports"
)

const tracerName = "github.com/88-AL3Xtx/go-ecommerce-api/internal/domains/orders/adapters/observability/service"

// Service decorates the order service with tracing, logging, and metrics.
type Service struct {
	inner   orderports.Service
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

// New wraps the core order service.
func New(inner orderports.Service, opts ...Option) orderports.Service {
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

func (s *Service) CreateOrder(ctx context.Context, order *orderdomain.Order) (*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.CreateOrder", trace.WithAttributes(attribute.Int64("order.buyer_id", order.BuyerID)))
	defer span.End()
	s.logInfo(ctx, "creating order", slog.Int64("buyer_id", order.BuyerID))
	result, err := s.inner.CreateOrder(ctx, order)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create order", slog.Int64("buyer_id", order.BuyerID))
	}
	s.metrics.recordCreated(ctx)
	s.logInfo(ctx, "order created", slog.Int64("id", result.ID))
	return result, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetOrder", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()
	return s.inner.GetOrder(ctx, id)
}

func (s *Service) ListByBuyer(ctx context.Context, buyerID int64) ([]*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListByBuyer", trace.WithAttributes(attribute.Int64("order.buyer_id", buyerID)))
	defer span.End()
	return s.inner.ListByBuyer(ctx, buyerID)
}

func (s *Service) CountByBuyer(ctx context.Context, buyerID int64) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.CountByBuyer", trace.WithAttributes(attribute.Int64("order.buyer_id", buyerID)))
	defer span.End()
	return s.inner.CountByBuyer(ctx, buyerID)
}

func (s *Service) AddProduct(ctx context.Context, orderID, productID int64) error {
	ctx, span := s.tracer.Start(ctx, "OrderService.AddProduct",
		trace.WithAttributes(attribute.Int64("order.id", orderID), attribute.Int64("product.id", productID)))
	defer span.End()
	if err := s.inner.AddProduct(ctx, orderID, productID); err != nil {
		return s.handleError(ctx, span, err, "failed to add product to order",
			slog.Int64("order_id", orderID), slog.Int64("product_id", productID))
	}
	s.metrics.recordLinked(ctx)
	s.logInfo(ctx, "product added to order", slog.Int64("order_id", orderID), slog.Int64("product_id", productID))
	return nil
}

func (s *Service) RemoveProduct(ctx context.Context, orderID, productID int64) error {
	ctx, span := s.tracer.Start(ctx, "OrderService.RemoveProduct",
		trace.WithAttributes(attribute.Int64("order.id", orderID), attribute.Int64("product.id", productID)))
	defer span.End()
	if err := s.inner.RemoveProduct(ctx, orderID, productID); err != nil {
		return s.handleError(ctx, span, err, "failed to remove product from order",
			slog.Int64("order_id", orderID), slog.Int64("product_id", productID))
	}
	s.metrics.recordUnlinked(ctx)
	s.logInfo(ctx, "product removed from order", slog.Int64("order_id", orderID), slog.Int64("product_id", productID))
	return nil
}

func (s *Service) ListProductIDs(ctx context.Context, orderID int64) ([]int64, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListProductIDs", trace.WithAttributes(attribute.Int64("order.id", orderID)))
	defer span.End()
	return s.inner.ListProductIDs(ctx, orderID)
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
	ordersCreated    metric.Int64Counter
	productsLinked   metric.Int64Counter
	productsUnlinked metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("orders.service.created", metric.WithDescription("Number of orders created"))
	linked, _ := m.Int64Counter("orders.service.products_linked", metric.WithDescription("Number of products linked to orders"))
	unlinked, _ := m.Int64Counter("orders.service.products_unlinked", metric.WithDescription("Number of products unlinked from orders"))
	return serviceMetrics{ordersCreated: created, productsLinked: linked, productsUnlinked: unlinked}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.ordersCreated != nil {
		m.ordersCreated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordLinked(ctx context.Context) {
	if m.productsLinked != nil {
		m.productsLinked.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordUnlinked(ctx context.Context) {
	if m.productsUnlinked != nil {
		m.productsUnlinked.Add(ctx, 1)
	}
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var _ orderports.Service = (*Service)(nil)
