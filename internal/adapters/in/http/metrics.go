package http

import (
	"errors"
	"strconv"
	"time"

	"ootdverse/internal/core/domain/model/order"
	"ootdverse/internal/core/domain/model/shipping"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "ootdverse"

// Metrics holds the HTTP and order workflow collectors. A nil *Metrics
// records nothing.
type Metrics struct {
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	ordersCreated   *prometheus.CounterVec
	orderActions    *prometheus.CounterVec
	payments        *prometheus.CounterVec
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ordersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "orders_created_total",
			Help:      "Orders placed by shipping method.",
		}, []string{"shipping_method"}),
		orderActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "order_actions_total",
			Help:      "Order actions performed through the API.",
		}, []string{"action"}),
		payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "payment_results_total",
			Help:      "Payment provider results by outcome.",
		}, []string{"result"}),
	}

	reg.MustRegister(m.requests, m.requestDuration, m.ordersCreated, m.orderActions, m.payments)
	return m
}

// Middleware records every request under its route template, not its raw
// path, to keep label cardinality bounded.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if m == nil {
				return next(ctx)
			}

			start := time.Now()
			err := next(ctx)

			status := ctx.Response().Status
			var he *echo.HTTPError
			if errors.As(err, &he) {
				status = he.Code
			}

			route := ctx.Path()
			if route == "" {
				route = "unmatched"
			}
			method := ctx.Request().Method
			m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			m.requestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

func (m *Metrics) orderCreated(method shipping.Method) {
	if m != nil {
		m.ordersCreated.WithLabelValues(method.String()).Inc()
	}
}

func (m *Metrics) actionPerformed(action order.Action) {
	if m != nil {
		m.orderActions.WithLabelValues(action.String()).Inc()
	}
}

func (m *Metrics) paymentRecorded(result order.PaymentStatus) {
	if m != nil {
		m.payments.WithLabelValues(result.String()).Inc()
	}
}
