package http

import (
	"errors"
	"log/slog"
	"net/http"

	"ootdverse/internal/adapters/in/http/servers"
	"ootdverse/internal/core/application/usecases/commands"
	"ootdverse/internal/core/application/usecases/queries"
	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/order"
	"ootdverse/internal/core/domain/model/shipping"
	"ootdverse/internal/pkg/session"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	// Command handlers
	CreateOrder        commands.CreateOrderCommandHandler
	PerformOrderAction commands.PerformOrderActionCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	RecordPayment      commands.RecordPaymentCommandHandler
	RateOrder          commands.RateOrderCommandHandler

	// Query handlers
	GetOrder           queries.GetOrderQueryHandler
	GetOrderActions    queries.GetOrderActionsQueryHandler
	ListOrders         queries.ListOrdersQueryHandler
	GetOrderStatistics queries.GetOrderStatisticsQueryHandler
	GetShippingOptions queries.GetShippingOptionsQueryHandler
	ValidateShipping   queries.ValidateShippingQueryHandler
	QuoteShippingFee   queries.QuoteShippingFeeQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h       Handlers
	metrics *Metrics
	logger  *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
// A nil logger discards output.
func NewServer(h Handlers, metrics *Metrics, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		h:       h,
		metrics: metrics,
		logger:  logger.With("component", "http_server"),
	}
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	sess, err := session.FromContext(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}

	role := order.RoleUnknown
	if params.Role != nil {
		if role, err = order.ParseRole(*params.Role); err != nil {
			return s.fail(ctx, err)
		}
	}
	status := order.Unknown
	if params.Status != nil {
		if status, err = order.ParseStatus(*params.Status); err != nil {
			return s.fail(ctx, err)
		}
	}

	query, err := queries.NewListOrdersQuery(sess.UserID, role, status, deref(params.Page), deref(params.Limit))
	if err != nil {
		return s.fail(ctx, err)
	}

	page, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderPage(page))
}

// CreateOrder handles POST /api/v1/orders - the session user buys a listing.
func (s *Server) CreateOrder(ctx echo.Context) error {
	sess, err := session.FromContext(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.NewOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	method, methodErr := shipping.ParseMethod(body.ShippingMethod)
	payment, paymentErr := order.ParsePaymentMethod(body.PaymentMethod)
	listingID, listingErr := toKernelUUID(body.ListingId)
	addressID, addressErr := toKernelUUID(body.AddressId)
	if err = errors.Join(methodErr, paymentErr, listingErr, addressErr); err != nil {
		return s.fail(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, sess.UserID, listingID, addressID,
		method, payment, deref(body.BuyerNote), deref(body.DeliveryNote))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	s.metrics.orderCreated(method)

	return s.respondWithOrder(ctx, http.StatusCreated, orderID, sess.UserID)
}

// GetOrderStatistics handles GET /api/v1/orders/statistics.
func (s *Server) GetOrderStatistics(ctx echo.Context, params servers.GetOrderStatisticsParams) error {
	sess, err := session.FromContext(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}

	role := order.RoleUnknown
	if params.Role != nil {
		if role, err = order.ParseRole(*params.Role); err != nil {
			return s.fail(ctx, err)
		}
	}

	query, err := queries.NewGetOrderStatisticsQuery(sess.UserID, role)
	if err != nil {
		return s.fail(ctx, err)
	}

	stats, err := s.h.GetOrderStatistics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderStatistics{
		TotalOrders:       stats.TotalOrders,
		ActiveOrders:      stats.ActiveOrders,
		CompletedOrders:   stats.CompletedOrders,
		CancelledOrders:   stats.CancelledOrders,
		TotalRevenue:      stats.TotalRevenue,
		AverageOrderValue: stats.AverageOrderValue,
		RatingCount:       stats.RatingCount,
		AverageRating:     stats.AverageRating,
	})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	sess, err := session.FromContext(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := toKernelUUID(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, id, sess.UserID)
}

// GetOrderActions handles GET /api/v1/orders/{orderId}/actions.
func (s *Server) GetOrderActions(ctx echo.Context, orderID openapi_types.UUID) error {
	sess, err := session.FromContext(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := toKernelUUID(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderActionsQuery(id, sess.UserID)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.h.GetOrderActions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderActions{
		Status:    resp.Status.String(),
		Role:      resp.Role.String(),
		Action:    toActionDescriptor(resp.Action),
		CanCancel: resp.CanCancel,
	})
}

// PerformOrderAction handles POST /api/v1/orders/{orderId}/actions.
func (s *Server) PerformOrderAction(ctx echo.Context, orderID openapi_types.UUID) error {
	sess, err := session.FromContext(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.OrderActionRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, idErr := toKernelUUID(orderID)
	action, actionErr := order.ParseAction(body.Action)
	if err = errors.Join(idErr, actionErr); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewPerformOrderActionCommand(id, sess.UserID, action, deref(body.TrackingNumber))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.PerformOrderAction.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	s.metrics.actionPerformed(action)

	return s.respondWithOrder(ctx, http.StatusOK, id, sess.UserID)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	sess, err := session.FromContext(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.CancelRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id, sess.UserID, deref(body.Reason))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	s.metrics.actionPerformed(order.ActionCancel)

	return s.respondWithOrder(ctx, http.StatusOK, id, sess.UserID)
}

// RecordPayment handles POST /api/v1/orders/{orderId}/payment. It is called by
// the payment provider, so no session is required.
func (s *Server) RecordPayment(ctx echo.Context, orderID openapi_types.UUID) error {
	var body servers.PaymentResult
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, idErr := toKernelUUID(orderID)
	result, resultErr := order.ParsePaymentStatus(body.Status)
	if err := errors.Join(idErr, resultErr); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRecordPaymentCommand(id, result, deref(body.TransactionId))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.RecordPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	s.metrics.paymentRecorded(result)

	return ctx.NoContent(http.StatusNoContent)
}

// RateOrder handles POST /api/v1/orders/{orderId}/rating.
func (s *Server) RateOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	sess, err := session.FromContext(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.RatingRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRateOrderCommand(id, sess.UserID, body.Rating, deref(body.Review))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.RateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// QuoteShippingFee handles POST /api/v1/shipping/quote.
func (s *Server) QuoteShippingFee(ctx echo.Context) error {
	var body servers.QuoteRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	method, err := shipping.ParseMethod(body.Method)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewQuoteShippingFeeQuery(method, toAddress(body.From), toAddress(body.To), deref(body.WeightGrams))
	if err != nil {
		return s.fail(ctx, err)
	}

	quote, err := s.h.QuoteShippingFee.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Quote{
		Method:       quote.Method.String(),
		ProviderName: quote.ProviderName,
		Region:       quote.Region.String(),
		Fee:          quote.Fee,
		Eta:          servers.Eta{MinDays: quote.ETA.MinDays(), MaxDays: quote.ETA.MaxDays()},
	})
}

// GetShippingOptions handles POST /api/v1/shipping/options.
func (s *Server) GetShippingOptions(ctx echo.Context) error {
	sess, err := session.FromContext(ctx.Request().Context())
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.ShippingOptionsRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	listingID, listingErr := toKernelUUID(body.ListingId)
	addressID, addressErr := toKernelUUID(body.AddressId)
	if err = errors.Join(listingErr, addressErr); err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetShippingOptionsQuery(listingID, sess.UserID, addressID)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.h.GetShippingOptions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	options := make([]servers.MethodOption, len(resp.Options))
	for i, opt := range resp.Options {
		options[i] = toMethodOption(opt)
	}

	return ctx.JSON(http.StatusOK, servers.ShippingOptions{
		CanShip:  resp.CanShip,
		Province: resp.Province,
		Options:  options,
	})
}

// ValidateShipping handles POST /api/v1/shipping/validate.
func (s *Server) ValidateShipping(ctx echo.Context) error {
	var body servers.ValidateShippingRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	listingID, err := toKernelUUID(body.ListingId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewValidateShippingQuery(listingID, body.Province)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.h.ValidateShipping.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	regions := make([]string, len(resp.Regions))
	for i, r := range resp.Regions {
		regions[i] = r.String()
	}

	return ctx.JSON(http.StatusOK, servers.ShippingValidation{
		CanShip:      resp.CanShip,
		Regions:      regions,
		ShippingNote: resp.ShippingNote,
	})
}

// respondWithOrder reads the order back through the participant check, so
// the response carries the caller's role and next action.
func (s *Server) respondWithOrder(ctx echo.Context, status int, orderID, userID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID, userID)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(status, toOrderDetails(resp))
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
