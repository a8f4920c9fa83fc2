// Package servers holds the OpenAPI contract of the HTTP API, its request and
// response models and the echo bindings that route requests to a
// ServerInterface implementation.
package servers

import (
	_ "embed"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

//go:embed openapi.yml
var rawSpec []byte

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// (GET /api/v1/orders/statistics)
	GetOrderStatistics(ctx echo.Context, params GetOrderStatisticsParams) error
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// (GET /api/v1/orders/{orderId}/actions)
	GetOrderActions(ctx echo.Context, orderId openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/actions)
	PerformOrderAction(ctx echo.Context, orderId openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/payment)
	RecordPayment(ctx echo.Context, orderId openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/rating)
	RateOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// (POST /api/v1/shipping/quote)
	QuoteShippingFee(ctx echo.Context) error
	// (POST /api/v1/shipping/options)
	GetShippingOptions(ctx echo.Context) error
	// (POST /api/v1/shipping/validate)
	ValidateShipping(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams

	if err := runtime.BindQueryParameter("form", true, false, "role", ctx.QueryParams(), &params.Role); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter role: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrderStatistics(ctx echo.Context) error {
	var params GetOrderStatisticsParams

	if err := runtime.BindQueryParameter("form", true, false, "role", ctx.QueryParams(), &params.Role); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter role: %s", err))
	}

	return w.Handler.GetOrderStatistics(ctx, params)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) GetOrderActions(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrderActions(ctx, orderID)
}

func (w *ServerInterfaceWrapper) PerformOrderAction(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.PerformOrderAction(ctx, orderID)
}

func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CancelOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) RecordPayment(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RecordPayment(ctx, orderID)
}

func (w *ServerInterfaceWrapper) RateOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RateOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) QuoteShippingFee(ctx echo.Context) error {
	return w.Handler.QuoteShippingFee(ctx)
}

func (w *ServerInterfaceWrapper) GetShippingOptions(ctx echo.Context) error {
	return w.Handler.GetShippingOptions(ctx)
}

func (w *ServerInterfaceWrapper) ValidateShipping(ctx echo.Context) error {
	return w.Handler.ValidateShipping(ctx)
}

func bindOrderID(ctx echo.Context) (openapi_types.UUID, error) {
	var orderID openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return orderID, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}
	return orderID, nil
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes with a base URL prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/statistics", wrapper.GetOrderStatistics)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId/actions", wrapper.GetOrderActions)
	router.POST(baseURL+"/api/v1/orders/:orderId/actions", wrapper.PerformOrderAction)
	router.POST(baseURL+"/api/v1/orders/:orderId/cancel", wrapper.CancelOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/payment", wrapper.RecordPayment)
	router.POST(baseURL+"/api/v1/orders/:orderId/rating", wrapper.RateOrder)
	router.POST(baseURL+"/api/v1/shipping/quote", wrapper.QuoteShippingFee)
	router.POST(baseURL+"/api/v1/shipping/options", wrapper.GetShippingOptions)
	router.POST(baseURL+"/api/v1/shipping/validate", wrapper.ValidateShipping)
}

var (
	swaggerOnce sync.Once
	swagger     *openapi3.T
	swaggerErr  error
)

// GetSwagger returns the parsed and validated OpenAPI document. The document
// is parsed once and shared, so callers must not modify it.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()
		swagger, swaggerErr = loader.LoadFromData(rawSpec)
		if swaggerErr != nil {
			swaggerErr = fmt.Errorf("error loading OpenAPI document: %w", swaggerErr)
			return
		}
		if err := swagger.Validate(loader.Context); err != nil {
			swagger, swaggerErr = nil, fmt.Errorf("invalid OpenAPI document: %w", err)
		}
	})
	return swagger, swaggerErr
}

// RawSpec returns the OpenAPI document as written, in YAML.
func RawSpec() []byte {
	return rawSpec
}
