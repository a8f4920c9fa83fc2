package http

import (
	"errors"
	"net/http"

	"ootdverse/internal/adapters/in/http/servers"
	"ootdverse/internal/pkg/session"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// SessionMiddleware attaches the gateway supplied user to the request
// context. Requests without the header pass through anonymously; handlers
// that need a user reject them.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			value := ctx.Request().Header.Get(session.Header)
			if value == "" {
				return next(ctx)
			}

			sess, err := session.FromHeader(value)
			if err != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: "Invalid " + session.Header + " header",
				})
			}

			req := ctx.Request()
			ctx.SetRequest(req.WithContext(session.WithSession(req.Context(), sess)))
			return next(ctx)
		}
	}
}

// RequestValidator checks requests against the OpenAPI document before they
// reach a handler. Paths the document does not describe, such as /health,
// are not validated.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				var routeErr *routers.RouteError
				if errors.As(err, &routeErr) {
					return next(ctx)
				}
				return err
			}

			err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			})
			if err != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: err.Error(),
				})
			}

			return next(ctx)
		}
	}, nil
}
