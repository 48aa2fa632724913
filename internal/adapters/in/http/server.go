// Package http is the inbound HTTP adapter. It translates echo requests into
// commands and queries and maps domain errors to status codes. Authenticated
// merchant routes and anonymous token routes live under separate prefixes.
package http

import (
	"errors"
	"net/http"

	"ordertrack/internal/adapters/in/http/middleware"
	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	submitCsatHandler        commands.SubmitCsatCommandHandler

	// Query handlers
	getOrdersByOwnerHandler   queries.GetOrdersByOwnerQueryHandler
	resolvePublicOrderHandler queries.ResolvePublicOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	submitCsatHandler commands.SubmitCsatCommandHandler,
	getOrdersByOwnerHandler queries.GetOrdersByOwnerQueryHandler,
	resolvePublicOrderHandler queries.ResolvePublicOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		updateOrderStatusHandler:  updateOrderStatusHandler,
		submitCsatHandler:         submitCsatHandler,
		getOrdersByOwnerHandler:   getOrdersByOwnerHandler,
		resolvePublicOrderHandler: resolvePublicOrderHandler,
	}
}

// RegisterRoutes mounts the API on the echo instance. Merchant routes go
// behind the bearer auth middleware; public token routes take none.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	merchant := e.Group("/api/v1/orders", auth)
	merchant.POST("", s.CreateOrder)
	merchant.GET("", s.GetOrders)
	merchant.PATCH("/:id/status", s.UpdateOrderStatus)

	public := e.Group("/api/v1/public/orders")
	public.GET("/:token", s.GetPublicOrder)
	public.POST("/:token/csat", s.SubmitCsat)
}

// CreateOrder handles POST /api/v1/orders - registers a new delivery order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		merchantID(ctx),
		req.CustomerName,
		req.CustomerPhone,
		req.DeliveryAddress,
		req.PriceTotal,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(created))
}

// GetOrders handles GET /api/v1/orders - lists the merchant's orders, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewGetOrdersByOwnerQuery(merchantID(ctx))
	if err != nil {
		return domainError(ctx, err)
	}

	listings, err := s.getOrdersByOwnerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]Order, len(listings))
	for i, item := range listings {
		response[i] = orderFromListing(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status - applies one
// lifecycle transition.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, merchantID(ctx), target, req.RiderPhone)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// GetPublicOrder handles GET /api/v1/public/orders/:token - resolves an opaque
// token to the matching role-scoped projection.
func (s *Server) GetPublicOrder(ctx echo.Context) error {
	query, err := queries.NewResolvePublicOrderQuery(ctx.Param("token"))
	if err != nil {
		return publicError(ctx, err)
	}

	projection, err := s.resolvePublicOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return publicError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, publicOrderFromProjection(projection))
}

// SubmitCsat handles POST /api/v1/public/orders/:token/csat - stores the
// customer's satisfaction rating.
func (s *Server) SubmitCsat(ctx echo.Context) error {
	var req SubmitCsatRequest
	if err := ctx.Bind(&req); err != nil {
		return publicError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	cmd, err := commands.NewSubmitCsatCommand(ctx.Param("token"), req.Score, req.Comment)
	if err != nil {
		return publicError(ctx, err)
	}

	updated, err := s.submitCsatHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return publicError(ctx, err)
	}

	receipt := CsatReceipt{
		ReadableID: updated.ReadableID(),
		Comment:    updated.CsatComment(),
	}
	if score := updated.CsatScore(); score != nil {
		receipt.Score = *score
	}

	return ctx.JSON(http.StatusOK, receipt)
}

// merchantID reads the authenticated merchant set by the auth middleware.
func merchantID(ctx echo.Context) kernel.UUID {
	id, _ := ctx.Get(middleware.MerchantIDContextKey).(kernel.UUID)
	return id
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps a use case error to a status code for merchant routes.
func domainError(ctx echo.Context, err error) error {
	code := statusCodeFor(err)
	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

// publicError maps a use case error for the anonymous routes. The body carries
// only a generic message so a probing caller learns nothing beyond the code.
func publicError(ctx echo.Context, err error) error {
	code := statusCodeFor(err)
	return ctx.JSON(code, Error{
		Code:    code,
		Message: genericMessageFor(code),
	})
}

func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func genericMessageFor(code int) string {
	switch code {
	case http.StatusNotFound:
		return "Order not found"
	case http.StatusBadRequest:
		return "Invalid request"
	case http.StatusConflict:
		return "Request conflicts with current state"
	default:
		return "Request failed"
	}
}
