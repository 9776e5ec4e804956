// Package http provides the inbound REST adapter built on Echo.
// Handlers translate HTTP requests into commands and queries and map
// domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"bundling/internal/core/application/usecases/commands"
	"bundling/internal/core/application/usecases/queries"
	"bundling/internal/core/domain/model/bundle"
	"bundling/internal/core/domain/model/kernel"
	"bundling/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewItem is the request body for adding an item to an order.
// Price is a decimal string such as "25.99". Category and Parent are optional:
// an empty category falls back to the item default, and an empty parent places
// the item at the top level of the order.
type NewItem struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category,omitempty"`
	Parent   string `json:"parent,omitempty"`
}

// NewContainer is the request body for adding a container to an order.
// HandlingCost is a decimal string. PackagingType, MaxCapacity, and Parent are
// optional; zero MaxCapacity falls back to the container default.
type NewContainer struct {
	Name          string `json:"name"`
	HandlingCost  string `json:"handlingCost"`
	PackagingType string `json:"packagingType,omitempty"`
	MaxCapacity   int    `json:"maxCapacity,omitempty"`
	Parent        string `json:"parent,omitempty"`
}

// PackReport is the response body returned after packing an order's loose
// items. Rejected lists the names of items no container could accept; they
// remain at the order's top level.
type PackReport struct {
	Packed   int      `json:"packed"`
	Rejected []string `json:"rejected,omitempty"`
}

// OrderCreated is the response body returned after creating an order.
type OrderCreated struct {
	ID string `json:"id"`
}

// Order is the list representation of an order.
type Order struct {
	ID               string    `json:"id"`
	CreatedAt        time.Time `json:"createdAt"`
	TotalPrice       string    `json:"totalPrice"`
	TopLevelElements int       `json:"topLevelElements"`
}

// OrderSummary is the response body for the order summary endpoint.
type OrderSummary struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	Summary    string    `json:"summary"`
	TotalPrice string    `json:"totalPrice"`
}

// OrderStatistics is the response body for the order statistics endpoint.
type OrderStatistics struct {
	ID               string `json:"id"`
	TopLevelElements int    `json:"topLevelElements"`
	TotalItems       int    `json:"totalItems"`
	TotalContainers  int    `json:"totalContainers"`
	TotalPrice       string `json:"totalPrice"`
	AveragePrice     string `json:"averagePrice"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	addItemHandler       commands.AddItemCommandHandler
	addContainerHandler  commands.AddContainerCommandHandler
	removeElementHandler commands.RemoveElementCommandHandler
	packOrderHandler     commands.PackOrderCommandHandler

	// Query handlers
	getAllOrdersHandler       queries.GetAllOrdersQueryHandler
	getOrderSummaryHandler    queries.GetOrderSummaryQueryHandler
	getOrderStatisticsHandler queries.GetOrderStatisticsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	addContainerHandler commands.AddContainerCommandHandler,
	removeElementHandler commands.RemoveElementCommandHandler,
	packOrderHandler commands.PackOrderCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderSummaryHandler queries.GetOrderSummaryQueryHandler,
	getOrderStatisticsHandler queries.GetOrderStatisticsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		addItemHandler:            addItemHandler,
		addContainerHandler:       addContainerHandler,
		removeElementHandler:      removeElementHandler,
		packOrderHandler:          packOrderHandler,
		getAllOrdersHandler:       getAllOrdersHandler,
		getOrderSummaryHandler:    getOrderSummaryHandler,
		getOrderStatisticsHandler: getOrderStatisticsHandler,
	}
}

// RegisterRoutes attaches all API routes to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.POST("/orders/:orderId/items", s.AddItem)
	api.POST("/orders/:orderId/containers", s.AddContainer)
	api.DELETE("/orders/:orderId/elements/:name", s.RemoveElement)
	api.POST("/orders/:orderId/pack", s.PackOrder)
	api.GET("/orders/:orderId/summary", s.GetOrderSummary)
	api.GET("/orders/:orderId/statistics", s.GetOrderStatistics)

	e.GET("/health", s.Health)
}

// CreateOrder handles POST /api/v1/orders - creates a new empty order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: orderID.String()})
}

// AddItem handles POST /api/v1/orders/:orderId/items - attaches an item to an order.
func (s *Server) AddItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var body NewItem
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.MoneyFromString(body.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+err.Error())
	}

	cmd, err := commands.NewAddItemCommand(orderID, body.Name, price, body.Category, body.Parent)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if err = s.addItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AddContainer handles POST /api/v1/orders/:orderId/containers - attaches a container to an order.
func (s *Server) AddContainer(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var body NewContainer
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	handlingCost, err := kernel.MoneyFromString(body.HandlingCost)
	if err != nil {
		return badRequest(ctx, "Invalid handling cost: "+err.Error())
	}

	cmd, err := commands.NewAddContainerCommand(
		orderID,
		body.Name,
		handlingCost,
		body.PackagingType,
		body.MaxCapacity,
		body.Parent,
	)
	if err != nil {
		return badRequest(ctx, "Invalid container data: "+err.Error())
	}

	if err = s.addContainerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveElement handles DELETE /api/v1/orders/:orderId/elements/:name -
// detaches the named element from an order.
func (s *Server) RemoveElement(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewRemoveElementCommand(orderID, ctx.Param("name"))
	if err != nil {
		return badRequest(ctx, "Invalid element name: "+err.Error())
	}

	if err = s.removeElementHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PackOrder handles POST /api/v1/orders/:orderId/pack - distributes the
// order's loose top-level items across its top-level containers.
func (s *Server) PackOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewPackOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	result, err := s.packOrderHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrNoContainersInOrder) {
		return respond(ctx, http.StatusConflict, err)
	}
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PackReport{
		Packed:   result.Packed,
		Rejected: result.Rejected,
	})
}

// GetOrders handles GET /api/v1/orders - retrieves the order list.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			ID:               o.ID.String(),
			CreatedAt:        o.CreatedAt,
			TotalPrice:       o.TotalPrice.String(),
			TopLevelElements: o.TopLevelElements,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderSummary handles GET /api/v1/orders/:orderId/summary.
func (s *Server) GetOrderSummary(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderSummaryQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	summary, err := s.getOrderSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderSummary{
		ID:         summary.ID.String(),
		CreatedAt:  summary.CreatedAt,
		Summary:    summary.Summary,
		TotalPrice: summary.TotalPrice.String(),
	})
}

// GetOrderStatistics handles GET /api/v1/orders/:orderId/statistics.
func (s *Server) GetOrderStatistics(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderStatisticsQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	stats, err := s.getOrderStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatistics{
		ID:               stats.ID.String(),
		TopLevelElements: stats.TopLevelElements,
		TotalItems:       stats.TotalItems,
		TotalContainers:  stats.TotalContainers,
		TotalPrice:       stats.TotalPrice.String(),
		AveragePrice:     stats.AveragePrice.String(),
	})
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// errorResponse maps domain errors onto HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respond(ctx, http.StatusNotFound, err)
	case errors.Is(err, bundle.ErrCapacityExceeded),
		errors.Is(err, bundle.ErrCycleDetected),
		errors.Is(err, bundle.ErrElementAlreadyAttached):
		return respond(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respond(ctx, http.StatusBadRequest, err)
	default:
		return respond(ctx, http.StatusInternalServerError, err)
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func respond(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
