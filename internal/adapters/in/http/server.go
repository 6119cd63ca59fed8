package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/generated/servers"
	"sales/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Use case handlers the server dispatches to.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.UUID, error)
	}
	AddOrderItemHandler interface {
		Handle(ctx context.Context, cmd commands.AddOrderItemCommand) (kernel.UUID, error)
	}
	ChangeOrderStateHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStateCommand) error
	}
	CreateCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCustomerCommand) (kernel.UUID, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderSummary, error)
	}
	GetCustomerHandler interface {
		Handle(ctx context.Context, query queries.GetCustomerQuery) (queries.CustomerView, error)
	}
)

// Handlers groups the use cases the REST surface dispatches to.
type Handlers struct {
	CreateOrder      CreateOrderHandler
	AddOrderItem     AddOrderItemHandler
	ChangeOrderState ChangeOrderStateHandler
	CreateCustomer   CreateCustomerHandler
	GetOrder         GetOrderHandler
	ListOrders       ListOrdersHandler
	GetCustomer      GetCustomerHandler
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface by translating requests into
// commands and queries.
type Server struct {
	handlers        Handlers
	defaultCurrency string
	logger          *slog.Logger
}

// NewServer creates a server. defaultCurrency is used when a new order omits
// its currency.
func NewServer(handlers Handlers, defaultCurrency string, logger *slog.Logger) *Server {
	return &Server{
		handlers:        handlers,
		defaultCurrency: defaultCurrency,
		logger:          logger.With("component", "http"),
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	currency := strings.TrimSpace(valueOf(body.Currency))
	if currency == "" {
		currency = s.defaultCurrency
	}

	cmd, err := commands.NewCreateOrderCommand(body.CustomerId, currency, valueOf(body.OrderedAt))
	if err != nil {
		return s.fail(c, err)
	}

	orderID, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, servers.Created{Id: orderID.Bytes()})
}

// ListOrders handles GET /api/v1/orders?state=PENDING.
func (s *Server) ListOrders(c echo.Context, params servers.ListOrdersParams) error {
	query, err := queries.NewListOrdersQuery(valueOf(params.State))
	if err != nil {
		return s.fail(c, err)
	}

	summaries, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]servers.OrderSummary, len(summaries))
	for i, summary := range summaries {
		response[i] = servers.OrderSummary{
			Id:         summary.ID.Bytes(),
			CustomerId: summary.CustomerID,
			State:      summary.State.String(),
			OrderedAt:  summary.OrderedAt.Format(time.RFC3339Nano),
			ItemCount:  summary.ItemCount,
			Total:      summary.Total.String(),
		}
	}

	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}. Formatted fields follow
// Accept-Language.
func (s *Server) GetOrder(c echo.Context, orderId servers.OrderId) error {
	orderID, err := toID("orderId", orderId)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrder(view, negotiateLocale(c)))
}

// AddOrderItem handles POST /api/v1/orders/{orderId}/items.
func (s *Server) AddOrderItem(c echo.Context, orderId servers.OrderId) error {
	orderID, err := toID("orderId", orderId)
	if err != nil {
		return s.fail(c, err)
	}

	var body servers.AddOrderItemJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	unitPrice, err := decimal.NewFromString(strings.TrimSpace(body.UnitPrice))
	if err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("unitPrice", err))
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, body.ProductId, body.Quantity, unitPrice)
	if err != nil {
		return s.fail(c, err)
	}

	itemID, err := s.handlers.AddOrderItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, servers.Created{Id: itemID.Bytes()})
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm.
func (s *Server) ConfirmOrder(c echo.Context, orderId servers.OrderId) error {
	return s.changeOrderState(c, orderId, order.OperationConfirm)
}

// ShipOrder handles POST /api/v1/orders/{orderId}/ship.
func (s *Server) ShipOrder(c echo.Context, orderId servers.OrderId) error {
	return s.changeOrderState(c, orderId, order.OperationShip)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(c echo.Context, orderId servers.OrderId) error {
	return s.changeOrderState(c, orderId, order.OperationCancel)
}

func (s *Server) changeOrderState(c echo.Context, orderId servers.OrderId, operation order.Operation) error {
	orderID, err := toID("orderId", orderId)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewChangeOrderStateCommand(orderID, operation)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.ChangeOrderState.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(c echo.Context) error {
	var body servers.CreateCustomerJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	customerID, err := s.handlers.CreateCustomer.Handle(c.Request().Context(), commands.NewCreateCustomerCommand(body.Name))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, servers.Created{Id: customerID.Bytes()})
}

// GetCustomer handles GET /api/v1/customers/{customerId}.
func (s *Server) GetCustomer(c echo.Context, customerId openapi_types.UUID) error {
	customerID, err := toID("customerId", customerId)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetCustomerQuery(customerID)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.handlers.GetCustomer.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := servers.Customer{Id: view.ID.Bytes(), Name: view.Name}
	if view.LastOrderPrice != nil {
		price := view.LastOrderPrice.String()
		response.LastOrderPrice = &price
	}
	return c.JSON(http.StatusOK, response)
}

// toID converts a bound path parameter. The nil UUID is refused here.
func toID(param string, id openapi_types.UUID) (kernel.UUID, error) {
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return converted, nil
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
