package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/storefront/pkg/service"
)

// Actions the storefront frontend selects through the ?action= query
// parameter. GET without an action means products.
const (
	ActionProducts      = "products"
	ActionReviews       = "reviews"
	ActionCheckDiscount = "check-discount"
	ActionOrders        = "orders"
	ActionCreateOrder   = "create-order"
)

type routeKey struct {
	Method string
	Action string
}

// Handler dispatches storefront API calls on (method, action) pairs the
// way the legacy single-function API did, so the frontend needs no
// changes.
type Handler struct {
	catalog service.CatalogService
	orders  service.OrderService
	logger  *zap.Logger
	timeout time.Duration
	routes  map[routeKey]gin.HandlerFunc
}

func NewHandler(catalog service.CatalogService, orders service.OrderService, logger *zap.Logger, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	h := &Handler{
		catalog: catalog,
		orders:  orders,
		logger:  logger,
		timeout: timeout,
	}
	h.routes = map[routeKey]gin.HandlerFunc{
		{http.MethodGet, ActionProducts}:      h.listProducts,
		{http.MethodGet, ActionReviews}:       h.listReviews,
		{http.MethodGet, ActionCheckDiscount}: h.checkDiscount,
		{http.MethodGet, ActionOrders}:        h.listOrders,
		{http.MethodPost, ActionCreateOrder}:  h.createOrder,
	}
	return h
}

// Dispatch routes one API call. OPTIONS always short-circuits to the
// CORS preflight response; anything not in the route table is a 404.
func (h *Handler) Dispatch(c *gin.Context) {
	if c.Request.Method == http.MethodOptions {
		h.preflight(c)
		return
	}

	action := c.DefaultQuery("action", ActionProducts)
	if handle, ok := h.routes[routeKey{Method: c.Request.Method, Action: action}]; ok {
		handle(c)
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}

func (h *Handler) preflight(c *gin.Context) {
	c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type")
	c.Header("Access-Control-Max-Age", "86400")
	c.Status(http.StatusOK)
}

// listProducts godoc
// @Summary List products, newest first
// @Param limit query int false "Max rows" default(100)
// @Success 200 {array} models.Product
// @Router /api [get]
func (h *Handler) listProducts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrInvalidLimit.Error()})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	products, err := h.catalog.ListProducts(ctx, limit)
	if err != nil {
		h.fail(c, "list products", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// listReviews godoc
// @Summary List customer reviews, newest first
// @Success 200 {array} models.Review
// @Router /api?action=reviews [get]
func (h *Handler) listReviews(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	reviews, err := h.catalog.ListReviews(ctx)
	if err != nil {
		h.fail(c, "list reviews", err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// checkDiscount godoc
// @Summary Look up a customer's loyalty discount by phone
// @Param phone query string true "Customer phone"
// @Success 200 {object} service.DiscountStatus
// @Router /api?action=check-discount [get]
func (h *Handler) checkDiscount(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	status, err := h.orders.CheckDiscount(ctx, c.Query("phone"))
	if err != nil {
		h.fail(c, "check discount", err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// createOrder godoc
// @Summary Place an order
// @Accept json
// @Success 200 {object} map[string]interface{}
// @Router /api?action=create-order [post]
func (h *Handler) createOrder(c *gin.Context) {
	var req service.CreateOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	orderID, err := h.orders.CreateOrder(ctx, req)
	if err != nil {
		h.fail(c, "create order", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order_id": orderID, "message": "Order created"})
}

// listOrders godoc
// @Summary List a customer's orders by phone, newest first
// @Param phone query string true "Customer phone"
// @Success 200 {array} models.Order
// @Router /api?action=orders [get]
func (h *Handler) listOrders(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	orders, err := h.orders.ListOrders(ctx, c.Query("phone"))
	if err != nil {
		h.fail(c, "list orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// requestContext bounds every database round-trip; there is no retry,
// order placement is not idempotent.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// fail converts a service error into the uniform JSON error body.
// Internal detail stays in the logs, never in a 500 response.
func (h *Handler) fail(c *gin.Context, op string, err error) {
	if service.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errors.Is(err, context.DeadlineExceeded) {
		h.logger.Error("Statement timeout", zap.String("op", op), zap.Error(err))
	} else {
		h.logger.Error("Request failed", zap.String("op", op), zap.Error(err))
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
