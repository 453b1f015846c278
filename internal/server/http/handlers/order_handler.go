package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderlunch/internal/domain/model"
	"github.com/polkiloo/orderlunch/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Submit handles POST /api/orders.
func (h *OrderHandler) Submit(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidBody(c, err)
		return
	}
	order, err := h.facade.SubmitOrder(c.Request.Context(), toOrder(req))
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.Header("Location", c.FullPath()+"/"+order.OrderID)
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// Get handles GET /api/orders/:orderId.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		abortDomainError(c, err)
		return
	}
	if order == nil {
		abortNotFound(c, "order")
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// History handles GET /api/orders. The optional days query narrows the window;
// the use case default applies when it is absent.
func (h *OrderHandler) History(c *gin.Context) {
	days := 0
	if raw, ok := c.GetQuery("days"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			abortWithError(c, http.StatusBadRequest, "invalid_days", "days must be a positive integer")
			return
		}
		days = n
	}
	orders, err := h.facade.RecentOrders(c.Request.Context(), days)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	resp := make([]dto.OrderSummaryResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderSummary(o))
	}
	c.JSON(http.StatusOK, resp)
}

// Pending handles GET /api/orders/pending.
func (h *OrderHandler) Pending(c *gin.Context) {
	orders, err := h.facade.PendingOrders(c.Request.Context())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, resp)
}

func toOrder(req dto.OrderRequest) *model.Order {
	items := make([]model.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, model.OrderItem{
			MenuItemID:   it.MenuItemID,
			MenuItemName: it.MenuItemName,
			Price:        it.Price,
			Quantity:     it.Quantity,
		})
	}
	return &model.Order{
		StoreID:       req.StoreID,
		StoreName:     req.StoreName,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Items:         items,
	}
}

func toOrderResponse(o model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			MenuItemID:   it.MenuItemID,
			MenuItemName: it.MenuItemName,
			Price:        it.Price,
			Quantity:     it.Quantity,
			Subtotal:     it.Subtotal(),
		})
	}
	return dto.OrderResponse{
		OrderID:       o.OrderID,
		StoreID:       o.StoreID,
		StoreName:     o.StoreName,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Items:         items,
		TotalAmount:   o.Total(),
		Status:        string(o.Status),
		StatusLabel:   o.Status.Label(),
		CreatedAt:     o.CreatedAt,
	}
}

func toOrderSummary(o model.Order) dto.OrderSummaryResponse {
	return dto.OrderSummaryResponse{
		OrderID:     o.OrderID,
		CreatedAt:   o.CreatedAt,
		StoreName:   o.StoreName,
		TotalAmount: o.Total(),
		Status:      string(o.Status),
		StatusLabel: o.Status.Label(),
		ItemCount:   len(o.Items),
	}
}
