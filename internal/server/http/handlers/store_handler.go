package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderlunch/internal/domain/model"
	"github.com/polkiloo/orderlunch/internal/server/http/dto"
)

// StoreHandler manages store catalogue endpoints.
type StoreHandler struct {
	facade StoreFacade
}

// NewStoreHandler constructs StoreHandler.
func NewStoreHandler(facade StoreFacade) *StoreHandler {
	return &StoreHandler{facade: facade}
}

// List handles GET /api/stores.
func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.facade.Stores(c.Request.Context())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	resp := make([]dto.StoreResponse, 0, len(stores))
	for _, s := range stores {
		resp = append(resp, toStoreResponse(s))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/stores/:id.
func (h *StoreHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	store, err := h.facade.Store(c.Request.Context(), id)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	if store == nil {
		abortNotFound(c, "store")
		return
	}
	c.JSON(http.StatusOK, toStoreResponse(*store))
}

// Create handles POST /api/stores.
func (h *StoreHandler) Create(c *gin.Context) {
	var req dto.StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidBody(c, err)
		return
	}
	created, err := h.facade.RegisterStore(c.Request.Context(), toStore(req))
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.Header("Location", c.FullPath()+"/"+strconv.Itoa(created.ID))
	c.JSON(http.StatusCreated, toStoreResponse(*created))
}

// Update handles PUT /api/stores/:id.
func (h *StoreHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidBody(c, err)
		return
	}
	store := toStore(req)
	store.ID = id
	updated, err := h.facade.ReviseStore(c.Request.Context(), store)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	if updated == nil {
		abortNotFound(c, "store")
		return
	}
	c.JSON(http.StatusOK, toStoreResponse(*updated))
}

// Delete handles DELETE /api/stores/:id.
func (h *StoreHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.facade.DeleteStore(c.Request.Context(), id)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	if !deleted {
		abortNotFound(c, "store")
		return
	}
	c.Status(http.StatusNoContent)
}

// toStore numbers menu items by position.
func toStore(req dto.StoreRequest) *model.Store {
	items := make([]model.MenuItem, 0, len(req.MenuItems))
	for i, it := range req.MenuItems {
		items = append(items, model.MenuItem{
			ID:          i + 1,
			Name:        it.Name,
			Price:       it.Price,
			Description: it.Description,
		})
	}
	return &model.Store{
		Name:          req.Name,
		Address:       req.Address,
		PhoneType:     model.PhoneType(req.PhoneType),
		Phone:         req.Phone,
		BusinessHours: req.BusinessHours,
		MenuItems:     items,
	}
}

func toStoreResponse(s model.Store) dto.StoreResponse {
	items := make([]dto.MenuItemResponse, 0, len(s.MenuItems))
	for _, it := range s.MenuItems {
		items = append(items, dto.MenuItemResponse{ID: it.ID, Name: it.Name, Price: it.Price, Description: it.Description})
	}
	return dto.StoreResponse{
		ID:            s.ID,
		Name:          s.Name,
		Address:       s.Address,
		PhoneType:     string(s.PhoneType),
		Phone:         s.Phone,
		BusinessHours: s.BusinessHours,
		MenuItems:     items,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
