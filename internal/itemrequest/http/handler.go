package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/peershare/lending-backend/internal/identity"
	"github.com/peershare/lending-backend/internal/itemrequest"
	"github.com/peershare/lending-backend/internal/pkg/response"
)

type Handler struct {
	service itemrequest.Service
}

func NewHandler(service itemrequest.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateItemRequestRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req, err := h.service.Create(c.Request.Context(), identity.UserID(c), body.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewItemRequestResponse(&itemrequest.Details{ItemRequest: *req}))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	d, err := h.service.GetByID(c.Request.Context(), identity.UserID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemRequestResponse(d))
}

// ListOwn handles GET /requests: the caller's own requests, newest first.
func (h *Handler) ListOwn(c *gin.Context) {
	details, err := h.service.ListOwn(c.Request.Context(), identity.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toResponses(details))
}

// ListOthers handles GET /requests/all: everyone else's requests.
func (h *Handler) ListOthers(c *gin.Context) {
	var params ListOthersRequest
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	details, err := h.service.ListOthers(c.Request.Context(), identity.UserID(c), params.PageParams)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toResponses(details))
}

func (h *Handler) toResponses(details []*itemrequest.Details) []ItemRequestResponse {
	items := make([]ItemRequestResponse, len(details))
	for i, d := range details {
		items[i] = NewItemRequestResponse(d)
	}
	return items
}
