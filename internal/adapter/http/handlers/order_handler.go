package handlers

import (
	"errors"
	"net/http"

	response "rrportal/internal/adapter/http/dto/response"
	"rrportal/internal/usecase"
	"rrportal/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles HTTP requests for converted orders.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// ListOrders returns the caller's orders with derived display statuses,
// optionally filtered by status and checkout session.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID := c.Query("userId")
	status := c.Query("status")
	sessionID := c.Query("sessionId")

	views, err := h.usecase.ListByUser(c.Request.Context(), userID, status, sessionID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderViews(views))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
