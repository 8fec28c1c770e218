package handlers

import (
	"errors"
	"log"
	"net/http"

	request "rrportal/internal/adapter/http/dto/request"
	response "rrportal/internal/adapter/http/dto/response"
	"rrportal/internal/domain/entities"
	"rrportal/internal/usecase"
	"rrportal/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
)

// QuotationHandler handles HTTP requests for quotation groups: creation,
// grouped listing, deletion and PDF generation.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// CreateQuotation persists a new set of line items under one quotation
// number, normalizing the customer snapshot at this boundary.
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var payload request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateQuotation(c.Request.Context(), payload.ToEntities())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCreatedQuotations(created))
}

// ListQuotations returns the caller's quotations partitioned into display
// groups with computed totals.
func (h *QuotationHandler) ListQuotations(c *gin.Context) {
	userID := c.Query("userId")
	status := entities.QuotationStatus(c.Query("status"))

	groups, err := h.usecase.ListGroupedByUser(c.Request.Context(), userID, status)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotationGroups(groups))
}

// DeleteQuotation removes every line item of a quotation group.
func (h *QuotationHandler) DeleteQuotation(c *gin.Context) {
	var payload request.DeleteQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	deleted, err := h.usecase.DeleteByQuotationNo(c.Request.Context(), payload.QuotationNo)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quotation][handler] delete success quotation_no=%s items=%d", payload.QuotationNo, deleted)

	c.JSON(http.StatusOK, response.Empty{})
}

// GenerateQuotationPDF assembles the document payload for a group and streams
// back the rendered PDF.
func (h *QuotationHandler) GenerateQuotationPDF(c *gin.Context) {
	var payload request.GenerateQuotationPDFRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	blob, err := h.usecase.GenerateQuotationPDF(c.Request.Context(), payload.QuotationNo)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="quotation.pdf"`)
	c.Data(http.StatusOK, "application/pdf", blob)
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationNo), errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrEmptyQuotation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRendererNotConfigured):
		return pkg.NewDomainErrorSimple("RENDERER_UNAVAILABLE", "Document renderer not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
