package handlers

import (
	"errors"
	"log"
	"net/http"

	request "rrportal/internal/adapter/http/dto/request"
	response "rrportal/internal/adapter/http/dto/response"
	"rrportal/internal/usecase"
	"rrportal/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
)

// PaymentHandler drives the checkout flow: gateway order creation, checkout
// cancellation and post-payment conversion.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePaymentOrder opens a gateway order for one quotation group.
func (h *PaymentHandler) CreatePaymentOrder(c *gin.Context) {
	var payload request.PaymentOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	quotationNo := payload.ResolveQuotationNo()
	log.Printf("[payment][handler] gateway order start quotation_no=%s amount=%.2f", quotationNo, payload.Amount)

	created, err := h.usecase.CreateGatewayOrder(c.Request.Context(), quotationNo, payload.Amount, payload.Currency, payload.Receipt)
	if err != nil {
		log.Printf("[payment][handler] gateway order failed quotation_no=%s err=%v", quotationNo, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] gateway order success quotation_no=%s gateway_order_id=%s", quotationNo, created.GatewayOrderID)

	c.JSON(http.StatusOK, response.FromPayment(created))
}

// ConvertQuotation finalizes a successful checkout: the paid quotation group
// becomes an order and the new order number is returned.
func (h *PaymentHandler) ConvertQuotation(c *gin.Context) {
	var payload request.ConvertQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] conversion start quotation_no=%s", payload.QuotationNo)

	orderNo, err := h.usecase.ConfirmConversion(c.Request.Context(), payload.QuotationNo, payload.PaymentID)
	if err != nil {
		log.Printf("[payment][handler] conversion failed quotation_no=%s err=%v", payload.QuotationNo, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] conversion success quotation_no=%s order_no=%s", payload.QuotationNo, orderNo)

	c.JSON(http.StatusOK, response.FromConvertedOrderNo(orderNo))
}

// CancelCheckout records a dismissed gateway checkout. Dismissal is not an
// error; the group becomes retryable again.
func (h *PaymentHandler) CancelCheckout(c *gin.Context) {
	var payload request.CancelCheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	h.usecase.CancelCheckout(payload.QuotationNo)
	state := h.usecase.GroupState(payload.QuotationNo)

	c.JSON(http.StatusOK, response.CancelCheckoutResponse{Success: true, State: string(state)})
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationNo),
		errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrInvalidGatewayPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentInFlight):
		return pkg.NewDomainErrorSimple("PAYMENT_IN_FLIGHT", "A payment is already in progress for this quotation", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrGatewayOrderFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_ERROR", "Payment gateway order creation failed", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrConversionAfterCapture):
		// Distinct code: the payment succeeded but order creation failed,
		// which needs manual reconciliation rather than a retry.
		return pkg.NewDomainErrorSimple("CONVERSION_FAILED_AFTER_CAPTURE", "Payment succeeded but order creation failed", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
