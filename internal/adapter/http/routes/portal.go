package routes

import (
	"rrportal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations = "/quotations"
	PathOrders     = "/orders"
	PathPayments   = "/payments"
)

func addPortalRoutes(rg *gin.RouterGroup, quotationHandler *handlers.QuotationHandler, orderHandler *handlers.OrderHandler, paymentHandler *handlers.PaymentHandler) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", quotationHandler.CreateQuotation)
		quotations.GET("", quotationHandler.ListQuotations)
		quotations.DELETE("", quotationHandler.DeleteQuotation)
		quotations.POST("/pdf", quotationHandler.GenerateQuotationPDF)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/orders", paymentHandler.CreatePaymentOrder)
		payments.POST("/convert", paymentHandler.ConvertQuotation)
		payments.POST("/cancel", paymentHandler.CancelCheckout)
	}
}
