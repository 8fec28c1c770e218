package routes

import (
	"log"
	"os"
	"strconv"

	_ "rrportal/docs"
	"rrportal/internal/adapter/http/handlers"
	repository2 "rrportal/internal/adapter/persistence/repository"
	"rrportal/internal/infrastructure/database"
	"rrportal/internal/infrastructure/documents"
	"rrportal/internal/infrastructure/payments"
	"rrportal/internal/usecase"
	"rrportal/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quotationRepo := repository2.NewQuotationDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	var renderer interfaces.IDocumentRenderer
	rendererClient, err := documents.NewRendererClient(os.Getenv("PDF_RENDERER_URL"))
	if err != nil {
		log.Printf("PDF renderer not configured: %v", err)
	} else {
		renderer = rendererClient
	}

	var paymentGateway interfaces.IPaymentGateway
	rzpGateway, err := payments.NewRazorpayGateway(os.Getenv("RAZORPAY_KEY_ID"), os.Getenv("RAZORPAY_KEY_SECRET"))
	if err != nil {
		log.Printf("Razorpay gateway not configured: %v", err)
	} else {
		paymentGateway = rzpGateway
	}

	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, renderer)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	paymentUseCase := usecase.NewPaymentUseCase(quotationRepo, orderRepo, paymentRepo, paymentGateway)

	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPortalRoutes(v1, quotationHandler, orderHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
