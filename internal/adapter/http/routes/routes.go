package routes

import (
	"log"
	"os"
	"strconv"

	_ "brokerhub/docs" // This will be auto-generated
	"brokerhub/internal/adapter/http/handlers"
	repository2 "brokerhub/internal/adapter/persistence/repository"
	"brokerhub/internal/infrastructure/auth"
	"brokerhub/internal/infrastructure/database"
	"brokerhub/internal/infrastructure/payments"
	"brokerhub/internal/usecase"
	"brokerhub/internal/usecase/interfaces"

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

	jobRepo := repository2.NewJobDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	contractorRepo := repository2.NewContractorDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	invoiceSeq := repository2.NewInvoiceSequenceDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	jobUseCase := usecase.NewJobUseCase(jobRepo, customerRepo, quoteRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, jobRepo)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	contractorUseCase := usecase.NewContractorUseCase(contractorRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, quoteRepo, paymentRepo, invoiceSeq)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, invoiceRepo, jobRepo, paymentGateway)

	jobHandler := handlers.NewJobHandler(jobUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	contractorHandler := handlers.NewContractorHandler(contractorUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Everything below requires an operator token.
	jwtSvc := auth.NewJWT(os.Getenv("JWT_SECRET"))
	v1.Use(auth.RequireOperator(jwtSvc))
	addBrokerageRoutes(v1, jobHandler, quoteHandler, customerHandler, contractorHandler)
	addFinancialRoutes(v1, invoiceHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
