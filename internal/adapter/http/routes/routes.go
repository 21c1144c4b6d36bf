package routes

import (
	"log"
	"strconv"

	_ "tradebill/docs" // This will be auto-generated
	"tradebill/internal/adapter/http/handlers"
	repository2 "tradebill/internal/adapter/persistence/repository"
	"tradebill/internal/infrastructure/database"
	"tradebill/internal/infrastructure/pdf"
	"tradebill/internal/usecase"

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

	clientRepo := repository2.NewClientDynamoRepository(ddb)
	jobRepo := repository2.NewJobDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	renderer := pdf.NewRenderer()

	clientUseCase := usecase.NewClientUseCase(clientRepo, jobRepo, invoiceRepo)
	jobUseCase := usecase.NewJobUseCase(jobRepo, clientRepo, userRepo, invoiceRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, clientRepo, jobRepo, userRepo, renderer)

	clientHandler := handlers.NewClientHandler(clientUseCase)
	jobHandler := handlers.NewJobHandler(jobUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInvoicingRoutes(v1, clientHandler, jobHandler, invoiceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
