package routes

import (
	"metadata-catalog/internal/api/handlers"
	"metadata-catalog/internal/api/middleware"
	"metadata-catalog/internal/config"
	"metadata-catalog/internal/paging"
	"metadata-catalog/internal/repository"
	"metadata-catalog/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()
	limits := paging.Limits{Default: cfg.DefaultPageSize, Max: cfg.MaxPageSize}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	testSuiteRepo := repository.NewTestSuiteRepository(db)
	testCaseRepo := repository.NewTestCaseRepository(db)
	testDefinitionRepo := repository.NewTestDefinitionRepository(db)

	// Initialize services
	ownerService := service.NewOwnerService(userRepo, teamRepo)
	testSuiteService := service.NewTestSuiteService(testSuiteRepo, ownerService, validator, limits)
	testCaseService := service.NewTestCaseService(testCaseRepo, testDefinitionRepo, limits)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	testSuiteHandler := handlers.NewTestSuiteHandler(testSuiteService)
	testCaseHandler := handlers.NewTestCaseHandler(testCaseService)
	ownerHandler := handlers.NewOwnerHandler(ownerService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	RegisterAPI(router.Group("/api/v1"), testSuiteHandler, testCaseHandler, ownerHandler)

	return router
}

// RegisterAPI mounts the catalog endpoints on group.
func RegisterAPI(v1 *gin.RouterGroup, testSuites *handlers.TestSuiteHandler, testCases *handlers.TestCaseHandler, owners *handlers.OwnerHandler) {
	// Test suite routes
	suites := v1.Group("/testSuites")
	{
		suites.GET("", testSuites.ListTestSuites)
		suites.GET("/name/:fqn", testSuites.GetTestSuiteByName)
		suites.PATCH("/:id", testSuites.PatchTestSuite)
	}

	// Test case routes
	v1.GET("/testCases", testCases.ListTestCases)

	// Owner lookups
	v1.GET("/users/name/:name", owners.GetUserByName)
	v1.GET("/teams/name/:name", owners.GetTeamByName)
}
