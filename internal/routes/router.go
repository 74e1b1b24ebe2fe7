package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sicat_management/docs"
	"github.com/sicat_management/internal/auth"
	"github.com/sicat_management/internal/handlers"
	"github.com/sicat_management/internal/repositories"
	"github.com/sicat_management/internal/services"
	"github.com/sicat_management/pkg/db"
)

// SetupRoutes monta a cadeia repositório → serviço → handler e registra
// todas as rotas da API sob /api/v1. Fora do login, tudo exige JWT.
func SetupRoutes(router *gin.Engine) {
	database := db.GetDB()

	thirdPartyRepo := repositories.NewGormThirdPartyRepository(database)
	companyRepo := repositories.NewGormCompanyRepository(database)
	userRepo := repositories.NewGormUserRepository(database)

	userService := services.NewUserService(userRepo)
	companyService := services.NewCompanyService(companyRepo)
	thirdPartyService := services.NewThirdPartyService(thirdPartyRepo, companyRepo)
	dashboardService := services.NewDashboardService(thirdPartyRepo)

	authHandler := handlers.NewAuthHandler(userService)
	thirdPartyHandler := handlers.NewThirdPartyHandler(thirdPartyService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	userHandler := handlers.NewUserHandler(userService)
	unitHandler := handlers.NewUnitHandler()
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")

	public := apiV1.Group("/auth")
	{
		public.POST("/login", authHandler.Login)
	}

	protected := apiV1.Group("")
	protected.Use(auth.JWTMiddleware())
	{
		protected.POST("/auth/logout", authHandler.Logout)

		terceiros := protected.Group("/terceiros")
		{
			terceiros.POST("", thirdPartyHandler.Create)
			terceiros.GET("", thirdPartyHandler.List)
			terceiros.GET("/config-campos", thirdPartyHandler.FieldConfig)
			terceiros.GET("/:id", thirdPartyHandler.Get)
			terceiros.POST("/:id/alteracoes", thirdPartyHandler.ApplyChange)
			terceiros.GET("/:id/historico", thirdPartyHandler.History)
		}

		empresas := protected.Group("/empresas")
		{
			empresas.POST("", companyHandler.Create)
			empresas.GET("", companyHandler.List)
			empresas.GET("/:id", companyHandler.Get)
			empresas.POST("/:id/contratos", companyHandler.AddContract)
			empresas.GET("/:id/cargos", companyHandler.CargoOptions)
		}

		usuarios := protected.Group("/usuarios")
		{
			usuarios.POST("", userHandler.Create)
			usuarios.GET("", userHandler.List)
			usuarios.PUT("/:id", userHandler.Update)
		}

		protected.GET("/unidades", unitHandler.List)
		protected.GET("/dashboard", dashboardHandler.Summary)
	}
}
