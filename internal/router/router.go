package router

import (
	"net/http"

	"github.com/vebrypp/AKURA-APP-BE/internal/config"
	"github.com/vebrypp/AKURA-APP-BE/internal/handler"
	"github.com/vebrypp/AKURA-APP-BE/internal/middleware"
	"github.com/vebrypp/AKURA-APP-BE/internal/session"
	"github.com/vebrypp/AKURA-APP-BE/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and all API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// the refresh cookie travels cross-site, so CORS must allow
	// credentials for the single configured client origin
	if cfg.CORS.ClientOrigin != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{cfg.CORS.ClientOrigin},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	sessions := session.NewManager(db, cfg.Auth)
	cookieSecure := cfg.Server.Mode == gin.ReleaseMode

	authHandler := handler.NewAuthHandler(sessions, cookieSecure)
	companyHandler := handler.NewCompanyHandler(db, cfg.App.PageSize)
	serviceHandler := handler.NewServiceHandler(db, cfg.App.PageSize)
	quotationHandler := handler.NewQuotationHandler(db, cfg.App.PageSize)

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", middleware.Activity(sessions.Store, sessions.Now), authHandler.Logout)
	auth.POST("/register", authHandler.Register)
	auth.GET("/profile", middleware.Auth(sessions.Issuer, db), authHandler.Profile)

	protected := api.Group("", middleware.Auth(sessions.Issuer, db))

	company := protected.Group("/reference/company")
	company.GET("", companyHandler.ListCompanies)
	company.GET("/:id", companyHandler.GetCompany)
	company.GET("/staff/:id", companyHandler.GetCompanyStaff)
	company.POST("", companyHandler.CreateCompany)
	company.POST("/staff", companyHandler.CreateStaff)
	company.DELETE("/:id", companyHandler.DeleteCompany)
	company.DELETE("/staff/:id", companyHandler.DeleteStaff)

	service := protected.Group("/reference/service")
	service.GET("/option", serviceHandler.ListOptions)
	service.GET("/scope", serviceHandler.ListScopes)
	service.GET("/description", serviceHandler.ListDescriptions)
	service.GET("/description/:id", serviceHandler.GetDescription)
	service.POST("", serviceHandler.CreateService)
	service.POST("/scope", serviceHandler.CreateScope)
	service.POST("/description/item", serviceHandler.CreateItem)
	service.DELETE("/:id", serviceHandler.DeleteService)
	service.DELETE("/scope/:id", serviceHandler.DeleteScope)
	service.DELETE("/description/item/:id", serviceHandler.DeleteItem)

	quotation := protected.Group("/quotation")
	quotation.GET("", quotationHandler.ListQuotations)
	quotation.GET("/:id", quotationHandler.GetQuotation)
	quotation.GET("/:id/export", quotationHandler.ExportQuotation)
	quotation.POST("", quotationHandler.CreateQuotation)
	quotation.POST("/item", quotationHandler.CreateItem)
	quotation.DELETE("/:id", quotationHandler.DeleteQuotation)

	r.NoRoute(func(c *gin.Context) {
		util.Error(c, http.StatusNotFound, util.MsgNotFound)
	})

	return r
}
