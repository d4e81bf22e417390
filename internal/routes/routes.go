package routes

import (
	"github.com/gin-gonic/gin"

	"microcredit/internal/handlers"
)

func SetupRoutes(
	r *gin.Engine,
	companyHandler *handlers.CompanyHandler,
	healthHandler *handlers.HealthHandler,
) *gin.Engine {

	r.GET("/", healthHandler.Root)
	r.GET("/test", healthHandler.Test)

	api := r.Group("/api")
	{
		companies := api.Group("/companies")
		{
			companies.GET("", companyHandler.List)
			companies.POST("", companyHandler.Create)
			companies.GET("/stats", companyHandler.Stats)
		}
	}

	return r
}
