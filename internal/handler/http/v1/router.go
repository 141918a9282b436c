package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shenikar/fire_dispatch_system/pkg/token"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	societyAuth := AuthMiddleware(h.tokens, h.logger, token.RoleSociety)
	stationAuth := AuthMiddleware(h.tokens, h.logger, token.RoleStation)

	// Маршруты общества
	society := api.Group("/society")
	{
		society.POST("/register", h.registerSociety)
		society.POST("/login", h.loginSociety)
		society.GET("/details", societyAuth, h.getSocietyDetails)
		society.POST("/residents", societyAuth, h.addResident)
		society.DELETE("/residents/:id", societyAuth, h.removeResident)
		society.PUT("/coordinates", societyAuth, h.updateCoordinates)
		society.POST("/trigger-fire", societyAuth, h.triggerFire)
		society.GET("/fire-status", societyAuth, h.getFireStatus)
	}

	// Маршруты пожарной станции
	station := api.Group("/fire-station")
	{
		station.POST("/register", h.registerStation)
		station.POST("/login", h.loginStation)
		station.GET("/details", stationAuth, h.getStationDetails)
		station.POST("/personnel", stationAuth, h.addPersonnel)
		station.PUT("/responses/:id", stationAuth, h.updateResponse)
		station.GET("/active-responses", stationAuth, h.listActiveResponses)
		station.GET("/stats", stationAuth, h.getStationStats)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
