package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Проверка пункта назначения и геокодирование открыты для клиентских приложений
	api.POST("/radius/check", h.checkRadius)
	api.GET("/geocode", h.geocode)

	// Журнал и статистика только по API-ключу
	admin := api.Group("/radius", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		admin.GET("/checks", h.listChecks)
		admin.GET("/stats", h.getStats)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
