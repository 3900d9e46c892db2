package httpt

import (
	"net/http"

	_ "gestionpaquetes/docs" // for swagger

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           GestionPaquetes API
// @version         1.0
// @description     API para el seguimiento de envíos de paquetes
// @host            localhost:8080
// @BasePath        /
// @schemes         http
func (h *ShipmentHandler) setupRoutes() {
	h.router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	h.router.GET("/all", h.listShipmentsHandler)
	h.router.GET("/:id_envio", h.getShipmentHandler)
	h.router.POST("/newEnvio", h.createShipmentHandler)

	h.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
