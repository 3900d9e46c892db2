package httpt

import (
	"gestionpaquetes/internal/service"
	"gestionpaquetes/pkg/logger"
	"gestionpaquetes/pkg/metric"

	"github.com/gin-gonic/gin"
)

type ShipmentHandler struct {
	svc     *service.ShipmentService
	log     logger.Logger
	metrics metric.HTTP
	router  *gin.Engine
}

func NewShipmentHandler(
	svc *service.ShipmentService,
	log logger.Logger,
	metrics metric.HTTP,
) *ShipmentHandler {
	h := &ShipmentHandler{
		svc:     svc,
		log:     log,
		metrics: metrics,
	}

	router := gin.New()

	router.Use(h.requestIDMiddleware())
	router.Use(h.loggingMiddleware())
	router.Use(gin.Recovery())

	h.router = router

	h.setupRoutes()

	return h
}

func (h *ShipmentHandler) Engine() *gin.Engine {
	return h.router
}
