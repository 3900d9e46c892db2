package httpt

import (
	"context"
	"net/http"
	"time"

	"gestionpaquetes/internal/entity"
	"gestionpaquetes/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	_defaultContextTimeout = 500 * time.Millisecond
)

// @Summary Lista de envíos
// @Description Devuelve todos los envíos registrados, limitado a 1000 registros
// @Tags Envios
// @Produce json
// @Success 200 {array} httpt.Shipment "Lista de envíos"
// @Failure 503 {object} httpt.ErrorResponse "Almacenamiento no disponible"
// @Router /all [get]
func (h *ShipmentHandler) listShipmentsHandler(c *gin.Context) {
	const op = "transport.listShipmentsHandler"

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	shipments, err := h.svc.ListShipments(ctx)
	if err != nil {
		h.handleServiceError(c, err, op, "")
		return
	}

	c.JSON(http.StatusOK, shipments)
}

// @Summary Solicitar envío por id
// @Description Devuelve el envío identificado por su id_envio
// @Tags Envios
// @Produce json
// @Param id_envio path string true "Identificador externo del envío"
// @Success 200 {object} httpt.Shipment "Envío encontrado"
// @Failure 404 {object} httpt.NotFoundResponse "Envío no existe"
// @Failure 503 {object} httpt.ErrorResponse "Almacenamiento no disponible"
// @Router /{id_envio} [get]
func (h *ShipmentHandler) getShipmentHandler(c *gin.Context) {
	const op = "transport.getShipmentHandler"

	log := h.log.Ctx(c.Request.Context())
	code := c.Param("id_envio")

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	shipment, err := h.svc.GetShipment(ctx, code)
	if err != nil {
		h.handleServiceError(c, err, op, code)
		return
	}

	log.LogAttrs(ctx, logger.InfoLevel, "shipment retrieved successfully",
		logger.String("code", code),
	)

	c.JSON(http.StatusOK, shipment)
}

// @Summary Añadir un envío
// @Description Registra un nuevo envío; Remitente, Resecciona y Paquete son opcionales
// @Tags Envios
// @Accept json
// @Produce json
// @Param envio body httpt.Shipment true "Datos del envío"
// @Success 201 {object} httpt.Shipment "Envío creado con su _id asignado"
// @Failure 422 {object} httpt.ErrorResponse "Datos de envío inválidos"
// @Failure 503 {object} httpt.ErrorResponse "Almacenamiento no disponible"
// @Router /newEnvio [post]
func (h *ShipmentHandler) createShipmentHandler(c *gin.Context) {
	const op = "transport.createShipmentHandler"

	log := h.log.Ctx(c.Request.Context())

	var shipment entity.Shipment
	if err := c.ShouldBindJSON(&shipment); err != nil {
		h.handleBindError(c, op, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	createdShipment, err := h.svc.CreateShipment(ctx, &shipment)
	if err != nil {
		h.handleServiceError(c, err, op, shipment.Code)
		return
	}

	log.LogAttrs(ctx, logger.InfoLevel, "shipment created successfully",
		logger.String("code", createdShipment.Code),
		logger.String("record_id", createdShipment.RecordID.String()),
	)

	c.JSON(http.StatusCreated, createdShipment)
}
