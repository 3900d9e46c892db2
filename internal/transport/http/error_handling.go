package httpt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"gestionpaquetes/internal/entity"
	"gestionpaquetes/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h *ShipmentHandler) handleServiceError(c *gin.Context, err error, op, code string) {
	log := h.log.Ctx(c.Request.Context())

	log.LogAttrs(c.Request.Context(), logger.ErrorLevel, op+" failed",
		logger.Any("error", err),
		logger.String("remote_addr", c.ClientIP()),
		logger.String("user_agent", c.Request.UserAgent()),
	)

	switch {
	case errors.Is(err, entity.ErrInvalidData):
		detail := "invalid shipment data"
		var invalidErr *entity.InvalidDataError
		if errors.As(err, &invalidErr) {
			detail = invalidErr.Detail
		}
		c.JSON(
			http.StatusUnprocessableEntity,
			gin.H{"error": "Invalid shipment data", "detail": detail},
		)
	case errors.Is(err, entity.ErrDataNotFound):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "shipment not found",
			logger.String("code", code),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusNotFound, gin.H{
			"detail": fmt.Sprintf("Envio con id: %s no existe!", code),
		})
	case errors.Is(err, entity.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage unavailable"})
	case errors.Is(err, context.DeadlineExceeded):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "request timeout",
			logger.String("path", c.Request.URL.Path),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Request timed out"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal service error"})
	}
}

func (h *ShipmentHandler) handleBindError(c *gin.Context, op string, err error) {
	log := h.log.Ctx(c.Request.Context())

	log.LogAttrs(c.Request.Context(), logger.WarnLevel, "malformed shipment payload",
		logger.String("op", op),
		logger.Any("error", err),
		logger.String("remote_addr", c.ClientIP()),
	)

	detail := "malformed JSON body"
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		detail = fmt.Sprintf("field %s must be of type %s", typeErr.Field, typeErr.Type)
	}

	c.JSON(
		http.StatusUnprocessableEntity,
		gin.H{"error": "Invalid shipment payload", "detail": detail},
	)
}
