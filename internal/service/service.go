package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gestionpaquetes/internal/entity"
	"gestionpaquetes/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const _slowOpThreshold = 200 * time.Millisecond

type (
	ShipmentRepository interface {
		Create(ctx context.Context, shipment *entity.Shipment) (*entity.Shipment, error)
		GetByCode(ctx context.Context, code string) (*entity.Shipment, error)
		ListAll(ctx context.Context) ([]*entity.Shipment, error)
	}

	ShipmentService struct {
		shipmentRepo ShipmentRepository
		validate     *validator.Validate
		logger       logger.Logger
	}
)

func NewShipmentService(
	shipmentRepo ShipmentRepository,
	logger logger.Logger,
) *ShipmentService {
	return &ShipmentService{
		shipmentRepo: shipmentRepo,
		validate:     validator.New(),
		logger:       logger,
	}
}

// CreateShipment validates the payload, assigns a fresh record id and persists
// the shipment. The returned value is what the store persisted, including the
// assigned id. The shipment code is not checked for uniqueness.
func (ss *ShipmentService) CreateShipment(
	ctx context.Context,
	shipment *entity.Shipment,
) (*entity.Shipment, error) {
	const op = "service.CreateShipment"
	log := ss.logger.Ctx(ctx)

	log.LogAttrs(ctx, logger.InfoLevel, "create shipment started",
		logger.String("op", op),
		logger.String("code", shipment.Code),
	)

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime)
		if duration > _slowOpThreshold {
			log.LogAttrs(ctx, logger.WarnLevel, "slow service operation",
				logger.String("op", op),
				logger.String("code", shipment.Code),
				logger.String("duration", duration.String()),
			)
		}
	}()

	if err := ss.validateShipment(shipment); err != nil {
		log.LogAttrs(ctx, logger.ErrorLevel, "shipment validation failed",
			logger.String("op", op),
			logger.Any("error", err),
			logger.String("code", shipment.Code),
		)
		return nil, fmt.Errorf("%s: validate shipment: %w", op, err)
	}

	// record_id is server-assigned and immutable; anything the client sent is discarded.
	shipment.RecordID = uuid.New()

	createdShipment, err := ss.shipmentRepo.Create(ctx, shipment)
	if err != nil {
		log.LogAttrs(ctx, logger.ErrorLevel, "shipment creation failed",
			logger.String("op", op),
			logger.Any("error", err),
			logger.String("code", shipment.Code),
		)
		return nil, fmt.Errorf("%s: create shipment: %w", op, err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "shipment created successfully",
		logger.String("op", op),
		logger.String("code", createdShipment.Code),
		logger.String("record_id", createdShipment.RecordID.String()),
		logger.String("duration", time.Since(startTime).String()),
	)

	return createdShipment, nil
}

// GetShipment looks a shipment up by its external code. With duplicate codes
// the most recently created record wins; see the repository for the tie-break.
func (ss *ShipmentService) GetShipment(
	ctx context.Context,
	code string,
) (*entity.Shipment, error) {
	const op = "service.GetShipment"
	log := ss.logger.Ctx(ctx)

	log.LogAttrs(ctx, logger.InfoLevel, "get shipment requested",
		logger.String("op", op),
		logger.String("code", code),
	)

	shipment, err := ss.shipmentRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, entity.ErrDataNotFound) {
			return nil, err
		}
		log.LogAttrs(ctx, logger.ErrorLevel, "failed to get shipment from database",
			logger.String("op", op),
			logger.Any("error", err),
			logger.String("code", code),
		)
		return nil, fmt.Errorf("%s: get shipment: %w", op, err)
	}

	return shipment, nil
}

// ListShipments returns stored shipments in insertion order, capped by the store.
func (ss *ShipmentService) ListShipments(ctx context.Context) ([]*entity.Shipment, error) {
	const op = "service.ListShipments"
	log := ss.logger.Ctx(ctx)

	shipments, err := ss.shipmentRepo.ListAll(ctx)
	if err != nil {
		log.LogAttrs(ctx, logger.ErrorLevel, "failed to list shipments",
			logger.String("op", op),
			logger.Any("error", err),
		)
		return nil, fmt.Errorf("%s: list shipments: %w", op, err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "shipments listed",
		logger.String("op", op),
		logger.Int("count", len(shipments)),
	)

	return shipments, nil
}

func (ss *ShipmentService) validateShipment(shipment *entity.Shipment) error {
	err := ss.validate.Struct(shipment)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]string, 0, len(validationErrs))
		for _, ve := range validationErrs {
			details = append(details, fmt.Sprintf("%s must satisfy '%s'", ve.Namespace(), ve.Tag()))
		}
		return &entity.InvalidDataError{Detail: strings.Join(details, "; ")}
	}

	return &entity.InvalidDataError{Detail: err.Error()}
}
