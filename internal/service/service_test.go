package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gestionpaquetes/internal/entity"
	mock_repository "gestionpaquetes/internal/repository/mock"
	"gestionpaquetes/internal/service"
	mock_logger "gestionpaquetes/pkg/logger/mock"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func generateFakeSender() *entity.Sender {
	return &entity.Sender{
		Name:     gofakeit.Name(),
		Phone:    int64Ptr(int64(gofakeit.IntRange(3000000000, 3999999999))),
		ShipDate: gofakeit.Date().Format("2/1/2006"),
		ShipTime: gofakeit.Date().Format("15:04"),
	}
}

func generateFakeRecipient() *entity.Recipient {
	receiveDate := gofakeit.Date().Format("2/1/2006")
	receiveTime := gofakeit.Date().Format("15:04")
	return &entity.Recipient{
		Name:        gofakeit.Name(),
		Phone:       int64Ptr(int64(gofakeit.IntRange(3000000000, 3999999999))),
		ReceiveDate: &receiveDate,
		ReceiveTime: &receiveTime,
	}
}

func generateFakePackageStatus() *entity.PackageStatus {
	return &entity.PackageStatus{
		Country:    gofakeit.Country(),
		Address:    gofakeit.Address().Address,
		PostalCode: int64Ptr(int64(gofakeit.IntRange(10000000, 99999999))),
		Status:     gofakeit.RandomString([]string{"Enviado", "En transito", "Entregado"}),
	}
}

func generateFakeShipment() *entity.Shipment {
	return &entity.Shipment{
		Sender:    generateFakeSender(),
		Recipient: generateFakeRecipient(),
		Package:   generateFakePackageStatus(),
		Code:      fmt.Sprintf("ENV-%04d", gofakeit.IntRange(1, 9999)),
	}
}

func TestShipmentService_CreateShipment(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		desc  string
		setup func() *entity.Shipment
		mocks func(
			shipmentRepo *mock_repository.MockShipmentRepository,
			logger *mock_logger.MockLogger,
			shipment *entity.Shipment,
		)
		expectedErr error
	}{
		{
			desc:  "Success",
			setup: generateFakeShipment,
			mocks: func(
				shipmentRepo *mock_repository.MockShipmentRepository,
				logger *mock_logger.MockLogger,
				shipment *entity.Shipment,
			) {
				logger.EXPECT().Ctx(gomock.Any()).Return(logger).AnyTimes()

				logger.EXPECT().
					LogAttrs(ctx, gomock.Any(), "create shipment started", gomock.Any()).
					Times(1)

				shipmentRepo.EXPECT().
					Create(gomock.Any(), gomock.Eq(shipment)).
					Return(shipment, nil).Times(1)

				logger.EXPECT().
					LogAttrs(ctx, gomock.Any(), "shipment created successfully", gomock.Any()).
					Times(1)
			},
			expectedErr: nil,
		},
		{
			desc: "SubrecordsOmitted",
			setup: func() *entity.Shipment {
				shipment := generateFakeShipment()
				shipment.Sender = nil
				shipment.Recipient = nil
				shipment.Package = nil
				return shipment
			},
			mocks: func(
				shipmentRepo *mock_repository.MockShipmentRepository,
				logger *mock_logger.MockLogger,
				shipment *entity.Shipment,
			) {
				logger.EXPECT().Ctx(gomock.Any()).Return(logger).AnyTimes()

				logger.EXPECT().
					LogAttrs(ctx, gomock.Any(), "create shipment started", gomock.Any()).
					Times(1)

				shipmentRepo.EXPECT().
					Create(gomock.Any(), gomock.Eq(shipment)).
					Return(shipment, nil).Times(1)

				logger.EXPECT().
					LogAttrs(ctx, gomock.Any(), "shipment created successfully", gomock.Any()).
					Times(1)
			},
			expectedErr: nil,
		},
		{
			desc: "ZeroAndNegativeNumerics",
			setup: func() *entity.Shipment {
				shipment := generateFakeShipment()
				shipment.Sender.Phone = int64Ptr(0)
				shipment.Recipient.Phone = int64Ptr(-1)
				shipment.Package.PostalCode = int64Ptr(0)
				return shipment
			},
			mocks: func(
				shipmentRepo *mock_repository.MockShipmentRepository,
				logger *mock_logger.MockLogger,
				shipment *entity.Shipment,
			) {
				logger.EXPECT().Ctx(gomock.Any()).Return(logger).AnyTimes()

				logger.EXPECT().
					LogAttrs(ctx, gomock.Any(), "create shipment started", gomock.Any()).
					Times(1)

				shipmentRepo.EXPECT().
					Create(gomock.Any(), gomock.Eq(shipment)).
					Return(shipment, nil).Times(1)

				logger.EXPECT().
					LogAttrs(ctx, gomock.Any(), "shipment created successfully", gomock.Any()).
					Times(1)
			},
			expectedErr: nil,
		},
		{
			desc: "InvalidShipment_SenderMissingPhone",
			setup: func() *entity.Shipment {
				shipment := generateFakeShipment()
				shipment.Sender.Phone = nil
				return shipment
			},
			mocks: func(
				shipmentRepo *mock_repository.MockShipmentRepository,
				logger *mock_logger.MockLogger,
				shipment *entity.Shipment,
			) {
				logger.EXPECT().Ctx(gomock.Any()).Return(logger).AnyTimes()

				logger.EXPECT().
					LogAttrs(ctx, gomock.Any(), "create shipment started", gomock.Any()).
					Times(1)

				logger.EXPECT().
					LogAttrs(ctx, gomock.Any(), "shipment validation failed", gomock.Any()).
					Times(1)
			},
			expectedErr: entity.ErrInvalidData,
		},
		{
			desc: "InvalidShipment_MissingCode",
			setup: func() *entity.Shipment {
				shipment := generateFakeShipment()
				shipment.Code = ""
				return shipment
			},
			mocks: func(
				shipmentRepo *mock_repository.MockShipmentRepository,
				logger *mock_logger.MockLogger,
				shipment *entity.Shipment,
			) {
				logger.EXPECT().Ctx(gomock.Any()).Return(logger).AnyTimes()

				logger.EXPECT().
					LogAttrs(ctx, gomock.Any(), "create shipment started", gomock.Any()).
					Times(1)

				logger.EXPECT().
					LogAttrs(ctx, gomock.Any(), "shipment validation failed", gomock.Any()).
					Times(1)
			},
			expectedErr: entity.ErrInvalidData,
		},
		{
			desc: "InvalidShipment_SenderMissingName",
			setup: func() *entity.Shipment {
				shipment := generateFakeShipment()
				shipment.Sender.Name = ""
				return shipment
			},
			mocks: func(
				shipmentRepo *mock_repository.MockShipmentRepository,
				logger *mock_logger.MockLogger,
				shipment *entity.Shipment,
			) {
				logger.EXPECT().Ctx(gomock.Any()).Return(logger).AnyTimes()

				logger.EXPECT().
					LogAttrs(ctx, gomock.Any(), "create shipment started", gomock.Any()).
					Times(1)

				logger.EXPECT().
					LogAttrs(ctx, gomock.Any(), "shipment validation failed", gomock.Any()).
					Times(1)
			},
			expectedErr: entity.ErrInvalidData,
		},
		{
			desc:  "RepositoryFailure",
			setup: generateFakeShipment,
			mocks: func(
				shipmentRepo *mock_repository.MockShipmentRepository,
				logger *mock_logger.MockLogger,
				shipment *entity.Shipment,
			) {
				logger.EXPECT().Ctx(gomock.Any()).Return(logger).AnyTimes()

				logger.EXPECT().
					LogAttrs(ctx, gomock.Any(), "create shipment started", gomock.Any()).
					Times(1)

				shipmentRepo.EXPECT().
					Create(gomock.Any(), gomock.Eq(shipment)).
					Return(nil, entity.ErrStorageUnavailable).Times(1)

				logger.EXPECT().
					LogAttrs(ctx, gomock.Any(), "shipment creation failed", gomock.Any()).
					Times(1)
			},
			expectedErr: entity.ErrStorageUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			shipmentRepo := mock_repository.NewMockShipmentRepository(ctrl)
			logger := mock_logger.NewMockLogger(ctrl)

			shipment := tc.setup()
			tc.mocks(shipmentRepo, logger, shipment)

			svc := service.NewShipmentService(shipmentRepo, logger)

			created, err := svc.CreateShipment(ctx, shipment)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created == nil {
				t.Fatal("expected created shipment, got nil")
			}
			if created.RecordID == uuid.Nil {
				t.Fatal("expected record id to be assigned")
			}
		})
	}
}

func TestShipmentService_CreateShipment_AssignsFreshRecordID(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	shipmentRepo := mock_repository.NewMockShipmentRepository(ctrl)
	logger := mock_logger.NewMockLogger(ctrl)

	logger.EXPECT().Ctx(gomock.Any()).Return(logger).AnyTimes()
	logger.EXPECT().LogAttrs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	clientSupplied := uuid.New()
	shipment := generateFakeShipment()
	shipment.RecordID = clientSupplied

	shipmentRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *entity.Shipment) (*entity.Shipment, error) {
			return s, nil
		}).Times(1)

	svc := service.NewShipmentService(shipmentRepo, logger)

	created, err := svc.CreateShipment(ctx, shipment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.RecordID == clientSupplied {
		t.Fatal("client-supplied record id must be discarded")
	}
	if created.RecordID == uuid.Nil {
		t.Fatal("expected record id to be assigned")
	}
}

func TestShipmentService_GetShipment_PassesCallerContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	shipmentRepo := mock_repository.NewMockShipmentRepository(ctrl)
	logger := mock_logger.NewMockLogger(ctrl)

	logger.EXPECT().Ctx(gomock.Any()).Return(logger).AnyTimes()
	logger.EXPECT().LogAttrs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	shipment := generateFakeShipment()
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	// The repository must see the caller's context unchanged so the transport's
	// deadline governs the whole request.
	shipmentRepo.EXPECT().
		GetByCode(gomock.Eq(ctx), shipment.Code).
		Return(shipment, nil).Times(1)

	svc := service.NewShipmentService(shipmentRepo, logger)

	if _, err := svc.GetShipment(ctx, shipment.Code); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestShipmentService_GetShipment(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		desc  string
		mocks func(
			shipmentRepo *mock_repository.MockShipmentRepository,
			logger *mock_logger.MockLogger,
			shipment *entity.Shipment,
		)
		expectedErr error
	}{
		{
			desc: "Success",
			mocks: func(
				shipmentRepo *mock_repository.MockShipmentRepository,
				logger *mock_logger.MockLogger,
				shipment *entity.Shipment,
			) {
				logger.EXPECT().Ctx(gomock.Any()).Return(logger).AnyTimes()

				logger.EXPECT().
					LogAttrs(ctx, gomock.Any(), "get shipment requested", gomock.Any()).
					Times(1)

				shipmentRepo.EXPECT().
					GetByCode(gomock.Any(), shipment.Code).
					Return(shipment, nil).Times(1)
			},
			expectedErr: nil,
		},
		{
			desc: "NotFound",
			mocks: func(
				shipmentRepo *mock_repository.MockShipmentRepository,
				logger *mock_logger.MockLogger,
				shipment *entity.Shipment,
			) {
				logger.EXPECT().Ctx(gomock.Any()).Return(logger).AnyTimes()

				logger.EXPECT().
					LogAttrs(ctx, gomock.Any(), "get shipment requested", gomock.Any()).
					Times(1)

				shipmentRepo.EXPECT().
					GetByCode(gomock.Any(), shipment.Code).
					Return(nil, entity.ErrDataNotFound).Times(1)
			},
			expectedErr: entity.ErrDataNotFound,
		},
		{
			desc: "StorageFailure",
			mocks: func(
				shipmentRepo *mock_repository.MockShipmentRepository,
				logger *mock_logger.MockLogger,
				shipment *entity.Shipment,
			) {
				logger.EXPECT().Ctx(gomock.Any()).Return(logger).AnyTimes()

				logger.EXPECT().
					LogAttrs(ctx, gomock.Any(), "get shipment requested", gomock.Any()).
					Times(1)

				shipmentRepo.EXPECT().
					GetByCode(gomock.Any(), shipment.Code).
					Return(nil, entity.ErrStorageUnavailable).Times(1)

				logger.EXPECT().
					LogAttrs(ctx, gomock.Any(), "failed to get shipment from database", gomock.Any()).
					Times(1)
			},
			expectedErr: entity.ErrStorageUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			shipmentRepo := mock_repository.NewMockShipmentRepository(ctrl)
			logger := mock_logger.NewMockLogger(ctrl)

			shipment := generateFakeShipment()
			shipment.RecordID = uuid.New()
			tc.mocks(shipmentRepo, logger, shipment)

			svc := service.NewShipmentService(shipmentRepo, logger)

			found, err := svc.GetShipment(ctx, shipment.Code)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if found.Code != shipment.Code {
				t.Fatalf("expected code %s, got %s", shipment.Code, found.Code)
			}
		})
	}
}

func TestShipmentService_ListShipments(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		shipmentRepo := mock_repository.NewMockShipmentRepository(ctrl)
		logger := mock_logger.NewMockLogger(ctrl)

		shipments := []*entity.Shipment{generateFakeShipment(), generateFakeShipment()}

		logger.EXPECT().Ctx(gomock.Any()).Return(logger).AnyTimes()
		logger.EXPECT().
			LogAttrs(ctx, gomock.Any(), "shipments listed", gomock.Any(), gomock.Any()).
			Times(1)

		shipmentRepo.EXPECT().ListAll(gomock.Any()).Return(shipments, nil).Times(1)

		svc := service.NewShipmentService(shipmentRepo, logger)

		listed, err := svc.ListShipments(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(listed) != len(shipments) {
			t.Fatalf("expected %d shipments, got %d", len(shipments), len(listed))
		}
	})

	t.Run("StorageFailure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		shipmentRepo := mock_repository.NewMockShipmentRepository(ctrl)
		logger := mock_logger.NewMockLogger(ctrl)

		logger.EXPECT().Ctx(gomock.Any()).Return(logger).AnyTimes()
		logger.EXPECT().
			LogAttrs(ctx, gomock.Any(), "failed to list shipments", gomock.Any()).
			Times(1)

		shipmentRepo.EXPECT().
			ListAll(gomock.Any()).
			Return(nil, entity.ErrStorageUnavailable).Times(1)

		svc := service.NewShipmentService(shipmentRepo, logger)

		_, err := svc.ListShipments(ctx)
		if !errors.Is(err, entity.ErrStorageUnavailable) {
			t.Fatalf("expected storage unavailable, got %v", err)
		}
	})
}
