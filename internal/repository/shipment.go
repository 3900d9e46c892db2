package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gestionpaquetes/internal/entity"
	"gestionpaquetes/pkg/metric"
	"gestionpaquetes/pkg/storage/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// listLimit caps ListAll; there is no pagination beyond this.
const listLimit = 1000

type ShipmentRepository struct {
	db      *postgres.Postgres
	metrics metric.Storage
}

func NewShipmentRepository(db *postgres.Postgres, metrics metric.Storage) *ShipmentRepository {
	return &ShipmentRepository{db: db, metrics: metrics}
}

func (sr *ShipmentRepository) Create(
	ctx context.Context,
	shipment *entity.Shipment,
) (*entity.Shipment, error) {
	const op = "repository.shipment.Create"

	query := sr.db.Builder.Insert("shipments").
		Columns("record_id", "code", "sender", "recipient", "package").
		Values(
			shipment.RecordID,
			shipment.Code,
			shipment.Sender,
			shipment.Recipient,
			shipment.Package,
		).
		Suffix("RETURNING record_id, code, sender, recipient, package")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	start := time.Now()

	result := &entity.Shipment{}
	err = sr.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&result.RecordID,
		&result.Code,
		&result.Sender,
		&result.Recipient,
		&result.Package,
	)
	sr.metrics.ObserveQuery("create", time.Since(start))
	if err != nil {
		sr.metrics.IncrementFailures("create")
		return nil, fmt.Errorf("%s: query row: %w", op, errors.Join(entity.ErrStorageUnavailable, err))
	}

	return result, nil
}

// GetByCode returns the most recently created shipment carrying the code.
// Code uniqueness is not enforced at creation, so duplicates are possible;
// ordering by created_at makes the winner deterministic.
func (sr *ShipmentRepository) GetByCode(
	ctx context.Context,
	code string,
) (*entity.Shipment, error) {
	const op = "repository.shipment.GetByCode"

	query := sr.db.Builder.Select("record_id", "code", "sender", "recipient", "package").
		From("shipments").
		Where(squirrel.Eq{"code": code}).
		OrderBy("created_at DESC", "record_id DESC").
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	start := time.Now()

	result := &entity.Shipment{}
	err = sr.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&result.RecordID,
		&result.Code,
		&result.Sender,
		&result.Recipient,
		&result.Package,
	)
	sr.metrics.ObserveQuery("get_by_code", time.Since(start))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		sr.metrics.IncrementFailures("get_by_code")
		return nil, fmt.Errorf("%s: query row: %w", op, errors.Join(entity.ErrStorageUnavailable, err))
	}

	return result, nil
}

func (sr *ShipmentRepository) ListAll(ctx context.Context) ([]*entity.Shipment, error) {
	const op = "repository.shipment.ListAll"

	query := sr.db.Builder.Select("record_id", "code", "sender", "recipient", "package").
		From("shipments").
		OrderBy("created_at ASC").
		Limit(listLimit)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	start := time.Now()

	rows, err := sr.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		sr.metrics.IncrementFailures("list_all")
		return nil, fmt.Errorf("%s: query: %w", op, errors.Join(entity.ErrStorageUnavailable, err))
	}
	defer rows.Close()

	shipments := make([]*entity.Shipment, 0, 64)
	for rows.Next() {
		shipment := &entity.Shipment{}
		if err = rows.Scan(
			&shipment.RecordID,
			&shipment.Code,
			&shipment.Sender,
			&shipment.Recipient,
			&shipment.Package,
		); err != nil {
			sr.metrics.IncrementFailures("list_all")
			return nil, fmt.Errorf("%s: row scan: %w", op, errors.Join(entity.ErrStorageUnavailable, err))
		}
		shipments = append(shipments, shipment)
	}
	sr.metrics.ObserveQuery("list_all", time.Since(start))

	if rows.Err() != nil {
		sr.metrics.IncrementFailures("list_all")
		return nil, fmt.Errorf("%s: rows final error: %w", op, errors.Join(entity.ErrStorageUnavailable, rows.Err()))
	}

	return shipments, nil
}
