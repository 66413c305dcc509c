package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vendedor-ai/carmatch/internal/common"
	"github.com/vendedor-ai/carmatch/internal/model"
)

const vehicleColumns = `id, brand, model, COALESCE(version, ''), year, mileage, price,
	COALESCE(color, ''), body_type, COALESCE(fuel_type, ''), COALESCE(transmission, ''), available`

// SaveVehicles upserts a batch of vehicles in a single transaction.
func (s *SQLiteStorage) SaveVehicles(ctx context.Context, vehicles []model.Vehicle) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	for _, v := range vehicles {
		if err := validateVehicle(v); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO vehicles
		(id, brand, model, version, year, mileage, price, color, body_type, fuel_type, transmission, available)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			brand = excluded.brand,
			model = excluded.model,
			version = excluded.version,
			year = excluded.year,
			mileage = excluded.mileage,
			price = excluded.price,
			color = excluded.color,
			body_type = excluded.body_type,
			fuel_type = excluded.fuel_type,
			transmission = excluded.transmission,
			available = excluded.available`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, v := range vehicles {
		if _, err := stmt.ExecContext(ctx,
			v.ID, v.Brand, v.Model, v.Version, v.Year, v.Mileage, v.Price,
			v.Color, v.BodyType, v.FuelType, v.Transmission, v.Available); err != nil {
			return fmt.Errorf("failed to save vehicle %s: %w", v.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit vehicles: %w", err)
	}
	return nil
}

// GetVehicle returns a single vehicle by ID.
func (s *SQLiteStorage) GetVehicle(ctx context.Context, id string) (*model.Vehicle, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT `+vehicleColumns+` FROM vehicles WHERE id = ?`, id)

	v, err := scanVehicle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("vehicle %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle %s: %w", id, err)
	}
	return &v, nil
}

// ListVehicles returns every vehicle, available or not, in stable order.
func (s *SQLiteStorage) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	return s.listWhere(ctx, ``)
}

// ListAvailable returns the snapshot the matching engine consumes: every
// vehicle currently flagged available, in stable order.
func (s *SQLiteStorage) ListAvailable(ctx context.Context) ([]model.Vehicle, error) {
	return s.listWhere(ctx, `WHERE available = 1`)
}

func (s *SQLiteStorage) listWhere(ctx context.Context, where string) ([]model.Vehicle, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+vehicleColumns+` FROM vehicles `+where+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var vehicles []model.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vehicles: %w", err)
	}
	return vehicles, nil
}

// SetAvailability flips a vehicle's availability flag.
func (s *SQLiteStorage) SetAvailability(ctx context.Context, id string, available bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE vehicles SET available = ? WHERE id = ?`, available, id)
	if err != nil {
		return fmt.Errorf("failed to update availability of %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update of %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("vehicle %s: %w", id, common.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner) (model.Vehicle, error) {
	var v model.Vehicle
	err := row.Scan(&v.ID, &v.Brand, &v.Model, &v.Version, &v.Year, &v.Mileage,
		&v.Price, &v.Color, &v.BodyType, &v.FuelType, &v.Transmission, &v.Available)
	return v, err
}
