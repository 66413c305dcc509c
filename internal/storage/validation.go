package storage

import (
	"context"
	"fmt"

	"github.com/vendedor-ai/carmatch/internal/common"
	"github.com/vendedor-ai/carmatch/internal/model"
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context must not be nil")
	}
	return ctx.Err()
}

func validateString(value, name string) error {
	if value == "" {
		return fmt.Errorf("%s must not be empty", name)
	}
	return nil
}

func validateVehicle(v model.Vehicle) error {
	switch {
	case v.ID == "":
		return fmt.Errorf("%w: missing id", common.ErrInvalidRecord)
	case v.Brand == "":
		return fmt.Errorf("%w: vehicle %s has no brand", common.ErrInvalidRecord, v.ID)
	case v.Model == "":
		return fmt.Errorf("%w: vehicle %s has no model", common.ErrInvalidRecord, v.ID)
	case v.Year <= 0:
		return fmt.Errorf("%w: vehicle %s has invalid year %d", common.ErrInvalidRecord, v.ID, v.Year)
	case v.Mileage < 0:
		return fmt.Errorf("%w: vehicle %s has negative mileage", common.ErrInvalidRecord, v.ID)
	case v.Price < 0:
		return fmt.Errorf("%w: vehicle %s has negative price", common.ErrInvalidRecord, v.ID)
	}
	return nil
}
