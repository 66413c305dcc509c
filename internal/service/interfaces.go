// Package service defines the interfaces between the engine and its
// external collaborators.
package service

import (
	"context"

	"github.com/vendedor-ai/carmatch/internal/model"
)

// InventoryStore is the contract for the inventory provider. The matching
// engine itself never touches storage; callers fetch a snapshot through this
// interface and hand it to the engine as a value.
type InventoryStore interface {
	SaveVehicles(ctx context.Context, vehicles []model.Vehicle) error
	GetVehicle(ctx context.Context, id string) (*model.Vehicle, error)
	ListVehicles(ctx context.Context) ([]model.Vehicle, error)
	ListAvailable(ctx context.Context) ([]model.Vehicle, error)
	SetAvailability(ctx context.Context, id string, available bool) error
	Migrate(ctx context.Context) error
	Close() error
}
