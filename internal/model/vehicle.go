// Package model defines the core data structures for the carmatch engine.
package model

// Vehicle represents a single inventory unit as supplied by the inventory
// provider. The engine only reads vehicles, never mutates them.
type Vehicle struct {
	ID           string  `json:"id"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Version      string  `json:"version,omitempty"`
	Color        string  `json:"color,omitempty"`
	BodyType     string  `json:"body_type"`
	FuelType     string  `json:"fuel_type,omitempty"`
	Transmission string  `json:"transmission,omitempty"`
	Year         int     `json:"year"`
	Mileage      int     `json:"mileage"`
	Price        float64 `json:"price"`
	Available    bool    `json:"available"`
}

// DisplayName returns a short human-readable label for the vehicle.
func (v Vehicle) DisplayName() string {
	name := v.Brand + " " + v.Model
	if v.Version != "" {
		name += " " + v.Version
	}
	return name
}
