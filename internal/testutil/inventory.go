// Package testutil provides shared test fixtures for the carmatch packages.
package testutil

import (
	"github.com/vendedor-ai/carmatch/internal/model"
)

// Vehicle builds a plausible available vehicle and applies the given
// overrides. Tests adjust only the fields they care about.
func Vehicle(id string, overrides ...func(*model.Vehicle)) model.Vehicle {
	v := model.Vehicle{
		ID:           id,
		Brand:        "Chevrolet",
		Model:        "Onix",
		Version:      "LT 1.0",
		Year:         2020,
		Mileage:      45000,
		Price:        68000,
		Color:        "Prata",
		BodyType:     "hatch",
		FuelType:     "flex",
		Transmission: "manual",
		Available:    true,
	}
	for _, o := range overrides {
		o(&v)
	}
	return v
}

// WithModel overrides brand and model.
func WithModel(brand, name string) func(*model.Vehicle) {
	return func(v *model.Vehicle) {
		v.Brand = brand
		v.Model = name
	}
}

// WithYear overrides the model year.
func WithYear(year int) func(*model.Vehicle) {
	return func(v *model.Vehicle) {
		v.Year = year
	}
}

// WithPrice overrides the asking price.
func WithPrice(price float64) func(*model.Vehicle) {
	return func(v *model.Vehicle) {
		v.Price = price
	}
}

// WithBodyType overrides the raw body-type string.
func WithBodyType(bodyType string) func(*model.Vehicle) {
	return func(v *model.Vehicle) {
		v.BodyType = bodyType
	}
}

// Unavailable marks the vehicle as sold or reserved.
func Unavailable() func(*model.Vehicle) {
	return func(v *model.Vehicle) {
		v.Available = false
	}
}

// SmallInventory returns a mixed snapshot used by several package tests:
// two Onix units, an unavailable one, an HB20, a Tracker and a Hilux.
func SmallInventory() []model.Vehicle {
	return []model.Vehicle{
		Vehicle("v1", WithYear(2019), WithPrice(62000)),
		Vehicle("v2", WithYear(2021), WithPrice(72000)),
		Vehicle("v3", WithYear(2019), Unavailable()),
		Vehicle("v4", WithModel("Hyundai", "HB20"), WithYear(2020), WithPrice(64000)),
		Vehicle("v5", WithModel("Chevrolet", "Tracker"), WithYear(2021), WithPrice(115000), WithBodyType("suv")),
		Vehicle("v6", WithModel("Toyota", "Hilux"), WithYear(2020), WithPrice(210000), WithBodyType("cabine dupla")),
	}
}
