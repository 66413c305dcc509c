package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vendedor-ai/carmatch/internal/common"
	"github.com/vendedor-ai/carmatch/internal/model"
)

// csvHeader is the expected column layout of an inventory CSV export.
var csvHeader = []string{
	"id", "brand", "model", "version", "year", "mileage", "price",
	"color", "body_type", "fuel_type", "transmission", "available",
}

// LoadCSV reads an inventory CSV file into vehicle records. The first row
// must be the header; rows with malformed numeric fields fail the whole load
// with the offending line number.
func LoadCSV(path string) ([]model.Vehicle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory file: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var vehicles []model.Vehicle
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		v, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		vehicles = append(vehicles, v)
	}

	if len(vehicles) == 0 {
		return nil, fmt.Errorf("%w: %s has no data rows", common.ErrEmptyInventory, path)
	}

	return vehicles, nil
}

func checkHeader(header []string) error {
	if len(header) != len(csvHeader) {
		return fmt.Errorf("expected %d columns, got %d", len(csvHeader), len(header))
	}
	for i, want := range csvHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return fmt.Errorf("expected column %d to be %q, got %q", i+1, want, header[i])
		}
	}
	return nil
}

func parseRecord(record []string) (model.Vehicle, error) {
	if len(record) != len(csvHeader) {
		return model.Vehicle{}, fmt.Errorf("expected %d fields, got %d", len(csvHeader), len(record))
	}

	year, err := strconv.Atoi(record[4])
	if err != nil {
		return model.Vehicle{}, fmt.Errorf("invalid year %q", record[4])
	}
	mileage, err := strconv.Atoi(record[5])
	if err != nil {
		return model.Vehicle{}, fmt.Errorf("invalid mileage %q", record[5])
	}
	price, err := strconv.ParseFloat(record[6], 64)
	if err != nil {
		return model.Vehicle{}, fmt.Errorf("invalid price %q", record[6])
	}
	available, err := strconv.ParseBool(record[11])
	if err != nil {
		return model.Vehicle{}, fmt.Errorf("invalid available flag %q", record[11])
	}

	return model.Vehicle{
		ID:           strings.TrimSpace(record[0]),
		Brand:        strings.TrimSpace(record[1]),
		Model:        strings.TrimSpace(record[2]),
		Version:      strings.TrimSpace(record[3]),
		Year:         year,
		Mileage:      mileage,
		Price:        price,
		Color:        strings.TrimSpace(record[7]),
		BodyType:     strings.TrimSpace(record[8]),
		FuelType:     strings.TrimSpace(record[9]),
		Transmission: strings.TrimSpace(record[10]),
		Available:    available,
	}, nil
}
