package fallback

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vendedor-ai/carmatch/internal/common"
	"github.com/vendedor-ai/carmatch/internal/model"
)

// MarshalResult encodes a fallback result for crossing a process or storage
// boundary, stamping the serialization time into the metadata.
func MarshalResult(result model.FallbackResult) ([]byte, error) {
	now := time.Now().UTC()
	result.Metadata.Timestamp = &now

	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encoding fallback result: %w", err)
	}
	return data, nil
}

// UnmarshalResult decodes and validates a serialized fallback result.
// Malformed payloads, unknown type discriminators and missing required
// metadata are hard errors: a corrupted persisted result is a
// data-integrity problem, never a business-as-usual empty result.
func UnmarshalResult(data []byte) (model.FallbackResult, error) {
	var probe struct {
		Type           *model.FallbackType `json:"type"`
		RequestedModel *string             `json:"requested_model"`
		RequestedYear  json.RawMessage     `json:"requested_year"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return model.FallbackResult{}, fmt.Errorf("%w: %v", common.ErrMalformedResult, err)
	}

	if probe.Type == nil {
		return model.FallbackResult{}, fmt.Errorf("%w: type", common.ErrMissingField)
	}
	if !model.KnownFallbackType(*probe.Type) {
		return model.FallbackResult{}, fmt.Errorf("%w: %q", common.ErrUnknownType, *probe.Type)
	}
	if probe.RequestedModel == nil {
		return model.FallbackResult{}, fmt.Errorf("%w: requested_model", common.ErrMissingField)
	}
	if probe.RequestedYear == nil {
		return model.FallbackResult{}, fmt.Errorf("%w: requested_year", common.ErrMissingField)
	}

	var result model.FallbackResult
	if err := json.Unmarshal(data, &result); err != nil {
		return model.FallbackResult{}, fmt.Errorf("%w: %v", common.ErrMalformedResult, err)
	}
	if result.Matches == nil {
		result.Matches = []model.VehicleMatch{}
	}
	return result, nil
}

// MarshalExactResult encodes an exact-search result for crossing a process
// or storage boundary, stamping the serialization time.
func MarshalExactResult(result model.ExactSearchResult) ([]byte, error) {
	now := time.Now().UTC()
	result.Timestamp = &now

	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encoding exact result: %w", err)
	}
	return data, nil
}

// UnmarshalExactResult decodes and validates a serialized exact-search
// result, enforcing the closed set of type discriminators.
func UnmarshalExactResult(data []byte) (model.ExactSearchResult, error) {
	var probe struct {
		Type *model.ExactMatchType `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return model.ExactSearchResult{}, fmt.Errorf("%w: %v", common.ErrMalformedResult, err)
	}

	if probe.Type == nil {
		return model.ExactSearchResult{}, fmt.Errorf("%w: type", common.ErrMissingField)
	}
	switch *probe.Type {
	case model.MatchExact, model.MatchYearAlternatives, model.MatchSuggestions, model.MatchUnavailable:
	default:
		return model.ExactSearchResult{}, fmt.Errorf("%w: %q", common.ErrUnknownType, *probe.Type)
	}

	var result model.ExactSearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return model.ExactSearchResult{}, fmt.Errorf("%w: %v", common.ErrMalformedResult, err)
	}
	if result.Matches == nil {
		result.Matches = []model.VehicleMatch{}
	}
	return result, nil
}
