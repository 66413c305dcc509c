package fallback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendedor-ai/carmatch/internal/common"
	"github.com/vendedor-ai/carmatch/internal/knowledge"
	"github.com/vendedor-ai/carmatch/internal/model"
	"github.com/vendedor-ai/carmatch/internal/scoring"
	"github.com/vendedor-ai/carmatch/internal/testutil"
)

func sampleResult(t *testing.T) model.FallbackResult {
	t.Helper()
	e := New(knowledge.Default(), scoring.New(knowledge.Default()))
	year := 2019
	return e.FindAlternatives("Onix", &year, testutil.SmallInventory(), 0)
}

func TestResultRoundTrip(t *testing.T) {
	original := sampleResult(t)

	data, err := MarshalResult(original)
	require.NoError(t, err)

	decoded, err := UnmarshalResult(data)
	require.NoError(t, err)

	// Every field survives except the timestamp added during serialization.
	require.NotNil(t, decoded.Metadata.Timestamp)
	assert.WithinDuration(t, time.Now().UTC(), *decoded.Metadata.Timestamp, time.Minute)

	decoded.Metadata.Timestamp = nil
	assert.Equal(t, original, decoded)
}

func TestResultRoundTripNoResults(t *testing.T) {
	e := New(knowledge.Default(), scoring.New(knowledge.Default()))
	original := e.FindAlternatives("Fusca", nil, nil, 0)
	require.Equal(t, model.FallbackNoResults, original.Type)

	data, err := MarshalResult(original)
	require.NoError(t, err)

	decoded, err := UnmarshalResult(data)
	require.NoError(t, err)
	assert.Empty(t, decoded.Matches)
	assert.Nil(t, decoded.RequestedYear)
}

func TestUnmarshalResultRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr error
	}{
		{
			name:    "not json",
			payload: `{{{`,
			wantErr: common.ErrMalformedResult,
		},
		{
			name:    "missing type",
			payload: `{"requested_model":"Onix","requested_year":2019,"matches":[]}`,
			wantErr: common.ErrMissingField,
		},
		{
			name:    "unknown type",
			payload: `{"type":"teleport","requested_model":"Onix","requested_year":2019,"matches":[]}`,
			wantErr: common.ErrUnknownType,
		},
		{
			name:    "missing requested model",
			payload: `{"type":"no_results","requested_year":2019,"matches":[]}`,
			wantErr: common.ErrMissingField,
		},
		{
			name:    "missing requested year",
			payload: `{"type":"no_results","requested_model":"Onix","matches":[]}`,
			wantErr: common.ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalResult([]byte(tt.payload))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUnmarshalResultAcceptsNullYear(t *testing.T) {
	payload := `{"type":"no_results","message":"nada","requested_model":"Onix","requested_year":null,"matches":[],"metadata":{"strategy_used":"no_results","candidates_considered":0,"elapsed_ns":0}}`

	decoded, err := UnmarshalResult([]byte(payload))
	require.NoError(t, err)
	assert.Nil(t, decoded.RequestedYear)
	assert.Equal(t, model.FallbackNoResults, decoded.Type)
}

func TestExactResultRoundTrip(t *testing.T) {
	original := model.ExactSearchResult{
		Type:    model.MatchYearAlternatives,
		Message: "Não temos Onix 2019, mas temos o modelo em outros anos: 2021.",
		Matches: []model.VehicleMatch{
			{Vehicle: testutil.Vehicle("v2", testutil.WithYear(2021)), Score: 80, Reasoning: "ano próximo"},
		},
		AvailableYears: []int{2021},
	}

	data, err := MarshalExactResult(original)
	require.NoError(t, err)

	decoded, err := UnmarshalExactResult(data)
	require.NoError(t, err)

	// Every field survives except the timestamp added during serialization.
	require.NotNil(t, decoded.Timestamp)
	assert.WithinDuration(t, time.Now().UTC(), *decoded.Timestamp, time.Minute)

	decoded.Timestamp = nil
	assert.Equal(t, original, decoded)
}

func TestUnmarshalExactResultValidation(t *testing.T) {
	_, err := UnmarshalExactResult([]byte(`{"message":"hi","matches":[]}`))
	assert.ErrorIs(t, err, common.ErrMissingField)

	_, err = UnmarshalExactResult([]byte(`{"type":"banana","matches":[]}`))
	assert.ErrorIs(t, err, common.ErrUnknownType)

	_, err = UnmarshalExactResult([]byte(`not json`))
	assert.ErrorIs(t, err, common.ErrMalformedResult)
}
