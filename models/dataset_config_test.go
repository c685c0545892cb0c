package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetConfig_UnmarshalFlattensDataset(t *testing.T) {
	payload := `{
	  "id": 910,
	  "roundId": 76,
	  "live": false,
	  "updated": true,
	  "dataset": {"id": 4, "name": "e-kinetic"},
	  "periods": {"red": "P30D", "green": "P60D", "blue": "P90D"},
	  "inception": null,
	  "firstOfInception": false,
	  "forcedStart": null,
	  "moonsDuration": "P7D",
	  "negativePrevented": false,
	  "columns": ["id", "pred"]
	}`

	var cfg DatasetConfig
	require.NoError(t, json.Unmarshal([]byte(payload), &cfg))

	assert.Equal(t, int64(76), cfg.RoundID)
	assert.Equal(t, int64(4), cfg.DatasetID)
	assert.Equal(t, "e-kinetic", cfg.DatasetName)
	assert.False(t, cfg.Live)
	assert.True(t, cfg.Updated)
	assert.Equal(t, Periods{Red: "P30D", Green: "P60D", Blue: "P90D"}, cfg.Periods)
	assert.Nil(t, cfg.Inception)
	assert.Nil(t, cfg.ForcedStart)
	assert.Equal(t, "P7D", cfg.MoonsDuration)
	assert.Equal(t, []string{"id", "pred"}, cfg.Columns)
}

func TestDatasetConfig_UnmarshalOptionalFields(t *testing.T) {
	payload := `{
	  "roundId": 80,
	  "live": true,
	  "dataset": {"id": 5, "name": "f-orbital"},
	  "inception": "2023-05-01",
	  "forcedStart": true
	}`

	var cfg DatasetConfig
	require.NoError(t, json.Unmarshal([]byte(payload), &cfg))

	require.NotNil(t, cfg.Inception)
	assert.Equal(t, "2023-05-01", *cfg.Inception)
	require.NotNil(t, cfg.ForcedStart)
	assert.True(t, *cfg.ForcedStart)
}
