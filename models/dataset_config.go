// SPDX-License-Identifier: Apache-2.0

package models

import "encoding/json"

// DatasetConfig describes the dataset and submission window of one round,
// as served by GET /v2/rounds/{round}/dataset-config. The wire format nests
// the dataset identity in a "dataset" object; UnmarshalJSON flattens it.
type DatasetConfig struct {
	// RoundID is the round this configuration applies to.
	RoundID int64 `json:"roundId"`

	// DatasetID and DatasetName identify the dataset served for the round.
	DatasetID   int64  `json:"-"`
	DatasetName string `json:"-"`

	// Live reports whether the round is currently accepting submissions.
	Live bool `json:"live"`

	// Updated reports whether the dataset files have been refreshed for
	// this round.
	Updated bool `json:"updated"`

	// Periods holds the red/green/blue prediction horizons as ISO 8601
	// durations (e.g. "P30D").
	Periods Periods `json:"periods"`

	// Inception is the inception date of the round's dataset, when the
	// round starts a new inception. Nil otherwise.
	Inception *string `json:"inception"`

	// FirstOfInception reports whether this round opens a new inception.
	FirstOfInception bool `json:"firstOfInception"`

	// ForcedStart is set when the round was opened manually. Nil when the
	// backend omits the field.
	ForcedStart *bool `json:"forcedStart"`

	// MoonsDuration is the spacing between moons as an ISO 8601 duration.
	MoonsDuration string `json:"moonsDuration"`

	// NegativePrevented reports whether negative predictions are rejected
	// for this round.
	NegativePrevented bool `json:"negativePrevented"`

	// Columns lists the column names expected in an uploaded prediction
	// file for this round.
	Columns []string `json:"columns"`
}

// Periods holds the three prediction horizons of a round.
type Periods struct {
	Red   string `json:"red"`
	Green string `json:"green"`
	Blue  string `json:"blue"`
}

// UnmarshalJSON decodes the wire format, lifting dataset.id and dataset.name
// into DatasetID and DatasetName.
func (c *DatasetConfig) UnmarshalJSON(data []byte) error {
	type alias DatasetConfig
	wire := struct {
		*alias
		Dataset struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"dataset"`
	}{alias: (*alias)(c)}

	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	c.DatasetID = wire.Dataset.ID
	c.DatasetName = wire.Dataset.Name
	return nil
}
