// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// Score is one metric record computed for a submission against a dataset,
// as returned by GET /v2/datasets/{dataset}/scores. Scores are read-only;
// the backend recomputes them as true target values become available.
type Score struct {
	// DatasetID is the dataset the metric was computed against.
	DatasetID int64 `json:"datasetId"`

	// SubmissionID is the scored submission.
	SubmissionID int64 `json:"submissionId"`

	// Target names the scored prediction period ("r", "g" or "b").
	Target string `json:"target"`

	// Value is the metric value.
	Value float64 `json:"value"`

	// Resolved reports whether the metric is final, i.e. computed from
	// realized target values rather than a provisional estimate.
	Resolved bool `json:"resolved"`

	// ComputedAt is when the metric was last computed.
	ComputedAt time.Time `json:"computedAt"`
}

// ScoreColumns is the schema produced by [ScoresTable], one row per metric.
var ScoreColumns = []Column{
	{Name: "dataset_id", Type: ColumnInt},
	{Name: "submission_id", Type: ColumnInt},
	{Name: "target", Type: ColumnString},
	{Name: "value", Type: ColumnFloat},
	{Name: "resolved", Type: ColumnBool},
	{Name: "computed_ts", Type: ColumnTime},
}

// ScoresTable converts score records into a [Table] with [ScoreColumns].
func ScoresTable(scores []Score) (*Table, error) {
	t := NewTable(ScoreColumns...)
	for _, s := range scores {
		err := t.AppendValues(s.DatasetID, s.SubmissionID, s.Target, s.Value, s.Resolved, s.ComputedAt)
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}
