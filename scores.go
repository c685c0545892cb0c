// SPDX-License-Identifier: Apache-2.0

package crunchdao

import (
	"context"
	"fmt"

	"github.com/crunchdao/crunchdao-go/models"
)

// ScoresOption customises a single [Client.Scores] call.
type ScoresOption func(*scoresOptions)

type scoresOptions struct {
	resolvedOnly bool
}

// WithResolvedOnly restricts the listing to resolved metrics, i.e. those
// computed from realized target values rather than provisional estimates.
func WithResolvedOnly() ScoresOption {
	return func(o *scoresOptions) {
		o.resolvedOnly = true
	}
}

// Scores lists the metric records of a dataset as a table with
// [models.ScoreColumns]. Requires a credential; without one the call fails
// with [ErrAuthentication] before any request is made.
func (c *Client) Scores(ctx context.Context, dataset string, opts ...ScoresOption) (*models.Table, error) {
	if err := c.requireCredential("list scores"); err != nil {
		return nil, err
	}
	if dataset == "" {
		return nil, fmt.Errorf("list scores: %w: dataset must not be empty", ErrValidation)
	}

	var o scoresOptions
	for _, opt := range opts {
		opt(&o)
	}

	scores, err := c.backend.ListScores(ctx, dataset, o.resolvedOnly)
	if err != nil {
		return nil, mapScoresError(err)
	}

	table, err := models.ScoresTable(scores)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	return table, nil
}
