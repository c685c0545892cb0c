// SPDX-License-Identifier: Apache-2.0

package crunchdao

import (
	"context"
	"fmt"

	"github.com/crunchdao/crunchdao-go/models"
)

// DatasetConfig retrieves the dataset configuration of a round: dataset
// identity, prediction periods, expected prediction columns and submission
// window flags. Pass 0 to select the currently active round. No
// authentication is required.
func (c *Client) DatasetConfig(ctx context.Context, round int64) (*models.DatasetConfig, error) {
	cfg, err := c.backend.DatasetConfig(ctx, round)
	if err != nil {
		return nil, fmt.Errorf("dataset config: %w", err)
	}
	return cfg, nil
}

// LastCrunch returns the number of the most recent crunch the caller
// uploaded to in the current round. Fails with [ErrNotFound] when the caller
// has no submissions in the round yet.
func (c *Client) LastCrunch(ctx context.Context) (int64, error) {
	if err := c.requireCredential("last crunch"); err != nil {
		return 0, err
	}

	cfg, err := c.DatasetConfig(ctx, 0)
	if err != nil {
		return 0, err
	}

	submissions, err := c.Submissions(ctx, WithRound(cfg.RoundID))
	if err != nil {
		return 0, err
	}
	if submissions.NumRows() == 0 {
		return 0, fmt.Errorf("last crunch: %w: no submissions in round %d", ErrNotFound, cfg.RoundID)
	}

	var last int64
	for i := 0; i < submissions.NumRows(); i++ {
		n, err := submissions.Int(i, "crunch_number")
		if err != nil {
			return 0, fmt.Errorf("last crunch: %w", err)
		}
		if n > last {
			last = n
		}
	}
	return last, nil
}
