// SPDX-License-Identifier: Apache-2.0

package crunchdao

import (
	"context"
	"fmt"
	"strconv"

	"github.com/crunchdao/crunchdao-go/models"
)

// SubmissionsOption customises a single [Client.Submissions] call.
type SubmissionsOption func(*submissionsOptions)

type submissionsOptions struct {
	user  string
	round int64
}

// WithUser lists the public submissions of another user instead of the
// caller's own. No authentication is required in that case.
func WithUser(userID int64) SubmissionsOption {
	return func(o *submissionsOptions) {
		o.user = strconv.FormatInt(userID, 10)
	}
}

// WithRound restricts the listing to a single round.
func WithRound(round int64) SubmissionsOption {
	return func(o *submissionsOptions) {
		o.round = round
	}
}

// Submissions lists submissions as a table with [models.SubmissionColumns],
// one row per submission, newest first as served by the backend.
//
// By default the caller's own submissions are listed, which requires a
// credential; without one the call fails with [ErrAuthentication] before any
// request is made.
func (c *Client) Submissions(ctx context.Context, opts ...SubmissionsOption) (*models.Table, error) {
	var o submissionsOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.user == "" {
		if err := c.requireCredential("list submissions"); err != nil {
			return nil, err
		}
	}

	submissions, err := c.backend.ListSubmissions(ctx, o.user, o.round)
	if err != nil {
		return nil, mapSubmissionsError(err)
	}

	table, err := models.SubmissionsTable(submissions)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return table, nil
}

// SetComment replaces the comment of an existing submission. The operation
// is idempotent: repeating it with the same comment leaves the submission in
// the same state.
//
// Fails with [ErrNotFound] if the submission does not exist or does not
// belong to the caller, and with [ErrAuthentication] without a credential.
func (c *Client) SetComment(ctx context.Context, submissionID int64, comment string) error {
	if err := c.requireCredential("set comment"); err != nil {
		return err
	}

	if err := c.backend.SetSubmissionComment(ctx, submissionID, comment); err != nil {
		return mapCommentError(err)
	}

	c.logger.Debug().Int64("submission_id", submissionID).Msg("comment updated")
	return nil
}
