// SPDX-License-Identifier: Apache-2.0

package crunchdao

import (
	"context"
	"errors"
	"fmt"

	"github.com/crunchdao/crunchdao-go/internal/transport"
	"github.com/crunchdao/crunchdao-go/models"
)

// uploadFileName is the name the prediction file is submitted under. The
// backend ignores it and identifies submissions by content hash.
const uploadFileName = "predictions.csv"

// UploadOption customises a single [Client.Upload] call.
type UploadOption func(*uploadOptions)

type uploadOptions struct {
	comment string
}

// WithComment attaches a free-form note to the created submission.
func WithComment(comment string) UploadOption {
	return func(o *uploadOptions) {
		o.comment = comment
	}
}

// Upload serializes the prediction table to CSV and submits it for the
// current round, returning the id of the created submission.
//
// The table must be non-empty and carry at least an id column and one
// prediction column, otherwise [ErrValidation] is returned before any
// network call. A missing credential yields [ErrAuthentication], and a
// server-side rejection (closed round, duplicate, schema mismatch)
// [ErrUpload] wrapping the server's reason.
func (c *Client) Upload(ctx context.Context, predictions *models.Table, opts ...UploadOption) (int64, error) {
	if err := c.requireCredential("upload"); err != nil {
		return 0, err
	}
	if err := validatePredictions(predictions); err != nil {
		return 0, err
	}

	var o uploadOptions
	for _, opt := range opts {
		opt(&o)
	}

	payload, err := predictions.MarshalCSV()
	if err != nil {
		return 0, fmt.Errorf("upload: %w: %v", ErrValidation, err)
	}

	id, err := c.backend.UploadSubmission(ctx, payload, uploadFileName, o.comment)
	if err != nil {
		c.explainUploadError(err)
		return 0, mapUploadError(err)
	}

	c.logger.Info().Int64("submission_id", id).Msg("submission submitted")
	return id, nil
}

func validatePredictions(predictions *models.Table) error {
	if predictions == nil || predictions.NumRows() == 0 {
		return fmt.Errorf("upload: %w: predictions table is empty", ErrValidation)
	}
	if predictions.NumColumns() < 2 {
		return fmt.Errorf("upload: %w: predictions need an id column and at least one prediction column, got %d columns",
			ErrValidation, predictions.NumColumns())
	}
	return nil
}

// explainUploadError logs the human guidance behind each known rejection, so
// a failed upload against the live service is debuggable without consulting
// the API documentation.
func (c *Client) explainUploadError(err error) {
	switch {
	case errors.Is(err, transport.ErrLocked):
		c.logger.Warn().Msg("submissions are closed: rounds run Friday 7pm GMT+1 to Sunday midnight GMT+1, or the server is still crunching previously submitted files")
	case errors.Is(err, transport.ErrUnprocessable):
		c.logger.Warn().Msg("api key is missing or empty")
	case errors.Is(err, transport.ErrNotFound):
		c.logger.Warn().Msg("unknown api key: check it matches the one you received by email")
	case errors.Is(err, transport.ErrUnauthorized):
		c.logger.Warn().Msg("your email has not been verified yet")
	case errors.Is(err, transport.ErrBadRequest):
		c.logger.Warn().Msg("the uploaded file must not be empty")
	case errors.Is(err, transport.ErrConflict):
		c.logger.Warn().Msg("duplicate submission: a file with identical results has already been uploaded")
	case errors.Is(err, transport.ErrTooManyRequests):
		c.logger.Warn().Msg("too many submissions")
	}
}
