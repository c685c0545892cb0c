// SPDX-License-Identifier: Apache-2.0

package crunchdao

import (
	"errors"
	"fmt"

	"github.com/crunchdao/crunchdao-go/internal/transport"
)

// mapUploadError translates transport errors from POST /v2/submissions into
// the public taxonomy. On this endpoint 401, 404 and 422 all describe
// credential problems (unverified email, unknown key, missing key); every
// other rejection is the server refusing the submission itself.
func mapUploadError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, transport.ErrUnauthorized),
		errors.Is(err, transport.ErrNotFound),
		errors.Is(err, transport.ErrUnprocessable):
		return fmt.Errorf("upload: %w: %v", ErrAuthentication, err)
	default:
		return fmt.Errorf("upload: %w: %v", ErrUpload, err)
	}
}

func mapSubmissionsError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, transport.ErrUnauthorized), errors.Is(err, transport.ErrUnprocessable):
		return fmt.Errorf("list submissions: %w: %v", ErrAuthentication, err)
	case errors.Is(err, transport.ErrNotFound):
		return fmt.Errorf("list submissions: %w: %v", ErrNotFound, err)
	default:
		return fmt.Errorf("list submissions: %w", err)
	}
}

// mapCommentError translates transport errors from the comment update. A 403
// means the submission exists but belongs to someone else; the caller sees
// that as not found, same as a wrong id.
func mapCommentError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, transport.ErrNotFound), errors.Is(err, transport.ErrForbidden):
		return fmt.Errorf("set comment: %w: %v", ErrNotFound, err)
	case errors.Is(err, transport.ErrUnauthorized), errors.Is(err, transport.ErrUnprocessable):
		return fmt.Errorf("set comment: %w: %v", ErrAuthentication, err)
	default:
		return fmt.Errorf("set comment: %w", err)
	}
}

func mapScoresError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, transport.ErrUnauthorized), errors.Is(err, transport.ErrUnprocessable):
		return fmt.Errorf("list scores: %w: %v", ErrAuthentication, err)
	case errors.Is(err, transport.ErrNotFound):
		return fmt.Errorf("list scores: %w: %v", ErrNotFound, err)
	default:
		return fmt.Errorf("list scores: %w", err)
	}
}

func mapDownloadError(asset string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("download %s: %w: %v", asset, ErrDownload, err)
}
