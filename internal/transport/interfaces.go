package transport

import (
	"context"

	"github.com/crunchdao/crunchdao-go/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend.go -package=mock

// Backend is the wire-level contract between the client facade and the
// tournament API. One method per remote operation; each call is a single
// request/response cycle with no retries.
type Backend interface {
	// UploadSubmission sends a serialized prediction file as a multipart
	// request to POST /v2/submissions and returns the new submission id.
	UploadSubmission(ctx context.Context, payload []byte, fileName, comment string) (int64, error)

	// ListSubmissions fetches submission records for user (the caller's own
	// when user is empty), optionally filtered to one round (round > 0).
	ListSubmissions(ctx context.Context, user string, round int64) ([]models.Submission, error)

	// SetSubmissionComment replaces the comment of an existing submission.
	SetSubmissionComment(ctx context.Context, submissionID int64, comment string) error

	// DatasetConfig fetches the dataset configuration of round, or of the
	// latest round when round is 0.
	DatasetConfig(ctx context.Context, round int64) (*models.DatasetConfig, error)

	// ListScores fetches metric records for a dataset, restricted to
	// resolved metrics when resolvedOnly is set.
	ListScores(ctx context.Context, dataset string, resolvedOnly bool) ([]models.Score, error)

	// DownloadAsset streams the dataset file at assetPath (relative to the
	// data host) into destPath, resuming a partial local file when
	// possible. Returns the path written.
	DownloadAsset(ctx context.Context, assetPath, destPath string) (string, error)
}
