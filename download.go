// SPDX-License-Identifier: Apache-2.0

package crunchdao

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// Format selects the dataset file variant requested from the backend.
type Format string

const (
	// FormatCSV requests row-oriented text files.
	FormatCSV Format = "csv"
	// FormatParquet requests columnar binary files.
	FormatParquet Format = "parquet"
)

// datasetFileStems are the dataset files served for every round, in download
// order. The example submission is always CSV regardless of format.
var datasetFileStems = []string{"X_train", "y_train", "X_test"}

const exampleSubmissionFile = "example_submission.csv"

// DownloadOption customises a single [Client.DownloadData] call.
type DownloadOption func(*downloadOptions)

type downloadOptions struct {
	format  Format
	dataset string
}

// WithFormat selects the dataset file variant (default [FormatCSV]).
func WithFormat(format Format) DownloadOption {
	return func(o *downloadOptions) {
		o.format = format
	}
}

// WithDataset downloads the files of a specific named dataset instead of the
// current round's.
func WithDataset(dataset string) DownloadOption {
	return func(o *downloadOptions) {
		o.dataset = dataset
	}
}

// DownloadData fetches the training data, targets, test data and the example
// submission file into directory, creating it if needed, and returns the
// paths written.
//
// An unsupported format fails with [ErrValidation] before any request is
// issued. A non-success server response or a filesystem write failure fails
// with [ErrDownload]. No authentication is required. Partially downloaded
// files left behind by an interrupted call are resumed on the next one.
func (c *Client) DownloadData(ctx context.Context, directory string, opts ...DownloadOption) ([]string, error) {
	o := downloadOptions{format: FormatCSV}
	for _, opt := range opts {
		opt(&o)
	}

	if o.format != FormatCSV && o.format != FormatParquet {
		return nil, fmt.Errorf("download data: %w: unsupported format %q", ErrValidation, o.format)
	}

	if err := os.MkdirAll(directory, 0o755); err != nil {
		return nil, fmt.Errorf("download data: %w: %v", ErrDownload, err)
	}

	names := make([]string, 0, len(datasetFileStems)+1)
	for _, stem := range datasetFileStems {
		names = append(names, stem+"."+string(o.format))
	}
	names = append(names, exampleSubmissionFile)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		assetPath := "/" + name
		if o.dataset != "" {
			assetPath = "/" + url.PathEscape(o.dataset) + "/" + name
		}

		path, err := c.backend.DownloadAsset(ctx, assetPath, filepath.Join(directory, name))
		if err != nil {
			return paths, mapDownloadError(name, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}
