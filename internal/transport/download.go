// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/schollz/progressbar/v3"
)

// DownloadAsset implements [Backend]. It streams the dataset file at
// assetPath into destPath. When destPath already holds a partial download,
// the transfer resumes from the current size via a Range request; when the
// local file is already complete it is left untouched; when it is larger
// than the remote asset it is discarded and re-downloaded.
func (b *backendTransport) DownloadAsset(ctx context.Context, assetPath, destPath string) (string, error) {
	resp, err := b.openAsset(ctx, assetPath, 0)
	if err != nil {
		return "", err
	}

	// total is -1 when the server does not advertise a usable length
	// (chunked or transparently decompressed transfers); the local file
	// cannot be compared against it then, so the download restarts.
	total := resp.RawResponse.ContentLength
	var offset int64

	if info, statErr := os.Stat(destPath); statErr == nil && total > 0 {
		size := info.Size()
		switch {
		case size == total:
			_ = resp.RawBody().Close()
			b.logger.Debug().Str("path", destPath).Msg("download already complete")
			return destPath, nil

		case size < total:
			_ = resp.RawBody().Close()
			resp, err = b.openAsset(ctx, assetPath, size)
			if err != nil {
				return "", err
			}
			if resp.StatusCode() == http.StatusPartialContent {
				offset = size
				b.logger.Debug().Str("path", destPath).Int64("offset", offset).Msg("resuming download")
			}
			// on a plain 200 the server ignored the range; restart

		default:
			// local file is larger than the remote asset; the truncating
			// open below restarts it
			b.logger.Debug().Str("path", destPath).Msg("local file larger than remote asset, restarting")
		}
	}
	defer func() { _ = resp.RawBody().Close() }()

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if offset > 0 {
		flags = os.O_WRONLY | os.O_APPEND
		total = offset + resp.RawResponse.ContentLength
	}

	file, err := os.OpenFile(destPath, flags, 0o644)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", destPath, err)
	}

	bar := b.newProgressBar(total, filepath.Base(destPath))
	if offset > 0 {
		_ = bar.Add64(offset)
	}

	if _, err = io.Copy(io.MultiWriter(file, bar), resp.RawBody()); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("write %s: %w", destPath, err)
	}
	if err = file.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", destPath, err)
	}
	_ = bar.Finish()

	return destPath, nil
}

// openAsset issues the GET for an asset, optionally from a byte offset, and
// returns the unparsed response with its body still open. Non-2xx responses
// are drained (up to 4 KiB) for the error message and mapped to sentinels.
func (b *backendTransport) openAsset(ctx context.Context, assetPath string, offset int64) (*resty.Response, error) {
	req := b.data.R().
		SetContext(ctx).
		SetDoNotParseResponse(true)
	if offset > 0 {
		req.SetHeader("Range", fmt.Sprintf("bytes=%d-", offset))
	}

	resp, err := req.Get(assetPath)
	if err != nil {
		return nil, fmt.Errorf("download request: %w", err)
	}

	if code := resp.StatusCode(); code < http.StatusOK || code >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.RawBody(), 4<<10))
		_ = resp.RawBody().Close()
		return nil, statusError(code, strings.TrimSpace(string(msg)))
	}

	return resp, nil
}

func (b *backendTransport) newProgressBar(total int64, description string) *progressbar.ProgressBar {
	out := io.Writer(os.Stderr)
	if !b.showProgress {
		out = io.Discard
	}

	return progressbar.NewOptions64(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWriter(out),
		progressbar.OptionClearOnFinish(),
	)
}
