// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/crunchdao/crunchdao-go/internal/config"
	"github.com/crunchdao/crunchdao-go/internal/logger"
	"github.com/crunchdao/crunchdao-go/models"
)

// selfUser is the path segment the backend accepts in place of a numeric
// user id to mean "the authenticated caller".
const selfUser = "@me"

// latestRound is the path segment selecting the currently active round.
const latestRound = "@latest"

type backendTransport struct {
	api  *resty.Client
	data *resty.Client

	apiKey       string
	showProgress bool

	logger *logger.Logger
}

// NewBackend constructs the HTTP/REST implementation of [Backend]. It
// normalises and validates both base URLs from cfg and configures one resty
// client per host: the API client with the configured request timeout, the
// data client without one, since dataset files can legitimately take longer
// than any fixed per-request bound (callers cancel via context instead).
//
// Returns an error if either base URL is empty or cannot be parsed.
func NewBackend(cfg *config.Config, log *logger.Logger) (Backend, error) {
	apiURL, err := normalizeBaseURL(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	dataURL, err := normalizeBaseURL(cfg.DataBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid data base url: %w", err)
	}

	api := resty.New().
		SetBaseURL(apiURL).
		SetTimeout(cfg.RequestTimeout)
	api.OnBeforeRequest(setRequestID)

	data := resty.New().SetBaseURL(dataURL)
	data.OnBeforeRequest(setRequestID)

	return &backendTransport{
		api:          api,
		data:         data,
		apiKey:       cfg.APIKey,
		showProgress: cfg.ShowProgress,
		logger:       log,
	}, nil
}

// setRequestID stamps every outbound request with a fresh X-Request-Id so
// failures can be correlated with backend logs in support requests.
func setRequestID(_ *resty.Client, r *resty.Request) error {
	r.SetHeader("X-Request-Id", uuid.NewString())
	return nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// authedRequest returns a request carrying the API key as a bearer
// credential when one is configured.
func (b *backendTransport) authedRequest(ctx context.Context) *resty.Request {
	req := b.api.R().SetContext(ctx)
	if b.apiKey != "" {
		req.SetHeader("Authorization", "Bearer "+b.apiKey)
	}
	return req
}

// UploadSubmission implements [Backend]. It sends payload as the "file" part
// of a multipart POST /v2/submissions, with the comment as an additional
// form field when non-empty, and returns the id of the created submission.
func (b *backendTransport) UploadSubmission(ctx context.Context, payload []byte, fileName, comment string) (int64, error) {
	var created struct {
		ID int64 `json:"id"`
	}

	req := b.authedRequest(ctx).
		SetFileReader("file", fileName, bytes.NewReader(payload)).
		SetResult(&created)
	if comment != "" {
		req.SetMultipartFormData(map[string]string{"comment": comment})
	}

	resp, err := req.Post("/v2/submissions")
	if err != nil {
		return 0, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	b.logger.Debug().Int64("submission_id", created.ID).Msg("submission created")
	return created.ID, nil
}

// ListSubmissions implements [Backend]. It GETs
// /v2/users/{user}/submissions, authenticating only for the caller's own
// listing ("@me"): other users' submissions are public.
func (b *backendTransport) ListSubmissions(ctx context.Context, user string, round int64) ([]models.Submission, error) {
	if user == "" {
		user = selfUser
	}

	req := b.api.R().SetContext(ctx)
	if user == selfUser {
		req = b.authedRequest(ctx)
	}
	if round > 0 {
		req.SetQueryParam("round", strconv.FormatInt(round, 10))
	}

	resp, err := req.Get("/v2/users/" + url.PathEscape(user) + "/submissions")
	if err != nil {
		return nil, fmt.Errorf("list submissions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var submissions []models.Submission
	if err = json.Unmarshal(resp.Body(), &submissions); err != nil {
		return nil, fmt.Errorf("decode submissions response: %w", err)
	}

	return submissions, nil
}

// SetSubmissionComment implements [Backend]. It PATCHes the comment of one
// submission. The backend treats the operation as a plain replace, so
// repeating it with the same comment is safe.
func (b *backendTransport) SetSubmissionComment(ctx context.Context, submissionID int64, comment string) error {
	resp, err := b.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"comment": comment}).
		Patch("/v2/submissions/" + strconv.FormatInt(submissionID, 10))
	if err != nil {
		return fmt.Errorf("set comment request: %w", err)
	}

	return mapHTTPError(resp)
}

// DatasetConfig implements [Backend]. It GETs the dataset configuration of
// the given round, defaulting to the active one. No authentication needed.
func (b *backendTransport) DatasetConfig(ctx context.Context, round int64) (*models.DatasetConfig, error) {
	segment := latestRound
	if round > 0 {
		segment = strconv.FormatInt(round, 10)
	}

	var cfg models.DatasetConfig
	resp, err := b.api.R().
		SetContext(ctx).
		SetResult(&cfg).
		Get("/v2/rounds/" + segment + "/dataset-config")
	if err != nil {
		return nil, fmt.Errorf("dataset config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ListScores implements [Backend]. It GETs the metric records of a dataset,
// optionally restricted to resolved metrics.
func (b *backendTransport) ListScores(ctx context.Context, dataset string, resolvedOnly bool) ([]models.Score, error) {
	req := b.authedRequest(ctx)
	if resolvedOnly {
		req.SetQueryParam("resolved", "true")
	}

	resp, err := req.Get("/v2/datasets/" + url.PathEscape(dataset) + "/scores")
	if err != nil {
		return nil, fmt.Errorf("list scores request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var scores []models.Score
	if err = json.Unmarshal(resp.Body(), &scores); err != nil {
		return nil, fmt.Errorf("decode scores response: %w", err)
	}

	return scores, nil
}
