// SPDX-License-Identifier: Apache-2.0

package crunchdao

import (
	"fmt"

	"github.com/crunchdao/crunchdao-go/internal/config"
	"github.com/crunchdao/crunchdao-go/internal/logger"
	"github.com/crunchdao/crunchdao-go/internal/transport"
)

// Client is the facade over the tournament API. All methods translate one
// public operation into one authenticated HTTP request; there is no state
// beyond the resolved configuration and the underlying HTTP session, so a
// Client is safe for concurrent use.
type Client struct {
	cfg     *config.Config
	backend transport.Backend
	logger  *logger.Logger
}

// New constructs a Client. The credential is resolved with the precedence
// [WithAPIKey] argument > CRUNCHDAO_API_KEY environment variable > absent.
// Construction succeeds without a credential so that anonymous operations
// ([Client.DatasetConfig], [Client.DownloadData], listing other users'
// submissions) remain usable; authenticated operations then fail with
// [ErrAuthentication] before issuing any request.
func New(opts ...Option) (*Client, error) {
	settings := newSettings()
	for _, opt := range opts {
		opt(settings)
	}

	cfg, err := config.GetConfig(&settings.overrides)
	if err != nil {
		return nil, fmt.Errorf("resolve configuration: %w", err)
	}

	log := settings.logger
	if log == nil {
		log = logger.NewLogger("crunchdao")
	}

	backend, err := transport.NewBackend(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("build transport: %w", err)
	}

	return &Client{cfg: cfg, backend: backend, logger: log}, nil
}

// requireCredential guards authenticated operations. It fails locally, so no
// network request is ever issued with a missing credential.
func (c *Client) requireCredential(operation string) error {
	if !c.cfg.HasCredential() {
		return fmt.Errorf("%s: %w (pass WithAPIKey or set CRUNCHDAO_API_KEY)", operation, ErrAuthentication)
	}
	return nil
}
