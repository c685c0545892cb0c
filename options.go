package crunchdao

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/crunchdao/crunchdao-go/internal/config"
	"github.com/crunchdao/crunchdao-go/internal/logger"
)

// Option customises a [Client] at construction time.
type Option func(*settings)

type settings struct {
	overrides config.Config
	logger    *logger.Logger
}

func newSettings() *settings {
	return &settings{}
}

// WithAPIKey sets the tournament API key explicitly. It takes precedence
// over the CRUNCHDAO_API_KEY environment variable.
func WithAPIKey(apiKey string) Option {
	return func(s *settings) {
		s.overrides.APIKey = apiKey
	}
}

// WithBaseURL overrides the REST API endpoint. Intended for tests and
// staging environments.
func WithBaseURL(baseURL string) Option {
	return func(s *settings) {
		s.overrides.APIBaseURL = baseURL
	}
}

// WithDataBaseURL overrides the host dataset files are downloaded from.
// Intended for tests and staging environments.
func WithDataBaseURL(dataBaseURL string) Option {
	return func(s *settings) {
		s.overrides.DataBaseURL = dataBaseURL
	}
}

// WithRequestTimeout bounds each API request. Dataset downloads are exempt
// and are cancelled through their context instead.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.overrides.RequestTimeout = timeout
	}
}

// WithProgress enables terminal progress bars during dataset downloads.
func WithProgress() Option {
	return func(s *settings) {
		s.overrides.ShowProgress = true
	}
}

// WithLogger routes the client's log events through the given zerolog
// logger. By default the client logs warnings and errors to stderr.
func WithLogger(l zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger.From(l)
	}
}
