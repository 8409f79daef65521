package rfc2org

import "go.uber.org/zap"

// Input contains conversion parameters.
type Input struct {
	Document string // xml2rfc XML source (required)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	width int
	log   *zap.Logger
}

// DefaultWidth is the column limit used when reflowing paragraph text.
const DefaultWidth = 69

// WithWidth sets the reflow column limit.
// Panics if w <= 0 (programmer error, similar to time.NewTicker).
func WithWidth(w int) Option {
	if w <= 0 {
		panic("rfc2org: WithWidth must be positive")
	}
	return func(s *Service) {
		s.cfg.width = w
	}
}

// WithLogger sets the logger used for conversion traces.
// Panics if log is nil; use zap.NewNop() to silence output explicitly.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("rfc2org: WithLogger requires a non-nil logger")
	}
	return func(s *Service) {
		s.cfg.log = log
	}
}
