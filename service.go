package rfc2org

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Preamble is the org options header emitted ahead of a converted
// document. The \n sequences are literal option tokens, not line breaks.
const Preamble = `# Do: title, toc:table-of-contents ::fixed-width-sections |tables
# Do: ^:sup/sub with curly -:special-strings *:emphasis
# Don't: prop:no-prop-drawers \n:preserve-linebreaks ':use-smart-quotes
#+OPTIONS: prop:nil title:t toc:t \n:nil ::t |:t ^:{} -:t *:t ':nil`

// Service converts xml2rfc documents to org outline markup.
type Service struct {
	cfg serviceConfig
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithWidth).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			width: DefaultWidth,
			log:   zap.NewNop(),
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Convert parses the document and renders its org form without the
// Preamble header. The context is checked between pipeline stages; the
// tree walk itself runs to completion.
func (s *Service) Convert(ctx context.Context, input Input) (string, error) {
	if err := s.validateInput(input); err != nil {
		return "", err
	}

	root, err := parseDocument(input.Document)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	refs := collectSectionRefs(root)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	conv := newConverter(s.cfg.width, s.cfg.log, refs)
	out, err := conv.convertDocument(root)
	if err != nil {
		return "", fmt.Errorf("converting document: %w", err)
	}
	return out, nil
}

// validateInput checks that required fields are present.
func (s *Service) validateInput(input Input) error {
	if input.Document == "" {
		return ErrEmptyDocument
	}
	return nil
}
