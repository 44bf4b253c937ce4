/*
Package translate provides on-demand machine translation of chat messages.

This file defines the Service struct, which fronts the Translator with a
per-message-id cache and a pending marker. A message that translated
successfully is never re-requested for the lifetime of the process; a failed
request clears its pending marker so the user can retry indefinitely.
*/
package translate

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"zazachat/internal/pkg/errs"
	"zazachat/internal/pkg/logx"
)

// Service caches translations per message id and serializes duplicate
// requests for the same message.
type Service struct {
	// translator is the external-service adapter.
	translator Translator

	// mu protects cache and pending.
	mu sync.Mutex

	// cache holds successful translations keyed by message id.
	cache map[string]string

	// pending marks message ids with a request currently in flight.
	pending map[string]struct{}

	// structured logger with service context.
	logger zerolog.Logger
}

// NewService constructs a Service around the given translator.
func NewService(translator Translator) *Service {
	return &Service{
		translator: translator,
		cache:      make(map[string]string),
		pending:    make(map[string]struct{}),
		logger:     logx.Logger().With().Str("component", "translate").Logger(),
	}
}

// Translate returns the translation of text into targetLanguage for the
// message identified by msgID. Cached results are returned immediately. A
// request already in flight for the same message is rejected with
// ErrTranslationPending; a service failure surfaces ErrTranslationFailed and
// leaves the message untranslated so the user can retry.
func (s *Service) Translate(ctx context.Context, msgID, text, targetLanguage string) (string, *errs.CustomError) {
	s.mu.Lock()
	if cached, ok := s.cache[msgID]; ok {
		s.mu.Unlock()
		return cached, nil
	}
	if _, ok := s.pending[msgID]; ok {
		s.mu.Unlock()
		return "", errs.NewError(errs.ErrTranslationPending)
	}
	s.pending[msgID] = struct{}{}
	s.mu.Unlock()

	translated, err := s.translator.Translate(ctx, text, targetLanguage)

	s.mu.Lock()
	defer s.mu.Unlock()

	// The pending marker clears on every exit path.
	delete(s.pending, msgID)

	if err != nil {
		s.logger.Warn().Err(err).Str("message_id", msgID).Msg("Translation request failed. Message stays untranslated.")
		return "", errs.NewError(errs.ErrTranslationFailed)
	}

	s.cache[msgID] = translated
	return translated, nil
}

// Cached returns the stored translation for msgID, if any.
func (s *Service) Cached(msgID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	translated, ok := s.cache[msgID]
	return translated, ok
}

// IsPending reports whether a request for msgID is currently in flight.
func (s *Service) IsPending(msgID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.pending[msgID]
	return ok
}
