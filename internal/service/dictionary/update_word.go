package dictionary

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/heartmarshall/dictionary-api/internal/domain"
)

// UpdateWord replaces every field except id on the word matching input.ID.
// Returns domain.ErrNotFound when the store modified nothing.
func (s *Service) UpdateWord(ctx context.Context, input UpdateWordInput) (*domain.Word, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	word := input.toWord()
	if err := s.words.Update(ctx, word.ID, word); err != nil {
		return nil, fmt.Errorf("update word: %w", err)
	}

	s.log.Debug("word updated", zap.String("word_id", word.ID))

	return &word, nil
}
