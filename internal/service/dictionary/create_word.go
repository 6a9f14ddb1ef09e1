package dictionary

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/heartmarshall/dictionary-api/internal/domain"
)

// CreateWord validates the input and stores it as a new document, including
// the client-supplied id. Duplicate ids are not checked here.
func (s *Service) CreateWord(ctx context.Context, input CreateWordInput) (*domain.Word, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	word := input.toWord()
	if err := s.words.Insert(ctx, word); err != nil {
		return nil, fmt.Errorf("insert word: %w", err)
	}

	s.log.Debug("word created", zap.String("word_id", word.ID))

	return &word, nil
}
