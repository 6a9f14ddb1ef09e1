package dictionary

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// DeleteWord removes the word matching input.ID.
// Returns domain.ErrNotFound when nothing was deleted.
func (s *Service) DeleteWord(ctx context.Context, input DeleteWordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.words.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}

	s.log.Debug("word deleted", zap.String("word_id", input.ID))

	return nil
}
