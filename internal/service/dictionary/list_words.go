package dictionary

import (
	"context"
	"fmt"

	"github.com/heartmarshall/dictionary-api/internal/domain"
)

// ListWords returns every stored word in store order.
// An empty collection yields an empty, non-nil slice.
func (s *Service) ListWords(ctx context.Context) ([]domain.Word, error) {
	words, err := s.words.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	if words == nil {
		words = []domain.Word{}
	}
	return words, nil
}
