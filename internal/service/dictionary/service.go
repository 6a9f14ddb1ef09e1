package dictionary

import (
	"context"

	"go.uber.org/zap"

	"github.com/heartmarshall/dictionary-api/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

// wordRepo is the document-store capability the service needs.
// Update and Delete affect at most one document and return domain.ErrNotFound
// when nothing was modified or removed.
type wordRepo interface {
	List(ctx context.Context) ([]domain.Word, error)
	Insert(ctx context.Context, word domain.Word) error
	Update(ctx context.Context, id string, word domain.Word) error
	Delete(ctx context.Context, id string) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the dictionary word operations. It holds no state
// between calls; the store owns every persisted word.
type Service struct {
	log   *zap.Logger
	words wordRepo
}

// NewService creates a new Dictionary service.
func NewService(logger *zap.Logger, words wordRepo) *Service {
	return &Service{
		log:   logger.Named("dictionary"),
		words: words,
	}
}
