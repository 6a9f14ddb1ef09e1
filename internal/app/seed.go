package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/heartmarshall/dictionary-api/internal/domain"
	"github.com/heartmarshall/dictionary-api/internal/service/dictionary"
)

type wordCreator interface {
	CreateWord(ctx context.Context, input dictionary.CreateWordInput) (*domain.Word, error)
}

// seedWord is one element of the seed file.
type seedWord struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PartOfTheLang string `json:"partOfTheLang"`
	Gender        string `json:"gender"`
	Plural        string `json:"plural"`
	Topic         string `json:"topic"`
}

// SeedResult counts the outcome of a Seed run.
type SeedResult struct {
	Saved    int
	Rejected int
}

// Seed decodes a JSON array of words from r and creates each one through svc.
// Words failing input validation are counted as rejected and skipped. Any
// other error, including a constraint the store itself rejects, stops the run.
func Seed(ctx context.Context, svc wordCreator, r io.Reader, logger *zap.Logger) (SeedResult, error) {
	var words []seedWord
	if err := json.NewDecoder(r).Decode(&words); err != nil {
		return SeedResult{}, fmt.Errorf("decode seed file: %w", err)
	}

	var res SeedResult
	for i, w := range words {
		_, err := svc.CreateWord(ctx, dictionary.CreateWordInput(w))
		var ve *domain.ValidationError
		switch {
		case err == nil:
			res.Saved++
		case errors.As(err, &ve):
			res.Rejected++
			logger.Warn("word rejected",
				zap.Int("index", i),
				zap.String("word_id", w.ID),
				zap.Error(err),
			)
		default:
			return res, fmt.Errorf("word %d: %w", i, err)
		}
	}
	return res, nil
}
