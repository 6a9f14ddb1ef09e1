// Package memory implements the word store in process memory.
// Documents keep insertion order and are lost on restart. Safe for concurrent use.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/heartmarshall/dictionary-api/internal/domain"
)

// WordRepo is an in-memory collection of words.
type WordRepo struct {
	mu    sync.RWMutex
	words []domain.Word
}

// NewWordRepo creates an empty in-memory word collection.
func NewWordRepo() *WordRepo {
	return &WordRepo{}
}

// List returns a copy of every stored word in insertion order.
func (r *WordRepo) List(_ context.Context) ([]domain.Word, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.words), nil
}

// Insert appends the word. Duplicate ids are accepted.
func (r *WordRepo) Insert(_ context.Context, word domain.Word) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.words = append(r.words, word)
	return nil
}

// Update replaces every field but the id of the first word with the given id.
// A match whose fields are already equal counts as not modified.
func (r *WordRepo) Update(_ context.Context, id string, word domain.Word) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("word %s: %w", id, domain.ErrNotFound)
	}

	word.ID = id
	if r.words[i] == word {
		return fmt.Errorf("word %s: not modified: %w", id, domain.ErrNotFound)
	}
	r.words[i] = word
	return nil
}

// Delete removes the first word with the given id.
func (r *WordRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("word %s: %w", id, domain.ErrNotFound)
	}
	r.words = slices.Delete(r.words, i, i+1)
	return nil
}

// Ping always succeeds.
func (r *WordRepo) Ping(_ context.Context) error { return nil }

func (r *WordRepo) indexOf(id string) int {
	return slices.IndexFunc(r.words, func(w domain.Word) bool { return w.ID == id })
}
