// Package word implements the word repository using PostgreSQL.
// Rows are kept in insertion order (seq) so that "first match" and "store
// order" behave like a document collection.
package word

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/dictionary-api/internal/adapter/postgres"
	"github.com/heartmarshall/dictionary-api/internal/domain"
)

const table = "dictionary"

// firstMatch selects the lowest seq row for a given id.
const firstMatch = "seq = (SELECT seq FROM " + table + " WHERE id = ? ORDER BY seq LIMIT 1)"

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type row struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	PartOfTheLang string `db:"part_of_the_lang"`
	Gender        string `db:"gender"`
	Plural        string `db:"plural"`
	Topic         string `db:"topic"`
}

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new word repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// List returns all words ordered by insertion.
func (r *Repo) List(ctx context.Context) ([]domain.Word, error) {
	query, args, err := builder.
		Select("id", "name", "part_of_the_lang", "gender", "plural", "topic").
		From(table).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select words: %w", err)
	}

	words := make([]domain.Word, len(rows))
	for i, rw := range rows {
		words[i] = domain.Word(rw)
	}
	return words, nil
}

// Insert appends a new row. Duplicate ids are accepted.
func (r *Repo) Insert(ctx context.Context, word domain.Word) error {
	query, args, err := builder.
		Insert(table).
		Columns("id", "name", "part_of_the_lang", "gender", "plural", "topic").
		Values(word.ID, word.Name, word.PartOfTheLang, word.Gender, word.Plural, word.Topic).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "word", word.ID)
	}
	return nil
}

// Update overwrites every field but id on the first row matching id.
// A row whose values are already identical is not counted as modified, so
// the call reports domain.ErrNotFound in that case too.
func (r *Repo) Update(ctx context.Context, id string, word domain.Word) error {
	query, args, err := builder.
		Update(table).
		Set("name", word.Name).
		Set("part_of_the_lang", word.PartOfTheLang).
		Set("gender", word.Gender).
		Set("plural", word.Plural).
		Set("topic", word.Topic).
		Where(firstMatch, id).
		Where("(name, part_of_the_lang, gender, plural, topic) IS DISTINCT FROM (?::text, ?::text, ?::text, ?::text, ?::text)",
			word.Name, word.PartOfTheLang, word.Gender, word.Plural, word.Topic).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "word", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes the first row matching id.
func (r *Repo) Delete(ctx context.Context, id string) error {
	query, args, err := builder.
		Delete(table).
		Where(firstMatch, id).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "word", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
