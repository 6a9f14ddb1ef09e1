// Package word implements the word repository on a MongoDB collection.
// Documents are stored flat with the client-supplied id in the "id" field;
// the driver-assigned _id is never exposed.
package word

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/heartmarshall/dictionary-api/internal/adapter/mongodb"
	"github.com/heartmarshall/dictionary-api/internal/domain"
)

// document is the persisted shape of a word.
type document struct {
	ID            string `bson:"id"`
	Name          string `bson:"name"`
	PartOfTheLang string `bson:"partOfTheLang"`
	Gender        string `bson:"gender"`
	Plural        string `bson:"plural"`
	Topic         string `bson:"topic"`
}

// Repo provides word persistence backed by a MongoDB collection.
type Repo struct {
	coll *mongo.Collection
}

// New creates a new word repository over coll.
func New(coll *mongo.Collection) *Repo {
	return &Repo{coll: coll}
}

// List returns every document in natural (store-defined) order.
func (r *Repo) List(ctx context.Context) ([]domain.Word, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find words: %w", err)
	}

	var docs []document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode words: %w", err)
	}

	words := make([]domain.Word, len(docs))
	for i, d := range docs {
		words[i] = toDomain(d)
	}
	return words, nil
}

// Insert stores the word as a new document. No uniqueness check is made on id.
func (r *Repo) Insert(ctx context.Context, word domain.Word) error {
	if _, err := r.coll.InsertOne(ctx, fromDomain(word)); err != nil {
		return mongodb.MapError(err, "word", word.ID)
	}
	return nil
}

// Update sets every field but id on the first document whose id matches.
// Returns domain.ErrNotFound when the server reports nothing modified, which
// includes a match whose values are already identical.
func (r *Repo) Update(ctx context.Context, id string, word domain.Word) error {
	set := bson.D{
		{Key: "name", Value: word.Name},
		{Key: "partOfTheLang", Value: word.PartOfTheLang},
		{Key: "gender", Value: word.Gender},
		{Key: "plural", Value: word.Plural},
		{Key: "topic", Value: word.Topic},
	}

	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "id", Value: id}}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return mongodb.MapError(err, "word", id)
	}
	if res.ModifiedCount == 0 {
		return fmt.Errorf("word %s: matched %d, modified 0: %w", id, res.MatchedCount, domain.ErrNotFound)
	}
	return nil
}

// Delete removes the first document whose id matches.
func (r *Repo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "id", Value: id}})
	if err != nil {
		return mongodb.MapError(err, "word", id)
	}
	if res.DeletedCount == 0 {
		return mongodb.MapError(mongo.ErrNoDocuments, "word", id)
	}
	return nil
}

func toDomain(d document) domain.Word {
	return domain.Word{
		ID:            d.ID,
		Name:          d.Name,
		PartOfTheLang: d.PartOfTheLang,
		Gender:        d.Gender,
		Plural:        d.Plural,
		Topic:         d.Topic,
	}
}

func fromDomain(w domain.Word) document {
	return document{
		ID:            w.ID,
		Name:          w.Name,
		PartOfTheLang: w.PartOfTheLang,
		Gender:        w.Gender,
		Plural:        w.Plural,
		Topic:         w.Topic,
	}
}
