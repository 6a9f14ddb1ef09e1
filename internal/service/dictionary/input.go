package dictionary

import (
	"github.com/heartmarshall/dictionary-api/internal/domain"
	"github.com/heartmarshall/dictionary-api/internal/validation"
)

const (
	nameMinLen = 2
	nameMaxLen = 60
)

// wordSchema lists the rules for a full word. The id rule comes first so
// that idSchema can share it; create and update evaluate the same rules.
var wordSchema = validation.Schema{
	{Field: "id", Required: true, UUID: true},
	{Field: "name", Required: true, MinLen: nameMinLen, MaxLen: nameMaxLen, Pattern: validation.LettersAndSpaces, Sanitize: true},
	{Field: "partOfTheLang", Required: true, Pattern: validation.LettersAndSpaces, Sanitize: true},
	{Field: "gender", Required: true, Pattern: validation.LettersAndSpaces, Sanitize: true},
	{Field: "plural", Required: true, Pattern: validation.LettersAndSpaces, Sanitize: true},
	{Field: "topic", Required: true, Pattern: validation.LettersAndSpaces, Sanitize: true},
}

var idSchema = wordSchema[:1]

func wordValues(id, name, partOfTheLang, gender, plural, topic *string) map[string]*string {
	return map[string]*string{
		"id":            id,
		"name":          name,
		"partOfTheLang": partOfTheLang,
		"gender":        gender,
		"plural":        plural,
		"topic":         topic,
	}
}

// CreateWordInput holds the parameters for creating a word.
type CreateWordInput struct {
	ID            string
	Name          string
	PartOfTheLang string
	Gender        string
	Plural        string
	Topic         string
}

// Validate sanitises the text fields in place and collects all errors.
func (i *CreateWordInput) Validate() error {
	return wordSchema.Validate(wordValues(&i.ID, &i.Name, &i.PartOfTheLang, &i.Gender, &i.Plural, &i.Topic))
}

func (i *CreateWordInput) toWord() domain.Word {
	return domain.Word{
		ID:            i.ID,
		Name:          i.Name,
		PartOfTheLang: i.PartOfTheLang,
		Gender:        i.Gender,
		Plural:        i.Plural,
		Topic:         i.Topic,
	}
}

// UpdateWordInput holds the parameters for replacing a word's fields.
// ID comes from the request path; any id in the body is ignored.
type UpdateWordInput struct {
	ID            string
	Name          string
	PartOfTheLang string
	Gender        string
	Plural        string
	Topic         string
}

// Validate sanitises the text fields in place and collects all errors.
func (i *UpdateWordInput) Validate() error {
	return wordSchema.Validate(wordValues(&i.ID, &i.Name, &i.PartOfTheLang, &i.Gender, &i.Plural, &i.Topic))
}

func (i *UpdateWordInput) toWord() domain.Word {
	return domain.Word{
		ID:            i.ID,
		Name:          i.Name,
		PartOfTheLang: i.PartOfTheLang,
		Gender:        i.Gender,
		Plural:        i.Plural,
		Topic:         i.Topic,
	}
}

// DeleteWordInput holds the parameters for deleting a word.
type DeleteWordInput struct {
	ID string
}

// Validate checks the path id.
func (i *DeleteWordInput) Validate() error {
	return idSchema.Validate(map[string]*string{"id": &i.ID})
}
