package domain

// Word is a dictionary term with its grammatical metadata.
// ID is supplied by the client (UUID string form) and is not assigned by the store.
type Word struct {
	ID            string
	Name          string
	PartOfTheLang string
	Gender        string
	Plural        string
	Topic         string
}
