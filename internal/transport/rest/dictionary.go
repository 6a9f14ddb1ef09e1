package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/heartmarshall/dictionary-api/internal/domain"
	"github.com/heartmarshall/dictionary-api/internal/service/dictionary"
)

// maxBodyBytes bounds a single word payload.
const maxBodyBytes = 100 << 10

// Caller-facing messages.
const (
	msgSaved   = "New word was saved"
	msgEdited  = "Word was edited"
	msgDeleted = "Word was deleted"

	msgListFailed   = "Could not retrieve the words"
	msgSaveFailed   = "Could not save the word"
	msgEditFailed   = "Could not edit the word"
	msgDeleteFailed = "Could not delete the word"
)

// dictionaryService defines the minimal interface needed by DictionaryHandler.
type dictionaryService interface {
	ListWords(ctx context.Context) ([]domain.Word, error)
	CreateWord(ctx context.Context, input dictionary.CreateWordInput) (*domain.Word, error)
	UpdateWord(ctx context.Context, input dictionary.UpdateWordInput) (*domain.Word, error)
	DeleteWord(ctx context.Context, input dictionary.DeleteWordInput) error
}

// DictionaryHandler serves the /dictionary endpoints.
type DictionaryHandler struct {
	svc  dictionaryService
	resp *Responder
}

// NewDictionaryHandler creates a DictionaryHandler.
func NewDictionaryHandler(svc dictionaryService, resp *Responder) *DictionaryHandler {
	return &DictionaryHandler{svc: svc, resp: resp}
}

// wordRequest is the body of create and update. Missing fields decode as
// empty strings and are reported by validation.
type wordRequest struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PartOfTheLang string `json:"partOfTheLang"`
	Gender        string `json:"gender"`
	Plural        string `json:"plural"`
	Topic         string `json:"topic"`
}

type wordResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PartOfTheLang string `json:"partOfTheLang"`
	Gender        string `json:"gender"`
	Plural        string `json:"plural"`
	Topic         string `json:"topic"`
}

type listResponse struct {
	Success bool           `json:"success"`
	Data    []wordResponse `json:"data"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// List handles GET /dictionary.
func (h *DictionaryHandler) List(w http.ResponseWriter, r *http.Request) {
	words, err := h.svc.ListWords(r.Context())
	if err != nil {
		h.resp.Error(w, r, err, msgListFailed)
		return
	}

	data := make([]wordResponse, len(words))
	for i, word := range words {
		data[i] = wordResponse(word)
	}
	writeJSON(w, http.StatusOK, listResponse{Success: true, Data: data})
}

// Create handles POST /dictionary.
func (h *DictionaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	_, err := h.svc.CreateWord(r.Context(), dictionary.CreateWordInput{
		ID:            req.ID,
		Name:          req.Name,
		PartOfTheLang: req.PartOfTheLang,
		Gender:        req.Gender,
		Plural:        req.Plural,
		Topic:         req.Topic,
	})
	if err != nil {
		h.resp.Error(w, r, err, msgSaveFailed)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Success: true, Message: msgSaved})
}

// Update handles PUT /dictionary/{id}. The body id is ignored.
func (h *DictionaryHandler) Update(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	_, err := h.svc.UpdateWord(r.Context(), dictionary.UpdateWordInput{
		ID:            r.PathValue("id"),
		Name:          req.Name,
		PartOfTheLang: req.PartOfTheLang,
		Gender:        req.Gender,
		Plural:        req.Plural,
		Topic:         req.Topic,
	})
	if err != nil {
		h.resp.Error(w, r, err, msgEditFailed)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Success: true, Message: msgEdited})
}

// Delete handles DELETE /dictionary/{id}.
func (h *DictionaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.svc.DeleteWord(r.Context(), dictionary.DeleteWordInput{ID: r.PathValue("id")})
	if err != nil {
		h.resp.Error(w, r, err, msgDeleteFailed)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Success: true, Message: msgDeleted})
}

// decode reads a wordRequest. An empty body is treated as an empty object
// so that validation reports every missing field. A field holding a
// non-string JSON value is reported in the validation envelope.
func (h *DictionaryHandler) decode(w http.ResponseWriter, r *http.Request) (wordRequest, bool) {
	var req wordRequest

	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req)
	var (
		tooLarge  *http.MaxBytesError
		wrongType *json.UnmarshalTypeError
	)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return req, true
	case errors.As(err, &wrongType) && wrongType.Field != "":
		h.resp.Error(w, r, domain.NewValidationErrors([]domain.FieldError{{
			Field:   wrongType.Field,
			Message: "must be a string",
			Value:   wrongType.Value,
		}}), "")
	case errors.As(err, &tooLarge):
		h.resp.fail(w, http.StatusRequestEntityTooLarge, "Request body too large")
	default:
		h.resp.BadRequest(w, "Invalid request body")
	}
	return req, false
}
