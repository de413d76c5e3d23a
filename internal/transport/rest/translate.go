package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/daumdict/internal/domain"
)

// maxRequestBody bounds the translate request body.
const maxRequestBody = 1 << 16

type wordLookup interface {
	Lookup(ctx context.Context, word string) domain.LookupResult
}

// TranslateHandler serves the word lookup endpoint.
type TranslateHandler struct {
	lookup wordLookup
	log    *slog.Logger
}

// NewTranslateHandler creates a TranslateHandler.
func NewTranslateHandler(lookup wordLookup, logger *slog.Logger) *TranslateHandler {
	return &TranslateHandler{lookup: lookup, log: logger.With("handler", "translate")}
}

type translateRequest struct {
	Word *string `json:"word"`
}

// Translate handles POST /api/translate.
//
//	{"word": "救助"} -> 200 LookupResult
//
// A missing or blank word is rejected with 400 before any outbound request;
// a failed lookup is returned with 404 and the same result shape.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	word, err := decodeWord(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) && ve.Errors[0].Message == domain.MsgWordBlank {
			writeJSON(w, http.StatusBadRequest, errorResponse{Word: &word, Error: domain.MsgWordBlank})
			return
		}
		writeError(w, http.StatusBadRequest, domain.MsgWordMissing)
		return
	}

	result := h.lookup.Lookup(r.Context(), word)
	if !result.Succeeded {
		h.log.InfoContext(r.Context(), "lookup failed",
			slog.String("word", word),
			slog.String("error", errString(result.Err)),
		)
		writeJSON(w, http.StatusNotFound, result)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// decodeWord reads the request body and returns the normalized word.
// Errors are *domain.ValidationError with the user-facing message.
func decodeWord(body io.Reader) (string, error) {
	var req translateRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil || req.Word == nil {
		return "", domain.NewValidationError("word", domain.MsgWordMissing)
	}

	word := domain.NormalizeWord(*req.Word)
	if word == "" {
		return "", domain.NewValidationError("word", domain.MsgWordBlank)
	}
	return word, nil
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
