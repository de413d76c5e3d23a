package domain

import "fmt"

// User-facing messages. The API serves Korean-speaking learners, so these
// are returned verbatim in the "error" and "message" fields.
const (
	MsgWordNotFound  = "단어를 찾을 수 없습니다."
	MsgDetailFailed  = "번역 중 오류가 발생했습니다: %s"
	MsgWordMissing   = "단어가 제공되지 않았습니다."
	MsgWordBlank     = "빈 단어는 번역할 수 없습니다."
	MsgServerError   = "서버 오류가 발생했습니다."
	MsgServiceHealth = "중국어 번역 API가 정상 작동 중입니다."
)

// IdentifierPair addresses one word-sense entry on the dictionary site.
// It is mined from the search page and only used to build the detail URL.
type IdentifierPair struct {
	PrimaryID   string
	SecondaryID string
}

// LookupResult is the outcome of a single word lookup.
type LookupResult struct {
	Word      string   `json:"word"`
	Pinyin    string   `json:"pinyin"`
	Meanings  []string `json:"meanings"`
	SourceURL string   `json:"url,omitempty"`
	Succeeded bool     `json:"success"`
	Error     string   `json:"error,omitempty"`

	// Err is the underlying cause of a failed lookup. It wraps ErrNotFound
	// or ErrDetailFetch and is never serialized.
	Err error `json:"-"`
}

// NewNotFoundResult builds the failure result for a word whose identifiers
// could not be resolved.
func NewNotFoundResult(word string, cause error) LookupResult {
	return LookupResult{
		Word:     word,
		Meanings: []string{},
		Error:    MsgWordNotFound,
		Err:      cause,
	}
}

// NewDetailFailedResult builds the failure result for an error during the
// detail-page fetch or parse.
func NewDetailFailedResult(word string, cause error) LookupResult {
	return LookupResult{
		Word:     word,
		Meanings: []string{},
		Error:    fmt.Sprintf(MsgDetailFailed, cause.Error()),
		Err:      fmt.Errorf("%w: %w", ErrDetailFetch, cause),
	}
}
