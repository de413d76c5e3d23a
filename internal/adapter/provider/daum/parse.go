package daum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"

	"github.com/heartmarshall/daumdict/internal/domain"
)

// Markup conventions of the dictionary site. A change to any of these
// silently turns every lookup into a not-found or an empty result.
const (
	metaPropertiesSelector = `meta[name="tiara:custom-properties-0"]`
	exactIDField           = "exact_id"
	idSeparator            = "_"

	pronounceSelector   = ".txt_pronounce"
	meaningSelector     = ".txt_mean"
	meaningListSelector = ".list_mean li"
)

var (
	errNoMetaTag     = errors.New("metadata tag absent")
	errNoMetaContent = errors.New("metadata content attribute absent")
	errNoExactID     = errors.New("exact_id field absent")
	errBadExactID    = errors.New("exact_id is not two underscore-joined ids")
)

// parseIdentifiers reads the identifier pair from the search page. The
// metadata content looks like {"exact_id":"ckw000061774_cku000062663"}.
// The value is split on the first underscore and both halves must be
// non-empty.
func parseIdentifiers(doc *goquery.Document) (domain.IdentifierPair, error) {
	meta := doc.Find(metaPropertiesSelector).First()
	if meta.Length() == 0 {
		return domain.IdentifierPair{}, fmt.Errorf("%w: %w", domain.ErrNotFound, errNoMetaTag)
	}

	content, ok := meta.Attr("content")
	if !ok {
		return domain.IdentifierPair{}, fmt.Errorf("%w: %w", domain.ErrNotFound, errNoMetaContent)
	}

	field := gjson.Get(strings.TrimSpace(content), exactIDField)
	if !field.Exists() || field.Type != gjson.String {
		return domain.IdentifierPair{}, fmt.Errorf("%w: %w", domain.ErrNotFound, errNoExactID)
	}

	primary, secondary, found := strings.Cut(field.Str, idSeparator)
	if !found || primary == "" || secondary == "" {
		return domain.IdentifierPair{}, fmt.Errorf("%w: %w: %q", domain.ErrNotFound, errBadExactID, field.Str)
	}

	return domain.IdentifierPair{PrimaryID: primary, SecondaryID: secondary}, nil
}

// parsePinyin returns the first pronunciation on the detail page with one
// enclosing bracket pair removed, or "" when there is none.
func parsePinyin(doc *goquery.Document) string {
	sel := doc.Find(pronounceSelector).First()
	if sel.Length() == 0 {
		return ""
	}
	return stripBrackets(strings.TrimSpace(sel.Text()))
}

// stripBrackets removes one leading "[" and one trailing "]" when both are
// present.
func stripBrackets(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return s[1 : len(s)-1]
	}
	return s
}

// parseMeanings collects the Korean meanings on the detail page. The list
// items are only consulted when the primary selector yields nothing.
func parseMeanings(doc *goquery.Document) []string {
	meanings := collectTexts(doc.Find(meaningSelector))
	if len(meanings) == 0 {
		meanings = collectTexts(doc.Find(meaningListSelector))
	}
	return meanings
}

// collectTexts returns the trimmed, non-empty texts of sel, deduplicated in
// first-seen order. The result is never nil.
func collectTexts(sel *goquery.Selection) []string {
	texts := []string{}
	seen := make(map[string]struct{}, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		if _, dup := seen[text]; dup {
			return
		}
		seen[text] = struct{}{}
		texts = append(texts, text)
	})
	return texts
}
