package daum

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"github.com/heartmarshall/daumdict/internal/config"
	"github.com/heartmarshall/daumdict/internal/domain"
)

const (
	searchPath = "/search.do"
	detailPath = "/word/view.do"

	// chineseDict selects the Chinese-Korean dictionary on the search page.
	chineseDict = "ch"
)

// Provider looks up Chinese words on the Daum dictionary site. It resolves
// the word to an identifier pair via the search page, then scrapes the
// detail page for pinyin and Korean meanings.
//
// Provider holds no per-lookup state and is safe for concurrent use.
type Provider struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from dictionary settings. BaseURL may point
// at a test server.
func NewProvider(cfg config.DictionaryConfig, logger *slog.Logger) *Provider {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}
	return &Provider{
		baseURL:    cfg.BaseURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "daum"),
	}
}

// SearchURL returns the search-page URL for word.
func (p *Provider) SearchURL(word string) string {
	q := url.Values{}
	q.Set("q", word)
	q.Set("dic", chineseDict)
	return p.baseURL + searchPath + "?" + q.Encode()
}

// DetailURL returns the detail-page URL for a resolved identifier pair.
// The original word is carried along as the q parameter.
func (p *Provider) DetailURL(ids domain.IdentifierPair, word string) string {
	q := url.Values{}
	q.Set("wordid", ids.PrimaryID)
	q.Set("q", word)
	q.Set("supid", ids.SecondaryID)
	return p.baseURL + detailPath + "?" + q.Encode()
}

// ResolveIdentifiers fetches the search page for word and extracts the
// identifier pair from its analytics metadata.
// Every failure, including transport errors, is reported as an error
// wrapping domain.ErrNotFound.
func (p *Provider) ResolveIdentifiers(ctx context.Context, word string) (domain.IdentifierPair, error) {
	searchURL := p.SearchURL(word)

	p.log.DebugContext(ctx, "daum search request", slog.String("word", word))

	doc, err := p.fetchDocument(ctx, searchURL)
	if err != nil {
		p.log.WarnContext(ctx, "daum search failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return domain.IdentifierPair{}, fmt.Errorf("daum: search %q: %w: %w", word, domain.ErrNotFound, err)
	}

	ids, err := parseIdentifiers(doc)
	if err != nil {
		p.log.DebugContext(ctx, "daum identifiers not found",
			slog.String("word", word),
			slog.String("reason", err.Error()),
		)
		return domain.IdentifierPair{}, fmt.Errorf("daum: resolve %q: %w", word, err)
	}

	return ids, nil
}

// Lookup resolves word to its pinyin and Korean meanings. It never returns
// an error; failures are reported through LookupResult.Succeeded and
// LookupResult.Error.
func (p *Provider) Lookup(ctx context.Context, word string) domain.LookupResult {
	ids, err := p.ResolveIdentifiers(ctx, word)
	if err != nil {
		return domain.NewNotFoundResult(word, err)
	}

	detailURL := p.DetailURL(ids, word)

	doc, err := p.fetchDocument(ctx, detailURL)
	if err != nil {
		p.log.ErrorContext(ctx, "daum detail request failed",
			slog.String("word", word),
			slog.String("url", detailURL),
			slog.String("error", err.Error()),
		)
		return domain.NewDetailFailedResult(word, err)
	}

	result := domain.LookupResult{
		Word:      word,
		Pinyin:    parsePinyin(doc),
		Meanings:  parseMeanings(doc),
		SourceURL: detailURL,
		Succeeded: true,
	}

	p.log.DebugContext(ctx, "daum lookup complete",
		slog.String("word", word),
		slog.String("pinyin", result.Pinyin),
		slog.Int("meanings", len(result.Meanings)),
	)

	return result
}

// errUnexpectedStatus marks a non-2xx response from the dictionary site.
var errUnexpectedStatus = errors.New("unexpected status")

// fetchDocument GETs rawURL with the browser User-Agent and parses the body
// as HTML.
func (p *Provider) fetchDocument(ctx context.Context, rawURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w %d", errUnexpectedStatus, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}
