package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	lru "github.com/hashicorp/golang-lru/v2"

	"prospect-engine/internal/domain"
)

// reEmail matches the first plausible address in arbitrary text: loose local
// part, dotted domain labels, final label at least two letters. Best-effort
// discovery, not deliverability validation.
var reEmail = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// TextSearcher is the secondary-query capability the resolver depends on.
type TextSearcher interface {
	TextSearch(ctx context.Context, query string) ([]byte, error)
}

type Options struct {
	CacheSize      int  // 0 disables the query cache
	DeepScan       bool // fetch organic-result pages when the payload has no match
	PageFetchLimit int  // pages fetched per deep scan
}

// Resolver discovers a contact email for a qualified candidate via one
// secondary search. Provider failures are reported as absence, never as a
// hard error; the caller treats an unresolved candidate as a rejection.
type Resolver struct {
	search TextSearcher
	hc     *http.Client
	cache  *lru.Cache[string, string]
	opts   Options
}

func NewResolver(search TextSearcher, opts Options) *Resolver {
	r := &Resolver{
		search: search,
		hc:     &http.Client{Timeout: 15 * time.Second},
		opts:   opts,
	}
	if opts.PageFetchLimit <= 0 {
		r.opts.PageFetchLimit = 2
	}
	if opts.CacheSize > 0 {
		// lru.New only fails on size <= 0
		r.cache, _ = lru.New[string, string](opts.CacheSize)
	}
	return r
}

// WithHTTPClient swaps the page-fetch transport, used by tests.
func (r *Resolver) WithHTTPClient(hc *http.Client) *Resolver {
	r.hc = hc
	return r
}

// Resolve issues the secondary query and scans the serialized payload for the
// first email-shaped substring. Misses are cached alongside hits so a repeat
// of the same business name does not spend quota again.
func (r *Resolver) Resolve(ctx context.Context, c domain.Candidate, pair domain.Pair) (string, bool) {
	query := fmt.Sprintf("%q %s email contact", c.Name, pair.Location)

	if r.cache != nil {
		if email, ok := r.cache.Get(query); ok {
			return email, email != ""
		}
	}

	email := r.lookup(ctx, query)
	if r.cache != nil {
		r.cache.Add(query, email)
	}
	return email, email != ""
}

func (r *Resolver) lookup(ctx context.Context, query string) string {
	payload, err := r.search.TextSearch(ctx, query)
	if err != nil {
		log.Printf("[enrich] secondary search failed query=%q err=%v", query, err)
		return ""
	}

	if m := reEmail.Find(payload); m != nil {
		return string(m)
	}
	if r.opts.DeepScan {
		return r.deepScan(ctx, payload)
	}
	return ""
}

type organicPayload struct {
	OrganicResults []struct {
		Link string `json:"link"`
	} `json:"organic_results"`
}

// deepScan fetches the first organic-result pages and looks for mailto
// anchors, then for text emails, in document order.
func (r *Resolver) deepScan(ctx context.Context, payload []byte) string {
	var parsed organicPayload
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return ""
	}

	fetched := 0
	for _, res := range parsed.OrganicResults {
		if fetched >= r.opts.PageFetchLimit {
			break
		}
		if res.Link == "" {
			continue
		}
		fetched++

		if email := r.scanPage(ctx, res.Link); email != "" {
			return email
		}
	}
	return ""
}

func (r *Resolver) scanPage(ctx context.Context, pageURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := r.hc.Do(req)
	if err != nil {
		log.Printf("[enrich] page fetch failed url=%s err=%v", pageURL, err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return ""
	}

	var found string
	doc.Find(`a[href^="mailto:"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		addr := strings.TrimPrefix(href, "mailto:")
		if i := strings.IndexByte(addr, '?'); i >= 0 {
			addr = addr[:i]
		}
		if reEmail.MatchString(addr) {
			found = reEmail.FindString(addr)
			return false
		}
		return true
	})
	if found != "" {
		return found
	}

	return reEmail.FindString(doc.Text())
}
