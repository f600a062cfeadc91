// Package report renders a text analytics report over the stored records:
// scrape totals, content statistics, domain breakdown, top keywords and a
// detected content-language distribution. It is a read-only consumer of the
// store and tolerates an empty database.
package report

import (
	"fmt"
	"io"
	"net/url"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pemistahl/lingua-go"

	"github.com/dtnitsch/web-scraper/models"
	"github.com/dtnitsch/web-scraper/pkg/analytics"
	"github.com/dtnitsch/web-scraper/pkg/db"
)

const (
	topKeywordCount = 25
	topDomainCount  = 10

	// Texts shorter than this are too ambiguous for language detection.
	minDetectableLength = 20
)

type Builder struct {
	db       *db.DB
	detector lingua.LanguageDetector
}

// New creates a report builder over an open database. The language detector
// is restricted to a small candidate set; detection models load lazily on
// first use.
func New(database *db.DB) *Builder {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English,
			lingua.Spanish,
			lingua.French,
			lingua.German,
			lingua.Portuguese,
			lingua.Japanese,
		).
		Build()

	return &Builder{db: database, detector: detector}
}

// Render writes the full report to w.
func (b *Builder) Render(w io.Writer) error {
	records, err := b.db.ListRecords()
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}
	agg, err := b.db.Aggregate()
	if err != nil {
		return fmt.Errorf("failed to aggregate records: %w", err)
	}
	sessions, err := b.db.ListStats()
	if err != nil {
		return fmt.Errorf("failed to load session stats: %w", err)
	}

	fmt.Fprintln(w, "WEB SCRAPER ANALYTICS REPORT")
	fmt.Fprintln(w)

	b.renderGeneral(w, agg)
	b.renderContent(w, records)
	b.renderDomains(w, records)
	b.renderKeywords(w, records)
	b.renderLanguages(w, records)
	b.renderLatestSession(w, sessions)

	return nil
}

func (b *Builder) renderGeneral(w io.Writer, agg *db.Aggregate) {
	fmt.Fprintln(w, "General statistics")
	fmt.Fprintf(w, "  Total pages scraped:  %d\n", agg.TotalPages)
	fmt.Fprintf(w, "  Successful:           %d\n", agg.Successful)
	fmt.Fprintf(w, "  Failed:               %d\n", agg.Failed)
	fmt.Fprintf(w, "  Success rate:         %.2f%%\n", agg.SuccessRate)
	fmt.Fprintln(w)
}

func (b *Builder) renderContent(w io.Writer, records []db.StoredRecord) {
	var shortest, longest, total, count int
	for _, rec := range records {
		if rec.Status != models.StatusSuccess {
			continue
		}
		n := len(rec.Content)
		if count == 0 || n < shortest {
			shortest = n
		}
		if n > longest {
			longest = n
		}
		total += n
		count++
	}

	fmt.Fprintln(w, "Content statistics (successful pages)")
	if count == 0 {
		fmt.Fprintln(w, "  No successful pages yet")
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintf(w, "  Avg content length:   %.0f characters\n", float64(total)/float64(count))
	fmt.Fprintf(w, "  Max content length:   %d characters\n", longest)
	fmt.Fprintf(w, "  Min content length:   %d characters\n", shortest)
	fmt.Fprintln(w)
}

func (b *Builder) renderDomains(w io.Writer, records []db.StoredRecord) {
	counts := make(map[string]int)
	for _, rec := range records {
		parsed, err := url.Parse(rec.URL)
		if err != nil {
			continue
		}
		counts[parsed.Host]++
	}

	fmt.Fprintf(w, "Domain statistics (%d unique)\n", len(counts))
	if len(counts) == 0 {
		fmt.Fprintln(w)
		return
	}

	type domainCount struct {
		domain string
		pages  int
	}
	domains := make([]domainCount, 0, len(counts))
	for d, n := range counts {
		domains = append(domains, domainCount{domain: d, pages: n})
	}
	sort.Slice(domains, func(i, j int) bool {
		if domains[i].pages != domains[j].pages {
			return domains[i].pages > domains[j].pages
		}
		return domains[i].domain < domains[j].domain
	})
	if len(domains) > topDomainCount {
		domains = domains[:topDomainCount]
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Domain", "Pages"})
	for _, d := range domains {
		tw.AppendRow(table.Row{d.domain, d.pages})
	}
	fmt.Fprintln(w, tw.Render())
	fmt.Fprintln(w)
}

func (b *Builder) renderKeywords(w io.Writer, records []db.StoredRecord) {
	var perPage []map[string]int
	for _, rec := range records {
		if rec.Status == models.StatusSuccess && rec.Content != "" {
			perPage = append(perPage, analytics.WordFrequency(rec.Content))
		}
	}
	top := analytics.TopKeywords(analytics.Merge(perPage), topKeywordCount)

	fmt.Fprintln(w, "Top keywords")
	if len(top) == 0 {
		fmt.Fprintln(w, "  No content to analyze")
		fmt.Fprintln(w)
		return
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Keyword", "Count"})
	for _, kw := range top {
		tw.AppendRow(table.Row{kw.Word, kw.Count})
	}
	fmt.Fprintln(w, tw.Render())
	fmt.Fprintln(w)
}

func (b *Builder) renderLanguages(w io.Writer, records []db.StoredRecord) {
	counts := make(map[string]int)
	for _, rec := range records {
		if rec.Status != models.StatusSuccess || len(rec.Content) < minDetectableLength {
			continue
		}
		if language, ok := b.detector.DetectLanguageOf(rec.Content); ok {
			counts[language.String()]++
		}
	}

	fmt.Fprintln(w, "Content languages")
	if len(counts) == 0 {
		fmt.Fprintln(w, "  Not enough content to detect")
		fmt.Fprintln(w)
		return
	}

	languages := make([]string, 0, len(counts))
	for l := range counts {
		languages = append(languages, l)
	}
	sort.Slice(languages, func(i, j int) bool {
		if counts[languages[i]] != counts[languages[j]] {
			return counts[languages[i]] > counts[languages[j]]
		}
		return languages[i] < languages[j]
	})

	for _, l := range languages {
		fmt.Fprintf(w, "  %-12s %d\n", l, counts[l])
	}
	fmt.Fprintln(w)
}

func (b *Builder) renderLatestSession(w io.Writer, sessions []db.StoredStats) {
	fmt.Fprintln(w, "Latest session")
	if len(sessions) == 0 {
		fmt.Fprintln(w, "  No completed sessions")
		return
	}

	last := sessions[len(sessions)-1]
	fmt.Fprintf(w, "  Session %s: %d/%d successful in %.2fs\n",
		last.SessionID, last.Successful, last.TotalPages, last.Duration)
}
