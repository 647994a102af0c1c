package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/xhad/banks/internal/models"
	"golang.org/x/time/rate"
)

type ScraperConfig struct {
	BaseURL    string
	SectionID  string // id of the heading anchor that precedes the table
	TableClass string // class marker of the data table
	UserAgent  string
	MaxRecords int
	RateLimit  float64 // requests per second
	Timeout    time.Duration
	OnProgress func(url string)
}

type Scraper struct {
	config  ScraperConfig
	client  *http.Client
	limiter *rate.Limiter
}

var (
	footnoteRe   = regexp.MustCompile(`\[.*?\]`)
	nonNumericRe = regexp.MustCompile(`[^0-9.]`)
)

func NewWithConfig(config ScraperConfig) (*Scraper, error) {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.SectionID == "" {
		config.SectionID = "By_market_capitalization"
	}
	if config.TableClass == "" {
		config.TableClass = "wikitable"
	}
	if config.UserAgent == "" {
		config.UserAgent = "Mozilla/5.0"
	}
	if config.MaxRecords == 0 {
		config.MaxRecords = 10
	}
	if config.RateLimit == 0 {
		config.RateLimit = 2 // 2 requests per second by default
	}

	if _, err := url.Parse(config.BaseURL); err != nil {
		return nil, err
	}

	return &Scraper{
		config: config,
		client: &http.Client{
			Timeout: config.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(config.RateLimit), 1),
	}, nil
}

func New(baseURL string) *Scraper {
	s, _ := NewWithConfig(ScraperConfig{
		BaseURL: baseURL,
	})
	return s
}

// Extract fetches the document and parses the market-capitalization
// table into at most MaxRecords bank records, in document order.
func (s *Scraper) Extract(urlStr string) ([]models.BankRecord, error) {
	if err := s.limiter.Wait(context.Background()); err != nil {
		return nil, err
	}

	if s.config.OnProgress != nil {
		s.config.OnProgress(urlStr)
	}

	req, err := http.NewRequest(http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &FetchError{URL: urlStr, Err: err}
	}
	req.Header.Set("User-Agent", s.config.UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: urlStr, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: urlStr, StatusCode: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	return s.ExtractFromDocument(doc)
}

// ExtractFromDocument runs the table extraction against an already
// parsed tree. Split out so the traversal can be exercised against
// synthetic documents without a live fetch.
func (s *Scraper) ExtractFromDocument(doc *goquery.Document) ([]models.BankRecord, error) {
	heading := doc.Find("span#" + s.config.SectionID).First()
	if heading.Length() == 0 {
		return nil, &StructureError{Missing: fmt.Sprintf("section anchor %q", s.config.SectionID)}
	}

	container := heading.Closest("h2")
	if container.Length() == 0 {
		return nil, &StructureError{Missing: fmt.Sprintf("heading container for %q", s.config.SectionID)}
	}

	// The market-cap table is the first data table after that heading
	table := container.NextAllFiltered("table." + s.config.TableClass).First()
	if table.Length() == 0 {
		return nil, &StructureError{Missing: fmt.Sprintf("table.%s after section %q", s.config.TableClass, s.config.SectionID)}
	}

	var records []models.BankRecord

	table.Find("tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		if i == 0 {
			return true // skip header row
		}

		cells := row.Find("td")
		if cells.Length() < 3 {
			return true // separator or header-only row
		}

		name := bankName(cells.Eq(1))
		if name == "" {
			return true
		}

		capText := footnoteRe.ReplaceAllString(cells.Eq(2).Text(), "")
		capText = nonNumericRe.ReplaceAllString(capText, "")
		if capText == "" {
			return true // no digits left, e.g. a citation-only cell
		}

		marketCap, err := strconv.ParseFloat(capText, 64)
		if err != nil {
			return true
		}

		records = append(records, models.BankRecord{
			Name:         name,
			MarketCapUSD: marketCap,
		})

		return len(records) < s.config.MaxRecords
	})

	if len(records) == 0 {
		return nil, &ValidationError{Reason: "no usable rows extracted, check table parsing"}
	}
	for _, r := range records {
		if strings.TrimSpace(r.Name) == "" {
			return nil, &ValidationError{Reason: "extracted a record with an empty bank name"}
		}
	}

	return records, nil
}

// bankName resolves the bank's name from its table cell. The document
// family places country/flag links before the bank's own link, so the
// last non-empty link text wins; cells without links fall back to the
// whitespace-normalized cell text.
func bankName(cell *goquery.Selection) string {
	var name string
	cell.Find("a").Each(func(_ int, link *goquery.Selection) {
		if text := strings.TrimSpace(link.Text()); text != "" {
			name = text
		}
	})

	if name == "" {
		name = strings.Join(strings.Fields(cell.Text()), " ")
	}

	return strings.TrimSpace(name)
}
