package catalog

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"AuditScanner/internal/domain"
	"AuditScanner/internal/ports"
)

// Course titles render as "SUBJECT 300 — Course Name"; the guide uses an
// em-dash but older pages carry a plain hyphen.
var (
	titleExpr   = regexp.MustCompile(`^([A-Z0-9&/\- ]+?)\s+(\d{1,4}[A-Z]?)\s+[—–-]\s+(.+)$`)
	creditsExpr = regexp.MustCompile(`\d+(\.\d+)?`)
)

// GuideClient looks up courses on the university guide's subject pages.
type GuideClient struct {
	baseURL string
	client  *http.Client
}

var _ ports.CatalogSource = (*GuideClient)(nil)

// NewGuideClient wires an HTTP client; a nil client gets a 20s timeout default.
func NewGuideClient(baseURL string, client *http.Client) *GuideClient {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &GuideClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

// FindCourse fetches the subject page for the course's subject code and scans
// its course blocks for the identifier. Returns nil without error when the
// course is not listed.
func (g *GuideClient) FindCourse(ctx context.Context, courseID string) (*domain.CatalogCourse, error) {
	subject, _, ok := splitCourseID(courseID)
	if !ok {
		return nil, fmt.Errorf("malformed course id %q", courseID)
	}

	doc, err := g.fetchDocument(ctx, g.baseURL+"/"+subjectSlug(subject)+"/")
	if err != nil {
		return nil, fmt.Errorf("subject %s: %w", subject, err)
	}

	var found *domain.CatalogCourse
	doc.Find(".courseblock").EachWithBreak(func(i int, block *goquery.Selection) bool {
		title := strings.TrimSpace(block.Find(".courseblocktitle").First().Text())
		m := titleExpr.FindStringSubmatch(title)
		if m == nil {
			return true
		}

		id := strings.TrimSpace(m[1]) + " " + m[2]
		if !strings.EqualFold(id, courseID) {
			return true
		}

		found = &domain.CatalogCourse{
			CourseID:    id,
			Title:       strings.TrimSpace(m[3]),
			Credits:     parseCredits(block.Find(".courseblockcredits").First().Text()),
			Description: strings.TrimSpace(block.Find(".courseblockdesc").First().Text()),
		}
		return false
	})

	return found, nil
}

func (g *GuideClient) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "AuditScanner/1.0")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("guide returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return doc, nil
}

func splitCourseID(courseID string) (subject, number string, ok bool) {
	fields := strings.Fields(strings.TrimSpace(courseID))
	if len(fields) < 2 {
		return "", "", false
	}
	return strings.Join(fields[:len(fields)-1], " "), fields[len(fields)-1], true
}

// subjectSlug converts a subject code to the guide's URL segment,
// e.g. "COMP SCI" -> "comp_sci".
func subjectSlug(subject string) string {
	slug := strings.ToLower(subject)
	for _, r := range []string{" ", "&", "/", "-"} {
		slug = strings.ReplaceAll(slug, r, "_")
	}
	for strings.Contains(slug, "__") {
		slug = strings.ReplaceAll(slug, "__", "_")
	}
	return strings.Trim(slug, "_")
}

// parseCredits pulls the first number out of strings like "3 credits" or
// "3-4 credits" (ranges report their minimum).
func parseCredits(text string) float64 {
	match := creditsExpr.FindString(text)
	if match == "" {
		return 0
	}
	credits, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return credits
}
