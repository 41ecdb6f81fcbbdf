package icon

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// PageInfo holds what DiscoverPage could extract from a web page
type PageInfo struct {
	Title   string
	IconURL string
}

// DiscoverPage fetches a page and extracts its title and favicon URL, used
// to prefill name and icon when the user adds a URL button. Relative icon
// hrefs are resolved against the page URL; a page without any icon link
// falls back to /favicon.ico.
func DiscoverPage(pageURL string) (*PageInfo, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page URL: %w", err)
	}

	client := &http.Client{Timeout: 8 * time.Second}
	req, err := http.NewRequest("GET", pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	info := &PageInfo{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	doc.Find("link[rel]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		rel, _ := sel.Attr("rel")
		if !strings.Contains(strings.ToLower(rel), "icon") {
			return true
		}
		href, ok := sel.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return true
		}
		if u, err := url.Parse(strings.TrimSpace(href)); err == nil {
			info.IconURL = base.ResolveReference(u).String()
			return false
		}
		return true
	})

	if info.IconURL == "" {
		info.IconURL = base.Scheme + "://" + base.Host + "/favicon.ico"
	}
	return info, nil
}
