package scrape

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitescrape"
)

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

var separator = strings.Repeat("=", 64)

// WriteText writes one block per page in index order:
//
//	================================================================
//	Page Number: 1
//	Page Content: ...
//
// followed by three blank lines.
func WriteText(w io.Writer, result *sitescrape.Result) error {
	if result == nil {
		return nil
	}
	for _, page := range result.Pages {
		if _, err := fmt.Fprintf(w, "%s\nPage Number: %d\nPage Content: %s\n\n\n\n",
			separator, page.Index, page.Text); err != nil {
			return err
		}
	}
	return nil
}

type jsonPage struct {
	Index       int    `json:"index"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Hash        string `json:"hash"`
	PageContent string `json:"Page_content"`
}

type jsonError struct {
	Index int    `json:"index"`
	URL   string `json:"url"`
	Error string `json:"error"`
}

type jsonResult struct {
	ID         string      `json:"id"`
	SitemapURL string      `json:"sitemapUrl"`
	Pages      []jsonPage  `json:"pages"`
	Errors     []jsonError `json:"errors,omitempty"`
}

// WriteJSON writes the result as an indented JSON document with pages in
// index order.
func WriteJSON(w io.Writer, result *sitescrape.Result) error {
	out := jsonResult{Pages: []jsonPage{}}
	if result != nil {
		out.ID = result.ID
		out.SitemapURL = result.SitemapURL
		for _, p := range result.Pages {
			out.Pages = append(out.Pages, jsonPage{
				Index:       p.Index,
				URL:         p.URL,
				Title:       p.Title,
				Hash:        p.Hash,
				PageContent: p.Text,
			})
		}
		for _, e := range result.Errors {
			out.Errors = append(out.Errors, jsonError{
				Index: e.Index,
				URL:   e.URL,
				Error: e.Err.Error(),
			})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
