// Package sanitizer turns untrusted user text into HTML that is safe to embed
// in outgoing email.
package sanitizer

import (
	"bytes"
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var (
	strictPolicy *bluemonday.Policy
	safePolicy   *bluemonday.Policy
	markdown     goldmark.Markdown
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML, returns plain text
		strictPolicy = bluemonday.StrictPolicy()

		// SafePolicy allows basic formatting for user-generated content
		safePolicy = bluemonday.NewPolicy()
		safePolicy.AllowStandardURLs()
		safePolicy.AllowElements(
			"p", "br",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		safePolicy.AllowAttrs("href").OnElements("a")
		safePolicy.RequireNoFollowOnLinks(true)

		// Form notes are typed line by line; keep the line breaks.
		markdown = goldmark.New(goldmark.WithRendererOptions(gmhtml.WithHardWraps()))
	})
}

// SanitizeHTML allows safe formatting tags (p, a, strong, em, lists, code).
// Strips scripts, event handlers and javascript: URLs.
func SanitizeHTML(s string) string {
	initPolicies()
	return safePolicy.Sanitize(s)
}

// StripHTML removes all markup and returns unescaped plain text.
func StripHTML(s string) string {
	initPolicies()
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

// Markdown renders user-supplied markdown and sanitizes the result.
// Raw HTML in the input is dropped. On conversion failure the input is
// returned escaped as a single paragraph.
func Markdown(s string) string {
	initPolicies()

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(s), &buf); err != nil {
		return "<p>" + html.EscapeString(s) + "</p>"
	}
	return SanitizeHTML(buf.String())
}
