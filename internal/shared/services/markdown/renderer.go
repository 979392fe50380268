// Package markdown renders operator-authored markdown (quotation notes,
// notification bodies) into sanitized HTML for email.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts markdown to HTML that is safe to embed in an email.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewRenderer builds a GFM renderer with a UGC sanitization policy.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)

	return &Renderer{
		md:     md,
		policy: bluemonday.UGCPolicy(),
	}
}

// ToHTML renders and sanitizes src.
func (r *Renderer) ToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}

// Sanitize strips unsafe markup from already rendered HTML.
func (r *Renderer) Sanitize(htmlContent string) string {
	return r.policy.Sanitize(htmlContent)
}
