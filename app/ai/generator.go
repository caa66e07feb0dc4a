package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	"inkpress/app/apperr"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

// Completer produces text for a prompt. Satisfied by *Client.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generator wraps the external text-generation call with input validation,
// a bounded timeout, and failure translation. It is stateless and performs
// no persistence.
type Generator struct {
	completer Completer
	timeout   time.Duration
	sanitizer *bluemonday.Policy
}

// NewGenerator creates a Generator with the given upstream and per-call timeout.
func NewGenerator(completer Completer, timeout time.Duration) *Generator {
	return &Generator{
		completer: completer,
		timeout:   timeout,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// Generate produces sanitized HTML body content from a short text seed,
// typically a post title. An empty seed is rejected before any upstream
// call. The upstream call is bounded by the configured timeout and aborts
// if ctx is cancelled.
func (g *Generator) Generate(ctx context.Context, seed string) (string, error) {
	seed = strings.TrimSpace(seed)
	if seed == "" {
		return "", apperr.New(apperr.KindEmptyPrompt, "generation seed is empty")
	}

	prompt := seed + ". Generate a blog content for this topic in simple text format"

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.completer.Complete(ctx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", apperr.Wrap(apperr.KindUpstreamTimeout, err, "generation timed out after %s", g.timeout)
		}
		return "", apperr.Wrap(apperr.KindUpstream, err, "generation failed")
	}

	return g.toSafeHTML(raw), nil
}

// toSafeHTML renders the generated markdown/plain text to HTML and strips
// anything unsafe before it reaches a post body.
func (g *Generator) toSafeHTML(raw string) string {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(raw))

	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})

	unsafe := markdown.Render(doc, renderer)
	return string(g.sanitizer.SanitizeBytes(unsafe))
}
