// internal/adapters/browser/document_test.go
package browser

import (
	"strings"
	"testing"
)

func TestEscapeText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello world", "hello world"},
		{"angle brackets", "<script>", "&lt;script&gt;"},
		{"ampersand", "a & b", "a &amp; b"},
		{"ampersand first", "&lt;", "&amp;lt;"},
		{"dsl braces untouched", `workflow "X" { state "a" {} }`, `workflow "X" { state "a" {} }`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EscapeText(tc.in); got != tc.want {
				t.Errorf("EscapeText(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRenderDocument(t *testing.T) {
	html := RenderDocument("Journal Workflow", "state \"draft\" {\n  on submit -> review\n}")

	if !strings.Contains(html, `<div class="title">Journal Workflow</div>`) {
		t.Error("title not rendered")
	}
	if !strings.Contains(html, "on submit -&gt; review") {
		t.Error("body text should be escaped inside <pre>")
	}
	if !strings.Contains(html, "#1e1e1e") || !strings.Contains(html, "#569cd6") {
		t.Error("dark editor palette missing")
	}
}

func TestRenderDocumentEscapesTitle(t *testing.T) {
	html := RenderDocument("a < b & c", "body")
	if strings.Contains(html, "a < b & c") {
		t.Error("raw title leaked into markup")
	}
	if !strings.Contains(html, "a &lt; b &amp; c") {
		t.Error("escaped title missing")
	}
}

func TestDocumentURL(t *testing.T) {
	u := documentURL("<html></html>")
	if !strings.HasPrefix(u, "data:text/html;charset=utf-8,") {
		t.Errorf("unexpected scheme: %s", u)
	}
	if strings.Contains(u, "<") {
		t.Error("data URL must not contain raw markup")
	}
}
