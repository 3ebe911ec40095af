// Package report renders stored run manifests as markdown audit documents,
// with an HTML rendering for browser delivery.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"govariate/domain/run"
)

// RenderMarkdown produces the audit document for a run. Param and summary
// rows are emitted in sorted key order so the same manifest always renders
// the same document.
func RenderMarkdown(m *run.Manifest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Run %s\n\n", m.RunID)
	fmt.Fprintf(&b, "Recorded `%s` draw of %d values.\n\n", m.Kind, m.Count)

	b.WriteString("## Provenance\n\n")
	b.WriteString("| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Kind | %s |\n", m.Kind)
	fmt.Fprintf(&b, "| Seed | %d |\n", m.Seed)
	fmt.Fprintf(&b, "| Count | %d |\n", m.Count)
	fmt.Fprintf(&b, "| Fingerprint | `%s` |\n", m.Fingerprint)
	fmt.Fprintf(&b, "| Created | %s |\n\n", m.CreatedAt.Time().UTC().Format(time.RFC3339))

	if len(m.Params) > 0 {
		b.WriteString("## Parameters\n\n")
		b.WriteString("| Name | Value |\n|---|---|\n")
		for _, k := range sortedKeys(m.Params) {
			fmt.Fprintf(&b, "| %s | %v |\n", k, m.Params[k])
		}
		b.WriteString("\n")
	}

	if len(m.Summary) > 0 {
		b.WriteString("## Sample summary\n\n")
		b.WriteString("| Statistic | Value |\n|---|---|\n")
		keys := make([]string, 0, len(m.Summary))
		for k := range m.Summary {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "| %s | %.6g |\n", k, m.Summary[k])
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderHTML converts the markdown report into an HTML document body.
func RenderHTML(m *run.Manifest) []byte {
	md := []byte(RenderMarkdown(m))

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})

	return markdown.ToHTML(md, p, renderer)
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
