package preview

import (
	"strings"

	"github.com/lazyvibe/readmestats/internal/model"
)

// MarkdownLabel returns the image alt text used for kind in the export.
func MarkdownLabel(kind model.ResourceKind, subject string) string {
	switch kind {
	case model.KindPrimary:
		return subject + "'s Stats"
	case model.KindSecondary:
		return "Top Langs"
	case model.KindTertiary:
		return "Streak"
	case model.KindOptional:
		return "Contributions"
	default:
		return string(kind)
	}
}

// FormatMarkdown renders the README snippet for cfg: one image line per
// card, in preview order, separated by blank lines. It does not look at
// readiness; Machine.Export gates on that.
func FormatMarkdown(baseURL string, cfg model.Configuration) string {
	locators, _ := BuildLocators(baseURL, cfg)
	blocks := make([]string, 0, len(locators))
	for _, loc := range locators {
		blocks = append(blocks, "!["+MarkdownLabel(loc.Kind, cfg.Subject)+"]("+loc.URL+")")
	}
	return strings.Join(blocks, "\n\n")
}
