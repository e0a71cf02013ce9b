// Package preview tracks the loading of a composite stats preview.
//
// A preview is built from several cards that load independently. The
// Machine owns one session per configuration, counts completions per card
// kind and flips to ready once every expected card has reported in,
// successfully or not. Changing the configuration starts a new session and
// makes every outstanding completion from the old one inert.
package preview

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/lazyvibe/readmestats/internal/model"
)

// BuildLocators returns the card locators for cfg in preview order along
// with the number of completions the session must see.
func BuildLocators(baseURL string, cfg model.Configuration) ([]model.ResourceLocator, int) {
	kinds := cfg.Kinds()
	locators := make([]model.ResourceLocator, 0, len(kinds))
	for _, kind := range kinds {
		locators = append(locators, model.ResourceLocator{
			Kind: kind,
			URL:  LocatorURL(baseURL, kind, cfg),
		})
	}
	return locators, len(locators)
}

// LocatorURL builds the address of a single card:
// {base}/{kind-path}/{subject}/svg?theme={theme}&include_private={bool}
func LocatorURL(baseURL string, kind model.ResourceKind, cfg model.Configuration) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(baseURL, "/"))
	b.WriteByte('/')
	b.WriteString(kind.Path())
	b.WriteByte('/')
	b.WriteString(url.PathEscape(cfg.Subject))
	b.WriteString("/svg?theme=")
	b.WriteString(url.QueryEscape(cfg.Theme))
	b.WriteString("&include_private=")
	b.WriteString(strconv.FormatBool(cfg.IncludePrivate))
	return b.String()
}
