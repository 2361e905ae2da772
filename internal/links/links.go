// Package links builds the set of third-party search links included in
// every report for manual review.
package links

import (
	"net/url"

	"github.com/nao1215/phoneosint/internal/model"
)

// Platform names, in report order.
const (
	GoogleSearch = "Google Search"
	Truecaller   = "Truecaller"
	Facebook     = "Facebook"
	LinkedIn     = "LinkedIn"
	Instagram    = "Instagram"
)

// template describes one link: the URL prefix placed before the number, and
// whether the number lands in a query value or in the URL path.
type template struct {
	name   string
	prefix string
	query  bool
}

// templates is the fixed link set. Truecaller search is pinned to the
// Indian directory.
var templates = []template{
	{name: GoogleSearch, prefix: "https://www.google.com/search?q=", query: true},
	{name: Truecaller, prefix: "https://www.truecaller.com/search/in/", query: false},
	{name: Facebook, prefix: "https://www.facebook.com/search/top?q=", query: true},
	{name: LinkedIn, prefix: "https://www.linkedin.com/search/results/all/?keywords=", query: true},
	{name: Instagram, prefix: "https://www.instagram.com/", query: false},
}

// Build returns the five search links for a national-format number.
// The number is interpolated verbatim, so spaces, parentheses and other
// punctuation end up unescaped in the URLs. Use BuildEscaped for links that
// are safe to paste into any client.
func Build(national string) model.LinkPack {
	return build(national, false)
}

// BuildEscaped is Build with the number percent-encoded for its position:
// query escaping for query values, path escaping for path segments.
func BuildEscaped(national string) model.LinkPack {
	return build(national, true)
}

func build(national string, escape bool) model.LinkPack {
	pack := make(model.LinkPack, 0, len(templates))
	for _, t := range templates {
		value := national
		if escape {
			if t.query {
				value = url.QueryEscape(national)
			} else {
				value = url.PathEscape(national)
			}
		}
		pack = append(pack, model.Link{Name: t.name, URL: t.prefix + value})
	}
	return pack
}
