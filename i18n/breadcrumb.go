package i18n

import (
	"strings"
	"unicode"
)

type BreadcrumbItem struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	IsLast bool   `json:"isLast"`
}

// segmentKeys maps known path segments to their translation keys.
var segmentKeys = map[string]string{
	"services":    "nav.services",
	"about":       "nav.about",
	"pricing":     "nav.pricing",
	"contact":     "nav.contact",
	"gallery":     "nav.gallery",
	"reservation": "nav.reservation",
	"faq":         "nav.faq",
	"blog":        "nav.blog",
}

// serviceSlugKeys maps service detail slugs to the translated service name.
var serviceSlugKeys = map[string]string{
	"moving":   "services.moving.title",
	"cleaning": "services.cleaning.title",
	"packing":  "services.packing.title",
	"storage":  "services.storage.title",
	"disposal": "services.disposal.title",
}

// DeriveBreadcrumbs rebuilds the navigation trail from the current path.
// The locale segment is dropped and replaced by a Home item at /{locale}.
// A "service" segment consumes the following slug as well, so a detail page
// like /cs/service/moving collapses to Home > Services > Moving rather than
// producing a crumb per path segment. On the bare locale path there is
// nothing to render and the result is nil.
func DeriveBreadcrumbs(path string, tr *Translator) []BreadcrumbItem {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) <= 1 {
		return nil
	}

	locale := segments[0]
	home := "/" + locale
	items := []BreadcrumbItem{{Label: tr.T("nav.home", nil), Href: home}}

	href := home
	i := 1
	for i < len(segments) {
		segment := segments[i]

		if segment == "service" {
			if i+1 < len(segments) {
				slug := segments[i+1]
				items = append(items, BreadcrumbItem{
					Label: tr.T("nav.services", nil),
					Href:  home + "/services",
				})
				href += "/service/" + slug
				items = append(items, BreadcrumbItem{
					Label: slugLabel(slug, tr),
					Href:  href,
				})
				i += 2
				continue
			}
			// "service" with no slug after it: emit a generic label and
			// consume nothing further.
			href += "/service"
			items = append(items, BreadcrumbItem{
				Label: tr.T("services.generic", nil),
				Href:  href,
			})
			i++
			continue
		}

		href += "/" + segment
		items = append(items, BreadcrumbItem{
			Label: segmentLabel(segment, tr),
			Href:  href,
		})
		i++
	}

	items[len(items)-1].IsLast = true
	return items
}

func segmentLabel(segment string, tr *Translator) string {
	if key, ok := segmentKeys[segment]; ok {
		return tr.T(key, nil)
	}
	return capitalize(segment)
}

func slugLabel(slug string, tr *Translator) string {
	if key, ok := serviceSlugKeys[slug]; ok {
		return tr.T(key, nil)
	}
	return capitalize(slug)
}

// capitalize is the last-resort label for segments missing from the tables.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
