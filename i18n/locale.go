package i18n

import "strings"

// DefaultLocale is where the bare root path redirects.
const DefaultLocale = "en"

// FallbackLocale is used when a key is missing from the requested locale's
// dictionary. It intentionally differs from DefaultLocale: Czech is the
// source language of the site content, English is just the landing default.
const FallbackLocale = "cs"

var SupportedLocales = []string{"cs", "en", "ua"}

func IsSupported(locale string) bool {
	for _, l := range SupportedLocales {
		if l == locale {
			return true
		}
	}
	return false
}

// ResolveFromPath extracts the locale from the first path segment.
// Returns false when the segment is missing or not a supported locale.
func ResolveFromPath(path string) (string, bool) {
	for _, segment := range strings.Split(path, "/") {
		if segment == "" {
			continue
		}
		if IsSupported(segment) {
			return segment, true
		}
		return "", false
	}
	return "", false
}
