package i18n

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Dictionary is a nested key -> string (or []string) mapping decoded from a
// locale JSON file.
type Dictionary map[string]interface{}

// Bundle holds the dictionaries of every supported locale. It is loaded once
// at startup and immutable afterwards, so reads need no locking.
type Bundle struct {
	dicts map[string]Dictionary
}

func NewBundle() *Bundle {
	return &Bundle{dicts: make(map[string]Dictionary)}
}

// Load reads every supported locale's dictionary from the embedded files.
func (b *Bundle) Load() error {
	for _, locale := range SupportedLocales {
		data, err := localeFS.ReadFile("locales/" + locale + ".json")
		if err != nil {
			return fmt.Errorf("i18n: reading dictionary for %q: %w", locale, err)
		}

		var dict Dictionary
		if err := json.Unmarshal(data, &dict); err != nil {
			return fmt.Errorf("i18n: parsing dictionary for %q: %w", locale, err)
		}
		b.dicts[locale] = dict
	}
	return nil
}

// Dictionary returns the raw nested dictionary for a locale.
func (b *Bundle) Dictionary(locale string) (Dictionary, bool) {
	dict, ok := b.dicts[locale]
	return dict, ok
}

// Lookup resolves a dot separated key in the given locale, falling back to
// FallbackLocale when the key is absent. Missing keys return ok=false so
// callers can tell a missing translation from an empty one.
func (b *Bundle) Lookup(locale, key string, args map[string]interface{}) (string, bool) {
	key = pluralKey(b, locale, key, args)

	value, ok := b.lookupRaw(locale, key)
	if !ok && locale != FallbackLocale {
		value, ok = b.lookupRaw(FallbackLocale, key)
	}
	if !ok {
		return "", false
	}

	text, ok := value.(string)
	if !ok {
		return "", false
	}
	return interpolate(text, args), true
}

// LookupList resolves a key whose value is an array of strings.
func (b *Bundle) LookupList(locale, key string) ([]string, bool) {
	value, ok := b.lookupRaw(locale, key)
	if !ok && locale != FallbackLocale {
		value, ok = b.lookupRaw(FallbackLocale, key)
	}
	if !ok {
		return nil, false
	}

	raw, ok := value.([]interface{})
	if !ok {
		return nil, false
	}
	list := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			list = append(list, s)
		}
	}
	return list, true
}

func (b *Bundle) lookupRaw(locale, key string) (interface{}, bool) {
	dict, ok := b.dicts[locale]
	if !ok {
		return nil, false
	}

	var current interface{} = map[string]interface{}(dict)
	for _, part := range strings.Split(key, ".") {
		node, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = node[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// pluralKey switches to the "_plural" variant of a key when the count
// argument is present and not exactly one, mirroring the client-side
// translation library the site launched with.
func pluralKey(b *Bundle, locale, key string, args map[string]interface{}) string {
	if args == nil {
		return key
	}
	count, ok := args["count"]
	if !ok {
		return key
	}

	n, ok := toFloat(count)
	if !ok || n == 1 {
		return key
	}

	plural := key + "_plural"
	if _, ok := b.lookupRaw(locale, plural); ok {
		return plural
	}
	if _, ok := b.lookupRaw(FallbackLocale, plural); ok {
		return plural
	}
	return key
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	return 0, false
}

// interpolate substitutes {{var}} placeholders from args. Values are inserted
// verbatim with no escaping; callers sanitize anything HTML-unsafe before
// display.
func interpolate(text string, args map[string]interface{}) string {
	if args == nil || !strings.Contains(text, "{{") {
		return text
	}
	for name, value := range args {
		text = strings.ReplaceAll(text, "{{"+name+"}}", fmt.Sprintf("%v", value))
	}
	return text
}
