package i18n

// Translator is the request-scoped translation handle. One is built per
// request from the resolved locale and passed down instead of a global.
type Translator struct {
	Locale string
	bundle *Bundle
}

func (b *Bundle) Translator(locale string) *Translator {
	return &Translator{Locale: locale, bundle: b}
}

// Lookup returns the translated string, or ok=false when the key is missing
// from both the locale and the fallback dictionaries.
func (t *Translator) Lookup(key string, args map[string]interface{}) (string, bool) {
	return t.bundle.Lookup(t.Locale, key, args)
}

// T is the display wrapper around Lookup: missing keys come back as the raw
// key string so untranslated spots are visible on the page instead of
// crashing it.
func (t *Translator) T(key string, args map[string]interface{}) string {
	if text, ok := t.bundle.Lookup(t.Locale, key, args); ok {
		return text
	}
	return key
}

// TList returns a list-type value, or nil when the key is missing.
func (t *Translator) TList(key string) []string {
	list, ok := t.bundle.LookupList(t.Locale, key)
	if !ok {
		return nil
	}
	return list
}
