// scripts/check_locales.go
//
// Reports dictionary keys that exist in the fallback locale but are missing
// elsewhere (those spots render through the fallback), and keys that exist
// only outside it (unreachable through fallback, usually a typo).
package main

import (
	"fmt"
	"os"
	"sort"

	"MoveCleanWeb/i18n"
)

func main() {
	bundle := i18n.NewBundle()
	if err := bundle.Load(); err != nil {
		fmt.Println("Failed to load dictionaries:", err)
		os.Exit(1)
	}

	reference, _ := bundle.Dictionary(i18n.FallbackLocale)
	refKeys := flatten("", reference)

	problems := 0
	for _, locale := range i18n.SupportedLocales {
		if locale == i18n.FallbackLocale {
			continue
		}

		dict, _ := bundle.Dictionary(locale)
		keys := flatten("", dict)

		var missing, extra []string
		for key := range refKeys {
			if !keys[key] {
				missing = append(missing, key)
			}
		}
		for key := range keys {
			if !refKeys[key] {
				extra = append(extra, key)
			}
		}
		sort.Strings(missing)
		sort.Strings(extra)

		for _, key := range missing {
			fmt.Printf("%s: missing %q, falls back to %s\n", locale, key, i18n.FallbackLocale)
		}
		for _, key := range extra {
			fmt.Printf("%s: %q has no %s counterpart\n", locale, key, i18n.FallbackLocale)
		}
		problems += len(missing) + len(extra)
	}

	if problems == 0 {
		fmt.Println("All locales share the same key set.")
		return
	}
	fmt.Printf("%d differences found\n", problems)
}

func flatten(prefix string, node map[string]interface{}) map[string]bool {
	keys := make(map[string]bool)
	for name, value := range node {
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		if child, ok := value.(map[string]interface{}); ok {
			for k := range flatten(key, child) {
				keys[k] = true
			}
			continue
		}
		keys[key] = true
	}
	return keys
}
