package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreadcrumbsEmptyOnHomePath(t *testing.T) {
	bundle := loadedBundle(t)
	for _, locale := range SupportedLocales {
		tr := bundle.Translator(locale)
		assert.Empty(t, DeriveBreadcrumbs("/"+locale, tr))
		assert.Empty(t, DeriveBreadcrumbs("/"+locale+"/", tr))
	}
	assert.Empty(t, DeriveBreadcrumbs("/", bundle.Translator(DefaultLocale)))
}

func TestBreadcrumbsServicesPage(t *testing.T) {
	bundle := loadedBundle(t)

	items := DeriveBreadcrumbs("/en/services", bundle.Translator("en"))
	require.Len(t, items, 2)

	assert.Equal(t, "Home", items[0].Label)
	assert.Equal(t, "/en", items[0].Href)
	assert.False(t, items[0].IsLast)

	assert.Equal(t, "Services", items[1].Label)
	assert.Equal(t, "/en/services", items[1].Href)
	assert.True(t, items[1].IsLast)
}

func TestBreadcrumbsServiceDetailConsumesTwoSegments(t *testing.T) {
	bundle := loadedBundle(t)

	items := DeriveBreadcrumbs("/cs/service/moving", bundle.Translator("cs"))
	require.Len(t, items, 3)

	assert.Equal(t, "Domů", items[0].Label)
	assert.Equal(t, "/cs", items[0].Href)

	assert.Equal(t, "Služby", items[1].Label)
	assert.Equal(t, "/cs/services", items[1].Href)
	assert.False(t, items[1].IsLast)

	assert.Equal(t, "Stěhování", items[2].Label)
	assert.Equal(t, "/cs/service/moving", items[2].Href)
	assert.True(t, items[2].IsLast)
}

func TestBreadcrumbsServiceWithoutSlug(t *testing.T) {
	bundle := loadedBundle(t)

	items := DeriveBreadcrumbs("/en/service", bundle.Translator("en"))
	require.Len(t, items, 2)

	assert.Equal(t, "Service", items[1].Label)
	assert.Equal(t, "/en/service", items[1].Href)
	assert.True(t, items[1].IsLast)
}

func TestBreadcrumbsUnknownSegmentCapitalized(t *testing.T) {
	bundle := loadedBundle(t)

	items := DeriveBreadcrumbs("/en/imprint", bundle.Translator("en"))
	require.Len(t, items, 2)
	assert.Equal(t, "Imprint", items[1].Label)
}

func TestBreadcrumbsUnknownServiceSlugCapitalized(t *testing.T) {
	bundle := loadedBundle(t)

	items := DeriveBreadcrumbs("/en/service/gardening", bundle.Translator("en"))
	require.Len(t, items, 3)
	assert.Equal(t, "Services", items[1].Label)
	assert.Equal(t, "Gardening", items[2].Label)
	assert.Equal(t, "/en/service/gardening", items[2].Href)
}

func TestBreadcrumbsLocalizedLabels(t *testing.T) {
	bundle := loadedBundle(t)

	items := DeriveBreadcrumbs("/ua/services", bundle.Translator("ua"))
	require.Len(t, items, 2)
	assert.Equal(t, "Головна", items[0].Label)
	assert.Equal(t, "Послуги", items[1].Label)
}

func TestBreadcrumbsDeepPath(t *testing.T) {
	bundle := loadedBundle(t)

	items := DeriveBreadcrumbs("/en/blog/spring-cleaning", bundle.Translator("en"))
	require.Len(t, items, 3)
	assert.Equal(t, "Blog", items[1].Label)
	assert.Equal(t, "/en/blog", items[1].Href)
	assert.Equal(t, "Spring-cleaning", items[2].Label)
	assert.True(t, items[2].IsLast)
	assert.False(t, items[0].IsLast)
	assert.False(t, items[1].IsLast)
}
