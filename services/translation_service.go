package services

import "MoveCleanWeb/i18n"

type TranslationService struct {
	Bundle *i18n.Bundle
}

func NewTranslationService(bundle *i18n.Bundle) *TranslationService {
	return &TranslationService{Bundle: bundle}
}

func (s *TranslationService) Translator(locale string) *i18n.Translator {
	return s.Bundle.Translator(locale)
}

// GetDictionary returns the full nested dictionary for a supported locale.
func (s *TranslationService) GetDictionary(locale string) (i18n.Dictionary, bool) {
	if !i18n.IsSupported(locale) {
		return nil, false
	}
	return s.Bundle.Dictionary(locale)
}
