package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupportedLanguagesHaveVoiceTags(t *testing.T) {
	for _, lang := range SupportedLanguages {
		assert.True(t, IsSupportedLanguage(lang), "language=%s", lang)
		assert.NotEmpty(t, LanguageTag(lang), "language=%s", lang)
	}
}

func TestLanguageTag_Unknown(t *testing.T) {
	assert.False(t, IsSupportedLanguage("Klingon"))
	assert.Empty(t, LanguageTag("Klingon"))
}
