package i18n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryKeyTranslatedInEveryLanguage(t *testing.T) {
	for _, lang := range Languages {
		table, ok := translations[lang]
		require.True(t, ok, "missing table for %s", lang)
		for _, key := range Keys {
			msg, ok := table[key]
			assert.True(t, ok, "%s: missing %s", lang, key)
			assert.NotEmpty(t, msg, "%s: empty %s", lang, key)
		}
		assert.Len(t, table, len(Keys), "%s has keys not listed in Keys", lang)
	}
}

func TestPlaceholderCountsAgree(t *testing.T) {
	for _, key := range Keys {
		want := strings.Count(translations[English][key], "%s")
		for _, lang := range Languages[1:] {
			assert.Equal(t, want, strings.Count(translations[lang][key], "%s"), "%s/%s", lang, key)
		}
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		in   string
		want Lang
	}{
		{"", English},
		{"en", English},
		{"en-US", English},
		{"zh", Chinese},
		{"zh-CN", Chinese},
		{"es", Spanish},
		{"es-MX", Spanish},
		{"fr", English},
		{"!!not a tag!!", English},
		{"de;q=0.9, es;q=0.8", Spanish},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.in))
		})
	}
}

func TestPrinter_T(t *testing.T) {
	assert.Equal(t, "Top picks for Developer:", T(English, KeyAdvisorIntro, "Developer"))
	assert.Equal(t, "预算：不超过 $1,500。", T(Chinese, KeyAdvisorBudget, "$1,500"))
	assert.Equal(t, "Empate", T(Spanish, KeyCompareTie))
}

func TestNewPrinter_InvalidLangFallsBack(t *testing.T) {
	p := NewPrinter(Lang("klingon"))
	assert.Equal(t, English, p.Lang())
	assert.Equal(t, "Model", p.T(KeyColName))
}

func TestLang_Tag(t *testing.T) {
	assert.Equal(t, "zh-Hans", Chinese.Tag().String())
	assert.Equal(t, "en", Lang("xx").Tag().String())
	assert.True(t, Spanish.IsValid())
	assert.False(t, Lang("fr").IsValid())
}
