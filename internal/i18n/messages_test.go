package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nkuznetsov/wordduel/internal/model"
)

func TestMessageKnownKeys(t *testing.T) {
	for _, locale := range []model.Locale{model.LocaleEn, model.LocaleRu} {
		for key := range messages[locale] {
			assert.NotEmpty(t, Message(key, locale), "key %s locale %s", key, locale)
		}
	}
}

func TestMessageUnknownKeyReturnsEmpty(t *testing.T) {
	assert.Equal(t, "", Message("no_such_key", model.LocaleEn))
}

func TestMessageUnknownLocaleReturnsEmpty(t *testing.T) {
	assert.Equal(t, "", Message(KeyTimeUp, model.Locale("de")))
}

func TestRender(t *testing.T) {
	msg := Render("{player}, your word ({time}s left):", "{player}", "Alice", "{time}", "15")
	assert.Equal(t, "Alice, your word (15s left):", msg)
}

func TestRenderWithoutPairs(t *testing.T) {
	assert.Equal(t, "plain", Render("plain"))
}

func TestBothLocalesCoverSameKeys(t *testing.T) {
	assert.Equal(t, len(messages[model.LocaleEn]), len(messages[model.LocaleRu]))
	for key := range messages[model.LocaleEn] {
		_, ok := messages[model.LocaleRu][key]
		assert.True(t, ok, "key %s missing from ru", key)
	}
}
