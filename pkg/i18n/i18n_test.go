package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePrefersRequestedLanguage(t *testing.T) {
	m := map[string]string{"en": "Pizza", "it": "Pizza Margherita", "de": "Pizza Margherita (DE)"}
	assert.Equal(t, "Pizza Margherita", Resolve(m, "it"))
	assert.Equal(t, "Pizza", Resolve(m, "en"))
}

func TestResolveFallsBackToEnglish(t *testing.T) {
	m := map[string]string{"en": "Bruschetta", "it": ""}
	assert.Equal(t, "Bruschetta", Resolve(m, "it"))
	assert.Equal(t, "Bruschetta", Resolve(m, "fr"))
}

func TestResolveFallsBackToFirstNonEmpty(t *testing.T) {
	m := map[string]string{"en": "", "it": "Tiramisù", "de": ""}
	assert.Equal(t, "Tiramisù", Resolve(m, "fr"))

	// Deterministic pick: sorted key order after en.
	m2 := map[string]string{"de": "Kuchen", "it": "Torta"}
	assert.Equal(t, "Kuchen", Resolve(m2, "fr"))
}

func TestResolvePlaceholder(t *testing.T) {
	assert.Equal(t, Placeholder, Resolve(nil, "en"))
	assert.Equal(t, Placeholder, Resolve(map[string]string{}, "it"))
	assert.Equal(t, Placeholder, Resolve(map[string]string{"en": "", "it": ""}, "it"))
}

// Resolve never returns an empty string when any value exists.
func TestResolveNeverEmptyWhenValueExists(t *testing.T) {
	maps := []map[string]string{
		{"en": "A"},
		{"it": "B"},
		{"en": "", "zh": "C"},
		{"de": "", "fr": "D", "en": ""},
	}
	for _, m := range maps {
		for _, lang := range []string{"en", "it", "xx", ""} {
			assert.NotEmpty(t, Resolve(m, lang))
			assert.NotEqual(t, Placeholder, Resolve(m, lang))
		}
	}
}

func TestResolveList(t *testing.T) {
	m := map[string][]string{
		"en": {"tomato", "basil"},
		"it": {"pomodoro", "basilico"},
	}
	assert.Equal(t, []string{"pomodoro", "basilico"}, ResolveList(m, "it"))
	assert.Equal(t, []string{"tomato", "basil"}, ResolveList(m, "fr"))

	empty := map[string][]string{"en": {}}
	assert.Nil(t, ResolveList(empty, "en"))
	assert.Nil(t, ResolveList(nil, "en"))

	onlyOther := map[string][]string{"de": {"mehl"}}
	assert.Equal(t, []string{"mehl"}, ResolveList(onlyOther, "it"))
}
