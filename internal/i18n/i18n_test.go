package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)

	tests := []struct {
		name string
		lang string
		key  string
		want string
	}{
		{"english", "en", "cart", "Cart"},
		{"hindi", "hi", "cart", "कार्ट"},
		{"regional hindi", "hi-IN", "total", "कुल"},
		{"regional english", "en-GB", "total", "Total"},
		{"unknown key", "hi", "no_such_key", "no_such_key"},
		{"unknown language", "fr", "checkout", "Checkout"},
		{"malformed tag", "!!", "checkout", "Checkout"},
		{"empty tag", "", "checkout", "Checkout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.T(tt.lang, tt.key))
		})
	}
}

func TestMatch(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)

	tag, ok := tr.Match("hi-IN")
	assert.True(t, ok)
	assert.Equal(t, "hi", tag.String())

	tag, ok = tr.Match("fr")
	assert.False(t, ok)
	assert.Equal(t, "en", tag.String())

	assert.ElementsMatch(t, []string{"en", "hi"}, tr.Supported())
	assert.Equal(t, "en", tr.Supported()[0])
}

func TestDefaultLanguageSelectsFallback(t *testing.T) {
	tr, err := New("hi")
	require.NoError(t, err)

	assert.Equal(t, "hi", tr.Default().String())
	assert.Equal(t, "कुल", tr.T("fr", "total"))
	assert.Equal(t, "Total", tr.T("en", "total"))
}

func TestNewFromFSErrors(t *testing.T) {
	good := fstest.MapFS{"l/en.yaml": {Data: []byte("a: A\n")}}

	_, err := NewFromFS(good, "l", "de")
	assert.Error(t, err, "default language without a table")

	_, err = NewFromFS(good, "l", "!!")
	assert.Error(t, err, "malformed default language")

	bad := fstest.MapFS{"l/en.yaml": {Data: []byte("a: [")}}
	_, err = NewFromFS(bad, "l", "en")
	assert.Error(t, err, "broken yaml")
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("hi"))
	assert.True(t, Valid(" en-US "))
	assert.False(t, Valid("not a tag"))
}
