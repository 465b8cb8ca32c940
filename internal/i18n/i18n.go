// Package i18n holds the UI string tables and picks one for a user's
// language preference.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var locales embed.FS

// Translator is immutable after New and safe for concurrent use.
type Translator struct {
	fallback language.Tag
	tags     []language.Tag
	tables   []map[string]string
	matcher  language.Matcher
}

// New loads the bundled tables. defaultLang selects the table used when a
// preference matches nothing; it must be one of the bundled languages.
func New(defaultLang string) (*Translator, error) {
	return NewFromFS(locales, "locales", defaultLang)
}

// NewFromFS loads every <tag>.yaml file in dir.
func NewFromFS(fsys fs.FS, dir, defaultLang string) (*Translator, error) {
	fallback, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("default language %q: %w", defaultLang, err)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}

	t := &Translator{fallback: fallback}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || path.Ext(name) != ".yaml" {
			continue
		}
		tag, err := language.Parse(strings.TrimSuffix(name, ".yaml"))
		if err != nil {
			return nil, fmt.Errorf("locale file %s: %w", name, err)
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		table := map[string]string{}
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		t.tags = append(t.tags, tag)
		t.tables = append(t.tables, table)
	}

	// The matcher treats the first supported tag as its fallback.
	i := slices.Index(t.tags, fallback)
	if i < 0 {
		return nil, fmt.Errorf("default language %s has no table", fallback)
	}
	if i > 0 {
		t.tags[0], t.tags[i] = t.tags[i], t.tags[0]
		t.tables[0], t.tables[i] = t.tables[i], t.tables[0]
	}
	t.matcher = language.NewMatcher(t.tags)
	return t, nil
}

// Match resolves a preference such as "hi-IN" to a supported language.
// ok is false when the preference is malformed or matches nothing, in which
// case the default language is returned.
func (t *Translator) Match(pref string) (tag language.Tag, ok bool) {
	i, ok := t.index(pref)
	return t.tags[i], ok
}

// T translates key for the given language preference. Unknown keys come
// back unchanged.
func (t *Translator) T(lang, key string) string {
	i, _ := t.index(lang)
	if s, ok := t.tables[i][key]; ok {
		return s
	}
	return key
}

func (t *Translator) Default() language.Tag { return t.fallback }

func (t *Translator) Supported() []string {
	out := make([]string, len(t.tags))
	for i, tag := range t.tags {
		out[i] = tag.String()
	}
	return out
}

// Valid reports whether pref is a well-formed BCP 47 tag.
func Valid(pref string) bool {
	_, err := language.Parse(strings.TrimSpace(pref))
	return err == nil
}

func (t *Translator) index(pref string) (int, bool) {
	tag, err := language.Parse(strings.TrimSpace(pref))
	if err != nil {
		return 0, false
	}
	_, i, conf := t.matcher.Match(tag)
	if conf == language.No {
		return 0, false
	}
	return i, true
}
