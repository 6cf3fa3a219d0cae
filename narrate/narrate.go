// Package narrate turns event.Event records into human-readable text.
//
// Messages live in YAML catalogs, one per language, embedded into the binary
// under locales/. A catalog maps event keys (and a handful of cli.* labels) to
// fmt templates whose %[n] verbs pick event parameters by position. Lookups
// try the selected language first, then English; a key missing from both
// renders as "[key]".
package narrate

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlopt/event"
)

// Fallback is the language consulted when the selected one lacks a key.
const Fallback = "en"

var (
	// ErrUnknownLanguage is returned by New for a language with no catalog.
	ErrUnknownLanguage = errors.New("narrate: unknown language")
	// ErrInvalidCatalog is returned for a catalog that does not parse or has no messages.
	ErrInvalidCatalog = errors.New("narrate: invalid catalog")
)

//go:embed locales/*.yaml
var locales embed.FS

// Catalog is one language's message set.
type Catalog struct {
	Name     string            `yaml:"name"`
	Messages map[string]string `yaml:"messages"`
}

// ParseCatalog decodes a YAML catalog. Unknown top-level fields are rejected.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return Catalog{}, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if len(c.Messages) == 0 {
		return Catalog{}, fmt.Errorf("%w: no messages", ErrInvalidCatalog)
	}

	return c, nil
}

var builtin = sync.OnceValues(func() (map[string]Catalog, error) {
	entries, err := fs.ReadDir(locales, "locales")
	if err != nil {
		return nil, err
	}
	out := make(map[string]Catalog, len(entries))
	for _, ent := range entries {
		name := ent.Name()
		if ent.IsDir() || path.Ext(name) != ".yaml" {
			continue
		}
		data, err := locales.ReadFile(path.Join("locales", name))
		if err != nil {
			return nil, err
		}
		c, err := ParseCatalog(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[strings.TrimSuffix(name, ".yaml")] = c
	}

	return out, nil
})

// Languages lists the embedded language codes in sorted order.
func Languages() []string {
	cats, err := builtin()
	if err != nil {
		return nil
	}
	codes := make([]string, 0, len(cats))
	for code := range cats {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	return codes
}

// DisplayName returns the catalog's own name for code, or the upper-cased
// code when there is no such catalog.
func DisplayName(code string) string {
	if cats, err := builtin(); err == nil {
		if c, ok := cats[strings.ToLower(code)]; ok && c.Name != "" {
			return c.Name
		}
	}

	return strings.ToUpper(code)
}

// Narrator renders events in one language.
type Narrator struct {
	lang     string
	primary  map[string]string
	fallback map[string]string
}

// New returns a Narrator over the embedded catalogs. An empty lang selects
// Fallback.
func New(lang string) (*Narrator, error) {
	cats, err := builtin()
	if err != nil {
		return nil, err
	}

	return NewWithCatalogs(lang, cats)
}

// NewWithCatalogs is New over caller-supplied catalogs keyed by language code.
func NewWithCatalogs(lang string, cats map[string]Catalog) (*Narrator, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		lang = Fallback
	}
	c, ok := cats[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}

	return &Narrator{lang: lang, primary: c.Messages, fallback: cats[Fallback].Messages}, nil
}

// Lang returns the selected language code.
func (n *Narrator) Lang() string { return n.lang }

// Render formats e in the narrator's language.
func (n *Narrator) Render(e event.Event) string {
	return n.Text(string(e.Key), e.Params...)
}

// RenderAll formats every event in order.
func (n *Narrator) RenderAll(es []event.Event) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = n.Render(e)
	}

	return out
}

// Text formats the message stored under key with params.
func (n *Narrator) Text(key string, params ...any) string {
	tmpl, ok := n.primary[key]
	if !ok {
		tmpl, ok = n.fallback[key]
	}
	if !ok {
		return "[" + key + "]"
	}
	if len(params) == 0 || !strings.Contains(tmpl, "%") {
		return tmpl
	}

	return fmt.Sprintf(tmpl, params...)
}
