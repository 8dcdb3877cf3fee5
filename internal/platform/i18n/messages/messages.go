// Package messages loads the UI string catalogs and builds message printers
// for them.
package messages

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the canonical source locale for catalogs.
const BaseLocale = "en"

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle contains all locale catalogs loaded from disk.
type Bundle struct {
	locales map[string]map[string]string
	builder *catalog.Builder
}

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

// LoadEmbedded loads catalog files embedded in this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads every locales/<locale>/<namespace>.yaml file.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{locales: map[string]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(catalogFS, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := bundle.addFile(p, file); err != nil {
			return nil, err
		}
	}
	if _, ok := bundle.locales[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	if err := bundle.build(); err != nil {
		return nil, err
	}
	return bundle, nil
}

func (b *Bundle) addFile(p string, file catalogFile) error {
	localeFromPath := path.Base(path.Dir(p))
	namespaceFromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))

	locale := strings.TrimSpace(file.Locale)
	if locale != localeFromPath {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", p, locale, localeFromPath)
	}
	if strings.TrimSpace(file.Namespace) != namespaceFromPath {
		return fmt.Errorf("catalog %s: namespace %q must match filename namespace %q", p, file.Namespace, namespaceFromPath)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages map is required", p)
	}

	messages, ok := b.locales[locale]
	if !ok {
		messages = map[string]string{}
		b.locales[locale] = messages
	}
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if _, exists := messages[key]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, key, locale)
		}
		messages[key] = value
	}
	return nil
}

// build registers every message in a private x/text catalog. Keys a locale
// does not translate are registered with their base-locale text.
func (b *Bundle) build() error {
	b.builder = catalog.NewBuilder(catalog.Fallback(language.Make(BaseLocale)))
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		for key := range b.locales[BaseLocale] {
			value, _ := b.Message(locale, key)
			if err := b.builder.SetString(tag, key, value); err != nil {
				return fmt.Errorf("register %s %q: %w", locale, key, err)
			}
		}
		for key, value := range b.locales[locale] {
			if err := b.builder.SetString(tag, key, value); err != nil {
				return fmt.Errorf("register %s %q: %w", locale, key, err)
			}
		}
	}
	return nil
}

// Locales returns all available locale identifiers.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Message returns one message value with base-locale fallback.
func (b *Bundle) Message(locale string, key string) (string, bool) {
	if value, ok := b.locales[locale][key]; ok {
		return value, true
	}
	value, ok := b.locales[BaseLocale][key]
	return value, ok
}

// MissingKeys lists base-locale keys a locale does not translate.
func (b *Bundle) MissingKeys(locale string) []string {
	var missing []string
	for key := range b.locales[BaseLocale] {
		if _, ok := b.locales[locale][key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}

// Printer returns a message printer for the language.
func (b *Bundle) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(b.builder))
}
