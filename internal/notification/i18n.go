package notification

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator renders message ids from the embedded locale files.
type Translator struct {
	bundle        *i18n.Bundle
	defaultLocale string
}

func NewTranslator(defaultLocale string) (*Translator, error) {
	if defaultLocale == "" {
		defaultLocale = "en"
	}
	if _, err := language.Parse(defaultLocale); err != nil {
		return nil, fmt.Errorf("i18n: invalid default locale %q: %w", defaultLocale, err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: read locales dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", e.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, e.Name()); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", e.Name(), err)
		}
	}

	return &Translator{bundle: bundle, defaultLocale: defaultLocale}, nil
}

func (t *Translator) DefaultLocale() string {
	return t.defaultLocale
}

// Languages lists the locales that have a message file.
func (t *Translator) Languages() []language.Tag {
	return t.bundle.LanguageTags()
}

// T accepts a locale or a raw Accept-Language value. Unknown ids come back unchanged.
func (t *Translator) T(locale, messageID string, data map[string]any) string {
	l := i18n.NewLocalizer(t.bundle, locale, t.defaultLocale)

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if data != nil {
		cfg.TemplateData = data
	}

	msg, err := l.Localize(cfg)
	if err != nil {
		return messageID
	}
	return msg
}
