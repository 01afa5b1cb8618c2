// Package i18n renders the user-facing strings of the suggestion list from
// embedded go-i18n message files.
package i18n

import (
	"embed"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/valpere/youdict/internal/translator"
)

//go:embed active.*.toml
var localeFS embed.FS

const DefaultLocale = "zh"

// Translator wraps a go-i18n bundle bound to one preferred locale.
type Translator struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	locale    language.Tag
}

// NewTranslator loads the embedded message files. An unparsable locale falls
// back to DefaultLocale.
func NewTranslator(locale string) *Translator {
	fallback := language.MustParse(DefaultLocale)
	tag, err := language.Parse(locale)
	if err != nil {
		tag = fallback
	}

	bundle := i18n.NewBundle(fallback)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.zh.toml", "active.en.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			slog.Warn("i18n: failed to load message file", "file", file, "error", err)
		}
	}

	return &Translator{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String(), fallback.String()),
		locale:    tag,
	}
}

func (t *Translator) Locale() string {
	return t.locale.String()
}

// T renders the message identified by key. Unknown keys render as the key.
func (t *Translator) T(key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug("i18n: localize failed", "key", key, "locale", t.locale.String(), "error", err)
		return key
	}
	return msg
}

// Labels returns the phonetic prefixes for the response parser.
func (t *Translator) Labels() translator.Labels {
	return translator.Labels{
		Phonetic: t.T("phonetic", nil),
		UK:       t.T("phonetic_uk", nil),
		US:       t.T("phonetic_us", nil),
	}
}
