package i18n

import (
	"embed"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/vietanh2810/eventpass-api/internal/domain"
)

//go:embed active.*.toml
var localeFS embed.FS

const (
	KeyScanUnrecognized = "scan.unrecognized_format"
	KeyScanNotFound     = "scan.not_found"
	KeyScanResolved     = "scan.resolved"
	KeyScanScanning     = "scan.scanning"
	KeyScanResolving    = "scan.resolving"
	KeyScanFailed       = "scan.failed"
)

// Translator wraps a go-i18n bundle with Spanish as the fallback language.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

func NewTranslator(defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.Spanish
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.es.toml", "active.en.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			zap.L().Error("i18n: failed to load message file", zap.String("file", file), zap.Error(err))
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
	}
}

// T renders key for locale, then the default locale, then returns the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		zap.L().Debug("i18n: localize failed", zap.String("key", key), zap.Strings("locales", languages), zap.Error(err))
		return key
	}

	return msg
}

// StatusLabel is the human label shown at the door for a payment status.
func (t *Translator) StatusLabel(locale string, s domain.PaymentStatus) string {
	return t.T(locale, "status."+string(s), nil)
}
