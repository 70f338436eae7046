// Package i18n resolves response messages against per-locale catalogs.
// The locale is taken from the Accept-Language header; unknown locales and
// missing keys fall back to the default locale, then to the key itself.
package i18n

import (
	"fmt"
	"strings"
)

// DefaultLocale is used when the requested locale has no catalog.
const DefaultLocale = "en"

// Localizer resolves message keys for a single request's locale.
type Localizer struct {
	messages map[string]string
	fallback map[string]string
}

// NewLocalizer returns a Localizer for the given locale.
func NewLocalizer(locale string) *Localizer {
	return &Localizer{
		messages: catalogs[locale],
		fallback: catalogs[DefaultLocale],
	}
}

// Get returns the localized message for key, formatted with args.
func (l *Localizer) Get(key string, args ...interface{}) string {
	msg, ok := l.messages[key]
	if !ok {
		msg, ok = l.fallback[key]
	}
	if !ok {
		msg = key
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// MatchLocale picks the first supported locale from an Accept-Language
// header value, falling back to the default locale.
func MatchLocale(acceptLanguage string) string {
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "" {
			continue
		}
		// "hi-IN" matches the "hi" catalog.
		base := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
		if _, ok := catalogs[base]; ok {
			return base
		}
	}
	return DefaultLocale
}
