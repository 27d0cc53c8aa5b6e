package platform

import (
	"log/slog"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
)

// LanguageSystem selects the operating system's preferred language
const LanguageSystem = "system"

// FallbackLanguage is used when nothing matches
const FallbackLanguage = "en"

// SystemLocales returns the user's preferred locales, most preferred first
func SystemLocales() []string {
	locales, err := locale.GetLocales()
	if err != nil {
		slog.Debug("system locale detection failed", "error", err)
		return nil
	}
	return locales
}

// MatchLanguage picks the supported language that best fits the preferred
// locales. The first supported entry is the fallback.
func MatchLanguage(supported []string, preferred ...string) string {
	if len(supported) == 0 {
		return FallbackLanguage
	}

	tags := make([]language.Tag, 0, len(supported))
	for _, code := range supported {
		tags = append(tags, language.Make(code))
	}

	_, index, confidence := language.NewMatcher(tags).Match(parseTags(preferred)...)
	if confidence == language.No || index < 0 || index >= len(supported) {
		return supported[0]
	}
	return supported[index]
}

// ResolveLanguage maps a configured language to a supported one, consulting
// the system locales for LanguageSystem
func ResolveLanguage(configured string, supported []string) string {
	if configured == "" || configured == LanguageSystem {
		return MatchLanguage(supported, SystemLocales()...)
	}
	return MatchLanguage(supported, configured)
}

func parseTags(values []string) []language.Tag {
	tags := make([]language.Tag, 0, len(values))
	for _, v := range values {
		tag, err := language.Parse(v)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}
