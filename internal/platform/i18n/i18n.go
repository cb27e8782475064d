// Package i18n resolves locales and renders the engine's user-facing labels.
package i18n

import (
	"strings"

	apperrors "github.com/louisbranch/netrun/internal/platform/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedTags = []language.Tag{
	language.English,
	language.German,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag maps a locale string such as "de-DE" to the closest supported
// tag. Empty or unparseable values resolve to Default.
func ResolveTag(value string) language.Tag {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default()
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return Default()
	}
	_, index, confidence := tagMatcher.Match(parsed)
	if confidence == language.No {
		return Default()
	}
	return supportedTags[index]
}

// Text renders the message registered under key for tag.
func Text(tag language.Tag, key string, args ...any) string {
	return Printer(tag).Sprintf(key, args...)
}

// ErrorMessage renders the user-facing message for err's code.
func ErrorMessage(tag language.Tag, err error) string {
	return Text(tag, ErrorKey(string(apperrors.GetCode(err))))
}
