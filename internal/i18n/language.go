package i18n

import (
	"regexp"
	"strings"
)

// languagePattern accepts a two-letter code with an optional two-letter
// region suffix, e.g. "ja", "en", "zh-cn", "pt-BR".
var languagePattern = regexp.MustCompile(`^[a-zA-Z]{2}(-[a-zA-Z]{2})?$`)

// Normalize validates a raw language header value. Valid codes come back
// lowercased with ok=true; anything else (wrong type, wrong shape, empty)
// yields ok=false so the publish proceeds without a language scope.
func Normalize(raw any) (string, bool) {
	code, isString := raw.(string)
	if !isString {
		return "", false
	}
	if !languagePattern.MatchString(code) {
		return "", false
	}
	return strings.ToLower(code), true
}
