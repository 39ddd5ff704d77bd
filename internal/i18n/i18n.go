// Package i18n resolves a request's language and renders localized
// messages for validation failures and game errors.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/robalobadob/nerdle/internal/equation"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "lang"
)

// Supported lists the available languages; the first is the default.
var Supported = []language.Tag{
	language.English,
	language.Chinese,
	language.Japanese,
	language.Korean,
	language.Portuguese,
	language.Spanish,
}

var (
	matcher = language.NewMatcher(Supported)
	cat     = buildCatalog()
)

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for lang, msgs := range messages {
		tag := language.MustParse(lang)
		for key, text := range msgs {
			if err := b.SetString(tag, key, text); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Default returns the fallback language.
func Default() language.Tag { return Supported[0] }

// ParseTag maps a user-supplied language value to a supported tag.
// "jp" is accepted as an alias for Japanese.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return language.Und, false
	}
	if value == "jp" {
		value = "ja"
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Und, false
	}
	return Supported[idx], true
}

// ResolveTag picks the language for r: the lang query parameter, then the
// language cookie, then Accept-Language, then the default.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}
	if tag, ok := ParseTag(r.URL.Query().Get(LangParam)); ok {
		return tag
	}
	if c, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(c.Value); ok {
			return tag
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				return Supported[idx]
			}
		}
	}
	return Default()
}

// Printer returns a message printer for tag backed by the game catalog.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(cat))
}

// Message renders key in tag's language.
func Message(tag language.Tag, key string) string {
	return Printer(tag).Sprintf(key)
}

// KindMessage renders the user-facing text for a validation failure.
func KindMessage(tag language.Tag, k equation.Kind) string {
	if k == equation.KindNone {
		return ""
	}
	return Message(tag, k.Code())
}
