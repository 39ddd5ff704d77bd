package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"

	"github.com/robalobadob/nerdle/internal/equation"
)

func TestEveryLanguageDefinesEveryKey(t *testing.T) {
	keys := []string{KeyGameFinished, KeyAlreadyPlayed}
	for _, k := range equation.Kinds() {
		keys = append(keys, k.Code())
	}
	for _, tag := range Supported {
		base, _ := tag.Base()
		msgs, ok := messages[base.String()]
		if !ok {
			t.Fatalf("no messages for %s", tag)
		}
		for _, key := range keys {
			if msgs[key] == "" {
				t.Errorf("%s: missing %s", tag, key)
			}
		}
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
		ok   bool
	}{
		{"en", language.English, true},
		{"ZH", language.Chinese, true},
		{"jp", language.Japanese, true},
		{"ja", language.Japanese, true},
		{"pt-BR", language.Portuguese, true},
		{"es", language.Spanish, true},
		{"ko", language.Korean, true},
		{"", language.Und, false},
		{"not a tag!", language.Und, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseTag(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("ParseTag(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestResolveTag(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		cookie string
		accept string
		want   language.Tag
	}{
		{"default", "", "", "", language.English},
		{"query wins", "?lang=ko", "ja", "es", language.Korean},
		{"cookie before header", "", "ja", "es", language.Japanese},
		{"accept language", "", "", "fr-FR, es;q=0.8", language.Spanish},
		{"bad query falls through", "?lang=zz-invalid!", "", "zh-CN", language.Chinese},
		{"unsupported falls back", "", "", "fr", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: LangCookieName, Value: tt.cookie})
			}
			if tt.accept != "" {
				r.Header.Set("Accept-Language", tt.accept)
			}
			if got := ResolveTag(r); got != tt.want {
				t.Fatalf("ResolveTag = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindMessage(t *testing.T) {
	if got := KindMessage(language.English, equation.KindLeadingZero); got != "Leading zeros are not allowed" {
		t.Fatalf("en = %q", got)
	}
	if got := KindMessage(language.Chinese, equation.KindWrongLength); got != "等式必须是8个字符" {
		t.Fatalf("zh = %q", got)
	}
	if got := KindMessage(language.Spanish, equation.KindNone); got != "" {
		t.Fatalf("none = %q", got)
	}
}
