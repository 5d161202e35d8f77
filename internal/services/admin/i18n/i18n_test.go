package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagDefaults(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/members", nil)
	tag, persist := ResolveTag(r)
	if tag != language.English {
		t.Fatalf("tag = %v, want English", tag)
	}
	if persist {
		t.Fatal("default resolution should not persist a cookie")
	}
}

func TestResolveTagQueryParamPersists(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/members?lang=en", nil)
	tag, persist := ResolveTag(r)
	if tag != language.English {
		t.Fatalf("tag = %v, want English", tag)
	}
	if !persist {
		t.Fatal("query param selection should persist a cookie")
	}
}

func TestResolveTagIgnoresUnsupported(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/members?lang=zz-nonsense", nil)
	tag, persist := ResolveTag(r)
	if tag != Default() {
		t.Fatalf("tag = %v, want default", tag)
	}
	if persist {
		t.Fatal("unsupported language must not persist")
	}
}

func TestResolveTagReadsCookie(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/members", nil)
	r.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})
	tag, persist := ResolveTag(r)
	if tag != language.English {
		t.Fatalf("tag = %v, want English", tag)
	}
	if persist {
		t.Fatal("cookie resolution should not re-persist")
	}
}

func TestSetLanguageCookie(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	SetLanguageCookie(w, language.English)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	if cookies[0].Name != LangCookieName || cookies[0].Value != "en" {
		t.Fatalf("cookie = %s=%s, want %s=en", cookies[0].Name, cookies[0].Value, LangCookieName)
	}
}
