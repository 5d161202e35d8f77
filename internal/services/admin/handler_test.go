package admin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Alihasantgs/Adminpanal/internal/services/shared/sessioncookie"
	"github.com/Alihasantgs/Adminpanal/internal/superclip"
)

// fakeBackend implements BackendClient with overridable call hooks.
type fakeBackend struct {
	login   func(ctx context.Context, email, password string) (superclip.LoginSession, error)
	logout  func(ctx context.Context, token string) error
	members func(ctx context.Context, token string) ([]superclip.Member, error)
	stats   func(ctx context.Context, token, referrerID string) (superclip.ReferralStatistics, error)
	invites func(ctx context.Context, token string, query superclip.InviteQuery) (superclip.InvitePage, error)
}

func (f *fakeBackend) Login(ctx context.Context, email, password string) (superclip.LoginSession, error) {
	if f.login == nil {
		return superclip.LoginSession{}, errors.New("login not configured")
	}
	return f.login(ctx, email, password)
}

func (f *fakeBackend) Logout(ctx context.Context, token string) error {
	if f.logout == nil {
		return nil
	}
	return f.logout(ctx, token)
}

func (f *fakeBackend) Members(ctx context.Context, token string) ([]superclip.Member, error) {
	if f.members == nil {
		return nil, nil
	}
	return f.members(ctx, token)
}

func (f *fakeBackend) ReferralStatistics(ctx context.Context, token, referrerID string) (superclip.ReferralStatistics, error) {
	if f.stats == nil {
		return superclip.ReferralStatistics{}, errors.New("statistics not configured")
	}
	return f.stats(ctx, token, referrerID)
}

func (f *fakeBackend) Invites(ctx context.Context, token string, query superclip.InviteQuery) (superclip.InvitePage, error) {
	if f.invites == nil {
		return superclip.InvitePage{}, nil
	}
	return f.invites(ctx, token, query)
}

func testMembers() []superclip.Member {
	return []superclip.Member{
		{
			ReferrerID:   "ref-1",
			ReferrerName: "Alice",
			ReferredID:   "mem-1",
			ReferredName: "Bob",
			InviteCode:   "abc123",
			InviteURL:    "https://discord.gg/abc123",
			JoinedAt:     time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC),
		},
		{
			ReferrerID:   "ref-2",
			ReferrerName: "Carol",
			ReferredID:   "mem-2",
			ReferredName: "Dave",
			InviteCode:   "def456",
			InviteURL:    "https://discord.gg/def456",
			JoinedAt:     time.Date(2025, time.February, 3, 4, 5, 6, 0, time.UTC),
		},
	}
}

// newTestHandler returns a routed handler plus a session cookie for an
// already signed-in operator.
func newTestHandler(t *testing.T, backend *fakeBackend) (http.Handler, *http.Cookie) {
	t.Helper()

	sessions := newSessionStore(nil)
	session, err := sessions.Create(context.Background(), "token-1", superclip.User{ID: "u1", Email: "op@example.com", Name: "Operator"})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	handler := newHandler(backend, sessions)
	return handler.routes(), &http.Cookie{Name: sessioncookie.Name, Value: session.id}
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t, &fakeBackend{})

	for _, path := range []string{"/", "/dashboard", "/members", "/invites"} {
		r := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		if w.Code != http.StatusFound {
			t.Fatalf("GET %s status = %d, want %d", path, w.Code, http.StatusFound)
		}
		if got := w.Header().Get("Location"); got != "/login" {
			t.Fatalf("GET %s redirected to %q, want /login", path, got)
		}
	}
}

func TestRequireAuthRedirectsFragmentsViaHeader(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t, &fakeBackend{})

	r := httptest.NewRequest(http.MethodGet, "/members/table", nil)
	r.Header.Set("HX-Request", "true")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if got := w.Header().Get("HX-Redirect"); got != "/login" {
		t.Fatalf("HX-Redirect = %q, want /login", got)
	}
}

func TestRequireAuthClearsStaleCookie(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t, &fakeBackend{})

	r := httptest.NewRequest(http.MethodGet, "/members", nil)
	r.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "no-such-session"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	cleared := false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == sessioncookie.Name && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected stale session cookie to be cleared")
	}
}

func TestLoginPageRenders(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t, &fakeBackend{})

	r := httptest.NewRequest(http.MethodGet, "/login", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if !strings.Contains(body, `name="email"`) || !strings.Contains(body, `name="password"`) {
		t.Fatal("expected login form fields")
	}
}

func TestLoginSubmitSuccess(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		login: func(ctx context.Context, email, password string) (superclip.LoginSession, error) {
			if email != "op@example.com" || password != "hunter2" {
				return superclip.LoginSession{}, &superclip.APIError{Status: http.StatusUnauthorized, Message: "Invalid credentials"}
			}
			return superclip.LoginSession{Token: "token-9", User: superclip.User{ID: "u1", Name: "Operator"}}, nil
		},
	}
	handler, _ := newTestHandler(t, backend)

	form := url.Values{"email": {"op@example.com"}, "password": {"hunter2"}}
	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.Header.Set("Origin", "http://"+r.Host)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if got := w.Header().Get("Location"); got != "/dashboard" {
		t.Fatalf("redirected to %q, want /dashboard", got)
	}
	var sessionCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == sessioncookie.Name && cookie.Value != "" {
			sessionCookie = cookie
		}
	}
	if sessionCookie == nil {
		t.Fatal("expected a session cookie after login")
	}
	if !sessionCookie.HttpOnly {
		t.Fatal("expected session cookie to be http-only")
	}
}

func TestLoginSubmitRejectedCredentials(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		login: func(ctx context.Context, email, password string) (superclip.LoginSession, error) {
			return superclip.LoginSession{}, &superclip.APIError{Status: http.StatusUnauthorized, Message: "Invalid credentials"}
		},
	}
	handler, _ := newTestHandler(t, backend)

	form := url.Values{"email": {"op@example.com"}, "password": {"wrong"}}
	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.Header.Set("Origin", "http://"+r.Host)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Invalid credentials") {
		t.Fatal("expected the backend rejection message in the form")
	}
	if !strings.Contains(body, `value="op@example.com"`) {
		t.Fatal("expected the submitted email to be preserved")
	}
}

func TestLoginSubmitRejectsCrossOrigin(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t, &fakeBackend{})

	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("email=a&password=b"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.Header.Set("Origin", "http://evil.example.net")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestMembersPageRendersRows(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		members: func(ctx context.Context, token string) ([]superclip.Member, error) {
			if token != "token-1" {
				t.Errorf("members called with token %q", token)
			}
			return testMembers(), nil
		},
	}
	handler, cookie := newTestHandler(t, backend)

	r := httptest.NewRequest(http.MethodGet, "/members", nil)
	r.AddCookie(cookie)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	for _, want := range []string{"Alice", "Dave", "abc123", "Showing 2 of 2 members"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %q", want)
		}
	}
}

func TestMembersTableFragmentFilters(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		members: func(ctx context.Context, token string) ([]superclip.Member, error) {
			return testMembers(), nil
		},
	}
	handler, cookie := newTestHandler(t, backend)

	r := httptest.NewRequest(http.MethodGet, "/members/table?referrer_name=alice", nil)
	r.AddCookie(cookie)
	r.Header.Set("HX-Request", "true")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if strings.Contains(body, "<html") {
		t.Fatal("expected a fragment, got a full page")
	}
	if !strings.Contains(body, "Alice") {
		t.Fatal("expected the matching referrer")
	}
	if strings.Contains(body, "Carol") {
		t.Fatal("expected non-matching rows to be filtered out")
	}
}

func TestMembersTableFilteredEmptyState(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		members: func(ctx context.Context, token string) ([]superclip.Member, error) {
			return testMembers(), nil
		},
	}
	handler, cookie := newTestHandler(t, backend)

	r := httptest.NewRequest(http.MethodGet, "/members/table?invite_code=nomatch", nil)
	r.AddCookie(cookie)
	r.Header.Set("HX-Request", "true")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if !strings.Contains(w.Body.String(), "No results found matching your filters.") {
		t.Fatal("expected the filtered empty-state message")
	}
}

func TestMembersTableBackendError(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		members: func(ctx context.Context, token string) ([]superclip.Member, error) {
			return nil, &superclip.APIError{Status: http.StatusBadGateway, Message: "Failed to fetch Discord members"}
		},
	}
	handler, cookie := newTestHandler(t, backend)

	r := httptest.NewRequest(http.MethodGet, "/members", nil)
	r.AddCookie(cookie)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	body := w.Body.String()
	if !strings.Contains(body, "Failed to fetch Discord members") {
		t.Fatal("expected the backend error message")
	}
	if !strings.Contains(body, "refresh=1") {
		t.Fatal("expected a retry control targeting a fresh fetch")
	}
}

func TestMemberDetailFetchesStatistics(t *testing.T) {
	t.Parallel()

	statsCalls := 0
	backend := &fakeBackend{
		members: func(ctx context.Context, token string) ([]superclip.Member, error) {
			return testMembers(), nil
		},
		stats: func(ctx context.Context, token, referrerID string) (superclip.ReferralStatistics, error) {
			statsCalls++
			if referrerID != "ref-1" {
				t.Errorf("statistics requested for %q, want ref-1", referrerID)
			}
			return superclip.ReferralStatistics{
				TotalInvitesCreated:    7,
				GeneralInvitesCreated:  5,
				PersonalInvitesCreated: 2,
				JoinedViaInvites:       4,
				LastUpdated:            time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	handler, cookie := newTestHandler(t, backend)

	for i := 0; i < 2; i++ {
		r := httptest.NewRequest(http.MethodGet, "/members/detail?referred_id=mem-1", nil)
		r.AddCookie(cookie)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		body := w.Body.String()
		if !strings.Contains(body, ">7<") || !strings.Contains(body, ">4<") {
			t.Fatal("expected statistics values in the modal")
		}
		if !strings.Contains(body, "2026-08-01 12:00:00") {
			t.Fatal("expected the last-updated timestamp in the modal")
		}
	}
	if statsCalls != 2 {
		t.Fatalf("statistics fetched %d times, want one per open", statsCalls)
	}
}

func TestMemberDetailStatsErrorKeepsMemberInfo(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		members: func(ctx context.Context, token string) ([]superclip.Member, error) {
			return testMembers(), nil
		},
		stats: func(ctx context.Context, token, referrerID string) (superclip.ReferralStatistics, error) {
			return superclip.ReferralStatistics{}, &superclip.APIError{Status: http.StatusBadGateway, Message: "Failed to fetch referral statistics"}
		},
	}
	handler, cookie := newTestHandler(t, backend)

	r := httptest.NewRequest(http.MethodGet, "/members/detail?referred_id=mem-1", nil)
	r.AddCookie(cookie)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	body := w.Body.String()
	if !strings.Contains(body, "Failed to fetch referral statistics") {
		t.Fatal("expected the statistics error message")
	}
	if !strings.Contains(body, "Bob") || !strings.Contains(body, "abc123") {
		t.Fatal("expected member info to render despite the statistics failure")
	}
}

func TestMemberDetailUnknownMember(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		members: func(ctx context.Context, token string) ([]superclip.Member, error) {
			return testMembers(), nil
		},
	}
	handler, cookie := newTestHandler(t, backend)

	r := httptest.NewRequest(http.MethodGet, "/members/detail?referred_id=ghost", nil)
	r.AddCookie(cookie)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestInvitesTableQueriesBackend(t *testing.T) {
	t.Parallel()

	var gotQuery superclip.InviteQuery
	backend := &fakeBackend{
		invites: func(ctx context.Context, token string, query superclip.InviteQuery) (superclip.InvitePage, error) {
			gotQuery = query
			return superclip.InvitePage{
				Invites: []superclip.Invite{
					{
						ID:        "inv-1",
						Code:      "abc123",
						URL:       "https://discord.gg/abc123",
						Uses:      3,
						Status:    superclip.InviteStatusValid,
						Permanent: true,
						Creator:   superclip.InviteCreator{ID: "u1", DisplayName: "Alice"},
					},
				},
				Pagination: superclip.Pagination{Offset: 25, Limit: 25, Total: 120, HasMore: true},
			}, nil
		},
	}
	handler, cookie := newTestHandler(t, backend)

	r := httptest.NewRequest(http.MethodGet, "/invites/table?status=valid&expiry_type=permanent&limit=25&page=2", nil)
	r.AddCookie(cookie)
	r.Header.Set("HX-Request", "true")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	want := superclip.InviteQuery{Status: "valid", ExpiryType: "permanent", Offset: 25, Limit: 25}
	if gotQuery != want {
		t.Fatalf("backend query = %+v, want %+v", gotQuery, want)
	}
	body := w.Body.String()
	if !strings.Contains(body, "abc123") {
		t.Fatal("expected the invite row")
	}
	if !strings.Contains(body, `data-invite-id="inv-1"`) {
		t.Fatal("expected the invite id on the row")
	}
	if !strings.Contains(body, "Alice") || !strings.Contains(body, ">Valid<") {
		t.Fatal("expected creator name and status badge")
	}
	if !strings.Contains(body, "Page 2 of 5") {
		t.Fatal("expected server-side pagination summary")
	}
}

func TestInvitesTableRejectsUnknownLimit(t *testing.T) {
	t.Parallel()

	var gotQuery superclip.InviteQuery
	backend := &fakeBackend{
		invites: func(ctx context.Context, token string, query superclip.InviteQuery) (superclip.InvitePage, error) {
			gotQuery = query
			return superclip.InvitePage{Pagination: superclip.Pagination{Limit: query.Limit}}, nil
		},
	}
	handler, cookie := newTestHandler(t, backend)

	r := httptest.NewRequest(http.MethodGet, "/invites/table?limit=7&status=bogus", nil)
	r.AddCookie(cookie)
	r.Header.Set("HX-Request", "true")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if gotQuery.Limit != defaultInviteLimit {
		t.Fatalf("limit = %d, want default %d", gotQuery.Limit, defaultInviteLimit)
	}
	if gotQuery.Status != "all" {
		t.Fatalf("status = %q, want all", gotQuery.Status)
	}
}

func TestInviteFilterValuesValidatedPerParameter(t *testing.T) {
	t.Parallel()

	var gotQuery superclip.InviteQuery
	backend := &fakeBackend{
		invites: func(ctx context.Context, token string, query superclip.InviteQuery) (superclip.InvitePage, error) {
			gotQuery = query
			return superclip.InvitePage{}, nil
		},
	}
	handler, cookie := newTestHandler(t, backend)

	// Expiry values on status and vice versa must not leak through.
	r := httptest.NewRequest(http.MethodGet, "/invites/table?status=permanent&expiry_type=valid", nil)
	r.AddCookie(cookie)
	r.Header.Set("HX-Request", "true")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if gotQuery.Status != "all" {
		t.Fatalf("status = %q, want all", gotQuery.Status)
	}
	if gotQuery.ExpiryType != "all" {
		t.Fatalf("expiry type = %q, want all", gotQuery.ExpiryType)
	}
}

func TestLogoutClearsSessionEvenWhenBackendFails(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		logout: func(ctx context.Context, token string) error {
			return errors.New("backend down")
		},
	}
	handler, cookie := newTestHandler(t, backend)

	r := httptest.NewRequest(http.MethodPost, "/logout", nil)
	r.AddCookie(cookie)
	r.Header.Set("Origin", "http://"+r.Host)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if got := w.Header().Get("Location"); got != "/login" {
		t.Fatalf("redirected to %q, want /login", got)
	}

	// The session must be gone: replaying the old cookie redirects to login.
	r = httptest.NewRequest(http.MethodGet, "/members", nil)
	r.AddCookie(cookie)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Fatal("expected the revoked session to be rejected")
	}
}

func TestDashboardRenders(t *testing.T) {
	t.Parallel()

	handler, cookie := newTestHandler(t, &fakeBackend{})

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.AddCookie(cookie)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if !strings.Contains(body, "/members") || !strings.Contains(body, "/invites") {
		t.Fatal("expected navigation cards for members and invites")
	}
	if !strings.Contains(body, "Operator") {
		t.Fatal("expected the signed-in operator name")
	}
}
