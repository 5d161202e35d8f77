package superclip

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoginReturnsTokenAndUserTogether(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"access_token":"tok-1","user":{"id":"u1","email":"admin@superclip.com","name":"Admin"}}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	session, err := client.Login(context.Background(), "admin@superclip.com", "secret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if session.Token != "tok-1" {
		t.Fatalf("Token = %q, want %q", session.Token, "tok-1")
	}
	if session.User.Email != "admin@superclip.com" {
		t.Fatalf("User.Email = %q, want %q", session.User.Email, "admin@superclip.com")
	}
}

func TestLoginUnauthorizedDoesNotFireHook(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"Invalid credentials"}`))
	}))
	defer server.Close()

	hookCalls := 0
	client := NewClient(server.URL, server.Client())
	client.SetUnauthorizedHook(func(string) { hookCalls++ })

	_, err := client.Login(context.Background(), "admin@superclip.com", "wrong")
	if err == nil {
		t.Fatal("Login() expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Message != "Invalid credentials" {
		t.Fatalf("Message = %q, want %q", apiErr.Message, "Invalid credentials")
	}
	if hookCalls != 0 {
		t.Fatalf("hook calls = %d, want 0", hookCalls)
	}
}

func TestMembersAttachesBearerToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-9" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer tok-9")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"referrerId":"r1","referredId":"m1","referredName":"Alice"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	members, err := client.Members(context.Background(), "tok-9")
	if err != nil {
		t.Fatalf("Members() error = %v", err)
	}
	if len(members) != 1 || members[0].ReferredName != "Alice" {
		t.Fatalf("Members() = %+v, want one Alice record", members)
	}
}

func TestMembersUnwrapsBareArrayBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"referredId":"m1"},{"referredId":"m2"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	members, err := client.Members(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Members() error = %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("len(members) = %d, want 2", len(members))
	}
}

func TestMembersUnauthorizedFiresHookAndWrapsSentinel(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	var rejected string
	hookCalls := 0
	client := NewClient(server.URL, server.Client())
	client.SetUnauthorizedHook(func(token string) {
		hookCalls++
		rejected = token
	})

	_, err := client.Members(context.Background(), "tok-stale")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
	if hookCalls != 1 {
		t.Fatalf("hook calls = %d, want 1", hookCalls)
	}
	if rejected != "tok-stale" {
		t.Fatalf("rejected token = %q, want %q", rejected, "tok-stale")
	}
}

func TestMembersFallbackMessageOnOpaqueFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	_, err := client.Members(context.Background(), "tok")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Message != "Failed to fetch Discord members" {
		t.Fatalf("Message = %q, want fallback", apiErr.Message)
	}
	if apiErr.Status != http.StatusBadGateway {
		t.Fatalf("Status = %d, want %d", apiErr.Status, http.StatusBadGateway)
	}
}

func TestEnvelopeSuccessFalseIsError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"message":"Guild sync in progress","errors":{"guild":"locked"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	_, err := client.Members(context.Background(), "tok")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Message != "Guild sync in progress" {
		t.Fatalf("Message = %q, want envelope message", apiErr.Message)
	}
	if apiErr.Errors["guild"] != "locked" {
		t.Fatalf("Errors = %v, want guild=locked", apiErr.Errors)
	}
}

func TestInvitesSendsQueryAndReadsInvitesEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("status") != "valid" || query.Get("expiryType") != "permanent" {
			t.Errorf("query = %v, want status=valid expiryType=permanent", query)
		}
		if query.Get("offset") != "50" || query.Get("limit") != "25" {
			t.Errorf("query = %v, want offset=50 limit=25", query)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"invites":[{"id":"inv-1","inviteCode":"abc","inviteUrl":"https://discord.gg/abc","uses":3,"maxUses":10,"isPermanent":true,"status":"VALID","timeUntilExpiryFormatted":"in 3 days","creator":{"id":"u1","displayName":"Alice"}}],"pagination":{"offset":50,"limit":25,"total":120,"hasMore":true}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	page, err := client.Invites(context.Background(), "tok", InviteQuery{
		Status:     "valid",
		ExpiryType: "permanent",
		Offset:     50,
		Limit:      25,
	})
	if err != nil {
		t.Fatalf("Invites() error = %v", err)
	}
	if len(page.Invites) != 1 {
		t.Fatalf("Invites = %+v, want one invite", page.Invites)
	}
	invite := page.Invites[0]
	if invite.ID != "inv-1" || invite.Code != "abc" || invite.URL != "https://discord.gg/abc" {
		t.Fatalf("invite = %+v, want decoded id/code/url", invite)
	}
	if invite.StatusKind() != InviteStatusValid {
		t.Fatalf("StatusKind() = %q, want %q", invite.StatusKind(), InviteStatusValid)
	}
	if !invite.Permanent || invite.TimeUntilExpiry != "in 3 days" {
		t.Fatalf("invite = %+v, want permanent with formatted expiry", invite)
	}
	if invite.Creator.Label() != "Alice" {
		t.Fatalf("Creator.Label() = %q, want Alice", invite.Creator.Label())
	}
	if !page.Pagination.HasMore || page.Pagination.Total != 120 {
		t.Fatalf("Pagination = %+v, want hasMore total=120", page.Pagination)
	}
}

func TestInvitesReadsGenericDataEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"invites":[{"inviteCode":"xyz"}],"pagination":{"total":1}}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	page, err := client.Invites(context.Background(), "tok", InviteQuery{Limit: 50})
	if err != nil {
		t.Fatalf("Invites() error = %v", err)
	}
	if len(page.Invites) != 1 || page.Invites[0].Code != "xyz" {
		t.Fatalf("Invites = %+v, want one xyz invite", page.Invites)
	}
}

func TestReferralStatisticsEscapesReferrerID(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/referrals/statistics/user%2F1" {
			t.Errorf("path = %q, want escaped referrer segment", r.URL.EscapedPath())
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"totalInvitesCreated":7,"generalInvitesCreated":4,"personalInvitesCreated":3,"joinedViaInvites":5,"lastUpdated":"2026-08-01T12:00:00Z"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	stats, err := client.ReferralStatistics(context.Background(), "tok", "user/1")
	if err != nil {
		t.Fatalf("ReferralStatistics() error = %v", err)
	}
	if stats.TotalInvitesCreated != 7 || stats.JoinedViaInvites != 5 {
		t.Fatalf("stats = %+v, want totals 7/5", stats)
	}
	if stats.GeneralInvitesCreated != 4 || stats.PersonalInvitesCreated != 3 {
		t.Fatalf("stats = %+v, want invite breakdown 4/3", stats)
	}
	if stats.LastUpdated.IsZero() {
		t.Fatalf("LastUpdated = %v, want parsed timestamp", stats.LastUpdated)
	}
}
