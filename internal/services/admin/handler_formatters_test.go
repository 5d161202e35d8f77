package admin

import (
	"testing"
	"time"

	"github.com/Alihasantgs/Adminpanal/internal/services/admin/i18n"
	"github.com/Alihasantgs/Adminpanal/internal/superclip"
)

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	joined := time.Date(2025, time.March, 4, 9, 30, 15, 0, time.UTC)
	if got := formatTimestamp(joined); got != "2025-03-04 09:30:15" {
		t.Fatalf("formatTimestamp = %q", got)
	}
	if got := formatTimestamp(time.Time{}); got != "" {
		t.Fatalf("formatTimestamp(zero) = %q, want empty", got)
	}
}

func TestTruncateText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		max  int
		want string
	}{
		{name: "short text unchanged", text: "abc", max: 10, want: "abc"},
		{name: "long text truncated", text: "abcdefghij", max: 4, want: "abcd…"},
		{name: "zero max unchanged", text: "abcdef", max: 0, want: "abcdef"},
		{name: "multibyte runes", text: "héllo wörld", max: 5, want: "héllo…"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := truncateText(tc.text, tc.max); got != tc.want {
				t.Fatalf("truncateText(%q, %d) = %q, want %q", tc.text, tc.max, got, tc.want)
			}
		})
	}
}

func TestBuildMemberRow(t *testing.T) {
	t.Parallel()

	member := superclip.Member{
		ReferrerID:   "ref-1",
		ReferrerName: "Alice",
		ReferredID:   "mem-9",
		ReferredName: "Bob",
		InviteCode:   "abc123",
		InviteURL:    "https://discord.gg/abc123",
		JoinedAt:     time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC),
	}
	row := buildMemberRow(member)

	if row.JoinedAt != "2025-01-02 03:04:05" {
		t.Fatalf("JoinedAt = %q", row.JoinedAt)
	}
	if row.DetailURL != "/members/detail?referred_id=mem-9" {
		t.Fatalf("DetailURL = %q", row.DetailURL)
	}
	if row.InviteURLDisplay != member.InviteURL {
		t.Fatalf("InviteURLDisplay = %q, want untruncated URL", row.InviteURLDisplay)
	}
}

func TestBuildInviteRow(t *testing.T) {
	t.Parallel()

	loc := i18n.Printer(i18n.Default())
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name        string
		invite      superclip.Invite
		wantUses    string
		wantExpires string
		wantExpired bool
		wantLabel   string
		wantVariant string
	}{
		{
			name:        "permanent unlimited",
			invite:      superclip.Invite{Code: "a", Uses: 3, Permanent: true, Status: "VALID"},
			wantUses:    "3 / ∞",
			wantExpires: "Permanent",
			wantLabel:   "Valid",
			wantVariant: "success",
		},
		{
			name:        "capped with future expiry",
			invite:      superclip.Invite{Code: "b", Uses: 2, MaxUses: 5, ExpiresAt: &future, Status: "VALID"},
			wantUses:    "2 / 5",
			wantExpires: "2025-06-01 01:00:00",
			wantLabel:   "Valid",
			wantVariant: "success",
		},
		{
			name:        "formatted countdown preferred over timestamp",
			invite:      superclip.Invite{Code: "c", ExpiresAt: &future, Status: "VALID", TimeUntilExpiry: "in 1 hour"},
			wantUses:    "0 / ∞",
			wantExpires: "in 1 hour",
			wantLabel:   "Valid",
			wantVariant: "success",
		},
		{
			name:        "expired by status",
			invite:      superclip.Invite{Code: "d", Uses: 5, MaxUses: 5, ExpiresAt: &past, Status: "EXPIRED"},
			wantUses:    "5 / 5",
			wantExpires: "2025-05-31 23:00:00",
			wantExpired: true,
			wantLabel:   "Expired",
			wantVariant: "danger",
		},
		{
			name:        "invalid lowercase status",
			invite:      superclip.Invite{Code: "e", Permanent: true, Status: "invalid"},
			wantUses:    "0 / ∞",
			wantExpires: "Permanent",
			wantLabel:   "Invalid",
			wantVariant: "danger",
		},
		{
			name:        "unknown status shown verbatim",
			invite:      superclip.Invite{Code: "f", Permanent: true, Status: "PAUSED"},
			wantUses:    "0 / ∞",
			wantExpires: "Permanent",
			wantLabel:   "PAUSED",
			wantVariant: "neutral",
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			row := buildInviteRow(tc.invite, now, loc)
			if row.Uses != tc.wantUses {
				t.Fatalf("Uses = %q, want %q", row.Uses, tc.wantUses)
			}
			if row.Expires != tc.wantExpires {
				t.Fatalf("Expires = %q, want %q", row.Expires, tc.wantExpires)
			}
			if row.Expired != tc.wantExpired {
				t.Fatalf("Expired = %v, want %v", row.Expired, tc.wantExpired)
			}
			if row.StatusLabel != tc.wantLabel {
				t.Fatalf("StatusLabel = %q, want %q", row.StatusLabel, tc.wantLabel)
			}
			if row.StatusVariant != tc.wantVariant {
				t.Fatalf("StatusVariant = %q, want %q", row.StatusVariant, tc.wantVariant)
			}
		})
	}
}

func TestInviteCreatorLabelFallsBackToDiscordUsername(t *testing.T) {
	t.Parallel()

	creator := superclip.InviteCreator{ID: "u1", DiscordUsername: "alice#1"}
	if got := creator.Label(); got != "alice#1" {
		t.Fatalf("Label() = %q, want discord username", got)
	}
	creator.DisplayName = "Alice"
	if got := creator.Label(); got != "Alice" {
		t.Fatalf("Label() = %q, want display name", got)
	}
}

func TestBuildStatsView(t *testing.T) {
	t.Parallel()

	view := buildStatsView(superclip.ReferralStatistics{
		TotalInvitesCreated:    9,
		GeneralInvitesCreated:  6,
		PersonalInvitesCreated: 3,
		JoinedViaInvites:       5,
		LastUpdated:            time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC),
	})

	if view.TotalInvitesCreated != "9" || view.JoinedViaInvites != "5" {
		t.Fatalf("view = %+v, want totals 9/5", view)
	}
	if view.GeneralInvitesCreated != "6" || view.PersonalInvitesCreated != "3" {
		t.Fatalf("view = %+v, want breakdown 6/3", view)
	}
	if view.LastUpdated != "2026-08-01 12:00:00" {
		t.Fatalf("LastUpdated = %q", view.LastUpdated)
	}

	if got := buildStatsView(superclip.ReferralStatistics{}).LastUpdated; got != "" {
		t.Fatalf("LastUpdated(zero) = %q, want empty", got)
	}
}

func TestFilterQuery(t *testing.T) {
	t.Parallel()

	filter := memberFilter{ReferrerName: "Alice Smith", InviteCode: "abc"}
	got := filterQuery(filter)
	want := "referrer_name=Alice+Smith&invite_code=abc"
	if got != want {
		t.Fatalf("filterQuery = %q, want %q", got, want)
	}

	if got := filterQuery(memberFilter{}); got != "" {
		t.Fatalf("filterQuery(empty) = %q, want empty", got)
	}
}
