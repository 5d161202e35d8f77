package superclip

import (
	"strings"
	"time"
)

// User identifies the operator account returned by the login endpoint.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginSession carries the access token and user returned by a successful login.
//
// Both values arrive in one response so callers can commit them together.
type LoginSession struct {
	Token string `json:"access_token"`
	User  User   `json:"user"`
}

// Member is a Discord membership record produced by a referral.
type Member struct {
	ReferrerID   string    `json:"referrerId"`
	ReferrerName string    `json:"referrerName"`
	ReferredID   string    `json:"referredId"`
	ReferredName string    `json:"referredName"`
	InviteCode   string    `json:"inviteCode"`
	InviteURL    string    `json:"inviteUrl"`
	JoinedAt     time.Time `json:"joinedDate"`
}

// InviteCreator identifies who issued an invite. Older backend builds send
// discordUsername instead of displayName, so both are decoded.
type InviteCreator struct {
	ID              string `json:"id"`
	DisplayName     string `json:"displayName"`
	DiscordUsername string `json:"discordUsername"`
}

// Label returns the best available creator name.
func (c InviteCreator) Label() string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return c.DiscordUsername
}

// Invite status values reported by the backend.
const (
	InviteStatusValid   = "VALID"
	InviteStatusInvalid = "INVALID"
	InviteStatusExpired = "EXPIRED"
)

// Invite is a Discord invite record.
type Invite struct {
	ID        string     `json:"id"`
	Code      string     `json:"inviteCode"`
	URL       string     `json:"inviteUrl"`
	Uses      int        `json:"uses"`
	MaxUses   int        `json:"maxUses"`
	ExpiresAt *time.Time `json:"expiresAt"`
	Permanent bool       `json:"isPermanent"`
	Status    string     `json:"status"`
	// TimeUntilExpiry is the backend's pre-formatted countdown, preferred over
	// the raw expiry timestamp when present.
	TimeUntilExpiry string        `json:"timeUntilExpiryFormatted"`
	Creator         InviteCreator `json:"creator"`
}

// StatusKind normalizes the status enum for comparison against the
// InviteStatus constants.
func (i Invite) StatusKind() string {
	return strings.ToUpper(strings.TrimSpace(i.Status))
}

// NeverExpires reports whether the invite has no expiry.
func (i Invite) NeverExpires() bool {
	return i.Permanent || i.ExpiresAt == nil || i.ExpiresAt.IsZero()
}

// ReferralStatistics aggregates referral outcomes for a single referrer.
type ReferralStatistics struct {
	TotalInvitesCreated    int       `json:"totalInvitesCreated"`
	GeneralInvitesCreated  int       `json:"generalInvitesCreated"`
	PersonalInvitesCreated int       `json:"personalInvitesCreated"`
	JoinedViaInvites       int       `json:"joinedViaInvites"`
	LastUpdated            time.Time `json:"lastUpdated"`
}

// Pagination describes the backend's window over a server-paginated list.
type Pagination struct {
	Offset  int  `json:"offset"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}

// InviteQuery selects a page of invites.
type InviteQuery struct {
	Status     string
	ExpiryType string
	Offset     int
	Limit      int
}

// InvitePage is one server-side page of invites.
type InvitePage struct {
	Invites    []Invite
	Pagination Pagination
}
