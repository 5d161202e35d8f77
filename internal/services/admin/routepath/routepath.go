package routepath

import (
	"net/url"
	"strings"
)

const (
	Root = "/"
)

const (
	StaticPrefix = "/static/"
)

const (
	Login  = "/login"
	Logout = "/logout"
)

const (
	Dashboard = "/dashboard"
)

const (
	Members       = "/members"
	MembersTable  = "/members/table"
	MembersDetail = "/members/detail"
)

const (
	Invites      = "/invites"
	InvitesTable = "/invites/table"
)

// MemberDetail targets the statistics modal fragment for one referred member.
func MemberDetail(referredID string) string {
	return MembersDetail + "?referred_id=" + url.QueryEscape(strings.TrimSpace(referredID))
}
