package admin

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/message"

	"github.com/Alihasantgs/Adminpanal/internal/services/admin/routepath"
	"github.com/Alihasantgs/Adminpanal/internal/services/admin/templates"
	"github.com/Alihasantgs/Adminpanal/internal/superclip"
)

// timestampFormat renders instants in the operator's table cells.
const timestampFormat = "2006-01-02 15:04:05"

// inviteURLDisplayLimit truncates long invite URLs in table cells.
const inviteURLDisplayLimit = 40

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timestampFormat)
}

// truncateText shortens text to max runes with an ellipsis.
func truncateText(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "…"
}

// buildMemberRows converts members into table rows.
func buildMemberRows(members []superclip.Member) []templates.MemberRow {
	rows := make([]templates.MemberRow, 0, len(members))
	for _, member := range members {
		rows = append(rows, buildMemberRow(member))
	}
	return rows
}

func buildMemberRow(member superclip.Member) templates.MemberRow {
	return templates.MemberRow{
		ReferrerID:       member.ReferrerID,
		ReferrerName:     member.ReferrerName,
		ReferredID:       member.ReferredID,
		ReferredName:     member.ReferredName,
		InviteCode:       member.InviteCode,
		InviteURL:        member.InviteURL,
		InviteURLDisplay: truncateText(member.InviteURL, inviteURLDisplayLimit),
		JoinedAt:         formatTimestamp(member.JoinedAt),
		DetailURL:        routepath.MemberDetail(member.ReferredID),
	}
}

// buildInviteRows converts invites into table rows.
func buildInviteRows(invites []superclip.Invite, now time.Time, loc *message.Printer) []templates.InviteRow {
	rows := make([]templates.InviteRow, 0, len(invites))
	for _, invite := range invites {
		rows = append(rows, buildInviteRow(invite, now, loc))
	}
	return rows
}

func buildInviteRow(invite superclip.Invite, now time.Time, loc *message.Printer) templates.InviteRow {
	row := templates.InviteRow{
		ID:          invite.ID,
		Code:        invite.Code,
		URL:         invite.URL,
		CreatorName: invite.Creator.Label(),
		CreatorID:   invite.Creator.ID,
		Uses:        formatInviteUses(invite),
	}

	switch {
	case invite.TimeUntilExpiry != "":
		row.Expires = invite.TimeUntilExpiry
	case invite.NeverExpires():
		row.Expires = loc.Sprintf("invites.permanent")
	default:
		row.Expires = formatTimestamp(*invite.ExpiresAt)
	}
	if !invite.NeverExpires() && invite.ExpiresAt.Before(now) {
		row.Expired = true
	}

	switch invite.StatusKind() {
	case superclip.InviteStatusValid:
		row.StatusLabel = loc.Sprintf("invites.badge.valid")
		row.StatusVariant = "success"
	case superclip.InviteStatusInvalid:
		row.StatusLabel = loc.Sprintf("invites.badge.invalid")
		row.StatusVariant = "danger"
	case superclip.InviteStatusExpired:
		row.StatusLabel = loc.Sprintf("invites.badge.expired")
		row.StatusVariant = "danger"
		row.Expired = true
	default:
		row.StatusLabel = invite.Status
		if row.StatusLabel == "" {
			row.StatusLabel = loc.Sprintf("invites.badge.unknown")
		}
		row.StatusVariant = "neutral"
	}
	return row
}

// formatInviteUses renders the "used / cap" cell, with an unlimited cap shown
// as infinity.
func formatInviteUses(invite superclip.Invite) string {
	limit := "∞"
	if invite.MaxUses > 0 {
		limit = strconv.Itoa(invite.MaxUses)
	}
	return strconv.Itoa(invite.Uses) + " / " + limit
}

// buildStatsView converts referral statistics for the detail modal.
func buildStatsView(stats superclip.ReferralStatistics) templates.ReferralStatsView {
	return templates.ReferralStatsView{
		TotalInvitesCreated:    strconv.Itoa(stats.TotalInvitesCreated),
		GeneralInvitesCreated:  strconv.Itoa(stats.GeneralInvitesCreated),
		PersonalInvitesCreated: strconv.Itoa(stats.PersonalInvitesCreated),
		JoinedViaInvites:       strconv.Itoa(stats.JoinedViaInvites),
		LastUpdated:            formatTimestamp(stats.LastUpdated),
	}
}

// filterQuery serializes active member filters for fragment URLs.
func filterQuery(filter memberFilter) string {
	var parts []string
	for _, field := range memberFilterFields {
		value := field.get(filter)
		if value == "" {
			continue
		}
		parts = append(parts, field.param+"="+url.QueryEscape(value))
	}
	return strings.Join(parts, "&")
}
