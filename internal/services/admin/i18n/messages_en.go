package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Page titles
	message.SetString(lang, "title.login", "%s | Sign In")
	message.SetString(lang, "title.dashboard", "%s | Dashboard")
	message.SetString(lang, "title.members", "%s | Members")
	message.SetString(lang, "title.invites", "%s | Invites")

	// Navigation
	message.SetString(lang, "nav.dashboard", "Dashboard")
	message.SetString(lang, "nav.members", "Members")
	message.SetString(lang, "nav.invites", "Invites")
	message.SetString(lang, "nav.sign_out", "Sign out")
	message.SetString(lang, "nav.signed_in_as", "Signed in as %s")

	// Login page
	message.SetString(lang, "login.heading", "Sign in to SuperClip Admin")
	message.SetString(lang, "login.email", "Email")
	message.SetString(lang, "login.password", "Password")
	message.SetString(lang, "login.submit", "Sign In")

	// Dashboard page
	message.SetString(lang, "dashboard.heading", "Referral Program")
	message.SetString(lang, "dashboard.subtitle", "Review Discord memberships, invites, and referral statistics.")
	message.SetString(lang, "dashboard.card.members", "Discord Members")
	message.SetString(lang, "dashboard.card.members_detail", "Membership records created through referrals.")
	message.SetString(lang, "dashboard.card.invites", "Invites")
	message.SetString(lang, "dashboard.card.invites_detail", "Active and expired invite links.")
	message.SetString(lang, "dashboard.card.view", "View")

	// Members page
	message.SetString(lang, "members.heading", "Discord Members")
	message.SetString(lang, "members.filter.referrer_name", "Referrer name")
	message.SetString(lang, "members.filter.referred_name", "Referred name")
	message.SetString(lang, "members.filter.referrer_id", "Referrer ID")
	message.SetString(lang, "members.filter.referred_id", "Referred ID")
	message.SetString(lang, "members.filter.invite_code", "Invite code")
	message.SetString(lang, "members.filter.apply", "Apply filters")
	message.SetString(lang, "members.filter.clear", "Clear filters")
	message.SetString(lang, "members.table.referrer", "Referrer")
	message.SetString(lang, "members.table.referred", "Referred Member")
	message.SetString(lang, "members.table.invite_code", "Invite Code")
	message.SetString(lang, "members.table.invite_url", "Invite URL")
	message.SetString(lang, "members.table.joined", "Joined")
	message.SetString(lang, "members.table.details", "Details")
	message.SetString(lang, "members.count_summary", "Showing %d of %d members")
	message.SetString(lang, "members.empty", "No members have joined through referrals yet.")
	message.SetString(lang, "members.empty_filtered", "No results found matching your filters. Try adjusting your search criteria.")

	// Member detail modal
	message.SetString(lang, "detail.heading", "Member Details")
	message.SetString(lang, "detail.referrer", "Referrer")
	message.SetString(lang, "detail.referred", "Referred Member")
	message.SetString(lang, "detail.invite_code", "Invite Code")
	message.SetString(lang, "detail.invite_url", "Invite URL")
	message.SetString(lang, "detail.joined", "Joined")
	message.SetString(lang, "detail.statistics", "Referral Statistics")
	message.SetString(lang, "detail.total_invites", "Total invites created")
	message.SetString(lang, "detail.general_invites", "General invites created")
	message.SetString(lang, "detail.personal_invites", "Personal invites created")
	message.SetString(lang, "detail.joined_via", "Joined via invites")
	message.SetString(lang, "detail.last_updated", "Last updated %s")
	message.SetString(lang, "detail.copy", "Copy")
	message.SetString(lang, "detail.copied", "Copied")
	message.SetString(lang, "detail.close", "Close")
	message.SetString(lang, "detail.not_found", "Member record is no longer available.")

	// Invites page
	message.SetString(lang, "invites.heading", "Invites")
	message.SetString(lang, "invites.filter.status", "Status")
	message.SetString(lang, "invites.filter.expiry", "Expiry")
	message.SetString(lang, "invites.filter.limit", "Per page")
	message.SetString(lang, "invites.status.all", "All statuses")
	message.SetString(lang, "invites.status.valid", "Valid")
	message.SetString(lang, "invites.status.invalid", "Invalid")
	message.SetString(lang, "invites.expiry.all", "All expiry types")
	message.SetString(lang, "invites.expiry.permanent", "Permanent")
	message.SetString(lang, "invites.expiry.expiring", "Expiring")
	message.SetString(lang, "invites.table.code", "Code")
	message.SetString(lang, "invites.table.creator", "Creator")
	message.SetString(lang, "invites.table.uses", "Uses")
	message.SetString(lang, "invites.table.expires", "Expires")
	message.SetString(lang, "invites.table.status", "Status")
	message.SetString(lang, "invites.count_summary", "Showing %d of %d invites")
	message.SetString(lang, "invites.empty", "No invites found.")
	message.SetString(lang, "invites.empty_filtered", "No results found matching your filters. Try adjusting your search criteria.")
	message.SetString(lang, "invites.permanent", "Permanent")
	message.SetString(lang, "invites.badge.valid", "Valid")
	message.SetString(lang, "invites.badge.invalid", "Invalid")
	message.SetString(lang, "invites.badge.expired", "Expired")
	message.SetString(lang, "invites.badge.unknown", "Unknown")

	// Pagination
	message.SetString(lang, "pagination.previous", "Previous")
	message.SetString(lang, "pagination.next", "Next")
	message.SetString(lang, "pagination.summary", "Page %d of %d")

	// Errors
	message.SetString(lang, "action.retry", "Retry")
	message.SetString(lang, "action.reload", "Reload page")
	message.SetString(lang, "error.csrf_invalid", "Request origin could not be verified.")
	message.SetString(lang, "error.backend_unreachable", "We could not reach the SuperClip API. Please try again in a moment.")
	message.SetString(lang, "error.recovered", "Something went wrong")
	message.SetString(lang, "error.recovered_detail", "An unexpected error occurred while rendering this page.")
}
