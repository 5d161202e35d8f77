package templates

// MemberRow represents a row in the members table.
type MemberRow struct {
	ReferrerID   string
	ReferrerName string
	ReferredID   string
	ReferredName string
	InviteCode   string
	InviteURL    string
	// InviteURLDisplay is the truncated URL shown in the table cell.
	InviteURLDisplay string
	JoinedAt         string
	// DetailURL targets the statistics modal fragment for this row.
	DetailURL string
}

// MemberFilterInput describes one filter control on the members page.
type MemberFilterInput struct {
	// Param is the query parameter the input submits.
	Param string
	// Label is the localized input label.
	Label string
	// Value is the active criterion.
	Value string
	// Options feeds a datalist autocomplete for exact-match fields.
	Options []string
	// Exact marks whole-value match fields.
	Exact bool
}

// MembersTableView provides data for the members table fragment.
type MembersTableView struct {
	Rows []MemberRow
	// Message is the backend error shown in the error panel.
	Message string
	// CanRetry renders the retry control next to Message.
	CanRetry bool
	// RetryURL is the fragment URL the retry control re-fetches.
	RetryURL string
	// Empty is the localized empty-state message when no rows match.
	Empty string
	// Summary is the localized record-count line.
	Summary    string
	Pagination PaginationView
}

// MembersPageView provides data for the members page.
type MembersPageView struct {
	Filters []MemberFilterInput
	Table   MembersTableView
}

// ReferralStatsView presents fetched referral statistics in the detail modal.
type ReferralStatsView struct {
	TotalInvitesCreated    string
	GeneralInvitesCreated  string
	PersonalInvitesCreated string
	JoinedViaInvites       string
	// LastUpdated is empty when the backend omits the aggregate timestamp.
	LastUpdated string
}

// MemberDetailView provides data for the member detail modal.
type MemberDetailView struct {
	Member MemberRow
	// Stats is nil while a fetch error is displayed instead.
	Stats *ReferralStatsView
	// StatsMessage is the inline statistics error; member info still renders.
	StatsMessage string
}
