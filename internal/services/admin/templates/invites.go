package templates

// InviteRow represents a row in the invites table.
type InviteRow struct {
	// ID identifies the invite record across re-renders.
	ID          string
	Code        string
	URL         string
	CreatorName string
	CreatorID   string
	// Uses is the formatted "used / cap" cell, with an infinity cap when unlimited.
	Uses string
	// Expires is "Permanent" or the formatted expiry timestamp.
	Expires string
	// Expired flags invites whose expiry has passed.
	Expired       bool
	StatusLabel   string
	StatusVariant string
}

// inviteRowClass flags expired rows for styling.
func inviteRowClass(row InviteRow) string {
	if row.Expired {
		return "row-expired"
	}
	return ""
}

// InviteFilterView holds the active invite list criteria.
type InviteFilterView struct {
	Status     string
	ExpiryType string
	Limit      int
	// Limits enumerates the selectable page sizes.
	Limits []int
}

// InvitesTableView provides data for the invites table fragment.
type InvitesTableView struct {
	Rows []InviteRow
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

// InvitesPageView provides data for the invites page.
type InvitesPageView struct {
	Filter InviteFilterView
	Table  InvitesTableView
}
