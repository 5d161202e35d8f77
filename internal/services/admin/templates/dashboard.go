package templates

// DashboardView provides data for the overview page.
type DashboardView struct {
	MembersURL string
	InvitesURL string
}
