package templates

// LoginView provides data for the login page.
type LoginView struct {
	// Email re-fills the form after a failed attempt.
	Email string
	// Message is the credential or availability error to display.
	Message string
}
