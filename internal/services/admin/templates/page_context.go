package templates

// PageContext provides shared layout context for admin pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	OperatorName string
}

// AppName returns the product name used in page titles.
func AppName() string {
	return "SuperClip Admin"
}
