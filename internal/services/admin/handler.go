package admin

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"github.com/Alihasantgs/Adminpanal/internal/platform/timeouts"
	"github.com/Alihasantgs/Adminpanal/internal/services/admin/i18n"
	"github.com/Alihasantgs/Adminpanal/internal/services/admin/routepath"
	"github.com/Alihasantgs/Adminpanal/internal/services/admin/static"
	"github.com/Alihasantgs/Adminpanal/internal/services/admin/templates"
	"github.com/Alihasantgs/Adminpanal/internal/services/shared/htmx"
	"github.com/Alihasantgs/Adminpanal/internal/superclip"
)

// backendRequestTimeout caps the time spent on one SuperClip API call.
const backendRequestTimeout = timeouts.APIRequest

// BackendClient is the slice of the SuperClip API the handlers consume.
type BackendClient interface {
	Login(ctx context.Context, email, password string) (superclip.LoginSession, error)
	Logout(ctx context.Context, token string) error
	Members(ctx context.Context, token string) ([]superclip.Member, error)
	ReferralStatistics(ctx context.Context, token, referrerID string) (superclip.ReferralStatistics, error)
	Invites(ctx context.Context, token string, query superclip.InviteQuery) (superclip.InvitePage, error)
}

var _ BackendClient = (*superclip.Client)(nil)

// memberListParams keys the members provider fetches.
type memberListParams struct {
	token string
}

// inviteListParams keys the invites provider fetches.
type inviteListParams struct {
	token string
	query superclip.InviteQuery
}

// Handler routes admin dashboard requests.
type Handler struct {
	backend  BackendClient
	sessions *sessionStore
	members  *listProvider[memberListParams, superclip.Member, struct{}]
	invites  *listProvider[inviteListParams, superclip.Invite, superclip.Pagination]
	staticFS http.FileSystem
}

// NewHandler builds the HTTP handler for the admin server.
func NewHandler(backend BackendClient, sessions *sessionStore) http.Handler {
	handler := newHandler(backend, sessions)
	return handler.routes()
}

func newHandler(backend BackendClient, sessions *sessionStore) *Handler {
	handler := &Handler{
		backend:  backend,
		sessions: sessions,
		staticFS: http.FS(static.FS),
	}
	handler.members = newListProvider(func(ctx context.Context, params memberListParams) ([]superclip.Member, struct{}, error) {
		members, err := backend.Members(ctx, params.token)
		return members, struct{}{}, err
	})
	handler.invites = newListProvider(func(ctx context.Context, params inviteListParams) ([]superclip.Invite, superclip.Pagination, error) {
		page, err := backend.Invites(ctx, params.token, params.query)
		return page.Invites, page.Pagination, err
	})
	return handler
}

func (h *Handler) localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return i18n.Printer(tag), tag.String()
}

func (h *Handler) pageContext(lang string, loc *message.Printer, r *http.Request) templates.PageContext {
	pageCtx := templates.PageContext{
		Lang:        lang,
		Loc:         loc,
		CurrentPath: r.URL.Path,
	}
	if session, ok := sessionFromContext(r.Context()); ok {
		pageCtx.OperatorName = operatorLabel(session.user)
		return pageCtx
	}
	return pageCtx
}

// routes wires the HTTP routes for the admin handler.
func (h *Handler) routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(h.staticFS)))
	mux.Handle(routepath.Login, http.HandlerFunc(h.handleLogin))
	mux.Handle(routepath.Logout, http.HandlerFunc(h.handleLogout))
	mux.Handle(routepath.Root, http.HandlerFunc(h.handleRoot))
	mux.Handle(routepath.Dashboard, http.HandlerFunc(h.handleDashboard))
	mux.Handle(routepath.Members, http.HandlerFunc(h.handleMembersPage))
	mux.Handle(routepath.MembersTable, http.HandlerFunc(h.handleMembersTable))
	mux.Handle(routepath.MembersDetail, http.HandlerFunc(h.handleMemberDetail))
	mux.Handle(routepath.Invites, http.HandlerFunc(h.handleInvitesPage))
	mux.Handle(routepath.InvitesTable, http.HandlerFunc(h.handleInvitesTable))
	return h.withRecovery(requireAuth(mux, h.sessions, routepath.Login))
}

// withRecovery converts handler panics into the generic recovery page instead
// of a dropped connection.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			log.Printf("admin panic serving %s: %v", r.URL.Path, recovered)
			loc, lang := h.localizer(w, r)
			pageCtx := templates.PageContext{Lang: lang, Loc: loc, CurrentPath: r.URL.Path}
			w.WriteHeader(http.StatusInternalServerError)
			if err := templates.RecoveredFullPage(pageCtx).Render(r.Context(), w); err != nil {
				log.Printf("admin render recovery page: %v", err)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Root {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, routepath.Dashboard, http.StatusFound)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	pageCtx := h.pageContext(lang, loc, r)
	view := templates.DashboardView{
		MembersURL: routepath.Members,
		InvitesURL: routepath.Invites,
	}
	renderPage(
		w,
		r,
		templates.DashboardContent(view, loc),
		templates.DashboardFullPage(view, pageCtx),
		htmxLocalizedPageTitle(loc, "title.dashboard", templates.AppName()),
	)
}

// backendCallContext bounds a SuperClip API call made for one request.
func (h *Handler) backendCallContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, backendRequestTimeout)
}

// apiErrorMessage normalizes a backend failure into operator-facing text.
func apiErrorMessage(err error, loc *message.Printer) string {
	var apiErr *superclip.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return loc.Sprintf("error.backend_unreachable")
}

func operatorLabel(user superclip.User) string {
	if name := strings.TrimSpace(user.Name); name != "" {
		return name
	}
	return strings.TrimSpace(user.Email)
}

func htmxLocalizedPageTitle(loc *message.Printer, title string, args ...any) string {
	if loc == nil {
		return ""
	}
	return htmx.TitleTag(loc.Sprintf(title, args...))
}

func renderPage(w http.ResponseWriter, r *http.Request, fragment templ.Component, full templ.Component, htmxTitle string) {
	htmx.RenderPage(w, r, fragment, full, htmxTitle)
}

func requireSameOrigin(w http.ResponseWriter, r *http.Request, loc *message.Printer) bool {
	if r == nil {
		http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
		return false
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		if !sameOrigin(origin, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	if referer := strings.TrimSpace(r.Referer()); referer != "" {
		if !sameOrigin(referer, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
	return false
}

func sameOrigin(rawURL string, r *http.Request) bool {
	if rawURL == "" || rawURL == "null" || r == nil {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	if !strings.EqualFold(parsed.Host, r.Host) {
		return false
	}
	if parsed.Scheme != "" {
		return strings.EqualFold(parsed.Scheme, requestScheme(r))
	}
	return true
}

func requestScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if proto := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		return strings.ToLower(proto)
	}
	return "http"
}
