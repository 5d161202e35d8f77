package admin

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Alihasantgs/Adminpanal/internal/services/admin/routepath"
	"github.com/Alihasantgs/Adminpanal/internal/services/admin/templates"
	"github.com/Alihasantgs/Adminpanal/internal/services/shared/htmx"
	"github.com/Alihasantgs/Adminpanal/internal/services/shared/sessioncookie"
	"github.com/Alihasantgs/Adminpanal/internal/superclip"
)

// requireAuth gates every route except login and static assets behind a valid
// operator session. Requests without one get their stale cookie cleared and
// are redirected to the login page.
func requireAuth(next http.Handler, sessions *sessionStore, loginPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAuthExempt(r.URL.Path, loginPath) {
			next.ServeHTTP(w, r)
			return
		}

		if sessionID, ok := sessioncookie.Read(r); ok {
			if session, found := sessions.Get(r.Context(), sessionID); found {
				next.ServeHTTP(w, r.WithContext(withSession(r.Context(), session)))
				return
			}
			sessioncookie.Clear(w, r)
		}
		htmx.Redirect(w, r, loginPath, http.StatusFound)
	})
}

// isAuthExempt returns true for paths that should bypass authentication.
func isAuthExempt(path, loginPath string) bool {
	return path == loginPath || strings.HasPrefix(path, routepath.StaticPrefix)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleLoginPage(w, r)
	case http.MethodPost:
		h.handleLoginSubmit(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if sessionID, ok := sessioncookie.Read(r); ok {
		if _, found := h.sessions.Get(r.Context(), sessionID); found {
			http.Redirect(w, r, routepath.Dashboard, http.StatusFound)
			return
		}
		sessioncookie.Clear(w, r)
	}

	loc, lang := h.localizer(w, r)
	h.renderLogin(w, r, h.pageContext(lang, loc, r), templates.LoginView{}, http.StatusOK)
}

func (h *Handler) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	pageCtx := h.pageContext(lang, loc, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, pageCtx, templates.LoginView{
			Message: loc.Sprintf("error.backend_unreachable"),
		}, http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	ctx, cancel := h.backendCallContext(r.Context())
	defer cancel()
	login, err := h.backend.Login(ctx, email, password)
	if err != nil {
		status := http.StatusUnauthorized
		var apiErr *superclip.APIError
		if errors.As(err, &apiErr) && apiErr.Status != 0 {
			status = apiErr.Status
		}
		h.renderLogin(w, r, pageCtx, templates.LoginView{
			Email:   email,
			Message: apiErrorMessage(err, loc),
		}, status)
		return
	}

	session, err := h.sessions.Create(r.Context(), login.Token, login.User)
	if err != nil {
		log.Printf("admin create session: %v", err)
		h.renderLogin(w, r, pageCtx, templates.LoginView{
			Email:   email,
			Message: loc.Sprintf("error.backend_unreachable"),
		}, http.StatusInternalServerError)
		return
	}

	sessioncookie.Write(w, r, session.id)
	http.Redirect(w, r, routepath.Dashboard, http.StatusSeeOther)
}

func (h *Handler) renderLogin(w http.ResponseWriter, r *http.Request, pageCtx templates.PageContext, view templates.LoginView, status int) {
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	if err := templates.LoginFullPage(view, pageCtx).Render(r.Context(), w); err != nil {
		log.Printf("admin render login page: %v", err)
	}
}

// handleLogout revokes the backend token best-effort and always clears the
// local session, so operators end up signed out even when the API is down.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	loc, _ := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}

	if session, ok := sessionFromContext(r.Context()); ok {
		ctx, cancel := h.backendCallContext(r.Context())
		if err := h.backend.Logout(ctx, session.token); err != nil {
			log.Printf("admin backend logout: %v", err)
		}
		cancel()
		h.sessions.Delete(r.Context(), session.id)
	}

	sessioncookie.Clear(w, r)
	http.Redirect(w, r, routepath.Login, http.StatusSeeOther)
}
