package admin

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/text/message"

	"github.com/Alihasantgs/Adminpanal/internal/services/admin/routepath"
	"github.com/Alihasantgs/Adminpanal/internal/services/admin/templates"
	"github.com/Alihasantgs/Adminpanal/internal/services/shared/sessioncookie"
	"github.com/Alihasantgs/Adminpanal/internal/superclip"
)

func (h *Handler) handleInvitesPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	pageCtx := h.pageContext(lang, loc, r)

	view, err := h.invitesView(w, r, loc)
	if err != nil {
		log.Printf("admin load invites: %v", err)
	}
	renderPage(
		w,
		r,
		templates.InvitesPage(view, loc),
		templates.InvitesFullPage(view, pageCtx),
		htmxLocalizedPageTitle(loc, "title.invites", templates.AppName()),
	)
}

func (h *Handler) handleInvitesTable(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)

	view, err := h.invitesView(w, r, loc)
	if err != nil {
		log.Printf("admin load invites: %v", err)
	}
	renderPage(w, r, templates.InvitesTable(view.Table, loc), nil, "")
}

// invitesView assembles the invites page model. Unlike members, filtering and
// pagination happen on the API side, so every criteria change re-fetches.
func (h *Handler) invitesView(w http.ResponseWriter, r *http.Request, loc *message.Printer) (templates.InvitesPageView, error) {
	query := r.URL.Query()
	status := inviteStatusValue(query.Get("status"))
	expiryType := inviteExpiryValue(query.Get("expiry_type"))
	limit := parseInviteLimit(query.Get("limit"))
	page := parsePage(query.Get("page"))

	apiQuery := superclip.InviteQuery{
		Status:     status,
		ExpiryType: expiryType,
		Offset:     (page - 1) * limit,
		Limit:      limit,
	}

	session, _ := sessionFromContext(r.Context())
	ctx, cancel := h.backendCallContext(r.Context())
	snapshot := h.invites.Fetch(ctx, inviteListParams{token: session.token, query: apiQuery})
	cancel()
	if errors.Is(snapshot.Err, superclip.ErrUnauthorized) {
		sessioncookie.Clear(w, r)
	}

	rows := buildInviteRows(snapshot.Records, time.Now(), loc)

	totalPages := (snapshot.Extra.Total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	baseURL := routepath.InvitesTable + "?" + inviteFilterParams(status, expiryType, limit).Encode()

	filtered := status != "all" || expiryType != "all"
	table := templates.InvitesTableView{
		Rows:    rows,
		Summary: loc.Sprintf("invites.count_summary", len(rows), snapshot.Extra.Total),
		Pagination: templates.PaginationView{
			BaseURL:     baseURL,
			Pages:       pageWindow(page, totalPages),
			Current:     page,
			TotalPages:  totalPages,
			HasPrevious: page > 1,
			HasNext:     snapshot.Extra.HasMore && page < totalPages,
			Summary:     loc.Sprintf("pagination.summary", page, totalPages),
		},
	}
	if snapshot.Err != nil {
		table.Message = apiErrorMessage(snapshot.Err, loc)
		table.CanRetry = true
		table.RetryURL = templates.AppendQueryParam(baseURL, "page", strconv.Itoa(page))
	} else if len(rows) == 0 {
		if filtered {
			table.Empty = loc.Sprintf("invites.empty_filtered")
		} else {
			table.Empty = loc.Sprintf("invites.empty")
		}
	}

	view := templates.InvitesPageView{
		Filter: templates.InviteFilterView{
			Status:     status,
			ExpiryType: expiryType,
			Limit:      limit,
			Limits:     inviteLimits,
		},
		Table: table,
	}
	return view, snapshot.Err
}

// inviteStatusValue normalizes the status criterion, defaulting to match-all.
func inviteStatusValue(value string) string {
	switch value {
	case "valid", "invalid":
		return value
	default:
		return "all"
	}
}

// inviteExpiryValue normalizes the expiry criterion, defaulting to match-all.
func inviteExpiryValue(value string) string {
	switch value {
	case "permanent", "expiring":
		return value
	default:
		return "all"
	}
}

func inviteFilterParams(status, expiryType string, limit int) url.Values {
	params := url.Values{}
	params.Set("status", status)
	params.Set("expiry_type", expiryType)
	params.Set("limit", strconv.Itoa(limit))
	return params
}
