package admin

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"golang.org/x/text/message"

	"github.com/Alihasantgs/Adminpanal/internal/services/admin/routepath"
	"github.com/Alihasantgs/Adminpanal/internal/services/admin/templates"
	"github.com/Alihasantgs/Adminpanal/internal/services/shared/sessioncookie"
	"github.com/Alihasantgs/Adminpanal/internal/superclip"
)

func (h *Handler) handleMembersPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	pageCtx := h.pageContext(lang, loc, r)

	view, err := h.membersView(w, r, loc, true)
	if err != nil {
		log.Printf("admin load members: %v", err)
	}
	renderPage(
		w,
		r,
		templates.MembersPage(view, loc),
		templates.MembersFullPage(view, pageCtx),
		htmxLocalizedPageTitle(loc, "title.members", templates.AppName()),
	)
}

// handleMembersTable serves the table fragment. Filter and page changes reuse
// the loaded member set; only the retry control forces a re-fetch.
func (h *Handler) handleMembersTable(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)

	refresh := r.URL.Query().Get("refresh") != ""
	view, err := h.membersView(w, r, loc, refresh)
	if err != nil {
		log.Printf("admin load members: %v", err)
	}
	renderPage(w, r, templates.MembersTable(view.Table, loc), nil, "")
}

// membersView assembles the members page model: the loaded member set run
// through the active filters and sliced to the requested page.
func (h *Handler) membersView(w http.ResponseWriter, r *http.Request, loc *message.Printer, fetch bool) (templates.MembersPageView, error) {
	snapshot := h.members.Snapshot()
	if fetch || !snapshot.Loaded {
		session, _ := sessionFromContext(r.Context())
		ctx, cancel := h.backendCallContext(r.Context())
		snapshot = h.members.Fetch(ctx, memberListParams{token: session.token})
		cancel()
	}
	if errors.Is(snapshot.Err, superclip.ErrUnauthorized) {
		sessioncookie.Clear(w, r)
	}

	query := r.URL.Query()
	filter := parseMemberFilter(query)
	page := parsePage(query.Get("page"))

	filtered := applyMemberFilter(snapshot.Records, filter)
	slice := paginate(len(filtered), page, membersPageSize)
	rows := buildMemberRows(filtered[slice.Start:slice.End])

	baseURL := routepath.MembersTable
	if qs := filterQuery(filter); qs != "" {
		baseURL += "?" + qs
	}

	table := templates.MembersTableView{
		Rows:    rows,
		Summary: loc.Sprintf("members.count_summary", len(rows), len(filtered)),
		Pagination: templates.PaginationView{
			BaseURL:     baseURL,
			Pages:       pageWindow(slice.Page, slice.TotalPages),
			Current:     slice.Page,
			TotalPages:  slice.TotalPages,
			HasPrevious: slice.Page > 1,
			HasNext:     slice.Page < slice.TotalPages,
			Summary:     loc.Sprintf("pagination.summary", slice.Page, slice.TotalPages),
		},
	}
	if snapshot.Err != nil {
		table.Message = apiErrorMessage(snapshot.Err, loc)
		table.CanRetry = true
		table.RetryURL = templates.AppendQueryParam(baseURL, "refresh", "1")
	} else if len(filtered) == 0 {
		if filter.active() {
			table.Empty = loc.Sprintf("members.empty_filtered")
		} else {
			table.Empty = loc.Sprintf("members.empty")
		}
	}

	view := templates.MembersPageView{Table: table}
	for _, field := range memberFilterFields {
		input := templates.MemberFilterInput{
			Param: field.param,
			Label: loc.Sprintf("members.filter." + field.param),
			Value: field.get(filter),
			Exact: field.exact,
		}
		if field.exact {
			input.Options = filterOptions(snapshot.Records, field.value)
		}
		view.Filters = append(view.Filters, input)
	}
	return view, snapshot.Err
}

// handleMemberDetail renders the detail modal for one referred member.
// Statistics are fetched fresh on every open so the modal never shows stale
// counts.
func (h *Handler) handleMemberDetail(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)

	referredID := strings.TrimSpace(r.URL.Query().Get("referred_id"))
	member, found := h.findMember(w, r, referredID)
	if !found {
		w.WriteHeader(http.StatusNotFound)
		if err := templates.MemberDetailError(loc.Sprintf("detail.not_found"), loc).Render(r.Context(), w); err != nil {
			log.Printf("admin render member detail: %v", err)
		}
		return
	}

	view := templates.MemberDetailView{Member: buildMemberRow(member)}

	session, _ := sessionFromContext(r.Context())
	ctx, cancel := h.backendCallContext(r.Context())
	stats, err := h.backend.ReferralStatistics(ctx, session.token, member.ReferrerID)
	cancel()
	if err != nil {
		log.Printf("admin load referral statistics: %v", err)
		if errors.Is(err, superclip.ErrUnauthorized) {
			sessioncookie.Clear(w, r)
		}
		view.StatsMessage = apiErrorMessage(err, loc)
	} else {
		statsView := buildStatsView(stats)
		view.Stats = &statsView
	}

	if err := templates.MemberDetailModal(view, loc).Render(r.Context(), w); err != nil {
		log.Printf("admin render member detail: %v", err)
	}
}

// findMember resolves a referred member from the loaded set, re-fetching once
// when the set is missing or stale.
func (h *Handler) findMember(w http.ResponseWriter, r *http.Request, referredID string) (superclip.Member, bool) {
	if referredID == "" {
		return superclip.Member{}, false
	}

	snapshot := h.members.Snapshot()
	if member, ok := memberByReferredID(snapshot.Records, referredID); ok {
		return member, true
	}

	session, _ := sessionFromContext(r.Context())
	ctx, cancel := h.backendCallContext(r.Context())
	snapshot = h.members.Fetch(ctx, memberListParams{token: session.token})
	cancel()
	if errors.Is(snapshot.Err, superclip.ErrUnauthorized) {
		sessioncookie.Clear(w, r)
	}
	return memberByReferredID(snapshot.Records, referredID)
}

func memberByReferredID(members []superclip.Member, referredID string) (superclip.Member, bool) {
	for _, member := range members {
		if member.ReferredID == referredID {
			return member, true
		}
	}
	return superclip.Member{}, false
}
