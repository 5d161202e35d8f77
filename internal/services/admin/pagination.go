package admin

import "strconv"

const (
	// membersPageSize fixes the client-side page size of the members view.
	membersPageSize = 10
	// defaultInviteLimit is the invites page size when none is selected.
	defaultInviteLimit = 50
	// pageWindowSize caps how many page buttons the pagination bar shows.
	pageWindowSize = 5
)

// inviteLimits are the selectable invites page sizes.
var inviteLimits = []int{10, 25, 50, 100}

// pageSlice describes one page over a locally held record set.
type pageSlice struct {
	Start      int
	End        int
	Page       int
	TotalPages int
}

// paginate clamps page into range and returns the slice bounds for it.
func paginate(total, page, size int) pageSlice {
	if size <= 0 {
		size = membersPageSize
	}
	totalPages := (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	return pageSlice{Start: start, End: end, Page: page, TotalPages: totalPages}
}

// pageWindow returns up to pageWindowSize page numbers centered on current and
// clamped to [1, totalPages].
func pageWindow(current, totalPages int) []int {
	if totalPages < 1 {
		totalPages = 1
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	start := current - pageWindowSize/2
	if start < 1 {
		start = 1
	}
	end := start + pageWindowSize - 1
	if end > totalPages {
		end = totalPages
	}
	start = end - pageWindowSize + 1
	if start < 1 {
		start = 1
	}

	pages := make([]int, 0, end-start+1)
	for page := start; page <= end; page++ {
		pages = append(pages, page)
	}
	return pages
}

// parsePage reads a 1-based page number, defaulting to the first page.
func parsePage(value string) int {
	page, err := strconv.Atoi(value)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// parseInviteLimit reads a page size, accepting only the selectable limits.
func parseInviteLimit(value string) int {
	limit, err := strconv.Atoi(value)
	if err != nil {
		return defaultInviteLimit
	}
	for _, allowed := range inviteLimits {
		if limit == allowed {
			return limit
		}
	}
	return defaultInviteLimit
}
