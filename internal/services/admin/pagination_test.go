package admin

import "testing"

func TestPaginateClampsPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		total     int
		page      int
		wantPage  int
		wantStart int
		wantEnd   int
		wantTotal int
	}{
		{name: "first page", total: 35, page: 1, wantPage: 1, wantStart: 0, wantEnd: 10, wantTotal: 4},
		{name: "middle page", total: 35, page: 3, wantPage: 3, wantStart: 20, wantEnd: 30, wantTotal: 4},
		{name: "last partial page", total: 35, page: 4, wantPage: 4, wantStart: 30, wantEnd: 35, wantTotal: 4},
		{name: "page past end clamps", total: 35, page: 9, wantPage: 4, wantStart: 30, wantEnd: 35, wantTotal: 4},
		{name: "page below one clamps", total: 35, page: 0, wantPage: 1, wantStart: 0, wantEnd: 10, wantTotal: 4},
		{name: "empty set", total: 0, page: 1, wantPage: 1, wantStart: 0, wantEnd: 0, wantTotal: 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := paginate(tt.total, tt.page, membersPageSize)
			if got.Page != tt.wantPage || got.Start != tt.wantStart || got.End != tt.wantEnd || got.TotalPages != tt.wantTotal {
				t.Fatalf("paginate(%d, %d) = %+v, want page=%d start=%d end=%d totalPages=%d",
					tt.total, tt.page, got, tt.wantPage, tt.wantStart, tt.wantEnd, tt.wantTotal)
			}
		})
	}
}

func TestPageWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{name: "centered", current: 5, total: 9, want: []int{3, 4, 5, 6, 7}},
		{name: "clamped at start", current: 1, total: 9, want: []int{1, 2, 3, 4, 5}},
		{name: "clamped near start", current: 2, total: 9, want: []int{1, 2, 3, 4, 5}},
		{name: "clamped at end", current: 9, total: 9, want: []int{5, 6, 7, 8, 9}},
		{name: "clamped near end", current: 8, total: 9, want: []int{5, 6, 7, 8, 9}},
		{name: "fewer pages than window", current: 2, total: 3, want: []int{1, 2, 3}},
		{name: "single page", current: 1, total: 1, want: []int{1}},
		{name: "current out of range", current: 12, total: 4, want: []int{1, 2, 3, 4}},
		{name: "zero pages", current: 1, total: 0, want: []int{1}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := pageWindow(tt.current, tt.total)
			if len(got) != len(tt.want) {
				t.Fatalf("pageWindow(%d, %d) = %v, want %v", tt.current, tt.total, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("pageWindow(%d, %d) = %v, want %v", tt.current, tt.total, got, tt.want)
				}
			}
		})
	}
}

func TestPageWindowNeverExceedsBounds(t *testing.T) {
	t.Parallel()

	for total := 0; total <= 12; total++ {
		for current := -1; current <= total+2; current++ {
			window := pageWindow(current, total)
			if len(window) == 0 {
				t.Fatalf("pageWindow(%d, %d) returned empty window", current, total)
			}
			if len(window) > pageWindowSize {
				t.Fatalf("pageWindow(%d, %d) = %v, longer than %d", current, total, window, pageWindowSize)
			}
			for _, page := range window {
				if page < 1 {
					t.Fatalf("pageWindow(%d, %d) includes page %d below 1", current, total, page)
				}
				if total >= 1 && page > total {
					t.Fatalf("pageWindow(%d, %d) includes page %d above total", current, total, page)
				}
			}
		}
	}
}

func TestParsePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  int
	}{
		{"", 1},
		{"0", 1},
		{"-3", 1},
		{"junk", 1},
		{"7", 7},
	}
	for _, tt := range tests {
		if got := parsePage(tt.value); got != tt.want {
			t.Fatalf("parsePage(%q) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestParseInviteLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  int
	}{
		{"", defaultInviteLimit},
		{"junk", defaultInviteLimit},
		{"30", defaultInviteLimit},
		{"10", 10},
		{"25", 25},
		{"50", 50},
		{"100", 100},
	}
	for _, tt := range tests {
		if got := parseInviteLimit(tt.value); got != tt.want {
			t.Fatalf("parseInviteLimit(%q) = %d, want %d", tt.value, got, tt.want)
		}
	}
}
