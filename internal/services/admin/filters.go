package admin

import (
	"net/url"
	"sort"
	"strings"

	"github.com/Alihasantgs/Adminpanal/internal/superclip"
)

// memberFilter holds the active criteria for the members view. Empty fields
// match everything; populated fields combine with AND.
type memberFilter struct {
	ReferrerName string
	ReferredName string
	ReferrerID   string
	ReferredID   string
	InviteCode   string
}

// matchFunc reports whether a record value satisfies a criterion.
type matchFunc func(value, criterion string) bool

// memberFilterField binds one filter criterion to the record field it matches
// and the match rule it uses. Adding a field means adding a row here; handlers
// and templates iterate this table instead of switching on field names.
type memberFilterField struct {
	param   string
	exact   bool
	get     func(memberFilter) string
	set     func(*memberFilter, string)
	value   func(superclip.Member) string
	matches matchFunc
}

var memberFilterFields = []memberFilterField{
	{
		param:   "referrer_name",
		exact:   true,
		get:     func(f memberFilter) string { return f.ReferrerName },
		set:     func(f *memberFilter, v string) { f.ReferrerName = v },
		value:   func(m superclip.Member) string { return m.ReferrerName },
		matches: matchExact,
	},
	{
		param:   "referred_name",
		exact:   true,
		get:     func(f memberFilter) string { return f.ReferredName },
		set:     func(f *memberFilter, v string) { f.ReferredName = v },
		value:   func(m superclip.Member) string { return m.ReferredName },
		matches: matchExact,
	},
	{
		param:   "referrer_id",
		get:     func(f memberFilter) string { return f.ReferrerID },
		set:     func(f *memberFilter, v string) { f.ReferrerID = v },
		value:   func(m superclip.Member) string { return m.ReferrerID },
		matches: matchSubstring,
	},
	{
		param:   "referred_id",
		get:     func(f memberFilter) string { return f.ReferredID },
		set:     func(f *memberFilter, v string) { f.ReferredID = v },
		value:   func(m superclip.Member) string { return m.ReferredID },
		matches: matchSubstring,
	},
	{
		param:   "invite_code",
		get:     func(f memberFilter) string { return f.InviteCode },
		set:     func(f *memberFilter, v string) { f.InviteCode = v },
		value:   func(m superclip.Member) string { return m.InviteCode },
		matches: matchSubstring,
	},
}

// matchExact is a case-insensitive whole-value comparison, used for name
// fields so "Jo" never matches "John".
func matchExact(value, criterion string) bool {
	return strings.EqualFold(strings.TrimSpace(value), criterion)
}

// matchSubstring is a case-insensitive containment check, used for ID and
// invite-code fields.
func matchSubstring(value, criterion string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(criterion))
}

// parseMemberFilter reads filter criteria from query parameters.
func parseMemberFilter(query url.Values) memberFilter {
	var filter memberFilter
	for _, field := range memberFilterFields {
		field.set(&filter, strings.TrimSpace(query.Get(field.param)))
	}
	return filter
}

// active reports whether any criterion is set.
func (f memberFilter) active() bool {
	for _, field := range memberFilterFields {
		if field.get(f) != "" {
			return true
		}
	}
	return false
}

// applyMemberFilter returns the members matching every active criterion. The
// input slice is never mutated.
func applyMemberFilter(members []superclip.Member, filter memberFilter) []superclip.Member {
	matched := make([]superclip.Member, 0, len(members))
	for _, member := range members {
		if memberMatches(member, filter) {
			matched = append(matched, member)
		}
	}
	return matched
}

func memberMatches(member superclip.Member, filter memberFilter) bool {
	for _, field := range memberFilterFields {
		criterion := field.get(filter)
		if criterion == "" {
			continue
		}
		if !field.matches(field.value(member), criterion) {
			return false
		}
	}
	return true
}

// filterOptions returns the sorted distinct values of one field across the
// loaded member set. It feeds the name autocompletes and ignores the active
// criteria so options never shrink while typing.
func filterOptions(members []superclip.Member, value func(superclip.Member) string) []string {
	seen := make(map[string]struct{}, len(members))
	options := make([]string, 0, len(members))
	for _, member := range members {
		v := strings.TrimSpace(value(member))
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		options = append(options, v)
	}
	sort.Strings(options)
	return options
}
