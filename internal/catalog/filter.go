package catalog

import (
	"net/url"
	"slices"
)

// TagParam is the query parameter carrying enabled tags.
const TagParam = "tag"

// FilterState is an immutable snapshot of enabled tags. The zero value has no tag enabled.
// Only enabled tags are stored, in the order they were enabled; an absent tag is disabled.
type FilterState struct {
	enabled []string
}

// NewFilterState returns a state with the given tags enabled.
func NewFilterState(tags ...string) FilterState {
	var s FilterState
	for _, t := range tags {
		s = s.Set(t, true)
	}
	return s
}

// ParseFilterState reads repeated tag parameters. Blank values and duplicates are ignored;
// unknown tags are kept since they simply match nothing.
func ParseFilterState(q url.Values) FilterState {
	return NewFilterState(q[TagParam]...)
}

// Enabled reports whether tag is enabled. Surrounding whitespace is ignored.
func (s FilterState) Enabled(tag string) bool {
	return slices.Contains(s.enabled, normalizeTag(tag))
}

// EnabledTags returns the enabled tags in the order they were enabled.
func (s FilterState) EnabledTags() []string {
	return slices.Clone(s.enabled)
}

// Len returns the number of enabled tags.
func (s FilterState) Len() int { return len(s.enabled) }

// Empty reports whether no tag is enabled.
func (s FilterState) Empty() bool { return len(s.enabled) == 0 }

// Toggle returns a new state with tag flipped; every other entry is unchanged.
func (s FilterState) Toggle(tag string) FilterState {
	tag = normalizeTag(tag)
	return s.Set(tag, !s.Enabled(tag))
}

// Set returns a state with tag enabled or disabled. Setting a tag to its current value
// returns an equal state.
func (s FilterState) Set(tag string, on bool) FilterState {
	tag = normalizeTag(tag)
	if tag == "" || s.Enabled(tag) == on {
		return s
	}
	if on {
		next := make([]string, len(s.enabled), len(s.enabled)+1)
		copy(next, s.enabled)
		return FilterState{enabled: append(next, tag)}
	}
	next := make([]string, 0, len(s.enabled)-1)
	for _, t := range s.enabled {
		if t != tag {
			next = append(next, t)
		}
	}
	return FilterState{enabled: next}
}

// Equal reports whether both states enable the same set of tags.
func (s FilterState) Equal(other FilterState) bool {
	if len(s.enabled) != len(other.enabled) {
		return false
	}
	for _, t := range s.enabled {
		if !other.Enabled(t) {
			return false
		}
	}
	return true
}

// Values encodes the state as query parameters.
func (s FilterState) Values() url.Values {
	q := url.Values{}
	for _, t := range s.enabled {
		q.Add(TagParam, t)
	}
	return q
}

// Query encodes the state as a raw query string, empty when nothing is enabled.
func (s FilterState) Query() string {
	if len(s.enabled) == 0 {
		return ""
	}
	return s.Values().Encode()
}
