package domain

import "strings"

// ResourceStatus is the lifecycle flag controlling default-view visibility.
type ResourceStatus string

const (
	ResourceActive   ResourceStatus = "active"
	ResourceInactive ResourceStatus = "inactive"
	ResourcePending  ResourceStatus = "pending"
)

// statusCycle defines the admin status-toggle transitions: pending items go
// live, live items flip between active and inactive.
var statusCycle = map[ResourceStatus]ResourceStatus{
	ResourcePending:  ResourceActive,
	ResourceActive:   ResourceInactive,
	ResourceInactive: ResourceActive,
}

// Next returns the status the cycle operation moves to. Unknown statuses map
// to themselves.
func (s ResourceStatus) Next() ResourceStatus {
	if next, ok := statusCycle[s]; ok {
		return next
	}
	return s
}

// Valid reports whether s is a known resource status.
func (s ResourceStatus) Valid() bool {
	_, ok := statusCycle[s]
	return ok
}

// Resource is a read-only content item in the library.
type Resource struct {
	ID          string         `json:"id"`
	Emoji       string         `json:"emoji,omitempty"`
	Title       string         `json:"title"`
	Category    Category       `json:"category"`
	ReadTime    string         `json:"time"`
	Description string         `json:"description"`
	Author      string         `json:"author"`
	Date        string         `json:"date"`
	Views       int            `json:"views"`
	Status      ResourceStatus `json:"status"`
}

// MatchesQuery reports whether the resource matches a case-insensitive
// substring search over title, description and author. An empty query
// matches everything.
func (r *Resource) MatchesQuery(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(strings.ToLower(r.Description), q) ||
		strings.Contains(strings.ToLower(r.Author), q)
}
