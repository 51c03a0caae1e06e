package catalog

import "github.com/agentstation/utc"

// ActivityType classifies audit-trail entries.
type ActivityType string

// Activity types.
const (
	ActivityCreation      ActivityType = "creation"
	ActivityAuthorization ActivityType = "authorization"
	ActivitySystem        ActivityType = "system"
	ActivityAuth          ActivityType = "auth"
	ActivityInteraction   ActivityType = "interaction"
	ActivitySecurity      ActivityType = "security"
)

// Activity is a single audit-trail entry. The catalog records one for every
// mutation it performs; entries can also be appended directly via LogActivity.
type Activity struct {
	ID     int          `json:"id" yaml:"id"`
	Action string       `json:"action" yaml:"action"`
	Item   string       `json:"item" yaml:"item"`
	Time   utc.Time     `json:"time" yaml:"time"`
	User   string       `json:"user" yaml:"user"`
	Type   ActivityType `json:"type" yaml:"type"`
}

// ActivityLog is an ordered, concurrency-safe collection of audit entries.
type ActivityLog = Collection[int, Activity]

// NewActivityLog creates an empty activity log.
func NewActivityLog() *ActivityLog {
	return NewCollection[int](func(a Activity) int { return a.ID })
}
