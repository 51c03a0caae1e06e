package catalog

// UserStatus marks an account as active or inactive.
type UserStatus string

// User statuses.
const (
	StatusActive   UserStatus = "Active"
	StatusInactive UserStatus = "Inactive"
)

// Valid reports whether the status is a known value.
func (s UserStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// User is a registered account in the back office. Role is a free-form label
// ("Admin", "Archivist", "Researcher", "Student"); nothing enforces uniqueness
// of names or emails.
type User struct {
	ID     int        `json:"id" yaml:"id"`
	Name   string     `json:"name" yaml:"name"`
	Email  string     `json:"email" yaml:"email"`
	Role   string     `json:"role" yaml:"role"`
	Status UserStatus `json:"status" yaml:"status"`
	Joined string     `json:"joined" yaml:"joined"`
}

// UserPatch is a partial update for a User.
type UserPatch struct {
	Name   *string     `json:"name,omitempty"`
	Email  *string     `json:"email,omitempty"`
	Role   *string     `json:"role,omitempty"`
	Status *UserStatus `json:"status,omitempty"`
	Joined *string     `json:"joined,omitempty"`
}

// apply merges the patch into u and returns the result.
func (p UserPatch) apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	if p.Joined != nil {
		u.Joined = *p.Joined
	}
	return u
}

// Users is an ordered, concurrency-safe collection of users.
type Users = Collection[int, User]

// NewUsers creates an empty users collection.
func NewUsers() *Users {
	return NewCollection[int](func(u User) int { return u.ID })
}
