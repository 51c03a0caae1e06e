package catalog

// RequestStatus tracks the review state of an access request.
type RequestStatus string

// Request statuses.
const (
	RequestPending  RequestStatus = "Pending"
	RequestApproved RequestStatus = "Approved"
	RequestDenied   RequestStatus = "Denied"
)

// Valid reports whether the status is a known value.
func (s RequestStatus) Valid() bool {
	return s == RequestPending || s == RequestApproved || s == RequestDenied
}

// Request is a user's petition to view a restricted material. Material is the
// requested material's title, a soft reference like Material.Category.
type Request struct {
	ID       int           `json:"id" yaml:"id"`
	User     string        `json:"user" yaml:"user"`
	Email    string        `json:"email" yaml:"email"`
	Material string        `json:"material" yaml:"material"`
	Date     string        `json:"date" yaml:"date"`
	Status   RequestStatus `json:"status" yaml:"status"`
	Purpose  string        `json:"purpose" yaml:"purpose"`
}

// RequestPatch is a partial update for a Request.
type RequestPatch struct {
	User     *string        `json:"user,omitempty"`
	Email    *string        `json:"email,omitempty"`
	Material *string        `json:"material,omitempty"`
	Date     *string        `json:"date,omitempty"`
	Status   *RequestStatus `json:"status,omitempty"`
	Purpose  *string        `json:"purpose,omitempty"`
}

// apply merges the patch into r and returns the result.
func (p RequestPatch) apply(r Request) Request {
	if p.User != nil {
		r.User = *p.User
	}
	if p.Email != nil {
		r.Email = *p.Email
	}
	if p.Material != nil {
		r.Material = *p.Material
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.Purpose != nil {
		r.Purpose = *p.Purpose
	}
	return r
}

// Requests is an ordered, concurrency-safe collection of access requests.
type Requests = Collection[int, Request]

// NewRequests creates an empty requests collection.
func NewRequests() *Requests {
	return NewCollection[int](func(r Request) int { return r.ID })
}
