// Package catalog provides the core catalog store for the iarchive system: the
// in-memory collections of materials, users, categories, access requests, and
// audit entries, with CRUD operations, auto-assigned identifiers, and a
// durable key-value persistence mirror (load on init, save on every mutation).
//
// A catalog is always constructed explicitly and passed by reference; there is
// no ambient global instance.
//
// Example usage:
//
//	store, err := files.New("./data")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cat, err := catalog.New(catalog.WithStore(store))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range cat.Materials().List() {
//	    fmt.Println(m.Title)
//	}
package catalog

import (
	"strconv"

	"github.com/agentstation/utc"
	"github.com/rs/zerolog"

	"github.com/iarchive/iarchive/pkg/errors"
	"github.com/iarchive/iarchive/pkg/logging"
	"github.com/iarchive/iarchive/pkg/storage/memory"
)

// Storage keys, one per entity collection.
const (
	keyMaterials  = "materials"
	keyUsers      = "users"
	keyCategories = "categories"
	keyRequests   = "requests"
	keyActivity   = "activity"
)

// Compile-time interface checks.
var (
	_ Catalog     = (*catalog)(nil)
	_ Reader      = (*catalog)(nil)
	_ Writer      = (*catalog)(nil)
	_ Persistence = (*catalog)(nil)
)

// catalog is the single concrete implementation of the Catalog interface.
type catalog struct {
	opts   *options
	logger *zerolog.Logger

	users      *Users
	materials  *Materials
	categories *Categories
	requests   *Requests
	activity   *ActivityLog

	// materialSeq is the dedicated counter behind numeric-string material ids.
	// It is only touched inside materials.Append callbacks and Load, so the
	// materials write lock serializes assignment.
	materialSeq int
}

// New creates a catalog with the given options and, unless configured
// otherwise, loads the collections from the store (seed data fills in for
// absent or corrupt keys).
func New(opts ...Option) (Catalog, error) {
	o := catalogDefaults().apply(opts...)
	if o.store == nil {
		o.store = memory.New()
	}
	if o.logger == nil {
		o.logger = logging.Default()
	}

	cat := &catalog{
		opts:       o,
		logger:     o.logger,
		users:      NewUsers(),
		materials:  NewMaterials(),
		categories: NewCategories(),
		requests:   NewRequests(),
		activity:   NewActivityLog(),
	}

	if o.autoLoad {
		if err := cat.Load(); err != nil {
			return nil, errors.WrapResource("load", "catalog", "", err)
		}
	}

	return cat, nil
}

// Users returns the users collection.
func (c *catalog) Users() *Users { return c.users }

// Materials returns the materials collection.
func (c *catalog) Materials() *Materials { return c.materials }

// Categories returns the categories collection.
func (c *catalog) Categories() *Categories { return c.categories }

// Requests returns the access requests collection.
func (c *catalog) Requests() *Requests { return c.requests }

// Activity returns the audit trail.
func (c *catalog) Activity() *ActivityLog { return c.activity }

// User returns a user by id.
func (c *catalog) User(id int) (User, error) {
	u, ok := c.users.Get(id)
	if !ok {
		return User{}, &errors.NotFoundError{Resource: "user", ID: strconv.Itoa(id)}
	}
	return u, nil
}

// Material returns a material by id.
func (c *catalog) Material(id string) (Material, error) {
	m, ok := c.materials.Get(id)
	if !ok {
		return Material{}, &errors.NotFoundError{Resource: "material", ID: id}
	}
	return m, nil
}

// Category returns a category by id.
func (c *catalog) Category(id int) (Category, error) {
	cat, ok := c.categories.Get(id)
	if !ok {
		return Category{}, &errors.NotFoundError{Resource: "category", ID: strconv.Itoa(id)}
	}
	return cat, nil
}

// Request returns an access request by id.
func (c *catalog) Request(id int) (Request, error) {
	r, ok := c.requests.Get(id)
	if !ok {
		return Request{}, &errors.NotFoundError{Resource: "request", ID: strconv.Itoa(id)}
	}
	return r, nil
}

// AddUser appends a user with the next id (strictly greater than every id
// already in the collection) and persists the collection.
func (c *catalog) AddUser(u User) User {
	created := c.users.Append(func(items []User) User {
		u.ID = nextIntID(items, func(x User) int { return x.ID })
		return u
	})
	c.persist(keyUsers, c.users.List())
	c.record("User registered", created.Email, ActivityAuth)
	return created
}

// UpdateUser shallow-merges patch into the user with the given id.
func (c *catalog) UpdateUser(id int, patch UserPatch) error {
	if !c.users.Update(id, patch.apply) {
		return c.missing("user", strconv.Itoa(id))
	}
	c.persist(keyUsers, c.users.List())
	c.record("User updated", strconv.Itoa(id), ActivitySystem)
	return nil
}

// DeleteUser removes the user with the given id.
func (c *catalog) DeleteUser(id int) error {
	if !c.users.Delete(id) {
		return c.missing("user", strconv.Itoa(id))
	}
	c.persist(keyUsers, c.users.List())
	c.record("User deleted", strconv.Itoa(id), ActivitySystem)
	return nil
}

// AddMaterial appends a material with the next numeric-string id and persists
// the collection.
func (c *catalog) AddMaterial(m Material) Material {
	created := c.materials.Append(func([]Material) Material {
		c.materialSeq++
		m.ID = strconv.Itoa(c.materialSeq)
		return m
	})
	c.persist(keyMaterials, c.materials.List())
	c.record("New material uploaded", created.Title, ActivityCreation)
	return created
}

// UpdateMaterial shallow-merges patch into the material with the given id.
func (c *catalog) UpdateMaterial(id string, patch MaterialPatch) error {
	if !c.materials.Update(id, patch.apply) {
		return c.missing("material", id)
	}
	c.persist(keyMaterials, c.materials.List())
	c.record("Material updated", id, ActivitySystem)
	return nil
}

// DeleteMaterial removes the material with the given id. Materials referenced
// by saved-item lists or access requests are not protected; those references
// simply dangle, as category references do.
func (c *catalog) DeleteMaterial(id string) error {
	if !c.materials.Delete(id) {
		return c.missing("material", id)
	}
	c.persist(keyMaterials, c.materials.List())
	c.record("Material deleted", id, ActivitySystem)
	return nil
}

// RecordView increments the view counter of the material with the given id.
func (c *catalog) RecordView(id string) error {
	if !c.materials.Update(id, func(m Material) Material {
		m.Views++
		return m
	}) {
		return c.missing("material", id)
	}
	c.persist(keyMaterials, c.materials.List())
	return nil
}

// AddCategory appends a category with the next id and persists the collection.
func (c *catalog) AddCategory(cat Category) Category {
	created := c.categories.Append(func(items []Category) Category {
		cat.ID = nextIntID(items, func(x Category) int { return x.ID })
		return cat
	})
	c.persist(keyCategories, c.categories.List())
	c.record("Category created", created.Name, ActivityCreation)
	return created
}

// UpdateCategory shallow-merges patch into the category with the given id.
// Renaming a category does not touch materials referencing the old name.
func (c *catalog) UpdateCategory(id int, patch CategoryPatch) error {
	if !c.categories.Update(id, patch.apply) {
		return c.missing("category", strconv.Itoa(id))
	}
	c.persist(keyCategories, c.categories.List())
	c.record("Category updated", strconv.Itoa(id), ActivitySystem)
	return nil
}

// DeleteCategory removes the category with the given id. No cascade: materials
// keep their category name.
func (c *catalog) DeleteCategory(id int) error {
	if !c.categories.Delete(id) {
		return c.missing("category", strconv.Itoa(id))
	}
	c.persist(keyCategories, c.categories.List())
	c.record("Category deleted", strconv.Itoa(id), ActivitySystem)
	return nil
}

// AddRequest appends an access request with the next id, defaulting its status
// to Pending, and persists the collection.
func (c *catalog) AddRequest(r Request) Request {
	if r.Status == "" {
		r.Status = RequestPending
	}
	created := c.requests.Append(func(items []Request) Request {
		r.ID = nextIntID(items, func(x Request) int { return x.ID })
		return r
	})
	c.persist(keyRequests, c.requests.List())
	c.record("Access request submitted", created.Material, ActivityAuthorization)
	return created
}

// UpdateRequest shallow-merges patch into the request with the given id.
func (c *catalog) UpdateRequest(id int, patch RequestPatch) error {
	if !c.requests.Update(id, patch.apply) {
		return c.missing("request", strconv.Itoa(id))
	}
	c.persist(keyRequests, c.requests.List())
	return nil
}

// Approve marks the request with the given id as approved.
func (c *catalog) Approve(id int) error {
	return c.decide(id, RequestApproved, "Access request approved")
}

// Deny marks the request with the given id as denied.
func (c *catalog) Deny(id int) error {
	return c.decide(id, RequestDenied, "Access request denied")
}

func (c *catalog) decide(id int, status RequestStatus, action string) error {
	var material string
	ok := c.requests.Update(id, func(r Request) Request {
		r.Status = status
		material = r.Material
		return r
	})
	if !ok {
		return c.missing("request", strconv.Itoa(id))
	}
	c.persist(keyRequests, c.requests.List())
	c.record(action, material, ActivityAuthorization)
	return nil
}

// LogActivity appends an audit entry with the next id and the current time,
// persists the log, and returns the created entry.
func (c *catalog) LogActivity(action, item, user string, typ ActivityType) Activity {
	return c.appendActivity(Activity{
		Action: action,
		Item:   item,
		User:   user,
		Time:   utc.Now(),
		Type:   typ,
	})
}

// record writes a system-attributed audit entry for a catalog mutation.
func (c *catalog) record(action, item string, typ ActivityType) {
	c.appendActivity(Activity{
		Action: action,
		Item:   item,
		User:   "System",
		Time:   utc.Now(),
		Type:   typ,
	})
}

func (c *catalog) appendActivity(entry Activity) Activity {
	created := c.activity.Append(func(items []Activity) Activity {
		entry.ID = nextIntID(items, func(x Activity) int { return x.ID })
		return entry
	})
	c.persist(keyActivity, c.activity.List())
	return created
}

// missing resolves a no-match update or delete: a NotFoundError under
// WithStrictNotFound, a silent nil otherwise.
func (c *catalog) missing(resource, id string) error {
	if c.opts.strictNotFound {
		return &errors.NotFoundError{Resource: resource, ID: id}
	}
	c.logger.Debug().
		Str("resource", resource).
		Str("id", id).
		Msg("Mutation matched no entity")
	return nil
}

// nextIntID returns max(id)+1 over items, or 1 for an empty collection. The
// result is strictly greater than every id present.
func nextIntID[E any](items []E, id func(E) int) int {
	next := 1
	for _, item := range items {
		if id(item) >= next {
			next = id(item) + 1
		}
	}
	return next
}

// maxNumericID returns the largest parseable material id, ignoring ids that
// are not numeric strings.
func maxNumericID(items []Material) int {
	max := 0
	for _, m := range items {
		if n, err := strconv.Atoi(m.ID); err == nil && n > max {
			max = n
		}
	}
	return max
}
