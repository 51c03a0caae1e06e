package catalog

// Reader provides read-only access to catalog data.
type Reader interface {
	// Full collections, insertion order
	Users() *Users
	Materials() *Materials
	Categories() *Categories
	Requests() *Requests
	Activity() *ActivityLog

	// Single-entity lookup by id
	User(id int) (User, error)
	Material(id string) (Material, error)
	Category(id int) (Category, error)
	Request(id int) (Request, error)

	// Derived dashboard view (live counts, never stored)
	Stats() Stats
}

// Writer provides mutation operations for catalog data. Add operations assign
// the new entity's id and return the created entity; update and delete on a
// missing id are silent no-ops unless the catalog was built with
// WithStrictNotFound.
type Writer interface {
	AddUser(u User) User
	UpdateUser(id int, patch UserPatch) error
	DeleteUser(id int) error

	AddMaterial(m Material) Material
	UpdateMaterial(id string, patch MaterialPatch) error
	DeleteMaterial(id string) error
	RecordView(id string) error

	AddCategory(c Category) Category
	UpdateCategory(id int, patch CategoryPatch) error
	DeleteCategory(id int) error

	AddRequest(r Request) Request
	UpdateRequest(id int, patch RequestPatch) error
	Approve(id int) error
	Deny(id int) error

	LogActivity(action, item, user string, typ ActivityType) Activity
}

// Persistence controls the storage mirror. Load replaces the in-memory
// collections from the store, falling back to seed data for absent or corrupt
// keys; Save rewrites every key from the current collections.
type Persistence interface {
	Load() error
	Save() error
}

// Catalog is the complete interface combining all catalog capabilities.
type Catalog interface {
	Reader
	Writer
	Persistence
}
