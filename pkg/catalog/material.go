package catalog

// AccessLevel controls whether a material is freely viewable or requires an
// approved access request.
type AccessLevel string

// Access levels.
const (
	AccessPublic     AccessLevel = "public"
	AccessRestricted AccessLevel = "restricted"
)

// Valid reports whether the access level is a known value.
func (a AccessLevel) Valid() bool {
	return a == AccessPublic || a == AccessRestricted
}

// Material is a single archived item: a yearbook, photograph set, publication,
// or document.
//
// ID is a numeric string assigned by the catalog. Category is a soft reference
// to Category.Name; renaming or deleting a category does not touch existing
// materials. Date is kept as entered ("2006-01-02" in practice) and parsed
// only when sorting.
type Material struct {
	ID          string      `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description" yaml:"description"`
	Category    string      `json:"category" yaml:"category"`
	Date        string      `json:"date" yaml:"date"`
	AccessLevel AccessLevel `json:"accessLevel" yaml:"access_level"`
	Views       int         `json:"views" yaml:"views"`
	Thumbnail   string      `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Subjects    []string    `json:"subjects,omitempty" yaml:"subjects,omitempty"`
}

// MaterialPatch is a partial update for a Material. Nil fields are left
// untouched; the id can never be patched.
type MaterialPatch struct {
	Title       *string      `json:"title,omitempty"`
	Description *string      `json:"description,omitempty"`
	Category    *string      `json:"category,omitempty"`
	Date        *string      `json:"date,omitempty"`
	AccessLevel *AccessLevel `json:"accessLevel,omitempty"`
	Views       *int         `json:"views,omitempty"`
	Thumbnail   *string      `json:"thumbnail,omitempty"`
	Subjects    *[]string    `json:"subjects,omitempty"`
}

// apply merges the patch into m and returns the result.
func (p MaterialPatch) apply(m Material) Material {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.Date != nil {
		m.Date = *p.Date
	}
	if p.AccessLevel != nil {
		m.AccessLevel = *p.AccessLevel
	}
	if p.Views != nil {
		m.Views = *p.Views
	}
	if p.Thumbnail != nil {
		m.Thumbnail = *p.Thumbnail
	}
	if p.Subjects != nil {
		m.Subjects = append([]string(nil), (*p.Subjects)...)
	}
	return m
}

// Materials is an ordered, concurrency-safe collection of materials.
type Materials = Collection[string, Material]

// NewMaterials creates an empty materials collection.
func NewMaterials() *Materials {
	return NewCollection[string](func(m Material) string { return m.ID })
}
