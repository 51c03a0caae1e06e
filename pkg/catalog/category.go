package catalog

// Category groups materials by name. Materials reference a category by name
// only, so Count is informational and may drift from the real number of
// materials in the collection; Stats computes live counts instead.
type Category struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Count       int    `json:"count" yaml:"count"`
	Items       string `json:"items" yaml:"items"`
	LastUpdated string `json:"lastUpdated" yaml:"last_updated"`
}

// CategoryPatch is a partial update for a Category.
type CategoryPatch struct {
	Name        *string `json:"name,omitempty"`
	Count       *int    `json:"count,omitempty"`
	Items       *string `json:"items,omitempty"`
	LastUpdated *string `json:"lastUpdated,omitempty"`
}

// apply merges the patch into c and returns the result.
func (p CategoryPatch) apply(c Category) Category {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Count != nil {
		c.Count = *p.Count
	}
	if p.Items != nil {
		c.Items = *p.Items
	}
	if p.LastUpdated != nil {
		c.LastUpdated = *p.LastUpdated
	}
	return c
}

// Categories is an ordered, concurrency-safe collection of categories.
type Categories = Collection[int, Category]

// NewCategories creates an empty categories collection.
func NewCategories() *Categories {
	return NewCollection[int](func(c Category) int { return c.ID })
}
