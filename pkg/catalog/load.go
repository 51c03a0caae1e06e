package catalog

import (
	"github.com/goccy/go-yaml"
)

// Load replaces the in-memory collections from the store. Absent keys and
// corrupt documents fall back to the seed lists (or empty collections under
// WithoutSeed); the fallback is silent toward the caller, deserialization
// problems are only logged.
func (c *catalog) Load() error {
	loadCollection(c, keyMaterials, c.materials, seedMaterials)
	loadCollection(c, keyUsers, c.users, seedUsers)
	loadCollection(c, keyCategories, c.categories, seedCategories)
	loadCollection(c, keyRequests, c.requests, seedRequests)
	loadCollection(c, keyActivity, c.activity, seedActivity)

	c.materialSeq = maxNumericID(c.materials.List())
	return nil
}

// loadCollection fills col from the stored document under key, or from seed.
// A free function because methods cannot carry type parameters.
func loadCollection[I comparable, E any](c *catalog, key string, col *Collection[I, E], seed func() []E) {
	data, ok, err := c.opts.store.Load(key)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("Loading collection failed, using seed data")
	}

	if err == nil && ok {
		var items []E
		if uerr := yaml.Unmarshal(data, &items); uerr == nil {
			col.Replace(items)
			return
		} else {
			c.logger.Warn().Err(uerr).Str("key", key).Msg("Stored collection is corrupt, using seed data")
		}
	}

	if c.opts.seed {
		col.Replace(seed())
	} else {
		col.Clear()
	}
}
