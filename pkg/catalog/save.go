package catalog

import (
	"github.com/goccy/go-yaml"
)

// Save rewrites every storage key from the current collections.
func (c *catalog) Save() error {
	for _, step := range []struct {
		key   string
		value any
	}{
		{keyMaterials, c.materials.List()},
		{keyUsers, c.users.List()},
		{keyCategories, c.categories.List()},
		{keyRequests, c.requests.List()},
		{keyActivity, c.activity.List()},
	} {
		data, err := yaml.Marshal(step.value)
		if err != nil {
			return err
		}
		if err := c.opts.store.Save(step.key, data); err != nil {
			return err
		}
	}
	return nil
}

// persist mirrors one collection to the store. CRUD callers never see
// persistence failures; they are logged and the in-memory state stays
// authoritative.
func (c *catalog) persist(key string, value any) {
	data, err := yaml.Marshal(value)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("Serializing collection failed")
		return
	}
	if err := c.opts.store.Save(key, data); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("Persisting collection failed")
	}
}
