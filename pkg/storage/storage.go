// Package storage defines the durable key-value persistence boundary used by
// the catalog and session layers. Each entity collection is serialized as a
// whole and written under a fixed key on every mutation; at startup each key
// is read back or the caller falls back to its seed data.
//
// Implementations live in the files and memory subpackages.
package storage

// Store is a durable key-value store for serialized collections.
//
// Load returns the stored bytes for key and whether the key exists. A missing
// key is not an error. Save overwrites the value for key. Delete removes the
// key; deleting an absent key is a no-op.
type Store interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, data []byte) error
	Delete(key string) error
}
