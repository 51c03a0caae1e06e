package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iarchive/iarchive/pkg/errors"
	"github.com/iarchive/iarchive/pkg/logging"
	"github.com/iarchive/iarchive/pkg/storage/memory"
)

func newTestCatalog(t *testing.T, opts ...Option) Catalog {
	t.Helper()
	opts = append([]Option{WithLogger(&logging.Nop)}, opts...)
	cat, err := New(opts...)
	require.NoError(t, err)
	return cat
}

func TestNewSeedsCollections(t *testing.T) {
	cat := newTestCatalog(t)

	assert.Equal(t, 8, cat.Materials().Len())
	assert.Equal(t, 5, cat.Users().Len())
	assert.Equal(t, 5, cat.Categories().Len())
	assert.Equal(t, 4, cat.Requests().Len())
	assert.Equal(t, 7, cat.Activity().Len())
}

func TestNewWithoutSeedStartsEmpty(t *testing.T) {
	cat := newTestCatalog(t, WithoutSeed())

	assert.Equal(t, 0, cat.Materials().Len())
	assert.Equal(t, 0, cat.Users().Len())
}

func TestAddUserAssignsMonotonicIDs(t *testing.T) {
	cat := newTestCatalog(t, WithoutSeed())

	first := cat.AddUser(User{Name: "A", Status: StatusActive})
	second := cat.AddUser(User{Name: "B", Status: StatusActive})

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	// Every new id is strictly greater than the current maximum.
	require.NoError(t, cat.DeleteUser(1))
	third := cat.AddUser(User{Name: "C", Status: StatusActive})
	assert.Equal(t, 3, third.ID)
}

func TestAddMaterialUsesDedicatedCounter(t *testing.T) {
	cat := newTestCatalog(t)

	created := cat.AddMaterial(Material{Title: "Class of 2024 Yearbook", Category: "Yearbooks", Date: "2024-12-15", AccessLevel: AccessPublic})
	assert.Equal(t, "9", created.ID)

	// Deleting the newest material does not recycle its id.
	require.NoError(t, cat.DeleteMaterial("9"))
	next := cat.AddMaterial(Material{Title: "Another", Category: "Documents", Date: "2024-01-01", AccessLevel: AccessPublic})
	assert.Equal(t, "10", next.ID)
}

func TestMaterialCounterSkipsUnparseableIDs(t *testing.T) {
	store := memory.New()
	require.NoError(t, store.Save("materials", []byte("- id: legacy-item\n  title: Odd One\n- id: \"5\"\n  title: Numbered\n")))

	cat := newTestCatalog(t, WithStore(store))

	created := cat.AddMaterial(Material{Title: "Fresh"})
	assert.Equal(t, "6", created.ID)
	assert.True(t, cat.Materials().Exists("legacy-item"))
}

func TestUpdatePreservesUnrelatedFields(t *testing.T) {
	cat := newTestCatalog(t)

	before, err := cat.Material("1")
	require.NoError(t, err)

	title := "Class of 2023 Yearbook (Revised)"
	require.NoError(t, cat.UpdateMaterial("1", MaterialPatch{Title: &title}))

	after, err := cat.Material("1")
	require.NoError(t, err)
	assert.Equal(t, title, after.Title)

	// Everything the patch didn't name is untouched.
	before.Title = title
	assert.Equal(t, before, after)
}

func TestUpdateUserPartial(t *testing.T) {
	cat := newTestCatalog(t)

	status := StatusInactive
	require.NoError(t, cat.UpdateUser(2, UserPatch{Status: &status}))

	u, err := cat.User(2)
	require.NoError(t, err)
	assert.Equal(t, StatusInactive, u.Status)
	assert.Equal(t, "Maria Santos", u.Name)
	assert.Equal(t, "maria@email.com", u.Email)
}

func TestPermissiveNotFoundIsSilent(t *testing.T) {
	cat := newTestCatalog(t)

	title := "x"
	assert.NoError(t, cat.UpdateMaterial("404", MaterialPatch{Title: &title}))
	assert.NoError(t, cat.DeleteMaterial("404"))
	assert.NoError(t, cat.UpdateUser(99, UserPatch{}))
	assert.NoError(t, cat.DeleteCategory(99))
	assert.Equal(t, 8, cat.Materials().Len())
}

func TestStrictNotFound(t *testing.T) {
	cat := newTestCatalog(t, WithStrictNotFound())

	title := "x"
	err := cat.UpdateMaterial("404", MaterialPatch{Title: &title})
	assert.True(t, errors.IsNotFound(err))

	err = cat.DeleteUser(99)
	assert.True(t, errors.IsNotFound(err))

	// Existing ids still work.
	assert.NoError(t, cat.UpdateMaterial("1", MaterialPatch{Title: &title}))
}

func TestDeleteIdempotence(t *testing.T) {
	cat := newTestCatalog(t)

	require.NoError(t, cat.DeleteMaterial("3"))
	lenAfterFirst := cat.Materials().Len()
	require.NoError(t, cat.DeleteMaterial("3"))

	assert.Equal(t, lenAfterFirst, cat.Materials().Len())
	assert.False(t, cat.Materials().Exists("3"))
}

func TestRecordView(t *testing.T) {
	cat := newTestCatalog(t)

	before, err := cat.Material("2")
	require.NoError(t, err)

	require.NoError(t, cat.RecordView("2"))
	require.NoError(t, cat.RecordView("2"))

	after, err := cat.Material("2")
	require.NoError(t, err)
	assert.Equal(t, before.Views+2, after.Views)
}

func TestApproveAndDenyRequests(t *testing.T) {
	cat := newTestCatalog(t)

	require.NoError(t, cat.Approve(1))
	r, err := cat.Request(1)
	require.NoError(t, err)
	assert.Equal(t, RequestApproved, r.Status)

	require.NoError(t, cat.Deny(2))
	r, err = cat.Request(2)
	require.NoError(t, err)
	assert.Equal(t, RequestDenied, r.Status)

	// Decisions land in the audit trail.
	entries := cat.Activity().List()
	last := entries[len(entries)-1]
	assert.Equal(t, "Access request denied", last.Action)
	assert.Equal(t, ActivityAuthorization, last.Type)
}

func TestAddRequestDefaultsToPending(t *testing.T) {
	cat := newTestCatalog(t)

	created := cat.AddRequest(Request{User: "Juan Dela Cruz", Email: "juan@email.com", Material: "Founding Charter Documents", Date: "2024-02-01", Purpose: "Coursework."})
	assert.Equal(t, 5, created.ID)
	assert.Equal(t, RequestPending, created.Status)
}

func TestMutationsRecordActivity(t *testing.T) {
	cat := newTestCatalog(t, WithoutSeed())

	cat.AddMaterial(Material{Title: "Oral History Tapes", Category: "Memorabilia", Date: "2024-03-01", AccessLevel: AccessPublic})

	entries := cat.Activity().List()
	require.Len(t, entries, 1)
	assert.Equal(t, "New material uploaded", entries[0].Action)
	assert.Equal(t, "Oral History Tapes", entries[0].Item)
	assert.Equal(t, ActivityCreation, entries[0].Type)
	assert.Equal(t, "System", entries[0].User)
}

func TestLogActivity(t *testing.T) {
	cat := newTestCatalog(t, WithoutSeed())

	entry := cat.LogActivity("Material downloaded", "Research Journal Volume 15", "Researcher", ActivityInteraction)
	assert.Equal(t, 1, entry.ID)
	assert.False(t, entry.Time.IsZero())
	assert.Equal(t, 1, cat.Activity().Len())
}

func TestStatsDerivedFromLiveCollections(t *testing.T) {
	cat := newTestCatalog(t)

	stats := cat.Stats()
	assert.Equal(t, 8, stats.TotalMaterials)
	assert.Equal(t, 2, stats.RestrictedMaterials)
	assert.Equal(t, 6, stats.PublicMaterials)
	assert.Equal(t, 245+120+89+34+156+92+67+41, stats.TotalViews)
	assert.Equal(t, 5, stats.TotalUsers)
	assert.Equal(t, 4, stats.ActiveUsers)
	assert.Equal(t, 2, stats.PendingRequests)

	// Live counts, not the stored Category.Count values.
	assert.Equal(t, map[string]int{
		"Yearbooks":    2,
		"Photographs":  2,
		"Publications": 2,
		"Documents":    2,
	}, stats.MaterialsByCategory)

	// The informational counter is left alone.
	yearbooks, err := cat.Category(1)
	require.NoError(t, err)
	assert.Equal(t, 45, yearbooks.Count)
}

func TestCategoryRenameDoesNotCascade(t *testing.T) {
	cat := newTestCatalog(t)

	name := "Annuals"
	require.NoError(t, cat.UpdateCategory(1, CategoryPatch{Name: &name}))

	m, err := cat.Material("1")
	require.NoError(t, err)
	assert.Equal(t, "Yearbooks", m.Category, "materials keep the old category name")
}
