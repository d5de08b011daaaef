package search

import (
	"context"
	"testing"

	"praxis/app/models"
	"praxis/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAdapterDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := newTestDB(t)
	require.NoError(t, db.AutoMigrate(
		&models.Case{},
		&models.Client{},
		&models.User{},
		&models.Expense{},
	))
	return db
}

func TestRegistryResolveDefaultsToAll(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&stubAdapter{entity: EntityCases})
	registry.Register(&stubAdapter{entity: EntityClients})

	assert.Equal(t, []EntityType{EntityCases, EntityClients}, registry.Resolve(nil))
}

func TestRegistryResolveDropsUnknownAndKeepsOrder(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&stubAdapter{entity: EntityCases})
	registry.Register(&stubAdapter{entity: EntityClients})
	registry.Register(&stubAdapter{entity: EntityTasks})

	resolved := registry.Resolve([]EntityType{EntityTasks, "widgets", EntityCases})
	assert.Equal(t, []EntityType{EntityCases, EntityTasks}, resolved)
}

func TestRegisterAdaptersCoversAllEntityTypes(t *testing.T) {
	registry := RegisterAdapters(newAdapterDB(t), logger.NewNopLogger())
	assert.Equal(t, AllEntityTypes, registry.Types())
}

func TestCaseAdapterRelevanceWeighting(t *testing.T) {
	db := newAdapterDB(t)

	require.NoError(t, db.Create(&models.Case{Number: "C-1", Title: "merger"}).Error)
	require.NoError(t, db.Create(&models.Case{Number: "C-2", Title: "merger agreement review"}).Error)
	require.NoError(t, db.Create(&models.Case{Number: "C-3", Title: "lease renewal", Description: "pending merger terms"}).Error)
	require.NoError(t, db.Create(&models.Case{Number: "C-4", Title: "unrelated"}).Error)

	adapter := &CaseAdapter{DB: db, Logger: logger.NewNopLogger()}
	results, err := adapter.Search(context.Background(), "merger", AdapterOptions{Limit: 100})
	require.NoError(t, err)
	require.Len(t, results, 3)

	// exact title > title prefix > description substring
	assert.Equal(t, "merger", results[0].Title)
	assert.Equal(t, "merger agreement review", results[1].Title)
	assert.Equal(t, "lease renewal", results[2].Title)
	assert.Greater(t, results[0].Relevance, results[1].Relevance)
	assert.Greater(t, results[1].Relevance, results[2].Relevance)
}

func TestCaseAdapterArchivedExclusion(t *testing.T) {
	db := newAdapterDB(t)

	require.NoError(t, db.Create(&models.Case{Number: "C-1", Title: "merger live", Status: "open"}).Error)
	require.NoError(t, db.Create(&models.Case{Number: "C-2", Title: "merger gone", Status: "deleted"}).Error)

	adapter := &CaseAdapter{DB: db, Logger: logger.NewNopLogger()}

	results, err := adapter.Search(context.Background(), "merger", AdapterOptions{Limit: 100})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "merger live", results[0].Title)

	all, err := adapter.Search(context.Background(), "merger", AdapterOptions{Limit: 100, IncludeArchived: true})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCaseAdapterOwnershipScope(t *testing.T) {
	db := newAdapterDB(t)

	require.NoError(t, db.Create(&models.Case{Number: "C-1", Title: "merger mine", CreatedById: 5}).Error)
	require.NoError(t, db.Create(&models.Case{Number: "C-2", Title: "merger assigned", AssigneeId: 5}).Error)
	require.NoError(t, db.Create(&models.Case{Number: "C-3", Title: "merger other", CreatedById: 9}).Error)

	adapter := &CaseAdapter{DB: db, Logger: logger.NewNopLogger()}
	results, err := adapter.Search(context.Background(), "merger", AdapterOptions{Limit: 100, UserId: 5})
	require.NoError(t, err)

	require.Len(t, results, 2)
	titles := []string{results[0].Title, results[1].Title}
	assert.Contains(t, titles, "merger mine")
	assert.Contains(t, titles, "merger assigned")
}

func TestCaseAdapterStatusFilter(t *testing.T) {
	db := newAdapterDB(t)

	require.NoError(t, db.Create(&models.Case{Number: "C-1", Title: "merger one", Status: "open"}).Error)
	require.NoError(t, db.Create(&models.Case{Number: "C-2", Title: "merger two", Status: "closed"}).Error)

	adapter := &CaseAdapter{DB: db, Logger: logger.NewNopLogger()}
	results, err := adapter.Search(context.Background(), "merger", AdapterOptions{
		Limit:   100,
		Filters: map[string]any{"status": "closed"},
	})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "merger two", results[0].Title)
}

func TestCaseAdapterDenormalizesClientName(t *testing.T) {
	db := newAdapterDB(t)

	client := &models.Client{CompanyName: "Acme Holdings", IsActive: true}
	require.NoError(t, db.Create(client).Error)
	require.NoError(t, db.Create(&models.Case{Number: "C-1", Title: "merger", ClientId: client.Id}).Error)

	adapter := &CaseAdapter{DB: db, Logger: logger.NewNopLogger()}
	results, err := adapter.Search(context.Background(), "merger", AdapterOptions{Limit: 100})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "Acme Holdings", results[0].Metadata["client_name"])
	assert.Equal(t, "/app/cases/1", results[0].URL)
}

func TestClientAdapterSkipsInactive(t *testing.T) {
	db := newAdapterDB(t)

	require.NoError(t, db.Create(&models.Client{CompanyName: "Acme Active", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Client{CompanyName: "Acme Dormant", IsActive: false}).Error)

	adapter := &ClientAdapter{DB: db, Logger: logger.NewNopLogger()}

	results, err := adapter.Search(context.Background(), "acme", AdapterOptions{Limit: 100})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Acme Active", results[0].Title)

	all, err := adapter.Search(context.Background(), "acme", AdapterOptions{Limit: 100, IncludeArchived: true})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestExpenseAdapterIncludeArchivedCoversSoftDeleted(t *testing.T) {
	db := newAdapterDB(t)

	require.NoError(t, db.Create(&models.Expense{Description: "Filing fee current", Category: "filing_fee"}).Error)
	deleted := &models.Expense{Description: "Filing fee closed matter", Category: "filing_fee"}
	require.NoError(t, db.Create(deleted).Error)
	require.NoError(t, db.Delete(deleted).Error)

	adapter := &ExpenseAdapter{DB: db, Logger: logger.NewNopLogger()}

	active, err := adapter.Search(context.Background(), "filing", AdapterOptions{Limit: 100})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Filing fee current", active[0].Title)

	all, err := adapter.Search(context.Background(), "filing", AdapterOptions{Limit: 100, IncludeArchived: true})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestInactiveFlagSurvivesCreate(t *testing.T) {
	db := newAdapterDB(t)

	require.NoError(t, db.Create(&models.Client{CompanyName: "Dormant Co", IsActive: false}).Error)
	require.NoError(t, db.Create(&models.User{FirstName: "Lee", LastName: "Ng",
		Username: "lng", Email: "lng@example.com", Role: "staff", IsActive: false}).Error)

	var client models.Client
	require.NoError(t, db.First(&client, "company_name = ?", "Dormant Co").Error)
	assert.False(t, client.IsActive)

	var user models.User
	require.NoError(t, db.First(&user, "username = ?", "lng").Error)
	assert.False(t, user.IsActive)
}

func TestUserAdapterIgnoresOwnershipScope(t *testing.T) {
	db := newAdapterDB(t)

	require.NoError(t, db.Create(&models.User{FirstName: "Dana", LastName: "Reyes",
		Username: "dreyes", Email: "dreyes@example.com", Role: "attorney", IsActive: true}).Error)

	adapter := &UserAdapter{DB: db, Logger: logger.NewNopLogger()}

	// Directory results are never restricted to the caller's own records.
	results, err := adapter.Search(context.Background(), "dana", AdapterOptions{Limit: 100, UserId: 42})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestAdapterRespectsFetchCap(t *testing.T) {
	db := newAdapterDB(t)

	for i := 0; i < 15; i++ {
		require.NoError(t, db.Create(&models.Case{
			Number: string(rune('A'+i)) + "-merger",
			Title:  "merger matter",
		}).Error)
	}

	adapter := &CaseAdapter{DB: db, Logger: logger.NewNopLogger()}
	results, err := adapter.Search(context.Background(), "merger", AdapterOptions{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, results, 10)
}
