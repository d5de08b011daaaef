package cases

import (
	"testing"

	"praxis/app/models"
	"praxis/core/emitter"
	"praxis/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *CaseService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Case{}, &models.Client{}, &models.User{}))

	return NewCaseService(db, emitter.New(), logger.NewNopLogger())
}

func TestCreateCaseDefaultsToOpen(t *testing.T) {
	svc := newTestService(t)

	item, err := svc.Create(&models.CreateCaseRequest{
		Number:   "2026-001",
		Title:    "Acme merger",
		ClientId: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "open", item.Status)
	assert.Equal(t, "2026-001", item.Number)
}

func TestUpdateCaseLeavesUnsetFieldsAlone(t *testing.T) {
	svc := newTestService(t)

	item, err := svc.Create(&models.CreateCaseRequest{
		Number:   "2026-002",
		Title:    "Lease dispute",
		Priority: "high",
		ClientId: 1,
	})
	require.NoError(t, err)

	updated, err := svc.Update(item.Id, &models.UpdateCaseRequest{Status: "closed"})
	require.NoError(t, err)

	assert.Equal(t, "closed", updated.Status)
	assert.Equal(t, "Lease dispute", updated.Title)
	assert.Equal(t, "high", updated.Priority)
}

func TestDeleteCaseSoftDeletes(t *testing.T) {
	svc := newTestService(t)

	item, err := svc.Create(&models.CreateCaseRequest{
		Number:   "2026-003",
		Title:    "Estate planning",
		ClientId: 1,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(item.Id))

	_, err = svc.GetById(item.Id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, svc.DB.Unscoped().Model(&models.Case{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "row is retained for audit")
}

func TestGetAllPaginates(t *testing.T) {
	svc := newTestService(t)

	for i := 0; i < 25; i++ {
		_, err := svc.Create(&models.CreateCaseRequest{
			Number:   "2026-1" + string(rune('a'+i)),
			Title:    "Matter",
			ClientId: 1,
		})
		require.NoError(t, err)
	}

	page := 2
	limit := 10
	result, err := svc.GetAll(&page, &limit, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 25, result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	items, ok := result.Data.([]*models.Case)
	require.True(t, ok)
	assert.Len(t, items, 10)
}
