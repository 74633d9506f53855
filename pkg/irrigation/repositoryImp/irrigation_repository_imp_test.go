package repositoryImp

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"agribot/entities"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.IrrigationRecord{}))
	return db
}

func TestListMonthScoping(t *testing.T) {
	db := testDB(t)
	r := New(db)

	seed := []entities.IrrigationRecord{
		{UserID: "u1", Date: "2024-03-10", TimeSlot: "6:00-8:00", DurationMinutes: 120, Status: "scheduled"},
		{UserID: "u1", Date: "2024-03-28", TimeSlot: "6:00-8:00", DurationMinutes: 60, Status: "completed"},
		{UserID: "u1", Date: "2024-04-01", TimeSlot: "6:00-8:00", DurationMinutes: 60, Status: "scheduled"},
		{UserID: "u2", Date: "2024-03-10", TimeSlot: "6:00-8:00", DurationMinutes: 60, Status: "scheduled"},
	}
	for i := range seed {
		require.NoError(t, r.Create(&seed[i]))
	}

	out, err := r.ListMonth("u1", 2024, time.March)
	require.NoError(t, err)
	assert.Len(t, out, 2, "april record and other users excluded")
	assert.Equal(t, "2024-03-10", out[0].Date)
	assert.Equal(t, "2024-03-28", out[1].Date)

	all, err := r.ListAll("u1")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCreateAssignsIdentity(t *testing.T) {
	db := testDB(t)
	r := New(db)

	rec := &entities.IrrigationRecord{UserID: "u1", Date: "2024-03-15", TimeSlot: "17:00-18:00", DurationMinutes: 45, Status: "scheduled"}
	require.NoError(t, r.Create(rec))
	assert.NotZero(t, rec.RecordID, "identity is backend-assigned on creation")
}

func TestPatchStatus(t *testing.T) {
	db := testDB(t)
	r := New(db)

	rec := &entities.IrrigationRecord{UserID: "u1", Date: "2024-03-15", TimeSlot: "17:00-18:00", DurationMinutes: 45, Status: "scheduled"}
	require.NoError(t, r.Create(rec))

	require.NoError(t, r.PatchStatus(rec.RecordID, "u1", "completed"))
	out, err := r.ListMonth("u1", 2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, "completed", out[0].Status)

	// wrong owner must not flip someone else's record
	assert.Error(t, r.PatchStatus(rec.RecordID, "u2", "completed"))
}
