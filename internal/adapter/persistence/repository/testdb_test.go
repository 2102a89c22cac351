package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with every live and
// archive table. A single connection keeps the whole test on one database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&jobModel{},
		&customerModel{},
		&equipmentModel{},
		&jobNoteModel{},
		&jobChargeModel{},
		&jobHourModel{},
		&jobPartModel{},
		&jobPhotoModel{},
		&jobEquipmentModel{},
		&pricingPresetModel{},
		&completedJobModel{},
		&completedJobNoteModel{},
		&completedJobChargeModel{},
		&completedJobHourModel{},
		&completedJobPartModel{},
		&completedJobPhotoModel{},
		&completedJobEquipmentModel{},
	))
	return db
}

type seededJob struct {
	OrgID      string
	JobID      string
	CustomerID string
	BoilerID   string
	PumpID     string
	TankID     string
	NoteIDs    []string
}

// seedJob stores a Service job with 2 notes, 3 charges, 1 hour entry,
// 2 parts, 1 photo and 3 linked equipment items. Boiler and pump carry a
// service interval, the tank does not.
func seedJob(t *testing.T, db *gorm.DB, orgID string) seededJob {
	t.Helper()
	base := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC)
	at := func(minutes int) time.Time { return base.Add(time.Duration(minutes) * time.Minute) }
	six, twelve := 6, 12

	s := seededJob{
		OrgID:      orgID,
		JobID:      uuid.NewString(),
		CustomerID: uuid.NewString(),
		BoilerID:   uuid.NewString(),
		PumpID:     uuid.NewString(),
		TankID:     uuid.NewString(),
		NoteIDs:    []string{uuid.NewString(), uuid.NewString()},
	}

	require.NoError(t, db.Create(&customerModel{ID: s.CustomerID, OrgID: orgID, Name: "Acme Heating"}).Error)
	require.NoError(t, db.Create(&[]equipmentModel{
		{ID: s.BoilerID, OrgID: orgID, CustomerID: s.CustomerID, Name: "Boiler", ServiceIntervalMonths: &six},
		{ID: s.PumpID, OrgID: orgID, CustomerID: s.CustomerID, Name: "Pump", ServiceIntervalMonths: &twelve},
		{ID: s.TankID, OrgID: orgID, CustomerID: s.CustomerID, Name: "Tank"},
	}).Error)
	require.NoError(t, db.Create(&jobModel{
		ID:          s.JobID,
		OrgID:       orgID,
		CustomerID:  s.CustomerID,
		Title:       "Annual boiler service",
		Description: "Service every unit on site",
		JobType:     "Service",
		Status:      "in_progress",
		Notes:       "key under the mat",
		CreatedBy:   "dispatcher-1",
		CreatedAt:   base,
	}).Error)

	require.NoError(t, db.Create(&[]jobNoteModel{
		{ID: s.NoteIDs[0], JobID: s.JobID, OrgID: orgID, Text: "arrived", CreatedAt: at(1)},
		{ID: s.NoteIDs[1], JobID: s.JobID, OrgID: orgID, Text: "finished", CreatedAt: at(2)},
	}).Error)
	require.NoError(t, db.Create(&[]jobChargeModel{
		{ID: uuid.NewString(), JobID: s.JobID, OrgID: orgID, Kind: "fee", Description: "Call-out fee", Quantity: 1, UnitPrice: 50, Total: 50, CreatedAt: at(3)},
		{ID: uuid.NewString(), JobID: s.JobID, OrgID: orgID, Kind: "fee", Description: "Disposal", Quantity: 2, UnitPrice: 10, Total: 20, CreatedAt: at(4)},
		{ID: uuid.NewString(), JobID: s.JobID, OrgID: orgID, Kind: "discount", Description: "Loyalty", Quantity: 1, UnitPrice: -5, Total: -5, CreatedAt: at(5)},
	}).Error)
	require.NoError(t, db.Create(&jobHourModel{ID: uuid.NewString(), JobID: s.JobID, OrgID: orgID, Hours: 2.5, Description: "Labor", CreatedAt: at(6)}).Error)
	require.NoError(t, db.Create(&[]jobPartModel{
		{ID: uuid.NewString(), JobID: s.JobID, OrgID: orgID, PartName: "Filter", Quantity: 2, CreatedAt: at(7)},
		{ID: uuid.NewString(), JobID: s.JobID, OrgID: orgID, PartName: "Gasket", Quantity: 1, CreatedAt: at(8)},
	}).Error)
	require.NoError(t, db.Create(&jobPhotoModel{ID: uuid.NewString(), JobID: s.JobID, OrgID: orgID, StorageKey: "photos/" + s.JobID + "/1.jpg", CreatedAt: at(9)}).Error)
	require.NoError(t, db.Create(&[]jobEquipmentModel{
		{ID: uuid.NewString(), JobID: s.JobID, OrgID: orgID, EquipmentID: s.BoilerID, CreatedAt: at(10)},
		{ID: uuid.NewString(), JobID: s.JobID, OrgID: orgID, EquipmentID: s.PumpID, CreatedAt: at(11)},
		{ID: uuid.NewString(), JobID: s.JobID, OrgID: orgID, EquipmentID: s.TankID, CreatedAt: at(12)},
	}).Error)
	return s
}

func countRows(t *testing.T, db *gorm.DB, model any, where string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where(where, args...).Count(&n).Error)
	return n
}
