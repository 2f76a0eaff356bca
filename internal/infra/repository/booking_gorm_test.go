package repository

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/clinicore/booking-api/internal/httperr"
	"github.com/clinicore/booking-api/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	// In-memory sqlite is per-connection; keep the pool at one.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Slot{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func futureSlot(t *testing.T, db *gorm.DB, offset time.Duration) *models.Slot {
	t.Helper()

	start := time.Now().Add(offset).Truncate(time.Minute)
	slot := models.Slot{StartAt: start, EndAt: start.Add(30 * time.Minute)}
	if err := db.Create(&slot).Error; err != nil {
		t.Fatalf("create slot: %v", err)
	}
	return &slot
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := models.User{Name: "Test", Email: email, PasswordHash: "x", Role: "patient"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}

func TestInsertSlotsIfAbsent_SkipsExistingWindows(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	start := time.Date(2030, time.June, 3, 9, 0, 0, 0, time.UTC)
	candidates := []models.Slot{
		{StartAt: start, EndAt: start.Add(30 * time.Minute)},
		{StartAt: start.Add(30 * time.Minute), EndAt: start.Add(60 * time.Minute)},
	}

	inserted, err := repo.InsertSlotsIfAbsent(ctx, candidates)
	if err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if inserted != 2 {
		t.Fatalf("first insert: got %d rows, want 2", inserted)
	}

	// The same candidate set again: every window already exists.
	again := []models.Slot{
		{StartAt: start, EndAt: start.Add(30 * time.Minute)},
		{StartAt: start.Add(30 * time.Minute), EndAt: start.Add(60 * time.Minute)},
	}
	inserted, err = repo.InsertSlotsIfAbsent(ctx, again)
	if err != nil {
		t.Fatalf("second insert: %v", err)
	}
	if inserted != 0 {
		t.Fatalf("second insert: got %d rows, want 0", inserted)
	}

	var count int64
	if err := db.Model(&models.Slot{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("slot rows: got %d, want 2", count)
	}
}

func TestClaimSlotAndCreateBooking_Success(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "p1@example.com")
	slot := futureSlot(t, db, time.Hour)

	b := &models.Booking{UserID: user.ID, SlotID: slot.ID, Status: "confirmed"}
	if err := repo.ClaimSlotAndCreateBooking(ctx, b, time.Now()); err != nil {
		t.Fatalf("claim: %v", err)
	}

	if b.ID == 0 {
		t.Fatal("booking id not populated")
	}
	if !b.Slot.Booked {
		t.Fatal("returned slot not marked booked")
	}

	var stored models.Slot
	if err := db.First(&stored, slot.ID).Error; err != nil {
		t.Fatalf("reload slot: %v", err)
	}
	if !stored.Booked {
		t.Fatal("persisted slot not marked booked")
	}
}

func TestClaimSlotAndCreateBooking_SecondClaimLoses(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	u1 := createUser(t, db, "p1@example.com")
	u2 := createUser(t, db, "p2@example.com")
	slot := futureSlot(t, db, time.Hour)

	first := &models.Booking{UserID: u1.ID, SlotID: slot.ID, Status: "confirmed"}
	if err := repo.ClaimSlotAndCreateBooking(ctx, first, time.Now()); err != nil {
		t.Fatalf("first claim: %v", err)
	}

	second := &models.Booking{UserID: u2.ID, SlotID: slot.ID, Status: "confirmed"}
	err := repo.ClaimSlotAndCreateBooking(ctx, second, time.Now())
	if !httperr.IsBusiness(err, "slot_taken") {
		t.Fatalf("second claim: got %v, want slot_taken", err)
	}

	var count int64
	if err := db.Model(&models.Booking{}).Where("slot_id = ?", slot.ID).Count(&count).Error; err != nil {
		t.Fatalf("count bookings: %v", err)
	}
	if count != 1 {
		t.Fatalf("bookings for slot: got %d, want 1", count)
	}
}

func TestClaimSlotAndCreateBooking_PastSlot(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	user := createUser(t, db, "p1@example.com")
	slot := futureSlot(t, db, -time.Hour)

	b := &models.Booking{UserID: user.ID, SlotID: slot.ID, Status: "confirmed"}
	err := repo.ClaimSlotAndCreateBooking(ctx, b, time.Now())
	if !httperr.IsBusiness(err, "slot_in_past") {
		t.Fatalf("got %v, want slot_in_past", err)
	}

	var stored models.Slot
	if err := db.First(&stored, slot.ID).Error; err != nil {
		t.Fatalf("reload slot: %v", err)
	}
	if stored.Booked {
		t.Fatal("past slot must stay unbooked")
	}
}

func TestClaimSlotAndCreateBooking_MissingSlot(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingGormRepository(db)

	user := createUser(t, db, "p1@example.com")

	b := &models.Booking{UserID: user.ID, SlotID: 9999, Status: "confirmed"}
	err := repo.ClaimSlotAndCreateBooking(context.Background(), b, time.Now())
	if !httperr.IsBusiness(err, "slot_not_found") {
		t.Fatalf("got %v, want slot_not_found", err)
	}
}

// The unique index on bookings.slot_id must hold even if the booked flag
// is somehow wrong: reset the flag by hand, claim again, and the insert
// still fails while the transaction rolls the flag flip back.
func TestClaimSlotAndCreateBooking_UniqueSlotReferenceBackstop(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	u1 := createUser(t, db, "p1@example.com")
	u2 := createUser(t, db, "p2@example.com")
	slot := futureSlot(t, db, time.Hour)

	first := &models.Booking{UserID: u1.ID, SlotID: slot.ID, Status: "confirmed"}
	if err := repo.ClaimSlotAndCreateBooking(ctx, first, time.Now()); err != nil {
		t.Fatalf("first claim: %v", err)
	}

	if err := db.Model(&models.Slot{}).Where("id = ?", slot.ID).Update("booked", false).Error; err != nil {
		t.Fatalf("reset flag: %v", err)
	}

	second := &models.Booking{UserID: u2.ID, SlotID: slot.ID, Status: "confirmed"}
	err := repo.ClaimSlotAndCreateBooking(ctx, second, time.Now())
	if !httperr.IsBusiness(err, "slot_taken") {
		t.Fatalf("got %v, want slot_taken from the unique index", err)
	}

	var stored models.Slot
	if err := db.First(&stored, slot.ID).Error; err != nil {
		t.Fatalf("reload slot: %v", err)
	}
	if stored.Booked {
		t.Fatal("rollback should have undone the flag flip")
	}

	var count int64
	if err := db.Model(&models.Booking{}).Where("slot_id = ?", slot.ID).Count(&count).Error; err != nil {
		t.Fatalf("count bookings: %v", err)
	}
	if count != 1 {
		t.Fatalf("bookings for slot: got %d, want 1", count)
	}
}
