package booking

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domain "github.com/clinicore/booking-api/internal/domain/booking"
	infraRepo "github.com/clinicore/booking-api/internal/infra/repository"
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
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Slot{},
		&models.Booking{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func horizonRange() domain.AvailabilityInput {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return domain.AvailabilityInput{
		From: from,
		To:   from.AddDate(0, 0, domain.GenerationHorizonDays+1),
	}
}

func TestGetAvailability_GeneratesOnFirstAccess(t *testing.T) {
	db := openTestDB(t)
	repo := infraRepo.NewBookingGormRepository(db)
	uc := NewGetAvailability(repo, zerolog.Nop())

	av, err := uc.Execute(context.Background(), horizonRange())
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if len(av.Available) == 0 {
		t.Fatal("expected generated slots on first access")
	}
	if len(av.Booked) != 0 {
		t.Fatalf("expected no booked slots, got %d", len(av.Booked))
	}
}

func TestGetAvailability_GenerationIdempotent(t *testing.T) {
	db := openTestDB(t)
	repo := infraRepo.NewBookingGormRepository(db)
	uc := NewGetAvailability(repo, zerolog.Nop())
	ctx := context.Background()

	first, err := uc.Execute(ctx, horizonRange())
	if err != nil {
		t.Fatalf("first execute: %v", err)
	}

	second, err := uc.Execute(ctx, horizonRange())
	if err != nil {
		t.Fatalf("second execute: %v", err)
	}

	if len(first.Available) != len(second.Available) {
		t.Fatalf("available changed between calls: %d vs %d",
			len(first.Available), len(second.Available))
	}

	var count int64
	if err := db.Model(&models.Slot{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if int(count) != len(first.Available) {
		t.Fatalf("persisted rows %d != first available %d", count, len(first.Available))
	}
}

func TestGetAvailability_PartitionCompleteAndOrdered(t *testing.T) {
	db := openTestDB(t)
	repo := infraRepo.NewBookingGormRepository(db)
	uc := NewGetAvailability(repo, zerolog.Nop())
	ctx := context.Background()

	in := horizonRange()

	av, err := uc.Execute(ctx, in)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(av.Available) == 0 {
		t.Fatal("no slots generated")
	}

	// Book one slot through the claim protocol, then re-read.
	user := models.User{Name: "P", Email: "p@example.com", PasswordHash: "x", Role: "patient"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	target := av.Available[len(av.Available)-1]
	b := &models.Booking{UserID: user.ID, SlotID: target.ID, Status: "confirmed"}
	if err := repo.ClaimSlotAndCreateBooking(ctx, b, time.Now()); err != nil {
		t.Fatalf("claim: %v", err)
	}

	av, err = uc.Execute(ctx, in)
	if err != nil {
		t.Fatalf("re-execute: %v", err)
	}

	if len(av.Booked) != 1 {
		t.Fatalf("booked partition: got %d, want 1", len(av.Booked))
	}
	if av.Booked[0].ID != target.ID {
		t.Fatalf("booked slot id: got %d, want %d", av.Booked[0].ID, target.ID)
	}

	var total int64
	if err := db.Model(&models.Slot{}).
		Where("start_at >= ? AND start_at < ?", in.From, in.To).
		Count(&total).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if int(total) != len(av.Available)+len(av.Booked) {
		t.Fatalf("partition incomplete: %d available + %d booked != %d persisted",
			len(av.Available), len(av.Booked), total)
	}

	seen := make(map[uint]bool)
	for _, s := range av.Available {
		seen[s.ID] = true
	}
	for _, s := range av.Booked {
		if seen[s.ID] {
			t.Fatalf("slot %d in both partitions", s.ID)
		}
	}

	for i := 1; i < len(av.Available); i++ {
		if av.Available[i].StartAt.Before(av.Available[i-1].StartAt) {
			t.Fatal("available slots not ordered by start time")
		}
	}
}
