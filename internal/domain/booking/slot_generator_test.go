package booking

import (
	"reflect"
	"testing"
	"time"
)

// 2026-09-04 is a Friday.
var fridayMorning = time.Date(2026, time.September, 4, 8, 0, 0, 0, time.UTC)

func TestGenerateSlots_SkipsWeekends(t *testing.T) {
	slots := GenerateSlots(fridayMorning)

	if len(slots) == 0 {
		t.Fatal("expected slots to be generated")
	}

	for _, s := range slots {
		if wd := s.StartAt.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Fatalf("slot generated on weekend: %s", s.StartAt)
		}
	}

	// Friday + the following Mon-Thu inside a 7-day horizon: 5 business
	// days at 16 half-hour windows each.
	if len(slots) != 5*16 {
		t.Fatalf("expected 80 slots, got %d", len(slots))
	}
}

func TestGenerateSlots_BusinessHoursBounds(t *testing.T) {
	slots := GenerateSlots(fridayMorning)

	perDay := map[string][]time.Time{}
	for _, s := range slots {
		key := s.StartAt.Format("2006-01-02")
		perDay[key] = append(perDay[key], s.StartAt)
	}

	for day, starts := range perDay {
		first := starts[0]
		last := starts[len(starts)-1]

		if first.Hour() != 9 || first.Minute() != 0 {
			t.Errorf("%s: first slot starts at %02d:%02d, want 09:00", day, first.Hour(), first.Minute())
		}
		if last.Hour() != 16 || last.Minute() != 30 {
			t.Errorf("%s: last slot starts at %02d:%02d, want 16:30", day, last.Hour(), last.Minute())
		}
	}
}

func TestGenerateSlots_FixedDuration(t *testing.T) {
	for _, s := range GenerateSlots(fridayMorning) {
		if got := s.EndAt.Sub(s.StartAt); got != SlotDuration {
			t.Fatalf("slot %s has duration %s, want %s", s.StartAt, got, SlotDuration)
		}
	}
}

func TestGenerateSlots_OnlyFutureCandidates(t *testing.T) {
	// Mid-day reference: the 12:00 window has already started and the
	// 12:15 instant sits inside it, so the first candidate is 12:30.
	ref := time.Date(2026, time.September, 4, 12, 15, 0, 0, time.UTC)
	slots := GenerateSlots(ref)

	for _, s := range slots {
		if !s.StartAt.After(ref) {
			t.Fatalf("slot %s is not strictly after reference %s", s.StartAt, ref)
		}
	}

	first := slots[0].StartAt
	if first.Hour() != 12 || first.Minute() != 30 {
		t.Fatalf("first slot after 12:15 starts at %02d:%02d, want 12:30", first.Hour(), first.Minute())
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	a := GenerateSlots(fridayMorning)
	b := GenerateSlots(fridayMorning)

	if !reflect.DeepEqual(a, b) {
		t.Fatal("same reference instant produced different candidate sets")
	}
}

func TestGenerateSlots_WeekendReference(t *testing.T) {
	// Saturday reference: horizon covers Sat..Fri, so Mon-Fri qualify.
	saturday := time.Date(2026, time.September, 5, 8, 0, 0, 0, time.UTC)
	slots := GenerateSlots(saturday)

	if len(slots) != 5*16 {
		t.Fatalf("expected 80 slots from a Saturday reference, got %d", len(slots))
	}
	if wd := slots[0].StartAt.Weekday(); wd != time.Monday {
		t.Fatalf("first slot on %s, want Monday", wd)
	}
}
