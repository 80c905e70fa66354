package utils

import "testing"

func TestParseClock(t *testing.T) {
	t.Parallel()
	got, err := ParseClock("08:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 510 {
		t.Fatalf("minutes = %d, want 510", got)
	}

	for _, bad := range []string{"", "8am", "25:00", "10:61", "midnight"} {
		if _, err := ParseClock(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		} else if !IsValidation(err) {
			t.Fatalf("expected validation error for %q, got %v", bad, err)
		}
	}
}

func TestGenerateScheduleEvenSpread(t *testing.T) {
	t.Parallel()
	slots, err := GenerateSchedule("08:00", "22:00", 7, 0.25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 7 {
		t.Fatalf("got %d slots, want 7", len(slots))
	}
	if slots[0].Time != "08:00" {
		t.Fatalf("first slot at %s, want 08:00", slots[0].Time)
	}
	// 14h window / 7 intervals = 2h step
	want := []string{"08:00", "10:00", "12:00", "14:00", "16:00", "18:00", "20:00"}
	for i, w := range want {
		if slots[i].Time != w {
			t.Fatalf("slot %d at %s, want %s", i, slots[i].Time, w)
		}
		if slots[i].AmountL != 0.25 {
			t.Fatalf("slot %d amount %v, want 0.25", i, slots[i].AmountL)
		}
	}
}

func TestGenerateScheduleWrapsPastMidnight(t *testing.T) {
	t.Parallel()
	slots, err := GenerateSchedule("22:00", "06:00", 4, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 8h window / 4 intervals = 2h step, crossing midnight
	want := []string{"22:00", "00:00", "02:00", "04:00"}
	for i, w := range want {
		if slots[i].Time != w {
			t.Fatalf("slot %d at %s, want %s", i, slots[i].Time, w)
		}
	}
}

func TestGenerateScheduleIdenticalTimesSpanFullDay(t *testing.T) {
	t.Parallel()
	slots, err := GenerateSchedule("07:00", "07:00", 3, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"07:00", "15:00", "23:00"}
	for i, w := range want {
		if slots[i].Time != w {
			t.Fatalf("slot %d at %s, want %s", i, slots[i].Time, w)
		}
	}
}

func TestGenerateScheduleRejectsBadInput(t *testing.T) {
	t.Parallel()
	if _, err := GenerateSchedule("08:00", "22:00", 0, 0.25); err == nil {
		t.Fatal("expected error for zero intervals")
	}
	if _, err := GenerateSchedule("late", "22:00", 4, 0.25); err == nil {
		t.Fatal("expected error for malformed wake time")
	}
	if _, err := GenerateSchedule("08:00", "bedtime", 4, 0.25); err == nil {
		t.Fatal("expected error for malformed bed time")
	}
}
