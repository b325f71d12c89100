package schedule

import "testing"

func TestSlotKeyRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		key  SlotKey
	}{
		{
			name: "plain room number",
			key:  SlotKey{PeriodLabel: "09:00 - 10:00", RoomID: "101", Day: Monday},
		},
		{
			name: "room id containing underscores",
			key:  SlotKey{PeriodLabel: "13:00 - 14:30", RoomID: "LAB_B_2", Day: Friday},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseSlotKey(tc.key.String())
			if err != nil {
				t.Fatalf("ParseSlotKey(%q) failed: %v", tc.key.String(), err)
			}
			if parsed != tc.key {
				t.Fatalf("round trip mismatch: got %+v, want %+v", parsed, tc.key)
			}
		})
	}
}

func TestParseSlotKeyRejectsMalformedInput(t *testing.T) {
	for _, value := range []string{"", "09:00 - 10:00", "09:00 - 10:00_101", "09:00 - 10:00_101_Someday"} {
		if _, err := ParseSlotKey(value); err == nil {
			t.Fatalf("expected error for %q", value)
		}
	}
}

func TestParseWeekday(t *testing.T) {
	day, err := ParseWeekday(" monday ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day != Monday {
		t.Fatalf("expected Monday, got %q", day)
	}

	if _, err := ParseWeekday("Mon"); err == nil {
		t.Fatal("expected error for abbreviated name")
	}
}

func TestWeekdayOrdering(t *testing.T) {
	if Monday.Index() != 0 || Sunday.Index() != 6 {
		t.Fatalf("unexpected ordering: Monday=%d Sunday=%d", Monday.Index(), Sunday.Index())
	}
	if AnyDay.Index() <= Sunday.Index() {
		t.Fatal("wildcard must sort after named days")
	}
	if len(DefaultTeachingDays()) != 5 {
		t.Fatalf("expected Monday-Friday default, got %v", DefaultTeachingDays())
	}
}

func TestParseClock(t *testing.T) {
	normalized, err := ParseClock("9:05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if normalized != "09:05" {
		t.Fatalf("expected zero-padded value, got %q", normalized)
	}

	for _, value := range []string{"24:00", "12:60", "noon", ""} {
		if _, err := ParseClock(value); err == nil {
			t.Fatalf("expected error for %q", value)
		}
	}
}
