package utils

import (
	"testing"
	"time"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{"empty means local", "", false},
		{"explicit local", "Local", false},
		{"valid IANA name", "Europe/Berlin", false},
		{"UTC", "UTC", false},
		{"garbage", "Not/AZone", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadLocation(%q) error = %v, wantErr %v", tt.timezone, err, tt.wantErr)
			}
			if !tt.wantErr && loc == nil {
				t.Error("nil location without error")
			}
		})
	}
}

func TestParseDateInLocation(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	got, err := ParseDateInLocation("2025-06-18", berlin)
	if err != nil {
		t.Fatalf("ParseDateInLocation failed: %v", err)
	}

	want := time.Date(2025, 6, 18, 0, 0, 0, 0, berlin)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := ParseDateInLocation("18.06.2025", berlin); err == nil {
		t.Error("accepted non-ISO date format")
	}
	if _, err := ParseDateInLocation("2025-13-40", berlin); err == nil {
		t.Error("accepted impossible date")
	}
}

func TestNowInTimezone(t *testing.T) {
	now, err := NowInTimezone("UTC")
	if err != nil {
		t.Fatalf("NowInTimezone failed: %v", err)
	}
	if now.Location() != time.UTC {
		t.Errorf("location = %v, want UTC", now.Location())
	}

	if _, err := NowInTimezone("Nope/Nope"); err == nil {
		t.Error("accepted invalid timezone")
	}
}

func TestValidateTimezone(t *testing.T) {
	for tz, want := range map[string]bool{
		"":              true,
		"Local":         true,
		"UTC":           true,
		"Europe/Berlin": true,
		"Mars/Olympus":  false,
	} {
		if got := ValidateTimezone(tz); got != want {
			t.Errorf("ValidateTimezone(%q) = %v, want %v", tz, got, want)
		}
	}
}
