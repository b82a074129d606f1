package render

import (
	"testing"
	"time"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		input    string
		hour12   bool
		monthDay bool
	}{
		{"en_US.UTF-8", true, true},
		{"en-US", true, true},
		{"en_GB.UTF-8", false, false},
		{"de_DE@euro", false, false},
		{"fr_CA.UTF-8", true, false},
		{"ja_JP.UTF-8", false, false},
		{"C", true, true},
		{"POSIX", true, true},
		{"", true, true},
		{"not a locale!", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := ParseLocale(tt.input)
			if l.Hour12 != tt.hour12 {
				t.Errorf("ParseLocale(%q).Hour12 = %v, want %v", tt.input, l.Hour12, tt.hour12)
			}
			if l.MonthDay != tt.monthDay {
				t.Errorf("ParseLocale(%q).MonthDay = %v, want %v", tt.input, l.MonthDay, tt.monthDay)
			}
		})
	}
}

func TestLocale_Format(t *testing.T) {
	ts := time.Date(2026, time.October, 19, 21, 5, 0, 0, time.UTC)

	us := ParseLocale("en_US")
	if got := us.FormatTime(ts); got != "09:05 PM" {
		t.Errorf("US FormatTime = %q, want '09:05 PM'", got)
	}
	if got := us.FormatDate(ts); got != "Monday, October 19, 2026" {
		t.Errorf("US FormatDate = %q", got)
	}

	gb := ParseLocale("en_GB")
	if got := gb.FormatTime(ts); got != "21:05" {
		t.Errorf("GB FormatTime = %q, want '21:05'", got)
	}
	if got := gb.FormatDate(ts); got != "Monday, 19 October 2026" {
		t.Errorf("GB FormatDate = %q", got)
	}
}
