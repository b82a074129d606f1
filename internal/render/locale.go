package render

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Locale decides how local date and time are written. Names of weekdays and months
// are always English.
type Locale struct {
	Tag      language.Tag
	Hour12   bool
	MonthDay bool // "October 19, 2026" rather than "19 October 2026"
}

// regions that use a 12-hour clock by default
var hour12Regions = map[string]bool{
	"US": true, "CA": true, "AU": true, "NZ": true, "IN": true, "PH": true,
	"PK": true, "BD": true, "EG": true, "SA": true, "CO": true, "MY": true,
}

// regions that write the month before the day
var monthDayRegions = map[string]bool{
	"US": true, "PH": true, "FM": true,
}

// DefaultLocale is used when the environment names no usable locale
var DefaultLocale = NewLocale(language.AmericanEnglish)

// NewLocale derives clock and date conventions from tag's region
func NewLocale(tag language.Tag) Locale {
	region, _ := tag.Region()
	r := region.String()
	return Locale{
		Tag:      tag,
		Hour12:   hour12Regions[r],
		MonthDay: monthDayRegions[r],
	}
}

// ParseLocale accepts POSIX names such as "en_GB.UTF-8" or "de_DE@euro" as well as
// BCP 47 tags. "C", "POSIX" and unparseable values give DefaultLocale.
func ParseLocale(s string) Locale {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" || s == "C" || s == "POSIX" {
		return DefaultLocale
	}

	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return DefaultLocale
	}
	return NewLocale(tag)
}

// FormatTime writes the clock time, e.g. "09:05 AM" or "09:05"
func (l Locale) FormatTime(t time.Time) string {
	if l.Hour12 {
		return t.Format("03:04 PM")
	}
	return t.Format("15:04")
}

// FormatDate writes the full date, e.g. "Monday, October 19, 2026"
func (l Locale) FormatDate(t time.Time) string {
	if l.MonthDay {
		return t.Format("Monday, January 2, 2006")
	}
	return t.Format("Monday, 2 January 2006")
}
