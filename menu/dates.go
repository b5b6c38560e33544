package menu

import "time"

// DateLayout is the DD.MM.YYYY layout used as key by the plan API.
const DateLayout = "02.01.2006"

// FormatDate formats t as DD.MM.YYYY.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// RelevantDate returns now if its hour is before switchHour, otherwise the same time one calendar day later.
func RelevantDate(now time.Time, switchHour int) time.Time {
	if now.Hour() < switchHour {
		return now
	}
	return now.AddDate(0, 0, 1)
}

// IsSameDay reports whether a and b format to the same date.
func IsSameDay(a, b time.Time) bool {
	return FormatDate(a) == FormatDate(b)
}
