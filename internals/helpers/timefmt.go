// file: internals/helpers/timefmt.go
package helper

import (
	"fmt"
	"time"
)

const clockLayout = "15:04"

// ParseClock memvalidasi jam "HH:MM" dan mengembalikan menit sejak 00:00.
func ParseClock(s string) (int, error) {
	// time.Parse menerima jam satu digit ("7:30"); kolomnya varchar(5)
	// dan diurutkan leksikografis, jadi panjang harus tepat 5.
	if len(s) != len(clockLayout) {
		return 0, fmt.Errorf("format waktu harus HH:MM: %q", s)
	}
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("format waktu harus HH:MM: %w", err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ClockAfter melaporkan apakah end ketat setelah start (keduanya "HH:MM").
func ClockAfter(start, end string) (bool, error) {
	s, err := ParseClock(start)
	if err != nil {
		return false, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return false, err
	}
	return e > s, nil
}

// WeekdayName memetakan tanggal ke nama hari lowercase (monday..sunday),
// mengikuti kolom day pada jadwal.
func WeekdayName(t time.Time) string {
	switch t.Weekday() {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}
