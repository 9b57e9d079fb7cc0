package format

import (
	"fmt"
	"time"
)

var mois = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// DateLongue renders t as a long-form French date: "1er mars 2026", "15 octobre 2026".
func DateLongue(t time.Time) string {
	jour := fmt.Sprintf("%d", t.Day())
	if t.Day() == 1 {
		jour = "1er"
	}
	return fmt.Sprintf("%s %s %d", jour, mois[t.Month()-1], t.Year())
}

// DateLongueOu renders *t or the placeholder when nil.
func DateLongueOu(t *time.Time) string {
	if t == nil || t.IsZero() {
		return Placeholder
	}
	return DateLongue(*t)
}

// Heure renders a clock time as "14h30".
func Heure(t time.Time) string {
	return fmt.Sprintf("%dh%02d", t.Hour(), t.Minute())
}
