/* Copyright © 2026 The MeetMission Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
)

// ParseDateOrZero returns a parsed time or zero if input is empty or "null".
func ParseDateOrZero(s string) (time.Time, error) {
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}

// AgeAt returns the whole years between a date of birth and a
// reference date, 0 when the birth date is zero or in the future.
func AgeAt(dob, at time.Time) int {
	if dob.IsZero() || dob.After(at) {
		return 0
	}
	age := at.Year() - dob.Year()
	// birthday not yet reached this year
	if at.YearDay() < dob.YearDay() {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}

// NormalizeName collapses runs of whitespace and title-cases each word
// of a scraped attendee name.
func NormalizeName(name string) string {
	fields := strings.Fields(name)
	for i, f := range fields {
		runes := []rune(strings.ToLower(f))
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		fields[i] = string(runes)
	}
	return strings.Join(fields, " ")
}
