/* Copyright © 2026 The MeetMission Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package mission

import (
	"testing"
)

// TestClassifyAge verifies the band boundaries, including both edges
// of every range and the under-20 exclusion.
func TestClassifyAge(t *testing.T) {
	cases := []struct {
		name     string
		age      int
		wantBand AgeBand
		wantOk   bool
	}{
		{name: "under twenty excluded", age: 19, wantBand: BandNone, wantOk: false},
		{name: "zero excluded", age: 0, wantBand: BandNone, wantOk: false},
		{name: "lowest band lower edge", age: 20, wantBand: Band20To30, wantOk: true},
		{name: "lowest band upper edge", age: 30, wantBand: Band20To30, wantOk: true},
		{name: "second band lower edge", age: 31, wantBand: Band31To40, wantOk: true},
		{name: "second band upper edge", age: 40, wantBand: Band31To40, wantOk: true},
		{name: "third band lower edge", age: 41, wantBand: Band41To50, wantOk: true},
		{name: "third band upper edge", age: 50, wantBand: Band41To50, wantOk: true},
		{name: "top band lower edge", age: 51, wantBand: Band51Plus, wantOk: true},
		{name: "top band is open ended", age: 97, wantBand: Band51Plus, wantOk: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			band, ok := ClassifyAge(c.age)
			if band != c.wantBand || ok != c.wantOk {
				t.Errorf("ClassifyAge(%d) = (%v, %v); want (%v, %v)",
					c.age, band, ok, c.wantBand, c.wantOk)
			}
			// classification is pure; a second call must agree
			band2, ok2 := ClassifyAge(c.age)
			if band2 != band || ok2 != ok {
				t.Errorf("ClassifyAge(%d) not idempotent", c.age)
			}
		})
	}
}

func TestAgeBandString(t *testing.T) {
	want := map[AgeBand]string{
		Band20To30: "20-30",
		Band31To40: "31-40",
		Band41To50: "41-50",
		Band51Plus: "51+",
	}
	if len(AllBands) != len(want) {
		t.Fatalf("expected %d bands, got %d", len(want), len(AllBands))
	}
	for _, band := range AllBands {
		if band.String() != want[band] {
			t.Errorf("band %d String() = %q; want %q", band, band.String(),
				want[band])
		}
	}
	if BandNone.String() != "?" {
		t.Errorf("BandNone String() = %q; want %q", BandNone.String(), "?")
	}
}
