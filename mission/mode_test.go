/* Copyright © 2026 The MeetMission Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package mission

import (
	"testing"
)

// TestSelectMode verifies the participant-count thresholds around
// both mode boundaries.
func TestSelectMode(t *testing.T) {
	cases := []struct {
		count int
		want  Mode
	}{
		{count: 40, want: ModeA},
		{count: 24, want: ModeA},
		{count: 23, want: ModeB},
		{count: 18, want: ModeB},
		{count: 17, want: ModeC},
		{count: 12, want: ModeC},
		{count: 0, want: ModeC},
	}
	for _, c := range cases {
		if got := SelectMode(c.count); got != c.want {
			t.Errorf("SelectMode(%d) = %v; want %v", c.count, got, c.want)
		}
	}
}

// TestModeParameters pins the per-mode round counts and group-size
// bounds.
func TestModeParameters(t *testing.T) {
	cases := []struct {
		mode       Mode
		rounds     int
		minSize    int
		maxSize    int
		minGroups  int
		wantString string
	}{
		{mode: ModeA, rounds: 3, minSize: 3, maxSize: 5, minGroups: 4, wantString: "A"},
		{mode: ModeB, rounds: 2, minSize: 3, maxSize: 4, minGroups: 2, wantString: "B"},
		{mode: ModeC, rounds: 2, minSize: 3, maxSize: 4, minGroups: 2, wantString: "C"},
	}
	for _, c := range cases {
		t.Run(c.wantString, func(t *testing.T) {
			if got := c.mode.Rounds(); got != c.rounds {
				t.Errorf("Rounds() = %d; want %d", got, c.rounds)
			}
			if got := c.mode.GroupSizeMin(); got != c.minSize {
				t.Errorf("GroupSizeMin() = %d; want %d", got, c.minSize)
			}
			if got := c.mode.GroupSizeMax(); got != c.maxSize {
				t.Errorf("GroupSizeMax() = %d; want %d", got, c.maxSize)
			}
			if got := c.mode.MinGroups(); got != c.minGroups {
				t.Errorf("MinGroups() = %d; want %d", got, c.minGroups)
			}
			if got := c.mode.String(); got != c.wantString {
				t.Errorf("String() = %q; want %q", got, c.wantString)
			}
		})
	}
}
