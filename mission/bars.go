/* Copyright © 2026 The MeetMission Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package mission

// barTable tracks the remaining seats of every bar within one round.
// Seats are shared across all age bands scheduled in that round, so
// the table is consumed in a single sequential pass with a fixed band
// order to keep the decrements deterministic.
type barTable struct {
	bars      []Bar
	remaining map[string]int
}

func newBarTable(bars []Bar) *barTable {
	return &barTable{bars: bars, remaining: make(map[string]int, len(bars))}
}

// reset restores every bar to its configured seat count at the start
// of a round.
func (bt *barTable) reset() {
	for _, b := range bt.bars {
		bt.remaining[b.ID] = b.AvailableSpots
	}
}

// place seats a whole group at the first bar, in configured order,
// with enough remaining capacity. Groups are never split across bars;
// when nothing fits the caller cancels the band.
func (bt *barTable) place(seats int) (Bar, bool) {
	for _, b := range bt.bars {
		if bt.remaining[b.ID] >= seats {
			bt.remaining[b.ID] -= seats
			return b, true
		}
	}
	return Bar{}, false
}

// release returns seats to a bar, used when a band is cancelled
// mid-round so the remaining bands can use what it had taken.
func (bt *barTable) release(barID string, seats int) {
	bt.remaining[barID] += seats
}
