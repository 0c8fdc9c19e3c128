/* Copyright © 2026 The MeetMission Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package mission

import "sort"

// BarDeficit reports a bar whose peak per-round occupancy exceeded its
// configured seat count, with a per-band breakdown of the peak round.
type BarDeficit struct {
	BarID            string
	Bar              string
	ExtraSeatsNeeded int
	PeakRound        int
	PerBand          map[AgeBand]int
}

// AuditCapacity replays a finished schedule against the configured bar
// seat counts and reports every bar that came up short, in bar input
// order. It is a read-side check for operator alerts and never alters
// the schedule; under whole-group placement it normally reports
// nothing unless the bar configuration changed after scheduling.
func AuditCapacity(res *ScheduleResult, bars []Bar) []BarDeficit {
	// occupancy[barID][round][band] = members seated
	occupancy := make(map[string]map[int]map[AgeBand]int)
	for _, bs := range res.Bands {
		if bs.Cancelled != nil {
			continue
		}
		for round, groups := range bs.Rounds {
			for _, g := range groups {
				rounds, ok := occupancy[g.BarID]
				if !ok {
					rounds = make(map[int]map[AgeBand]int)
					occupancy[g.BarID] = rounds
				}
				if rounds[round] == nil {
					rounds[round] = make(map[AgeBand]int)
				}
				rounds[round][g.Band] += g.MemberCount()
			}
		}
	}

	var deficits []BarDeficit
	for _, bar := range bars {
		var rounds []int
		for round := range occupancy[bar.ID] {
			rounds = append(rounds, round)
		}
		sort.Ints(rounds)

		// earliest round wins a peak tie
		peakRound, peak := 0, 0
		for _, round := range rounds {
			total := 0
			for _, n := range occupancy[bar.ID][round] {
				total += n
			}
			if total > peak {
				peak = total
				peakRound = round
			}
		}
		if peak <= bar.AvailableSpots {
			continue
		}
		breakdown := make(map[AgeBand]int)
		for band, n := range occupancy[bar.ID][peakRound] {
			breakdown[band] = n
		}
		deficits = append(deficits, BarDeficit{
			BarID:            bar.ID,
			Bar:              bar.Name,
			ExtraSeatsNeeded: peak - bar.AvailableSpots,
			PeakRound:        peakRound,
			PerBand:          breakdown,
		})
	}

	return deficits
}
