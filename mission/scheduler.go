/* Copyright © 2026 The MeetMission Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package mission

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// bandPlan holds one band's tentative round memberships before bars
// are assigned.
type bandPlan struct {
	band     AgeBand
	mode     Mode
	rounds   map[int][][]Team
	assigned map[int][]Bar
	teams    []Team
}

// BuildSchedule partitions each band's teams into per-round groups and
// seats every group at a bar. Group formation runs per band in
// parallel; the bar-capacity pass is a single deterministic sweep per
// round because bars are shared across bands. A band that fails any
// check or any round is cancelled whole — its record explains why —
// without disturbing the other bands. Repeated team encounters that
// bounded swapping cannot clear are logged, not fatal. Domain
// failures never surface as errors, only as cancellations and notes.
func BuildSchedule(teams []Team, bars []Bar, opts ...Option) *ScheduleResult {
	cfg := newRunConfig(opts)
	res := &ScheduleResult{Bands: make(map[AgeBand]*BandSchedule)}

	byBand := make(map[AgeBand][]Team)
	for _, t := range teams {
		byBand[t.Band] = append(byBand[t.Band], t)
	}

	// per-band results land in band-indexed slots so the goroutines
	// never share a map; Wait orders the writes before the reads below
	nSlots := len(AllBands) + 1
	planSlots := make([]*bandPlan, nSlots)
	cancelSlots := make([]*Cancellation, nSlots)
	noteSlots := make([][]string, nSlots)

	var g errgroup.Group
	for _, band := range AllBands {
		bandTeams := byBand[band]
		if len(bandTeams) == 0 {
			continue
		}
		band := band
		g.Go(func() error {
			plan, cancel, notes := formBandRounds(band, bandTeams, cfg)
			planSlots[band] = plan
			cancelSlots[band] = cancel
			noteSlots[band] = notes
			return nil
		})
	}
	_ = g.Wait()

	plans := make(map[AgeBand]*bandPlan)
	cancels := make(map[AgeBand]*Cancellation)
	bandNotes := make(map[AgeBand][]string)
	for _, band := range AllBands {
		if planSlots[band] != nil {
			plans[band] = planSlots[band]
		}
		if cancelSlots[band] != nil {
			cancels[band] = cancelSlots[band]
		}
		bandNotes[band] = noteSlots[band]
	}

	assignBars(cfg, plans, cancels, bandNotes, bars)

	for _, band := range AllBands {
		res.Notes = append(res.Notes, bandNotes[band]...)
		if cancel, ok := cancels[band]; ok {
			res.Bands[band] = &BandSchedule{Band: band, Cancelled: cancel}
			continue
		}
		if plan, ok := plans[band]; ok {
			res.Bands[band] = plan.finalize(cfg)
		}
	}

	return res
}

// PlanEvent runs team building and scheduling back to back and merges
// both note streams, team-build notes first, so exclusion and
// partner-link decisions surface alongside the band records.
func PlanEvent(participants []Participant, bars []Bar,
	opts ...Option) *ScheduleResult {

	built := BuildTeams(participants, opts...)
	res := BuildSchedule(built.Teams, bars, opts...)
	res.Notes = append(built.Notes, res.Notes...)
	return res
}

// formBandRounds runs the per-band half of scheduling: fail-fast
// checks, mode selection, group-size planning, and balanced group
// construction for every round with duplicate-encounter resolution
// from round two on.
func formBandRounds(band AgeBand, teams []Team,
	cfg *runConfig) (*bandPlan, *Cancellation, []string) {

	var notes []string
	cancel := func(reason CancelReason) (*bandPlan, *Cancellation, []string) {
		notes = append(notes, fmt.Sprintf(
			"band %v cancelled: %v (%d teams affected)",
			band, reason, len(teams)))
		return nil, &Cancellation{Band: band, Reason: reason, Teams: teams},
			notes
	}

	if len(teams) < minTeamsPerBand {
		return cancel(CancelTooFewTeams)
	}

	members, males, females := 0, 0, 0
	for _, t := range teams {
		members += t.Size()
		males += t.MaleCount()
		females += t.FemaleCount()
	}
	if exceedsGenderCap(males, females) {
		return cancel(CancelGenderRatio)
	}

	mode := SelectMode(members)
	notes = append(notes, fmt.Sprintf(
		"band %v: %d participants in %d teams, mode %v (%d rounds)",
		band, members, len(teams), mode, mode.Rounds()))

	sizes, ok := planGroupSizes(len(teams), mode)
	if !ok {
		return cancel(CancelNoDistribution)
	}

	rng := cfg.bandRand(band)
	hist := make(pairHistory)
	plan := &bandPlan{
		band:   band,
		mode:   mode,
		rounds: make(map[int][][]Team),
		teams:  teams,
	}

	for round := 1; round <= mode.Rounds(); round++ {
		groups, ok := formGroups(teams, sizes, rng)
		if !ok {
			return cancel(CancelUnbalancedGroups)
		}
		if round > 1 {
			if n := resolveDuplicates(groups, hist); n > 0 {
				notes = append(notes, fmt.Sprintf(
					"band %v round %d: %d repeated team encounters could not be avoided",
					band, round, n))
			}
		}
		hist.record(groups)
		plan.rounds[round] = groups
	}

	return plan, nil, notes
}

// barSlot identifies one group awaiting a bar within a round.
type barSlot struct {
	band  AgeBand
	index int
	seats int
}

// assignBars seats every planned group, round by round, larger groups
// first to limit fragmentation. Bands appear in fixed order so the
// shared capacity decrements are reproducible. A band whose group fits
// in no bar is cancelled whole and the seats it held that round are
// released to the bands still standing.
func assignBars(cfg *runConfig, plans map[AgeBand]*bandPlan,
	cancels map[AgeBand]*Cancellation, bandNotes map[AgeBand][]string,
	bars []Bar) {

	maxRounds := 0
	for _, plan := range plans {
		if r := plan.mode.Rounds(); r > maxRounds {
			maxRounds = r
		}
	}

	assigned := make(map[AgeBand]map[int][]Bar)
	for band := range plans {
		assigned[band] = make(map[int][]Bar)
	}

	bt := newBarTable(bars)
	for round := 1; round <= maxRounds; round++ {
		bt.reset()

		var slots []barSlot
		for _, band := range AllBands {
			plan, ok := plans[band]
			if !ok || round > plan.mode.Rounds() {
				continue
			}
			for i, teams := range plan.rounds[round] {
				seats := 0
				for _, t := range teams {
					seats += t.Size()
				}
				slots = append(slots, barSlot{band: band, index: i, seats: seats})
			}
		}
		sort.SliceStable(slots, func(i, j int) bool {
			return slots[i].seats > slots[j].seats
		})

		roundBars := make(map[AgeBand][]Bar)
		for _, slot := range slots {
			if _, dropped := cancels[slot.band]; dropped {
				continue
			}
			bar, ok := bt.place(slot.seats)
			if !ok {
				plan := plans[slot.band]
				cancels[slot.band] = &Cancellation{
					Band:   slot.band,
					Reason: CancelNoBarCapacity,
					Teams:  plan.teams,
				}
				bandNotes[slot.band] = append(bandNotes[slot.band],
					fmt.Sprintf("band %v cancelled in round %d: %v",
						slot.band, round, CancelNoBarCapacity))
				// free this band's seats so later groups can use them
				for i, b := range roundBars[slot.band] {
					if b.ID == "" {
						continue
					}
					seats := 0
					for _, t := range plan.rounds[round][i] {
						seats += t.Size()
					}
					bt.release(b.ID, seats)
				}
				delete(plans, slot.band)
				delete(assigned, slot.band)
				continue
			}
			for len(roundBars[slot.band]) <= slot.index {
				roundBars[slot.band] = append(roundBars[slot.band], Bar{})
			}
			roundBars[slot.band][slot.index] = bar
		}

		for band, barsForBand := range roundBars {
			if _, dropped := cancels[band]; dropped {
				continue
			}
			assigned[band][round] = barsForBand
		}
	}

	for band, plan := range plans {
		plan.assigned = assigned[band]
	}
}

// finalize materializes the plan's team lists into Group records with
// generated ids and the bars chosen for them.
func (p *bandPlan) finalize(cfg *runConfig) *BandSchedule {
	bs := &BandSchedule{
		Band:   p.band,
		Mode:   p.mode,
		Rounds: make(map[int][]Group),
	}
	for round := 1; round <= p.mode.Rounds(); round++ {
		for i, teams := range p.rounds[round] {
			bar := p.assigned[round][i]
			bs.Rounds[round] = append(bs.Rounds[round], Group{
				ID:    cfg.idGen(),
				Round: round,
				Band:  p.band,
				BarID: bar.ID,
				Bar:   bar.Name,
				Teams: teams,
			})
		}
	}
	return bs
}
