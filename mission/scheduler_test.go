/* Copyright © 2026 The MeetMission Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package mission

import (
	"fmt"
	"strings"
	"testing"
)

// seventeenParticipants is a single-band pool that builds 8 teams
// with one trio: 9 males and 8 females, ages 20 through 28.
func seventeenParticipants() []Participant {
	var participants []Participant
	for i := 0; i < 9; i++ {
		participants = append(participants,
			mkParticipant(fmt.Sprintf("m%d", i), 20+i, GenderMale))
	}
	for i := 0; i < 8; i++ {
		participants = append(participants,
			mkParticipant(fmt.Sprintf("f%d", i), 20+i, GenderFemale))
	}
	return participants
}

// TestBuildScheduleSmallBand runs the full pipeline on 17 single-band
// participants: mode C, two full rounds, no cancellation.
func TestBuildScheduleSmallBand(t *testing.T) {
	teamRes := BuildTeams(seventeenParticipants(), testOpts()...)
	if len(teamRes.Teams) != 8 {
		t.Fatalf("expected 8 teams, got %d", len(teamRes.Teams))
	}

	bars := []Bar{{ID: "b1", Name: "North", AvailableSpots: 20}}
	res := BuildSchedule(teamRes.Teams, bars, testOpts()...)

	bs, ok := res.Bands[Band20To30]
	if !ok {
		t.Fatal("expected a schedule for band 20-30")
	}
	if bs.Cancelled != nil {
		t.Fatalf("band cancelled: %v", bs.Cancelled.Reason)
	}
	if bs.Mode != ModeC {
		t.Errorf("expected mode C, got %v", bs.Mode)
	}
	if len(bs.Rounds) != 2 {
		t.Fatalf("expected 2 rounds, got %d", len(bs.Rounds))
	}
	if res.MaxRounds() != 2 {
		t.Errorf("MaxRounds() = %d; want 2", res.MaxRounds())
	}
	for round := 1; round <= 2; round++ {
		groups := bs.Rounds[round]
		if len(groups) != 2 {
			t.Fatalf("round %d: expected 2 groups, got %d", round,
				len(groups))
		}
		members := 0
		for _, g := range groups {
			if g.BarID != "b1" {
				t.Errorf("round %d: group seated at %q; want b1", round,
					g.BarID)
			}
			if g.Round != round {
				t.Errorf("group carries round %d; want %d", g.Round, round)
			}
			members += g.MemberCount()
		}
		if members != 17 {
			t.Errorf("round %d seats %d members; want 17", round, members)
		}
	}
}

// TestPlanEvent verifies the combined entry point keeps the
// team-build notes ahead of the band notes so exclusions are never
// silently dropped from the operator's view.
func TestPlanEvent(t *testing.T) {
	participants := append(seventeenParticipants(),
		mkParticipant("kid", 17, GenderMale))
	bars := []Bar{{ID: "b1", Name: "North", AvailableSpots: 20}}
	res := PlanEvent(participants, bars, testOpts()...)

	bs := res.Bands[Band20To30]
	if bs == nil || bs.Cancelled != nil {
		t.Fatal("expected band 20-30 to be scheduled")
	}
	if len(res.Notes) < 2 {
		t.Fatalf("expected exclusion and band notes, got %v", res.Notes)
	}
	if !strings.Contains(res.Notes[0], "outside the supported bands") {
		t.Errorf("expected exclusion note first, got %v", res.Notes[0])
	}
	found := false
	for _, note := range res.Notes[1:] {
		if strings.Contains(note, "mode C") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a band note after the exclusions, got %v",
			res.Notes)
	}
}

// TestBuildScheduleTooFewTeams verifies the minimum-team gate.
func TestBuildScheduleTooFewTeams(t *testing.T) {
	teams := mixedTeams(Band31To40, 5)
	bars := []Bar{{ID: "b1", Name: "North", AvailableSpots: 50}}
	res := BuildSchedule(teams, bars, testOpts()...)

	bs := res.Bands[Band31To40]
	if bs == nil || bs.Cancelled == nil {
		t.Fatal("expected the band to be cancelled")
	}
	if bs.Cancelled.Reason != CancelTooFewTeams {
		t.Errorf("reason = %v; want %v", bs.Cancelled.Reason,
			CancelTooFewTeams)
	}
	if len(bs.Cancelled.Teams) != 5 {
		t.Errorf("expected 5 affected teams, got %d",
			len(bs.Cancelled.Teams))
	}
	if len(bs.Rounds) != 0 {
		t.Error("a cancelled band must not carry rounds")
	}
}

// TestBuildScheduleGenderRatio verifies that a band above the 60% cap
// is cancelled before any grouping happens.
func TestBuildScheduleGenderRatio(t *testing.T) {
	var teams []Team
	for i := 0; i < 6; i++ {
		teams = append(teams, mkTeam(fmt.Sprintf("t%d", i), Band20To30,
			GenderMale, GenderMale))
	}
	bars := []Bar{{ID: "b1", Name: "North", AvailableSpots: 50}}
	res := BuildSchedule(teams, bars, testOpts()...)

	bs := res.Bands[Band20To30]
	if bs == nil || bs.Cancelled == nil {
		t.Fatal("expected the band to be cancelled")
	}
	if bs.Cancelled.Reason != CancelGenderRatio {
		t.Errorf("reason = %v; want %v", bs.Cancelled.Reason,
			CancelGenderRatio)
	}
	if got := res.Cancellations(); len(got) != 1 {
		t.Errorf("Cancellations() returned %d records; want 1", len(got))
	}
}

// TestBuildScheduleModeA verifies the three-round format and the
// per-round bar capacity invariant with two shared bars.
func TestBuildScheduleModeA(t *testing.T) {
	teams := mixedTeams(Band31To40, 13)
	bars := []Bar{
		{ID: "b1", Name: "North", AvailableSpots: 15},
		{ID: "b2", Name: "South", AvailableSpots: 15},
	}
	res := BuildSchedule(teams, bars, testOpts()...)

	bs := res.Bands[Band31To40]
	if bs == nil {
		t.Fatal("expected a schedule for band 31-40")
	}
	if bs.Cancelled != nil {
		t.Fatalf("band cancelled: %v", bs.Cancelled.Reason)
	}
	if bs.Mode != ModeA {
		t.Errorf("expected mode A for 26 participants, got %v", bs.Mode)
	}
	if len(bs.Rounds) != 3 {
		t.Fatalf("expected 3 rounds, got %d", len(bs.Rounds))
	}

	capacity := map[string]int{"b1": 15, "b2": 15}
	for round, groups := range bs.Rounds {
		used := make(map[string]int)
		teamsSeen := 0
		for _, g := range groups {
			if g.BarID == "" {
				t.Fatalf("round %d: group without a bar", round)
			}
			used[g.BarID] += g.MemberCount()
			teamsSeen += len(g.Teams)
		}
		if teamsSeen != 13 {
			t.Errorf("round %d schedules %d teams; want 13", round,
				teamsSeen)
		}
		for barID, seats := range used {
			if seats > capacity[barID] {
				t.Errorf("round %d: bar %v seats %d over capacity %d",
					round, barID, seats, capacity[barID])
			}
		}
	}
}

// TestBuildScheduleNoBarCapacity verifies whole-group placement: when
// no single bar can hold a group, the band is cancelled with an
// explicit capacity reason.
func TestBuildScheduleNoBarCapacity(t *testing.T) {
	teams := mixedTeams(Band20To30, 6)
	bars := []Bar{{ID: "b1", Name: "North", AvailableSpots: 10}}
	res := BuildSchedule(teams, bars, testOpts()...)

	bs := res.Bands[Band20To30]
	if bs == nil || bs.Cancelled == nil {
		t.Fatal("expected the band to be cancelled")
	}
	if bs.Cancelled.Reason != CancelNoBarCapacity {
		t.Errorf("reason = %v; want %v", bs.Cancelled.Reason,
			CancelNoBarCapacity)
	}
	found := false
	for _, note := range res.Notes {
		if strings.Contains(note, "cancelled in round 1") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a round-1 cancellation note, got %v", res.Notes)
	}
}

// TestBuildScheduleSharedCapacity verifies that bars are shared across
// bands within a round: the band later in the fixed order loses when
// seats run out, the earlier band keeps its schedule.
func TestBuildScheduleSharedCapacity(t *testing.T) {
	var teams []Team
	for i := 0; i < 6; i++ {
		teams = append(teams, mkTeam(fmt.Sprintf("y%d", i), Band20To30,
			GenderMale, GenderFemale))
	}
	for i := 0; i < 6; i++ {
		teams = append(teams, mkTeam(fmt.Sprintf("o%d", i), Band31To40,
			GenderMale, GenderFemale))
	}
	bars := []Bar{{ID: "b1", Name: "North", AvailableSpots: 12}}
	res := BuildSchedule(teams, bars, testOpts()...)

	young := res.Bands[Band20To30]
	if young == nil || young.Cancelled != nil {
		t.Fatal("expected band 20-30 to be scheduled")
	}
	if len(young.Rounds) != 2 {
		t.Errorf("band 20-30: expected 2 rounds, got %d", len(young.Rounds))
	}

	old := res.Bands[Band31To40]
	if old == nil || old.Cancelled == nil {
		t.Fatal("expected band 31-40 to be cancelled")
	}
	if old.Cancelled.Reason != CancelNoBarCapacity {
		t.Errorf("reason = %v; want %v", old.Cancelled.Reason,
			CancelNoBarCapacity)
	}
}

// TestBuildScheduleDeterministic verifies that a fixed seed and id
// generator reproduce the schedule exactly.
func TestBuildScheduleDeterministic(t *testing.T) {
	run := func() string {
		teamRes := BuildTeams(seventeenParticipants(), testOpts()...)
		res := BuildSchedule(teamRes.Teams, []Bar{
			{ID: "b1", Name: "North", AvailableSpots: 20},
		}, testOpts()...)
		return BuildScheduleOutput(res)
	}
	first := run()
	second := run()
	if first != second {
		t.Errorf("same seed produced different schedules:\n%v\nvs\n%v",
			first, second)
	}
}

// TestBuildScheduleDeterministicModeA repeats a three-round run where
// every round goes through duplicate resolution; the output must be
// byte-identical across runs under a fixed seed.
func TestBuildScheduleDeterministicModeA(t *testing.T) {
	run := func() string {
		res := BuildSchedule(mixedTeams(Band31To40, 13), []Bar{
			{ID: "b1", Name: "North", AvailableSpots: 15},
			{ID: "b2", Name: "South", AvailableSpots: 15},
		}, testOpts()...)
		return BuildScheduleOutput(res)
	}
	first := run()
	for i := 0; i < 5; i++ {
		if got := run(); got != first {
			t.Fatalf("run %d diverged:\n%v\nvs\n%v", i, got, first)
		}
	}
}
