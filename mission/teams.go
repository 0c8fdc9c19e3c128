/* Copyright © 2026 The MeetMission Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package mission

import (
	"fmt"
	"math"
	"sort"
)

// TeamBuildResult is the Team Builder's output: the formed teams plus
// a human-readable note for every exclusion or unplaceable leftover.
type TeamBuildResult struct {
	Teams []Team
	Notes []string
}

// BuildTeams partitions participants into two-or-three-person teams.
// Pre-registered partner pairs in the same age band are preserved
// as-is; the rest are paired opposite-gender by age proximity within
// their band, then surplus same-gender participants among themselves,
// and a final odd participant is absorbed into the best-fitting
// existing pair. Nothing here fails hard: participants that cannot be
// served are dropped with a note.
func BuildTeams(participants []Participant, opts ...Option) TeamBuildResult {
	cfg := newRunConfig(opts)
	res := TeamBuildResult{}

	byID := make(map[string]Participant, len(participants))
	for _, p := range participants {
		byID[p.ID] = p
	}

	consumed := make(map[string]bool)
	pending := make(map[AgeBand][]Participant)

	for _, p := range participants {
		if consumed[p.ID] {
			continue
		}
		band, ok := ClassifyAge(p.Age)
		if !ok {
			res.Notes = append(res.Notes, fmt.Sprintf(
				"excluded %v (id %v): age %v is outside the supported bands",
				p.DisplayName(), p.ID, p.Age))
			consumed[p.ID] = true
			continue
		}

		if partner, ok := resolvePartner(p, byID, consumed); ok {
			pband, pok := ClassifyAge(partner.Age)
			if pok && pband == band {
				res.Teams = append(res.Teams,
					newTeam(cfg, band, true, p, partner))
				consumed[p.ID] = true
				consumed[partner.ID] = true
				continue
			}
			res.Notes = append(res.Notes, fmt.Sprintf(
				"%v and %v pre-registered together but fall in different age bands; pairing them individually instead",
				p.DisplayName(), partner.DisplayName()))
		}

		pending[band] = append(pending[band], p)
		consumed[p.ID] = true
	}

	for _, band := range AllBands {
		buildBandTeams(cfg, band, pending[band], &res)
	}

	return res
}

// resolvePartner returns the partner participant when p carries a link
// that resolves to a mutual, still-unconsumed participant.
func resolvePartner(p Participant, byID map[string]Participant,
	consumed map[string]bool) (Participant, bool) {

	if p.PartnerID == "" || p.PartnerID == p.ID {
		return Participant{}, false
	}
	partner, ok := byID[p.PartnerID]
	if !ok || consumed[partner.ID] {
		return Participant{}, false
	}
	// a directional link is honored only when the reverse side is
	// either absent or points back
	if partner.PartnerID != "" && partner.PartnerID != p.ID {
		return Participant{}, false
	}
	return partner, true
}

// buildBandTeams pairs one band's pending pool: opposite-gender
// index-zip over the age-sorted male and female lists, then surplus
// same-gender pairs, then odd-one-out absorption.
func buildBandTeams(cfg *runConfig, band AgeBand, pool []Participant,
	res *TeamBuildResult) {

	var males, females, others []Participant
	for _, p := range pool {
		switch p.Gender {
		case GenderMale:
			males = append(males, p)
		case GenderFemale:
			females = append(females, p)
		default:
			others = append(others, p)
		}
	}
	byAge := func(s []Participant) {
		sort.SliceStable(s, func(i, j int) bool { return s[i].Age < s[j].Age })
	}
	byAge(males)
	byAge(females)

	// index-zip pairing: i-th youngest male with i-th youngest female.
	// This approximates age proximity without an optimal matching.
	n := len(males)
	if len(females) < n {
		n = len(females)
	}
	for i := 0; i < n; i++ {
		res.Teams = append(res.Teams,
			newTeam(cfg, band, false, males[i], females[i]))
	}

	leftovers := append(males[n:], females[n:]...)
	leftovers = append(leftovers, others...)
	byAge(leftovers)

	for len(leftovers) >= 2 {
		res.Teams = append(res.Teams,
			newTeam(cfg, band, false, leftovers[0], leftovers[1]))
		leftovers = leftovers[2:]
	}

	if len(leftovers) == 1 {
		absorbLeftover(band, leftovers[0], res)
	}
}

// absorbLeftover appends the final odd participant to the existing
// two-person, non-pre-registered team in the same band whose average
// age sits closest to the leftover's, skipping teams whose members all
// share the leftover's gender. Ties go to the first team found.
func absorbLeftover(band AgeBand, p Participant, res *TeamBuildResult) {
	bestIdx := -1
	bestDelta := math.MaxFloat64
	for i, t := range res.Teams {
		if t.Band != band || t.PreRegistered || t.Size() != 2 {
			continue
		}
		if t.countGender(p.Gender) == t.Size() {
			continue
		}
		delta := math.Abs(t.AverageAge() - float64(p.Age))
		if delta < bestDelta {
			bestDelta = delta
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		res.Notes = append(res.Notes, fmt.Sprintf(
			"could not place %v (id %v, band %v): no team can absorb a third member",
			p.DisplayName(), p.ID, band))
		return
	}
	res.Teams[bestIdx].Members = append(res.Teams[bestIdx].Members,
		snapshotMember(p))
}

func newTeam(cfg *runConfig, band AgeBand, preRegistered bool,
	members ...Participant) Team {

	t := Team{
		ID:            cfg.idGen(),
		Name:          cfg.nextTeamName(),
		Band:          band,
		PreRegistered: preRegistered,
	}
	for _, p := range members {
		t.Members = append(t.Members, snapshotMember(p))
	}
	return t
}

func snapshotMember(p Participant) TeamMember {
	return TeamMember{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Age:       p.Age,
		Gender:    p.Gender,
	}
}
