/* Copyright © 2026 The MeetMission Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package mission

import (
	"fmt"
	"sort"
	"strings"
)

// BuildTeamsOutput formats built teams into grouped, aligned string
// output, one section per age band, followed by the builder's notes.
func BuildTeamsOutput(res TeamBuildResult) string {
	byBand := make(map[AgeBand][]Team)
	for _, t := range res.Teams {
		byBand[t.Band] = append(byBand[t.Band], t)
	}

	var sb strings.Builder
	for _, band := range AllBands {
		list := byBand[band]
		if len(list) == 0 {
			continue
		}

		type row struct{ name, members, kind string }
		var rows []row
		for _, t := range list {
			var names []string
			for _, m := range t.Members {
				names = append(names, fmt.Sprintf("%s(%d)",
					m.DisplayName(), m.Age))
			}
			kind := ""
			if t.PreRegistered {
				kind = "pre-registered"
			}
			rows = append(rows, row{
				name:    t.Name,
				members: strings.Join(names, ", "),
				kind:    kind,
			})
		}

		// Compute column widths
		maxT, maxM := len("Team"), len("Members")
		for _, r := range rows {
			if l := len(r.name); l > maxT {
				maxT = l
			}
			if l := len(r.members); l > maxM {
				maxM = l
			}
		}

		sb.WriteString(fmt.Sprintf("%s Band\n", band))
		sb.WriteString(fmt.Sprintf("%-*s  %-*s\n", maxT, "Team", maxM,
			"Members"))
		for _, r := range rows {
			sb.WriteString(fmt.Sprintf("%-*s  %-*s  %s\n", maxT, r.name,
				maxM, r.members, r.kind))
		}
		sb.WriteString("\n")
	}

	for _, note := range res.Notes {
		sb.WriteString(fmt.Sprintf("* %s\n", note))
	}

	return sb.String()
}

// BuildScheduleOutput formats a schedule into per-band, per-round
// aligned tables, with cancellations called out in place of rounds.
func BuildScheduleOutput(sr *ScheduleResult) string {
	var sb strings.Builder

	for _, band := range AllBands {
		bs, ok := sr.Bands[band]
		if !ok {
			continue
		}
		if bs.Cancelled != nil {
			sb.WriteString(fmt.Sprintf("%s Band: cancelled (%v)\n\n",
				band, bs.Cancelled.Reason))
			continue
		}

		sb.WriteString(fmt.Sprintf("%s Band (mode %v, %d rounds)\n",
			band, bs.Mode, bs.Mode.Rounds()))

		var rounds []int
		for r := range bs.Rounds {
			rounds = append(rounds, r)
		}
		sort.Ints(rounds)

		for _, round := range rounds {
			type row struct{ bar, teams, seats string }
			var rows []row
			for _, g := range bs.Rounds[round] {
				var names []string
				for _, t := range g.Teams {
					names = append(names, t.Name)
				}
				rows = append(rows, row{
					bar:   g.Bar,
					teams: strings.Join(names, ", "),
					seats: fmt.Sprintf("%d", g.MemberCount()),
				})
			}

			maxB, maxT, maxS := len("Bar"), len("Teams"), len("Seats")
			for _, r := range rows {
				if l := len(r.bar); l > maxB {
					maxB = l
				}
				if l := len(r.teams); l > maxT {
					maxT = l
				}
				if l := len(r.seats); l > maxS {
					maxS = l
				}
			}

			sb.WriteString(fmt.Sprintf("Round %d\n", round))
			sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxB, "Bar",
				maxT, "Teams", maxS, "Seats"))
			for _, r := range rows {
				sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxB, r.bar,
					maxT, r.teams, maxS, r.seats))
			}
			sb.WriteString("\n")
		}
	}

	for _, note := range sr.Notes {
		sb.WriteString(fmt.Sprintf("* %s\n", note))
	}

	return sb.String()
}

// BuildDeficitOutput formats the capacity audit into an aligned table
// for operator alerts.
func BuildDeficitOutput(deficits []BarDeficit) string {
	if len(deficits) == 0 {
		return "All bars have sufficient seats for the schedule\n"
	}

	type row struct{ bar, missing, round string }
	var rows []row
	for _, d := range deficits {
		rows = append(rows, row{
			bar:     d.Bar,
			missing: fmt.Sprintf("%d", d.ExtraSeatsNeeded),
			round:   fmt.Sprintf("%d", d.PeakRound),
		})
	}

	maxB, maxM, maxR := len("Bar"), len("Seats Short"), len("Peak Round")
	for _, r := range rows {
		if l := len(r.bar); l > maxB {
			maxB = l
		}
		if l := len(r.missing); l > maxM {
			maxM = l
		}
		if l := len(r.round); l > maxR {
			maxR = l
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxB, "Bar", maxM,
		"Seats Short", maxR, "Peak Round"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxB, r.bar,
			maxM, r.missing, maxR, r.round))
	}

	return sb.String()
}
