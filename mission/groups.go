/* Copyright © 2026 The MeetMission Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package mission

import (
	"math/rand"
	"sort"
)

// maxSwapPasses bounds the duplicate-encounter resolution loop. Each
// pass accepts at most one exchange; a pass that clears nothing ends
// the search early.
const maxSwapPasses = 64

// exceedsGenderCap reports whether either gender is above 60% of the
// classified members. Exactly 60% is allowed; unclassified genders do
// not count toward the total.
func exceedsGenderCap(male, female int) bool {
	total := male + female
	if total == 0 {
		return false
	}
	return 5*male > 3*total || 5*female > 3*total
}

// genderDeviation measures how far a male/female split sits from
// 50/50; lower is better.
func genderDeviation(male, female int) float64 {
	total := male + female
	if total == 0 {
		return 0
	}
	d := float64(male)/float64(total) - 0.5
	if d < 0 {
		d = -d
	}
	return d
}

// formGroups fills the planned group slots one team at a time,
// visiting groups round-robin and greedily choosing the unplaced team
// that keeps the running group closest to a 50/50 split. Placements
// that would push either gender above 60% of the group are rejected;
// if a slot has no legal candidate the construction fails and the
// caller cancels the band.
func formGroups(teams []Team, sizes []int, rng *rand.Rand) ([][]Team, bool) {
	remaining := make([]Team, len(teams))
	copy(remaining, teams)
	rng.Shuffle(len(remaining), func(i, j int) {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	})

	groups := make([][]Team, len(sizes))
	males := make([]int, len(sizes))
	females := make([]int, len(sizes))

	maxSize := 0
	for _, s := range sizes {
		if s > maxSize {
			maxSize = s
		}
	}

	for pos := 0; pos < maxSize; pos++ {
		for gi := range sizes {
			if pos >= sizes[gi] {
				continue
			}
			best := -1
			bestDev := 2.0
			for ci, cand := range remaining {
				m := males[gi] + cand.MaleCount()
				f := females[gi] + cand.FemaleCount()
				if exceedsGenderCap(m, f) {
					continue
				}
				if dev := genderDeviation(m, f); dev < bestDev {
					bestDev = dev
					best = ci
				}
			}
			if best < 0 {
				return nil, false
			}
			chosen := remaining[best]
			remaining = append(remaining[:best], remaining[best+1:]...)
			groups[gi] = append(groups[gi], chosen)
			males[gi] += chosen.MaleCount()
			females[gi] += chosen.FemaleCount()
		}
	}

	return groups, true
}

// pairKey builds the unordered team-id pair used for encounter
// history.
func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

// pairHistory is the per-band set of team pairs that have already
// shared a group in an earlier round.
type pairHistory map[[2]string]bool

func (h pairHistory) record(groups [][]Team) {
	for _, g := range groups {
		for i := 0; i < len(g); i++ {
			for j := i + 1; j < len(g); j++ {
				h[pairKey(g[i].ID, g[j].ID)] = true
			}
		}
	}
}

// duplicatesIn returns, per group index, the teams involved in a pair
// that already met in a prior round.
func (h pairHistory) duplicatesIn(groups [][]Team) map[int][][2]int {
	dups := make(map[int][][2]int)
	for gi, g := range groups {
		for i := 0; i < len(g); i++ {
			for j := i + 1; j < len(g); j++ {
				if h[pairKey(g[i].ID, g[j].ID)] {
					dups[gi] = append(dups[gi], [2]int{i, j})
				}
			}
		}
	}
	return dups
}

// conflictsWith reports whether placing team t into group g (ignoring
// index skip) would seat it with a team it already met.
func (h pairHistory) conflictsWith(t Team, g []Team, skip int) bool {
	for i, other := range g {
		if i == skip {
			continue
		}
		if h[pairKey(t.ID, other.ID)] {
			return true
		}
	}
	return false
}

// resolveDuplicates tries bounded local exchanges to clear repeated
// encounters from freshly formed groups. A swap is accepted only when
// it removes the duplicate without creating a new one and both
// affected groups stay within the 60/40 gender cap. Repeats the
// exchanges cannot clear are tolerated; the return value is how many
// duplicate pairs remain so the caller can log them. With only two
// groups in a round every membership has repeats, so a nonzero
// remainder is expected for small bands.
func resolveDuplicates(groups [][]Team, hist pairHistory) int {
	for pass := 0; pass < maxSwapPasses; pass++ {
		dups := hist.duplicatesIn(groups)
		if len(dups) == 0 {
			return 0
		}
		// one accepted swap per pass, then re-derive the duplicate
		// set; indices into groups go stale after any exchange.
		// Visit groups in ascending index order so the seeded
		// shuffle stays the only source of variation.
		var order []int
		for gi := range dups {
			order = append(order, gi)
		}
		sort.Ints(order)

		progressed := false
		for _, gi := range order {
			for _, pair := range dups[gi] {
				if trySwapOut(groups, hist, gi, pair[1]) ||
					trySwapOut(groups, hist, gi, pair[0]) {
					progressed = true
					break
				}
			}
			if progressed {
				break
			}
		}
		if !progressed {
			break
		}
	}
	remaining := 0
	for _, pairs := range hist.duplicatesIn(groups) {
		remaining += len(pairs)
	}
	return remaining
}

// trySwapOut exchanges groups[gi][ti] with some team of another group
// if the exchange leaves both groups duplicate-free and balanced.
func trySwapOut(groups [][]Team, hist pairHistory, gi, ti int) bool {
	out := groups[gi][ti]
	for hj := range groups {
		if hj == gi {
			continue
		}
		for tj, in := range groups[hj] {
			if hist.conflictsWith(in, groups[gi], ti) ||
				hist.conflictsWith(out, groups[hj], tj) {
				continue
			}
			if !swapKeepsBalance(groups[gi], ti, in) ||
				!swapKeepsBalance(groups[hj], tj, out) {
				continue
			}
			groups[gi][ti], groups[hj][tj] = in, out
			return true
		}
	}
	return false
}

// swapKeepsBalance checks the 60/40 cap on a group after replacing the
// team at index idx with repl.
func swapKeepsBalance(g []Team, idx int, repl Team) bool {
	males, females := 0, 0
	for i, t := range g {
		if i == idx {
			t = repl
		}
		males += t.MaleCount()
		females += t.FemaleCount()
	}
	return !exceedsGenderCap(males, females)
}
