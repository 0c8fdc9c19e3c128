/* Copyright © 2026 The MeetMission Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package mission

// planGroupSizes computes the team count of each group for one band
// and round: pick the smallest workable group count no lower than the
// mode's floor, start every group at the minimum size, then fill the
// remainder one group at a time up to each group's max. Returns false
// when no split satisfies the sum and bounds simultaneously.
func planGroupSizes(teamCount int, mode Mode) ([]int, bool) {
	minSize := mode.GroupSizeMin()
	maxSize := mode.GroupSizeMax()

	lo := (teamCount + maxSize - 1) / maxSize
	if lo < mode.MinGroups() {
		lo = mode.MinGroups()
	}
	hi := teamCount / minSize

	for g := lo; g <= hi; g++ {
		if g*minSize > teamCount || g*maxSize < teamCount {
			continue
		}
		sizes := make([]int, g)
		for i := range sizes {
			sizes[i] = minSize
		}
		rem := teamCount - g*minSize
		for i := 0; i < g && rem > 0; i++ {
			take := maxSize - minSize
			if take > rem {
				take = rem
			}
			sizes[i] += take
			rem -= take
		}
		return sizes, true
	}

	return nil, false
}
