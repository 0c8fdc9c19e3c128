/* Copyright © 2026 The MeetMission Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package mission

// Mode is the (round-count, group-size) policy chosen from a band's
// participant count.
type Mode int

const (
	ModeA Mode = iota
	ModeB
	ModeC
)

// minTeamsPerBand is the cancellation gate checked before mode
// selection. The historical variants disagreed between 6 teams and 12
// participants; this implementation uses 6 teams.
const minTeamsPerBand = 6

func (m Mode) String() string {
	switch m {
	case ModeA:
		return "A"
	case ModeB:
		return "B"
	case ModeC:
		return "C"
	}
	return "?"
}

// Rounds returns the fixed number of rounds a band scheduled under
// this mode plays.
func (m Mode) Rounds() int {
	if m == ModeA {
		return 3
	}
	return 2
}

// GroupSizeMin and GroupSizeMax bound the team count of every group.
func (m Mode) GroupSizeMin() int { return 3 }

func (m Mode) GroupSizeMax() int {
	if m == ModeA {
		return 5
	}
	return 4
}

// MinGroups is the floor on the group count per round.
func (m Mode) MinGroups() int {
	if m == ModeA {
		return 4
	}
	return 2
}

// SelectMode picks the scheduling mode from a band's participant
// count: 24 and up runs the long three-round format, 18 and up the
// standard two-round format, anything smaller the compact one.
func SelectMode(participantCount int) Mode {
	switch {
	case participantCount >= 24:
		return ModeA
	case participantCount >= 18:
		return ModeB
	}
	return ModeC
}
