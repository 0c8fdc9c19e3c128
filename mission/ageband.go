/* Copyright © 2026 The MeetMission Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package mission

// AgeBand segments participants into one of four fixed, contiguous age
// ranges. Everything downstream of the team builder (modes, groups,
// rounds) is computed per band.
type AgeBand int

const (
	BandNone AgeBand = iota
	Band20To30
	Band31To40
	Band41To50
	Band51Plus
)

// AllBands lists the valid bands in ascending age order.
var AllBands = []AgeBand{Band20To30, Band31To40, Band41To50, Band51Plus}

func (b AgeBand) String() string {
	switch b {
	case Band20To30:
		return "20-30"
	case Band31To40:
		return "31-40"
	case Band41To50:
		return "41-50"
	case Band51Plus:
		return "51+"
	}
	return "?"
}

// ClassifyAge maps an age to its band. Ages below 20 are not served
// and return (BandNone, false); callers are expected to exclude such
// participants with a note rather than fail.
func ClassifyAge(age int) (AgeBand, bool) {
	switch {
	case age < 20:
		return BandNone, false
	case age <= 30:
		return Band20To30, true
	case age <= 40:
		return Band31To40, true
	case age <= 50:
		return Band41To50, true
	}
	return Band51Plus, true
}
