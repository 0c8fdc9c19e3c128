/* Copyright © 2026 The MeetMission Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package mission

import "fmt"

// Gender is the attendee-supplied gender tag. Values outside the two
// enumerated constants are carried through untouched but are excluded
// from all ratio arithmetic.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Participant is the engine's input record for one attendee. The
// engine never mutates participants; PartnerID is a directional
// pre-registration link which must resolve to a mutual pairing when
// both sides carry one.
type Participant struct {
	ID        string
	FirstName string
	LastName  string
	Age       int
	Gender    Gender
	PartnerID string
}

func (p Participant) DisplayName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}

// TeamMember is a shallow snapshot of a participant's attributes at
// team-building time.
type TeamMember struct {
	ID        string
	FirstName string
	LastName  string
	Age       int
	Gender    Gender
}

func (m TeamMember) DisplayName() string {
	if m.LastName == "" {
		return m.FirstName
	}
	return fmt.Sprintf("%s %s", m.FirstName, m.LastName)
}

// Team is the atomic unit scheduled into groups: two attendees, or
// three after odd-one-out absorption. A pre-registered team always
// has exactly two members and is never modified after creation.
type Team struct {
	ID            string
	Name          string
	Band          AgeBand
	Members       []TeamMember
	PreRegistered bool
}

func (t Team) Size() int { return len(t.Members) }

// AverageAge returns the mean member age, used when absorbing an odd
// leftover into the closest-fitting team.
func (t Team) AverageAge() float64 {
	if len(t.Members) == 0 {
		return 0
	}
	sum := 0
	for _, m := range t.Members {
		sum += m.Age
	}
	return float64(sum) / float64(len(t.Members))
}

func (t Team) countGender(g Gender) int {
	n := 0
	for _, m := range t.Members {
		if m.Gender == g {
			n++
		}
	}
	return n
}

func (t Team) MaleCount() int   { return t.countGender(GenderMale) }
func (t Team) FemaleCount() int { return t.countGender(GenderFemale) }

// Bar is a venue with a finite seat count. Seats are shared across all
// age bands scheduled in the same round.
type Bar struct {
	ID             string
	Name           string
	AvailableSpots int
}

// Group is one set of teams sharing a bar during one round.
type Group struct {
	ID    string
	Round int
	Band  AgeBand
	BarID string
	Bar   string
	Teams []Team
}

// MemberCount is the number of seats the group occupies.
func (g Group) MemberCount() int {
	n := 0
	for _, t := range g.Teams {
		n += t.Size()
	}
	return n
}

func (g Group) maleCount() int {
	n := 0
	for _, t := range g.Teams {
		n += t.MaleCount()
	}
	return n
}

func (g Group) femaleCount() int {
	n := 0
	for _, t := range g.Teams {
		n += t.FemaleCount()
	}
	return n
}

// CancelReason enumerates why a band could not be scheduled.
type CancelReason int

const (
	CancelTooFewTeams CancelReason = iota
	CancelGenderRatio
	CancelNoDistribution
	CancelUnbalancedGroups
	CancelNoBarCapacity
)

func (r CancelReason) String() string {
	switch r {
	case CancelTooFewTeams:
		return "too few teams"
	case CancelGenderRatio:
		return "gender ratio violation"
	case CancelNoDistribution:
		return "cannot distribute teams into groups"
	case CancelUnbalancedGroups:
		return "cannot form gender-balanced groups"
	case CancelNoBarCapacity:
		return "no bar has capacity for a whole group"
	}
	return "?"
}

// Cancellation records that a band was dropped from the schedule and
// which teams were affected. It is returned instead of rounds; the
// rest of the event proceeds without the band.
type Cancellation struct {
	Band   AgeBand
	Reason CancelReason
	Teams  []Team
}

// BandSchedule is the outcome for one age band: either Rounds (round
// number to group list) or Cancelled, never both.
type BandSchedule struct {
	Band      AgeBand
	Mode      Mode
	Rounds    map[int][]Group
	Cancelled *Cancellation
}

// ScheduleResult carries the per-band outcomes plus the flat note log
// describing every automatic decision taken during scheduling.
// Callers are expected to surface Notes verbatim to operators.
type ScheduleResult struct {
	Bands map[AgeBand]*BandSchedule
	Notes []string
}

// Cancellations collects the cancellation records across all bands in
// band order.
func (sr *ScheduleResult) Cancellations() []Cancellation {
	var out []Cancellation
	for _, band := range AllBands {
		bs, ok := sr.Bands[band]
		if ok && bs.Cancelled != nil {
			out = append(out, *bs.Cancelled)
		}
	}
	return out
}

// MaxRounds returns the highest round number present in any scheduled
// band.
func (sr *ScheduleResult) MaxRounds() int {
	maxR := 0
	for _, bs := range sr.Bands {
		if bs.Cancelled != nil {
			continue
		}
		if r := bs.Mode.Rounds(); r > maxR {
			maxR = r
		}
	}
	return maxR
}
