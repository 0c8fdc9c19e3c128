/* Copyright © 2026 The MeetMission Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roster

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Zopsss/meet-mission-sub000/internal"
	"github.com/Zopsss/meet-mission-sub000/mission"
)

// vended by https://api.meetmission.app/api/event/<eventId>/roster
// EventRoster carries everything the scheduling engine needs for one
// event: the attendee pool and the participating bars.
type EventRoster struct {
	EventID   int64      `json:"eventId"`
	Title     string     `json:"title"`
	EventDate time.Time  `json:"eventDate"`
	Attendees []Attendee `json:"attendees"`
	Bars      []BarEntry `json:"bars"`

	source Source
}

// Attendee is one registration record as vended by the API.
type Attendee struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Gender      string    `json:"gender"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	PartnerID   string    `json:"partnerId"`
}

// BarEntry is one participating venue as vended by the API.
type BarEntry struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	AvailableSpots int    `json:"availableSpots"`
}

type Source int

const (
	SourceAPI Source = iota
	SourceWebsite
)

func (s Source) String() string {
	if s == SourceAPI {
		return "api"
	} else if s == SourceWebsite {
		return "website"
	} else {
		return "?"
	}
}

func (r EventRoster) Source() Source {
	return r.source
}

// GetEventRoster fetches the roster for a given eventId, trying the
// JSON API and the public website concurrently and preferring the API
// response.
func (client *Client) GetEventRoster(eventId int64) (*EventRoster, error) {
	var wg sync.WaitGroup
	var rViaApi, rViaWeb *EventRoster
	var apiErr, webErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		rViaApi, apiErr = client.getRosterViaApi(eventId)
	}()
	go func() {
		defer wg.Done()
		rViaWeb, webErr = client.getRosterViaWeb(eventId)
	}()
	wg.Wait()

	// prefer the api response
	if apiErr != nil {
		if webErr != nil {
			return rViaApi, apiErr
		} // else
		return rViaWeb, nil
	} // else

	return rViaApi, apiErr
}

// getRosterViaApi fetches the roster from the JSON API.
func (client *Client) getRosterViaApi(eventId int64) (*EventRoster, error) {
	url := fmt.Sprintf("%v/api/event/%d/roster", internal.APIBaseURL, eventId)

	resp, err := client.getJSON(client.httpClient5min, url)
	if err != nil {
		return &EventRoster{}, err
	}
	defer resp.Body.Close()

	roster := &EventRoster{
		source: SourceAPI,
	}
	if err := json.NewDecoder(resp.Body).Decode(&roster); err != nil {
		return &EventRoster{}, fmt.Errorf("unable to parse roster: %w", err)
	}

	if len(roster.Attendees) == 0 && len(roster.Bars) == 0 {
		err = fmt.Errorf("roster API returned an empty response")
		return &EventRoster{}, err
	}

	return roster, nil
}

// Custom unmarshaller for EventRoster to handle flexible date parsing.
func (r *EventRoster) UnmarshalJSON(data []byte) error {
	type Alias EventRoster
	aux := &struct {
		EventDate string          `json:"eventDate"`
		Attendees json.RawMessage `json:"attendees"`
		*Alias
	}{
		Alias: (*Alias)(r),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("EventRoster unmarshal: %w", err)
	}
	var err error
	r.EventDate, err = internal.ParseDateOrZero(aux.EventDate)
	if err != nil {
		return fmt.Errorf("parsing EventRoster.EventDate: %w", err)
	}
	if len(aux.Attendees) > 0 {
		if err := json.Unmarshal(aux.Attendees, &r.Attendees); err != nil {
			return fmt.Errorf("parsing EventRoster.Attendees: %w", err)
		}
	}
	return nil
}

// Custom unmarshaller for Attendee to handle flexible date-of-birth
// formats.
func (a *Attendee) UnmarshalJSON(data []byte) error {
	type Alias Attendee
	aux := &struct {
		DateOfBirth string `json:"dateOfBirth"`
		*Alias
	}{
		Alias: (*Alias)(a),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("Attendee unmarshal: %w", err)
	}
	var err error
	a.DateOfBirth, err = internal.ParseDateOrZero(aux.DateOfBirth)
	if err != nil {
		return fmt.Errorf("parsing Attendee.DateOfBirth: %w", err)
	}
	return nil
}

// Participants converts the roster's attendees into engine input,
// computing each age as of the event date.
func (r *EventRoster) Participants() []mission.Participant {
	at := r.EventDate
	if at.IsZero() {
		at = time.Now()
	}

	var out []mission.Participant
	for _, a := range r.Attendees {
		out = append(out, mission.Participant{
			ID:        a.ID,
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Age:       internal.AgeAt(a.DateOfBirth, at),
			Gender:    mission.Gender(a.Gender),
			PartnerID: a.PartnerID,
		})
	}
	return out
}

// MissionBars converts the roster's bar entries into engine input.
func (r *EventRoster) MissionBars() []mission.Bar {
	var out []mission.Bar
	for _, b := range r.Bars {
		out = append(out, mission.Bar{
			ID:             b.ID,
			Name:           b.Name,
			AvailableSpots: b.AvailableSpots,
		})
	}
	return out
}
