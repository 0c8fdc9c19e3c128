/* Copyright © 2026 The MeetMission Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roster

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Zopsss/meet-mission-sub000/internal"
)

// vended by https://api.meetmission.app/api/events
// Event summarizes one upcoming MeetMission event.
type Event struct {
	EventID            int64     `json:"eventId"`
	Title              string    `json:"title"`
	City               string    `json:"city"`
	Date               time.Time `json:"date"`
	RegistrationEnd    time.Time `json:"registrationEnd"`
	IsRegistrationOpen bool      `json:"isRegistrationOpen"`
	NumAttendees       int       `json:"numAttendees"`
	NumBars            int       `json:"numBars"`
}

// GetEvents fetches the upcoming event list from the MeetMission API.
func (client *Client) GetEvents() ([]Event, error) {
	url := fmt.Sprintf("%v/api/events", internal.APIBaseURL)

	resp, err := client.getJSON(client.httpClient1day, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var events []Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("unable to parse events: %w", err)
	}

	return events, nil
}

// Custom unmarshaller to handle non-RFC3339 timestamps, "null", and
// empty strings.
func (e *Event) UnmarshalJSON(data []byte) error {
	type Alias Event
	aux := &struct {
		Date            string `json:"date"`
		RegistrationEnd string `json:"registrationEnd"`
		*Alias
	}{
		Alias: (*Alias)(e),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("Event unmarshal: %w", err)
	}
	var err error
	e.Date, err = internal.ParseDateOrZero(aux.Date)
	if err != nil {
		return fmt.Errorf("parsing Event.Date: %w", err)
	}
	e.RegistrationEnd, err = internal.ParseDateOrZero(aux.RegistrationEnd)
	if err != nil {
		return fmt.Errorf("parsing Event.RegistrationEnd: %w", err)
	}
	return nil
}
