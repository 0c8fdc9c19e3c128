/* Copyright © 2026 The MeetMission Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roster

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Zopsss/meet-mission-sub000/internal"
)

// getRosterViaWeb fetches the roster by scraping the public website
// pages: the attendee list and the bar list for the given eventId.
// The signup pages carry ages directly rather than birth dates, so
// DateOfBirth is synthesized from the age.
func (client *Client) getRosterViaWeb(eventId int64) (*EventRoster, error) {
	attendeesURL := fmt.Sprintf("%v/event/%d/attendees", internal.WebBaseURL,
		eventId)
	barsURL := fmt.Sprintf("%v/event/%d/bars", internal.WebBaseURL, eventId)

	// Concurrent fetch
	var wg sync.WaitGroup
	var attendeesDoc, barsDoc *goquery.Document
	var errAttendees, errBars error
	wg.Add(2)
	go func() {
		defer wg.Done()
		attendeesDoc, errAttendees = client.fetchDoc(client.httpClient5min,
			attendeesURL)
	}()
	go func() {
		defer wg.Done()
		barsDoc, errBars = client.fetchDoc(client.httpClient5min, barsURL)
	}()
	wg.Wait()

	roster := &EventRoster{EventID: eventId, source: SourceWebsite}

	if errAttendees != nil {
		return nil, fmt.Errorf("unable to fetch attendees page: %w",
			errAttendees)
	}
	if err := parseAttendees(attendeesDoc, roster); err != nil {
		return nil, fmt.Errorf("unable to parse attendees: %w", err)
	}

	if errBars != nil {
		return nil, fmt.Errorf("unable to fetch bars page: %w", errBars)
	}
	if err := parseBars(barsDoc, roster); err != nil {
		return nil, fmt.Errorf("unable to parse bars: %w", err)
	}

	return roster, nil
}

// parseAttendees extracts Attendee entries from the signup table in
// the document.
func parseAttendees(doc *goquery.Document, r *EventRoster) error {
	r.Attendees = nil
	now := time.Now()
	doc.Find("table#attendees tbody tr").Each(func(_ int, s *goquery.Selection) {
		cells := s.Find("td")
		if cells.Length() < 4 {
			return
		}
		id := strings.TrimSpace(cells.Eq(0).Text())
		name := internal.NormalizeName(cells.Eq(1).Text())
		age, _ := strconv.Atoi(strings.TrimSpace(cells.Eq(2).Text()))
		gender := strings.ToLower(strings.TrimSpace(cells.Eq(3).Text()))
		partner := ""
		if cells.Length() > 4 {
			partner = strings.TrimSpace(cells.Eq(4).Text())
		}

		a := Attendee{
			ID:        id,
			Gender:    gender,
			PartnerID: partner,
		}
		if age > 0 {
			a.DateOfBirth = now.AddDate(-age, 0, 0)
		}
		parts := strings.Fields(name)
		if len(parts) > 0 {
			a.FirstName = parts[0]
		}
		if len(parts) > 1 {
			a.LastName = parts[len(parts)-1]
		}
		r.Attendees = append(r.Attendees, a)
	})

	if len(r.Attendees) == 0 {
		return fmt.Errorf("no attendee rows found")
	}

	return nil
}

// parseBars extracts BarEntry rows from the bars table in the
// document.
func parseBars(doc *goquery.Document, r *EventRoster) error {
	r.Bars = nil
	doc.Find("table#bars tbody tr").Each(func(_ int, s *goquery.Selection) {
		cells := s.Find("td")
		if cells.Length() < 3 {
			return
		}
		id := strings.TrimSpace(cells.Eq(0).Text())
		name := strings.TrimSpace(cells.Eq(1).Text())
		spots, _ := strconv.Atoi(strings.TrimSpace(cells.Eq(2).Text()))

		r.Bars = append(r.Bars, BarEntry{
			ID:             id,
			Name:           name,
			AvailableSpots: spots,
		})
	})

	if len(r.Bars) == 0 {
		return fmt.Errorf("no bar rows found")
	}

	return nil
}
