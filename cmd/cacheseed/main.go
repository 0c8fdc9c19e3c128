/* Copyright © 2026 The MeetMission Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Zopsss/meet-mission-sub000/roster"
)

// this program exists just to seed the http cache for upcoming events

func main() {
	ctx := context.Background()
	client := roster.NewClient(ctx)

	events, err := client.GetEvents()
	if err != nil {
		// best effort
		return
	}

	now := time.Now()
	for _, ev := range events {
		if ev.Date.Before(now) {
			continue
		}
		r, err := client.GetEventRoster(ev.EventID)
		time.Sleep(2 * time.Second) // avoid pegging meetmission.app
		if err != nil {
			// best effort
			continue
		}

		fmt.Printf("seeded %v (%v attendees, %v bars)\n", ev.Title,
			len(r.Attendees), len(r.Bars))
	}
}
