/* Copyright © 2026 The MeetMission Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/Zopsss/meet-mission-sub000/mission"
	"github.com/Zopsss/meet-mission-sub000/roster"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":     handleHelp,
	"events":   handleEvents,
	"teams":    handleTeams,
	"schedule": handleSchedule,
	"bars":     handleBars,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

func handleEvents(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("events", flag.ExitOnError)
	days := fs.Int("days", 30, "Number of days to retrieve (1-90)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	// enforce bounds
	if *days < 1 {
		*days = 1
	} else if *days > 90 {
		*days = 90
	}

	now := time.Now()
	end := now.AddDate(0, 0, *days)

	client := roster.NewClient(ctx)
	events, err := client.GetEvents()
	if err != nil {
		log.Fatalf("Error fetching events: %v", err)
	}
	// Filter and group events by date
	eventsByDate := make(map[string][]roster.Event)
	for _, ev := range events {
		if ev.Date.Before(now) || ev.Date.After(end) {
			continue
		}
		key := ev.Date.Format("2006-01-02")
		eventsByDate[key] = append(eventsByDate[key], ev)
	}

	if len(eventsByDate) == 0 {
		fmt.Printf("No events found in the next %d days.\n", *days)
		return
	}
	var dates []string
	for d := range eventsByDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	for _, d := range dates {
		fmt.Println(d)
		for _, ev := range eventsByDate[d] {
			fmt.Printf("  - %s, %s (EventID:%d, %d attendees, %d bars)\n",
				ev.Title, ev.City, ev.EventID, ev.NumAttendees, ev.NumBars)
		}
	}
	fmt.Printf("\nRun '%s schedule --eventid <EventID>' to plan a specific event\n",
		os.Args[0])
}

func handleTeams(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("teams", flag.ExitOnError)
	eventID := fs.Int64("eventid", 0, "Event ID to build teams for")
	file := fs.String("file", "", "Read the roster from a local JSON file instead")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	r := mustLoadRoster(ctx, *eventID, *file, fs)

	res := mission.BuildTeams(r.Participants())
	fmt.Print(mission.BuildTeamsOutput(res))
}

func handleSchedule(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("schedule", flag.ExitOnError)
	eventID := fs.Int64("eventid", 0, "Event ID to build a schedule for")
	file := fs.String("file", "", "Read the roster from a local JSON file instead")
	seed := fs.Int64("seed", 0, "Shuffle seed for reproducible schedules")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	r := mustLoadRoster(ctx, *eventID, *file, fs)

	sched := buildSchedule(r, *seed)
	fmt.Print(mission.BuildScheduleOutput(sched))
}

func handleBars(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("bars", flag.ExitOnError)
	eventID := fs.Int64("eventid", 0, "Event ID to audit bar capacity for")
	file := fs.String("file", "", "Read the roster from a local JSON file instead")
	seed := fs.Int64("seed", 0, "Shuffle seed for reproducible schedules")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	r := mustLoadRoster(ctx, *eventID, *file, fs)

	sched := buildSchedule(r, *seed)
	deficits := mission.AuditCapacity(sched, r.MissionBars())
	fmt.Print(mission.BuildDeficitOutput(deficits))
	for _, note := range sched.Notes {
		fmt.Printf("* %v\n", note)
	}
}

func buildSchedule(r *roster.EventRoster, seed int64) *mission.ScheduleResult {
	opts := []mission.Option{}
	if seed != 0 {
		opts = append(opts, mission.WithSeed(seed))
	}
	return mission.PlanEvent(r.Participants(), r.MissionBars(), opts...)
}

// mustLoadRoster resolves the roster either from a local JSON file or
// from the MeetMission API; exactly one of eventID/file must be set.
func mustLoadRoster(ctx context.Context, eventID int64, file string,
	fs *flag.FlagSet) *roster.EventRoster {

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			log.Fatalf("Error reading roster file %v: %v", file, err)
		}
		var r roster.EventRoster
		if err := json.Unmarshal(data, &r); err != nil {
			log.Fatalf("Error parsing roster file %v: %v", file, err)
		}
		return &r
	}
	if eventID <= 0 {
		fmt.Fprintln(os.Stderr, "Please provide a valid --eventid ID or --file path.")
		fs.Usage()
		os.Exit(1)
	}
	client := roster.NewClient(ctx)
	r, err := client.GetEventRoster(eventID)
	if err != nil {
		log.Fatalf("Error fetching roster for event %d: %v", eventID, err)
	}
	return r
}
