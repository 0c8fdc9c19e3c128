/* Copyright © 2026 The MeetMission Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Zopsss/meet-mission-sub000/mission"
	"github.com/Zopsss/meet-mission-sub000/roster"
)

type MmSubCommand string

const (
	MmAboutCmd    MmSubCommand = "about"
	MmHelpCmd     MmSubCommand = "help"
	MmEventsCmd   MmSubCommand = "events"
	MmTeamsCmd    MmSubCommand = "teams"
	MmScheduleCmd MmSubCommand = "schedule"
	MmBarsCmd     MmSubCommand = "bars"
)

var mmSubCmdHdlrs = map[MmSubCommand]CmdHandler{
	MmAboutCmd:    mmAboutCmdHandler,
	MmHelpCmd:     mmHelpCmdHandler,
	MmEventsCmd:   mmEventsCmdHandler,
	MmTeamsCmd:    mmTeamsCmdHandler,
	MmScheduleCmd: mmScheduleCmdHandler,
	MmBarsCmd:     mmBarsCmdHandler,
}

func mmCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	data := inter.ApplicationCommandData()
	hdlr := mmHelpCmdHandler
	if len(data.Options) > 0 {
		if subName := data.Options[0].Name; subName != "" {
			h, ok := mmSubCmdHdlrs[MmSubCommand(subName)]
			if ok {
				hdlr = h
			}
		}
	}
	return hdlr(ctx, inter)
}

//go:embed about.txt
var aboutText string

func mmAboutCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	resp.Data.Content = truncateContent(aboutText)

	return resp
}

//go:embed help.md
var helpText string

func mmHelpCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	resp.Data.Content = truncateContent(helpText)
	return resp
}

func mmEventsCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	data := inter.ApplicationCommandData()
	days := int64(30)  // default
	broadcast := false // default
	if len(data.Options) > 0 {
		for _, opt := range data.Options[0].Options {
			if opt.Name == "days" {
				days = opt.IntValue()
			} else if opt.Name == "broadcast" {
				broadcast = opt.BoolValue()
			}
		}
	}
	// enforce bounds
	if days <= 0 {
		days = 30
	} else if days > 90 {
		days = 90
	}

	now := time.Now()
	end := now.AddDate(0, 0, int(days))

	events, err := rosterClient.GetEvents()
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error fetching events: %v", err)
		log.Printf("discordbot.events: %v", resp.Data.Content)
		return resp
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
		resp.Data.Content = fmt.Sprintf("No events found in the next %d days.",
			days)
		log.Printf("discordbot.events: %v", resp.Data.Content)
		return resp
	}

	var datesList []string
	for d := range eventsByDate {
		datesList = append(datesList, d)
	}
	sort.Strings(datesList)
	var sb strings.Builder
	for _, d := range datesList {
		sb.WriteString(fmt.Sprintf("**%s**\n", d))
		for _, ev := range eventsByDate[d] {
			sb.WriteString(fmt.Sprintf("- %v, %v (EventID:%v)\n", ev.Title,
				ev.City, ev.EventID))
		}
	}
	sb.WriteString("\nRun /mm schedule <EventID> to build the schedule for a specific event\n")
	resp.Data.Content = truncateContent(sb.String())

	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

// mmTeamsCmdHandler handles the /mm teams command to display the teams
// the engine would build from an event's current roster
func mmTeamsCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
	eventID, broadcast, ok := eventIdOption(inter, resp, "teams")
	if !ok {
		return resp
	}

	r, err := rosterClient.GetEventRoster(eventID)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error fetching roster for event %d: %v",
			eventID, err)
		log.Printf("discordbot.teams: %v", resp.Data.Content)
		return resp
	}

	built := mission.BuildTeams(r.Participants())

	// Wrap output in code block for monospace formatting in Discord
	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(mission.BuildTeamsOutput(built)))

	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

// mmScheduleCmdHandler handles the /mm schedule command to display the
// full per-round group and bar assignment for an event
func mmScheduleCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
	eventID, broadcast, ok := eventIdOption(inter, resp, "schedule")
	if !ok {
		return resp
	}

	r, err := rosterClient.GetEventRoster(eventID)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error fetching roster for event %d: %v",
			eventID, err)
		log.Printf("discordbot.schedule: %v", resp.Data.Content)
		return resp
	}

	sched := mission.PlanEvent(r.Participants(), r.MissionBars(),
		mission.WithSeed(eventID))

	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(mission.BuildScheduleOutput(sched)))

	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

// mmBarsCmdHandler handles the /mm bars command to display the
// capacity audit for an event's schedule
func mmBarsCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
	eventID, broadcast, ok := eventIdOption(inter, resp, "bars")
	if !ok {
		return resp
	}

	r, err := rosterClient.GetEventRoster(eventID)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error fetching roster for event %d: %v",
			eventID, err)
		log.Printf("discordbot.bars: %v", resp.Data.Content)
		return resp
	}

	bars := r.MissionBars()
	sched := mission.PlanEvent(r.Participants(), bars,
		mission.WithSeed(eventID))
	deficits := mission.AuditCapacity(sched, bars)

	var sb strings.Builder
	sb.WriteString(mission.BuildDeficitOutput(deficits))
	for _, note := range sched.Notes {
		sb.WriteString(fmt.Sprintf("* %v\n", note))
	}
	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(sb.String()))

	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

// eventIdOption extracts the required eventid option plus the optional
// broadcast flag, filling resp with an error message when absent.
func eventIdOption(inter *discordgo.Interaction,
	resp *discordgo.InteractionResponse, cmdName string) (int64, bool, bool) {

	data := inter.ApplicationCommandData()
	broadcast := false // default
	var eventID int64
	found := false
	if len(data.Options) > 0 {
		for _, opt := range data.Options[0].Options {
			if opt.Name == "eventid" {
				eventID = opt.IntValue()
				found = true
			} else if opt.Name == "broadcast" {
				broadcast = opt.BoolValue()
			}
		}
	}
	if !found {
		resp.Data.Content = "Please provide an event ID."
		log.Printf("discordbot.%v: %v", cmdName, resp.Data.Content)
	}
	return eventID, broadcast, found
}

// https://discord.com/developers/docs/resources/channel#start-thread-in-forum-or-media-channel-forum-and-media-thread-message-params-object
// limits messages to 2k characters
func truncateContent(s string) string {
	const MsgLimit = 1988 // keep space for newlines and markdown
	runes := []rune(s)
	if len(runes) > MsgLimit {
		s = fmt.Sprintf("%v...", string(runes[:MsgLimit]))
	}
	return s
}
