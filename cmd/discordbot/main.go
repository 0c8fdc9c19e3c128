/* Copyright © 2026 The MeetMission Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/bwmarrin/discordgo"

	"github.com/Zopsss/meet-mission-sub000/roster"
)

// credentials come from the environment so the binary carries no
// secrets
const (
	envBotToken  = "MM_DISCORD_BOT_TOKEN"
	envBotPubKey = "MM_DISCORD_PUBLIC_KEY"
	envBotAppId  = "MM_DISCORD_APP_ID"
)

var botPubKey ed25519.PublicKey
var botAppId string

var client *discordgo.Session
var rosterClient *roster.Client

type TopLevelCommand string

const (
	MmCmd TopLevelCommand = "mm"
)

type CmdHandler func(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse

var topLevelCmdHdlrs = map[TopLevelCommand]CmdHandler{
	MmCmd: mmCmdHandler,
}

func interactionHandler(w http.ResponseWriter, r *http.Request) {
	if !discordgo.VerifyInteraction(r, botPubKey) {
		log.Printf("discordbot.int: failed to verify")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("discordbot.int: failed to read request body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var inter discordgo.Interaction
	if err := inter.UnmarshalJSON(body); err != nil {
		log.Printf("discordbot.int: failed to unmarshal interaction: err:%v body:%v",
			err, body)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resp := &discordgo.InteractionResponse{}
	if inter.Type == discordgo.InteractionPing {
		resp.Type = discordgo.InteractionResponsePong
	} else if inter.Type == discordgo.InteractionApplicationCommand {
		hdlr, ok :=
			topLevelCmdHdlrs[TopLevelCommand(inter.ApplicationCommandData().Name)]
		if !ok {
			resp.Type = discordgo.InteractionResponseChannelMessageWithSource
			resp.Data = &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("unknown command '%v'",
					inter.ApplicationCommandData().Name),
				Flags: discordgo.MessageFlagsEphemeral,
			}
		} else {
			resp = hdlr(r.Context(), &inter)
		}
	} else {
		log.Printf("discordbot.int: unimplemented interaction type %v: inter:%v",
			inter.Type, inter)
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	rawResp, err := json.Marshal(resp)
	if err != nil {
		log.Printf("discordbot.int: failed to marshal resp: err:%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_, err = w.Write(rawResp)
	if err != nil {
		log.Printf("discordbot.int: failed to write resp: err:%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}

func init() {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))

	pubKeyBytes, err := hex.DecodeString(os.Getenv(envBotPubKey))
	if err != nil || len(pubKeyBytes) == 0 {
		log.Fatalf("discordbot.init: failed to parse %v: %v", envBotPubKey, err)
	}
	botPubKey = ed25519.PublicKey(pubKeyBytes)
	botAppId = os.Getenv(envBotAppId)

	client, err = discordgo.New("Bot " + os.Getenv(envBotToken))
	if err != nil {
		log.Fatalf("discordbot.init: failed to initialize discord client: %v",
			err)
	}

	rosterClient = roster.NewClient(context.Background())
}

func registerSlashCommands() {
	mmCmd := &discordgo.ApplicationCommand{
		Name:        string(MmCmd),
		Description: "MeetMission scheduling commands; try /mm help to start",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(MmHelpCmd),
				Description: "Show usage for mm",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(MmAboutCmd),
				Description: "Show information about the MeetMission scheduler",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(MmEventsCmd),
				Description: "Show upcoming events",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "days",
						Description: "Number of days to retrieve (default is 30)",
						Required:    false,
					},
					{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "broadcast",
						Description: "Share with the rest of the channel instead of only to you (default is false)",
						Required:    false,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(MmTeamsCmd),
				Description: "Build and show teams from an event's roster",
				Options:     eventIdOptions(),
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(MmScheduleCmd),
				Description: "Build and show the round schedule for an event",
				Options:     eventIdOptions(),
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(MmBarsCmd),
				Description: "Audit bar capacity for an event's schedule",
				Options:     eventIdOptions(),
			},
		},
	}

	cmd, err := client.ApplicationCommandCreate(botAppId, "", mmCmd)
	if err != nil {
		log.Printf("discordbot.reg: failed to register %v: %v", mmCmd.Name, err)
		return
	}

	log.Printf("discordbot.reg: registered %v(cmdID:%v)", cmd.Name, cmd.ID)
}

func eventIdOptions() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "eventid",
			Description: "Event id (as returned by events)",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "broadcast",
			Description: "Share with the rest of the channel instead of only to you (default is false)",
			Required:    false,
		},
	}
}

func main() {
	go registerSlashCommands()

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}
	log.Printf("discordbot.main: starting server on %v:8080", hostname)

	http.HandleFunc("/DiscordBot/Interaction", interactionHandler)
	if err := http.ListenAndServe(":8080", nil); err != nil {
		log.Fatalf("discordbot.main: Serve failed: %v", err)
	}

	log.Printf("discordbot.main: exiting")
}
