// Package bot is the Discord glue around the report pipeline: a few
// prefix commands plus the channel the daily report is delivered to.
package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/big21ray/soloqtracker-discord/internal/config"
	"github.com/big21ray/soloqtracker-discord/internal/service"
	"github.com/big21ray/soloqtracker-discord/internal/todo"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

type Bot struct {
	session   *discordgo.Session
	reporter  *service.Reporter
	todos     *todo.List
	channelID string
	logger    zerolog.Logger
}

func New(cfg *config.Config, reporter *service.Reporter, todos *todo.List, logger zerolog.Logger) (*Bot, error) {
	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("creating discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	b := &Bot{
		session:   session,
		reporter:  reporter,
		todos:     todos,
		channelID: cfg.ChannelID,
		logger:    logger,
	}
	session.AddHandler(b.onReady)
	session.AddHandler(b.onMessage)
	return b, nil
}

func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("opening discord session: %w", err)
	}
	return nil
}

func (b *Bot) Stop() error {
	return b.session.Close()
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info().Str("user", r.User.String()).Msg("connected to discord")
}

func (b *Bot) onMessage(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	content := strings.TrimSpace(m.Content)
	switch {
	case content == "!report":
		b.handleReport(m.ChannelID)
	case strings.HasPrefix(content, "!send "):
		b.handleSend(m.ChannelID, strings.TrimSpace(strings.TrimPrefix(content, "!send ")))
	case content == "!todo" || strings.HasPrefix(content, "!todo "):
		b.handleTodo(m.ChannelID, strings.TrimSpace(strings.TrimPrefix(content, "!todo")))
	}
}

func (b *Bot) handleReport(channelID string) {
	text, _, err := b.reporter.BuildReport(context.Background())
	if err != nil {
		if errors.Is(err, service.ErrRunInProgress) {
			b.reply(channelID, "A report is already being built, hang on.")
			return
		}
		b.logger.Error().Err(err).Msg("report build failed")
		b.reply(channelID, fmt.Sprintf("Report failed: %v", err))
		return
	}
	b.reply(channelID, codeBlock(text))
}

// handleSend relays a message to the configured report channel.
func (b *Bot) handleSend(channelID, message string) {
	if b.channelID == "" {
		b.reply(channelID, "No report channel configured.")
		return
	}
	b.reply(b.channelID, message)
	if channelID != b.channelID {
		b.reply(channelID, "Message sent.")
	}
}

func (b *Bot) handleTodo(channelID, args string) {
	sub, rest, _ := strings.Cut(args, " ")
	rest = strings.TrimSpace(rest)

	switch sub {
	case "add":
		if rest == "" {
			b.reply(channelID, "Usage: `!todo add <text>`")
			return
		}
		item, err := b.todos.Add(rest)
		if err != nil {
			b.reply(channelID, fmt.Sprintf("Could not add todo: %v", err))
			return
		}
		b.reply(channelID, fmt.Sprintf("Added `%s`: %s", item.ID, item.Text))
	case "done":
		if err := b.todos.Done(rest); err != nil {
			b.reply(channelID, fmt.Sprintf("Could not mark done: %v", err))
			return
		}
		b.reply(channelID, fmt.Sprintf("Done: `%s`", rest))
	case "rm":
		if err := b.todos.Remove(rest); err != nil {
			b.reply(channelID, fmt.Sprintf("Could not remove: %v", err))
			return
		}
		b.reply(channelID, fmt.Sprintf("Removed: `%s`", rest))
	case "", "list":
		items, err := b.todos.Items()
		if err != nil {
			b.reply(channelID, fmt.Sprintf("Could not list todos: %v", err))
			return
		}
		if len(items) == 0 {
			b.reply(channelID, "Nothing to do.")
			return
		}
		var sb strings.Builder
		for _, item := range items {
			mark := " "
			if item.Done {
				mark = "x"
			}
			fmt.Fprintf(&sb, "[%s] `%s` %s\n", mark, item.ID, item.Text)
		}
		b.reply(channelID, sb.String())
	default:
		b.reply(channelID, "Usage: `!todo [add <text>|list|done <id>|rm <id>]`")
	}
}

// DeliverDailyReport builds the report and posts it to the configured
// channel. Used by the scheduler; an in-flight run just logs and skips.
func (b *Bot) DeliverDailyReport() {
	if b.channelID == "" {
		b.logger.Warn().Msg("CHANNEL_ID not set, skipping daily report")
		return
	}

	text, _, err := b.reporter.BuildReport(context.Background())
	if err != nil {
		if errors.Is(err, service.ErrRunInProgress) {
			b.logger.Warn().Msg("daily report skipped, run already in progress")
			return
		}
		b.logger.Error().Err(err).Msg("daily report build failed")
		return
	}
	b.reply(b.channelID, codeBlock(text))
}

func (b *Bot) reply(channelID, message string) {
	if _, err := b.session.ChannelMessageSend(channelID, message); err != nil {
		b.logger.Error().Err(err).Str("channel_id", channelID).Msg("failed to send discord message")
	}
}

func codeBlock(s string) string {
	return "```\n" + s + "\n```"
}
