package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sandevgo/advogado/internal/config"
	"github.com/sandevgo/advogado/internal/core"
	"github.com/sandevgo/advogado/internal/service/resolver"
	"github.com/sandevgo/advogado/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

const greeting = "Olá! Eu sou o " + core.BotName + ". Envie sua dúvida sobre leis ou procedimentos " +
	"legais no Brasil e eu tentarei ajudar. Lembre-se: minhas respostas são apenas orientativas."

type Resolver interface {
	Resolve(ctx context.Context, req resolver.Request) resolver.Result
}

type Bot struct {
	bot      *tele.Bot
	resolver Resolver
	commands core.CmdRouter
	sender   *sender
}

// NewBot creates the bot. cmds may be nil, then every message is a question.
func NewBot(ctx context.Context, cfg *config.TelegramConfig, r Resolver, cmds core.CmdRouter) (*Bot, error) {
	if r == nil {
		return nil, errors.New("telegram: resolver must not be nil")
	}

	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:      b,
		resolver: r,
		commands: cmds,
		sender:   newSender(b),
	}

	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	b.Handle("/start", bot.handleStart)
	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("bot", b.bot.Me.Username).Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleStart(c tele.Context) error {
	return c.Send(greeting)
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)

	identity := chatIdentity(c.Chat().ID)

	if b.commands != nil {
		userID, _ := identity.UserID(ctx)
		if reply, ok := b.commands.Execute(ctx, userID, c.Text()); ok {
			return b.sender.sendMarkdown(ctx, c.Chat(), reply, true)
		}
	}

	_ = c.Notify(tele.Typing)

	res := b.resolver.Resolve(ctx, resolver.Request{
		Question: c.Text(),
		Identity: identity,
		Platform: core.PlatformTelegram,
	})

	if err := b.sender.sendMarkdown(ctx, c.Chat(), res.Answer, false); err != nil {
		logger.Error().Err(err).Int64("chat_id", c.Chat().ID).Msg("failed to deliver answer")
		return err
	}
	return nil
}

func chatIdentity(chatID int64) core.Identity {
	return core.StaticIdentity("telegram_" + strconv.FormatInt(chatID, 10))
}
