package telegram

import (
	"context"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/azamatbyte/ramadan/internal/domain"
	"github.com/azamatbyte/ramadan/internal/geocode"
	"github.com/azamatbyte/ramadan/internal/scheduler"
	"github.com/azamatbyte/ramadan/internal/store"
)

// Router wires Telegram updates to handlers.
type Router struct {
	bot      *tgbotapi.BotAPI
	log      *zap.Logger
	repo     store.Repo
	renderer scheduler.Renderer
	prayers  scheduler.PrayerProvider
	geocoder *geocode.Client
	loc      *time.Location
}

func NewRouter(
	bot *tgbotapi.BotAPI,
	log *zap.Logger,
	repo store.Repo,
	renderer scheduler.Renderer,
	prayers scheduler.PrayerProvider,
	geocoder *geocode.Client,
	loc *time.Location,
) *Router {
	return &Router{
		bot:      bot,
		log:      log,
		repo:     repo,
		renderer: renderer,
		prayers:  prayers,
		geocoder: geocoder,
		loc:      loc,
	}
}

// refFor fixes a chat's category at the point it is first observed: group
// chats are keyed by chat ID, private chats by the sender's user ID.
func refFor(chat *tgbotapi.Chat, from *tgbotapi.User) domain.ChatRef {
	if chat.IsGroup() || chat.IsSuperGroup() {
		return domain.ChatRef{Category: domain.CategoryGroup, ID: chat.ID}
	}
	return domain.ChatRef{Category: domain.CategoryIndividual, ID: from.ID}
}

// HandleUpdate routes a single update to the appropriate handler.
func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message != nil {
		msg := upd.Message
		ref := refFor(msg.Chat, msg.From)
		chatID := msg.Chat.ID

		if msg.Location != nil {
			r.handleLocationShared(ctx, ref, chatID, msg.Location.Latitude, msg.Location.Longitude)
			return
		}

		text := strings.TrimSpace(msg.Text)
		switch {
		case strings.HasPrefix(text, "/start"):
			r.handleStart(chatID)
		case strings.HasPrefix(text, "/today"):
			r.handleToday(ref, chatID)
		case strings.HasPrefix(text, "/region"):
			r.handleRegion(ref, chatID)
		case strings.HasPrefix(text, "/checktime"):
			r.handleCheckTime(ref, chatID)
		case strings.HasPrefix(text, "/dua"):
			r.handleDua(ref, chatID)
		case strings.HasPrefix(text, "/location"):
			r.handleLocationCommand(ref, chatID)
		case strings.HasPrefix(text, "/prayers"):
			r.handlePrayers(ctx, ref, chatID)
		default:
			r.handleFreeForm(ctx, ref, chatID, text)
		}
		return
	}

	if upd.CallbackQuery != nil {
		cb := upd.CallbackQuery
		ref := refFor(cb.Message.Chat, cb.From)
		chatID := cb.Message.Chat.ID

		// Answer right away; an expired callback is not worth aborting for.
		if _, err := r.bot.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
			r.log.Debug("answer callback failed", zap.Error(err))
		}

		data := cb.Data
		switch {
		case strings.HasPrefix(data, "lang_"):
			r.handleLangCallback(ref, chatID, cb.Message.MessageID, strings.TrimPrefix(data, "lang_"))
		case strings.HasPrefix(data, "region_"):
			r.handleRegionCallback(ref, chatID, cb.Message.MessageID, strings.TrimPrefix(data, "region_"))
		default:
			// Unknown callback, ignore.
		}
	}
}

// SendText sends a plain text message. This makes Router satisfy
// scheduler.Sender.
func (r *Router) SendText(chatID int64, text string) error {
	_, err := r.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// SendPhoto sends image bytes with a caption, the other half of
// scheduler.Sender.
func (r *Router) SendPhoto(chatID int64, photo []byte, caption string) error {
	msg := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "time.png", Bytes: photo})
	msg.Caption = caption
	_, err := r.bot.Send(msg)
	return err
}
