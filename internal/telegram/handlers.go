package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/azamatbyte/ramadan/internal/domain"
	"github.com/azamatbyte/ramadan/internal/geocode"
	"github.com/azamatbyte/ramadan/internal/texts"
	"github.com/azamatbyte/ramadan/internal/timetable"
)

// referenceRegion is used when a chat asks for times before picking a region.
const referenceRegion = "toshkent"

func (r *Router) sendText(chatID int64, text string) {
	if err := r.SendText(chatID, text); err != nil {
		r.log.Error("send failed", zap.Error(err), zap.Int64("chat_id", chatID))
	}
}

// handleStart greets in both languages and offers the language choice.
func (r *Router) handleStart(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "Assalomu alaykum! / Ассаляму алейкум!\nTilni tanlang / Выберите язык:")
	msg.ReplyMarkup = languageKeyboard()
	if _, err := r.bot.Send(msg); err != nil {
		r.log.Error("send start failed", zap.Error(err), zap.Int64("chat_id", chatID))
	}
}

func (r *Router) handleLangCallback(ref domain.ChatRef, chatID int64, messageID int, code string) {
	lang := domain.Language(code)
	if !lang.Valid() {
		return
	}
	err := r.repo.Update(ref, func(s *domain.Subscriber) {
		s.ChatID = chatID
		s.Language = lang
	})
	if err != nil {
		r.log.Error("save language failed", zap.Error(err), zap.Int64("chat_id", chatID))
		return
	}
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, texts.SelectRegion(lang), regionKeyboard(lang))
	if _, err := r.bot.Send(edit); err != nil {
		r.log.Error("edit message failed", zap.Error(err), zap.Int64("chat_id", chatID))
	}
}

func (r *Router) handleRegionCallback(ref domain.ChatRef, chatID int64, messageID int, regionKey string) {
	if _, ok := timetable.RegionByKey(regionKey); !ok {
		return
	}
	err := r.repo.Update(ref, func(s *domain.Subscriber) {
		s.ChatID = chatID
		s.Region = regionKey
	})
	if err != nil {
		r.log.Error("save region failed", zap.Error(err), zap.Int64("chat_id", chatID))
		return
	}
	sub, _ := r.repo.Get(ref)
	edit := tgbotapi.NewEditMessageText(chatID, messageID, texts.SetupComplete(sub.Lang()))
	if _, err := r.bot.Send(edit); err != nil {
		r.log.Error("edit message failed", zap.Error(err), zap.Int64("chat_id", chatID))
	}
	r.showTodayTimes(ref, chatID)
}

func (r *Router) handleToday(ref domain.ChatRef, chatID int64) {
	r.showTodayTimes(ref, chatID)
}

// showTodayTimes sends today's sahar/iftar times and the two rendered images.
// Outside Ramadan it sends nothing.
func (r *Router) showTodayTimes(ref domain.ChatRef, chatID int64) {
	sub, err := r.repo.GetOrCreate(ref)
	if err != nil {
		r.log.Error("get subscriber failed", zap.Error(err), zap.Int64("chat_id", chatID))
		return
	}
	lang := sub.Lang()
	region := sub.Region
	if region == "" {
		region = referenceRegion
	}

	now := time.Now().In(r.loc)
	day, ok := timetable.DayFor(now.Format(domain.DateLayout))
	if !ok {
		return
	}
	times, err := timetable.TimesFor(region, day.Index)
	if err != nil {
		r.log.Warn("resolve times failed", zap.Error(err), zap.Int64("chat_id", chatID))
		return
	}

	r.sendText(chatID, texts.TodayTimes(lang, day.Date, times.Sahar.String(), times.Iftar.String()))

	for _, f := range []struct {
		kind domain.TriggerKind
		at   domain.Clock
	}{
		{domain.KindSahar, times.Sahar},
		{domain.KindIftar, times.Iftar},
	} {
		img, err := r.renderer.Render(f.kind, f.at.String())
		if err != nil {
			r.log.Error("render failed", zap.Error(err), zap.String("kind", string(f.kind)))
			continue
		}
		if err := r.SendPhoto(chatID, img, texts.TimeCaption(lang, f.kind)); err != nil {
			r.log.Error("send photo failed", zap.Error(err), zap.Int64("chat_id", chatID))
		}
	}
}

// needsSetup gates private chats that have not finished /start. Groups are
// usable immediately with their defaults.
func (r *Router) needsSetup(ref domain.ChatRef, sub domain.Subscriber) bool {
	return ref.Category == domain.CategoryIndividual && sub.Language == ""
}

func (r *Router) handleRegion(ref domain.ChatRef, chatID int64) {
	sub, err := r.repo.GetOrCreate(ref)
	if err != nil {
		r.log.Error("get subscriber failed", zap.Error(err), zap.Int64("chat_id", chatID))
		return
	}
	if r.needsSetup(ref, sub) {
		r.sendText(chatID, texts.NeedStart(sub.Lang()))
		return
	}
	msg := tgbotapi.NewMessage(chatID, texts.SelectRegion(sub.Lang()))
	msg.ReplyMarkup = regionKeyboard(sub.Lang())
	if _, err := r.bot.Send(msg); err != nil {
		r.log.Error("send region keyboard failed", zap.Error(err), zap.Int64("chat_id", chatID))
	}
}

// fastState is the answer to "where are we in today's fast": either fasting
// with time left until iftar, or waiting with time left until the next sahar.
type fastState struct {
	fasting  bool
	hours    int
	minutes  int
	boundary domain.Clock
}

// checkTimeAt evaluates the fast state for a region at a moment. The second
// result is false outside Ramadan.
func checkTimeAt(region string, now time.Time) (fastState, bool) {
	day, ok := timetable.DayFor(now.Format(domain.DateLayout))
	if !ok {
		return fastState{}, false
	}
	times, err := timetable.TimesFor(region, day.Index)
	if err != nil {
		return fastState{}, false
	}
	cur := domain.ClockOf(now)

	if cur >= times.Sahar && cur < times.Iftar {
		left := times.Iftar.Sub(cur)
		return fastState{fasting: true, hours: left / 60, minutes: left % 60, boundary: times.Iftar}, true
	}

	if cur >= times.Iftar {
		// After iftar: count to tomorrow's sahar if the table still covers it.
		tomorrow := now.AddDate(0, 0, 1).Format(domain.DateLayout)
		if nextDay, ok := timetable.DayFor(tomorrow); ok {
			if nextTimes, err := timetable.TimesFor(region, nextDay.Index); err == nil {
				left := 24*60 - int(cur) + int(nextTimes.Sahar)
				return fastState{hours: left / 60, minutes: left % 60, boundary: nextTimes.Sahar}, true
			}
		}
		// Last day of Ramadan: nothing left to count.
		return fastState{boundary: times.Sahar}, true
	}

	// Before sahar.
	left := times.Sahar.Sub(cur)
	return fastState{hours: left / 60, minutes: left % 60, boundary: times.Sahar}, true
}

func (r *Router) handleCheckTime(ref domain.ChatRef, chatID int64) {
	sub, err := r.repo.GetOrCreate(ref)
	if err != nil {
		r.log.Error("get subscriber failed", zap.Error(err), zap.Int64("chat_id", chatID))
		return
	}
	if ref.Category == domain.CategoryIndividual && sub.Region == "" {
		r.sendText(chatID, texts.NeedStart(sub.Lang()))
		return
	}
	lang := sub.Lang()
	region := sub.Region
	if region == "" {
		region = referenceRegion
	}

	state, ok := checkTimeAt(region, time.Now().In(r.loc))
	if !ok {
		r.sendText(chatID, texts.NotRamadan(lang))
		return
	}

	kind := domain.KindSahar
	body := texts.CheckTimeSahar(lang, state.hours, state.minutes, state.boundary.String())
	if state.fasting {
		kind = domain.KindIftar
		body = texts.CheckTimeIftar(lang, state.hours, state.minutes, state.boundary.String())
	}
	r.sendText(chatID, body)

	img, err := r.renderer.Render(kind, state.boundary.String())
	if err != nil {
		r.log.Error("render failed", zap.Error(err), zap.String("kind", string(kind)))
		return
	}
	if err := r.SendPhoto(chatID, img, texts.TimeCaption(lang, kind)); err != nil {
		r.log.Error("send photo failed", zap.Error(err), zap.Int64("chat_id", chatID))
	}
}

func (r *Router) handleDua(ref domain.ChatRef, chatID int64) {
	sub, err := r.repo.GetOrCreate(ref)
	if err != nil {
		r.log.Error("get subscriber failed", zap.Error(err), zap.Int64("chat_id", chatID))
		return
	}
	if r.needsSetup(ref, sub) {
		r.sendText(chatID, texts.NeedStart(sub.Lang()))
		return
	}
	r.sendText(chatID, texts.Duas(sub.Lang()))
}

// handleLocationCommand arms location capture: the next location attachment
// or free-text message sets the chat's prayer coordinates.
func (r *Router) handleLocationCommand(ref domain.ChatRef, chatID int64) {
	err := r.repo.Update(ref, func(s *domain.Subscriber) {
		s.ChatID = chatID
		s.AwaitingLocation = true
	})
	if err != nil {
		r.log.Error("arm location capture failed", zap.Error(err), zap.Int64("chat_id", chatID))
		return
	}
	sub, _ := r.repo.Get(ref)
	r.sendText(chatID, texts.AskLocation(sub.Lang()))
}

func (r *Router) handleLocationShared(ctx context.Context, ref domain.ChatRef, chatID int64, lat, lon float64) {
	place := geocode.Place{
		Coordinates: domain.Coordinates{Latitude: lat, Longitude: lon},
		DisplayName: fmt.Sprintf("%.4f, %.4f", lat, lon),
	}
	r.saveLocation(ctx, ref, chatID, place)
}

// handleFreeForm interprets plain text as a location only when capture is
// armed; everything else is ignored.
func (r *Router) handleFreeForm(ctx context.Context, ref domain.ChatRef, chatID int64, text string) {
	sub, ok := r.repo.Get(ref)
	if !ok || !sub.AwaitingLocation || text == "" {
		return
	}
	place, err := r.geocoder.Resolve(ctx, text)
	if err != nil {
		if errors.Is(err, geocode.ErrNotFound) {
			r.sendText(chatID, texts.LocationNotFound(sub.Lang()))
			return
		}
		r.log.Error("geocode failed", zap.Error(err), zap.Int64("chat_id", chatID))
		return
	}
	r.saveLocation(ctx, ref, chatID, place)
}

func (r *Router) saveLocation(ctx context.Context, ref domain.ChatRef, chatID int64, place geocode.Place) {
	coords := place.Coordinates
	err := r.repo.Update(ref, func(s *domain.Subscriber) {
		s.ChatID = chatID
		s.Location = &coords
		s.AwaitingLocation = false
	})
	if err != nil {
		r.log.Error("save location failed", zap.Error(err), zap.Int64("chat_id", chatID))
		return
	}
	sub, _ := r.repo.Get(ref)
	r.sendText(chatID, texts.LocationSaved(sub.Lang(), place.DisplayName))
	r.sendPrayerTimes(ctx, ref, chatID)
}

func (r *Router) handlePrayers(ctx context.Context, ref domain.ChatRef, chatID int64) {
	sub, err := r.repo.GetOrCreate(ref)
	if err != nil {
		r.log.Error("get subscriber failed", zap.Error(err), zap.Int64("chat_id", chatID))
		return
	}
	if sub.Location == nil {
		r.handleLocationCommand(ref, chatID)
		return
	}
	r.sendPrayerTimes(ctx, ref, chatID)
}

func (r *Router) sendPrayerTimes(ctx context.Context, ref domain.ChatRef, chatID int64) {
	sub, ok := r.repo.Get(ref)
	if !ok || sub.Location == nil {
		return
	}
	today := time.Now().In(r.loc).Format(domain.DateLayout)
	times, err := r.prayers.Times(ctx, *sub.Location, today)
	if err != nil {
		r.log.Warn("prayer times unavailable", zap.Error(err), zap.Int64("chat_id", chatID))
		return
	}
	r.sendText(chatID, texts.PrayerTimes(sub.Lang(),
		times.Fajr.String(), times.Dhuhr.String(), times.Asr.String(),
		times.Maghrib.String(), times.Isha.String()))
}
