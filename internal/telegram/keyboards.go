package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/azamatbyte/ramadan/internal/domain"
	"github.com/azamatbyte/ramadan/internal/timetable"
)

const regionsPerRow = 2

func languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🇺🇿 O'zbek", "lang_uz"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🇷🇺 Кириллица", "lang_ru"),
		),
	)
}

// regionKeyboard lays all regions out two per row with localized names.
func regionKeyboard(lang domain.Language) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, region := range timetable.Regions() {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(region.Name(lang), "region_"+region.Key))
		if len(row) == regionsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
