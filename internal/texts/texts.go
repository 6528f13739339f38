// Package texts is the uz/ru message catalog. All user-facing strings live
// here so the dispatcher and the Telegram handlers share one source.
package texts

import (
	"fmt"
	"strings"

	"github.com/azamatbyte/ramadan/internal/domain"
)

type catalog struct {
	welcome        string
	selectRegion   string
	setupComplete  string
	saharReminder  string
	iftarReminder  string
	todayTimes     string
	checktimeIftar string
	checktimeSahar string
	notRamadan     string
	duaTitle       string
	saharDua       string
	iftarDua       string

	saharCaption string
	iftarCaption string

	askLocation      string
	locationSaved    string
	locationNotFound string
	prayerTimes      string
	prayerReminder   string
	needStart        string

	prayerNames map[domain.TriggerKind]string
}

var catalogs = map[domain.Language]catalog{
	domain.LangUZ: {
		welcome:        "Assalomu alaykum! Ramadan botiga xush kelibsiz.\nTilni tanlang:",
		selectRegion:   "Hududingizni tanlang:",
		setupComplete:  "✅ Sozlamalar saqlandi!",
		saharReminder:  "⏰ Saharlik uchun 10 daqiqa qoldi!\nSaharlik vaqti: {time}",
		iftarReminder:  "⏰ Iftorlik uchun 10 daqiqa qoldi!\nIftorlik vaqti: {time}",
		todayTimes:     "📅 Bugungi vaqtlar ({date}):\n🌅 Saharlik: {sahar}\n🌙 Iftorlik: {iftar}",
		checktimeIftar: "🌙 Hozir ro'za vaqti. Iftorlik uchun {hours} soat {minutes} daqiqa qoldi.\nIftorlik vaqti: {time}",
		checktimeSahar: "🌅 Hozir iftorlik vaqti yoki ro'za vaqti tugadi. Keyingi saharlik uchun {hours} soat {minutes} daqiqa.\nSaharlik vaqti: {time}",
		notRamadan:     "❌ Bugun Ramazon oyida emas.",
		duaTitle:       "🤲 Duolar:",
		saharDua:       "🌅 Saharlik duosi:\nНавайту ан асувма совма шахри рамазона минал фажри илал магриби, холисан лиллахи тааалаа, Аллоху акбар.",
		iftarDua:       "🌙 Iftorlik duosi:\nАллохумма лака сумту ва бика аманту ва аъалайка таваккалту ва бала ризкука афтарту, фагфирли, йа Ғоффару, ма коддамту вама аххорту.",

		saharCaption: "🌅 Saharlik vaqti",
		iftarCaption: "🌙 Iftorlik vaqti",

		askLocation:      "📍 Joylashuvingizni yuboring yoki shahar nomini yozing:",
		locationSaved:    "✅ Joylashuv saqlandi: {place}",
		locationNotFound: "❌ Joylashuv topilmadi. Qaytadan urinib ko'ring.",
		prayerTimes:      "🕌 Bugungi namoz vaqtlari:\nBomdod: {fajr}\nPeshin: {dhuhr}\nAsr: {asr}\nShom: {maghrib}\nXufton: {isha}",
		prayerReminder:   "🕌 {prayer} vaqti kirdi: {time}",
		needStart:        "Iltimos, avval /start ni bosing / Пожалуйста, сначала нажмите /start",

		prayerNames: map[domain.TriggerKind]string{
			domain.KindFajr:    "Bomdod",
			domain.KindDhuhr:   "Peshin",
			domain.KindAsr:     "Asr",
			domain.KindMaghrib: "Shom",
			domain.KindIsha:    "Xufton",
		},
	},
	domain.LangRU: {
		welcome:        "Ассаляму алейкум! Добро пожаловать в бот Рамадана.\nВыберите язык:",
		selectRegion:   "Выберите ваш регион:",
		setupComplete:  "✅ Настройки сохранены!",
		saharReminder:  "⏰ До сухура осталось 10 минут!\nВремя сухура: {time}",
		iftarReminder:  "⏰ До ифтара осталось 10 минут!\nВремя ифтара: {time}",
		todayTimes:     "📅 Время на сегодня ({date}):\n🌅 Сухур: {sahar}\n🌙 Ифтар: {iftar}",
		checktimeIftar: "🌙 Сейчас время поста. До ифтара осталось {hours} часов {minutes} минут.\nВремя ифтара: {time}",
		checktimeSahar: "🌅 Сейчас время ифтара или пост закончился. До следующего сухура {hours} часов {minutes} минут.\nВремя сухура: {time}",
		notRamadan:     "❌ Сегодня не Рамадан.",
		duaTitle:       "🤲 Дуолар:",
		saharDua:       "🌅 Дуа перед сухуром:\nНавайту ан асувма совма шахри рамазона минал фажри илал магриби, холисан лиллахи тааалаа, Аллоху акбар.",
		iftarDua:       "🌙 Дуа при ифтаре:\nАллохумма лака сумту ва бика аманту ва аъалайка таваккалту ва бала ризкука афтарту, фагфирли, йа Ғоффару, ма коддамту вама аххорту.",

		saharCaption: "🌅 Время сухура",
		iftarCaption: "🌙 Время ифтара",

		askLocation:      "📍 Отправьте свою геолокацию или напишите название города:",
		locationSaved:    "✅ Локация сохранена: {place}",
		locationNotFound: "❌ Локация не найдена. Попробуйте ещё раз.",
		prayerTimes:      "🕌 Время намазов на сегодня:\nФаджр: {fajr}\nЗухр: {dhuhr}\nАср: {asr}\nМагриб: {maghrib}\nИша: {isha}",
		prayerReminder:   "🕌 Наступило время намаза {prayer}: {time}",
		needStart:        "Iltimos, avval /start ni bosing / Пожалуйста, сначала нажмите /start",

		prayerNames: map[domain.TriggerKind]string{
			domain.KindFajr:    "Фаджр",
			domain.KindDhuhr:   "Зухр",
			domain.KindAsr:     "Аср",
			domain.KindMaghrib: "Магриб",
			domain.KindIsha:    "Иша",
		},
	},
}

func get(lang domain.Language) catalog {
	if c, ok := catalogs[lang]; ok {
		return c
	}
	return catalogs[domain.LangUZ]
}

func fill(tmpl string, pairs ...string) string {
	r := strings.NewReplacer(pairs...)
	return r.Replace(tmpl)
}

func Welcome(lang domain.Language) string       { return get(lang).welcome }
func SelectRegion(lang domain.Language) string  { return get(lang).selectRegion }
func SetupComplete(lang domain.Language) string { return get(lang).setupComplete }
func NotRamadan(lang domain.Language) string    { return get(lang).notRamadan }
func NeedStart(lang domain.Language) string     { return get(lang).needStart }
func AskLocation(lang domain.Language) string   { return get(lang).askLocation }

func LocationSaved(lang domain.Language, place string) string {
	return fill(get(lang).locationSaved, "{place}", place)
}

func LocationNotFound(lang domain.Language) string { return get(lang).locationNotFound }

// Reminder builds the notification text for a trigger kind. For the two
// fasting kinds it is a caption for the rendered image; for prayer kinds it
// is a plain message.
func Reminder(lang domain.Language, kind domain.TriggerKind, timeText string) string {
	c := get(lang)
	switch kind {
	case domain.KindSahar:
		return fill(c.saharReminder, "{time}", timeText)
	case domain.KindIftar:
		return fill(c.iftarReminder, "{time}", timeText)
	default:
		return fill(c.prayerReminder, "{prayer}", c.prayerNames[kind], "{time}", timeText)
	}
}

func TodayTimes(lang domain.Language, date, sahar, iftar string) string {
	return fill(get(lang).todayTimes, "{date}", date, "{sahar}", sahar, "{iftar}", iftar)
}

func TimeCaption(lang domain.Language, kind domain.TriggerKind) string {
	if kind == domain.KindIftar {
		return get(lang).iftarCaption
	}
	return get(lang).saharCaption
}

func CheckTimeIftar(lang domain.Language, hours, minutes int, timeText string) string {
	return fill(get(lang).checktimeIftar,
		"{hours}", fmt.Sprint(hours), "{minutes}", fmt.Sprint(minutes), "{time}", timeText)
}

func CheckTimeSahar(lang domain.Language, hours, minutes int, timeText string) string {
	return fill(get(lang).checktimeSahar,
		"{hours}", fmt.Sprint(hours), "{minutes}", fmt.Sprint(minutes), "{time}", timeText)
}

func Duas(lang domain.Language) string {
	c := get(lang)
	return c.duaTitle + "\n\n" + c.saharDua + "\n\n" + c.iftarDua
}

func PrayerTimes(lang domain.Language, fajr, dhuhr, asr, maghrib, isha string) string {
	return fill(get(lang).prayerTimes,
		"{fajr}", fajr, "{dhuhr}", dhuhr, "{asr}", asr, "{maghrib}", maghrib, "{isha}", isha)
}
