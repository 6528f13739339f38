package domain

// Language selects the message catalog for a subscriber.
type Language string

const (
	LangUZ Language = "uz"
	LangRU Language = "ru"
)

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool { return l == LangUZ || l == LangRU }

// TriggerKind identifies one of the seven daily notification kinds.
// Each kind owns exactly one dedup-marker slot per subscriber per day.
type TriggerKind string

const (
	KindSahar   TriggerKind = "sahar"
	KindIftar   TriggerKind = "iftar"
	KindFajr    TriggerKind = "fajr"
	KindDhuhr   TriggerKind = "dhuhr"
	KindAsr     TriggerKind = "asr"
	KindMaghrib TriggerKind = "maghrib"
	KindIsha    TriggerKind = "isha"
)

// Kinds returns all trigger kinds in their fixed processing order.
func Kinds() []TriggerKind {
	return []TriggerKind{KindSahar, KindIftar, KindFajr, KindDhuhr, KindAsr, KindMaghrib, KindIsha}
}

// PrayerKinds returns the five prayer kinds in processing order.
func PrayerKinds() []TriggerKind {
	return []TriggerKind{KindFajr, KindDhuhr, KindAsr, KindMaghrib, KindIsha}
}

// Fasting reports whether k is one of the two fasting-window kinds, which get
// a rendered image instead of plain text.
func (k TriggerKind) Fasting() bool { return k == KindSahar || k == KindIftar }

// Category separates the two subscriber namespaces. Individuals are keyed by
// Telegram user ID, groups by chat ID; the two sets never collide even when
// raw IDs do.
type Category string

const (
	CategoryIndividual Category = "individual"
	CategoryGroup      Category = "group"
)

// ChatRef is the tagged identity of a subscriber: which namespace it lives in
// and its ID there. It replaces any sign-of-the-number guessing about whether
// a chat is a group; the category is fixed when the chat is first observed.
type ChatRef struct {
	Category Category
	ID       int64
}

// Coordinates is a geographic point for prayer-time computation.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Subscriber is one chat's notification settings and delivery state. An
// individual and a group share the same shape; defaults differ at creation.
type Subscriber struct {
	// ChatID is the Telegram chat notifications are delivered to. For groups
	// it equals the record key; for individuals it is the private chat ID.
	ChatID   int64        `json:"chat_id"`
	Language Language     `json:"lang,omitempty"`
	Region   string       `json:"region,omitempty"`
	Location *Coordinates `json:"location,omitempty"`

	// LastFired maps a trigger kind to the calendar date it last fired on.
	// A kind fires at most once while today equals its stored date.
	LastFired map[TriggerKind]string `json:"last_fired,omitempty"`

	// AwaitingLocation marks that the next message from this chat should be
	// interpreted as a location for prayer reminders.
	AwaitingLocation bool `json:"awaiting_location,omitempty"`
}

// FiredOn reports whether kind already fired on the given date.
func (s *Subscriber) FiredOn(kind TriggerKind, date string) bool {
	return s.LastFired[kind] == date
}

// MarkFired stamps the dedup marker for kind with date.
func (s *Subscriber) MarkFired(kind TriggerKind, date string) {
	if s.LastFired == nil {
		s.LastFired = make(map[TriggerKind]string)
	}
	s.LastFired[kind] = date
}

// ClearFired removes the marker for kind. Used to roll back a stamp whose
// persist failed, so the next tick still sees the trigger as pending.
func (s *Subscriber) ClearFired(kind TriggerKind) {
	delete(s.LastFired, kind)
}

// Lang returns the subscriber's language, defaulting to Uzbek.
func (s *Subscriber) Lang() Language {
	if s.Language.Valid() {
		return s.Language
	}
	return LangUZ
}
