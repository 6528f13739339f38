package scheduler

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/azamatbyte/ramadan/internal/domain"
	"github.com/azamatbyte/ramadan/internal/store"
	"github.com/azamatbyte/ramadan/internal/texts"
)

// Sender is the minimal transport the dispatcher needs. telegram.Router
// implements it.
type Sender interface {
	SendText(chatID int64, text string) error
	SendPhoto(chatID int64, photo []byte, caption string) error
}

// Renderer produces the overlay image for a fasting-window kind.
// render.Renderer implements it.
type Renderer interface {
	Render(kind domain.TriggerKind, timeText string) ([]byte, error)
}

// Dispatcher turns a firing into a delivered, localized notification and
// stamps the dedup marker. The marker is written only after the transport
// accepted the send, and only counts once persisted; any earlier failure
// leaves the trigger pending.
type Dispatcher struct {
	repo     store.Repo
	sender   Sender
	renderer Renderer
	log      *zap.Logger
}

func NewDispatcher(repo store.Repo, sender Sender, renderer Renderer, log *zap.Logger) *Dispatcher {
	return &Dispatcher{repo: repo, sender: sender, renderer: renderer, log: log}
}

// Dispatch sends the notification for f and records that it fired today.
func (d *Dispatcher) Dispatch(f Firing, today string) error {
	lang := f.Sub.Lang()
	timeText := f.Time.String()
	body := texts.Reminder(lang, f.Kind, timeText)

	if f.Kind.Fasting() {
		img, err := d.renderer.Render(f.Kind, timeText)
		if err != nil {
			return fmt.Errorf("render %s: %w", f.Kind, err)
		}
		if err := d.sender.SendPhoto(f.Sub.ChatID, img, body); err != nil {
			return fmt.Errorf("send photo: %w", err)
		}
	} else {
		if err := d.sender.SendText(f.Sub.ChatID, body); err != nil {
			return fmt.Errorf("send text: %w", err)
		}
	}

	if err := d.repo.Stamp(f.Ref, f.Kind, today); err != nil {
		// A next tick within the same minute may resend; past it the day's
		// notification for this kind is missed. Both are accepted over the
		// alternative of double-firing.
		return fmt.Errorf("stamp %s: %w", f.Kind, err)
	}
	return nil
}
