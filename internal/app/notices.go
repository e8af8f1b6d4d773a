package app

import (
	"github.com/Sadvi2004/CodeForge/internal/event"
	"github.com/Sadvi2004/CodeForge/internal/event/events"
	"github.com/Sadvi2004/CodeForge/internal/event/topic"
)

// User-facing notice messages.
const (
	MsgNothingToUndo   = "Nothing more to undo"
	MsgNothingToRedo   = "Nothing more to redo"
	MsgNothingToExport = "Nothing to download! Write some code first."
	MsgExported        = "ZIP downloaded!"
	MsgConfigReloaded  = "Configuration reloaded"
	MsgNothingToCopy   = "Nothing to copy!"
	MsgCopied          = "Copied!"
	MsgCopyFailed      = "Copy failed"
	MsgClipboardEmpty  = "Clipboard is empty"
)

// Notice returns the most recent notice.
func (app *Application) Notice() events.Notice {
	return app.notice
}

// ClearNotice removes the current notice.
func (app *Application) ClearNotice() {
	app.notice = events.Notice{}
}

// Notify records msg as the current notice, logs it and publishes it.
func (app *Application) Notify(msg string, sev events.Severity) {
	app.notice = events.Notice{Message: msg, Severity: sev}

	log := app.logger.WithComponent("notice")
	switch sev {
	case events.SeverityError:
		log.Error("%s", msg)
	case events.SeverityWarn:
		log.Warn("%s", msg)
	default:
		log.Info("%s", msg)
	}

	publish(app, events.TopicNotice, app.notice)
}

// publish delivers payload on the application bus. Handler errors are
// logged rather than returned; a failing subscriber must not undo an edit.
func publish[T any](app *Application, t topic.Topic, payload T) {
	if err := app.bus.Publish(event.NewEvent(t, payload, "app")); err != nil {
		app.logger.Warn("publish %s: %v", t, err)
	}
}
