package app

import (
	"peruse/internal/renderer/backend"
	"peruse/internal/view"
)

// handleEvent processes one backend event.
// Returns ErrQuit when the user asked to exit.
func (app *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKey(ev)
	case backend.EventResize:
		app.view.HandleResize(ev.Width, ev.Height)
		return nil
	case backend.EventRefresh:
		app.handleRefresh()
		return nil
	default:
		return nil
	}
}

// handleKey routes navigation keys to the view and detects the quit chord.
// Unrelated keys are ignored.
func (app *Application) handleKey(ev backend.Event) error {
	if ev.Key == backend.KeyCtrlQ || ev.Key == backend.KeyCtrlC {
		return ErrQuit
	}

	if dir, ok := keyDirection(ev.Key); ok {
		app.view.MoveCursor(dir)
	}
	return nil
}

// keyDirection maps a backend key to a cursor movement.
func keyDirection(k backend.Key) (view.Direction, bool) {
	switch k {
	case backend.KeyLeft:
		return view.Left, true
	case backend.KeyRight:
		return view.Right, true
	case backend.KeyUp:
		return view.Up, true
	case backend.KeyDown:
		return view.Down, true
	case backend.KeyPageUp:
		return view.PageUp, true
	case backend.KeyPageDown:
		return view.PageDown, true
	case backend.KeyHome:
		return view.Home, true
	case backend.KeyEnd:
		return view.End, true
	default:
		return 0, false
	}
}

// handleRefresh reloads the document in place after an on-disk change.
// A failed reload keeps the previous content visible; unlike the startup
// load it is not fatal.
func (app *Application) handleRefresh() {
	path := app.view.Document().Path()
	if path == "" {
		return
	}

	if err := app.view.Load(path); err != nil {
		app.logger.Warn("reload failed: %v", NewOperationError("load", path, err))
		return
	}
	app.logger.Debug("reloaded %s (%d lines)", path, app.view.Document().LineCount())
}
