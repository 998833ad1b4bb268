package session

import (
	"fmt"
	"sort"

	serr "aetherfm/internal/errors"
	"aetherfm/internal/log"
)

// Action identifies a file manager command.
type Action string

const (
	ActionCopy         Action = "copy"
	ActionPaste        Action = "paste"
	ActionDelete       Action = "delete"
	ActionRename       Action = "rename"
	ActionCreateFile   Action = "create-file"
	ActionCreateFolder Action = "create-folder"
	ActionActivate     Action = "activate"
	ActionUp           Action = "up"
	ActionJump         Action = "jump"
)

// Request carries the optional arguments of an action. Name is the
// selected entry or, for the create actions, the name to create.
type Request struct {
	Name      string
	NewName   string
	Path      string
	Confirmed bool
}

// Result describes what an action did. Refresh asks the caller to list
// CurrentLocation again; it is set even when Err is not nil so the view
// shows what actually happened.
type Result struct {
	Action    Action
	Refresh   bool
	Navigated bool
	Opened    bool
	Err       error
}

// Handler runs one action against a session.
type Handler func(*Session, Request) Result

var handlers = map[Action]Handler{
	ActionCopy: func(s *Session, r Request) Result {
		return Result{Err: s.CopyEntry(r.Name)}
	},
	ActionPaste: func(s *Session, r Request) Result {
		err := s.Paste()
		return Result{Refresh: !serr.IsKind(err, serr.ClipboardEmpty), Err: err}
	},
	ActionDelete: func(s *Session, r Request) Result {
		err := s.Delete(r.Name, r.Confirmed)
		return Result{Refresh: !skipped(err), Err: err}
	},
	ActionRename: func(s *Session, r Request) Result {
		err := s.Rename(r.Name, r.NewName)
		return Result{Refresh: !skipped(err), Err: err}
	},
	ActionCreateFile: func(s *Session, r Request) Result {
		return Result{Refresh: true, Err: s.CreateFile(r.Name)}
	},
	ActionCreateFolder: func(s *Session, r Request) Result {
		return Result{Refresh: true, Err: s.CreateFolder(r.Name)}
	},
	ActionActivate: func(s *Session, r Request) Result {
		navigated, err := s.Activate(r.Name)
		return Result{
			Refresh:   navigated,
			Navigated: navigated,
			Opened:    !navigated && err == nil,
			Err:       err,
		}
	},
	ActionUp: func(s *Session, r Request) Result {
		moved := s.NavigateUp()
		return Result{Refresh: moved, Navigated: moved}
	},
	ActionJump: func(s *Session, r Request) Result {
		err := s.JumpTo(r.Path)
		return Result{Refresh: err == nil, Navigated: err == nil, Err: err}
	},
}

// skipped reports errors raised before anything touched the filesystem.
func skipped(err error) bool {
	return serr.IsKind(err, serr.NothingSelected) || serr.IsKind(err, serr.NotConfirmed)
}

// Dispatch runs action. Unknown actions fail with InvalidOperation.
func (s *Session) Dispatch(action Action, req Request) Result {
	h, ok := handlers[action]
	if !ok {
		return Result{
			Action: action,
			Err:    serr.New(serr.InvalidOperation, fmt.Sprintf("unknown action %q", action)),
		}
	}

	res := h(s, req)
	res.Action = action
	if res.Err != nil {
		log.LogWithFields(
			log.F("action", string(action)),
			log.F("location", s.Location()),
			log.F("kind", serr.KindOf(res.Err).String()),
		).Debugf("action failed: %v", res.Err)
	}
	return res
}

// Actions lists every known action id in lexical order.
func Actions() []Action {
	actions := make([]Action, 0, len(handlers))
	for a := range handlers {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	return actions
}
