package common

import "aetherfm/pkg/types"

type Mode int

const (
	Normal Mode = iota
	// Prompt reads a name or path for the pending action
	Prompt
	// Confirm waits for y/n before a delete
	Confirm
)

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	Entries() []types.Entry
	Cursor() int
	ShowHelp() bool
	Mode() Mode
	CurrentDir() string
	PromptView() string
	Status() string
}
