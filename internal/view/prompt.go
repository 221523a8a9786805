package view

import "github.com/emreozcan/pymetheus/pkg/types"

// Prompter is the modal request/response surface the coordinator suspends
// on. Each call blocks until the user answers or dismisses the dialog; a
// false second return means cancellation, after which the coordinator
// abandons the in-flight edit without touching storage.
type Prompter interface {
	// Text asks for a single line of text, pre-filled with initial.
	Text(title, initial string) (string, bool)

	// Pick asks the user to choose one of options, returning its index.
	Pick(title string, options []string) (int, bool)

	// Confirm asks a yes/no question.
	Confirm(title string) bool

	// Name asks for a full contributor identity, pre-filled with initial.
	Name(title string, initial types.NameData) (types.NameData, bool)

	// MultiSelect asks for a subset of options; selected carries the
	// current state and the result has the same length.
	MultiSelect(title string, options []string, selected []bool) ([]bool, bool)
}
