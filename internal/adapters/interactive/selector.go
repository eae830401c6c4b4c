// Package interactive holds the prompt widgets: a labeled-option selector
// and the constructor argument form.
package interactive

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

// Option is one selectable (value, label) pair.
type Option[T comparable] struct {
	Value T
	Text  string
}

// SelectedIndex returns the index of the option whose value strictly equals
// selected, or -1 when none does. Equality is by value, never structural.
func SelectedIndex[T comparable](options []Option[T], selected T) int {
	for i, opt := range options {
		if opt.Value == selected {
			return i
		}
	}
	return -1
}

// Selector renders a pressable option list in the terminal. An empty option
// list is an error here rather than an empty render; a CLI prompt with
// nothing to pick is a dead end.
type Selector struct {
	nonInteractive bool
}

// NewSelector creates a Selector.
func NewSelector(nonInteractive bool) *Selector {
	return &Selector{nonInteractive: nonInteractive}
}

// Pick shows the options with the currently selected value highlighted and
// returns the chosen value. Choosing the already-selected option returns it
// unchanged. In non-interactive mode the current selection is kept as-is.
func (s *Selector) Pick(label string, options []Option[string], selected string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options to select from")
	}
	if s.nonInteractive {
		if SelectedIndex(options, selected) >= 0 {
			return selected, nil
		}
		return "", fmt.Errorf("interactive selection not available in non-interactive mode")
	}
	if len(options) == 1 {
		return options[0].Value, nil
	}

	texts := lo.Map(options, func(opt Option[string], _ int) string { return opt.Text })

	cursor := SelectedIndex(options, selected)
	if cursor < 0 {
		cursor = 0
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     texts,
		Templates: templates,
		Size:      10,
		CursorPos: cursor,
		Searcher:  fuzzySearchFunc(texts),
	}

	index, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}
	return options[index].Value, nil
}

// fuzzySearchFunc creates a fuzzy search function for promptui
func fuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}
		matches := fuzzy.Find(input, []string{items[index]})
		return len(matches) > 0
	}
}
