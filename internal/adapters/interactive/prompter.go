package interactive

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/catapult-sh/catapult/internal/domain"
)

// ArgumentPrompter collects constructor argument values, one required text
// prompt per parameter, keyed by parameter name. Parameter names are
// assumed unique within one constructor.
type ArgumentPrompter struct {
	nonInteractive bool
}

// NewArgumentPrompter creates an ArgumentPrompter.
func NewArgumentPrompter(nonInteractive bool) *ArgumentPrompter {
	return &ArgumentPrompter{nonInteractive: nonInteractive}
}

// Collect prompts for every parameter missing from existing and returns the
// completed form values. Values supplied in existing are kept verbatim. In
// non-interactive mode a missing value is an error instead of a prompt.
func (p *ArgumentPrompter) Collect(inputs []domain.ABIParameter, existing domain.FormValues) (domain.FormValues, error) {
	values := domain.FormValues{}
	for k, v := range existing {
		values[k] = v
	}

	for _, in := range inputs {
		if _, ok := values[in.Name]; ok {
			continue
		}
		if p.nonInteractive {
			return nil, fmt.Errorf("missing value for constructor parameter %s (%s)", in.Name, in.Type)
		}

		prompt := promptui.Prompt{
			Label: fmt.Sprintf("%s (%s)", in.Name, in.Type),
			Validate: func(input string) error {
				if strings.TrimSpace(input) == "" {
					return fmt.Errorf("value is required")
				}
				return nil
			},
		}

		value, err := prompt.Run()
		if err != nil {
			return nil, fmt.Errorf("input cancelled: %w", err)
		}
		values[in.Name] = value
	}

	return values, nil
}
