package cli

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrPickAborted is returned by a Picker when the user aborts the choice.
var ErrPickAborted = errors.New("pick aborted")

// A Picker lets the user choose one of the given options.
type Picker interface {
	Pick(message string, options []string) (string, error)
}

type surveyPicker struct{}

func (surveyPicker) Pick(message string, options []string) (string, error) {
	if len(options) == 0 {
		return "", errors.New("nothing to pick from")
	}

	var out string
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrPickAborted
		}
		return "", err
	}
	return out, nil
}
