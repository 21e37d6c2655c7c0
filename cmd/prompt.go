package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// Prompter asks the user yes/no questions.
type Prompter interface {
	Confirm(message string, defaultValue bool) (bool, error)
}

// SurveyPrompter implements Prompter with an interactive survey prompt.
type SurveyPrompter struct{}

func (p *SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	result := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

// linePrompter reads one answer line. It serves piped input, where survey
// cannot take over the terminal.
type linePrompter struct {
	in  io.Reader
	out io.Writer
}

// Confirm accepts y or yes; end of input keeps the default.
func (p *linePrompter) Confirm(message string, defaultValue bool) (bool, error) {
	hint := "[y/N]"
	if defaultValue {
		hint = "[Y/n]"
	}
	fmt.Fprintf(p.out, "\n  %s %s ", message, hint)

	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return defaultValue, nil
	}
}

// newPrompter picks survey on a terminal and the line reader otherwise.
func newPrompter(in io.Reader, out io.Writer) Prompter {
	if isTerminal(in) && isTerminal(out) {
		return &SurveyPrompter{}
	}
	return &linePrompter{in: in, out: out}
}
