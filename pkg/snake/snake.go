// Package snake holds the interactive prompts used by commands.
package snake

import (
	"io"
	"strings"

	"github.com/manifoldco/promptui"
)

// Choice is one selectable row.
type Choice struct {
	Name  string
	Short string
}

// Select asks the user to pick one of choices and returns its Name. The
// cursor starts on the row at cursor.
func Select(label string, choices []Choice, cursor int, in io.Reader, out io.Writer) (string, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | bold }} {{ .Short | green }}",
		Inactive: "   {{ .Name }} {{ .Short | cyan }}",
		Selected: "{{ .Name | bold }}",
	}

	searcher := func(input string, index int) bool {
		name := strings.ReplaceAll(strings.ToLower(choices[index].Name), " ", "")
		input = strings.ReplaceAll(strings.ToLower(input), " ", "")
		return strings.Contains(name, input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     choices,
		CursorPos: cursor,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
	}
	if in != nil {
		prompt.Stdin = io.NopCloser(in)
	}
	if out != nil {
		prompt.Stdout = nopWriteCloser{out}
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return choices[i].Name, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
