package ui

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/lumipallolabs/hashseek/internal/digest"
	"github.com/lumipallolabs/hashseek/internal/model"
	"github.com/manifoldco/promptui"
)

// Menu entries, in display order
const (
	MenuHashFile = "Hash a file"
	MenuSearch   = "Search for files by hash"
	MenuExit     = "Exit"
)

const otherLocation = "Other..."

// Prompter abstracts the interactive prompts so the menu can be driven by
// scripted answers in tests
type Prompter interface {
	// Select shows items and returns the chosen index
	Select(label string, items []string) (int, error)
	// Input reads one line of text, rejecting values validate refuses
	Input(label string, validate func(string) error) (string, error)
}

// PromptuiPrompter implements Prompter with promptui
type PromptuiPrompter struct{}

// Select implements Prompter
func (PromptuiPrompter) Select(label string, items []string) (int, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
		Size:  10,
		Templates: &promptui.SelectTemplates{
			Active:   "▸ {{ . | cyan }}",
			Inactive: "  {{ . }}",
			Selected: "✓ {{ . | green }}",
		},
	}
	i, _, err := prompt.Run()
	return i, err
}

// Input implements Prompter
func (PromptuiPrompter) Input(label string, validate func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: validate,
	}
	return prompt.Run()
}

// MenuActions are the flows the menu dispatches to. Errors they return are
// printed and the menu is shown again.
type MenuActions struct {
	Hash   func(path, algorithm string) error
	Search func(req model.ScanRequest) error
	// LastRoot, when set and non-empty, is offered first among locations
	LastRoot func() string
}

// Menu is the interactive main loop shown when no subcommand is given
type Menu struct {
	prompter  Prompter
	actions   MenuActions
	out       io.Writer
	locations func() []model.Location
}

// NewMenu creates a menu printing errors and notices to out
func NewMenu(p Prompter, actions MenuActions, out io.Writer) *Menu {
	return &Menu{
		prompter:  p,
		actions:   actions,
		out:       out,
		locations: model.Locations,
	}
}

// Run shows the menu until the user exits. Interrupting a prompt exits
// cleanly.
func (m *Menu) Run() error {
	fmt.Fprintln(m.out, Banner())
	for {
		i, err := m.prompter.Select("Select an option", []string{MenuHashFile, MenuSearch, MenuExit})
		if err != nil {
			return quietInterrupt(err)
		}

		switch i {
		case 0:
			err = m.hashFile()
		case 1:
			err = m.search()
		default:
			fmt.Fprintln(m.out, "Exiting the program.")
			return nil
		}

		if err != nil {
			if isInterrupt(err) {
				return nil
			}
			fmt.Fprintln(m.out, DangerStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		fmt.Fprintln(m.out)
	}
}

func (m *Menu) hashFile() error {
	path, err := m.prompter.Input("Enter the file path", notEmpty)
	if err != nil {
		return err
	}
	algos := []string{digest.SHA256.String(), digest.MD5.String()}
	i, err := m.prompter.Select("Select hash algorithm", algos)
	if err != nil {
		return err
	}
	return m.actions.Hash(strings.TrimSpace(path), algos[i])
}

func (m *Menu) search() error {
	target, err := m.prompter.Input("Enter the hash to search for", validateDigest)
	if err != nil {
		return err
	}

	root, err := m.chooseRoot()
	if err != nil {
		return err
	}

	i, err := m.prompter.Select("Skip restricted directories?", []string{"Yes", "No"})
	if err != nil {
		return err
	}

	return m.actions.Search(model.ScanRequest{
		Root:           root,
		Target:         target,
		SkipRestricted: i == 0,
	})
}

func (m *Menu) chooseRoot() (string, error) {
	locs := m.locations()
	if m.actions.LastRoot != nil {
		if last := m.actions.LastRoot(); last != "" && !hasLocation(locs, last) {
			locs = append([]model.Location{{Label: "Last searched", Path: last}}, locs...)
		}
	}
	items := make([]string, 0, len(locs)+1)
	for _, l := range locs {
		items = append(items, fmt.Sprintf("%s (%s)", l.Label, l.Path))
	}
	items = append(items, otherLocation)

	i, err := m.prompter.Select("Select the directory to search", items)
	if err != nil {
		return "", err
	}
	if i < len(locs) {
		return locs[i].Path, nil
	}

	dir, err := m.prompter.Input("Enter the directory to search (blank for current)", nil)
	if err != nil {
		return "", err
	}
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", nil
	}
	return filepath.Clean(dir), nil
}

func hasLocation(locs []model.Location, path string) bool {
	for _, l := range locs {
		if l.Path == path {
			return true
		}
	}
	return false
}

func notEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("value is required")
	}
	return nil
}

func validateDigest(s string) error {
	_, err := digest.ForDigest(digest.NormalizeDigest(s))
	return err
}

func isInterrupt(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF)
}

func quietInterrupt(err error) error {
	if isInterrupt(err) {
		return nil
	}
	return err
}
