package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/modernzork/adventure-engine/pkg/session"
)

const placeholderText = "Type a command (TAB to autocomplete)..."

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	achievementStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214")). // yellow
				Bold(true)

	journalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("140")). // lavender
			Italic(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

var titleCaser = cases.Title(language.English)

// ConsoleUI is the BubbleTea model that runs the interactive session.
type ConsoleUI struct {
	sess     *session.Session
	viewport viewport.Model
	input    textinput.Model
	ready    bool
	width    int
	height   int

	// transcript holds plain text for clipboard export, rendered holds
	// the styled version shown in the viewport.
	transcript strings.Builder
	rendered   strings.Builder

	// Quit confirmation state
	showQuitModal bool

	// Autocomplete cycling state
	suggestions  []string
	suggestIndex int
}

// NewConsoleUI builds the model around an already-started session.
func NewConsoleUI(sess *session.Session) *ConsoleUI {
	ti := textinput.New()
	ti.Placeholder = placeholderText
	ti.Prompt = promptStyle.Render(":: ")
	ti.CharLimit = 200
	ti.Focus()

	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true

	ui := &ConsoleUI{
		sess:     sess,
		viewport: vp,
		input:    ti,
	}

	ui.appendBlock(narratorStyle, sess.World.IntroText)
	ui.appendBlock(narratorStyle, sess.DescribeLocation())
	return ui
}

func (ui *ConsoleUI) Init() tea.Cmd {
	return textinput.Blink
}

func (ui *ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		ui.width = msg.Width
		ui.height = msg.Height
		ui.viewport.Width = msg.Width
		ui.viewport.Height = msg.Height - 4
		ui.input.Width = msg.Width - 4
		ui.ready = true
		ui.refreshViewport()
		return ui, nil

	case tea.KeyMsg:
		if ui.showQuitModal {
			return ui.updateQuitModal(msg)
		}

		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			ui.showQuitModal = true
			return ui, nil

		case tea.KeyCtrlY:
			// Copy the plain transcript for bug reports and bragging.
			_ = clipboard.WriteAll(ui.transcript.String())
			return ui, nil

		case tea.KeyTab:
			ui.completeInput()
			return ui, nil

		case tea.KeyEnter:
			ui.submit(ui.input.Value())
			ui.input.SetValue("")
			ui.resetSuggestions()
			return ui, nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	before := ui.input.Value()
	ui.input, cmd = ui.input.Update(msg)
	cmds = append(cmds, cmd)
	if ui.input.Value() != before {
		ui.resetSuggestions()
	}

	ui.viewport, cmd = ui.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return ui, tea.Batch(cmds...)
}

func (ui *ConsoleUI) updateQuitModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		return ui, tea.Quit
	case "n", "esc":
		ui.showQuitModal = false
	}
	return ui, nil
}

// completeInput cycles through autocomplete suggestions for the current
// input. The first accepted completion of a cycle counts toward the
// autocomplete stat.
func (ui *ConsoleUI) completeInput() {
	if ui.suggestions == nil {
		ui.suggestions = ui.sess.Suggest(ui.input.Value())
		ui.suggestIndex = 0
		if len(ui.suggestions) > 0 {
			ui.sess.RecordAutoComplete(context.Background())
		}
	} else if len(ui.suggestions) > 0 {
		ui.suggestIndex = (ui.suggestIndex + 1) % len(ui.suggestions)
	}

	if len(ui.suggestions) == 0 {
		return
	}
	ui.input.SetValue(ui.suggestions[ui.suggestIndex])
	ui.input.CursorEnd()
}

func (ui *ConsoleUI) resetSuggestions() {
	ui.suggestions = nil
	ui.suggestIndex = 0
}

func (ui *ConsoleUI) submit(raw string) {
	if strings.TrimSpace(raw) == "" {
		return
	}

	ui.appendBlock(playerStyle, "> "+raw)

	tr := ui.sess.HandleCommand(context.Background(), raw)

	if tr.QuitRequested {
		ui.showQuitModal = true
		return
	}

	if tr.Result.Message != "" {
		style := narratorStyle
		if !tr.Result.Success {
			style = errorStyle
		}
		ui.appendBlock(style, tr.Result.Message)
	}
	if tr.Result.Success && tr.Result.LocationChanged {
		ui.appendBlock(narratorStyle, ui.sess.DescribeLocation())
	}

	for _, entry := range tr.JournalEntries {
		ui.appendBlock(journalStyle, "Journal updated: "+entry.Text)
	}

	for _, unlock := range tr.Unlocked {
		ui.appendBlock(achievementStyle, fmt.Sprintf("Achievement unlocked: %s (%s)", unlock.Title, unlock.Description))
	}

	if tr.GameEnded && tr.EndText != "" {
		ui.appendBlock(achievementStyle, tr.EndText)
		ui.appendBlock(narratorStyle, fmt.Sprintf("Your score: %d in %d moves.", ui.sess.State.Score, ui.sess.State.MoveCount))
	}
}

func (ui *ConsoleUI) appendBlock(style lipgloss.Style, text string) {
	ui.transcript.WriteString(text)
	ui.transcript.WriteString("\n\n")

	width := ui.width - 4
	if width < 20 {
		width = 76
	}
	wrapped := wordwrap.String(text, width)

	ui.rendered.WriteString(style.Render(wrapped))
	ui.rendered.WriteString("\n\n")
	ui.refreshViewport()
}

func (ui *ConsoleUI) refreshViewport() {
	ui.viewport.SetContent(ui.rendered.String())
	ui.viewport.GotoBottom()
}

func (ui *ConsoleUI) View() string {
	if !ui.ready {
		return "Loading..."
	}

	title := titleStyle.Render(titleCaser.String(ui.sess.World.Title))
	status := statusStyle.Render(fmt.Sprintf(
		"Score: %d | Moves: %d | TAB autocomplete | Ctrl+Y copy transcript | Esc quit",
		ui.sess.State.Score, ui.sess.State.MoveCount))

	view := lipgloss.JoinVertical(lipgloss.Left,
		title,
		ui.viewport.View(),
		status,
		ui.input.View(),
	)

	if ui.showQuitModal {
		modal := modalStyle.Render("Quit the game?\nYour progress will be lost.\n\n[y] yes   [n] no")
		return lipgloss.Place(ui.width, ui.height, lipgloss.Center, lipgloss.Center, modal)
	}

	return view
}
