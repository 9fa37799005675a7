package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/julien-sobczak/the-slidewriter/internal/core"
	"github.com/julien-sobczak/the-slidewriter/internal/slides"
)

// Editor edits the slides of a deck, one block per slide.
//
// Every change is sent to the session, which persists the new document.
// The stored document is then read back so that the session recognizes its
// own echo and keeps the blocks (and the cursor) stable.
type Editor struct {
	session *slides.Session
	title   string

	// Focused block
	blockID string
	buffer  []rune
	cursor  int

	confirmDelete bool
	quitting      bool
	status        string

	keys editorKeyMap
	help help.Model
}

func NewEditor(session *slides.Session, title string) Editor {
	m := Editor{
		session: session,
		title:   title,
		keys:    editorKeys,
		help:    help.New(),
	}
	m.focusFirst()
	return m
}

// RunEditor starts the editor until the user quits.
func RunEditor(session *slides.Session, title string) error {
	_, err := tea.NewProgram(NewEditor(session, title)).Run()
	return err
}

// Markdown returns the edited document.
func (m Editor) Markdown() string {
	return m.session.Markdown()
}

// Focus returns the focused block and the cursor offset in characters.
func (m Editor) Focus() slides.Focus {
	return slides.Focus{BlockID: m.blockID, Offset: m.cursor}
}

func (m Editor) Init() tea.Cmd {
	return nil
}

func (m Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		core.CurrentLogger().Debugf("Editor received key %q", msg.String())
		m.status = ""
		if m.confirmDelete {
			return m.updateConfirmation(msg)
		}
		return m.updateEditing(msg)
	}
	return m, nil
}

func (m Editor) updateConfirmation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirmDelete = false
		m.mutated(m.session.Delete(m.blockID))
		m.status = "Slide deleted"
	case "n", "N", "esc":
		m.confirmDelete = false
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Editor) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Split):
		_, ok := m.session.SplitAt(m.blockID, m.cursor)
		m.mutated(ok)
	case key.Matches(msg, m.keys.Add):
		_, ok := m.session.AddAfter(m.blockID)
		m.mutated(ok)
	case key.Matches(msg, m.keys.Delete):
		m.confirmDelete = true
	case key.Matches(msg, m.keys.MoveUp):
		m.mutated(m.session.Move(m.blockID, -1))
	case key.Matches(msg, m.keys.MoveDown):
		m.mutated(m.session.Move(m.blockID, 1))
	case key.Matches(msg, m.keys.Up):
		m.lineUp()
	case key.Matches(msg, m.keys.Down):
		m.lineDown()
	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cross(slides.KeyLeft)
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursor < len(m.buffer) {
			m.cursor++
		} else {
			m.cross(slides.KeyRight)
		}
	case key.Matches(msg, m.keys.Backspace):
		if m.cursor > 0 {
			m.buffer = append(m.buffer[:m.cursor-1:m.cursor-1], m.buffer[m.cursor:]...)
			m.cursor--
			m.mutated(m.session.SetContent(m.blockID, string(m.buffer)))
		} else {
			m.cross(slides.KeyBackspace)
		}
	case key.Matches(msg, m.keys.Newline):
		m.insert('\n')
	case msg.Type == tea.KeySpace:
		m.insert(' ')
	case msg.Type == tea.KeyRunes && !msg.Alt:
		m.insert(msg.Runes...)
	}
	return m, nil
}

func (m *Editor) insert(runes ...rune) {
	buffer := make([]rune, 0, len(m.buffer)+len(runes))
	buffer = append(buffer, m.buffer[:m.cursor]...)
	buffer = append(buffer, runes...)
	buffer = append(buffer, m.buffer[m.cursor:]...)
	m.buffer = buffer
	m.cursor += len(runes)
	m.mutated(m.session.SetContent(m.blockID, string(m.buffer)))
}

// cross asks the session to move the cursor to a neighbor block.
func (m *Editor) cross(k slides.Key) {
	if !m.session.HandleKey(m.blockID, k, m.cursor) {
		return
	}
	// Only a merge changes the document
	if k == slides.KeyBackspace {
		m.echo()
	}
	m.applyFocus()
}

func (m *Editor) lineUp() {
	line, column := position(m.buffer, m.cursor)
	if line > 0 {
		m.cursor = offset(m.buffer, line-1, column)
		return
	}
	if m.cursor > 0 {
		m.cursor = 0
		return
	}
	m.cross(slides.KeyUp)
}

func (m *Editor) lineDown() {
	line, column := position(m.buffer, m.cursor)
	if line < strings.Count(string(m.buffer), "\n") {
		m.cursor = offset(m.buffer, line+1, column)
		return
	}
	if m.cursor < len(m.buffer) {
		m.cursor = len(m.buffer)
		return
	}
	m.cross(slides.KeyDown)
}

// mutated reads back the stored document after a successful mutation
// and moves the cursor where the session asks.
func (m *Editor) mutated(ok bool) {
	if ok {
		m.echo()
	}
	m.applyFocus()
}

func (m *Editor) echo() {
	rederived, err := m.session.Refresh()
	if err != nil {
		m.status = fmt.Sprintf("Unable to reload the deck: %v", err)
		return
	}
	if rederived {
		// The document was changed outside the editor
		m.focusFirst()
	}
}

func (m *Editor) applyFocus() {
	if f, ok := m.session.TakeFocus(); ok {
		m.focus(f)
		return
	}
	block, ok := m.session.Block(m.blockID)
	if !ok {
		m.focusFirst()
		return
	}
	m.buffer = []rune(block.Content)
	m.cursor = min(m.cursor, len(m.buffer))
}

func (m *Editor) focus(f slides.Focus) {
	block, ok := m.session.Block(f.BlockID)
	if !ok {
		m.focusFirst()
		return
	}
	m.blockID = block.ID
	m.buffer = []rune(block.Content)
	m.cursor = min(max(f.Offset, 0), len(m.buffer))
}

func (m *Editor) focusFirst() {
	blocks := m.session.Blocks()
	if len(blocks) == 0 {
		m.blockID = ""
		m.buffer = nil
		m.cursor = 0
		return
	}
	m.blockID = blocks[0].ID
	m.buffer = []rune(blocks[0].Content)
	m.cursor = 0
}

func (m Editor) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	blocks := m.session.Blocks()
	for i, block := range blocks {
		header := fmt.Sprintf("Slide %d/%d", i+1, len(blocks))
		if block.ID == m.blockID {
			b.WriteString(focusedHeaderStyle.Render(header))
			b.WriteString("\n")
			b.WriteString(focusedBlockStyle.Render(m.renderBuffer()))
		} else {
			b.WriteString(blurredHeaderStyle.Render(header))
			b.WriteString("\n")
			b.WriteString(blurredBlockStyle.Render(block.Content))
		}
		b.WriteString("\n")
	}

	switch {
	case m.confirmDelete:
		b.WriteString(promptStyle.Render("Delete this slide? (y/n)"))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderBuffer shows the focused block with its cursor.
func (m Editor) renderBuffer() string {
	before := string(m.buffer[:m.cursor])
	if m.cursor == len(m.buffer) {
		return before + cursorStyle.Render(" ")
	}
	current := m.buffer[m.cursor]
	after := string(m.buffer[m.cursor+1:])
	if current == '\n' {
		return before + cursorStyle.Render(" ") + "\n" + after
	}
	return before + cursorStyle.Render(string(current)) + after
}

// position converts a character offset to a line and a column.
func position(buffer []rune, cursor int) (int, int) {
	line, column := 0, 0
	for _, r := range buffer[:cursor] {
		if r == '\n' {
			line++
			column = 0
			continue
		}
		column++
	}
	return line, column
}

// offset converts a line and a column to a character offset.
// The column is clamped to the length of the line.
func offset(buffer []rune, line, column int) int {
	current := 0
	for i, r := range buffer {
		if current == line {
			lineEnd := i
			for lineEnd < len(buffer) && buffer[lineEnd] != '\n' {
				lineEnd++
			}
			return min(i+column, lineEnd)
		}
		if r == '\n' {
			current++
		}
	}
	return len(buffer)
}
