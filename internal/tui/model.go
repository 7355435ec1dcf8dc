package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textanalyzer/internal/domain"
	"textanalyzer/internal/report"
)

// AnalyzerPort is the TUI-facing subset of the analysis pipeline.
type AnalyzerPort interface {
	Analyze(ctx context.Context, text string, features []domain.Feature) (*domain.AnalysisResult, error)
}

type focus int

const (
	focusEditor focus = iota
	focusFeatures
)

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	analyzer AnalyzerPort
	editor   textarea.Model
	viewport viewport.Model
	selected map[domain.Feature]bool
	cursor   int
	focus    focus
	result   *domain.AnalysisResult
	status   string
	ready    bool
}

// New creates a new TUI model with text preloaded into the editor and the
// given features preselected.
func New(analyzer AnalyzerPort, text string, features []domain.Feature) Model {
	ta := textarea.New()
	ta.Placeholder = "Enter your text here"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetValue(text)
	ta.Focus()
	selected := make(map[domain.Feature]bool, len(domain.AllFeatures))
	for _, f := range features {
		selected[f] = true
	}
	return Model{
		analyzer: analyzer,
		editor:   ta,
		viewport: viewport.New(0, 0),
		selected: selected,
		status:   "tab: switch focus · space: toggle feature · ctrl+r: analyze · ctrl+c: quit",
	}
}

// Init initializes the model (editor cursor blink).
func (m Model) Init() tea.Cmd { return textarea.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, eh := editorBoxStyle.GetFrameSize()
		editorHeight := 6
		reserved := 1 + editorHeight + eh + 1 + 1 + rh // header, editor, features, status, result frame
		m.editor.SetWidth(max(20, msg.Width-4))
		m.editor.SetHeight(editorHeight)
		m.viewport.Width = max(20, msg.Width-4)
		m.viewport.Height = max(3, msg.Height-reserved)
		m.viewport.SetContent(m.renderResult())
		return m, nil
	case tea.KeyMsg:
		// Global keys
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			return m, tea.Quit
		case tea.KeyCtrlR:
			m = m.analyze()
			return m, nil
		case tea.KeyTab:
			m = m.toggleFocus()
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		if m.focus == focusFeatures {
			return m.updateFeatures(msg), nil
		}
	}
	var cmd tea.Cmd
	if m.focus == focusEditor {
		m.editor, cmd = m.editor.Update(msg)
	}
	return m, cmd
}

func (m Model) updateFeatures(msg tea.KeyMsg) Model {
	n := len(domain.AllFeatures)
	switch msg.String() {
	case "left", "up", "h", "k":
		m.cursor = (m.cursor - 1 + n) % n
	case "right", "down", "l", "j":
		m.cursor = (m.cursor + 1) % n
	case " ", "space", "x":
		f := domain.AllFeatures[m.cursor]
		m.selected[f] = !m.selected[f]
	case "enter":
		m = m.analyze()
	}
	return m
}

func (m Model) toggleFocus() Model {
	if m.focus == focusEditor {
		m.focus = focusFeatures
		m.editor.Blur()
	} else {
		m.focus = focusEditor
		m.editor.Focus()
	}
	return m
}

func (m Model) analyze() Model {
	var features []domain.Feature
	for _, f := range domain.AllFeatures {
		if m.selected[f] {
			features = append(features, f)
		}
	}
	res, err := m.analyzer.Analyze(context.Background(), m.editor.Value(), features)
	if err != nil {
		m.status = "Error: " + err.Error()
		m.result = nil
	} else {
		m.result = res
		if failed := res.Failed(); len(failed) > 0 {
			m.status = fmt.Sprintf("Analysis complete with %d failed feature(s).", len(failed))
		} else {
			m.status = "Analysis complete! Here are the results."
		}
	}
	m.viewport.SetContent(m.renderResult())
	m.viewport.GotoTop()
	return m
}

// View renders the TUI layout and current result.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Text Analyzer")
	editor := editorBoxStyle.Render(m.editor.View())
	features := m.renderFeatures()
	results := resultBoxStyle.Render(m.viewport.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	return header + "\n" + editor + "\n" + features + "\n" + results + "\n" + status
}

func (m Model) renderFeatures() string {
	items := make([]string, len(domain.AllFeatures))
	for i, f := range domain.AllFeatures {
		box := "[ ]"
		if m.selected[f] {
			box = "[x]"
		}
		item := box + " " + report.Title(f)
		if m.focus == focusFeatures && i == m.cursor {
			item = cursorStyle.Render(item)
		}
		items[i] = item
	}
	return strings.Join(items, "  ")
}

func (m Model) renderResult() string {
	if m.result == nil {
		return "No results yet."
	}
	var b strings.Builder
	for i, f := range m.result.Requested {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(sectionStyle.Render(report.Title(f)))
		b.WriteString("\n")
		body := report.Section(m.result, f)
		if m.result.Err(f) != nil {
			body = errorStyle.Render(body)
		}
		b.WriteString(body)
	}
	return b.String()
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	editorBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	sectionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)
