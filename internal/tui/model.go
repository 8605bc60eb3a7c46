package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textsum/internal/domain"
	"textsum/internal/service"
	"textsum/internal/summarizer"
)

// SummaryPort is the TUI-facing subset of the summary service.
type SummaryPort interface {
	Options() summarizer.Options
	SummarizeDocument(doc domain.Document, opts summarizer.Options) (service.Report, error)
	Rank(doc domain.Document) ([]domain.ScoredSentence, error)
}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service  SummaryPort
	docs     []domain.Document
	reports  []service.Report
	opts     summarizer.Options
	input    textinput.Model
	viewport viewport.Model
	status   string
	cursor   int
	ready    bool
}

// New creates a new TUI model over already summarized documents.
// reports must be index-aligned with docs.
func New(svc SummaryPort, docs []domain.Document, reports []service.Report) Model {
	ti := textinput.New()
	ti.Prompt = "ratio> "
	ti.Placeholder = "Type a ratio in (0, 1] and press Enter"
	ti.Focus()
	ti.CharLimit = 8
	vp := viewport.New(0, 0)
	return Model{
		service:  svc,
		docs:     docs,
		reports:  reports,
		opts:     svc.Options(),
		input:    ti,
		viewport: vp,
		status:   "Loaded. Tab switches document, Enter applies a ratio.",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, dh := docBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		reserved := 3 + 1 + ih + 1 // header, stats, title; status; input; spacer
		vh := msg.Height - reserved
		m.viewport.Width = max(20, msg.Width-4)
		m.viewport.Height = max(3, vh-dh)
		m.viewport.SetContent(m.renderCurrentDocument())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			m = m.applyRatio(strings.TrimSpace(m.input.Value()))
			m.input.SetValue("")
			m.viewport.SetContent(m.renderCurrentDocument())
			return m, nil
		case "tab", "down":
			if len(m.docs) > 0 {
				m.cursor = (m.cursor + 1) % len(m.docs)
				m.viewport.SetContent(m.renderCurrentDocument())
				m.viewport.GotoTop()
				return m, nil
			}
		case "shift+tab", "up":
			if len(m.docs) > 0 {
				m.cursor = (m.cursor - 1 + len(m.docs)) % len(m.docs)
				m.viewport.SetContent(m.renderCurrentDocument())
				m.viewport.GotoTop()
				return m, nil
			}
		case "pgdown":
			m.viewport.HalfViewDown()
			return m, nil
		case "pgup":
			m.viewport.HalfViewUp()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// applyRatio re-summarizes every document with the new ratio.
func (m Model) applyRatio(value string) Model {
	if value == "" {
		return m
	}
	ratio, err := strconv.ParseFloat(value, 64)
	if err != nil {
		m.status = fmt.Sprintf("Error: %q is not a number", value)
		return m
	}
	opts := m.opts
	opts.Ratio = ratio
	if err := opts.Validate(); err != nil {
		m.status = "Error: " + err.Error()
		return m
	}
	reports := make([]service.Report, len(m.docs))
	for i, doc := range m.docs {
		r, err := m.service.SummarizeDocument(doc, opts)
		if err != nil {
			m.status = "Error: " + err.Error()
			return m
		}
		reports[i] = r
	}
	m.opts = opts
	m.reports = reports
	m.status = fmt.Sprintf("Ratio set to %.2f", ratio)
	return m
}

// View renders the TUI layout and current document.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Text Summarizer")
	stats := statsStyle.Render(m.renderStats())
	doc := docBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	return header + "\n" + stats + "\n" + doc + "\n" + input + "\n" + status
}

func (m Model) renderStats() string {
	if len(m.reports) == 0 {
		return "No documents."
	}
	r := m.reports[m.cursor]
	res := r.Result
	line := fmt.Sprintf("[%d/%d] %s  ratio=%.2f  kept %d/%d sentences  saved %d words  %s",
		m.cursor+1, len(m.reports), r.Path, m.opts.Ratio,
		res.SummarySentenceCount, res.OriginalSentenceCount, res.WordCountSaved, res.Message)
	if r.Notice != "" {
		line += "  " + r.Notice
	}
	return line
}

func (m Model) renderCurrentDocument() string {
	if len(m.docs) == 0 {
		return "No documents loaded."
	}
	scored, err := m.service.Rank(m.docs[m.cursor])
	if err != nil {
		return "Error: " + err.Error()
	}
	return highlightSelected(scored, m.reports[m.cursor].Result.Selected, m.viewport.Width)
}

var (
	docBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statsStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// highlightSelected renders every sentence, emphasising the kept ones.
func highlightSelected(scored []domain.ScoredSentence, selected []int, width int) string {
	if len(scored) == 0 {
		return "Document is empty."
	}
	keep := make(map[int]struct{}, len(selected))
	for _, pos := range selected {
		keep[pos] = struct{}{}
	}
	parts := make([]string, len(scored))
	for i, sc := range scored {
		if _, ok := keep[sc.Sentence.Position]; ok {
			parts[i] = highlightStyle.Render(sc.Sentence.Text)
		} else {
			parts[i] = dimStyle.Render(sc.Sentence.Text)
		}
	}
	body := strings.Join(parts, " ")
	if width > 0 {
		body = lipgloss.NewStyle().Width(width).Render(body)
	}
	return body
}
