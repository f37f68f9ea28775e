package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/triage/internal/cli/formatter"
	"github.com/alexanderramin/triage/internal/contract"
	"github.com/alexanderramin/triage/internal/domain"
	"github.com/alexanderramin/triage/internal/service"
	"github.com/alexanderramin/triage/internal/triage"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type stepMsg struct {
	step *contract.Step
	// asked and reply are set when the step follows an accepted answer.
	asked *contract.QuestionPrompt
	reply string
}

type chatErrMsg struct{ err error }

type chatTurn struct {
	question string
	answer   string
}

// chatModel drives one conversation in the terminal: it shows the pending
// question, sends replies to the triage service and renders the final
// assessment.
type chatModel struct {
	ctx      context.Context
	triage   service.TriageService
	category string

	input textinput.Model
	step  *contract.Step
	turns []chatTurn

	notice string
	err    error
	width  int
}

func newChatModel(ctx context.Context, svc service.TriageService, category string) *chatModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "choice number"
	ti.CharLimit = 8
	ti.Focus()

	return &chatModel{
		ctx:      ctx,
		triage:   svc,
		category: category,
		input:    ti,
	}
}

func (m *chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.start())
}

func (m *chatModel) start() tea.Cmd {
	return func() tea.Msg {
		step, err := m.triage.Start(m.ctx, contract.NewStartRequest(m.category))
		if err != nil {
			return chatErrMsg{err}
		}
		return stepMsg{step: step}
	}
}

func (m *chatModel) answer(id string, asked *contract.QuestionPrompt, reply string) tea.Cmd {
	return func() tea.Msg {
		step, err := m.triage.Answer(m.ctx, contract.NewAnswerRequest(id, reply))
		if err != nil {
			return chatErrMsg{err}
		}
		return stepMsg{step: step, asked: asked, reply: reply}
	}
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case stepMsg:
		if msg.asked != nil {
			m.turns = append(m.turns, chatTurn{question: msg.asked.Prompt, answer: choiceText(msg.asked, msg.reply)})
		}
		m.step = msg.step
		m.notice = ""
		if m.step.Completed() {
			m.input.Blur()
		}
		return m, nil

	case chatErrMsg:
		var te *contract.TriageError
		if errors.As(msg.err, &te) && te.Code == contract.ErrInvalidChoice {
			m.notice = te.Message
			if te.Step != nil {
				m.step = te.Step
			}
			return m, nil
		}
		m.err = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		}
		if m.done() && msg.String() == "q" {
			return m, tea.Quit
		}
	}

	if m.done() {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) submit() tea.Cmd {
	if m.step == nil {
		return nil
	}
	if m.done() {
		return tea.Quit
	}
	reply := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if reply == "" {
		return nil
	}
	return m.answer(m.step.ConversationID, m.step.Question, reply)
}

func (m *chatModel) done() bool {
	return m.step != nil && m.step.Completed()
}

func (m *chatModel) View() string {
	var b strings.Builder

	title := "Symptom triage"
	if c, ok := domain.ParseCategory(m.category); ok {
		title += " · " + c.Label()
	}
	b.WriteString(formatter.Header(title) + "\n\n")

	for _, t := range m.turns {
		b.WriteString(formatter.Dim(t.question) + "\n")
		b.WriteString(formatter.StyleGreen.Render("  "+t.answer) + "\n")
	}
	if len(m.turns) > 0 {
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	case m.step == nil:
		b.WriteString(formatter.Dim("Starting…") + "\n")
	case m.done():
		if m.step.Result != nil {
			b.WriteString(formatter.FormatResult(*m.step.Result))
		}
		b.WriteString(formatter.Dim("Press enter to exit.") + "\n")
	default:
		b.WriteString(formatter.FormatQuestionCard(m.step.Question, m.step.AnsweredCount) + "\n\n")
		if m.notice != "" {
			b.WriteString(formatter.StyleRed.Render(m.notice) + "\n")
		}
		b.WriteString(m.input.View() + "\n")
		b.WriteString(formatter.Dim("esc to leave; the conversation is saved") + "\n")
	}
	return b.String()
}

// choiceText maps a numeric reply back to the choice label for the
// transcript.
func choiceText(q *contract.QuestionPrompt, reply string) string {
	idx, err := triage.ParseChoice(reply, len(q.Choices))
	if err != nil {
		return reply
	}
	return q.Choices[idx-1]
}
