// Package tui is the interactive terminal front end of the converter.
package tui

import (
	"context"

	"github.com/amirasaad/fxconvert/pkg/conversion"
	"github.com/amirasaad/fxconvert/pkg/money"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Converter runs a conversion attempt for a draft and swaps drafts.
type Converter interface {
	ConvertDraft(ctx context.Context, draft conversion.Draft) (conversion.Request, conversion.Result, error)
	Swap(draft conversion.Draft) conversion.Draft
}

type screen int

const (
	mainScreen screen = iota
	aboutScreen
)

type field int

const (
	baseField field = iota
	targetField
	amountField
	fieldCount
)

// convertedMsg carries the outcome of one attempt. seq ties it to the
// attempt that started it so late answers can be dropped.
type convertedMsg struct {
	seq    int
	amount string
	req    conversion.Request
	res    conversion.Result
	err    error
}

// Model is the bubbletea model for the converter.
type Model struct {
	ctx       context.Context
	converter Converter
	keys      KeyMap
	help      help.Model
	spinner   spinner.Model
	amount    textinput.Model

	screen screen
	focus  field
	base   string
	target string

	inFlight bool
	seq      int
	result   *convertedMsg
	errMsg   string
	width    int
}

// New returns a model on the main screen holding the default draft.
func New(ctx context.Context, converter Converter) Model {
	draft := conversion.DefaultDraft()

	ti := textinput.New()
	ti.Placeholder = "Amount"
	ti.Prompt = ""
	ti.CharLimit = 32
	ti.SetValue(draft.Amount)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = rateStyle

	return Model{
		ctx:       ctx,
		converter: converter,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		spinner:   sp,
		amount:    ti,
		base:      draft.Base,
		target:    draft.Target,
	}
}

// Draft returns the current form values.
func (m Model) Draft() conversion.Draft {
	return conversion.Draft{Base: m.base, Target: m.target, Amount: m.amount.Value()}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.inFlight {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case convertedMsg:
		if msg.seq != m.seq || !m.inFlight {
			return m, nil
		}
		m.inFlight = false
		if msg.err != nil {
			m.errMsg = conversion.AsFailure(msg.err).Message
			return m, nil
		}
		m.result = &msg
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.screen == aboutScreen {
			if key.Matches(msg, m.keys.Back) {
				m.screen = mainScreen
			}
			return m, nil
		}
		return m.updateMain(msg)
	}

	return m, nil
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.About):
		m.screen = aboutScreen
		return m, nil
	case key.Matches(msg, m.keys.Convert):
		return m.startConvert()
	case key.Matches(msg, m.keys.Swap):
		m.swap()
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus((m.focus + 1) % fieldCount)
	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	}

	if m.focus != amountField {
		switch {
		case key.Matches(msg, m.keys.Left):
			m.cycle(-1)
		case key.Matches(msg, m.keys.Right):
			m.cycle(1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.amount, cmd = m.amount.Update(msg)
	return m, cmd
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = f
	if f == amountField {
		return m.amount.Focus()
	}
	m.amount.Blur()
	return nil
}

func (m *Model) cycle(step int) {
	switch m.focus {
	case baseField:
		m.base = money.Next(money.Code(m.base), step).String()
	case targetField:
		m.target = money.Next(money.Code(m.target), step).String()
	}
}

// swap exchanges the currencies and forgets the last outcome, including
// one still in flight.
func (m *Model) swap() {
	d := m.converter.Swap(m.Draft())
	m.base, m.target = d.Base, d.Target
	m.result = nil
	m.errMsg = ""
	m.inFlight = false
	m.seq++
}

func (m Model) startConvert() (tea.Model, tea.Cmd) {
	if m.inFlight {
		return m, nil
	}
	m.result = nil
	m.errMsg = ""
	m.inFlight = true
	m.seq++

	ctx, converter, draft, seq := m.ctx, m.converter, m.Draft(), m.seq
	run := func() tea.Msg {
		req, res, err := converter.ConvertDraft(ctx, draft)
		return convertedMsg{seq: seq, amount: draft.Amount, req: req, res: res, err: err}
	}
	return m, tea.Batch(m.spinner.Tick, run)
}
