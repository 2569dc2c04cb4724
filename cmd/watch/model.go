package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rxtech-lab/argo-analysis/internal/analyzer"
	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata"
)

// Application states.
const (
	StateSymbolInput = iota
	StateDisplay
)

// Model is the main Bubble Tea model for the watchlist CLI.
type Model struct {
	state        int
	symbolInput  textinput.Model
	resultsTable table.Model
	analyzer     *analyzer.Analyzer
	period       marketdata.Period
	refreshEvery time.Duration
	symbols      []string
	results      map[string]*types.AnalysisResult
	prevPrices   map[string]float64
	err          error
	width        int
	height       int
}

// NewModel creates a new Model with initial state.
func NewModel(a *analyzer.Analyzer, period marketdata.Period, refreshEvery time.Duration, symbols []string) Model {
	m := Model{
		state:        StateSymbolInput,
		symbolInput:  NewSymbolInput(),
		resultsTable: NewResultsTable(),
		analyzer:     a,
		period:       period,
		refreshEvery: refreshEvery,
		results:      make(map[string]*types.AnalysisResult),
		prevPrices:   make(map[string]float64),
	}

	if len(symbols) > 0 {
		m.symbols = symbols
		m.state = StateDisplay
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.state == StateDisplay {
		return m.refresh()
	}

	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.state != StateSymbolInput {
				return m, tea.Quit
			}
		case "esc":
			if m.state == StateDisplay {
				m.results = make(map[string]*types.AnalysisResult)
				m.prevPrices = make(map[string]float64)
				m.symbols = nil
				m.err = nil
				m.symbolInput.Reset()
				m.symbolInput.Focus()
				m.state = StateSymbolInput

				return m, textinput.Blink
			}
		case "r":
			if m.state == StateDisplay {
				return m, m.refresh()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resultsTable.SetWidth(msg.Width)
		m.resultsTable.SetHeight(msg.Height - 6)

		return m, nil

	case AnalysisResultMsg:
		if existing, ok := m.results[msg.Result.Symbol]; ok {
			m.prevPrices[msg.Result.Symbol] = existing.CurrentPrice
		}

		m.results[msg.Result.Symbol] = msg.Result
		m.resultsTable = UpdateTableRows(m.resultsTable, m.results, m.prevPrices)

		return m, nil

	case AnalysisErrorMsg:
		m.err = fmt.Errorf("%s: %w", msg.Symbol, msg.Err)

		return m, nil

	case RefreshTickMsg:
		return m, m.refresh()
	}

	switch m.state {
	case StateSymbolInput:
		return m.updateSymbolInput(msg)
	case StateDisplay:
		var cmd tea.Cmd
		m.resultsTable, cmd = m.resultsTable.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m Model) updateSymbolInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		symbols := ParseSymbols(m.symbolInput.Value())
		if len(symbols) > 0 {
			m.symbols = symbols
			m.state = StateDisplay
			m.symbolInput.Blur()

			return m, m.refresh()
		}
	}

	var cmd tea.Cmd
	m.symbolInput, cmd = m.symbolInput.Update(msg)

	return m, cmd
}

// refresh analyzes every watched symbol and schedules the next cycle.
func (m Model) refresh() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.symbols)+1)

	for _, symbol := range m.symbols {
		cmds = append(cmds, func() tea.Msg {
			result, err := m.analyzer.Analyze(context.Background(), symbol, m.period)
			if err != nil {
				return AnalysisErrorMsg{Symbol: symbol, Err: err}
			}

			return AnalysisResultMsg{Result: result}
		})
	}

	cmds = append(cmds, tea.Tick(m.refreshEvery, func(t time.Time) tea.Msg {
		return RefreshTickMsg(t)
	}))

	return tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	var s strings.Builder

	switch m.state {
	case StateSymbolInput:
		s.WriteString(TitleStyle.Render("Argo Analysis - Watchlist"))
		s.WriteString("\n\n")
		s.WriteString("Enter comma-separated symbols (e.g., AAPL,MSFT,NVDA):\n\n")
		s.WriteString(m.symbolInput.View())
		s.WriteString("\n\n")
		s.WriteString(HelpStyle.Render("Press Enter to confirm, Ctrl+C to quit"))

	case StateDisplay:
		s.WriteString(TitleStyle.Render(fmt.Sprintf("Watchlist (%s, refresh %s)", m.period, m.refreshEvery)))
		s.WriteString("\n\n")

		if m.err != nil {
			s.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			s.WriteString("\n\n")
		}

		if len(m.results) == 0 {
			s.WriteString("Waiting for data...\n")
		} else {
			s.WriteString(m.resultsTable.View())
		}

		s.WriteString("\n")
		s.WriteString(HelpStyle.Render(fmt.Sprintf("q: quit | r: refresh | Esc: back | Watching: %s", strings.Join(m.symbols, ", "))))
	}

	return s.String()
}
