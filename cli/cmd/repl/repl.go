package repl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/elcond/condition"
	"github.com/ardnew/elcond/lang"
	"github.com/ardnew/elcond/lang/ast"
	"github.com/ardnew/elcond/lang/parser"
	"github.com/ardnew/elcond/lang/simplify"
	"github.com/ardnew/elcond/log"
)

// editDoneMsg is sent when the editor exits with accepted text. An empty
// text means the edit was cancelled.
type editDoneMsg struct{ text string }

// editDeclinedMsg is sent when the user declined to re-edit after a parse
// error.
type editDeclinedMsg struct{}

// editErrorMsg is sent when the editor could not be run.
type editErrorMsg struct{ err error }

const (
	evalPrompt = "➜ "
	ctrlPrompt = " :"
)

const helpMessage = `
: Commands (press Esc to toggle mode):

  help     Print this help
  ast      Print the syntax tree of the last expression
  form     Print the condition form of the last expression
  edit     Edit the last expression in $EDITOR and evaluate it
  clear    Clear screen
  quit     Exit REPL

Usage:
  Type a template such as ${a > 1 && b == 'x'} to parse and simplify it
  Press Tab / Shift-Tab to cycle through completions
  Press Esc to toggle between eval and command modes
  Use Up/Down for history, Shift+Up/Shift+Down within the current mode only
  Press Ctrl+C on an empty line or Ctrl+D to exit
`

// inputMode represents the current input mode.
type inputMode int

const (
	modeEval inputMode = iota
	modeCtrl
)

// prefix marks entries of the mode in the history file.
func (m inputMode) prefix() string {
	if m == modeCtrl {
		return "C:"
	}

	return "E:"
}

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	ctrlPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	highlightStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("4")).
			Bold(true)
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
	selectedHighlightStyle = selectedStyle.Bold(true)
)

// echo formats the submitted line with the prompt of its mode.
func echo(mode inputMode, input string) string {
	if mode == modeCtrl {
		return ctrlPromptStyle.Render(ctrlPrompt) + inputStyle.Render(input)
	}

	return promptStyle.Render(evalPrompt) + inputStyle.Render(input)
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc      func() context.Context
	opts         []lang.Option
	logger       log.Logger
	input        textinput.Model
	vocab        *vocabulary
	last         *parser.Tree // last successfully parsed input
	lastInput    string
	history      *History
	historyIdx   int
	matches      fuzzy.Matches // current fuzzy match results
	candidates   []string      // backing candidate list
	wordStart    int           // byte offset of current word start
	wordEnd      int           // byte offset of current word end
	suggIdx      int           // selected candidate index
	tabActive    bool          // whether user is tab-cycling
	preTabText   string        // input text before tab-cycling began
	preTabCursor int           // cursor position before tab-cycling began
	width        int           // terminal width for ellipsization
	quitting     bool
	mode         inputMode
	evalText     string
	evalCursor   int
	ctrlText     string
	ctrlCursor   int
}

// Run starts the REPL. History is kept in cacheDir; every input is parsed
// with opts.
func Run(
	ctx context.Context,
	cacheDir string,
	logger log.Logger,
	opts ...lang.Option,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	history := NewHistory(filepath.Join(cacheDir, baseHistory))
	if err := history.Load(); err != nil {
		logger.WarnContext(ctx, "history not loaded", slog.Any("error", err))
	}

	logger.TraceContext(ctx, "repl start",
		slog.String("cache_dir", cacheDir),
		slog.Int("history", history.Len()),
	)

	opts = append(opts, lang.WithLogger(logger))

	p := tea.NewProgram(newModel(ctx, history, logger, opts...), tea.WithContext(ctx))
	_, err = p.Run()

	return err
}

const defaultWidth = 80

func newModel(
	ctx context.Context,
	history *History,
	logger log.Logger,
	opts ...lang.Option,
) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(evalPrompt)
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		opts:       opts,
		logger:     logger,
		input:      ti,
		vocab:      newVocabulary(),
		history:    history,
		historyIdx: history.Len(),
		width:      defaultWidth,
		mode:       modeEval,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(evalPrompt) - 2

		return m, nil

	case editDoneMsg:
		if msg.text == "" {
			return m, tea.Println(hintStyle.Render("edit cancelled"))
		}

		return m.evaluate(msg.text)

	case editDeclinedMsg:
		return m, tea.Println(hintStyle.Render("edit discarded"))

	case editErrorMsg:
		return m, tea.Println(errorStyle.Render("error: " + msg.err.Error()))
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	input := m.input.Value()

	switch {
	case m.historyIdx < m.history.Len():
		hint := fmt.Sprintf("%s/%d",
			lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(m.historyIdx+1)),
			m.history.Len())
		b.WriteString(hintStyle.Render(hint))

	case strings.TrimSpace(input) == "":
		hint := "Type a template or press Esc for commands"
		if m.mode == modeCtrl {
			hint = "Type: " + strings.Join(ctrlCommands, ", ") + " (press Esc to return)"
		}

		b.WriteString(hintStyle.Render(hint))

	case len(m.matches) > 0:
		b.WriteString(m.renderCandidateBar())
	}

	b.WriteString("\n")

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(m.ctxFunc(), "repl keypress",
		slog.String("key", msg.String()),
	)

	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.historyIdx = m.history.Len()
		refreshMatches(&m, false)

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if !m.tabActive || len(m.matches) == 0 {
			return m.submit()
		}

		// Lock in the current tab candidate without executing.
		m.tabActive = false
		refreshMatches(&m, true)

		return m, nil

	case tea.KeyTab:
		return m.cycle(1)

	case tea.KeyShiftTab:
		return m.cycle(-1)

	case tea.KeyUp:
		return m.historyStep(-1, false)

	case tea.KeyDown:
		return m.historyStep(1, false)

	case tea.KeyShiftUp:
		return m.historyStep(-1, true)

	case tea.KeyShiftDown:
		return m.historyStep(1, true)

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.input.SetCursor(m.preTabCursor)
			refreshMatches(&m, false)

			return m, nil
		}

		if m.mode == modeEval {
			return m.switchToMode(modeCtrl), nil
		}

		return m.switchToMode(modeEval), nil

	case tea.KeyRunes, tea.KeySpace:
		// Space accepts the candidate while tab-cycling.
		if m.tabActive && msg.String() == " " {
			m.tabActive = false
		}

		var cmd tea.Cmd

		m.historyIdx = m.history.Len()
		m.input, cmd = m.input.Update(msg)
		refreshMatches(&m, true)

		return m, cmd
	}

	// Any other key (backspace, delete, arrows, ...) edits without
	// auto-confirming a completion.
	var cmd tea.Cmd

	m.tabActive = false
	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	refreshMatches(&m, false)

	return m, cmd
}

// cycle moves the tab selection by step, wrapping at either end. A single
// candidate is completed immediately.
func (m model) cycle(step int) (model, tea.Cmd) {
	n := len(m.matches)
	if n == 0 {
		return m, nil
	}

	if n == 1 {
		replaceCurrentWord(&m, m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m, nil
	}

	switch {
	case m.tabActive:
		m.suggIdx = (m.suggIdx + step + n) % n
	case step < 0:
		m.suggIdx = n - 1
	default:
		m.suggIdx = 0
	}

	if !m.tabActive {
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()
	}

	replaceCurrentWord(&m, m.matches[m.suggIdx].Str)

	return m, nil
}

// replaceCurrentWord replaces the current word boundaries in the input with
// the given replacement text and repositions the cursor.
func replaceCurrentWord(m *model, replacement string) {
	input := m.input.Value()
	cursor := m.wordStart + len(replacement)

	m.input.SetValue(input[:m.wordStart] + replacement + input[m.wordEnd:])
	m.input.SetCursor(cursor)

	m.wordEnd = cursor
}

// refreshMatches recomputes fuzzy matches for the current input state.
// When autoConfirm is true, a sole candidate equal to the typed word is
// accepted.
func refreshMatches(m *model, autoConfirm bool) {
	m.matches, m.candidates, m.wordStart, m.wordEnd = m.computeMatches()

	if !m.tabActive {
		m.suggIdx = -1
	}

	if !autoConfirm || len(m.matches) != 1 {
		return
	}

	if m.input.Value()[m.wordStart:m.wordEnd] == m.matches[0].Str {
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil
	}
}

// submit executes the input line in the current mode.
func (m model) submit() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	m.evalText, m.evalCursor = "", 0
	m.ctrlText, m.ctrlCursor = "", 0
	m.input.SetValue("")

	if err := m.history.Add(input, m.mode); err != nil {
		m.logger.WarnContext(m.ctxFunc(), "history not saved", slog.Any("error", err))
	}

	m.historyIdx = m.history.Len()

	echoCmd := tea.Println(echo(m.mode, input))

	var cmd tea.Cmd

	if m.mode == modeCtrl {
		m, cmd = m.execute(input)
	} else {
		m, cmd = m.evaluate(input)
	}

	return m, tea.Sequence(echoCmd, cmd)
}

// evaluate parses input and prints its rendering.
func (m model) evaluate(input string) (model, tea.Cmd) {
	tree, out, err := render(m.ctxFunc(), input, m.opts...)
	if err != nil {
		m.logger.TraceContext(m.ctxFunc(), "repl eval failed",
			slog.String("error", err.Error()),
		)

		return m, tea.Println(errorStyle.Render("error: " + err.Error()))
	}

	m.last, m.lastInput = tree, input
	m.vocab.add(tree)

	m.logger.TraceContext(m.ctxFunc(), "repl eval",
		slog.Int("identifiers", len(tree.Identifiers)),
		slog.Int("functions", len(tree.Functions)),
	)

	return m, tea.Println(resultStyle.Render(out))
}

// render parses input and returns its simplified rendering, or the template
// text when the expression is not a binary operation.
func render(
	ctx context.Context,
	input string,
	opts ...lang.Option,
) (*parser.Tree, string, error) {
	tree, err := lang.Parse(ctx, input, opts...)
	if err != nil {
		return nil, "", err
	}

	leaf, err := simplify.Tree(tree)
	if err != nil {
		return tree, tree.String(), nil
	}

	return tree, leaf.String(), nil
}

// execute runs a control command.
func (m model) execute(input string) (model, tea.Cmd) {
	name, _, _ := strings.Cut(input, " ")

	m.logger.TraceContext(m.ctxFunc(), "repl command", slog.String("command", name))

	switch name {
	case "q", "quit", "exit":
		m.quitting = true

		return m, tea.Quit

	case "h", "help":
		return m, tea.Println(helpMessage)

	case "c", "clear":
		return m, tea.ClearScreen

	case "e", "edit":
		return m, m.edit()

	case "a", "ast", "f", "form":
		var (
			out string
			err error
		)

		if name[0] == 'a' {
			out, err = m.outline()
		} else {
			out, err = m.form()
		}

		if err != nil {
			return m, tea.Println(errorStyle.Render("error: " + err.Error()))
		}

		return m, tea.Println(resultStyle.Render(out))
	}

	return m, tea.Println(
		errorStyle.Render("unknown command: " + name + " (try 'help')"),
	)
}

// outline returns the syntax tree of the last expression.
func (m model) outline() (string, error) {
	if m.last == nil {
		return "", ErrNoLastInput
	}

	var b strings.Builder

	if err := ast.Print(&b, m.last.Root, 2); err != nil {
		return "", err
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

// form returns the condition form of the last expression as JSON.
func (m model) form() (string, error) {
	if m.last == nil {
		return "", ErrNoLastInput
	}

	form, err := condition.FromTree(m.last)
	if err != nil {
		return "", err
	}

	data, err := condition.JSON(form, 0)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// edit opens the last expression in the user's editor.
func (m model) edit() tea.Cmd {
	cmd := &editCommand{
		ctx:    m.ctxFunc(),
		text:   m.lastInput,
		opts:   m.opts,
		logger: m.logger,
	}

	return tea.Exec(cmd, func(err error) tea.Msg {
		switch {
		case errors.Is(err, ErrEditDeclined):
			return editDeclinedMsg{}
		case err != nil:
			return editErrorMsg{err: err}
		}

		return editDoneMsg{text: cmd.text}
	})
}

// historyStep moves through history by dir (-1 older, +1 newer). With
// inMode set only entries of the current mode are visited; otherwise the
// mode follows the entry. Stepping past the newest entry clears the input.
func (m model) historyStep(dir int, inMode bool) (model, tea.Cmd) {
	for i := m.historyIdx + dir; i >= 0 && i < m.history.Len(); i += dir {
		entry, err := m.history.Entry(i)
		if err != nil || (inMode && entry.Mode != m.mode) {
			continue
		}

		if entry.Mode != m.mode {
			m = m.switchToMode(entry.Mode)
		}

		m.historyIdx = i
		m.input.SetValue(entry.Line)
		m.input.SetCursor(len(entry.Line))
		refreshMatches(&m, false)

		return m, nil
	}

	if dir > 0 && m.historyIdx < m.history.Len() {
		m.historyIdx = m.history.Len()
		m.input.SetValue("")
		refreshMatches(&m, false)
	}

	return m, nil
}

// switchToMode switches to the given mode, preserving each mode's input.
func (m model) switchToMode(mode inputMode) model {
	if m.mode == modeEval {
		m.evalText, m.evalCursor = m.input.Value(), m.input.Position()
	} else {
		m.ctrlText, m.ctrlCursor = m.input.Value(), m.input.Position()
	}

	m.mode = mode

	if mode == modeEval {
		m.input.Prompt = promptStyle.Render(evalPrompt)
		m.input.SetValue(m.evalText)
		m.input.SetCursor(m.evalCursor)
	} else {
		m.input.Prompt = ctrlPromptStyle.Render(ctrlPrompt)
		m.input.SetValue(m.ctrlText)
		m.input.SetCursor(m.ctrlCursor)
	}

	refreshMatches(&m, false)

	return m
}
