package main

import (
	"context"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

const windowTitle = "PDF Question Assistant"

type (
	extractFunc func(path string) (string, error)
	answerFunc  func(ctx context.Context, text, question string) (string, error)
	openFunc    func(path string) error
)

type screen int

const (
	screenMain screen = iota
	screenPicker
)

type loadedMsg struct {
	path string
	text string
	err  error
}

type answeredMsg struct {
	reply string
	err   error
}

type model struct {
	session session
	extract extractFunc
	answer  answerFunc
	open    openFunc
	log     *logrus.Logger

	input   textinput.Model
	picker  filepicker.Model
	spinner spinner.Model

	screen screen
	busy   string
	dialog *dialog
	result string
	width  int
}

func newModel(s session, extract extractFunc, answer answerFunc, open openFunc, log *logrus.Logger) model {
	ti := textinput.New()
	ti.Placeholder = "Ask a question here..."
	ti.CharLimit = 1000
	ti.Width = 50
	ti.Focus()

	fp := filepicker.New()
	fp.AllowedTypes = []string{".pdf", ".PDF"}
	if wd, err := os.Getwd(); err == nil {
		fp.CurrentDirectory = wd
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return model{
		session: s,
		extract: extract,
		answer:  answer,
		open:    open,
		log:     log,
		input:   ti,
		picker:  fp,
		spinner: sp,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.SetWindowTitle(windowTitle))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case loadedMsg:
		m.busy = ""
		d := m.session.load(msg.path, msg.text, msg.err)
		if msg.err != nil {
			m.log.WithError(msg.err).WithField("path", msg.path).Warn("PDF load failed")
		} else {
			m.log.WithField("path", msg.path).Info("PDF loaded")
		}
		m.dialog = &d
		return m, nil

	case answeredMsg:
		m.busy = ""
		if msg.err != nil {
			m.log.WithError(msg.err).Warn("question failed")
		}
		m.result = m.session.answerLabel(msg.reply, msg.err)
		return m, nil

	case spinner.TickMsg:
		if m.busy == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.dialog != nil {
			m.dialog = nil
			// A file dropped onto an open dialog still loads.
			if !msg.Paste {
				return m, nil
			}
		}
		if m.busy != "" {
			return m, nil
		}
		if m.screen == screenPicker {
			return m.updatePicker(msg)
		}
		return m.updateMain(msg)
	}

	var pickerCmd, inputCmd tea.Cmd
	m.picker, pickerCmd = m.picker.Update(msg)
	m.input, inputCmd = m.input.Update(msg)
	return m, tea.Batch(pickerCmd, inputCmd)
}

func (m model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Paste {
		if path, ok := droppedFile(string(msg.Runes)); ok {
			m.log.WithField("path", path).Debug("file dropped")
			return m.startLoad(path)
		}
	}

	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyCtrlO:
		m.screen = screenPicker
		return m, m.picker.Init()
	case tea.KeyCtrlP:
		return m.openSource()
	case tea.KeyEnter:
		return m.startAsk()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.screen = screenMain
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.screen = screenMain
		return m.startLoad(path)
	}
	return m, cmd
}

func (m model) startLoad(path string) (tea.Model, tea.Cmd) {
	m.busy = "Extracting text..."
	extract := m.extract
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		text, err := extract(path)
		return loadedMsg{path: path, text: text, err: err}
	})
}

func (m model) startAsk() (tea.Model, tea.Cmd) {
	question, warning := m.session.ask(m.input.Value())
	if warning != nil {
		m.dialog = warning
		return m, nil
	}

	m.busy = "Asking..."
	answer, text := m.answer, m.session.text
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		reply, err := answer(context.Background(), text, question)
		return answeredMsg{reply: reply, err: err}
	})
}

func (m model) openSource() (tea.Model, tea.Cmd) {
	if !m.session.loaded() {
		m.dialog = &dialog{Kind: dialogWarning, Title: "No PDF Loaded", Body: "Please upload a PDF first."}
		return m, nil
	}
	if err := m.open(m.session.source); err != nil {
		m.log.WithError(err).Warn("could not open viewer")
		m.dialog = &dialog{Kind: dialogError, Title: "Error", Body: "Could not open the PDF viewer.", Detail: err.Error()}
	}
	return m, nil
}
