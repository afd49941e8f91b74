// Package tui is a terminal browser for the portfolio built on bubbletea.
//
// It drives the same viewstate.Controller as the web surface: tabs select a
// gallery, enter opens the lightbox and h/l move through it.
package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"portfolio-gallery/pkg/models"
	"portfolio-gallery/pkg/viewstate"
)

// contact form fields in focus order
const (
	fieldName = iota
	fieldEmail
	fieldMessage
	fieldCount
)

// Model is the bubbletea model of the browser
type Model struct {
	controller *viewstate.Controller
	brand      string
	year       int
	keys       KeyMap
	help       help.Model
	logger     *zap.Logger

	width  int
	height int

	// cursor is the highlighted preview in a media gallery
	cursor int

	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	editing bool
	focus   int

	markdown *glamour.TermRenderer

	status      string
	statusIsErr bool

	copyToClipboard func(string) error
}

// Option configures a Model
type Option func(*Model)

// WithClipboard replaces the system clipboard writer
func WithClipboard(write func(string) error) Option {
	return func(m *Model) {
		m.copyToClipboard = write
	}
}

// WithLogger sets the logger used for gesture tracing
func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// New creates a browser model over controller
func New(controller *viewstate.Controller, brand string, opts ...Option) Model {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 120

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254

	message := textarea.New()
	message.Placeholder = "Your message"
	message.SetHeight(5)

	m := Model{
		controller:      controller,
		brand:           brand,
		year:            time.Now().Year(),
		keys:            DefaultKeyMap(),
		help:            help.New(),
		logger:          zap.NewNop(),
		width:           80,
		name:            name,
		email:           email,
		message:         message,
		markdown:        newMarkdownRenderer(80),
		copyToClipboard: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Controller returns the view controller driven by the model
func (m Model) Controller() *viewstate.Controller {
	return m.controller
}

// Cursor returns the highlighted preview index
func (m Model) Cursor() int {
	return m.cursor
}

// Editing reports whether the contact form has keyboard focus
func (m Model) Editing() bool {
	return m.editing
}

// Status returns the last status line
func (m Model) Status() string {
	return m.status
}

func (m Model) selected() models.Gallery {
	return m.controller.Selected()
}

// Run starts the browser on the terminal and blocks until it exits
func Run(controller *viewstate.Controller, brand string, opts ...Option) error {
	p := tea.NewProgram(New(controller, brand, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
