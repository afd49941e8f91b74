package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"portfolio-gallery/pkg/imageurl"
	"portfolio-gallery/pkg/models"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.message.SetWidth(min(msg.Width-4, 80))
		m.markdown = newMarkdownRenderer(msg.Width)
		return m, nil

	case tea.KeyMsg:
		if _, open := m.controller.OpenIndex(); open {
			return m.updateLightbox(msg)
		}
		if m.editing {
			return m.updateForm(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateLightbox(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Close):
		m.controller.Close()
		m.trace("close")
	case key.Matches(msg, m.keys.Previous):
		m.controller.Previous()
		m.trace("previous")
	case key.Matches(msg, m.keys.Next):
		m.controller.Next()
		m.trace("next")
	case key.Matches(msg, m.keys.Copy):
		ref, ok := m.controller.LightboxImage()
		if !ok {
			m.setStatus("nothing to copy", true)
			break
		}
		if err := m.copyToClipboard(imageurl.Build(ref, imageurl.Full)); err != nil {
			m.setStatus("copy failed: "+err.Error(), true)
			break
		}
		m.setStatus("image URL copied", false)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.NextGallery):
		m.selectOffset(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevGallery):
		m.selectOffset(-1)
		return m, nil
	}

	if n, err := strconv.Atoi(msg.String()); err == nil {
		galleries := m.controller.Catalog().Galleries
		if n >= 1 && n <= len(galleries) {
			m.selectGallery(galleries[n-1])
		}
		return m, nil
	}

	switch m.selected().Kind {
	case models.KindMedia:
		n := len(m.selected().Images)
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < n-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Open):
			if err := m.controller.Open(m.cursor); err != nil {
				m.setStatus(err.Error(), true)
				break
			}
			m.trace("open")
		}
	case models.KindContact:
		if key.Matches(msg, m.keys.Edit) {
			m.editing = true
			m.status = ""
			return m, m.focusField(fieldName)
		}
	case models.KindBiography:
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Close):
		m.editing = false
		m.blurAll()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		return m, m.focusField((m.focus + 1) % fieldCount)
	case msg.String() == "shift+tab":
		return m, m.focusField((m.focus + fieldCount - 1) % fieldCount)
	case key.Matches(msg, m.keys.Submit):
		m.logger.Info("Contact form submitted",
			zap.Int("name_len", len(m.name.Value())),
			zap.Int("email_len", len(m.email.Value())),
			zap.Int("message_len", len(m.message.Value())))
		m.name.Reset()
		m.email.Reset()
		m.message.Reset()
		m.editing = false
		m.blurAll()
		m.setStatus("message not sent (demo)", false)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldName:
		m.name, cmd = m.name.Update(msg)
	case fieldEmail:
		m.email, cmd = m.email.Update(msg)
	case fieldMessage:
		m.message, cmd = m.message.Update(msg)
	}
	return m, cmd
}

// selectOffset selects the gallery delta steps away from the current one, wrapping
func (m *Model) selectOffset(delta int) {
	galleries := m.controller.Catalog().Galleries
	current := 0
	for i, g := range galleries {
		if g.ID == m.selected().ID {
			current = i
			break
		}
	}
	n := len(galleries)
	m.selectGallery(galleries[((current+delta)%n+n)%n])
}

func (m *Model) selectGallery(g models.Gallery) {
	m.controller.SelectGallery(g)
	m.cursor = 0
	m.status = ""
	m.trace("select")
}

func (m *Model) focusField(field int) tea.Cmd {
	m.blurAll()
	m.focus = field
	switch field {
	case fieldName:
		return m.name.Focus()
	case fieldEmail:
		return m.email.Focus()
	default:
		return m.message.Focus()
	}
}

func (m *Model) blurAll() {
	m.name.Blur()
	m.email.Blur()
	m.message.Blur()
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusIsErr = isErr
}

func (m *Model) trace(gesture string) {
	idx, open := m.controller.OpenIndex()
	m.logger.Debug("Gesture applied",
		zap.String("gesture", gesture),
		zap.String("gallery", m.selected().ID),
		zap.Bool("lightbox", open),
		zap.Int("index", idx))
}
