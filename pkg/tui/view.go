package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"portfolio-gallery/pkg/models"
	"portfolio-gallery/pkg/presenter"
)

// View implements tea.Model
func (m Model) View() string {
	page := presenter.Build(m.controller.Snapshot(), m.controller.Catalog(), presenter.Options{
		Brand: m.brand,
		Year:  m.year,
	})

	if page.Lightbox != nil {
		return m.renderLightbox(page)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader(page))
	b.WriteString("\n\n")

	switch {
	case page.IsBio:
		b.WriteString(m.renderBio(page.Gallery))
	case page.IsContact:
		b.WriteString(m.renderContact(page.Contact))
	default:
		b.WriteString(m.renderPreviews(page.Previews))
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter(page.Footer))
	b.WriteString("\n")
	if m.status != "" {
		style := statusStyle
		if m.statusIsErr {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderHeader(page models.Page) string {
	brand := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, brandStyle.Render(page.Brand))

	tabs := make([]string, 0, len(page.Nav))
	for _, entry := range page.Nav {
		if entry.Active {
			tabs = append(tabs, activeTabStyle.Render(entry.Title))
		} else {
			tabs = append(tabs, tabStyle.Render(entry.Title))
		}
	}
	nav := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	return lipgloss.JoinVertical(lipgloss.Left, brand, nav)
}

func (m Model) renderPreviews(previews []models.ImagePreview) string {
	if len(previews) == 0 {
		return mutedStyle.Render("No images in this gallery.")
	}
	urlWidth := max(m.width-len(previews[0].Alt)-8, 10)

	lines := make([]string, 0, len(previews))
	for _, p := range previews {
		url := runewidth.Truncate(p.URL, urlWidth, "…")
		if p.Index == m.cursor {
			lines = append(lines, cursorStyle.Render("▸ "+p.Alt)+"  "+mutedStyle.Render(url))
		} else {
			lines = append(lines, "  "+p.Alt+"  "+mutedStyle.Render(url))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderBio(g models.Gallery) string {
	plain := g.Heading + "\n\n" + g.Body
	if m.markdown == nil {
		return plain
	}
	out, err := m.markdown.Render(fmt.Sprintf("## %s\n\n%s\n", g.Heading, g.Body))
	if err != nil {
		return plain
	}
	return strings.TrimRight(out, "\n")
}

// newMarkdownRenderer returns nil when glamour cannot be set up; bio text is
// then shown unstyled
func newMarkdownRenderer(width int) *glamour.TermRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(min(width-4, 80), 20)),
	)
	if err != nil {
		return nil
	}
	return r
}

func (m Model) renderContact(form models.ContactForm) string {
	var b strings.Builder
	b.WriteString(brandStyle.Render(form.Heading))
	b.WriteString("\n")
	b.WriteString("Name\n" + m.name.View() + "\n\n")
	b.WriteString("Email\n" + m.email.View() + "\n\n")
	b.WriteString("Message\n" + m.message.View() + "\n\n")
	if m.editing {
		b.WriteString(mutedStyle.Render("tab next field • ctrl+s send • esc done"))
	} else {
		b.WriteString(mutedStyle.Render("press i to fill in the form"))
	}
	return b.String()
}

func (m Model) renderFooter(blocks []models.FooterBlock) string {
	cols := make([]string, 0, len(blocks))
	colWidth := max(m.width/len(blocks)-4, 20)
	for _, block := range blocks {
		body := lipgloss.NewStyle().Width(colWidth).Render(strings.Join(block.Lines, " "))
		cols = append(cols, footerStyle.Render(footerHeadingStyle.Render(block.Heading)+"\n"+body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) renderLightbox(page models.Page) string {
	lb := page.Lightbox
	var body string
	if lb.Missing {
		body = errorStyle.Render("Image unavailable")
	} else {
		body = lb.Alt + "\n\n" + runewidth.Truncate(lb.URL, max(m.width-8, 20), "…")
	}

	controls := mutedStyle.Render("‹ h   l ›   esc ×   y copy")
	box := lightboxStyle.Render(body + "\n\n" + controls)

	out := box
	if m.height > 0 {
		out = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	if m.status != "" {
		style := statusStyle
		if m.statusIsErr {
			style = errorStyle
		}
		out += "\n" + style.Render(m.status)
	}
	return out
}
