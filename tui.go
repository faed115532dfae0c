package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the terminal view
const (
	colorAccent    = "36"  // Teal - titles
	colorHighlight = "42"  // Emerald - primary controls, borders
	colorMuted     = "241" // Gray - hints, labels
	colorText      = "252" // Light gray - body text
)

var termStyles = struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Tag      lipgloss.Style
	Overlay  lipgloss.Style
	Hint     lipgloss.Style
}{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent)),
	Subtitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorHighlight)),
	Body:     lipgloss.NewStyle().Foreground(lipgloss.Color(colorText)),
	Label:    lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)),
	Value:    lipgloss.NewStyle().Bold(true),
	Tag: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorHighlight)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorHighlight)).
		Padding(0, 1),
	Overlay: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorHighlight)).
		Padding(1, 2),
	Hint: lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)),
}

// Same closed variant set as the web Button, mapped to terminal styles.
var termButtonStyles = map[ButtonVariant]lipgloss.Style{
	VariantPrimary: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color(colorHighlight)).
		Padding(0, 2),
	VariantSecondary: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorMuted)).
		Padding(0, 1),
	VariantGhost: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)),
}

var termIcons = map[Icon]string{
	IconMail:       "✉",
	IconPhone:      "☎",
	IconArrowRight: "→",
	IconClose:      "✕",
}

// termButton is a key-activated control. A nil OnPress makes it inert.
type termButton struct {
	Label   string
	Binding key.Binding
	Variant ButtonVariant
	Icon    Icon
	OnPress func() tea.Msg
}

// Press is the button's activation; it runs OnPress once.
func (b termButton) Press() tea.Msg {
	if b.OnPress == nil {
		return nil
	}
	return b.OnPress()
}

func (b termButton) View() string {
	style, ok := termButtonStyles[b.Variant]
	if !ok {
		style = termButtonStyles[VariantPrimary]
	}
	label := b.Label
	if glyph := termIcons[b.Icon]; glyph != "" {
		label += " " + glyph
	}
	return style.Render(label)
}

type transitionMsg struct {
	action Action
}

func requestTransition(a Action) func() tea.Msg {
	return func() tea.Msg { return transitionMsg{action: a} }
}

type termKeyMap struct {
	Contact key.Binding
	Project key.Binding
	Close   key.Binding
	Quit    key.Binding
}

func newTermKeyMap() termKeyMap {
	return termKeyMap{
		Contact: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "contact me")),
		Project: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "my project")),
		Close:   key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc", "close")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// termModel renders the portfolio in a terminal. It owns its own
// ViewController for the life of the program.
type termModel struct {
	ctrl   *ViewController
	keys   termKeyMap
	help   help.Model
	width  int
	height int
}

func newTermModel() *termModel {
	hm := help.New()
	hm.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(colorHighlight)).Bold(true)
	hm.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted))
	hm.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted))
	return &termModel{
		ctrl: NewViewController(),
		keys: newTermKeyMap(),
		help: hm,
	}
}

func (m *termModel) Init() tea.Cmd {
	return nil
}

// buttons are the controls of the current presentation.
func (m *termModel) buttons() []termButton {
	switch m.ctrl.Active() {
	case ViewContact, ViewProject:
		return []termButton{
			{Label: "Close", Binding: m.keys.Close, Variant: VariantGhost, Icon: IconClose, OnPress: requestTransition(ActionClose)},
		}
	default:
		return []termButton{
			{Label: "Contact Me", Binding: m.keys.Contact, Variant: VariantSecondary, Icon: IconMail, OnPress: requestTransition(ActionOpenContact)},
			{Label: "My Project", Binding: m.keys.Project, Variant: VariantPrimary, Icon: IconArrowRight, OnPress: requestTransition(ActionOpenProject)},
		}
	}
}

func (m *termModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case transitionMsg:
		m.ctrl.Dispatch(msg.action)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		for _, b := range m.buttons() {
			if key.Matches(msg, b.Binding) {
				return m, b.Press
			}
		}
	}
	return m, nil
}

func (m *termModel) View() string {
	var body string
	switch m.ctrl.Active() {
	case ViewContact:
		body = m.overlay(m.contactView())
	case ViewProject:
		body = m.overlay(m.projectView())
	default:
		body = m.heroView()
	}
	bindings := make([]key.Binding, 0, 3)
	for _, b := range m.buttons() {
		bindings = append(bindings, b.Binding)
	}
	bindings = append(bindings, m.keys.Quit)
	return lipgloss.JoinVertical(lipgloss.Left, body, "", m.help.ShortHelpView(bindings))
}

func (m *termModel) textWidth() int {
	if m.width > 0 && m.width < 84 {
		return m.width - 4
	}
	return 80
}

func (m *termModel) buttonRow() string {
	var views []string
	for _, b := range m.buttons() {
		views = append(views, b.View(), "  ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}

func (m *termModel) heroView() string {
	w := m.textWidth()
	return lipgloss.JoinVertical(lipgloss.Left,
		termStyles.Title.Render(Profile.Title),
		"",
		termStyles.Subtitle.Render(Profile.Greeting),
		termStyles.Body.Width(w).Render(Profile.About),
		"",
		termStyles.Hint.Render("photo: "+Profile.Photo.URL()),
		"",
		m.buttonRow(),
	)
}

func (m *termModel) contactView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		termStyles.Title.Render(Contact.Heading),
		"",
		termStyles.Label.Render(termIcons[IconPhone]+" Phone"),
		termStyles.Value.Render(Contact.Phone),
		"",
		termStyles.Label.Render(termIcons[IconMail]+" Email"),
		termStyles.Value.Render(Contact.Email),
		"",
		m.buttonRow(),
	)
}

func (m *termModel) projectView() string {
	p := KwarTrack
	w := m.textWidth() - 6

	var shots strings.Builder
	for i, s := range p.Screenshots {
		fmt.Fprintf(&shots, "%d. %s Screenshot %d  %s\n", i+1, p.Title, i+1, termStyles.Hint.Render(s.URL()))
	}
	tags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		tags = append(tags, termStyles.Tag.Render(t.Label))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		termStyles.Title.Render(p.Title),
		termStyles.Subtitle.Render(p.Subtitle),
		"",
		strings.TrimRight(shots.String(), "\n"),
		"",
		termStyles.Value.Render("About the Project"),
		termStyles.Body.Width(w).Render(p.Description),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, tags...),
		"",
		m.buttonRow(),
	)
}

func (m *termModel) overlay(content string) string {
	box := termStyles.Overlay.Render(content)
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, box)
}

func runTUI() error {
	p := tea.NewProgram(newTermModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
