package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	descStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// pickerHelp is the help.KeyMap shown under the variant list.
type pickerHelp KeyMap

// ShortHelp returns key bindings for the picker footer.
func (k pickerHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k pickerHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// VariantPickerModel lets users choose which game variant to play.
type VariantPickerModel struct {
	variants  []config.Variant
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	help      help.Model
	selected  string
	quitting  bool
}

// NewVariantPickerModel creates a picker with the cursor on the default variant.
func NewVariantPickerModel(width, height int) VariantPickerModel {
	variants := config.Variants()
	cursor := 0
	for i, v := range variants {
		if v.ID == config.DefaultVariant {
			cursor = i
		}
	}

	return VariantPickerModel{
		variants:  variants,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
}

// Init initializes the model.
func (m VariantPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m VariantPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m VariantPickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.variants)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selected = m.variants[m.cursor].ID
		return m, tea.Quit
	}
	return m, nil
}

// View renders the variant list.
func (m VariantPickerModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("B R E A K O U T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select variant:", m.width))
	b.WriteString("\n\n")

	for i, v := range m.variants {
		line := fmt.Sprintf("  %d. %-8s", i+1, v.Title)
		if i == m.cursor {
			line = selectedStyle.Render(fmt.Sprintf("> %d. %-8s", i+1, v.Title))
		}
		b.WriteString(centerText(line+" "+descStyle.Render(v.Description), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(pickerHelp(m.keyMapper.Keys())), m.width))

	return b.String()
}

// Selected returns the chosen variant ID, or "" if none was chosen.
func (m VariantPickerModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m VariantPickerModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads text to center it. Styled text is measured by its
// printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// RunVariantPicker runs the variant picker and returns the chosen variant ID.
// An empty ID means the user quit.
func RunVariantPicker(cfg core.RuntimeConfig) (string, error) {
	model := NewVariantPickerModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("tui: variant picker: %w", err)
	}

	m, ok := finalModel.(VariantPickerModel)
	if !ok || m.IsQuitting() {
		return "", nil
	}

	return m.Selected(), nil
}
