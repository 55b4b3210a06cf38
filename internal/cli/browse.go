package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/guestcard/pkg/deck"
	"github.com/matzehuels/guestcard/pkg/layout"
)

// viewportPresets are the widths browse steps through, phone to tablet.
var viewportPresets = []float64{320, 360, 390, 414, 440, 600, 768, 880}

func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [deck]",
		Short: "Page through the cards of a deck across viewport widths",
		Long: `Page through the cards of a deck interactively. Left and right move between
cards, up and down step through common viewport widths. Without a deck the
built-in sample is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := deck.Sample()
			if len(args) == 1 {
				var err error
				if d, err = deck.Load(args[0]); err != nil {
					return err
				}
			}
			if d.Len() == 0 {
				printWarning("Deck has no cards")
				return nil
			}
			width := d.ViewportWidth
			if width == 0 {
				width = c.Config.ViewportWidth
			}
			_, err := tea.NewProgram(newBrowseModel(d, width), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

type browseKeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Wider  key.Binding
	Narrow key.Binding
	Hidden key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Wider, k.Narrow, k.Help, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.Wider, k.Narrow},
		{k.Hidden, k.Help, k.Quit},
	}
}

var browseKeys = browseKeyMap{
	Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous card")),
	Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next card")),
	Wider:  key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "wider viewport")),
	Narrow: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "narrower viewport")),
	Hidden: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "toggle hidden elements")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more help")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// browseModel is the bubbletea model of the browse command. Plans are
// resolved on demand; resolution is cheap and pure.
type browseModel struct {
	deck       *deck.Deck
	card       int
	preset     int
	showHidden bool
	help       help.Model
}

func newBrowseModel(d *deck.Deck, width float64) browseModel {
	return browseModel{
		deck:       d,
		preset:     closestPreset(width),
		showHidden: true,
		help:       help.New(),
	}
}

// closestPreset returns the index of the preset nearest to width.
func closestPreset(width float64) int {
	best := 0
	for i, p := range viewportPresets {
		if math.Abs(p-width) < math.Abs(viewportPresets[best]-width) {
			best = i
		}
	}
	return best
}

func (m browseModel) viewport() float64 { return viewportPresets[m.preset] }

func (m browseModel) plan() layout.Plan {
	e := m.deck.Entries[m.card]
	return layout.Resolve(e.Record, e.Context, e.Overrides, m.viewport())
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, browseKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, browseKeys.Prev):
			if m.card > 0 {
				m.card--
			}
		case key.Matches(msg, browseKeys.Next):
			if m.card < m.deck.Len()-1 {
				m.card++
			}
		case key.Matches(msg, browseKeys.Wider):
			if m.preset < len(viewportPresets)-1 {
				m.preset++
			}
		case key.Matches(msg, browseKeys.Narrow):
			if m.preset > 0 {
				m.preset--
			}
		case key.Matches(msg, browseKeys.Hidden):
			m.showHidden = !m.showHidden
		case key.Matches(msg, browseKeys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder
	p := m.plan()
	if !m.showHidden {
		p.Elements = p.Visible()
	}

	b.WriteString(StyleDim.Render(fmt.Sprintf("card %d/%d · viewport %s", m.card+1, m.deck.Len(), formatCoord(m.viewport()))))
	if p.Scale.Clamped() {
		b.WriteString(StyleWarning.Render("  clamped"))
	}
	b.WriteString("\n\n")
	b.WriteString(planSummary(m.deck.Entries[m.card].ID, p))
	b.WriteString("\n")
	b.WriteString(planTable(p))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(browseKeys))
	return b.String()
}
