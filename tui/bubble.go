package tui

import (
	"time"

	"github.com/OhadRubin/workspace-colors/internal/ui"
	"github.com/OhadRubin/workspace-colors/key"
	"github.com/OhadRubin/workspace-colors/style"
	"github.com/OhadRubin/workspace-colors/util"
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

// hoverDelay debounces live preview writes while the cursor moves.
var hoverDelay = 150 * time.Millisecond

// statefulBubble holds the picker state.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	categoriesC list.Model
	colorsC     list.Model
	recentC     list.Model
	helpC       help.Model

	// hoverID identifies the latest scheduled hover; older ones are dropped.
	hoverID int
	hovered string

	lastError error

	width, height int
	notifier      *ui.Model

	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if b.state != errorState {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

// current returns the list driving the active state.
func (b *statefulBubble) current() *list.Model {
	switch b.state {
	case colorsState:
		return &b.colorsC
	case recentState:
		return &b.recentC
	default:
		return &b.categoriesC
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listHeight := height - yy

	b.categoriesC.SetSize(width-xx, listHeight)
	b.categoriesC.Help.Width = width - xx

	// colors and recent share the screen with the preview panel
	half := (width - xx) / 2
	b.colorsC.SetSize(half, listHeight)
	b.colorsC.Help.Width = half
	b.recentC.SetSize(half, listHeight)
	b.recentC.Help.Width = half

	b.width = width - x
	b.height = height - y
	b.helpC.Width = width - xx
}

func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		notifier:      &ui.Model{},
		options:       options,
	}

	makeList := func(title string, titleColor lipgloss.Color) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(style.Text)
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle.Foreground(style.Subtext)

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.Title = lipgloss.NewStyle().Foreground(style.Surface).Background(titleColor).Padding(0, 1)
		listC.Styles.NoItems = paddingStyle
		listC.StatusMessageLifetime = time.Hour * 999
		listC.SetShowPagination(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.categoriesC = makeList("Categories", style.Mauve)
	bubble.categoriesC.SetStatusBarItemName("category", "categories")

	bubble.colorsC = makeList("Colors", style.Green)
	bubble.colorsC.SetStatusBarItemName("color", "colors")

	bubble.recentC = makeList("Recently Saved", style.Yellow)
	bubble.recentC.SetStatusBarItemName("color", "colors")

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}
