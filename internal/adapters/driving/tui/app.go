package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencourse-labs/scour-cli/internal/core/domain"
	"github.com/opencourse-labs/scour-cli/internal/render"
)

// focusArea tracks which part of the UI receives key input.
type focusArea int

const (
	focusCourse focusArea = iota
	focusQuery
	focusResults
)

// App is the TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *Styles

	// keymap holds the keybindings.
	keymap *KeyMap

	// courseInput captures the course identifier.
	courseInput textinput.Model

	// queryInput captures the search query.
	queryInput textinput.Model

	// page is the last result page, nil before the first search.
	page *domain.ResultPage

	// selectedIndex is the highlighted result on the current page.
	selectedIndex int

	// focus is the active input area.
	focus focusArea

	// searching is true while a search command is in flight.
	searching bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	courseInput := textinput.New()
	courseInput.Placeholder = "course id"
	courseInput.CharLimit = 64
	courseInput.Focus()

	queryInput := textinput.New()
	queryInput.Placeholder = "search query"
	queryInput.CharLimit = domain.MaxQueryLength

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      DefaultStyles(),
		keymap:      DefaultKeyMap(),
		courseInput: courseInput,
		queryInput:  queryInput,
		focus:       focusCourse,
		width:       80,
		height:      24,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("scour - Course Search"),
		textinput.Blink,
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keymap.Quit) {
			return a, tea.Quit
		}
		if a.focus == focusResults {
			return a.updateResults(msg)
		}
		return a.updateInputs(msg)

	case SearchCompleted:
		a.searching = false
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.err = nil
		a.page = msg.Page
		a.selectedIndex = 0
		a.focus = focusResults
		a.courseInput.Blur()
		a.queryInput.Blur()
		return a, nil
	}

	return a, a.forwardToInputs(msg)
}

// updateInputs handles keys while an input field has focus.
func (a *App) updateInputs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyTab || msg.Type == tea.KeyShiftTab:
		a.toggleInputFocus()
		return a, nil

	case key.Matches(msg, a.keymap.Search):
		courseID := strings.TrimSpace(a.courseInput.Value())
		query := strings.TrimSpace(a.queryInput.Value())
		if courseID == "" {
			a.focus = focusCourse
			a.courseInput.Focus()
			a.queryInput.Blur()
			return a, nil
		}
		if query == "" {
			a.toggleInputFocus()
			return a, nil
		}
		a.searching = true
		return a, a.searchCmd(courseID, query, domain.FilterAll, 0)
	}

	return a, a.forwardToInputs(msg)
}

// updateResults handles keys while the result list has focus.
func (a *App) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keymap.Up):
		if a.selectedIndex > 0 {
			a.selectedIndex--
		}
		return a, nil

	case key.Matches(msg, a.keymap.Down):
		if a.page != nil && a.selectedIndex < len(a.page.Results)-1 {
			a.selectedIndex++
		}
		return a, nil

	case key.Matches(msg, a.keymap.PrevPage):
		if a.page != nil && a.page.Pagination.HasPrevious {
			a.searching = true
			return a, a.searchCmd(a.courseID(), a.page.Query, a.page.Filter, a.page.Pagination.Page-1)
		}
		return a, nil

	case key.Matches(msg, a.keymap.NextPage):
		if a.page != nil && a.page.Pagination.HasNext {
			a.searching = true
			return a, a.searchCmd(a.courseID(), a.page.Query, a.page.Filter, a.page.Pagination.Page+1)
		}
		return a, nil

	case key.Matches(msg, a.keymap.NewSearch), key.Matches(msg, a.keymap.Back):
		a.focus = focusQuery
		a.queryInput.Focus()
		a.queryInput.SetValue("")
		return a, textinput.Blink
	}

	return a, nil
}

// searchCmd runs a search asynchronously and delivers the outcome
// as a SearchCompleted message.
func (a *App) searchCmd(courseID, query string, filter domain.Filter, page int) tea.Cmd {
	return func() tea.Msg {
		q := domain.NewQuery(query, filter)
		opts := domain.SearchOptions{Page: page}

		result, err := a.ports.Search.Search(a.ctx, courseID, q, opts)
		return SearchCompleted{Page: result, Err: err}
	}
}

func (a *App) toggleInputFocus() {
	if a.focus == focusCourse {
		a.focus = focusQuery
		a.courseInput.Blur()
		a.queryInput.Focus()
	} else {
		a.focus = focusCourse
		a.queryInput.Blur()
		a.courseInput.Focus()
	}
}

func (a *App) forwardToInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if a.focus == focusCourse {
		a.courseInput, cmd = a.courseInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	if a.focus == focusQuery {
		a.queryInput, cmd = a.queryInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return tea.Batch(cmds...)
}

func (a *App) courseID() string {
	return strings.TrimSpace(a.courseInput.Value())
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Scour"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.InputField.Render(a.courseInput.View()))
	b.WriteString("\n")
	b.WriteString(a.styles.InputField.Render(a.queryInput.View()))
	b.WriteString("\n\n")

	switch {
	case a.err != nil:
		b.WriteString(a.styles.Error.Render("Error: " + a.err.Error()))
		b.WriteString("\n")
	case a.searching:
		b.WriteString(a.styles.Muted.Render("Searching..."))
		b.WriteString("\n")
	case a.page != nil:
		a.viewResults(&b)
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render(a.helpLine()))

	return b.String()
}

// viewResults renders the current result page.
func (a *App) viewResults(b *strings.Builder) {
	if a.page.Total == 0 {
		b.WriteString(a.styles.Muted.Render("No results found."))
		b.WriteString("\n")
		return
	}

	header := fmt.Sprintf("Results for %q: %d", a.page.Query, a.page.Total)
	b.WriteString(a.styles.Subtitle.Render(header))
	b.WriteString("\n\n")

	for i := range a.page.Results {
		rec := a.page.Results[i]

		line := fmt.Sprintf("%s (%s, %s)", rec.Title, rec.ModuleType, rec.Kind.Label())
		if i == a.selectedIndex && a.focus == focusResults {
			b.WriteString(a.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(a.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")

		if rec.Snippet != "" {
			b.WriteString(a.styles.Muted.Render("    " + render.Terminal(rec.Snippet)))
			b.WriteString("\n")
		}
		if rec.URL != "" && i == a.selectedIndex {
			b.WriteString(a.styles.Muted.Render("    " + rec.URL))
			b.WriteString("\n")
		}
	}

	if bar := render.PaginationBar(a.page.Pagination); bar != "" {
		b.WriteString("\n")
		b.WriteString(bar)
		b.WriteString("\n")
	}
}

// helpLine renders the key hints for the focused area.
func (a *App) helpLine() string {
	bindings := a.keymap.InputHelp()
	if a.focus == focusResults {
		bindings = a.keymap.ResultsHelp()
	}

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Query returns the current query input value.
func (a *App) Query() string {
	return a.queryInput.Value()
}

// Page returns the last result page, nil before the first search.
func (a *App) Page() *domain.ResultPage {
	return a.page
}

// SelectedIndex returns the currently selected result index.
func (a *App) SelectedIndex() int {
	return a.selectedIndex
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}
