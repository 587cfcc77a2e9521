// Package bubbletea provides a terminal UI gist viewer using the Bubble Tea framework.
package bubbletea

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/gistview"
)

// Compile-time interface verification.
var _ gistview.Viewer = (*Viewer)(nil)

// Status texts shown in place of the file list.
const (
	loadingText = "Fetching gist data..."
	emptyTitle  = "No gist loaded"
	emptyHint   = "Provide a valid GitHub Gist URL (press o)"
)

// loadedMsg carries the outcome of a load started by Session.Begin.
type loadedMsg struct {
	req   gistview.Request
	files []gistview.File
	err   error
}

// clearCopiedMsg ends the "Copied!" indicator started with seq.
type clearCopiedMsg struct {
	seq uint64
}

// Model is the Bubble Tea model for viewing gists.
type Model struct {
	ctx       context.Context
	loader    *gistview.Loader
	session   *gistview.Session
	clipboard gistview.Clipboard
	pending   *gistview.Request

	// Display state derived from the session on every resolve
	result    gistview.Result
	collapsed gistview.CollapseState
	copied    gistview.CopyIndicator
	targets   []target
	cursor    int
	positions map[target]int
	status    string

	// UI state
	viewport   viewport.Model
	spinner    spinner.Model
	input      textinput.Model
	prompting  bool
	keymap     KeyMap
	styles     gistview.Styles
	palette    gistview.Palette
	renderer   *lipgloss.Renderer
	width      int
	ready      bool
	pendingKey string
}

// ModelOption configures a Model.
type ModelOption func(*modelConfig)

type modelConfig struct {
	ctx       context.Context
	loader    *gistview.Loader
	session   *gistview.Session
	clipboard gistview.Clipboard
	renderer  *lipgloss.Renderer
	theme     gistview.Theme
}

// WithLoader sets the loader used to fetch gists.
func WithLoader(l *gistview.Loader) ModelOption {
	return func(cfg *modelConfig) {
		cfg.loader = l
	}
}

// WithSession sets the session holding the loader state.
func WithSession(s *gistview.Session) ModelOption {
	return func(cfg *modelConfig) {
		cfg.session = s
	}
}

// WithClipboard sets the clipboard used by the copy action.
func WithClipboard(c gistview.Clipboard) ModelOption {
	return func(cfg *modelConfig) {
		cfg.clipboard = c
	}
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.renderer = r
	}
}

// WithTheme sets the theme for the model.
func WithTheme(t gistview.Theme) ModelOption {
	return func(cfg *modelConfig) {
		cfg.theme = t
	}
}

// WithContext sets the context passed to loads.
func WithContext(ctx context.Context) ModelOption {
	return func(cfg *modelConfig) {
		cfg.ctx = ctx
	}
}

// NewModel creates a Model that starts loading gistURL (if non-empty) when run.
func NewModel(gistURL string, opts ...ModelOption) Model {
	cfg := &modelConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.ctx == nil {
		cfg.ctx = context.Background()
	}
	if cfg.session == nil {
		cfg.session = gistview.NewSession()
	}

	var styles gistview.Styles
	var palette gistview.Palette
	if cfg.theme != nil {
		styles = cfg.theme.Styles()
		palette = cfg.theme.Palette()
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	input := textinput.New()
	input.Prompt = "Gist URL: "
	input.Placeholder = "https://gist.github.com/user/id"

	m := Model{
		ctx:       cfg.ctx,
		loader:    cfg.loader,
		session:   cfg.session,
		clipboard: cfg.clipboard,
		collapsed: gistview.CollapseState{},
		spinner:   sp,
		input:     input,
		keymap:    DefaultKeyMap(),
		styles:    styles,
		palette:   palette,
		renderer:  cfg.renderer,
	}

	if req, ok := m.begin(gistURL); ok {
		m.pending = &req
	}
	m.result = m.session.Snapshot()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.pending == nil {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.loadCmd(*m.pending))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		return m.updateKey(msg)
	case tea.WindowSizeMsg:
		statusBarHeight := 1
		widthChanged := m.width != msg.Width
		m.width = msg.Width
		m.input.Width = msg.Width - lipgloss.Width(m.input.Prompt) - 1

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-statusBarHeight)
			m.ready = true
			m.refresh()
		} else if widthChanged {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - statusBarHeight
			m.refresh()
		} else {
			m.viewport.Height = msg.Height - statusBarHeight
		}
		return m, nil
	case loadedMsg:
		if !m.session.Resolve(msg.req, msg.files, msg.err) {
			return m, nil
		}
		m.pending = nil
		m.result = m.session.Snapshot()
		if msg.err == nil {
			m.collapsed = gistview.NewCollapseState(m.result.Files)
			m.targets = buildTargets(m.result.Files)
			m.cursor = 0
			m.copied = gistview.CopyIndicator{}
			if m.ready {
				m.viewport.GotoTop()
			}
		}
		m.refresh()
		return m, nil
	case clearCopiedMsg:
		m.copied.Clear(msg.seq)
		m.refresh()
		return m, nil
	case spinner.TickMsg:
		if !m.result.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle multi-key sequences (gg for go to top)
	if m.pendingKey == "g" && key.Matches(msg, m.keymap.GotoTop) {
		m.viewport.GotoTop()
		m.pendingKey = ""
		return m, nil
	}

	// Check for start of multi-key sequence
	if key.Matches(msg, m.keymap.GotoTop) {
		m.pendingKey = "g"
		return m, nil
	}

	// Clear pending key on any other key press
	m.pendingKey = ""

	if key.Matches(msg, m.keymap.Quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keymap.Open) {
		m.prompting = true
		m.input.SetValue(m.result.URL)
		m.input.CursorEnd()
		cmd := m.input.Focus()
		return m, cmd
	}

	// Only a successfully loaded file list is interactive.
	if m.result.State() != gistview.StateSuccess || !m.ready {
		return m, nil
	}
	m.status = ""

	switch {
	case key.Matches(msg, m.keymap.GotoBottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keymap.HalfPageUp):
		m.viewport.HalfPageUp()
	case key.Matches(msg, m.keymap.HalfPageDown):
		m.viewport.HalfPageDown()
	case key.Matches(msg, m.keymap.Up):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, m.keymap.Down):
		m.viewport.ScrollDown(1)
	case key.Matches(msg, m.keymap.NextTarget):
		m.moveCursor(1)
	case key.Matches(msg, m.keymap.PrevTarget):
		m.moveCursor(-1)
	case key.Matches(msg, m.keymap.Toggle):
		m.toggleFocused()
	case key.Matches(msg, m.keymap.Copy):
		cmd := m.copyFocused()
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.prompting = false
		m.input.Blur()
		url := strings.TrimSpace(m.input.Value())
		req, ok := m.begin(url)
		m.result = m.session.Snapshot()
		if !ok {
			m.pending = nil
			m.targets = nil
			m.refresh()
			return m, nil
		}
		m.pending = &req
		m.refresh()
		return m, tea.Batch(m.spinner.Tick, m.loadCmd(req))
	case tea.KeyEsc:
		m.prompting = false
		m.input.Blur()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// begin starts a new session request. Without a loader nothing can be
// fetched, so the request is resolved immediately as an error.
func (m Model) begin(gistURL string) (gistview.Request, bool) {
	req, ok := m.session.Begin(gistURL)
	if ok && m.loader == nil {
		m.session.Resolve(req, nil, &gistview.Error{Kind: gistview.ErrFetchFailed})
		return req, false
	}
	return req, ok
}

func (m Model) loadCmd(req gistview.Request) tea.Cmd {
	ctx := m.ctx
	loader := m.loader
	return func() tea.Msg {
		files, err := loader.Load(ctx, req.URL)
		return loadedMsg{req: req, files: files, err: err}
	}
}

// moveCursor moves focus by delta targets, wrapping around.
func (m *Model) moveCursor(delta int) {
	if len(m.targets) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.targets)) % len(m.targets)
	m.refresh()

	pos, ok := m.positions[m.targets[m.cursor]]
	if !ok {
		return
	}
	if pos < m.viewport.YOffset || pos >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(pos)
	}
}

// focusedFile returns the file holding the focused target.
func (m Model) focusedFile() (gistview.File, bool) {
	if len(m.targets) == 0 || len(m.result.Files) == 0 {
		return gistview.File{}, false
	}
	return m.result.Files[m.targets[m.cursor].file], true
}

func (m *Model) toggleFocused() {
	if len(m.targets) == 0 {
		return
	}
	t := m.targets[m.cursor]
	if t.isFile() {
		return
	}
	file := m.result.Files[t.file]
	m.collapsed.Toggle(gistview.BlockKey{Filename: file.Filename, Index: t.block})
	m.refresh()
}

// copyFocused copies the focused file's content and returns the command
// that ends the copied indicator.
func (m *Model) copyFocused() tea.Cmd {
	file, ok := m.focusedFile()
	if !ok {
		return nil
	}
	if m.clipboard == nil {
		m.status = "Clipboard unavailable"
		return nil
	}
	if err := m.clipboard.Copy(file.Content); err != nil {
		m.status = fmt.Sprintf("Copy failed: %v", err)
		return nil
	}

	seq := m.copied.Mark(file.Filename)
	m.refresh()
	return tea.Tick(gistview.CopiedDuration, func(time.Time) tea.Msg {
		return clearCopiedMsg{seq: seq}
	})
}

// refresh re-renders the file list into the viewport.
func (m *Model) refresh() {
	var focus target
	focused := len(m.targets) > 0
	if focused {
		m.cursor = min(m.cursor, len(m.targets)-1)
		focus = m.targets[m.cursor]
	}
	content, positions := renderFiles(renderConfig{
		files:     m.result.Files,
		collapsed: m.collapsed,
		copied:    m.copied,
		focus:     focus,
		focused:   focused,
		styles:    m.styles,
		palette:   m.palette,
		renderer:  m.renderer,
		width:     m.width,
	})
	m.positions = positions
	if m.ready {
		m.viewport.SetContent(content)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.bodyView(), m.statusBarView())
}

func (m Model) bodyView() string {
	switch m.result.State() {
	case gistview.StateLoading:
		return m.centered(m.spinner.View() + " " + loadingText)
	case gistview.StateError:
		errStyle := styleFromColorPair(m.styles.Error, m.renderer).Padding(0, 1)
		return m.centered(errStyle.Render(m.result.Error))
	case gistview.StateIdle:
		hint := m.newStyle().Foreground(lipgloss.Color(m.palette.UIForeground)).Render(emptyHint)
		return m.centered(emptyTitle + "\n" + hint)
	}
	return m.viewport.View()
}

// centered places s in the middle of the body area.
func (m Model) centered(s string) string {
	return lipgloss.Place(m.width, m.viewport.Height, lipgloss.Center, lipgloss.Center, s)
}

// newStyle creates a new lipgloss style using the model's renderer.
func (m Model) newStyle() lipgloss.Style {
	if m.renderer != nil {
		return m.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// statusBarView renders the status bar with position info, the URL prompt,
// or the latest status message.
func (m Model) statusBarView() string {
	barStyle := m.newStyle().
		Background(lipgloss.Color(m.palette.UIBackground)).
		Foreground(lipgloss.Color(m.palette.Foreground))

	dimStyle := m.newStyle().
		Background(lipgloss.Color(m.palette.UIBackground)).
		Foreground(lipgloss.Color(m.palette.UIForeground))

	if m.prompting {
		return barStyle.Render(padLine(m.input.View(), m.width))
	}

	var left string
	switch {
	case m.status != "":
		left = m.status
	case m.result.State() == gistview.StateSuccess && len(m.targets) > 0:
		file, _ := m.focusedFile()
		left = fmt.Sprintf("file %d/%d: %s", m.targets[m.cursor].file+1, len(m.result.Files), file.Filename)
	}

	content := barStyle.Render(" "+left) + barStyle.Render("  ")
	hints := dimStyle.Render("tab:focus  enter:toggle  c:copy  o:open  q:quit ")

	// Right-align hints by padding the gap with background
	gap := m.width - lipgloss.Width(content) - lipgloss.Width(hints)
	if gap > 0 {
		content += barStyle.Render(strings.Repeat(" ", gap))
	}
	return content + hints
}

// Result returns the session snapshot the model is displaying.
func (m Model) Result() gistview.Result {
	return m.result
}

// Collapsed reports whether the given import block is collapsed.
func (m Model) Collapsed(key gistview.BlockKey) bool {
	return m.collapsed.Collapsed(key)
}

// CopiedFile returns the filename showing the copied indicator.
func (m Model) CopiedFile() string {
	return m.copied.Filename()
}

// Status returns the latest status message.
func (m Model) Status() string {
	return m.status
}

// Viewer implements gistview.Viewer using a Bubble Tea TUI.
type Viewer struct {
	opts []ModelOption
}

// NewViewer creates a new Viewer with the given options.
func NewViewer(opts ...ModelOption) *Viewer {
	return &Viewer{opts: opts}
}

// View loads the gist and blocks until the user exits.
func (v *Viewer) View(ctx context.Context, gistURL string) error {
	opts := append([]ModelOption{}, v.opts...)
	opts = append(opts, WithContext(ctx))
	m := NewModel(gistURL, opts...)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
