package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/fitiplus/internal/guard"
	"github.com/MKhiriev/fitiplus/models"
)

// navigator resolves a path through the route guards.
type navigator interface {
	Follow(ctx context.Context, path string) (string, guard.Decision)
}

// RootModel is a TUI router:
// 1) keeps the active page
// 2) handles global ctrl+c quit and the notice overlay
// 3) runs NavigateTo messages through the route guards
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx     context.Context
	nav     navigator
	pages   map[string]tea.Model
	current tea.Model
	path    string

	checking bool
	spinner  spinner.Model

	notice        string
	noticeFailure bool

	quitByUser    bool
	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers pages by route path. Init navigates to startPath.
func NewRootModel(ctx context.Context, nav navigator, pages map[string]tea.Model, startPath string, buildInfo models.AppBuildInfo) RootModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return RootModel{
		ctx:       ctx,
		nav:       nav,
		pages:     pages,
		path:      startPath,
		checking:  true,
		spinner:   s,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return tea.Batch(r.spinner.Tick, r.cmdResolve(NavigateTo{Page: r.path}))
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.String() == "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case r.notice != "":
			if key.String() == "enter" || key.String() == "esc" {
				r.notice = ""
			}
			return r, nil
		case r.showBuildInfo:
			if key.String() == "esc" {
				r.showBuildInfo = false
			}
			return r, nil
		case key.String() == "v" && r.isPresentationPage():
			r.showBuildInfo = true
			return r, nil
		case r.checking:
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		r.checking = true
		return r, tea.Batch(r.spinner.Tick, r.cmdResolve(msg))
	case routeResolvedMsg:
		return r.open(msg)
	case noticeMsg:
		r.notice = msg.text
		r.noticeFailure = msg.failure
		return r, nil
	case spinner.TickMsg:
		if !r.checking {
			return r, nil
		}
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd
	}

	if r.current == nil {
		return r, nil
	}
	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.path] = updated
	return r, cmd
}

func (r RootModel) open(msg routeResolvedMsg) (tea.Model, tea.Cmd) {
	r.checking = false

	next, exists := r.pages[msg.path]
	if msg.decision.State != guard.Allowed || !exists {
		// nothing to render there; stay where we are
		return r, nil
	}

	r.path = msg.path
	r.current = next
	r.showBuildInfo = false

	cmds := []tea.Cmd{next.Init()}
	if msg.payload != nil {
		payload := msg.payload
		cmds = append(cmds, func() tea.Msg { return payload })
	}
	return r, tea.Batch(cmds...)
}

// cmdResolve runs the guards off the UI goroutine; the protected guard may
// refresh the token over the network.
func (r RootModel) cmdResolve(nav NavigateTo) tea.Cmd {
	ctx, router := r.ctx, r.nav
	return func() tea.Msg {
		path, decision := router.Follow(ctx, nav.Page)
		return routeResolvedMsg{path: path, decision: decision, payload: nav.Payload}
	}
}

func (r RootModel) View() string {
	switch {
	case r.notice != "":
		return appStyle.Render(renderNotice(r.notice, r.noticeFailure))
	case r.showBuildInfo:
		return renderBuildInfoWindow(r.buildInfo)
	case r.checking:
		return renderPage("FITIPLUS", r.spinner.View()+" Verificando sesión...", "")
	case r.current == nil:
		return renderPage("FITIPLUS", "", "")
	}
	return r.current.View()
}

// Path is the route of the open page.
func (r RootModel) Path() string {
	return r.path
}

func (r RootModel) isPresentationPage() bool {
	_, ok := r.current.(*PresentationModel)
	return ok
}

func navigate(page string, payload any) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}

func notify(text string, failure bool) tea.Cmd {
	if text == "" {
		return nil
	}
	return func() tea.Msg { return noticeMsg{text: text, failure: failure} }
}

// notifyResult shows res.Message as a notice, styled by outcome.
func notifyResult(res models.Result) tea.Cmd {
	return notify(res.Message, !res.OK())
}
