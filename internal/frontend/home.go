package frontend

import (
	"fmt"

	"github.com/RogersMath/reactor-core/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// Home is the menu screen: start the reactor, lifetime stats, and the
// community counters when the stats channel is up.
type Home struct {
	app.Compo
}

func (h *Home) OnMount(ctx app.Context) {
	klog.V(1).Infof("Home: OnMount called")
	State.Listeners["home"] = func() {
		ctx.Dispatch(func(ctx app.Context) {})
	}
	State.ConnectStats()
}

func (h *Home) OnDismount() {
	delete(State.Listeners, "home")
}

func (h *Home) OnAppUpdate(ctx app.Context) {
	klog.Infof("Home component: App update available, reloading...")
	ctx.Reload()
}

func (h *Home) onStart(ctx app.Context, e app.Event) {
	e.PreventDefault()
	State.Session.StartLevel()
	State.Notify()
	ctx.Navigate("/game")
}

func (h *Home) Render() app.UI {
	startLabel := "Start Reactor"
	if State.Session.Level > 1 {
		startLabel = fmt.Sprintf("Resume at Level %d", State.Session.Level)
	}

	body := []app.UI{
		app.Header().Body(
			app.H1().Text("Reactor Core"),
			app.P().Text("Balance the equation. Tap matter and antimatter cards to drive the constant to zero in as few taps as you can."),
		),
		app.P().Body(
			app.Button().Class("start-button").OnClick(h.onStart).Text(startLabel),
		),
		app.P().Text(fmt.Sprintf("Reactors stabilized so far: %d", State.Session.Solved)),
	}

	if State.StatsLive {
		body = append(body,
			app.Footer().Body(
				app.Small().Text(fmt.Sprintf("%d engineers online · %d reactors stabilized worldwide",
					State.PlayersOnline, State.ReactorsStabilized)),
			),
		)
	}

	return app.Main().Class("container").Class("screen-"+screenName(State.Session.Screen)).Body(
		&TopBar{},
		app.Article().Body(body...),
	)
}

func screenName(s game.Screen) string {
	switch s {
	case game.ScreenPlaying:
		return "playing"
	case game.ScreenVictory:
		return "victory"
	}
	return "menu"
}
