package frontend

import (
	"fmt"
	"strings"
	"time"

	"github.com/RogersMath/reactor-core/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// PhaseDelay is the pacing between choreography steps. Purely visual: the
// puzzle state is already updated when the sequence starts.
const PhaseDelay = 300 * time.Millisecond

// Game renders the active puzzle: the equation, the three cards, and the tap
// choreography.
type Game struct {
	app.Compo

	phase      game.Phase
	tappedCard int // deck index being animated, -1 when idle
	justWon    bool

	onUpdate func()
}

func (g *Game) OnAppUpdate(ctx app.Context) {
	klog.Infof("Game component: App update available, not reloading not to interrupt the game...")
}

func (g *Game) OnMount(ctx app.Context) {
	klog.V(1).Infof("Game component: OnMount called")
	g.phase = game.PhaseIdle
	g.tappedCard = -1
	g.onUpdate = func() {
		ctx.Dispatch(func(ctx app.Context) {})
	}
	State.Listeners["game"] = g.onUpdate
	State.ConnectStats()
}

func (g *Game) OnDismount() {
	klog.V(1).Infof("Game component: OnDismount called")
	delete(State.Listeners, "game")
}

func (g *Game) OnNav(ctx app.Context) {
	klog.V(1).Infof("Game component: OnNav called")
	// Direct navigation to /game starts a level immediately.
	if State.Session.Screen == game.ScreenMenu {
		State.Session.StartLevel()
		State.Notify()
	}
}

// onCardTap commits the tap synchronously and then runs the visual phase
// sequence. Further input is blocked until the sequence settles.
func (g *Game) onCardTap(ctx app.Context, i int) {
	if g.phase != game.PhaseIdle {
		return
	}
	if State.Session.Screen != game.ScreenPlaying {
		return
	}

	g.tappedCard = i
	g.justWon = State.Session.Tap(i)
	g.phase = game.PhaseRevealing
	g.scheduleNextPhase(ctx)
}

func (g *Game) scheduleNextPhase(ctx app.Context) {
	time.AfterFunc(PhaseDelay, func() {
		ctx.Dispatch(func(ctx app.Context) {
			g.phase = g.phase.Next()
			if g.phase != game.PhaseIdle {
				g.scheduleNextPhase(ctx)
				return
			}
			g.tappedCard = -1
			if g.justWon {
				g.justWon = false
				g.onVictorySettled()
			}
		})
	})
}

// onVictorySettled persists and reports the solve once the choreography is
// done; the victory view renders on the next update.
func (g *Game) onVictorySettled() {
	p := State.Session.Puzzle
	State.SaveProgress()
	State.ReportSolved(State.Session.Level, p.Moves, p.Stars())
	State.Notify()
}

func (g *Game) onUndo(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if g.phase != game.PhaseIdle {
		return
	}
	if State.Session.Undo() {
		State.Notify()
	}
}

func (g *Game) onAbort(ctx app.Context, e app.Event) {
	e.PreventDefault()
	State.Session.Abort()
	State.Notify()
	ctx.Navigate("/")
}

func (g *Game) onNextLevel(ctx app.Context, e app.Event) {
	e.PreventDefault()
	State.Session.NextLevel()
	State.SaveProgress()
	State.Notify()
}

// formatEquation renders "E + c = v" with the sign folded into the operator.
func formatEquation(p *game.Puzzle) string {
	op, c := "+", p.LeftConstant
	if c < 0 {
		op, c = "−", -c
	}
	return fmt.Sprintf("E %s %d = %d", op, c, p.RightValue)
}

func (g *Game) renderCard(i int, c game.Card) app.UI {
	classes := "card " + c.Kind.String()
	if i == g.tappedCard {
		classes += " tapped"
	}
	return app.Button().
		Class(classes).
		Disabled(g.phase != game.PhaseIdle).
		OnClick(func(ctx app.Context, e app.Event) {
			g.onCardTap(ctx, i)
		}).
		Body(
			app.Span().Class("card-delta").Text(fmt.Sprintf("%+d", c.Delta())),
			app.Span().Class("card-kind").Text(c.Kind.String()),
		)
}

func (g *Game) renderPlaying(p *game.Puzzle) app.UI {
	cards := make([]app.UI, 0, game.DeckSize)
	for i, c := range p.Deck {
		cards = append(cards, g.renderCard(i, c))
	}

	var status string
	if p.MinKnown {
		status = fmt.Sprintf("Taps: %d · Best possible: %d", p.Moves, p.MinMoves)
	} else {
		status = fmt.Sprintf("Taps: %d", p.Moves)
	}

	return app.Article().Class("reactor").Body(
		app.H2().Class("equation").Text(formatEquation(p)),
		app.Div().Class("cards").Body(cards...),
		app.P().Class("status").Text(status),
		app.P().Body(
			app.A().Href("#").Class("undo").
				OnClick(g.onUndo).
				Text("Undo last tap"),
			app.Span().Text(" · "),
			app.A().Href("#").OnClick(g.onAbort).Text("Back to menu"),
		),
	)
}

func (g *Game) renderVictory(p *game.Puzzle) app.UI {
	stars := p.Stars()
	var sb strings.Builder
	for i := 0; i < 3; i++ {
		if i < stars {
			sb.WriteString("★")
		} else {
			sb.WriteString("☆")
		}
	}

	detail := fmt.Sprintf("Solved in %d taps.", p.Moves)
	if p.MinKnown {
		detail = fmt.Sprintf("Solved in %d taps; the optimum was %d.", p.Moves, p.MinMoves)
	}

	return app.Article().Class("victory").Body(
		app.H2().Text("Reactor stabilized!"),
		app.P().Class("stars").Text(sb.String()),
		app.P().Text(detail),
		app.P().Body(
			app.Button().OnClick(g.onNextLevel).Text(fmt.Sprintf("Level %d", State.Session.Level+1)),
		),
		app.P().Body(
			app.A().Href("#").OnClick(g.onAbort).Text("Back to menu"),
		),
	)
}

func (g *Game) Render() app.UI {
	s := State.Session

	var content app.UI
	switch {
	case s.Puzzle == nil:
		content = app.Div().Aria("busy", "true").Text("Priming the reactor...")
	case s.Screen == game.ScreenVictory && g.phase == game.PhaseIdle:
		content = g.renderVictory(s.Puzzle)
	default:
		content = g.renderPlaying(s.Puzzle)
	}

	return app.Main().Class("container").Class("phase-"+g.phase.String()).Body(
		&TopBar{},
		content,
	)
}
