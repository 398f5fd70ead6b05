package frontend

import (
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

type TopBar struct {
	app.Compo
}

func (t *TopBar) onBannerClick(ctx app.Context, e app.Event) {
	State.Session.Abort()
	State.Notify()
	ctx.Navigate("/")
}

func (t *TopBar) Render() app.UI {
	return app.Nav().Body(
		app.Ul().Body(
			app.Li().Body(
				app.Strong().
					Style("cursor", "pointer").
					OnClick(t.onBannerClick).
					Text("⚛ Reactor Core"),
			),
		),
		app.Ul().Body(
			app.Li().Body(
				app.Span().Text(fmt.Sprintf("Level %d", State.Session.Level)),
			),
			app.Li().Body(
				app.Span().Text(fmt.Sprintf("Solved %d", State.Session.Solved)),
			),
		),
	)
}
