package frontend

import "github.com/maxence-charriere/go-app/v10/pkg/app"

// localStorage adapts the browser's window.localStorage to progress.Store.
type localStorage struct{}

func (localStorage) Get(key string) (string, bool) {
	if app.IsServer {
		return "", false
	}
	v := app.Window().Get("localStorage").Call("getItem", key)
	if !v.Truthy() {
		return "", false
	}
	return v.String(), true
}

func (localStorage) Set(key, value string) {
	if app.IsServer {
		return
	}
	app.Window().Get("localStorage").Call("setItem", key, value)
}
