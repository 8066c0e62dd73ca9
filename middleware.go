package main

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/qlindev/todosweep/notify"
	"github.com/qlindev/todosweep/todo"
	"github.com/qlindev/todosweep/utils"
)

const defaultPurgePerMinute = 2

// TodoStore is the capability set the HTTP layer needs from a backend: the
// DataSource consumed by the filter core plus item creation.
type TodoStore interface {
	todo.DataSource
	AddTodo(ctx context.Context, user, text string) error
}

// App bundles the collaborators the handlers work with.
type App struct {
	Store          TodoStore
	Marker         string
	Notifier       notify.Notifier
	PurgePerMinute int
}

// filterOptions translates the app configuration into filter options.
func (a *App) filterOptions() []todo.Option {
	if a.Marker == "" {
		return nil
	}
	return []todo.Option{todo.WithMarker(a.Marker)}
}

// appMiddleware makes the App available to handlers via the gin context.
func appMiddleware(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(utils.KeyApp, app)
		c.Next()
	}
}
