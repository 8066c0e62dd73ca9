package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qlindev/todosweep/todo"
	"github.com/qlindev/todosweep/utils"
)

// HandleRetrieveMatching returns the todo items of a user that are related
// to the configured marker.
func HandleRetrieveMatching(c *gin.Context) {
	app := c.MustGet(utils.KeyApp).(*App)

	user := c.Query("user")
	if user == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter: user"})
		return
	}

	svc := todo.NewFilterService(app.Store, app.filterOptions()...)
	items, err := svc.RetrieveMatching(c, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error in retrieving todos": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"todos": items,
		"count": len(items),
	})
}
