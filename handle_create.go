package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qlindev/todosweep/utils"
)

// createTodoRequest is the JSON body for todo creation.
type createTodoRequest struct {
	User string `json:"user" binding:"required"`
	Text string `json:"text" binding:"required"`
}

// HandleCreateTodo stores one todo item for a user.
func HandleCreateTodo(c *gin.Context) {
	app := c.MustGet(utils.KeyApp).(*App)

	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error in parsing json body": err.Error()})
		return
	}

	if err := app.Store.AddTodo(c, req.User, req.Text); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error in creating todo": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "todo created successfully"})
}
