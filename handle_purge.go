package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qlindev/todosweep/todo"
	"github.com/qlindev/todosweep/utils"
)

// purgeRequest is the JSON body for a purge.
type purgeRequest struct {
	User string `json:"user" binding:"required"`
}

// HandlePurge deletes every todo item of a user that is not related to the
// configured marker and reports what was removed.
func HandlePurge(c *gin.Context) {
	app := c.MustGet(utils.KeyApp).(*App)

	var req purgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error in parsing json body": err.Error()})
		return
	}

	// The recorder captures what went away so the response and the emailed
	// report can list it; deletions that already happened stand even when
	// the purge aborts partway.
	recorder := todo.NewDeletionRecorder(app.Store)
	svc := todo.NewFilterService(recorder, app.filterOptions()...)
	if err := svc.PurgeNonMatching(c, req.User); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error in purging todos": err.Error(),
			"deleted":                recorder.Deleted(),
		})
		return
	}

	deleted := recorder.Deleted()
	if app.Notifier != nil {
		if err := app.Notifier.SendPurgeReport(req.User, deleted); err != nil {
			log.Warningf("Failed to send purge report for %s: %v", req.User, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "purge completed successfully",
		"user":    req.User,
		"deleted": deleted,
		"count":   len(deleted),
	})
}
