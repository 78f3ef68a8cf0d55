// Package transport provides a new server-entity(by ginext) for search-node mode with handlers to serve endpoints
package transport

import (
	"context"
	"log"
	"net/http"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
)

type TaskProcessor interface {
	ProcessInput(ctx context.Context, task *model.SearchTask) *model.SearchResult
}

type handler struct {
	proc TaskProcessor
}

func NewNodeServer(addr string, proc TaskProcessor) *http.Server {
	h := handler{proc: proc}

	engine := ginext.New("release")
	engine.GET("/ping", h.HealthCheck)
	engine.POST("/search", h.ReceiveTask)

	return &http.Server{
		Addr:    addr,
		Handler: engine,
	}
}

func (h handler) HealthCheck(ctx *ginext.Context) {
	log.Println("Received a healthcheck request!")
	ctx.Status(http.StatusOK)
}

func (h handler) ReceiveTask(ctx *ginext.Context) {
	var task model.SearchTask

	if err := ctx.ShouldBindJSON(&task); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse task from body: " + err.Error()})
		return
	}

	log.Printf("Received task %q: %d bytes, ignore_case=%t", task.TaskID, len(task.Contents), task.IgnoreCase)

	res := h.proc.ProcessInput(ctx.Request.Context(), &task)
	log.Printf("Task %q done: %d matching lines", res.TaskID, len(res.Output))

	ctx.JSON(http.StatusOK, res)
}
