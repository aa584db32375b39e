package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type evalRequest struct {
	Command string `json:"command" binding:"required"`
}

type evalResponse struct {
	ID         string `json:"id"`
	Output     string `json:"output"`
	DurationMs int64  `json:"duration_ms"`
}

func (s *Server) handleEval(c *gin.Context) {
	var req evalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "command is required"})

		return
	}

	id := uuid.NewString()
	log := s.log.With("request_id", id)

	log.Debug("Evaluating command", "command", req.Command)

	start := time.Now()

	output, err := s.pool.Execute(c.Request.Context(), req.Command)
	if err != nil {
		log.Error("Evaluation failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"id": id, "error": err.Error()})

		return
	}

	elapsed := time.Since(start)
	log.Debug("Evaluation completed", "duration", elapsed)

	c.JSON(http.StatusOK, evalResponse{
		ID:         id,
		Output:     output,
		DurationMs: elapsed.Milliseconds(),
	})
}

type healthResponse struct {
	Status string `json:"status"`
	Alive  int    `json:"alive"`
	Size   int    `json:"size"`
}

func (s *Server) handleHealth(c *gin.Context) {
	alive := s.pool.Alive()
	size := s.pool.Size()

	resp := healthResponse{Alive: alive, Size: size}

	switch {
	case alive == size:
		resp.Status = "ok"
		c.JSON(http.StatusOK, resp)
	case alive > 0:
		resp.Status = "degraded"
		c.JSON(http.StatusOK, resp)
	default:
		resp.Status = "down"
		c.JSON(http.StatusServiceUnavailable, resp)
	}
}
