package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PhysicsUofRAUI/project-manager/internal/service"
)

// handleIndex renders the dashboard: progression header plus the top-N open
// tasks ranked by urgency.
func (s *Server) handleIndex(c *gin.Context) {
	overview, err := s.dashboard.Overview(c.Request.Context(), time.Now(), s.topN)
	if err != nil {
		s.log.Error("build dashboard", "error", err)
		c.String(http.StatusInternalServerError, "dashboard unavailable")
		return
	}
	c.HTML(http.StatusOK, "index.html", overview)
}

type taskPayload struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	EstimatedCycles int    `json:"estimated_cycles"`
	XPAward         int    `json:"xp_award"`
	Deadline        string `json:"deadline"`
	ProjectID       *uint  `json:"project_id"`
}

func (s *Server) handleListTasks(c *gin.Context) {
	tasks, err := s.store.Tasks.ListAll(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var payload taskPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.TaskInput{
		Name:            payload.Name,
		Description:     payload.Description,
		EstimatedCycles: payload.EstimatedCycles,
		XPAward:         payload.XPAward,
		ProjectID:       payload.ProjectID,
	}
	if payload.Deadline != "" {
		deadline, err := time.Parse("2006-01-02", payload.Deadline)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "deadline must be YYYY-MM-DD"})
			return
		}
		input.Deadline = &deadline
	}

	task, err := s.tasks.CreateTask(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (s *Server) handleGetTask(c *gin.Context) {
	id, ok := s.paramID(c)
	if !ok {
		return
	}
	task, err := s.tasks.GetTask(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	id, ok := s.paramID(c)
	if !ok {
		return
	}
	if err := s.tasks.DeleteTask(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleCompleteTask(c *gin.Context) {
	id, ok := s.paramID(c)
	if !ok {
		return
	}
	task, err := s.tasks.CompleteTask(c.Request.Context(), id, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	s.log.Info("task completed", "id", task.ID, "xp_award", task.XPAward)
	c.JSON(http.StatusOK, task)
}

type cyclePayload struct {
	Deep bool `json:"deep"`
}

func (s *Server) handleLogCycle(c *gin.Context) {
	id, ok := s.paramID(c)
	if !ok {
		return
	}
	var payload cyclePayload
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	cycle, err := s.tasks.LogCycle(c.Request.Context(), id, payload.Deep, time.Now())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, cycle)
}

func (s *Server) handleListCycles(c *gin.Context) {
	id, ok := s.paramID(c)
	if !ok {
		return
	}
	cycles, err := s.store.Cycles.ListByTask(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cycles)
}

func (s *Server) paramID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a number"})
		return 0, false
	}
	return uint(value), true
}

func (s *Server) fail(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	s.log.Error("request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
