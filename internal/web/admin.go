package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PhysicsUofRAUI/project-manager/internal/model"
)

// Thin record browser over the remaining entities. No business logic here;
// everything goes straight to the repositories.

type projectPayload struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	Deadline        string `json:"deadline"`
	PercentComplete int    `json:"percent_complete"`
	Ongoing         bool   `json:"ongoing"`
	CategoryID      *uint  `json:"category_id"`
	ParentProjectID *uint  `json:"parent_project_id"`
}

func (s *Server) handleListProjects(c *gin.Context) {
	projects, err := s.store.Projects.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (s *Server) handleCreateProject(c *gin.Context) {
	var payload projectPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project := model.Project{
		Name:            payload.Name,
		Description:     payload.Description,
		PercentComplete: payload.PercentComplete,
		Ongoing:         payload.Ongoing,
		CategoryID:      payload.CategoryID,
		ParentProjectID: payload.ParentProjectID,
	}
	if payload.Deadline != "" {
		deadline, err := time.Parse("2006-01-02", payload.Deadline)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "deadline must be YYYY-MM-DD"})
			return
		}
		project.Deadline = &deadline
	}

	if err := s.store.Projects.Create(c.Request.Context(), &project); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (s *Server) handleGetProject(c *gin.Context) {
	id, ok := s.paramID(c)
	if !ok {
		return
	}
	project, err := s.store.Projects.FindByID(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (s *Server) handleListProjectChildren(c *gin.Context) {
	id, ok := s.paramID(c)
	if !ok {
		return
	}
	children, err := s.store.Projects.ListChildren(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, children)
}

func (s *Server) handleUpdateProject(c *gin.Context) {
	id, ok := s.paramID(c)
	if !ok {
		return
	}
	project, err := s.store.Projects.FindByID(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}

	var payload projectPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project.Name = payload.Name
	project.Description = payload.Description
	project.PercentComplete = payload.PercentComplete
	project.Ongoing = payload.Ongoing
	project.CategoryID = payload.CategoryID
	project.ParentProjectID = payload.ParentProjectID
	project.Deadline = nil
	if payload.Deadline != "" {
		deadline, err := time.Parse("2006-01-02", payload.Deadline)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "deadline must be YYYY-MM-DD"})
			return
		}
		project.Deadline = &deadline
	}

	if err := s.store.Projects.Save(c.Request.Context(), project); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (s *Server) handleDeleteProject(c *gin.Context) {
	id, ok := s.paramID(c)
	if !ok {
		return
	}
	if err := s.store.Projects.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type categoryPayload struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *Server) handleListCategories(c *gin.Context) {
	categories, err := s.store.Categories.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (s *Server) handleCreateCategory(c *gin.Context) {
	var payload categoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category := model.Category{Name: payload.Name, Description: payload.Description}
	if err := s.store.Categories.Create(c.Request.Context(), &category); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (s *Server) handleUpdateCategory(c *gin.Context) {
	id, ok := s.paramID(c)
	if !ok {
		return
	}
	category, err := s.store.Categories.FindByID(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}

	var payload categoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category.Name = payload.Name
	category.Description = payload.Description

	if err := s.store.Categories.Save(c.Request.Context(), category); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (s *Server) handleDeleteCategory(c *gin.Context) {
	id, ok := s.paramID(c)
	if !ok {
		return
	}
	if err := s.store.Categories.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type dependencyPayload struct {
	PrerequisiteTaskID uint `json:"prerequisite_task_id" binding:"required"`
	DependantTaskID    uint `json:"dependant_task_id" binding:"required"`
}

func (s *Server) handleListDependencies(c *gin.Context) {
	deps, err := s.store.Dependencies.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, deps)
}

func (s *Server) handleCreateDependency(c *gin.Context) {
	var payload dependencyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dep := model.TaskDependency{
		PrerequisiteTaskID: payload.PrerequisiteTaskID,
		DependantTaskID:    payload.DependantTaskID,
	}
	if err := s.store.Dependencies.Create(c.Request.Context(), &dep); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dep)
}

func (s *Server) handleDeleteDependency(c *gin.Context) {
	id, ok := s.paramID(c)
	if !ok {
		return
	}
	if err := s.store.Dependencies.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleListXPHistory(c *gin.Context) {
	user, err := s.store.Users.GetOrCreate(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	entries, err := s.store.XPHistory.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
