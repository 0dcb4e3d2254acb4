package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anvydev/notekeeper/internal/common"
	"github.com/anvydev/notekeeper/internal/server/models"
)

type createNoteRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Urgency     string `json:"urgency"`
}

type updateNoteRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type noteResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Urgency     string `json:"urgency"`
	UserID      int64  `json:"user_id"`
}

func toNoteResponse(n *models.Note) noteResponse {
	return noteResponse{
		ID:          n.ID,
		Name:        n.Name,
		Description: n.Description,
		Urgency:     n.Urgency,
		UserID:      n.UserID,
	}
}

func (s *HTTPServer) handleListNotes(c *gin.Context) {
	result, err := s.notes.List(c.Request.Context())
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No notes found"})
			return
		}
		s.log(c).Error(c.Request.Context(), "listing notes failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	out := make([]noteResponse, 0, len(result))
	for _, n := range result {
		out = append(out, toNoteResponse(n))
	}
	c.JSON(http.StatusOK, out)
}

func (s *HTTPServer) handleCreateNote(c *gin.Context) {
	identity, ok := IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All the fields are required"})
		return
	}

	note, err := s.notes.Create(c.Request.Context(), req.Name, req.Description, req.Urgency, identity.UserID)
	if err != nil {
		if errors.Is(err, common.ErrMissingField) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "All the fields are required"})
			return
		}
		s.log(c).Error(c.Request.Context(), "creating note failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Note created successfully", "note": note.ID})
}

func (s *HTTPServer) handleGetNote(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid note id"})
		return
	}

	note, err := s.notes.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "The note doesnt exist"})
			return
		}
		s.log(c).Error(c.Request.Context(), "getting note failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, toNoteResponse(note))
}

func (s *HTTPServer) handleUpdateNote(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid note id"})
		return
	}

	var req updateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All the fields are required"})
		return
	}

	if err := s.notes.Update(c.Request.Context(), id, req.Name, req.Description); err != nil {
		switch {
		case errors.Is(err, common.ErrMissingField):
			c.JSON(http.StatusBadRequest, gin.H{"message": "All the fields are required"})
		case errors.Is(err, common.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "The note doesnt exist"})
		default:
			s.log(c).Error(c.Request.Context(), "updating note failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note updated successfully"})
}

func (s *HTTPServer) handleDeleteNote(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid note id"})
		return
	}

	if err := s.notes.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "The note doesnt exist"})
			return
		}
		s.log(c).Error(c.Request.Context(), "deleting note failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}
