package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/internal/service"
)

// JournalHandler serves journal entry CRUD
type JournalHandler struct {
	journalService service.JournalService
}

// NewJournalHandler creates a new journal entry handler
func NewJournalHandler(journalService service.JournalService) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

// ListEntries handles GET /api/journal/entries
func (h *JournalHandler) ListEntries(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	limit, offset, ok := pageParams(c)
	if !ok {
		return
	}

	entries, err := h.journalService.ListEntries(c.Request.Context(), userID, limit, offset)
	if err != nil {
		writeError(c, err, "journal entry", "")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// CreateEntry handles POST /api/journal/entries
func (h *JournalHandler) CreateEntry(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.CreateJournalEntryRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.journalService.CreateEntry(c.Request.Context(), userID, &req)
	if err != nil {
		id := ""
		if req.ID != nil {
			id = *req.ID
		}
		writeError(c, err, "journal entry", id)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetEntry handles GET /api/journal/entries/:id
func (h *JournalHandler) GetEntry(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id := c.Param("id")

	entry, err := h.journalService.GetEntry(c.Request.Context(), userID, id)
	if err != nil {
		writeError(c, err, "journal entry", id)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// UpdateEntry handles PUT /api/journal/entries/:id
func (h *JournalHandler) UpdateEntry(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req models.UpdateJournalEntryRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.journalService.UpdateEntry(c.Request.Context(), userID, id, &req)
	if err != nil {
		writeError(c, err, "journal entry", id)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteEntry handles DELETE /api/journal/entries/:id
func (h *JournalHandler) DeleteEntry(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id := c.Param("id")

	if err := h.journalService.DeleteEntry(c.Request.Context(), userID, id); err != nil {
		writeError(c, err, "journal entry", id)
		return
	}

	c.Status(http.StatusNoContent)
}
