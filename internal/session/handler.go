package session

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-editor/internal/editor"
	"resume-editor/internal/enhance"
	"resume-editor/internal/parse"
	"resume-editor/internal/resume"
	"resume-editor/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches session routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions", h.create)
	rg.POST("/sessions/import", h.importResume)
	rg.GET("/sessions/:id", h.get)
	rg.PATCH("/sessions/:id/personal", h.setPersonalField)
	rg.POST("/sessions/:id/sections/:section/edits", h.beginEdit)
	rg.PATCH("/sessions/:id/sections/:section/edits", h.updateEditField)
	rg.POST("/sessions/:id/sections/:section/edits/save", h.saveEdit)
	rg.DELETE("/sessions/:id/sections/:section/edits", h.cancelEdit)
	rg.DELETE("/sessions/:id/sections/:section/entries/:index", h.deleteEntry)
	rg.POST("/sessions/:id/skills", h.addSkill)
	rg.DELETE("/sessions/:id/skills/:index", h.removeSkill)
	rg.POST("/sessions/:id/enhance/:section", h.enhanceSection)
	rg.POST("/sessions/:id/save", h.save)
	rg.GET("/sessions/:id/export/document", h.exportDocument)
	rg.GET("/sessions/:id/export/json", h.exportJSON)
	rg.GET("/resumes", h.listSaved)
}

func (h *Handler) create(c *gin.Context) {
	sess, err := h.Svc.StartBlank()
	if err != nil {
		respondError(c, err)
		return
	}
	respond.Created(c, sess.View())
}

func (h *Handler) importResume(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, parse.MaxUploadBytes+4096)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	sess, err := h.Svc.Import(c.Request.Context(), fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		respondError(c, err)
		return
	}
	respond.Created(c, sess.View())
}

func (h *Handler) get(c *gin.Context) {
	sess, err := h.Svc.Sessions.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond.OK(c, sess.View())
}

type fieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (h *Handler) setPersonalField(c *gin.Context) {
	sess, err := h.Svc.Sessions.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	var req fieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if err := sess.SetPersonalField(req.Field, req.Value); err != nil {
		respondError(c, err)
		return
	}
	respond.OK(c, sess.View())
}

type beginEditRequest struct {
	Mode  string `json:"mode"`
	Index int    `json:"index"`
}

func (h *Handler) beginEdit(c *gin.Context) {
	sess, kind, ok := h.sessionAndSection(c)
	if !ok {
		return
	}
	var req beginEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if err := sess.BeginEdit(kind, req.Mode, req.Index); err != nil {
		respondError(c, err)
		return
	}
	respond.OK(c, sess.View())
}

func (h *Handler) updateEditField(c *gin.Context) {
	sess, kind, ok := h.sessionAndSection(c)
	if !ok {
		return
	}
	var req fieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if err := sess.UpdateEditField(kind, req.Field, req.Value); err != nil {
		respondError(c, err)
		return
	}
	respond.OK(c, sess.View())
}

func (h *Handler) saveEdit(c *gin.Context) {
	sess, kind, ok := h.sessionAndSection(c)
	if !ok {
		return
	}
	if err := sess.SaveEdit(kind); err != nil {
		respondError(c, err)
		return
	}
	respond.OK(c, sess.View())
}

func (h *Handler) cancelEdit(c *gin.Context) {
	sess, kind, ok := h.sessionAndSection(c)
	if !ok {
		return
	}
	if err := sess.CancelEdit(kind); err != nil {
		respondError(c, err)
		return
	}
	respond.OK(c, sess.View())
}

func (h *Handler) deleteEntry(c *gin.Context) {
	sess, kind, ok := h.sessionAndSection(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "index must be an integer", nil)
		return
	}
	if err := sess.DeleteEntry(kind, index); err != nil {
		respondError(c, err)
		return
	}
	respond.OK(c, sess.View())
}

type addSkillRequest struct {
	Text string `json:"text"`
}

func (h *Handler) addSkill(c *gin.Context) {
	sess, err := h.Svc.Sessions.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	var req addSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if err := sess.AddSkill(req.Text); err != nil {
		respondError(c, err)
		return
	}
	respond.OK(c, sess.View())
}

func (h *Handler) removeSkill(c *gin.Context) {
	sess, err := h.Svc.Sessions.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "index must be an integer", nil)
		return
	}
	if err := sess.RemoveSkill(index); err != nil {
		respondError(c, err)
		return
	}
	respond.OK(c, sess.View())
}

func (h *Handler) enhanceSection(c *gin.Context) {
	kind, err := resume.ParseSectionKind(c.Param("section"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown section", nil)
		return
	}
	sess, err := h.Svc.EnhanceSection(c.Request.Context(), c.Param("id"), kind)
	if err != nil {
		respondError(c, err)
		return
	}
	respond.OK(c, sess.View())
}

func (h *Handler) save(c *gin.Context) {
	saved, err := h.Svc.Save(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond.Created(c, saved)
}

func (h *Handler) exportDocument(c *gin.Context) {
	artifact, err := h.Svc.ExportDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.FileName))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

func (h *Handler) exportJSON(c *gin.Context) {
	artifact, err := h.Svc.ExportJSON(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.FileName))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

func (h *Handler) listSaved(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	saved, err := h.Svc.Export.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	respond.OK(c, gin.H{"resumes": saved})
}

func (h *Handler) sessionAndSection(c *gin.Context) (*Session, resume.SectionKind, bool) {
	sess, err := h.Svc.Sessions.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return nil, "", false
	}
	kind, err := resume.ParseSectionKind(c.Param("section"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown section", nil)
		return nil, "", false
	}
	return sess, kind, true
}

// respondError maps domain errors onto the standardized error response.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, editor.ErrStaleEdit):
		respond.Error(c, http.StatusConflict, "stale_edit", err.Error(), nil)
	case errors.Is(err, ErrEnhanceInFlight):
		respond.Error(c, http.StatusConflict, "enhance_in_flight", err.Error(), nil)
	case errors.Is(err, ErrAlreadyActive):
		respond.Error(c, http.StatusConflict, "conflict", err.Error(), nil)
	case errors.Is(err, ErrNotActive),
		errors.Is(err, ErrSectionNotEditable),
		errors.Is(err, ErrSectionNotEnhanceable),
		errors.Is(err, ErrUnknownMode),
		errors.Is(err, editor.ErrIndexOutOfRange),
		errors.Is(err, editor.ErrNoActiveEdit),
		errors.Is(err, editor.ErrUnknownField),
		errors.Is(err, enhance.ErrEmptySection),
		errors.Is(err, parse.ErrUnsupportedType),
		errors.Is(err, parse.ErrTooLarge),
		errors.Is(err, parse.ErrEmptyFile):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusBadGateway, "upstream_error", err.Error(), nil)
	}
}
