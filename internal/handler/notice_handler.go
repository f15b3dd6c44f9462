package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/schoolmgt/sms-backend/internal/model"
	"github.com/schoolmgt/sms-backend/internal/response"
	"github.com/schoolmgt/sms-backend/internal/service"
	"github.com/schoolmgt/sms-backend/internal/validator"
)

// NoticeHandler handles notice CRUD.
type NoticeHandler struct {
	noticeService *service.NoticeService
}

// NewNoticeHandler creates a new NoticeHandler.
func NewNoticeHandler(noticeService *service.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeService: noticeService}
}

// List godoc
// GET /notices/
// Notices are returned newest first.
func (h *NoticeHandler) List(c *gin.Context) {
	notices, err := h.noticeService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"notices": notices})
}

// Create godoc
// POST /notices/
func (h *NoticeHandler) Create(c *gin.Context) {
	var req model.NoticeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	notice, err := h.noticeService.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"notice": notice})
}

// Get godoc
// GET /notices/:id/
func (h *NoticeHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	notice, err := h.noticeService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"notice": notice})
}

// Update godoc
// PUT/PATCH /notices/:id/
func (h *NoticeHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.NoticeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	notice, err := h.noticeService.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"notice": notice})
}

// Delete godoc
// DELETE /notices/:id/
func (h *NoticeHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.noticeService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
