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

// ClassRoomHandler handles classroom CRUD.
type ClassRoomHandler struct {
	classRoomService *service.ClassRoomService
}

// NewClassRoomHandler creates a new ClassRoomHandler.
func NewClassRoomHandler(classRoomService *service.ClassRoomService) *ClassRoomHandler {
	return &ClassRoomHandler{classRoomService: classRoomService}
}

// List godoc
// GET /classes/
func (h *ClassRoomHandler) List(c *gin.Context) {
	classrooms, err := h.classRoomService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"classes": classrooms})
}

// Create godoc
// POST /classes/
func (h *ClassRoomHandler) Create(c *gin.Context) {
	var req model.ClassRoomRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	classroom, err := h.classRoomService.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"class": classroom})
}

// Get godoc
// GET /classes/:id/
func (h *ClassRoomHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	classroom, err := h.classRoomService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"class": classroom})
}

// Update godoc
// PUT/PATCH /classes/:id/
// Replaces the classroom fields and its student link set.
func (h *ClassRoomHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.ClassRoomRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	classroom, err := h.classRoomService.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"class": classroom})
}

// Delete godoc
// DELETE /classes/:id/
func (h *ClassRoomHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.classRoomService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
