package handler

import (
	"net/http"

	"anoa.com/useremployee/internal/dto"
	"anoa.com/useremployee/internal/service"
	"anoa.com/useremployee/pkg/response"
	"github.com/gin-gonic/gin"
)

type UserFormHandler struct {
	formService service.UserFormService
}

func NewUserFormHandler(formService service.UserFormService) *UserFormHandler {
	return &UserFormHandler{
		formService: formService,
	}
}

func (h *UserFormHandler) GetView(c *gin.Context) {
	c.JSON(http.StatusOK, h.formService.View(c.Request.Context()))
}

// UpdateDraft replaces the edit buffer with the submitted form state and
// returns the refreshed view, including the recomputed duplicate flag.
func (h *UserFormHandler) UpdateDraft(c *gin.Context) {
	var draft dto.UserDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.formService.Update(c.Request.Context(), draft))
}

func (h *UserFormHandler) Save(c *gin.Context) {
	if err := h.formService.Submit(c.Request.Context()); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.formService.View(c.Request.Context()))
}

func (h *UserFormHandler) Reset(c *gin.Context) {
	if err := h.formService.Reset(c.Request.Context()); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.formService.View(c.Request.Context()))
}

func (h *UserFormHandler) Edit(c *gin.Context) {
	var uri dto.RecordURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := h.formService.BeginEdit(c.Request.Context(), uri.ID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (h *UserFormHandler) ToggleSort(c *gin.Context) {
	mode := h.formService.Table().ToggleSort()
	c.JSON(http.StatusOK, gin.H{"sort_mode": string(mode)})
}

func (h *UserFormHandler) RequestDelete(c *gin.Context) {
	var uri dto.RecordURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.formService.Table().RequestDelete(uri.ID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Delete this user?"})
}

func (h *UserFormHandler) ConfirmDelete(c *gin.Context) {
	if err := h.formService.Table().ConfirmDelete(c.Request.Context()); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.formService.View(c.Request.Context()))
}

func (h *UserFormHandler) CancelDelete(c *gin.Context) {
	h.formService.Table().CancelDelete()
	c.JSON(http.StatusOK, h.formService.View(c.Request.Context()))
}

func (h *UserFormHandler) ToggleCollapse(c *gin.Context) {
	collapsed := h.formService.ToggleCollapse(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"collapsed": collapsed})
}

// GoToEmployee stages the composed name for the employee form and returns
// the path the client should navigate to.
func (h *UserFormHandler) GoToEmployee(c *gin.Context) {
	path, err := h.formService.GoToEmployee(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NavigateResponse{Path: path})
}
