package handler

import (
	"net/http"

	"anoa.com/useremployee/internal/dto"
	"anoa.com/useremployee/internal/service"
	"anoa.com/useremployee/pkg/response"
	"github.com/gin-gonic/gin"
)

type EmployeeFormHandler struct {
	formService service.EmployeeFormService
}

func NewEmployeeFormHandler(formService service.EmployeeFormService) *EmployeeFormHandler {
	return &EmployeeFormHandler{
		formService: formService,
	}
}

// GetView renders the employee form; a pending handoff name is consumed
// into the draft here.
func (h *EmployeeFormHandler) GetView(c *gin.Context) {
	c.JSON(http.StatusOK, h.formService.View(c.Request.Context()))
}

func (h *EmployeeFormHandler) UpdateDraft(c *gin.Context) {
	var draft dto.EmployeeDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.formService.Update(c.Request.Context(), draft))
}

func (h *EmployeeFormHandler) Save(c *gin.Context) {
	if err := h.formService.Submit(c.Request.Context()); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.formService.View(c.Request.Context()))
}

func (h *EmployeeFormHandler) Reset(c *gin.Context) {
	if err := h.formService.Reset(c.Request.Context()); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.formService.View(c.Request.Context()))
}

func (h *EmployeeFormHandler) Edit(c *gin.Context) {
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

func (h *EmployeeFormHandler) ToggleSort(c *gin.Context) {
	mode := h.formService.Table().ToggleSort()
	c.JSON(http.StatusOK, gin.H{"sort_mode": string(mode)})
}

func (h *EmployeeFormHandler) RequestDelete(c *gin.Context) {
	var uri dto.RecordURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.formService.Table().RequestDelete(uri.ID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Delete this employee?"})
}

func (h *EmployeeFormHandler) ConfirmDelete(c *gin.Context) {
	if err := h.formService.Table().ConfirmDelete(c.Request.Context()); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.formService.View(c.Request.Context()))
}

func (h *EmployeeFormHandler) CancelDelete(c *gin.Context) {
	h.formService.Table().CancelDelete()
	c.JSON(http.StatusOK, h.formService.View(c.Request.Context()))
}

func (h *EmployeeFormHandler) ToggleCollapse(c *gin.Context) {
	collapsed := h.formService.ToggleCollapse(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"collapsed": collapsed})
}
