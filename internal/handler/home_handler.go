package handler

import (
	"net/http"

	"anoa.com/useremployee/internal/dto"
	"github.com/gin-gonic/gin"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

func (h *HomeHandler) GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HomeView{
		Title: "Welcome to the UserEmployee",
		Actions: []dto.HomeAction{
			{Label: "User Form", Path: "/userForm"},
			{Label: "Employee Form", Path: "/employeeForm"},
		},
	})
}

func (h *HomeHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
