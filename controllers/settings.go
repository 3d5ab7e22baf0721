// controllers/settings.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servispro-backend/models"
	"servispro-backend/services"
	"servispro-backend/utils"
)

type SettingsController struct {
	settings *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{settings: settings}
}

func (sc *SettingsController) Get(c *gin.Context) {
	settings, err := sc.settings.Get()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (sc *SettingsController) Update(c *gin.Context) {
	var input models.Settings
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := sc.settings.Update(input); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, input)
}

func (sc *SettingsController) GetEmailConfig(c *gin.Context) {
	cfg, err := sc.settings.GetEmailConfig()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (sc *SettingsController) SaveEmailConfig(c *gin.Context) {
	var input models.EmailConfig
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := sc.settings.SaveEmailConfig(input); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, input)
}

// Options serves the closed option lists the forms are built from.
func (sc *SettingsController) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"statuses":     models.StatusOptions,
		"brands":       models.BrandOptions,
		"diagnoses":    models.DiagnosisOptions,
		"expenseTypes": models.ExpenseTypeOptions,
	})
}
