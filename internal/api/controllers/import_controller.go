package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flock/internal/models/request_models"
	"flock/internal/services"
	"flock/pkg/utils"
)

type ImportController struct {
	importService services.ImportServiceInterface
}

func NewImportController(importService services.ImportServiceInterface) *ImportController {
	return &ImportController{importService: importService}
}

// ImportSheet godoc
// @Summary Start a Google Sheets member import
// @Description Kicks off the import in the background; poll /import/progress for status
// @Tags Import
// @Accept json
// @Param request body request_models.ImportSheetRequest true "Spreadsheet reference"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /import/sheet [post]
func (i *ImportController) ImportSheet(c *gin.Context) {
	var req request_models.ImportSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	i.importService.StartSheetImport(req.SpreadsheetID, req.ReadRange)

	utils.RespondSuccess(c, nil, "Import started")
}

// ImportRows godoc
// @Summary Import members from raw rows
// @Description Synchronous variant for pasted/uploaded data; row 0 is the header row
// @Tags Import
// @Accept json
// @Param request body request_models.ImportRowsRequest true "Rows with header"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /import/rows [post]
func (i *ImportController) ImportRows(c *gin.Context) {
	var req request_models.ImportRowsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := i.importService.ImportRows(c.Request.Context(), req.Rows)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Import finished")
}

// Progress godoc
// @Summary Current import progress
// @Tags Import
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /import/progress [get]
func (i *ImportController) Progress(c *gin.Context) {
	progress, ok := i.importService.Progress()
	if !ok {
		utils.RespondSuccess(c, nil, "No import in progress")
		return
	}

	utils.RespondSuccess(c, progress, "Import progress")
}
