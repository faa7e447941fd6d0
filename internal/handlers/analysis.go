package handlers

import (
	"errors"
	"net/http"

	"github.com/alimgiray/gitfocus/internal/github"
	"github.com/alimgiray/gitfocus/internal/services"
	"github.com/gin-gonic/gin"
)

type AnalysisHandler struct {
	analysisService *services.AnalysisService
	exportService   *services.ExportService
}

func NewAnalysisHandler(analysisService *services.AnalysisService, exportService *services.ExportService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		exportService:   exportService,
	}
}

// GetAnalysis handles GET /api/users/:username/analysis
func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	username := c.Param("username")

	outcome, err := h.analysisService.GetAnalysis(c.Request.Context(), username)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// Rescan handles POST /api/users/:username/rescan, forcing a fresh run
func (h *AnalysisHandler) Rescan(c *gin.Context) {
	username := c.Param("username")

	outcome, err := h.analysisService.Rescan(c.Request.Context(), username)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// Export handles GET /api/users/:username/analysis/export
func (h *AnalysisHandler) Export(c *gin.Context) {
	username := c.Param("username")

	outcome, err := h.analysisService.GetAnalysis(c.Request.Context(), username)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	workbook, err := h.exportService.BuildWorkbook(outcome.Result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build export"})
		return
	}
	defer workbook.Close()

	c.Header("Content-Disposition", "attachment; filename="+h.exportService.ExportFilename(username))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if _, err := workbook.WriteTo(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

func respondAnalysisError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, github.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, github.ErrDataFetch):
		// Distinct from not-found so the UI can suggest a retry.
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch data from GitHub", "retryable": true})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
	}
}
