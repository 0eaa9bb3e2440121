package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"seoAuditGO/internal/middleware"
	"seoAuditGO/internal/models"
	"seoAuditGO/internal/report"
)

// createAuditHandler crawls the requested URLs and assembles a fresh report
func (s *Server) createAuditHandler(c *gin.Context) {
	var req models.AuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status_code": http.StatusBadRequest,
			"message":     "Invalid request",
			"error":       err.Error(),
		})
		return
	}

	// The whole batch shares one deadline; individual slow pages degrade to
	// missing records rather than failing the audit.
	ctx, cancel := context.WithTimeout(c.Request.Context(), s.config.Crawler.RequestTimeout*2)
	defer cancel()

	s.logger.Info("Running audit", "urls", len(req.URLs))
	pages := s.crawler.CrawlPages(ctx, req.URLs)

	raw := report.RawReport{
		Summary:         req.Summary,
		CrawledPages:    pages,
		Recommendations: req.Recommendations,
		PageSpeed:       req.PageSpeed,
		MozData:         req.MozData,
	}
	assembled := report.AssembleReport(&raw)

	record := &models.AuditRecord{
		URLs:   req.URLs,
		Raw:    raw,
		Report: assembled,
	}

	// If user is authenticated, associate the audit with the user
	if userInfo, exists := c.Get("userInfo"); exists {
		if ui, ok := userInfo.(*middleware.UserInfo); ok {
			record.UserID = ui.Sub
		}
	}

	// Save audit to database
	if err := s.repo.SaveAudit(ctx, record); err != nil {
		s.logger.Error("Failed to save audit", "error", err)
		// Continue anyway, just log the error
	}

	if !record.ID.IsZero() {
		s.reportCache.Put(record.ID.Hex(), assembled, s.config.Report.CacheTTL)
	}

	c.JSON(http.StatusOK, record)
}

// getAuditHandler handles requests to get an audit by ID
func (s *Server) getAuditHandler(c *gin.Context) {
	audit, ok := s.loadAudit(c)
	if !ok {
		return
	}

	// Check if the audit belongs to the user or if user is admin
	userInfo, exists := c.Get("userInfo")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status_code": http.StatusUnauthorized,
			"message":     "Unauthorized",
		})
		return
	}

	ui := userInfo.(*middleware.UserInfo)
	if !isAdmin(ui) && audit.UserID != "" && audit.UserID != ui.Sub {
		c.JSON(http.StatusForbidden, gin.H{
			"status_code": http.StatusForbidden,
			"message":     "You don't have permission to access this audit",
		})
		return
	}

	c.JSON(http.StatusOK, audit)
}

// getAuditReportHandler serves the assembled report, from cache when fresh
func (s *Server) getAuditReportHandler(c *gin.Context) {
	id := c.Param("id")
	if rep, ok := s.reportCache.Get(id); ok {
		c.JSON(http.StatusOK, rep)
		return
	}

	audit, ok := s.loadAudit(c)
	if !ok {
		return
	}

	s.reportCache.Put(id, audit.Report, s.config.Report.CacheTTL)
	c.JSON(http.StatusOK, audit.Report)
}

// getActionPlanHandler serves the flattened, prioritized action plan
func (s *Server) getActionPlanHandler(c *gin.Context) {
	id := c.Param("id")

	rep, ok := s.reportCache.Get(id)
	if !ok {
		audit, found := s.loadAudit(c)
		if !found {
			return
		}
		rep = audit.Report
		s.reportCache.Put(id, rep, s.config.Report.CacheTTL)
	}

	plan := report.BuildActionPlan(rep.Issues)
	c.JSON(http.StatusOK, gin.H{
		"count": len(plan),
		"items": plan,
	})
}

// getRecentAuditsHandler handles requests to get recent audits
func (s *Server) getRecentAuditsHandler(c *gin.Context) {
	limit := parseLimit(c)

	ctx := c.Request.Context()
	audits, err := s.repo.GetRecentAudits(ctx, limit)
	if err != nil {
		s.logger.Error("Failed to get recent audits", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status_code": http.StatusInternalServerError,
			"message":     "Failed to get recent audits",
			"error":       err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":  len(audits),
		"audits": audits,
	})
}

// getUserAuditsHandler handles requests to get the current user's audits
func (s *Server) getUserAuditsHandler(c *gin.Context) {
	limit := parseLimit(c)

	userInfo, exists := c.Get("userInfo")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status_code": http.StatusUnauthorized,
			"message":     "Unauthorized",
		})
		return
	}

	ui := userInfo.(*middleware.UserInfo)
	ctx := c.Request.Context()
	audits, err := s.repo.GetUserAudits(ctx, ui.Sub, limit)
	if err != nil {
		s.logger.Error("Failed to get user audits", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status_code": http.StatusInternalServerError,
			"message":     "Failed to get user audits",
			"error":       err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":  len(audits),
		"audits": audits,
	})
}

// getStatsHandler handles requests to get admin stats
func (s *Server) getStatsHandler(c *gin.Context) {
	ctx := c.Request.Context()
	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		s.logger.Error("Failed to get stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status_code": http.StatusInternalServerError,
			"message":     "Failed to get stats",
			"error":       err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// loadAudit fetches the audit named by the :id param, writing the error
// response itself when the lookup fails.
func (s *Server) loadAudit(c *gin.Context) (*models.AuditRecord, bool) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status_code": http.StatusBadRequest,
			"message":     "Missing audit ID",
		})
		return nil, false
	}

	audit, err := s.repo.GetAudit(c.Request.Context(), id)
	if err != nil {
		s.logger.Error("Failed to get audit", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status_code": http.StatusInternalServerError,
			"message":     "Failed to get audit",
			"error":       err.Error(),
		})
		return nil, false
	}

	if audit == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status_code": http.StatusNotFound,
			"message":     "Audit not found",
		})
		return nil, false
	}

	return audit, true
}

// parseLimit reads the limit query parameter, defaulting to 10 and capping
// at 100.
func parseLimit(c *gin.Context) int {
	limit := 10
	if limitParam := c.Query("limit"); limitParam != "" {
		if n, err := fmt.Sscanf(limitParam, "%d", &limit); err != nil || n != 1 {
			limit = 10
		}
	}
	if limit > 100 {
		limit = 100
	}
	return limit
}

// isAdmin checks if the user has the admin role
func isAdmin(ui *middleware.UserInfo) bool {
	for _, role := range ui.RealmAccess.Roles {
		if role == "admin" {
			return true
		}
	}
	return false
}
