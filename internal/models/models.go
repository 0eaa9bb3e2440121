package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"seoAuditGO/internal/report"
)

// AuditRequest represents the request to audit a set of URLs. Upstream
// scoring and link-intelligence providers may post their data alongside the
// URL list; every block is optional and the assembler defaults what is
// missing.
type AuditRequest struct {
	URLs            []string                   `json:"urls" binding:"required,min=1,dive,url"`
	Summary         *report.RawSummary         `json:"summary,omitempty"`
	Recommendations []report.RawRecommendation `json:"recommendations,omitempty"`
	PageSpeed       *report.RawPageSpeed       `json:"pageSpeed,omitempty"`
	MozData         *report.RawMozData         `json:"mozData,omitempty"`
}

// AuditRecord is one persisted audit: the raw crawl input alongside the
// assembled report.
type AuditRecord struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	URLs      []string           `json:"urls" bson:"urls"`
	Raw       report.RawReport   `json:"raw" bson:"raw"`
	Report    report.Report      `json:"report" bson:"report"`
	UserID    string             `json:"user_id,omitempty" bson:"user_id,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Error      string `json:"error,omitempty"`
}

// Stats represents application statistics
type Stats struct {
	TotalAudits       int       `json:"total_audits" bson:"total_audits"`
	UniqueDomains     int       `json:"unique_domains" bson:"unique_domains"`
	AuditsLast24h     int       `json:"audits_last_24h" bson:"audits_last_24h"`
	AuditsLast7d      int       `json:"audits_last_7d" bson:"audits_last_7d"`
	MostAuditedDomain string    `json:"most_audited_domain" bson:"most_audited_domain"`
	LastUpdated       time.Time `json:"last_updated" bson:"last_updated"`
}
