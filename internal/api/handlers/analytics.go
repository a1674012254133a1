package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/Rental-Analytics-Backend/internal/api/middleware"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/api/request"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/api/response"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/model"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/service"
	"github.com/ndewijer/Rental-Analytics-Backend/internal/validation"
)

// AnalyticsHandler handles annual report HTTP requests
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	snapshotService  *service.SnapshotService
	shareService     *service.ShareService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(
	analyticsService *service.AnalyticsService,
	snapshotService *service.SnapshotService,
	shareService *service.ShareService,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		snapshotService:  snapshotService,
		shareService:     shareService,
	}
}

// SnapshotResponse wraps a portfolio report with where it came from.
type SnapshotResponse struct {
	Year         int                   `json:"year"`
	FromSnapshot bool                  `json:"fromSnapshot"`
	Report       model.AnalyticsReport `json:"report"`
}

// ShareResponse is returned when a share link is created.
type ShareResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SharedReportResponse is the report behind a share token together with its scope.
type SharedReportResponse struct {
	PropertyID string                `json:"propertyId,omitempty"`
	Year       int                   `json:"year"`
	Report     model.AnalyticsReport `json:"report"`
}

// Report handles GET requests for the annual report of the caller's portfolio,
// or of one property when propertyId is given.
//
// Endpoint: GET /api/analytics/report?year=YYYY[&propertyId=uuid]
// Response: 200 OK with model.AnalyticsReport
// Error: 400 invalid year or property id, 403 property owned by someone else,
// 404 property not found (an unknown propertyId is an error, not a zero report),
// 500 on load failure
func (h *AnalyticsHandler) Report(w http.ResponseWriter, r *http.Request) {
	year, err := parseYear(r, h.analyticsService.Now().Year())
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid year", err.Error())
		return
	}

	propertyID := r.URL.Query().Get("propertyId")
	if propertyID != "" {
		if err := validation.ValidateUUID(propertyID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid propertyId", err.Error())
			return
		}
	}

	h.writeReport(w, r, propertyID, year)
}

// PropertyReport handles GET requests for the annual report of a single property.
//
// Endpoint: GET /api/analytics/property/{uuid}/report?year=YYYY
// Response: 200 OK with model.AnalyticsReport
// Error: 400 invalid year, 403 not owned, 404 unknown property (no zero report)
func (h *AnalyticsHandler) PropertyReport(w http.ResponseWriter, r *http.Request) {
	year, err := parseYear(r, h.analyticsService.Now().Year())
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid year", err.Error())
		return
	}

	h.writeReport(w, r, chi.URLParam(r, "uuid"), year)
}

func (h *AnalyticsHandler) writeReport(w http.ResponseWriter, r *http.Request, propertyID string, year int) {
	report, err := h.analyticsService.GetAnnualReport(r.Context(), model.ReportScope{
		UserID:     middleware.UserIDFromContext(r.Context()),
		PropertyID: propertyID,
		Year:       year,
	})
	if err != nil {
		response.RespondServiceError(w, "failed to compute report", err)
		return
	}

	response.RespondJSON(w, http.StatusOK, report)
}

// Snapshot handles GET requests for the pre-calculated portfolio report.
// When no snapshot exists yet the report is computed on demand.
//
// Endpoint: GET /api/analytics/snapshot?year=YYYY
// Response: 200 OK with SnapshotResponse
func (h *AnalyticsHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	year, err := parseYear(r, h.analyticsService.Now().Year())
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid year", err.Error())
		return
	}

	report, fromSnapshot, err := h.snapshotService.GetReportWithFallback(r.Context(), middleware.UserIDFromContext(r.Context()), year)
	if err != nil {
		response.RespondServiceError(w, "failed to retrieve report snapshot", err)
		return
	}

	response.RespondJSON(w, http.StatusOK, SnapshotResponse{
		Year:         year,
		FromSnapshot: fromSnapshot,
		Report:       report,
	})
}

// Share handles POST requests creating a read-only link to a report.
//
// Endpoint: POST /api/analytics/share
// Request: request.ShareReportRequest
// Response: 201 Created with ShareResponse
// Error: 400 validation failure, 403 not owned, 503 sharing not configured
func (h *AnalyticsHandler) Share(w http.ResponseWriter, r *http.Request) {
	var req request.ShareReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateShareReport(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	token, expiresAt, err := h.shareService.Issue(r.Context(), model.ReportScope{
		UserID:     middleware.UserIDFromContext(r.Context()),
		PropertyID: req.PropertyID,
		Year:       req.Year,
	})
	if err != nil {
		response.RespondServiceError(w, "failed to create share link", err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, ShareResponse{Token: token, ExpiresAt: expiresAt})
}

// Shared handles GET requests resolving a share token. No user header is needed.
//
// Endpoint: GET /api/analytics/shared/{token}
// Response: 200 OK with SharedReportResponse
// Error: 404 when the token is invalid or expired
func (h *AnalyticsHandler) Shared(w http.ResponseWriter, r *http.Request) {
	report, scope, err := h.shareService.Resolve(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		response.RespondServiceError(w, "shared report not available", err)
		return
	}

	response.RespondJSON(w, http.StatusOK, SharedReportResponse{
		PropertyID: scope.PropertyID,
		Year:       scope.Year,
		Report:     report,
	})
}
