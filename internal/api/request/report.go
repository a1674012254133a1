package request

// ShareReportRequest represents the request body for creating a share link.
type ShareReportRequest struct {
	PropertyID string `json:"propertyId"`
	Year       int    `json:"year"`
}
