package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrPropertyNotFound indicates that a property with the given ID does not exist.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrSnapshotNotFound indicates that no report snapshot has been calculated
	// for the owner and year yet.
	ErrSnapshotNotFound = errors.New("report snapshot not found")

	// ErrShareTokenInvalid indicates that a share token could not be decrypted,
	// has expired, or does not carry a valid scope.
	ErrShareTokenInvalid = errors.New("share token invalid or expired")
)

// Authorization errors indicate the caller is not entitled to the requested scope.
var (
	// ErrMissingUser indicates that the request does not identify a user.
	ErrMissingUser = errors.New("user identification is required")

	// ErrPropertyNotOwned indicates that the requested property belongs to another user.
	ErrPropertyNotOwned = errors.New("property is not owned by the requesting user")
)

// Configuration errors indicate an optional feature is switched off.
var (
	// ErrSharingDisabled indicates that no share token key is configured.
	ErrSharingDisabled = errors.New("report sharing is not configured")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
var (
	ErrFailedToLoadReportData   = errors.New("failed to load report data")
	ErrFailedToComputeReport    = errors.New("failed to compute report")
	ErrFailedToRetrieveSnapshot = errors.New("failed to retrieve report snapshot")
	ErrFailedToIssueShareToken  = errors.New("failed to issue share token")
	ErrFailedToGetVersionInfo   = errors.New("failed to get version information")
)
