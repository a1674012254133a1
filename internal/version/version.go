// Package version holds the build version, set with
// -ldflags "-X github.com/ndewijer/Rental-Analytics-Backend/internal/version.Version=1.2.3".
package version

// Version is the application version.
var Version = "dev"
