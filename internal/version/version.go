// ABOUTME: Version constants
// ABOUTME: Product identity reported by the CLI
package version

const (
	// Version is the release version of this build.
	Version = "0.1.0"

	// Product is the user-facing product name.
	Product = "ListenLab"

	// Manufacturer identifies the project publishing this build.
	Manufacturer = "ListenLab"
)
