package manifest

import "errors"

// FileName is the manifest read from the project root unless configured otherwise.
const FileName = "composer.json"

var (
	// ErrManifestNotFound is returned when the manifest is missing or unreadable.
	ErrManifestNotFound = errors.New("manifest not found or not readable")
	// ErrInvalidManifest is returned when the manifest is not a JSON object
	// or lacks a "vendor/project" name.
	ErrInvalidManifest = errors.New("invalid manifest")
)

// Manifest holds the Composer fields pdtgen reads.
type Manifest struct {
	Name    string // "vendor/project"
	Version string // optional package version
	PHP     string // optional require.php constraint
}

// Identifiers are the names derived from Manifest.Name.
type Identifiers struct {
	Vendor    string // e.g., "acme"
	Project   string // e.g., "widget"
	Namespace string // e.g., "Acme"
}
