// Package manifest loads the Composer manifest (composer.json) that names the
// project being scaffolded. The manifest is validated against an embedded JSON
// Schema that covers only the fields pdtgen reads; everything else in the file
// is kept as raw data and ignored. It also derives the vendor, project and
// namespace identifiers and runs advisory checks on version fields.
package manifest
