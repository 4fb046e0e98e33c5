// Package config resolves pdtgen settings from the environment (PDTGEN_*) and
// an optional user file at ~/.pdtgen/config.yaml. Settings choose the working
// directory to scaffold, the manifest file name, and the diagnostic log level.
package config
