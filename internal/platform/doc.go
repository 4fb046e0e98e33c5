// Package platform provides the workspace filesystem handle used by every
// generation step and cross-platform permission handling. Workspaces are afero
// filesystems rooted at the project directory, so tests can substitute an
// in-memory filesystem. On Windows permission changes are skipped because
// Unix-style permission bits do not apply.
package platform
