// Package scaffold generates the Eclipse PDT project layout for a Composer
// package. It powers the root pdtgen command: read composer.json, derive the
// vendor namespace and project name, then write the source and test trees,
// .settings, .project, .buildpath and .gitignore into the workspace. Every
// generated file carries an explicit write policy, so which files are created
// once and which are rewritten on every run is decided in one place.
package scaffold
