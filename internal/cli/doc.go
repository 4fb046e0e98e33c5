// Package cli defines the Cobra command tree for the pdtgen CLI. The root
// command runs the generator against the configured workspace; the version
// subcommand prints build information. Commands only wire configuration,
// logging and output together and delegate the work to package scaffold.
package cli
