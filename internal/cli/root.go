package cli

import (
	"fmt"

	"github.com/pdtgen-labs/pdtgen/internal/branding"
	"github.com/pdtgen-labs/pdtgen/internal/config"
	"github.com/pdtgen-labs/pdtgen/internal/logging"
	"github.com/pdtgen-labs/pdtgen/internal/platform"
	"github.com/pdtgen-labs/pdtgen/internal/report"
	"github.com/pdtgen-labs/pdtgen/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates an Eclipse PDT project for the Composer package in the
current directory: .project, .buildpath, .settings/, .gitignore entries, and
src/main/php and src/test/php trees named after the package vendor.

Settings come from the environment (` + branding.EnvVar("workdir") + `, ` + branding.EnvVar("manifest") + `,
` + branding.EnvVar("log_level") + `) or ~/` + branding.HomeDir() + `/config.yaml.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func runGenerate(cmd *cobra.Command) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(cmd.ErrOrStderr(), settings.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	fsys, err := platform.Workspace(settings.WorkDir)
	if err != nil {
		return err
	}

	s := scaffold.New(fsys, report.New(cmd.OutOrStdout()), log)
	s.ManifestPath = settings.Manifest
	if _, err := s.Run(); err != nil {
		return fmt.Errorf("generating project: %w", err)
	}
	return nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
