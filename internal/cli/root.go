// Package cli implements the meu-painel command line.
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meu-painel/backend/internal/config"
	"github.com/meu-painel/backend/internal/router"
	"github.com/meu-painel/backend/internal/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// options is shared by all commands of one root command.
type options struct {
	viper      *viper.Viper
	configFile string
	config     config.Config

	// now is replaced in tests
	now func() time.Time
}

// NewRootCommand returns the meu-painel command with all subcommands.
func NewRootCommand() *cobra.Command {
	o := &options{
		viper: config.New(),
		now:   time.Now,
	}

	cmd := &cobra.Command{
		Use:   "meu-painel",
		Short: "Personal finance tracker with savings goals and bill reminders",
		Long: `meu-painel keeps track of income, expenses, savings goals and bills.

Run "meu-painel serve" for the HTTP API. The other commands work directly
on snapshot files, the JSON documents the API keeps for every profile.`,
		SilenceUsage:      true,
		PersistentPreRunE: o.initConfig,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configFile, "config", "", "config file (yaml, json or toml)")
	flags.String("data-dir", "", "directory for the database and the snapshots (default \"data\")")
	flags.String("log-format", "", "log format (human, json)")

	_ = o.viper.BindPFlag(config.KeyDataDir, flags.Lookup("data-dir"))
	_ = o.viper.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))

	cmd.AddCommand(serveCmd(o))
	cmd.AddCommand(adviseCmd(o))
	cmd.AddCommand(reportCmd(o))
	cmd.AddCommand(summaryCmd(o))
	cmd.AddCommand(addCmd(o))
	cmd.AddCommand(goalCmd(o))
	cmd.AddCommand(depositCmd(o))
	cmd.AddCommand(versionCmd())

	return cmd
}

func (o *options) initConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(o.viper, o.configFile)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	o.config = cfg
	setupLogging(cfg, cmd.ErrOrStderr())
	return nil
}

// setupLogging configures gin and the global zerolog logger. Logs are
// written for humans in debug mode unless a format is set explicitly.
func setupLogging(cfg config.Config, w io.Writer) {
	gin.SetMode(cfg.GinMode)

	output := w
	if cfg.HumanLogs() {
		output = zerolog.ConsoleWriter{Out: w}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

// today returns the reference day from a --date flag value, or the current
// day when it is empty.
func (o *options) today(date string) (time.Time, error) {
	if date == "" {
		return o.now(), nil
	}

	d, err := types.ParseDate(date)
	if err != nil {
		return time.Time{}, fmt.Errorf("the date must be given as YYYY-MM-DD: %w", err)
	}

	return d.Time(), nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "meu-painel %s\n", router.Version)
			return err
		},
	}
}
