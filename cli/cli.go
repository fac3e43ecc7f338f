package cli

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"go.hackfix.me/genfile/app/config"
	actx "go.hackfix.me/genfile/app/context"
)

// CLI is the command line interface of genfile.
type CLI struct {
	Generate Generate `kong:"cmd,default='withargs',help='Generate a file filled with random data.'"`
	List     List     `kong:"cmd,help='List generated files.',aliases='ls'"`
	Read     Read     `kong:"cmd,help='Read a generated file back, reporting throughput.'"`

	Log struct {
		Level slog.Level `enum:"DEBUG,INFO,WARN,ERROR" default:"INFO" help:"Set the app logging level."`
	} `embed:"" prefix:"log-"`
	// NOTE: Deliberately not using kong.ConfigFlag, since the configuration is
	// managed independently from the CLI.
	ConfigFile string           `kong:"default='${configFile}',help='Path to the genfile configuration file.'"`
	OutputDir  string           `kong:"help='Directory where generated files are stored. Overrides the configured value.'"`
	Version    kong.VersionFlag `kong:"help='Output version and exit.'"`

	kong *kong.Kong
	kctx *kong.Context
}

// New initializes the command-line interface.
func New(configFilePath, version string) (*CLI, error) {
	c := &CLI{}
	kparser, err := kong.New(c,
		kong.Name("genfile"),
		kong.UsageOnError(),
		kong.DefaultEnvars("GENFILE"),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			Summary:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"configFile": configFilePath,
			"version":    version,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed creating the Kong parser: %w", err)
	}

	c.kong = kparser

	return c, nil
}

// Execute starts the command execution. Parse must be called before this method.
func (c *CLI) Execute(appCtx *actx.Context) error {
	if c.kctx == nil {
		panic("the CLI wasn't initialized properly")
	}
	c.kong.Stdout = appCtx.Stdout
	c.kong.Stderr = appCtx.Stderr

	//nolint:wrapcheck // This is fine.
	return c.kctx.Run(appCtx)
}

// Parse the given command line arguments. This method must be called before
// Execute.
func (c *CLI) Parse(args []string) error {
	kctx, err := c.kong.Parse(args)
	if err != nil {
		return fmt.Errorf("failed parsing CLI arguments: %w", err)
	}
	c.kctx = kctx

	return nil
}

// Command returns the full path of the executed command.
func (c *CLI) Command() string {
	if c.kctx == nil {
		panic("the CLI wasn't initialized properly")
	}
	cmdPath := []string{}
	for _, p := range c.kctx.Path {
		if p.Command != nil {
			cmdPath = append(cmdPath, p.Command.Name)
		}
	}

	return strings.Join(cmdPath, " ")
}

// ApplyConfig merges configuration values with CLI flags. Flags take
// precedence over configured values.
func (c *CLI) ApplyConfig(cfg *config.Config) {
	if c.OutputDir != "" {
		cfg.Output.Dir = sql.Null[string]{V: c.OutputDir, Valid: true}
	} else if cfg.Output.Dir.Valid {
		c.OutputDir = cfg.Output.Dir.V
	}
}
