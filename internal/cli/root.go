package cli

import (
	"os"

	"github.com/ksyq12/siteup/internal/errors"
	"github.com/ksyq12/siteup/internal/logger"
	"github.com/ksyq12/siteup/internal/output"
	"github.com/spf13/cobra"
)

var version = "dev"

// options holds the parsed command line
type options struct {
	create     bool
	disable    bool
	remove     bool
	rmHost     bool
	hosts      bool
	list       bool
	jsonOutput bool
	verbose    bool
	configPath string
}

// mode is the single operation an invocation performs
type mode int

const (
	modeEnable mode = iota
	modeCreate
	modeDisable
	modeRemove
	modeRemoveHost
	modeList
)

func (m mode) String() string {
	switch m {
	case modeCreate:
		return "create"
	case modeDisable:
		return "disable"
	case modeRemove:
		return "remove"
	case modeRemoveHost:
		return "rm-host"
	case modeList:
		return "list"
	default:
		return "enable"
	}
}

// mode resolves the flags by precedence; enable is the default
func (o *options) mode() mode {
	switch {
	case o.list:
		return modeList
	case o.create:
		return modeCreate
	case o.disable:
		return modeDisable
	case o.remove:
		return modeRemove
	case o.rmHost:
		return modeRemoveHost
	default:
		return modeEnable
	}
}

// newRootCmd builds the siteup command
func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "siteup <site>",
		Short: "Local Apache site management",
		Long: `siteup manages local Apache virtual hosts.

It creates a site's folder with placeholder pages, links it into the web
root, writes and enables its virtual host config, and optionally maps the
site name to 127.0.0.1 in the hosts file.

Examples:
  siteup blog --create     create ~/projects/web/blog
  siteup blog --hosts      enable blog and add it to /etc/hosts
  siteup blog -d --hosts   disable blog and remove it from /etc/hosts
  siteup blog --remove     delete blog entirely (asks for confirmation)
  siteup blog --rm-host    remove blog from /etc/hosts
  siteup --list            show every site and its state`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.create, "create", "c", false, "Create the site folder if it does not exist")
	flags.BoolVarP(&opts.disable, "disable", "d", false, "Disable the site")
	flags.BoolVar(&opts.remove, "remove", false, "Completely remove the site and all associated files and configurations")
	flags.BoolVar(&opts.remove, "rm", false, "Alias for --remove")
	flags.BoolVar(&opts.rmHost, "rm-host", false, "Remove the site name from the hosts file")
	flags.BoolVar(&opts.hosts, "hosts", false, "Update the hosts file when enabling or disabling")
	flags.BoolVar(&opts.list, "list", false, "List sites and their state")
	flags.BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format (with --list)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging for debugging")
	flags.StringVar(&opts.configPath, "config", "", "Config file (default ~/.config/siteup/config.yaml)")
	_ = flags.MarkHidden("rm")

	return cmd
}

// run loads the config and dispatches to the selected operation
func run(opts *options, args []string) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	closeLog := openLogFile(cfg)
	defer closeLog()

	mgr := newManager(cfg)

	m := opts.mode()
	if m == modeList {
		return runList(mgr, opts.jsonOutput)
	}
	if len(args) == 0 {
		return errors.Validation("site name is required")
	}
	name := args[0]

	switch m {
	case modeCreate:
		err = runCreate(mgr, name)
	case modeDisable:
		err = runDisable(mgr, name, opts.hosts)
	case modeRemove:
		err = runRemove(mgr, name)
	case modeRemoveHost:
		err = runRemoveHost(mgr, name)
	default:
		err = runEnable(mgr, name, opts.hosts)
	}
	if err != nil {
		return err
	}
	logger.InfoFields("operation finished", map[string]interface{}{
		"site": name,
		"mode": m.String(),
	})
	return nil
}

// Execute runs siteup with the process arguments and returns the exit code.
// A failed external command's own exit code is passed through.
func Execute() int {
	return execute(os.Args[1:])
}

func execute(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(deps.Stdout)

	if err := cmd.Execute(); err != nil {
		output.New(deps.Stdout).Error("%v", err)
		return errors.ExitCode(err)
	}
	return 0
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}
