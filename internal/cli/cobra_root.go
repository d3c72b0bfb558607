package cli

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"task-tracker/internal/config"
)

// defaultTimeout applies when no configuration has been resolved
const defaultTimeout = 30 * time.Second

// helpCommandName is cobra's built-in help subcommand, which needs no store
const helpCommandName = "help"

// idCommands take a task id as their first positional argument
var idCommands = map[string]bool{
	"update": true,
	"remove": true,
}

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App) *RootCommand {
	root := &RootCommand{app: app}

	root.cmd = &cobra.Command{
		Use:   "tasks",
		Short: "A command-line task tracker",
		Long: `tasks keeps a flat list of tasks in a local JSON file.

EXAMPLES:
  tasks add "Write report" "Quarterly numbers"   # Add a to-do task
  tasks list                                     # List every task
  tasks list-status done                         # Show the first task with status "done"
  tasks update 1 "Write report" "Final" done     # Overwrite name, description and status
  tasks remove 1                                 # Remove task 1
  tasks export out.json                          # Copy the task file
  tasks export --format csv out.csv              # Export as CSV

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > tasks.toml > defaults

    TASKS_CONFIG                           TOML config file (default: ./tasks.toml if present)
    TASKS_STORE_DIR                        Store directory (default: .)
    TASKS_STORE_FILENAME                   Store filename (default: tasks.json, or tasks.db for sqlite)
    TASKS_STORE_BACKEND                    Store backend, json or sqlite (default: json)
    TASKS_STORE_FILE_MODE                  Store file permissions (default: 0644)
    TASKS_APP_TIMEOUT                      Command timeout (default: 30s)
    TASKS_APP_VERBOSE, TASKS_DEBUG         Debug logging on stderr
    TASKS_EXPORT_FORMAT                    Default export format (default: json)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == helpCommandName {
				return nil
			}
			return app.setup(cmd.Context(), root.overridesFromFlags())
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// ExecuteContext runs the root command
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("store-dir", "", "Store directory (overrides TASKS_STORE_DIR)")
	flags.String("store-file", "", "Store filename (overrides TASKS_STORE_FILENAME)")
	flags.String("backend", "", "Store backend: json or sqlite (overrides TASKS_STORE_BACKEND)")
	flags.Duration("timeout", 0, "Command timeout (overrides TASKS_APP_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Enable debug logging on stderr")
}

// addSubcommands wires every task command into the root
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add <name> <description>",
		Short: "Add a new to-do task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewAddCommand(r.app).Execute(ctx, args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewListCommand(r.app).Execute(ctx, args)
		},
	}

	listStatusCmd := &cobra.Command{
		Use:   "list-status <status>",
		Short: "Show the first task with the given status",
		Long: `Show the first task, in creation order, whose status equals <status> exactly.
Later tasks with the same status are not shown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewListStatusCommand(r.app).Execute(ctx, args)
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update <id> <name> <description> <status>",
		Short: "Overwrite a task's name, description and status",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewUpdateCommand(r.app).Execute(ctx, args)
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewRemoveCommand(r.app).Execute(ctx, args)
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export <filename>",
		Short: "Export all tasks to a file",
		Long: `Export all tasks to a file.

Supported formats:
  json - the task file format (default)
  csv  - comma-separated values with a header row
  pdf  - one line per task`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			format, _ := cmd.Flags().GetString("format")
			if format == "" {
				format = r.app.config.Export.DefaultFormat
			}
			return NewExportCommand(r.app, format).Execute(ctx, args)
		},
	}
	exportCmd.Flags().StringP("format", "f", "", "Export format: json, csv or pdf (overrides TASKS_EXPORT_FORMAT)")

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		listStatusCmd,
		updateCmd,
		removeCmd,
		exportCmd,
	)
}

// commandContext bounds a command by the configured timeout
func (r *RootCommand) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	timeout := defaultTimeout
	if r.app.config != nil && r.app.config.GetTimeout() > 0 {
		timeout = r.app.config.GetTimeout()
	}
	return context.WithTimeout(cmd.Context(), timeout)
}

// overridesFromFlags collects the global flags the user actually set
func (r *RootCommand) overridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("store-dir") {
		storeDir, _ := flags.GetString("store-dir")
		overrides.StoreDir = &storeDir
	}
	if flags.Changed("store-file") {
		storeFile, _ := flags.GetString("store-file")
		overrides.StoreFilename = &storeFile
	}
	if flags.Changed("backend") {
		backend, _ := flags.GetString("backend")
		overrides.Backend = &backend
	}
	if flags.Changed("timeout") {
		timeout, _ := flags.GetDuration("timeout")
		overrides.Timeout = &timeout
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}

	return overrides
}

// protectNegativeIDs ends flag parsing before an id such as -1 so pflag
// does not read it as a shorthand flag
func protectNegativeIDs(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if !idCommands[arg] {
			continue
		}
		if i+1 < len(args) && isNegativeInteger(args[i+1]) {
			protected := make([]string, 0, len(args)+1)
			protected = append(protected, args[:i+1]...)
			protected = append(protected, "--")
			return append(protected, args[i+1:]...)
		}
		return args
	}
	return args
}

func isNegativeInteger(arg string) bool {
	if !strings.HasPrefix(arg, "-") {
		return false
	}
	_, err := strconv.ParseInt(arg, 10, 64)
	return err == nil
}
