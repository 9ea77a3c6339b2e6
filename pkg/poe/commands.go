package poe

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"poe-show/pkg"
	"poe-show/pkg/types"
)

// DefaultTimeout bounds the store queries of one command
const DefaultTimeout = 5 * time.Second

// Settings are resolved by the host after its flags are parsed
type Settings struct {
	PortPrefix string
	Timeout    time.Duration
}

// Options wire the poe commands to the host
type Options struct {
	Open Opener
	// Settings may be nil, in which case defaults apply
	Settings func() Settings
}

func (o Options) settings() Settings {
	s := Settings{}
	if o.Settings != nil {
		s = o.Settings()
	}
	if s.PortPrefix == "" {
		s.PortPrefix = DefaultPortPrefix
	}
	if s.Timeout <= 0 {
		s.Timeout = DefaultTimeout
	}
	return s
}

// Register adds the "poe" command group to root. It fails when root
// already has a command of that name.
func Register(root *cobra.Command, opts Options) error {
	node := NewCommand(opts)
	for _, c := range root.Commands() {
		if c.Name() == node.Name() {
			return &RegistrationError{Name: node.Name()}
		}
	}
	root.AddCommand(node)
	pkg.Debug("Registered %q under %q", node.Name(), root.Name())
	return nil
}

// NewCommand builds the "poe" command tree
func NewCommand(opts Options) *cobra.Command {
	poeCmd := &cobra.Command{
		Use:   "poe",
		Short: "Show PoE (Power over Ethernet) feature information",
	}

	interfaceCmd := &cobra.Command{
		Use:   "interface",
		Short: "Show PoE interface information",
	}
	interfaceCmd.AddCommand(newConfigurationCmd(opts))
	interfaceCmd.AddCommand(newStateCmd(opts))

	poeCmd.AddCommand(interfaceCmd)
	poeCmd.AddCommand(newStatusCmd(opts))
	poeCmd.AddCommand(newPSECmd(opts))
	return poeCmd
}

func addFormatFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "format", string(OutputFormatTable), "Output format: table, json, csv")
}

// withBackend opens the stores for the duration of fn.
func withBackend(cmd *cobra.Command, opts Options, fn func(ctx context.Context, b Backend) error) error {
	if opts.Open == nil {
		return fmt.Errorf("no database connector configured")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, opts.settings().Timeout)
	defer cancel()

	backend, err := opts.Open(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer backend.Close()

	return fn(ctx, backend)
}

func newConfigurationCmd(opts Options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "configuration",
		Short: "Show PoE configuration from Config DB",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := ParseOutputFormat(format)
			if err != nil {
				return err
			}
			return withBackend(cmd, opts, func(ctx context.Context, b Backend) error {
				return ShowConfiguration(ctx, cmd.OutOrStdout(), b.ConfigDB(), outFormat)
			})
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}

func newStateCmd(opts Options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "state [ifname]",
		Short: "Show details of the PoE interface",
		Long: `Show PoE state of every port, or of a single port when ifname is given.

Examples:
  show poe interface state
  show poe interface state Ethernet4
  show poe interface state --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := ParseOutputFormat(format)
			if err != nil {
				return err
			}

			ifname := ""
			if len(args) == 1 {
				ifname = args[0]
				prefix := opts.settings().PortPrefix
				if !strings.HasPrefix(ifname, prefix) {
					fmt.Fprintln(cmd.OutOrStdout(), "Invalid ifname argument")
					return &InputError{Name: ifname, Prefix: prefix}
				}
			}

			return withBackend(cmd, opts, func(ctx context.Context, b Backend) error {
				return ShowState(ctx, cmd.OutOrStdout(), b.StateDB(), ifname, outFormat)
			})
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}

func newStatusCmd(opts Options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show PoE system power budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := ParseOutputFormat(format)
			if err != nil {
				return err
			}
			return withBackend(cmd, opts, func(ctx context.Context, b Backend) error {
				return ShowSystemStatus(ctx, cmd.OutOrStdout(), b.StateDB(), outFormat)
			})
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}

func newPSECmd(opts Options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "pse",
		Short: "Show PoE PSE (Power Sourcing Equipment) information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := ParseOutputFormat(format)
			if err != nil {
				return err
			}
			return withBackend(cmd, opts, func(ctx context.Context, b Backend) error {
				return ShowPSE(ctx, cmd.OutOrStdout(), b.StateDB(), outFormat)
			})
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}

// ShowConfiguration prints the POE_PORT table of CONFIG_DB. An empty table
// still prints the header.
func ShowConfiguration(ctx context.Context, w io.Writer, store ConfigStore, format OutputFormat) error {
	records, err := store.GetTable(ctx, TablePortConfig)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", TablePortConfig, err)
	}
	pkg.Debug("Read %d entries from %s", len(records), TablePortConfig)

	t, err := Assemble(HeaderPort, ConfigurationColumns(), records)
	if err != nil {
		return err
	}
	return t.Render(w, format)
}

// ShowState prints POE_PORT_STATE entries of STATE_DB, for every port or
// for ifname only. No matching key is reported as a message, not an error.
func ShowState(ctx context.Context, w io.Writer, store StateStore, ifname string, format OutputFormat) error {
	sep := store.Separator()
	pattern := TablePortState + sep + "*"
	if ifname != "" {
		pattern = TablePortState + sep + escapePattern(ifname)
	}

	records, err := readEntries(ctx, store, pattern)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		if ifname != "" {
			fmt.Fprintf(w, "Interface <%s> does not have PoE configuration\n", ifname)
		} else {
			fmt.Fprintln(w, "No interface has PoE configuration")
		}
		return nil
	}

	t, err := Assemble(HeaderPort, StateColumns(), records)
	if err != nil {
		return err
	}
	return t.Render(w, format)
}

// ShowSystemStatus prints the PoE power budget of the whole system.
func ShowSystemStatus(ctx context.Context, w io.Writer, store StateStore, format OutputFormat) error {
	pattern := TableSystemState + store.Separator() + systemStateKey
	records, err := readEntries(ctx, store, pattern)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(w, "PoE system information is not available")
		return nil
	}

	t, err := Assemble("", SystemColumns(), records)
	if err != nil {
		return err
	}
	return t.Render(w, format)
}

// ShowPSE prints one row per power sourcing equipment controller.
func ShowPSE(ctx context.Context, w io.Writer, store StateStore, format OutputFormat) error {
	records, err := readEntries(ctx, store, TablePSEState+store.Separator()+"*")
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(w, "No PSE information available")
		return nil
	}

	t, err := Assemble(HeaderPSE, PSEColumns(), records)
	if err != nil {
		return err
	}
	return t.Render(w, format)
}

// readEntries fetches every key matching pattern, keyed by the component
// after the table name.
func readEntries(ctx context.Context, store StateStore, pattern string) (map[string]types.Record, error) {
	sep := store.Separator()
	keys, err := store.Keys(ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys %s: %w", pattern, err)
	}
	pkg.Debug("Pattern %s matched %d keys", pattern, len(keys))
	if pkg.IsDebugEnabled() && len(keys) > 0 {
		pkg.Debug("Matched keys: %s", strings.Join(keys, ", "))
	}

	records := make(map[string]types.Record, len(keys))
	for _, key := range keys {
		id, err := PortKey(key, sep)
		if err != nil {
			return nil, err
		}
		record, err := store.GetAll(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", key, err)
		}
		records[id] = record
	}
	return records, nil
}

// escapePattern quotes glob metacharacters so a port name matches literally.
func escapePattern(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '{', '}', ',', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
