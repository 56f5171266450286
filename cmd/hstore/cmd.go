package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gookit/goutil/dump"
	"github.com/spf13/cobra"

	"github.com/arklib/hstore"
	"github.com/arklib/hstore/errx"
	"github.com/arklib/hstore/util"
)

func newRootCmd() *cobra.Command {
	var (
		a           *app
		configFiles []string
	)

	rootCmd := &cobra.Command{
		Use:   "hstore",
		Short: "hstore converts typed values to and from flat key/value strings.",
		Long: `The hstore command encodes and decodes values with the same rules the
hstore package applies, and reads or writes them in a configured store.

Type tags: string, integer, float, time, boolean, array, hash, date, decimal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			a, err = newApp(configFiles...)
			return
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.Close()
		},
	}
	rootCmd.PersistentFlags().StringSliceVarP(&configFiles, "config", "c", nil, "config files (json, yaml or toml)")

	getApp := func() *app { return a }
	rootCmd.AddCommand(
		newTypesCmd(),
		newEncodeCmd(getApp),
		newDecodeCmd(getApp),
		newCastCmd(getApp),
		newGetCmd(getApp),
		newSetCmd(getApp),
		newDelCmd(getApp),
		newDumpCmd(getApp),
	)
	return rootCmd
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the recognized type tags",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, t := range hstore.Types() {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
		},
	}
}

func newEncodeCmd(getApp func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <type> <value>...",
		Short: "Print the stored form of a value",
		Long: `Print the stored form of a value.

Array elements are given as separate arguments, hashes as JSON text.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := getApp().registry
			t, err := parseType(args[0])
			if err != nil {
				return err
			}

			value, err := parseInput(registry, t, args[1:])
			if err != nil {
				return err
			}
			data, err := registry.Serialize(t, value)
			if err != nil {
				return errx.New(err).WithCode(errx.InputErrCode)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatStored(data))
			return nil
		},
	}
}

func newDecodeCmd(getApp func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <type> <stored>",
		Short: "Decode a stored value and dump it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseType(args[0])
			if err != nil {
				return err
			}

			data, err := getApp().registry.Deserialize(t, &args[1])
			if err != nil {
				return errx.New(err).WithCode(errx.InputErrCode)
			}
			dump.NewDumper(cmd.OutOrStdout(), 3).Print(data)
			return nil
		},
	}
}

func newCastCmd(getApp func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cast <type> <value>",
		Short: "Coerce a raw value to the native type of a tag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseType(args[0])
			if err != nil {
				return err
			}

			data, err := getApp().registry.TypeCast(t, args[1])
			if err != nil {
				return errx.New(err).WithCode(errx.InputErrCode)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%T)\n", formatNative(data), data)
			return nil
		},
	}
}

func newGetCmd(getApp func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <bucket> <key> [type]",
		Short: "Read one key from the store",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := hstore.String
			if len(args) == 3 {
				var err error
				if t, err = parseType(args[2]); err != nil {
					return err
				}
			}

			s, err := getApp().Store()
			if err != nil {
				return err
			}
			data, err := s.Get(cmd.Context(), args[0], args[1], t)
			if err != nil {
				return errx.New(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatNative(data))
			return nil
		},
	}
}

func newSetCmd(getApp func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <bucket> <key> <type> <value>...",
		Short: "Write one key to the store",
		Args:  cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			t, err := parseType(args[2])
			if err != nil {
				return err
			}

			value, err := parseInput(a.registry, t, args[3:])
			if err != nil {
				return err
			}
			s, err := a.Store()
			if err != nil {
				return err
			}
			if err = s.Set(cmd.Context(), args[0], args[1], t, value); err != nil {
				return errx.New(err)
			}
			return nil
		},
	}
}

func newDelCmd(getApp func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "del <bucket> <key>",
		Short: "Remove one key from the store",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := getApp().Store()
			if err != nil {
				return err
			}
			if err = s.Del(cmd.Context(), args[0], args[1]); err != nil {
				return errx.New(err)
			}
			return nil
		},
	}
}

func newDumpCmd(getApp func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <bucket> [key=type]...",
		Short: "Print every key of a bucket",
		Long: `Print every key of a bucket, one "key: value" per line.

Keys without a key=type argument are printed as strings.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			types := make(map[string]hstore.Type)
			for _, arg := range args[1:] {
				key, name, ok := strings.Cut(arg, "=")
				if !ok {
					return errx.Sprintf("expected key=type, got %q", arg).WithCode(errx.InputErrCode)
				}
				t, err := parseType(name)
				if err != nil {
					return err
				}
				types[key] = t
			}

			s, err := getApp().Store()
			if err != nil {
				return err
			}
			data, err := s.Dump(cmd.Context(), args[0], types)
			if err != nil {
				return errx.New(err)
			}
			util.ForEachMapBySort(data, func(key string, value any) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", key, formatNative(value))
			})
			return nil
		},
	}
}

func parseType(name string) (hstore.Type, error) {
	t, err := hstore.ParseType(name)
	if err != nil {
		return t, errx.New(err).WithCode(errx.InputErrCode)
	}
	return t, nil
}

// parseInput turns command line arguments into a value for t. Hash and
// decimal arguments are already in stored form, so they are decoded.
func parseInput(registry *hstore.Registry, t hstore.Type, args []string) (value any, err error) {
	raw := strings.Join(args, " ")
	switch t {
	case hstore.Array:
		value = args
	case hstore.Hash, hstore.Decimal:
		value, err = registry.Deserialize(t, &raw)
	default:
		value, err = registry.TypeCast(t, raw)
	}
	if err != nil {
		return nil, errx.New(err).WithCode(errx.InputErrCode)
	}
	return
}

func formatStored(data *string) string {
	if data == nil {
		return "(nil)"
	}
	return *data
}

func formatNative(value any) string {
	switch v := value.(type) {
	case nil:
		return "(nil)"
	case time.Time:
		return v.Format(time.RFC3339)
	case []string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprint(v)
	}
}
