package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"dockyard/internal/core/logger"
	exportservice "dockyard/internal/features/exports/service"
	reconadapter "dockyard/internal/features/reconciliation/adapters"
	reconservice "dockyard/internal/features/reconciliation/service"

	"github.com/spf13/cobra"
)

type options struct {
	logLevel string
	out      string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "dockctl",
		Short:        "Offline inventory reconciliation for the dock",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Init("development", "warn"); err != nil {
				return err
			}
			return logger.SetLevel(opts.logLevel)
		},
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level for diagnostics on stderr")
	root.PersistentFlags().StringVarP(&opts.out, "out", "o", "", "write the CSV to this file instead of stdout")

	root.AddCommand(
		newGmapCmd(opts),
		newFixPartsCmd(opts),
		newItemsCmd(opts),
	)
	return root
}

func newReconciler() *reconservice.Reconciler {
	return reconservice.NewReconciler(reconadapter.CSVSource{}, exportservice.NewFormatter(time.Local))
}

// withFiles opens every path, runs fn and writes its output.
func withFiles(cmd *cobra.Command, opts *options, paths []string, fn func(files []io.Reader) (string, error)) error {
	readers := make([]io.Reader, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", p, err)
		}
		defer f.Close()
		readers = append(readers, f)
	}

	out, err := fn(readers)
	if err != nil {
		return err
	}

	if opts.out == "" {
		_, err = io.WriteString(cmd.OutOrStdout(), out)
		return err
	}
	return os.WriteFile(opts.out, []byte(out), 0o644)
}

func newGmapCmd(opts *options) *cobra.Command {
	var gmap, scale string
	cmd := &cobra.Command{
		Use:   "gmap",
		Short: "Compare GMAP allocations against scale on-hand counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withFiles(cmd, opts, []string{gmap, scale}, func(f []io.Reader) (string, error) {
				return newReconciler().Gmap(f[0], f[1])
			})
		},
	}
	cmd.Flags().StringVar(&gmap, "gmap", "", "GMAP export CSV")
	cmd.Flags().StringVar(&scale, "scale", "", "scale on-hand export CSV")
	_ = cmd.MarkFlagRequired("gmap")
	_ = cmd.MarkFlagRequired("scale")
	return cmd
}

func newFixPartsCmd(opts *options) *cobra.Command {
	var details, master string
	cmd := &cobra.Command{
		Use:   "fix-parts",
		Short: "List item-master rows whose pack or pallet quantity is out of date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withFiles(cmd, opts, []string{details, master}, func(f []io.Reader) (string, error) {
				return newReconciler().FixParts(f[0], f[1])
			})
		},
	}
	cmd.Flags().StringVar(&details, "details", "", "pack/pallet details CSV")
	cmd.Flags().StringVar(&master, "master", "", "item master CSV")
	_ = cmd.MarkFlagRequired("details")
	_ = cmd.MarkFlagRequired("master")
	return cmd
}

func newItemsCmd(opts *options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Build item-master upload rows from the items spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withFiles(cmd, opts, []string{file}, func(f []io.Reader) (string, error) {
				return newReconciler().Items(f[0])
			})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "items spreadsheet CSV")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
