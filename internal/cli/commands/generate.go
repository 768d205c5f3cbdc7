package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/conduit-lang/cldispatch/internal/cli/ui"
	"github.com/conduit-lang/cldispatch/internal/codegen"
	"github.com/conduit-lang/cldispatch/internal/logging"
	"github.com/conduit-lang/cldispatch/internal/registry"
	"github.com/conduit-lang/cldispatch/internal/watch"
)

// Defaults for cldispatch generate, relative to the repository root.
const (
	defaultRegistryXML = "internal/registry/testdata/cl.xml"
	defaultGenerateOut = "internal/registry/zz_generated_entrypoints.go"
)

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	var (
		source      string
		out         string
		watchSource bool
		opts        = codegen.DefaultOptions()
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the entry-point table from a registry XML file",
		Long: `Parse an API registry and write the Go source for its entry-point
table. The loader never reads XML at runtime; it dispatches from the
generated table.

Examples:
  cldispatch generate
  cldispatch generate --registry cl.xml --out -
  cldispatch generate --watch
  cldispatch generate --package tables --import-path example.com/tables --var entryPoints`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watchSource && out == "-" {
				return fmt.Errorf("--watch needs an output file")
			}
			if err := generateTable(cmd, source, out, opts); err != nil {
				return err
			}
			if !watchSource {
				return nil
			}

			logger, err := logging.New("info", logging.FormatText, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fw := watch.NewFileWatcher(source, func(context.Context) error {
				return generateTable(cmd, source, out, opts)
			}, logger)
			return fw.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&source, "registry", "r", defaultRegistryXML, "registry XML file")
	cmd.Flags().StringVarP(&out, "out", "o", defaultGenerateOut, "output file, - for stdout")
	cmd.Flags().StringVar(&opts.Package, "package", opts.Package, "package name of the generated file")
	cmd.Flags().StringVar(&opts.ImportPath, "import-path", opts.ImportPath, "import path of the generated file's package")
	cmd.Flags().StringVar(&opts.VarName, "var", opts.VarName, "name of the generated variable")
	cmd.Flags().BoolVarP(&watchSource, "watch", "w", false, "regenerate whenever the registry file changes")

	return cmd
}

func generateTable(cmd *cobra.Command, source, out string, opts codegen.Options) error {
	reg, err := registry.Load(source)
	if err != nil {
		return err
	}

	opts.Source = filepath.ToSlash(source)
	src, err := codegen.NewGenerator(opts).GenerateTable(reg)
	if err != nil {
		return err
	}

	if out == "-" {
		_, err := cmd.OutOrStdout().Write(src)
		return err
	}
	if err := os.WriteFile(out, src, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	ui.WriteSuccess(cmd.OutOrStdout(), fmt.Sprintf("wrote %d entry points to %s", reg.Len(), out), noColor(cmd))
	return nil
}
