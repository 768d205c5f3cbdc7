package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conduit-lang/cldispatch/internal/cli/ui"
	"github.com/conduit-lang/cldispatch/internal/inspect"
	"github.com/conduit-lang/cldispatch/internal/registry"
)

// errNotFound is returned after a not-found message has been printed.
var errNotFound = errors.New("not found")

// NewEntryPointsCommand creates the entrypoints command
func NewEntryPointsCommand() *cobra.Command {
	var (
		source   string
		category string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:     "entrypoints [name]",
		Aliases: []string{"ep"},
		Short:   "List entry points and how each is dispatched",
		Long: `List every entry point in the registry with the version or extension
that introduced it and the parameter that selects its implementation.
With a name, show that entry point in detail.

Examples:
  cldispatch entrypoints
  cldispatch entrypoints --category enumeration
  cldispatch entrypoints clCreateContext
  cldispatch entrypoints --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(source)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				i, ok := reg.Index(args[0])
				if !ok {
					names := make([]string, 0, reg.Len())
					for _, ep := range reg.Entries() {
						names = append(names, ep.Name)
					}
					fmt.Fprint(cmd.ErrOrStderr(), ui.EntryPointNotFoundError(args[0], ui.FindSimilar(args[0], names), noColor(cmd)))
					return fmt.Errorf("entry point %s: %w", args[0], errNotFound)
				}
				view := inspect.NewEntryPointView(i, reg.At(i))
				if asJSON {
					return writeIndentedJSON(cmd, view)
				}
				renderEntryPoint(cmd, view)
				return nil
			}

			if category != "" && !slices.Contains(categories(), category) {
				return fmt.Errorf("unknown category %q, expected %s", category, joinOr(categories()))
			}
			views := entryPointViews(reg, category)
			if asJSON {
				return writeIndentedJSON(cmd, views)
			}

			table := ui.NewTable(out, noColor(cmd), "NAME", "SINCE", "CATEGORY", "GOVERNOR")
			for _, v := range views {
				table.AddRow(v.Name, v.Introduced, v.Category, governorText(v.Governor))
			}
			table.Render()
			fmt.Fprintf(out, "\n%d entry points\n", table.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "registry", "r", "", "registry XML file (default built-in table)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "only show one category (trampoline, enumeration, address-resolution, fixed-result)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}

func entryPointViews(reg *registry.Registry, category string) []inspect.EntryPointView {
	var views []inspect.EntryPointView
	for i, ep := range reg.Entries() {
		if category != "" && ep.Category().String() != category {
			continue
		}
		views = append(views, inspect.NewEntryPointView(i, ep))
	}
	return views
}

func categories() []string {
	return []string{
		registry.CategoryTrampoline.String(),
		registry.CategoryEnumeration.String(),
		registry.CategoryAddressResolution.String(),
		registry.CategoryFixedResult.String(),
	}
}

func governorText(g *inspect.GovernorView) string {
	if g == nil {
		return "-"
	}
	return fmt.Sprintf("%s (%s %s)", g.Param, g.Mode, g.Kind)
}

func renderEntryPoint(cmd *cobra.Command, v inspect.EntryPointView) {
	kv := ui.NewKeyValueTable(cmd.OutOrStdout(), noColor(cmd))
	kv.AddRow("name", v.Name)
	kv.AddRow("slot", strconv.Itoa(v.Index))
	kv.AddRow("introduced", v.Introduced)
	kv.AddRow("optional", strconv.FormatBool(v.Optional))
	kv.AddRow("category", v.Category)
	kv.AddRow("governor", governorText(v.Governor))
	kv.AddRow("signature", v.Signature)
	kv.Render()
}

func writeIndentedJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// joinOr renders a list for messages, e.g. "a, b or c".
func joinOr(items []string) string {
	if len(items) < 2 {
		return strings.Join(items, "")
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}
