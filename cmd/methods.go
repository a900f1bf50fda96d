package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/expect/internal/errors"
	"github.com/conneroisu/expect/pkg/chain"
	"github.com/conneroisu/expect/pkg/extensions"
)

var methodsCmd = &cobra.Command{
	Use:     "methods [name]",
	Aliases: []string{"m"},
	Short:   "List registered checks and chain words",
	Long: `List the names the dispatcher resolves: checks (methods), negation words
and no-op words. With a name, report what kind it is, or suggest the
closest registered names when it is unknown.

Examples:
  expectctl methods                 # Everything, as a table
  expectctl methods --kind method   # Only checks
  expectctl methods -o json         # Output as JSON
  expectctl methods equl            # Did you mean 'equal'?`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMethods,
}

// Kinds of registered names.
const (
	kindMethod   = "method"
	kindNegation = "negation"
	kindNOP      = "nop"
)

var methodKinds = []string{kindMethod, kindNegation, kindNOP}

var methodsKind string

// registeredName is one row of the methods listing.
type registeredName struct {
	Name string `json:"name" yaml:"name"`
	Kind string `json:"kind" yaml:"kind"`
}

func init() {
	rootCmd.AddCommand(methodsCmd)

	methodsCmd.Flags().StringVarP(&methodsKind, "kind", "k", "", "Only list one kind (method, negation, nop)")

	AddFlagValidation(methodsCmd, "kind", func(kind string) error {
		return ValidateFormatWithSuggestion(kind, methodKinds)
	})
}

func runMethods(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	extensions.Register()
	names := listRegistered(methodsKind)

	if len(args) == 1 {
		return lookupName(cmd.OutOrStdout(), args[0], names)
	}

	if cfg.Output.Format != "text" {
		return writeStructured(cmd.OutOrStdout(), cfg.Output.Format, names)
	}
	return outputMethodsTable(cmd.OutOrStdout(), names)
}

// listRegistered returns the registered names of one kind, or of all kinds
// when kind is empty, sorted by name. A word registered as both a negation
// and a no-op is listed as a negation, since negation wins at dispatch.
func listRegistered(kind string) []registeredName {
	var names []registeredName
	add := func(k string, list []string) {
		if kind != "" && kind != k {
			return
		}
		for _, name := range list {
			names = append(names, registeredName{Name: name, Kind: k})
		}
	}

	negations := chain.NegationExtensions()
	var nops []string
	for _, name := range chain.NOPExtensions().Names() {
		if !negations.Has(name) {
			nops = append(nops, name)
		}
	}

	add(kindMethod, chain.MethodNames())
	add(kindNegation, negations.Names())
	add(kindNOP, nops)

	slices.SortStableFunc(names, func(a, b registeredName) int {
		return strings.Compare(a.Name, b.Name)
	})
	return names
}

func lookupName(w io.Writer, name string, names []registeredName) error {
	all := make([]string, 0, len(names))
	for _, n := range names {
		if n.Name == name {
			_, err := fmt.Fprintf(w, "%s: %s\n", n.Name, n.Kind)
			return err
		}
		all = append(all, n.Name)
	}
	return errors.UnknownNameError("name", name, all)
}

func outputMethodsTable(w io.Writer, names []registeredName) error {
	tw := newTable(w)

	fmt.Fprintln(tw, "NAME\tKIND")
	fmt.Fprintln(tw, strings.Repeat("-", 4)+"\t"+strings.Repeat("-", 4))
	for _, n := range names {
		fmt.Fprintf(tw, "%s\t%s\n", n.Name, n.Kind)
	}
	fmt.Fprintf(tw, "\nTotal: %d names\n", len(names))

	return tw.Flush()
}
