package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/conneroisu/expect/internal/scenario"
)

var renderCmd = &cobra.Command{
	Use:     "render <file>...",
	Aliases: []string{"r"},
	Short:   "Render message templates described in YAML",
	Long: `Render failure messages from YAML templates, one template per document,
to preview how a custom check will read. Templates use short tokens:
{name}, {not}, {actual}, {actual.type}, {expected}, {expected.type},
{reason}, {path}, {index} and {nil}.

Example template:
  title: divisible
  prefix: Expected {name} to {not} be divisible by {expected}
  suffix: ", but {reason}"
  reason: the remainder was 1
  actual: 7
  expected: 3

Examples:
  expectctl render messages.yml          # Render as written
  expectctl render messages.yml --both   # Show the failure and negated failure
  expectctl render messages.yml -o json  # Output as JSON`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

var renderBoth bool

// renderedMessage is one rendered template.
type renderedMessage struct {
	File    string `json:"file" yaml:"file"`
	Title   string `json:"title,omitempty" yaml:"title,omitempty"`
	Outcome string `json:"outcome" yaml:"outcome"`
	Message string `json:"message" yaml:"message"`
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().BoolVarP(&renderBoth, "both", "b", false, "Render both the failure and the negated failure")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	var rendered []renderedMessage
	for _, path := range cfg.TargetFiles {
		templates, err := scenario.LoadTemplates(path)
		if err != nil {
			return err
		}
		for _, t := range templates {
			rendered = append(rendered, renderTemplate(path, t, renderBoth)...)
		}
	}

	if cfg.Output.Format != "text" {
		return writeStructured(cmd.OutOrStdout(), cfg.Output.Format, rendered)
	}
	return outputRenderText(cmd.OutOrStdout(), rendered)
}

// renderTemplate renders t as written, or, with both, as the two messages a
// raised failure can produce.
func renderTemplate(file string, t scenario.Template, both bool) []renderedMessage {
	if !both {
		return []renderedMessage{{
			File:    file,
			Title:   t.Title,
			Outcome: outcomeLabel(t.Pass, t.Negated),
			Message: t.Render(),
		}}
	}

	b := t.Builder()
	return []renderedMessage{
		{File: file, Title: t.Title, Outcome: outcomeLabel(false, false), Message: b.Build(false, false)},
		{File: file, Title: t.Title, Outcome: outcomeLabel(true, true), Message: b.Build(true, true)},
	}
}

func outcomeLabel(pass, negated bool) string {
	switch {
	case !pass && !negated:
		return "failure"
	case pass && negated:
		return "negated failure"
	case pass:
		return "pass"
	default:
		return "negated pass"
	}
}

func outputRenderText(w io.Writer, rendered []renderedMessage) error {
	for i, r := range rendered {
		if i > 0 {
			fmt.Fprintln(w)
		}
		title := r.Title
		if title == "" {
			title = r.File
		}
		fmt.Fprintf(w, "── %s (%s)\n%s\n", title, r.Outcome, r.Message)
	}
	return nil
}
