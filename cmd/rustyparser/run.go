package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/anas-azouane/RustyParser/dispatch"
	"github.com/anas-azouane/RustyParser/taglang"
)

var runCmd = &cobra.Command{
	Use:   "run <tags>",
	Short: "Parse a tag string and run it as a command",
	Long:  `Parse a tag-language string such as '<ls/><-la/>' and execute the top-level element names as a command (here: ls -la). Quote the whole string at the shell level.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTags,
}

func init() {
	runCmd.Flags().Bool("dry-run", false, "Parse and print the element tree, do not execute")
	runCmd.Flags().Duration("timeout", 0, "Kill the command after this duration (0 = no limit)")

	_ = viper.BindPFlag("timeout", runCmd.Flags().Lookup("timeout"))

	rootCmd.AddCommand(runCmd)
}

func runTags(cmd *cobra.Command, args []string) error {
	verbose := viper.GetBool("verbose")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	elements, err := taglang.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[parse] %d top-level element(s)\n", len(elements))
	}

	if dryRun {
		printTree(elements)
		return nil
	}

	argv := dispatch.Flatten(elements)
	runner := &dispatch.Runner{
		Timeout: viper.GetDuration("timeout"),
		Verbose: verbose,
	}

	inv := dispatch.NewInvocation(argv)
	code, err := runner.Run(cmd.Context(), inv)
	if err != nil {
		if errors.Is(err, dispatch.ErrNoCommand) {
			fmt.Fprintln(os.Stderr, "No command to run.")
			return nil
		}
		return err
	}

	if code != 0 {
		fmt.Fprintf(os.Stderr, "Command exited with status: %d\n", code)
	}
	return nil
}

// printTree prints the parsed elements with their attributes and children.
// This is the only place attributes surface: dispatch ignores them.
func printTree(elements []taglang.Element) {
	var walk func(el taglang.Element, depth int)
	walk = func(el taglang.Element, depth int) {
		indent := strings.Repeat("  ", depth)
		fmt.Fprintf(os.Stderr, "%s- %s", indent, el.Name)
		for _, a := range el.Attrs {
			fmt.Fprintf(os.Stderr, " %s=%q", a.Key, a.Value)
		}
		fmt.Fprintln(os.Stderr)
		for _, child := range el.Children {
			walk(child, depth+1)
		}
	}

	for _, el := range elements {
		walk(el, 0)
	}
}
