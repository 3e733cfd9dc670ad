package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Diggsey/minipre/pkg/pre"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var version = "0.1.0"

// CLI options
var (
	defineFlags []string // -D NAME[=VALUE]
	definesFile string   // --defines FILE (YAML map of macros)
	outputPath  string   // -o FILE
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "minipre [file]",
		Short: "minipre is a C-like generic text preprocessor",
		Long: `minipre rewrites a text stream by substituting whole-word occurrences
of defined macros and resolving #if/#elif/#else/#endif conditional
blocks. With no file argument it reads from standard input.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := buildContext()
			if err != nil {
				fmt.Fprintf(errOut, "minipre: %v\n", err)
				return err
			}

			input := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					fmt.Fprintf(errOut, "minipre: %v\n", err)
					return err
				}
				defer f.Close()
				input = f
			}

			dest := out
			var outFile *os.File
			if outputPath != "" {
				outFile, err = os.Create(outputPath)
				if err != nil {
					fmt.Fprintf(errOut, "minipre: %v\n", err)
					return err
				}
				dest = outFile
			}

			if err := pre.Process(input, dest, ctx); err != nil {
				if outFile != nil {
					outFile.Close()
				}
				fmt.Fprintf(errOut, "minipre: %v\n", err)
				return err
			}
			if outFile != nil {
				if err := outFile.Close(); err != nil {
					fmt.Fprintf(errOut, "minipre: %v\n", err)
					return err
				}
			}
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.Flags().StringArrayVarP(&defineFlags, "define", "D", nil, "Define macro (NAME or NAME=VALUE)")
	rootCmd.Flags().StringVar(&definesFile, "defines", "", "Load macro definitions from a YAML file")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write output to file instead of stdout")

	return rootCmd
}

// buildContext assembles the macro table from --defines and -D flags.
// -D flags are applied after the file, so they win on conflicts. A bare
// -D NAME defines the macro as "1".
func buildContext() (*pre.Context, error) {
	ctx := pre.NewContext()

	if definesFile != "" {
		data, err := os.ReadFile(definesFile)
		if err != nil {
			return nil, err
		}
		var defs map[string]string
		if err := yaml.Unmarshal(data, &defs); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", definesFile, err)
		}
		ctx.DefineAll(defs)
	}

	for _, d := range defineFlags {
		if idx := strings.Index(d, "="); idx >= 0 {
			ctx.Define(d[:idx], d[idx+1:])
		} else {
			ctx.Define(d, "1")
		}
	}

	return ctx, nil
}
