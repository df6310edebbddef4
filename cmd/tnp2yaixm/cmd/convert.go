package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/yaixm"
	"github.com/npillmayer/yaixm/convert"
	"github.com/npillmayer/yaixm/tnp"
	"github.com/spf13/cobra"
)

var (
	latin1         bool
	keepDuplicates bool
	indent         int
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.tnp> [output.yaml]",
	Short: "Convert a TNP file to YAIXM",
	Long: `Convert reads a TNP file and writes the airspace it describes as a
YAIXM document. Without an output file, the document is written to stdout.`,
	Args:         cobra.RangeArgs(1, 2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("latin1") && latin1 {
			cfg.Input.Encoding = "latin1"
		}
		if cmd.Flags().Changed("keep-duplicates") {
			cfg.Output.Dedup = !keepDuplicates
		}
		if cmd.Flags().Changed("indent") {
			cfg.Output.Indent = indent
			if err := cfg.Validate(); err != nil {
				return err
			}
		}
		output := ""
		if len(args) == 2 {
			output = args[1]
		}
		return runConvert(args[0], output, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	convertCmd.Flags().BoolVar(&latin1, "latin1", false, "input is ISO-8859-1 encoded")
	convertCmd.Flags().BoolVar(&keepDuplicates, "keep-duplicates", false, "keep closing points repeating the first point")
	convertCmd.Flags().IntVar(&indent, "indent", 2, "indentation of YAML output")
	rootCmd.AddCommand(convertCmd)
}

// runConvert converts input and writes the YAIXM document to the file output,
// or to out if output is empty. The output file is created only after a
// successful conversion.
func runConvert(input, output string, out io.Writer, errout io.Writer) error {
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()
	var opts []convert.Option
	if cfg.Input.Encoding == "latin1" {
		opts = append(opts, convert.Latin1Input())
	}
	if !cfg.Output.Dedup {
		opts = append(opts, convert.KeepDuplicatePoints())
	}
	airspaces, err := convert.Convert(f, opts...)
	if err != nil {
		var perr *tnp.ParseError
		if errors.As(err, &perr) {
			fmt.Fprintf(errout, "%s:%s: %v\n", input, perr.Pos, err)
			perr.PrintContext(errout, 2)
		}
		return err
	}
	var doc bytes.Buffer
	if err = yaixm.EncodeIndent(&doc, airspaces, cfg.Output.Indent); err != nil {
		return err
	}
	if output == "" {
		_, err = doc.WriteTo(out)
		return err
	}
	return writeFile(output, doc.Bytes())
}

func writeFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if _, err = f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing output: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
