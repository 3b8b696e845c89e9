package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"go.dw1.io/toregexp"
	"go.dw1.io/toregexp/json"
)

var errNotConvertible = errors.New("input is not a delimited pattern")

type cliOptions struct {
	literal    bool
	detect     bool
	ignoreCase bool
	multiline  bool
	extended   bool
	verbose    bool
	options    string
}

// argsOutput is printed when no text is given.
type argsOutput struct {
	Content string `json:"content"`
	Flags   uint8  `json:"flags"`
	Inline  string `json:"inline"`
	Literal string `json:"literal"`
}

// matchOutput is printed once per text argument.
type matchOutput struct {
	Text       string   `json:"text"`
	Matched    bool     `json:"matched"`
	Submatches []string `json:"submatches,omitempty"`
}

func newRootCmd() *cobra.Command {
	o := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "toregexp [flags] <pattern> [text...]",
		Short: "Convert a delimited pattern string into a compiled pattern",
		Long: `toregexp recognizes /body/flags and %r{body}flags pattern strings.

Without text arguments it prints the extracted pattern body and flags as JSON.
With text arguments it prints one JSON line per text describing the match.

Examples:
  # Inspect the arguments of a pattern
  toregexp '/FOO.*(BAR)/mi'

  # Match texts against a pattern
  toregexp '%r{(/)}' a/b c

  # Treat the input as literal text
  toregexp --literal -i '/(FOO)/' 'hello/(foo)/there'`,
		Version:       version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, o)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&o.literal, "literal", false, "treat the pattern as literal text")
	f.BoolVar(&o.detect, "detect", false, "treat undelimited input as literal text")
	f.BoolVarP(&o.ignoreCase, "ignore-case", "i", false, "match case-insensitively")
	f.BoolVarP(&o.multiline, "multiline", "m", false, "let . match line breaks")
	f.BoolVarP(&o.extended, "extended", "x", false, "ignore whitespace and comments in the pattern")
	f.StringVar(&o.options, "options", "", "options as a JSON object, merged with the flags above")
	f.BoolVar(&o.verbose, "verbose", false, "enable debug logging")

	return cmd
}

// resolve merges the JSON option record with the command line flags.
func (o *cliOptions) resolve() (toregexp.Options, error) {
	opts, err := toregexp.ParseOptions([]byte(o.options))
	if err != nil {
		return toregexp.Options{}, err
	}

	opts.Literal = opts.Literal || o.literal
	opts.Detect = opts.Detect || o.detect
	opts.IgnoreCase = opts.IgnoreCase || o.ignoreCase
	opts.Multiline = opts.Multiline || o.multiline
	opts.Extended = opts.Extended || o.extended

	return opts, nil
}

func run(cmd *cobra.Command, args []string, o *cliOptions) error {
	if o.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	opts, err := o.resolve()
	if err != nil {
		return err
	}

	input, texts := args[0], args[1:]
	log.Debug().
		Str("input", input).
		Bool("literal", opts.Literal).
		Bool("detect", opts.Detect).
		Str("flags", opts.Flags().String()).
		Msg("converting pattern")

	pargs, ok := toregexp.AsRegexpArgs(input, opts)
	if !ok {
		return fmt.Errorf("%w: %q", errNotConvertible, input)
	}

	re, err := pargs.Compile()
	if err != nil {
		return fmt.Errorf("compile %s: %w", pargs, err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)

	if len(texts) == 0 {
		return enc.Encode(argsOutput{
			Content: pargs.Content,
			Flags:   uint8(pargs.Flags),
			Inline:  pargs.Flags.String(),
			Literal: re.Literal(),
		})
	}

	for _, text := range texts {
		sm := re.FindStringSubmatch(text)
		out := matchOutput{Text: text, Matched: sm != nil}
		if len(sm) > 1 {
			out.Submatches = sm[1:]
		}

		log.Debug().Str("text", text).Bool("matched", out.Matched).Msg("matched")
		if err := enc.Encode(out); err != nil {
			return err
		}
	}

	return nil
}
