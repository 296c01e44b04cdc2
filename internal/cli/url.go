package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/charturl/charturl/pkg/encode"
	"github.com/charturl/charturl/pkg/errors"
)

// =============================================================================
// Shared encoding flags
// =============================================================================

// encodeFlags holds the options shared by the url, params, and img commands.
type encodeFlags struct {
	width    int
	height   int
	enhanced bool
	plain    bool
	baseURL  string
	extra    []string
}

// register adds the shared flags to cmd.
func (f *encodeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.width, "width", defaultWidth, "chart width in pixels")
	cmd.Flags().IntVar(&f.height, "height", defaultHeight, "chart height in pixels")
	cmd.Flags().BoolVar(&f.enhanced, "enhanced", false, "use the extended data encoding (4096 levels instead of 62)")
	cmd.Flags().BoolVar(&f.plain, "plain", false, "skip URL escaping of parameter values")
	cmd.Flags().StringVar(&f.baseURL, "base-url", "", "override the chart server base URL")
	cmd.Flags().StringArrayVar(&f.extra, "extra", nil, "extra chart parameter as name=value (repeatable)")
}

// encoder loads the chart file and builds an encoder configured by the flags.
func (f *encodeFlags) encoder(path string) (*encode.Encoder, error) {
	cf, err := LoadChartFile(path)
	if err != nil {
		return nil, err
	}
	e, err := cf.Encoder()
	if err != nil {
		return nil, err
	}
	e.Enhanced = f.enhanced
	e.Plain = f.plain
	if f.baseURL != "" {
		e.BaseURL = f.baseURL
	}
	for _, kv := range f.extra {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"extra parameter %q must be name=value", kv)
		}
		if e.Extra == nil {
			e.Extra = make(map[string]string)
		}
		e.Extra[name] = value
	}
	return e, nil
}

// =============================================================================
// url command
// =============================================================================

// urlCommand creates the url command for printing a chart URL.
func (c *CLI) urlCommand() *cobra.Command {
	var flags encodeFlags

	cmd := &cobra.Command{
		Use:   "url [chart-file]",
		Short: "Print the chart URL for a description file",
		Long: `Print the chart URL for a description file.

The url command reads a chart description (TOML, or JSON when the file
ends in .json), encodes it, and prints the resulting chart server URL on
stdout. The URL can be pasted into a browser or embedded anywhere an
image source is accepted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			tracker := newProgress(logger)

			e, err := flags.encoder(args[0])
			if err != nil {
				return err
			}
			u, err := e.URL(flags.width, flags.height)
			if err != nil {
				return fmt.Errorf("encode %s: %w", args[0], err)
			}

			tracker.done("Encoded chart")
			printSuccess("Encoded %s (%dx%d)", args[0], flags.width, flags.height)
			fmt.Println(StyleLink.Render(u))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
