package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// imgCommand creates the img command for printing an embeddable image tag.
func (c *CLI) imgCommand() *cobra.Command {
	var flags encodeFlags

	cmd := &cobra.Command{
		Use:   "img [chart-file]",
		Short: "Print an embeddable <img> tag",
		Long: `Print an embeddable <img> tag.

The img command encodes a chart description and prints an HTML image tag
pointing at the chart server, sized to match the requested dimensions.
The output can be pasted directly into an HTML page.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := flags.encoder(args[0])
			if err != nil {
				return err
			}
			tag, err := e.Img(flags.width, flags.height)
			if err != nil {
				return fmt.Errorf("encode %s: %w", args[0], err)
			}
			fmt.Println(tag)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
