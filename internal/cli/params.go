package cli

import (
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// paramsCommand creates the params command for inspecting chart parameters.
func (c *CLI) paramsCommand() *cobra.Command {
	var flags encodeFlags

	cmd := &cobra.Command{
		Use:   "params [chart-file]",
		Short: "Show the chart parameters as a table",
		Long: `Show the chart parameters as a table.

The params command encodes a chart description and prints each URL
parameter on its own row, unescaped, which makes it easy to see how a
chart maps onto the wire format while debugging a description file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			e, err := flags.encoder(args[0])
			if err != nil {
				return err
			}
			params, err := e.Params(flags.width, flags.height)
			if err != nil {
				return fmt.Errorf("encode %s: %w", args[0], err)
			}
			logger.Debugf("encoded %d parameters", len(params))
			fmt.Println(StyleTitle.Render(args[0]))
			printDetail("%d parameters", len(params))

			keys := make([]string, 0, len(params))
			for k := range params {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Param", "Value"})
			table.SetBorder(false)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetAutoWrapText(false)
			for _, k := range keys {
				table.Append([]string{k, params[k]})
			}
			table.Render()
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
