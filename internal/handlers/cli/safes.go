package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gabapcia/safedesk/internal/safe"

	"github.com/urfave/cli/v3"
)

// listSafesCommand returns a CLI command printing the loaded Safes, most
// recently loaded first.
//
// Usage example:
//
//	safedesk safes
func listSafesCommand(ss safe.Service, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "safes",
		Description: "Print the loaded Safes with their owners and threshold.",
		Usage:       "Lists the loaded Safes.",
		Action: func(ctx context.Context, c *cli.Command) error {
			safes, err := ss.List(ctx)
			if err != nil {
				return err
			}

			if len(safes) == 0 {
				fmt.Fprintln(out, "No safes loaded")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tADDRESS\tTHRESHOLD")
			for _, info := range safes {
				fmt.Fprintf(w, "%s\t%s\t%d/%d\n", info.Name, info.Address, info.Threshold, len(info.Owners))
			}

			return w.Flush()
		},
	}
}
