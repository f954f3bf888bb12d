package cli

import (
	"context"
	"io"
	"os"

	"github.com/gabapcia/safedesk/internal/safe"
	"github.com/gabapcia/safedesk/internal/txstore"

	"github.com/urfave/cli/v3"
)

// NonceReader reads the nonce of the next transaction of a Safe from the chain.
type NonceReader interface {
	GetNonce(ctx context.Context, address string) (uint64, error)
}

// newApp builds the safedesk command tree reading interactive input from in
// and writing every report to out.
func newApp(ss safe.Service, ts txstore.Service, nr NonceReader, in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "safedesk",
		Description:           "Command-line interface for loading Safes and tracking their transactions.",
		Usage:                 "safedesk [command] [flags]",
		Writer:                out,
		Commands: []*cli.Command{
			loadSafeCommand(ss, in, out),
			listSafesCommand(ss, out),
			txCommand(ts, nr, out),
		},
	}
}

// Run initializes and executes the safedesk CLI application.
//
// It registers all available commands, including:
//
//   - `load`: Runs the interactive wizard adding an existing Safe.
//   - `safes`: Lists the loaded Safes.
//   - `tx`: Replaces, updates and lists the stored transactions of the Safes.
//
// The interactive wizard reads from the standard input.
func Run(ctx context.Context, ss safe.Service, ts txstore.Service, nr NonceReader) error {
	return newApp(ss, ts, nr, os.Stdin, os.Stdout).Run(ctx, os.Args)
}
