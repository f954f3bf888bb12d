package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/gabapcia/safedesk/internal/pkg/types"
	"github.com/gabapcia/safedesk/internal/txstore"

	"github.com/urfave/cli/v3"
)

var (
	// ErrMissingSafe is returned when a transaction of a flat list does not
	// name the Safe it belongs to.
	ErrMissingSafe = errors.New("transaction has no safe address")

	// ErrMissingInput is returned when neither a file nor inline JSON is given.
	ErrMissingInput = errors.New("either --file or --json must be provided")
)

// safeField names the Safe of each transaction in flat transaction lists.
const safeField = "safe"

// decodeJSON decodes data into v keeping numbers as json.Number.
func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

// decodeGroups accepts either an object mapping Safe addresses to their
// transactions or a flat list of transactions each carrying a "safe" field.
func decodeGroups(data []byte) (txstore.Groups, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		var groups txstore.Groups
		if err := decodeJSON(data, &groups); err != nil {
			return nil, err
		}
		return groups, nil
	}

	var flat []txstore.Transaction
	if err := decodeJSON(data, &flat); err != nil {
		return nil, err
	}

	groups := types.NewDefaultMap[string](func() []txstore.Transaction { return []txstore.Transaction{} })
	for i, tx := range flat {
		address, _ := tx[safeField].(string)
		if address == "" {
			return nil, fmt.Errorf("%w: transaction #%d", ErrMissingSafe, i)
		}

		delete(tx, safeField)
		groups.Set(address, append(groups.Get(address), tx))
	}

	return groups.ToMap(), nil
}

// readInput returns the content of the --file flag, or of the --json flag
// when no file is given.
func readInput(c *cli.Command) ([]byte, error) {
	if path := c.String("file"); path != "" {
		return os.ReadFile(path)
	}

	if inline := c.String("json"); inline != "" {
		return []byte(inline), nil
	}

	return nil, ErrMissingInput
}

var inputFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "file",
		Usage: "Path of a JSON file to read",
	},
	&cli.StringFlag{
		Name:  "json",
		Usage: "Inline JSON document, used when --file is not set",
	},
}

// txCommand returns the command grouping the transaction store operations.
// Every subcommand restores the stored snapshot before running.
func txCommand(ts txstore.Service, nr NonceReader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "tx",
		Description: "Manage the transactions stored for the loaded Safes.",
		Usage:       "Replaces, updates and lists stored transactions.",
		Commands: []*cli.Command{
			replaceTransactionsCommand(ts, out),
			updateTransactionCommand(ts, out),
			listTransactionsCommand(ts, nr, out),
		},
	}
}

// replaceTransactionsCommand replaces every stored transaction list.
//
// Usage example:
//
//	safedesk tx replace --file transactions.json
func replaceTransactionsCommand(ts txstore.Service, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "replace",
		Description: "Replace every stored transaction list with the content of a JSON document.",
		Usage:       "Replaces all stored transactions. Accepts a map of Safe address to transactions or a flat list with a \"safe\" field.",
		Flags:       inputFlags,
		Action: func(ctx context.Context, c *cli.Command) error {
			data, err := readInput(c)
			if err != nil {
				return err
			}

			groups, err := decodeGroups(data)
			if err != nil {
				return fmt.Errorf("decode transactions: %w", err)
			}

			if err := ts.Start(ctx); err != nil {
				return err
			}

			if err := ts.ReplaceAll(ctx, groups); err != nil {
				return err
			}

			fmt.Fprintf(out, "Stored transactions of %d safes\n", len(groups))
			return nil
		},
	}
}

// updateTransactionCommand merges one transaction into the stored list of a Safe.
//
// Usage example:
//
//	safedesk tx update --safe 0xABC123... --json '{"nonce": 3, "status": "executed"}'
func updateTransactionCommand(ts txstore.Service, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "update",
		Description: "Merge a transaction into the stored transaction with the same nonce.",
		Usage:       "Updates a stored transaction matched by nonce. Transactions with an unknown nonce are ignored.",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "safe",
				Usage:    "Address of the Safe owning the transaction",
				Required: true,
			},
		}, inputFlags...),
		Action: func(ctx context.Context, c *cli.Command) error {
			data, err := readInput(c)
			if err != nil {
				return err
			}

			var tx txstore.Transaction
			if err := decodeJSON(data, &tx); err != nil {
				return fmt.Errorf("decode transaction: %w", err)
			}

			if err := ts.Start(ctx); err != nil {
				return err
			}

			merged, err := ts.MergeOne(ctx, c.String("safe"), tx)
			if err != nil {
				return err
			}

			if !merged {
				fmt.Fprintln(out, "No stored transaction matches, nothing changed")
				return nil
			}

			fmt.Fprintln(out, "Transaction updated")
			return nil
		},
	}
}

// listTransactionsCommand prints the stored transactions of a Safe.
//
// Usage example:
//
//	safedesk tx list --safe 0xABC123... --onchain
func listTransactionsCommand(ts txstore.Service, nr NonceReader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Description: "Print the stored transactions of a Safe, optionally comparing them with its on-chain nonce.",
		Usage:       "Lists the stored transactions of a Safe.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "safe",
				Usage:    "Address of the Safe",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "onchain",
				Usage: "Reads the Safe nonce from the chain and marks executed transactions",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			address := c.String("safe")

			if err := ts.Start(ctx); err != nil {
				return err
			}

			var (
				onchain = c.Bool("onchain")
				current uint64
			)
			if onchain {
				nonce, err := nr.GetNonce(ctx, address)
				if err != nil {
					return fmt.Errorf("get nonce: %w", err)
				}
				current = nonce
				fmt.Fprintf(out, "On-chain nonce: %d\n", current)
			}

			txs := ts.Transactions(address)
			if len(txs) == 0 {
				fmt.Fprintln(out, "No transactions stored")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			if onchain {
				fmt.Fprintln(w, "NONCE\tSTATUS\tTRANSACTION")
			} else {
				fmt.Fprintln(w, "NONCE\tTRANSACTION")
			}

			for _, tx := range txs {
				data, err := json.Marshal(tx)
				if err != nil {
					return err
				}

				nonce, ok := tx.Nonce()
				label := "-"
				if ok {
					label = fmt.Sprint(nonce)
				}

				if !onchain {
					fmt.Fprintf(w, "%s\t%s\n", label, data)
					continue
				}

				status := "queued"
				if ok && nonce < current {
					status = "executed"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", label, status, data)
			}

			return w.Flush()
		},
	}
}
