package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/gabapcia/safedesk/internal/safe"
	"github.com/gabapcia/safedesk/internal/wizard"

	"github.com/urfave/cli/v3"
)

// ErrInputClosed is returned when the input ends before the wizard is finished.
var ErrInputClosed = errors.New("input closed before the wizard finished")

const wizardHelp = "Enter field=value to fill a field, an empty line to continue, :back, :jump N or :quit."

// loadSafeCommand returns a CLI command that walks the user through the load
// Safe wizard on the terminal.
//
// Usage example:
//
//	safedesk load --name Treasury --address 0xABC123...
func loadSafeCommand(ss safe.Service, in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "load",
		Description: "Add an existing Safe by its name and address, review its owners and store it.",
		Usage:       "Loads an existing Safe through an interactive wizard.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Usage: "Prefills the name of the Safe",
			},
			&cli.StringFlag{
				Name:  "address",
				Usage: "Prefills the address of the Safe",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			initial := wizard.Values{}
			if name := c.String("name"); name != "" {
				initial[safe.FieldName] = name
			}
			if address := c.String("address"); address != "" {
				initial[safe.FieldAddress] = address
			}

			var cancelled bool
			stepper, err := ss.NewLoadWizard(
				wizard.WithInitialValues(initial),
				wizard.WithNavigator(wizard.NavigatorFunc(func() { cancelled = true })),
			)
			if err != nil {
				return err
			}

			return runWizard(ctx, stepper, in, out, func() bool { return cancelled })
		},
	}
}

// runWizard drives stepper with the lines read from in until it is submitted
// or cancelled.
func runWizard(ctx context.Context, stepper *wizard.Stepper, in io.Reader, out io.Writer, cancelled func() bool) error {
	var (
		scanner = bufio.NewScanner(in)
		pending = wizard.Values{}
		redraw  = true
	)

	fmt.Fprintln(out, wizardHelp)
	for {
		switch {
		case stepper.Done():
			fmt.Fprintln(out, "Safe loaded")
			return nil
		case cancelled():
			fmt.Fprintln(out, "Cancelled")
			return nil
		}

		if redraw {
			if err := printPage(out, stepper); err != nil {
				return err
			}
			redraw = false
		}

		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			return ErrInputClosed
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			err := stepper.Submit(ctx, pending)
			if err == nil {
				pending = wizard.Values{}
				redraw = true
				continue
			}

			if ctx.Err() != nil {
				return ctx.Err()
			}
			printSubmitError(out, err)
		case line == ":quit":
			fmt.Fprintln(out, "Cancelled")
			return nil
		case line == ":back":
			if err := stepper.Back(ctx); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			pending = wizard.Values{}
			redraw = true
		case strings.HasPrefix(line, ":jump"):
			step, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, ":jump")))
			if err != nil {
				fmt.Fprintln(out, "usage: :jump N")
				continue
			}

			if err := stepper.JumpTo(ctx, step-1); err != nil {
				fmt.Fprintf(out, "error: cannot jump to step %d: %v\n", step, err)
				continue
			}
			pending = wizard.Values{}
			redraw = true
		case strings.Contains(line, "="):
			field, value, _ := strings.Cut(line, "=")
			pending[strings.TrimSpace(field)] = strings.TrimSpace(value)
		default:
			fmt.Fprintln(out, wizardHelp)
		}
	}
}

func printPage(out io.Writer, stepper *wizard.Stepper) error {
	steps := stepper.Steps()

	parts := make([]string, len(steps))
	for i, step := range steps {
		parts[i] = fmt.Sprintf("%d. %s", i+1, step.Label)
		if step.Active {
			parts[i] = "[" + parts[i] + "]"
		}
	}

	page, err := stepper.Render()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s\n\n%s", strings.Join(parts, " > "), page)
	return nil
}

func printSubmitError(out io.Writer, err error) {
	var validationErr *wizard.ValidationError
	if !errors.As(err, &validationErr) {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}

	fmt.Fprintf(out, "%s has invalid fields:\n", validationErr.Page)
	for _, field := range slices.Sorted(maps.Keys(validationErr.Fields)) {
		fmt.Fprintf(out, "  %s: %s\n", field, validationErr.Fields[field])
	}
}
