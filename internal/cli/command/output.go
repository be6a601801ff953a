package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/fitiplus/internal/service"
	"github.com/MKhiriev/fitiplus/models"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// Exit codes.
const (
	exitFailure = 1
	exitUsage   = 2
	exitTimeout = 3
	exitAuth    = 4
)

func jsonOutput(c *cli.Context) bool {
	return c.String("output") == outputJSON
}

// finish prints res and turns a failure into a [cli.ExitCoder].
func finish(c *cli.Context, res models.Result) error {
	if res.OK() {
		if !jsonOutput(c) && res.Message != "" {
			fmt.Fprintln(c.App.Writer, res.Message)
		}
		return nil
	}
	return cli.Exit(res.Message, exitCode(res))
}

func exitCode(res models.Result) int {
	switch {
	case res.OK():
		return 0
	case res.Kind == models.ResultTimeout:
		return exitTimeout
	case errors.Is(res.Err, service.ErrValidation):
		return exitUsage
	case errors.Is(res.Err, service.ErrUnauthorized), errors.Is(res.Err, service.ErrNotAuthenticated):
		return exitAuth
	default:
		return exitFailure
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printRows writes key/value rows aligned in two columns.
func printRows(w io.Writer, rows [][2]string) error {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	for _, r := range rows {
		v := r[1]
		if v == "" {
			v = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\n", r[0], v)
	}
	return tw.Flush()
}

func identityRows(id *models.Identity) [][2]string {
	if id == nil {
		return nil
	}
	return [][2]string{
		{"ID", id.ID},
		{"NAME", id.DisplayName()},
		{"EMAIL", id.Email},
		{"ROLE", id.Role},
		{"PHONE", id.Phone},
	}
}
