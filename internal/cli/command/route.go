package command

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func RouteCommand() *cli.Command {
	return &cli.Command{
		Name:      "route",
		Usage:     "Show where the route guards send a path",
		ArgsUsage: "PATH",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("usage: fitictl route PATH", exitUsage)
			}
			app, err := getApp(c)
			if err != nil {
				return err
			}

			from := c.Args().First()
			routes := app.Router.Routes()
			to, decision := app.Router.Follow(c.Context, from)

			if jsonOutput(c) {
				return printJSON(c.App.Writer, map[string]any{
					"from":      from,
					"to":        to,
					"state":     decision.State.String(),
					"protected": routes.IsProtectedRoute(from),
					"public":    routes.IsPublicRoute(from),
				})
			}
			fmt.Fprintf(c.App.Writer, "%s -> %s (%s)\n", from, to, decision.State)
			return nil
		},
	}
}
