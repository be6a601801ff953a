package command

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/fitiplus/models"
)

func ProfileCommand() *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Fetch the profile from the API",
		Action: func(c *cli.Context) error {
			app, err := getApp(c)
			if err != nil {
				return err
			}
			res := app.Services.AuthService.FetchProfile(c.Context)
			if !res.OK() {
				return finish(c, res)
			}
			if jsonOutput(c) {
				return printJSON(c.App.Writer, res.Identity)
			}
			if res.Offline {
				fmt.Fprintln(c.App.ErrWriter, "sin conexión: mostrando los datos guardados")
			}
			return printRows(c.App.Writer, identityRows(res.Identity))
		},
	}
}

// OnboardingCommand groups the questionnaire content listings.
func OnboardingCommand() *cli.Command {
	return &cli.Command{
		Name:  "onboarding",
		Usage: "List onboarding content",
		Subcommands: []*cli.Command{
			{
				Name:  "stages",
				Usage: "Questionnaire steps",
				Action: func(c *cli.Context) error {
					app, err := getApp(c)
					if err != nil {
						return err
					}
					stages, res := app.Services.ContentService.OnboardingStages(c.Context)
					return listing(c, res, stages, func(s models.OnboardingStage) [2]string {
						return [2]string{strconv.Itoa(s.Step), s.Title + " (" + s.ContentType + ")"}
					})
				},
			},
			{
				Name:  "goals",
				Usage: "Fitness goals",
				Action: func(c *cli.Context) error {
					app, err := getApp(c)
					if err != nil {
						return err
					}
					goals, res := app.Services.ContentService.OnboardingGoals(c.Context)
					return listing(c, res, goals, func(g models.Goal) [2]string {
						return [2]string{g.ID, g.Name}
					})
				},
			},
			{
				Name:  "allergies",
				Usage: "Food allergies",
				Action: func(c *cli.Context) error {
					app, err := getApp(c)
					if err != nil {
						return err
					}
					allergies, res := app.Services.ContentService.OnboardingAllergies(c.Context)
					return listing(c, res, allergies, func(a models.Allergy) [2]string {
						return [2]string{a.ID, a.Name}
					})
				},
			},
			{
				Name:  "welcome",
				Usage: "Welcome cards",
				Action: func(c *cli.Context) error {
					app, err := getApp(c)
					if err != nil {
						return err
					}
					cards, res := app.Services.ContentService.WelcomeCards(c.Context)
					return listing(c, res, cards, func(w models.WelcomeCard) [2]string {
						return [2]string{w.ID, w.Title}
					})
				},
			},
		},
	}
}

// listing prints items. When the API failed but defaults are available they
// are printed and the failure is reported on stderr only.
func listing[T any](c *cli.Context, res models.Result, items []T, row func(T) [2]string) error {
	if !res.OK() {
		if len(items) == 0 {
			return finish(c, res)
		}
		fmt.Fprintf(c.App.ErrWriter, "%s (mostrando valores predeterminados)\n", res.Message)
	}

	if jsonOutput(c) {
		if items == nil {
			items = []T{}
		}
		return printJSON(c.App.Writer, items)
	}
	rows := make([][2]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, row(it))
	}
	return printRows(c.App.Writer, rows)
}
