// Package command defines the fitictl commands.
//
// fitictl drives the same session gateway as the terminal client: it logs
// in, restores and refreshes the persisted session, fetches the profile and
// onboarding content, and reports what the route guards would do for a path.
// It uses urfave/cli/v2 for command parsing.
package command
