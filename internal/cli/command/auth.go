package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/fitiplus/internal/validators"
	"github.com/MKhiriev/fitiplus/models"
)

var (
	emailFlag = &cli.StringFlag{
		Name:    "email",
		Aliases: []string{"e"},
		Usage:   "Account e-mail (prompted when omitted)",
	}
	passwordFlag = &cli.StringFlag{
		Name:    "password",
		Aliases: []string{"p"},
		Usage:   "Password (prompted without echo when omitted)",
		EnvVars: []string{"FITICTL_PASSWORD"},
	}
)

func LoginCommand() *cli.Command {
	return &cli.Command{
		Name:   "login",
		Usage:  "Log in and persist the session",
		Flags:  []cli.Flag{emailFlag, passwordFlag},
		Action: login,
	}
}

func login(c *cli.Context) error {
	app, err := getApp(c)
	if err != nil {
		return err
	}
	p := newPrompter(c)

	email, err := flagOrPrompt(c, p, "email", "Correo", false)
	if err != nil {
		return err
	}
	password, err := flagOrPrompt(c, p, "password", "Contraseña", true)
	if err != nil {
		return err
	}

	req := models.LoginRequest{Email: email, Password: password}
	if err = validators.NewAuthFormValidator().Validate(c.Context, req); err != nil {
		return finish(c, validators.Result(err))
	}

	res := app.Services.AuthService.Login(c.Context, req.Email, req.Password)
	if res.OK() && jsonOutput(c) {
		return printJSON(c.App.Writer, struct {
			User                *models.Identity `json:"user"`
			Offline             bool             `json:"offline"`
			OnboardingCompleted bool             `json:"onboardingCompleted"`
			Message             string           `json:"message"`
		}{res.Identity, res.Offline, res.OnboardingCompleted, res.Message})
	}
	return finish(c, res)
}

func RegisterCommand() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "Create an account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Full name (prompted when omitted)"},
			emailFlag,
			passwordFlag,
			&cli.StringFlag{Name: "phone", Usage: "Phone number"},
		},
		Action: register,
	}
}

func register(c *cli.Context) error {
	app, err := getApp(c)
	if err != nil {
		return err
	}
	p := newPrompter(c)

	var f models.RegisterForm
	if f.Name, err = flagOrPrompt(c, p, "name", "Nombre", false); err != nil {
		return err
	}
	if f.Email, err = flagOrPrompt(c, p, "email", "Correo", false); err != nil {
		return err
	}
	if f.Password, err = flagOrPrompt(c, p, "password", "Contraseña", true); err != nil {
		return err
	}
	f.ConfirmPassword = f.Password
	if !c.IsSet("password") {
		if f.ConfirmPassword, err = p.secret("Confirmar contraseña"); err != nil {
			return err
		}
	}

	if err = validators.NewAuthFormValidator().Validate(c.Context, f); err != nil {
		return finish(c, validators.Result(err))
	}

	req := f.Request()
	req.Phone = c.String("phone")
	return finish(c, app.Services.AuthService.Register(c.Context, req))
}

func LogoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "End the session here and on the server",
		Action: func(c *cli.Context) error {
			app, err := getApp(c)
			if err != nil {
				return err
			}
			return finish(c, app.Services.AuthService.Logout(c.Context))
		},
	}
}

func RefreshCommand() *cli.Command {
	return &cli.Command{
		Name:  "refresh",
		Usage: "Exchange the refresh token for new tokens",
		Action: func(c *cli.Context) error {
			app, err := getApp(c)
			if err != nil {
				return err
			}
			return finish(c, app.Services.AuthService.Refresh(c.Context))
		},
	}
}

func PasswdCommand() *cli.Command {
	return &cli.Command{
		Name:   "passwd",
		Usage:  "Change the account password",
		Action: passwd,
	}
}

func passwd(c *cli.Context) error {
	app, err := getApp(c)
	if err != nil {
		return err
	}
	p := newPrompter(c)

	var f models.ChangePasswordForm
	if f.CurrentPassword, err = p.secret("Contraseña actual"); err != nil {
		return err
	}
	if f.NewPassword, err = p.secret("Nueva contraseña"); err != nil {
		return err
	}
	if f.ConfirmPassword, err = p.secret("Confirmar contraseña"); err != nil {
		return err
	}

	if err = validators.NewAuthFormValidator().Validate(c.Context, f); err != nil {
		return finish(c, validators.Result(err))
	}
	return finish(c, app.Services.AuthService.ChangePassword(c.Context, f.CurrentPassword, f.NewPassword))
}

func ResetPasswordCommand() *cli.Command {
	return &cli.Command{
		Name:  "reset-password",
		Usage: "Request a password reset e-mail",
		Flags: []cli.Flag{emailFlag},
		Action: func(c *cli.Context) error {
			app, err := getApp(c)
			if err != nil {
				return err
			}
			email, err := flagOrPrompt(c, newPrompter(c), "email", "Correo", false)
			if err != nil {
				return err
			}
			req := models.PasswordResetRequest{Email: email}
			if err = validators.NewAuthFormValidator().Validate(c.Context, req); err != nil {
				return finish(c, validators.Result(err))
			}
			return finish(c, app.Services.AuthService.RequestPasswordReset(c.Context, req.Email))
		},
	}
}

func WhoAmICommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Show the locally stored session without contacting the API",
		Action: func(c *cli.Context) error {
			app, err := getApp(c)
			if err != nil {
				return err
			}
			snap := app.Session.Snapshot()
			if !snap.Authenticated() {
				return cli.Exit("No hay una sesión activa", exitAuth)
			}

			valid := app.Services.AuthService.IsTokenValid()
			if jsonOutput(c) {
				return printJSON(c.App.Writer, struct {
					User       *models.Identity `json:"user"`
					Offline    bool             `json:"offline"`
					TokenValid bool             `json:"tokenValid"`
				}{snap.Identity, snap.Offline, valid})
			}

			rows := identityRows(snap.Identity)
			rows = append(rows,
				[2]string{"OFFLINE", fmt.Sprint(snap.Offline)},
				[2]string{"TOKEN VALID", fmt.Sprint(valid)},
			)
			return printRows(c.App.Writer, rows)
		},
	}
}
