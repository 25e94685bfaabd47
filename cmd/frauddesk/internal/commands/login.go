package commands

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

type LoginCmd struct {
	Email    string `help:"Account email" required:""`
	Password string `help:"Account password; prompted when omitted" default:""`
	Redirect string `help:"Destination after a successful login" default:""`
}

func (l *LoginCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := buildApp(globals)
	if err != nil {
		return err
	}

	password := l.Password
	if password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := readPassword()
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		password = string(raw)
	}

	if err := app.Sessions.Login(ctx, l.Email, password, l.Redirect); err != nil {
		return err
	}

	st := app.Sessions.State()
	fmt.Printf("Signed in as %s (%s)\n", st.User.FullName(), st.User.Role)
	return nil
}

type LogoutCmd struct{}

func (l *LogoutCmd) Run(_ context.Context, globals *Globals) error {
	app, err := buildApp(globals)
	if err != nil {
		return err
	}

	app.Sessions.Logout()
	fmt.Println("Signed out")
	return nil
}

type WhoamiCmd struct {
	Refresh bool `help:"Re-fetch the account from the server" default:"false"`
}

func (w *WhoamiCmd) Run(ctx context.Context, globals *Globals) error {
	app, err := buildApp(globals)
	if err != nil {
		return err
	}

	st := app.Sessions.State()
	if !st.Authenticated {
		fmt.Println("Not signed in")
		return nil
	}

	user := st.User
	if w.Refresh {
		fresh, err := app.Client.Me(ctx)
		if err != nil {
			return err
		}
		app.Sessions.SetUser(fresh)
		user = fresh
	}

	fmt.Printf("%s <%s>\n", user.FullName(), user.Email)
	fmt.Printf("Role       %s\n", user.Role)
	if user.Department != "" {
		fmt.Printf("Department %s\n", user.Department)
	}
	if user.LastLoginAt != nil {
		fmt.Printf("Last login %s\n", when(*user.LastLoginAt))
	}
	return nil
}
