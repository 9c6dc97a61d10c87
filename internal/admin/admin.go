// Package admin implements the account management commands run next to the server.
package admin

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"acronym-finder/internal/managers"
	"acronym-finder/internal/repositories"
	"acronym-finder/internal/schemas"
	"acronym-finder/internal/utils"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

var (
	ErrUsage            = errors.New("usage: admin useradd -username NAME [-first F] [-last L] | admin userdel -username NAME")
	errPasswordMismatch = errors.New("passwords do not match")
)

// App runs the admin commands against a user store.
type App struct {
	Users     repositories.UserRepository
	Passwords managers.PasswordMgr
	Out       io.Writer
}

func NewApp(users repositories.UserRepository, passwords managers.PasswordMgr) *App {
	return &App{
		Users:     users,
		Passwords: passwords,
		Out:       os.Stdout,
	}
}

// Run dispatches args[0] to its subcommand.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}

	switch args[0] {
	case "useradd":
		return a.userAdd(ctx, args[1:])
	case "userdel":
		return a.userDel(ctx, args[1:])
	default:
		return ErrUsage
	}
}

func (a *App) userAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("useradd", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	username := fs.String("username", "", "username of the new account")
	firstName := fs.String("first", "", "first name")
	lastName := fs.String("last", "", "last name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Same rules as the registration endpoint. The password is checked once it was typed.
	request := &schemas.RegistrationRequest{
		Username:  *username,
		FirstName: *firstName,
		LastName:  *lastName,
	}
	validator := utils.GetValidator()
	if err := validator.SanitizeData(request); err != nil {
		return errors.New(utils.ValidationErrorFor(err).Message)
	}
	if err := validator.Validate.StructExcept(request, "Password"); err != nil {
		return errors.New(utils.ValidationErrorFor(err).Message)
	}

	password, err := a.promptPassword()
	if err != nil {
		return err
	}
	request.Password = password
	if err := validator.Validate.StructPartial(request, "Password"); err != nil {
		return errors.New(utils.ValidationErrorFor(err).Message)
	}

	digest, err := a.Passwords.HashPassword(request.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &schemas.User{
		Username:  request.Username,
		Password:  digest,
		FirstName: request.FirstName,
		LastName:  request.LastName,
	}
	if err := a.Users.CreateUser(ctx, user); err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "Created user %s (%s)\n", user.Username, user.ID)
	return nil
}

func (a *App) userDel(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("userdel", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	username := fs.String("username", "", "username of the account to delete")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		return ErrUsage
	}

	if err := a.Users.DeleteUserByUsername(ctx, *username); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("user %s does not exist", *username)
		}
		return err
	}

	fmt.Fprintf(a.Out, "Deleted user %s\n", *username)
	return nil
}

// promptPassword reads the password twice without echo.
func (a *App) promptPassword() (string, error) {
	fmt.Fprint(a.Out, "Enter password: ")
	first, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(a.Out)
	if err != nil {
		return "", err
	}

	fmt.Fprint(a.Out, "Repeat password: ")
	second, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(a.Out)
	if err != nil {
		return "", err
	}

	if !bytes.Equal(first, second) {
		return "", errPasswordMismatch
	}
	return string(first), nil
}
