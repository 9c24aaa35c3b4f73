// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// cmdLogin signs in with -u and -p. Without -p the interactive prompt asks
// for the missing credentials.
func (a *App) cmdLogin(ctx context.Context, args []string) error {
	fs := a.newFlagSet("login")
	username := fs.String("u", a.session.Username, "username")
	password := fs.String("p", "", "password, prompted for when empty")
	if ok, err := parseFlags(fs, args, 0); !ok {
		return err
	}

	var (
		session models.LocalSession
		err     error
	)
	if *password == "" {
		session, err = a.prompt.PromptLogin(ctx, *username)
	} else {
		session, err = a.services.AuthService.Login(ctx, models.Credentials{Username: *username, Password: *password})
	}
	if err != nil {
		return err
	}

	a.session = session
	fmt.Fprintf(a.out, "Logged in as %s\n", session.Username)
	return nil
}

func (a *App) cmdLogout(ctx context.Context, args []string) error {
	if ok, err := parseFlags(a.newFlagSet("logout"), args, 0); !ok {
		return err
	}

	if err := a.services.AuthService.Logout(ctx); err != nil {
		return err
	}

	a.session = models.LocalSession{}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) cmdWhoami(_ context.Context, args []string) error {
	if ok, err := parseFlags(a.newFlagSet("whoami"), args, 0); !ok {
		return err
	}

	tw := newTable(a.out)
	tw.row("Username", a.session.Username)
	tw.row("Email", orDash(a.session.Email))
	if !a.session.UpdatedAt.IsZero() {
		tw.row("Session saved", formatTime(a.session.UpdatedAt))
	}
	return tw.Flush()
}

func (a *App) cmdVersion(_ context.Context, args []string) error {
	if ok, err := parseFlags(a.newFlagSet("version"), args, 0); !ok {
		return err
	}

	fmt.Fprintln(a.out, a.buildInfo.String())
	return nil
}
