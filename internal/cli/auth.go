package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spec-kit/gradebook-console/internal/api/dto"
)

func newLoginCommand(app *App) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and open a session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := app.Sessions.Login(cmd.Context(), dto.LoginRequest{
				Username: username,
				Password: password,
			})
			if err != nil {
				return err
			}

			app.Sessions.NavigateByRole()
			fmt.Printf("Signed in as %s, landing at %s\n", user.Username, app.Nav.Current())
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.Sessions.Logout(cmd.Context())
			fmt.Println("Signed out.")
			return nil
		},
	}
}

func newWhoamiCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(_ *cobra.Command, _ []string) error {
			user := app.Sessions.CurrentUser()
			if user == nil || !app.Sessions.IsAuthenticated() {
				fmt.Println("Not signed in.")
				return nil
			}
			return printJSON(user)
		},
	}
}
