package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spec-kit/gradebook-console/internal/api/dto"
	"github.com/spec-kit/gradebook-console/internal/session"
)

func newUsersCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage accounts (admin)",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return app.RequireRoute(session.RouteAdminDashboard)
		},
	}

	cmd.AddCommand(
		newUsersListCommand(app),
		newUsersGetCommand(app),
		newUsersRegisterStudentCommand(app),
		newUsersRegisterTeacherCommand(app),
		newUsersDeleteCommand(app),
	)
	return cmd
}

func newUsersListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, err := app.Client.Users.List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(users)
		},
	}
}

func newUsersGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}
			user, err := app.Client.Users.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(user)
		},
	}
}

func newUsersRegisterStudentCommand(app *App) *cobra.Command {
	var req dto.StudentRequest

	cmd := &cobra.Command{
		Use:   "register-student",
		Short: "Register a student account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			student, err := app.Client.Users.RegisterStudent(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(student)
		},
	}

	addUserFlags(cmd, &req.UserRequest)
	cmd.Flags().StringVar(&req.StudentIDNum, "student-id", "", "student ID number (e.g. STU001)")
	_ = cmd.MarkFlagRequired("student-id")
	return cmd
}

func newUsersRegisterTeacherCommand(app *App) *cobra.Command {
	var req dto.TeacherRequest

	cmd := &cobra.Command{
		Use:   "register-teacher",
		Short: "Register a teacher account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			teacher, err := app.Client.Users.RegisterTeacher(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(teacher)
		},
	}

	addUserFlags(cmd, &req.UserRequest)
	cmd.Flags().StringVar(&req.TeacherIDNum, "teacher-id", "", "teacher ID number (e.g. TCH001)")
	_ = cmd.MarkFlagRequired("teacher-id")
	return cmd
}

func newUsersDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}
			if err := app.Client.Users.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}

func addUserFlags(cmd *cobra.Command, req *dto.UserRequest) {
	cmd.Flags().StringVar(&req.Username, "username", "", "account username")
	cmd.Flags().StringVar(&req.Password, "password", "", "initial password")
	cmd.Flags().StringVar(&req.Firstname, "firstname", "", "first name")
	cmd.Flags().StringVar(&req.Lastname, "lastname", "", "last name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("email")
}
