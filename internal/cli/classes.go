package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spec-kit/gradebook-console/internal/api/dto"
	"github.com/spec-kit/gradebook-console/internal/session"
)

func newClassesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "Manage classes",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List classes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.RequireRoute(session.RouteAdminDashboard); err != nil {
				return err
			}
			classes, err := app.Client.Classes.List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(classes)
		},
	}

	var teacherID string
	mine := &cobra.Command{
		Use:   "mine",
		Short: "List classes for the signed-in teacher or student",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user := app.Sessions.CurrentUser()
			if user == nil {
				return app.RequireRoute(session.RouteTeacherDashboard)
			}
			if user.TeacherIDNum != "" || teacherID != "" {
				id := teacherID
				if id == "" {
					id = user.TeacherIDNum
				}
				classes, err := app.Client.Classes.ListByTeacher(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printJSON(classes)
			}
			classes, err := app.Client.Classes.ListByStudent(cmd.Context(), user.IDNum())
			if err != nil {
				return err
			}
			return printJSON(classes)
		},
	}
	mine.Flags().StringVar(&teacherID, "teacher-id", "", "override teacher ID number")

	var req dto.ClassRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a class (admin)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.RequireRoute(session.RouteAdminDashboard); err != nil {
				return err
			}
			class, err := app.Client.Classes.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(class)
		},
	}
	create.Flags().StringVar(&req.Name, "name", "", "class name")
	create.Flags().StringVar(&req.AcademicYear, "year", "", "academic year (e.g. 2025-2026)")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("year")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a class (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireRoute(session.RouteAdminDashboard); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid class id %q", args[0])
			}
			if err := app.Client.Classes.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}

	cmd.AddCommand(list, mine, create, del)
	return cmd
}
