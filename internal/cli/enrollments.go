package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spec-kit/gradebook-console/internal/api/dto"
	"github.com/spec-kit/gradebook-console/internal/session"
)

func newEnrollmentsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enrollments",
		Short: "Manage enrollments",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all enrollments (admin, teacher)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			enrollments, err := app.Client.Enrollments.List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(enrollments)
		},
	}

	byStudent := &cobra.Command{
		Use:   "student <studentIdNum>",
		Short: "List a student's enrollments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enrollments, err := app.Client.Enrollments.ListByStudent(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(enrollments)
		},
	}

	var req dto.EnrollmentRequest
	add := &cobra.Command{
		Use:   "add",
		Short: "Enroll a student (admin)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.RequireRoute(session.RouteAdminDashboard); err != nil {
				return err
			}
			enrollment, err := app.Client.Enrollments.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(enrollment)
		},
	}
	add.Flags().StringVar(&req.StudentIDNum, "student", "", "student ID number")
	add.Flags().Int64Var(&req.ClassID, "class", 0, "class ID")
	add.Flags().StringVar(&req.SubjectCode, "subject", "", "subject code")
	_ = add.MarkFlagRequired("student")
	_ = add.MarkFlagRequired("class")
	_ = add.MarkFlagRequired("subject")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an enrollment (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireRoute(session.RouteAdminDashboard); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid enrollment id %q", args[0])
			}
			if err := app.Client.Enrollments.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}

	cmd.AddCommand(list, byStudent, add, del)
	return cmd
}
