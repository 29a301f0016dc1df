package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spec-kit/gradebook-console/internal/api/dto"
	"github.com/spec-kit/gradebook-console/internal/session"
)

func newSubjectsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subjects",
		Short: "Manage subjects",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all subjects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			subjects, err := app.Client.Subjects.List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(subjects)
		},
	}

	get := &cobra.Command{
		Use:   "get <code>",
		Short: "Show a subject by code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, err := app.Client.Subjects.GetByCode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(subject)
		},
	}

	var req dto.SubjectRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a subject (admin)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.RequireRoute(session.RouteAdminDashboard); err != nil {
				return err
			}
			subject, err := app.Client.Subjects.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(subject)
		},
	}
	create.Flags().StringVar(&req.SubjectCode, "code", "", "subject code (e.g. MATH101)")
	create.Flags().StringVar(&req.Name, "name", "", "subject name")
	create.Flags().Float64Var(&req.Coefficient, "coefficient", 1, "weighting coefficient")
	create.Flags().StringVar(&req.Description, "description", "", "description")
	_ = create.MarkFlagRequired("code")
	_ = create.MarkFlagRequired("name")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a subject (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireRoute(session.RouteAdminDashboard); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid subject id %q", args[0])
			}
			if err := app.Client.Subjects.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}

	cmd.AddCommand(list, get, create, del)
	return cmd
}
