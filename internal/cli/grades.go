package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/spec-kit/gradebook-console/internal/api/dto"
	"github.com/spec-kit/gradebook-console/internal/domain"
	"github.com/spec-kit/gradebook-console/internal/session"
)

func newGradesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grades",
		Short: "Record and review grades",
	}

	cmd.AddCommand(
		newGradesMineCommand(app),
		newGradesStudentCommand(app),
		newGradesSubjectCommand(app),
		newGradesAddCommand(app),
		newGradesDeleteCommand(app),
		newGradesAverageCommand(app),
	)
	return cmd
}

// newGradesMineCommand is the student dashboard's data load: own grades
// plus the overall weighted average.
func newGradesMineCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "Show the signed-in student's grades and overall average",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.RequireRoute(session.RouteStudentDashboard); err != nil {
				return err
			}
			studentID := app.Sessions.CurrentUser().IDNum()

			grades, err := app.Client.Grades.ListByStudent(cmd.Context(), studentID)
			if err != nil {
				return err
			}
			if err := printJSON(grades); err != nil {
				return err
			}

			average, err := app.Client.Grades.StudentOverallAverage(cmd.Context(), studentID)
			if err != nil {
				return err
			}
			fmt.Printf("Overall average: %.2f\n", average)
			return nil
		},
	}
}

func newGradesStudentCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "student <studentIdNum>",
		Short: "List a student's grades",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grades, err := app.Client.Grades.ListByStudent(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(grades)
		},
	}
}

func newGradesSubjectCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "subject <subjectCode>",
		Short: "List all grades in a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grades, err := app.Client.Grades.ListBySubject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(grades)
		},
	}
}

func newGradesAddCommand(app *App) *cobra.Command {
	var req dto.GradeRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a grade (teacher, admin)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.RequireRoles(session.RouteTeacherDashboard, domain.RoleTeacher, domain.RoleAdmin); err != nil {
				return err
			}
			if req.Date == "" {
				req.Date = time.Now().Format("2006-01-02")
			}
			if req.RecordedBy == "" {
				req.RecordedBy = app.Sessions.CurrentUser().IDNum()
			}
			grade, err := app.Client.Grades.Add(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(grade)
		},
	}

	cmd.Flags().Float64Var(&req.Value, "value", 0, "grade value")
	cmd.Flags().StringVar(&req.Date, "date", "", "ISO date (defaults to today)")
	cmd.Flags().StringVar(&req.Comment, "comment", "", "optional comment")
	cmd.Flags().StringVar(&req.StudentIDNum, "student", "", "student ID number")
	cmd.Flags().StringVar(&req.SubjectCode, "subject", "", "subject code")
	_ = cmd.MarkFlagRequired("value")
	_ = cmd.MarkFlagRequired("student")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

func newGradesDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a grade (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.RequireRoute(session.RouteAdminDashboard); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid grade id %q", args[0])
			}
			if err := app.Client.Grades.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}

func newGradesAverageCommand(app *App) *cobra.Command {
	var studentID, subjectCode string

	cmd := &cobra.Command{
		Use:   "average",
		Short: "Compute averages by student, subject, or both",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			switch {
			case studentID != "" && subjectCode != "":
				avg, err := app.Client.Grades.StudentSubjectAverage(ctx, studentID, subjectCode)
				if err != nil {
					return err
				}
				fmt.Printf("%.2f\n", avg)
			case studentID != "":
				avg, err := app.Client.Grades.StudentOverallAverage(ctx, studentID)
				if err != nil {
					return err
				}
				fmt.Printf("%.2f\n", avg)
			case subjectCode != "":
				avg, err := app.Client.Grades.SubjectAverage(ctx, subjectCode)
				if err != nil {
					return err
				}
				fmt.Printf("%.2f\n", avg)
			default:
				return fmt.Errorf("at least one of --student or --subject is required")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&studentID, "student", "", "student ID number")
	cmd.Flags().StringVar(&subjectCode, "subject", "", "subject code")
	return cmd
}
