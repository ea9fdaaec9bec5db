package cli

import (
	"github.com/spf13/cobra"

	"tier-dashboard/internal/ui"
)

func (a *app) assignmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assignments",
		Short: "Assign work to team members",
	}

	var assignee, content, deadline string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an assignment in the current team",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.dispatcher
			d.ChooseAssignTeam(d.Context().Team)
			if assignee != "" {
				d.ChooseAssignMember(assignee)
			}
			d.Page().Field(ui.AssignContent).Set(content)
			d.Page().Field(ui.AssignDeadline).Set(deadline)
			a.reportFlash(d.CreateAssignment(cmd.Context()), ui.AssignSuccess)
			return nil
		},
	}
	create.Flags().StringVar(&assignee, "assignee", "", "member receiving the assignment")
	create.Flags().StringVar(&content, "content", "", "assignment text")
	create.Flags().StringVar(&deadline, "deadline", "", "deadline, YYYY-MM-DD HH:mm:ss")

	cmd.AddCommand(create)
	return cmd
}
