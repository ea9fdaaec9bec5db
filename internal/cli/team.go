package cli

import (
	"github.com/spf13/cobra"

	"tier-dashboard/internal/ui"
)

func (a *app) teamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage teams",
	}

	var name, intro string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a team led by the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.dispatcher.Page()
			p.Field(ui.TeamCreateName).Set(name)
			p.Field(ui.TeamCreateIntro).Set(intro)
			a.reportFlash(a.dispatcher.CreateTeam(cmd.Context()), ui.TeamCreateSuccess)
			return nil
		},
	}
	create.Flags().StringVar(&name, "name", "", "team name")
	create.Flags().StringVar(&intro, "intro", "", "team introduction")

	cmd.AddCommand(create)
	return cmd
}

func (a *app) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Load the meeting and deadline timelines like the dashboard page does",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.dispatcher.Ready(cmd.Context())
			if err := a.printBoard(ui.MeetingBoard); err != nil {
				return err
			}
			return a.printBoard(ui.DeadlineBoard)
		},
	}
}
