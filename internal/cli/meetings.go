package cli

import (
	"github.com/spf13/cobra"

	"tier-dashboard/internal/ui"
)

func (a *app) meetingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meetings",
		Short: "Create or list team meetings",
	}

	var content, at string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a meeting for the current team",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.dispatcher.Page()
			p.Field(ui.MeetingContent).Set(content)
			p.Field(ui.MeetingTime).Set(at)
			a.reportFlash(a.dispatcher.CreateMeeting(cmd.Context()), ui.MeetingSuccess)
			return nil
		},
	}
	create.Flags().StringVar(&content, "content", "", "meeting agenda")
	create.Flags().StringVar(&at, "time", "", "meeting time, YYYY-MM-DD HH:mm:ss")

	list := &cobra.Command{
		Use:   "list",
		Short: "Print the meeting timeline of the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.dispatcher.LoadMeetings(cmd.Context())
			return a.printBoard(ui.MeetingBoard)
		},
	}

	cmd.AddCommand(create, list)
	return cmd
}

func (a *app) deadlinesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deadlines",
		Short: "List assignment deadlines",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Print the deadline timeline of the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.dispatcher.LoadDeadlines(cmd.Context())
			return a.printBoard(ui.DeadlineBoard)
		},
	}

	cmd.AddCommand(list)
	return cmd
}
