package cli

import (
	"github.com/spf13/cobra"

	"tier-dashboard/internal/ui"
)

func (a *app) newsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Post to or read the team news feed",
	}

	var content string
	post := &cobra.Command{
		Use:   "post",
		Short: "Post a message to the current team",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.dispatcher
			d.Page().Field(ui.MsgContent).Set(content)
			a.reportFlash(d.PostNews(cmd.Context()), ui.NewsSuccess)
			return nil
		},
	}
	post.Flags().StringVar(&content, "content", "", "message text")

	load := &cobra.Command{
		Use:   "load",
		Short: "Print the current team news timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.dispatcher.LoadNews(cmd.Context())
			return a.printBoard(ui.NewsBoard)
		},
	}

	cmd.AddCommand(post, load)
	return cmd
}
