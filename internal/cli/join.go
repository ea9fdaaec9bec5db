package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) joinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Handle requests to join the current team",
	}

	var userName string
	accept := &cobra.Command{
		Use:   "accept",
		Short: "Accept a user's request to join the current team",
		RunE: func(cmd *cobra.Command, args []string) error {
			row := a.dispatcher.Page().JoinRow(userName)
			a.dispatcher.AcceptJoin(cmd.Context(), row)
			fmt.Fprintf(a.out, "%s\t%s\n", row.User.Value(), row.Button.Label())
			return nil
		},
	}
	accept.Flags().StringVar(&userName, "user-name", "", "user whose request is accepted")

	cmd.AddCommand(accept)
	return cmd
}
