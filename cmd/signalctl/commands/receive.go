package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// receive: drain and print pending envelopes.
func receiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "receive",
		Short: "Drain pending messages for the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := cl.Messages.Receive(cmd.Context())
			if err != nil {
				return err
			}
			for _, m := range msgs {
				where := ""
				if m.Group != "" {
					where = fmt.Sprintf(" [group %s]", m.Group)
				}
				fmt.Printf("%d %s%s: %s\n", m.Timestamp, m.Source, where, m.Body)
				for _, id := range m.Attachments {
					fmt.Printf("  attachment %s\n", id)
				}
			}
			return nil
		},
	}
}
