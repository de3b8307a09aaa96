package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"signalrest/domain"
)

// send <message> <recipient>...: deliver one message to every recipient.
func sendCmd() *cobra.Command {
	var files []string

	cmd := &cobra.Command{
		Use:   "send <message> <recipient>...",
		Short: "Send a message to one or more recipients",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts domain.SendOptions
			for _, name := range files {
				data, err := os.ReadFile(name)
				if err != nil {
					return err
				}
				opts.Attachments = append(opts.Attachments, domain.Attachment{
					Data:     data,
					Filename: name,
				})
			}

			res, err := cl.Messages.Send(cmd.Context(), args[0], args[1:], opts)
			if err != nil {
				return err
			}
			if res.Ok() {
				fmt.Printf("sent at %d\n", res.Value.Timestamp)
				return nil
			}
			return report(res)
		},
	}
	cmd.Flags().StringArrayVarP(&files, "attach", "a", nil, "attach a file (repeatable)")
	return cmd
}
