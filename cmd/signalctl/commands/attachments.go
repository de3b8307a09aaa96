package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// attachments: the relay's attachment store.
func attachmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attachments",
		Short: "Manage attachments stored by the relay",
	}
	cmd.AddCommand(attachmentsListCmd(), attachmentsGetCmd(), attachmentsDeleteCmd())
	return cmd
}

func attachmentsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored attachments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := cl.Attachments.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		},
	}
}

func attachmentsGetCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Download an attachment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := cl.Attachments.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = args[0]
			}
			return os.WriteFile(out, data, 0o644)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default: the attachment id)")
	return cmd
}

func attachmentsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an attachment from the relay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := cl.Attachments.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return report(res)
		},
	}
}
