package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// contacts: contact list, sync, and registration lookups.
func contactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Manage the account's contact list",
	}
	cmd.AddCommand(contactsListCmd(), contactsSyncCmd(), contactsSearchCmd())
	return cmd
}

func contactsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := cl.Contacts.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range cs {
				name := c.Name
				if name == "" {
					name = c.ProfileName
				}
				fmt.Printf("%s  %s\n", c.Recipient, name)
			}
			return nil
		},
	}
}

func contactsSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Push the contact list to linked devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := cl.Contacts.Sync(cmd.Context())
			if err != nil {
				return err
			}
			return report(res)
		},
	}
}

func contactsSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <number>...",
		Short: "Check which numbers are registered with the service",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registered, err := cl.Contacts.Search(cmd.Context(), args)
			if err != nil {
				return err
			}
			for r, ok := range registered {
				fmt.Printf("%s  %t\n", r, ok)
			}
			return nil
		},
	}
}
