package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"signalrest/domain"
)

// groups: list, create, and mutate group conversations.
func groupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Manage group conversations",
	}
	cmd.AddCommand(
		groupsListCmd(),
		groupsCreateCmd(),
		groupsMembersCmd(),
		groupsAdminsCmd(),
		groupsQuitCmd(),
	)
	return cmd
}

func groupsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gs, err := cl.Groups.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, g := range gs {
				fmt.Printf("%s  %s (%d members, %d admins)\n",
					g.ID, g.Name, len(g.Members), len(g.Admins))
			}
			return nil
		},
	}
}

func groupsCreateCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create <name> <member>...",
		Short: "Create a group with the given members",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := cl.Groups.Create(cmd.Context(), args[0], args[1:],
				domain.CreateGroupOptions{Description: description})
			if err != nil {
				return err
			}
			if res.Ok() {
				fmt.Println(res.Value)
				return nil
			}
			return report(res)
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "group description")
	return cmd
}

func groupsMembersCmd() *cobra.Command {
	var remove bool

	cmd := &cobra.Command{
		Use:   "members <group-id> <member>...",
		Short: "Add members to a group (or remove with --remove)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			edit := cl.Groups.AddMembers
			if remove {
				edit = cl.Groups.RemoveMembers
			}
			res, err := edit(cmd.Context(), args[0], args[1:])
			if err != nil {
				return err
			}
			return report(res)
		},
	}
	cmd.Flags().BoolVar(&remove, "remove", false, "remove instead of add")
	return cmd
}

func groupsAdminsCmd() *cobra.Command {
	var remove bool

	cmd := &cobra.Command{
		Use:   "admins <group-id> <member>...",
		Short: "Promote members to admin (or demote with --remove)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			edit := cl.Groups.AddAdmins
			if remove {
				edit = cl.Groups.RemoveAdmins
			}
			res, err := edit(cmd.Context(), args[0], args[1:])
			if err != nil {
				return err
			}
			return report(res)
		},
	}
	cmd.Flags().BoolVar(&remove, "remove", false, "demote instead of promote")
	return cmd
}

func groupsQuitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quit <group-id>",
		Short: "Leave a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := cl.Groups.Quit(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return report(res)
		},
	}
}
