package commands

import (
	"os"

	"github.com/spf13/cobra"
)

// profile: this account's own profile.
func profileCmd() *cobra.Command {
	var avatarFile string

	cmd := &cobra.Command{
		Use:   "profile <name>",
		Short: "Update the account's profile name and avatar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var avatar []byte
			if avatarFile != "" {
				data, err := os.ReadFile(avatarFile)
				if err != nil {
					return err
				}
				avatar = data
			}
			res, err := cl.Profiles.Update(cmd.Context(), args[0], avatar)
			if err != nil {
				return err
			}
			return report(res)
		},
	}
	cmd.Flags().StringVar(&avatarFile, "avatar", "", "avatar image file")
	return cmd
}
