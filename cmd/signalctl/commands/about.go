package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// about: the relay's self-description.
func aboutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Show the relay's versions, build, and mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			about, err := cl.About(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("versions: %v\nbuild: %d\nmode: %s\n",
				about.Versions, about.Build, about.Mode)
			for endpoint, caps := range about.Capabilities {
				fmt.Printf("%s: %v\n", endpoint, caps)
			}
			return nil
		},
	}
}
