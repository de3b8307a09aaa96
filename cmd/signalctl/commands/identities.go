package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"signalrest/domain"
)

// identities: list remote identities and raise their trust level.
func identitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identities",
		Short: "Inspect and trust remote identities",
	}
	cmd.AddCommand(identitiesListCmd(), identitiesTrustCmd())
	return cmd
}

func identitiesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all identities the relay has seen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := cl.Identities.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Printf("%s  %s  %s\n", id.Recipient, id.Trust, id.Fingerprint)
			}
			return nil
		},
	}
}

func identitiesTrustCmd() *cobra.Command {
	var trustAll bool

	cmd := &cobra.Command{
		Use:   "trust <recipient> [safety-number]",
		Short: "Verify a recipient's safety number",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var fingerprint domain.Fingerprint
			if len(args) == 2 {
				fingerprint = domain.Fingerprint(args[1])
			}
			if !trustAll && fingerprint == "" {
				return fmt.Errorf("pass a safety number or --all-known")
			}
			res, err := cl.Identities.Trust(cmd.Context(), args[0], fingerprint,
				domain.TrustOptions{TrustAllKnown: trustAll})
			if err != nil {
				return err
			}
			if res.Ok() {
				fmt.Printf("%s is now %s\n", res.Value.Recipient, res.Value.Trust)
				return nil
			}
			return report(res)
		},
	}
	cmd.Flags().BoolVar(&trustAll, "all-known", false, "trust all keys the relay has seen")
	return cmd
}
