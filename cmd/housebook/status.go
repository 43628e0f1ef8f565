// Sold and unsold commands flip listing statuses in strict batches.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fairmont-labs/housebook/pkg/types"
)

var (
	soldPropertyIDs   []string
	unsoldPropertyIDs []string
)

var soldCmd = &cobra.Command{
	Use:   "sold",
	Short: "Mark properties as sold (unavailable)",
	Long: `Sold marks every given property unavailable. The batch is strict:
any id that does not exist, or that is already unavailable, rejects
the whole batch and no property changes.

Example:
  housebook sold -p 7 -p 33`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChangeStatus(soldPropertyIDs, types.PropertyStatusUnavailable, "sold")
	},
}

var unsoldCmd = &cobra.Command{
	Use:   "unsold",
	Short: "Mark properties as unsold (available)",
	Long: `Unsold marks every given property available again, under the same
strict all-or-nothing batch contract as sold.

Example:
  housebook unsold -p 7 -p 33`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChangeStatus(unsoldPropertyIDs, types.PropertyStatusAvailable, "unsold")
	},
}

func init() {
	soldCmd.Flags().StringArrayVarP(&soldPropertyIDs, "property", "p", nil, "property id (repeatable, required)")
	_ = soldCmd.MarkFlagRequired("property")

	unsoldCmd.Flags().StringArrayVarP(&unsoldPropertyIDs, "property", "p", nil, "property id (repeatable, required)")
	_ = unsoldCmd.MarkFlagRequired("property")
}

func runChangeStatus(rawIDs []string, target, label string) error {
	ids, err := parseIDs(rawIDs, types.KindProperty)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	affected, err := s.engine.ChangeStatus(ids, target)
	if err != nil {
		return err
	}
	if err := s.commit(); err != nil {
		return err
	}

	fmt.Printf("Marked properties as %s: %s\n", label, types.FormatIDs(affected))
	return nil
}
