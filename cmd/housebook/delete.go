// Delete commands remove a contact or property after cascading through
// every relationship that references it.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fairmont-labs/housebook/pkg/types"
)

var deleteContactCmd = &cobra.Command{
	Use:   "delete-contact <id>",
	Short: "Delete a contact and all its relationships",
	Long: `Delete-contact removes the contact after unlinking it from every
property that references it. Owner slots pointing at the contact are
cleared.

Example:
  housebook delete-contact 1`,
	Args: cobra.ExactArgs(1),
	RunE: runDeleteContact,
}

var deletePropertyCmd = &cobra.Command{
	Use:   "delete-property <id>",
	Short: "Delete a property and all its relationships",
	Long: `Delete-property removes the listing after unlinking every contact
that references it as buyer, seller, or owner.

Example:
  housebook delete-property 10`,
	Args: cobra.ExactArgs(1),
	RunE: runDeleteProperty,
}

func runDeleteContact(cmd *cobra.Command, args []string) error {
	id, err := types.ParseID(args[0], types.KindContact)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.engine.DeleteContact(id); err != nil {
		return err
	}
	if err := s.commit(); err != nil {
		return err
	}

	fmt.Printf("Deleted contact %s\n", id)
	return nil
}

func runDeleteProperty(cmd *cobra.Command, args []string) error {
	id, err := types.ParseID(args[0], types.KindProperty)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.engine.DeleteProperty(id); err != nil {
		return err
	}
	if err := s.commit(); err != nil {
		return err
	}

	fmt.Printf("Deleted property %s\n", id)
	return nil
}
