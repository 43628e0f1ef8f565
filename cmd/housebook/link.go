// Link and unlink commands drive the relationship engine.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fairmont-labs/housebook/pkg/types"
)

var (
	linkContactIDs  []string
	linkPropertyIDs []string
	linkRole        string

	unlinkContactIDs  []string
	unlinkPropertyIDs []string
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link contacts and properties under a role",
	Long: `Link establishes relationships of one role between every given
contact and every given property. The whole batch is validated before
anything changes: a missing id, a duplicate id, or an unknown role
leaves both books untouched.

Roles: owner (one contact, overwrites the property's owner slot),
buyer, seller.

Example:
  housebook link -c 1 -p 10 -r buyer
  housebook link -c 2 -p 10 -p 11 -r seller
  housebook link -c 3 -p 12 -r owner`,
	RunE: runLink,
}

var unlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Remove relationships between contacts and properties",
	Long: `Unlink removes whatever buyer or seller relationships exist between
the given contacts and properties, and clears a matching owner slot.
Pairs with no relationship are silently skipped; unlinking is
idempotent.

Example:
  housebook unlink -c 1 -p 10`,
	RunE: runUnlink,
}

func init() {
	linkCmd.Flags().StringArrayVarP(&linkContactIDs, "contact", "c", nil, "contact id (repeatable, required)")
	linkCmd.Flags().StringArrayVarP(&linkPropertyIDs, "property", "p", nil, "property id (repeatable, required)")
	linkCmd.Flags().StringVarP(&linkRole, "role", "r", "", "relationship role: owner, buyer, or seller (required)")
	_ = linkCmd.MarkFlagRequired("contact")
	_ = linkCmd.MarkFlagRequired("property")
	_ = linkCmd.MarkFlagRequired("role")

	unlinkCmd.Flags().StringArrayVarP(&unlinkContactIDs, "contact", "c", nil, "contact id (repeatable, required)")
	unlinkCmd.Flags().StringArrayVarP(&unlinkPropertyIDs, "property", "p", nil, "property id (repeatable, required)")
	_ = unlinkCmd.MarkFlagRequired("contact")
	_ = unlinkCmd.MarkFlagRequired("property")
}

func runLink(cmd *cobra.Command, args []string) error {
	contactIDs, err := parseIDs(linkContactIDs, types.KindContact)
	if err != nil {
		return err
	}
	propertyIDs, err := parseIDs(linkPropertyIDs, types.KindProperty)
	if err != nil {
		return err
	}
	role, err := types.ParseRole(linkRole)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	result, err := s.engine.Link(contactIDs, propertyIDs, role)
	if err != nil {
		return err
	}
	if err := s.commit(); err != nil {
		return err
	}

	fmt.Printf("Linked %s: contacts %s, properties %s\n",
		role, types.FormatIDs(contactIDs), types.FormatIDs(propertyIDs))
	return printResult(result.Contacts, result.Properties)
}

func runUnlink(cmd *cobra.Command, args []string) error {
	contactIDs, err := parseIDs(unlinkContactIDs, types.KindContact)
	if err != nil {
		return err
	}
	propertyIDs, err := parseIDs(unlinkPropertyIDs, types.KindProperty)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	result, err := s.engine.Unlink(contactIDs, propertyIDs)
	if err != nil {
		return err
	}
	if err := s.commit(); err != nil {
		return err
	}

	if len(result.Contacts) == 0 && len(result.Properties) == 0 {
		fmt.Println("Nothing to unlink")
		return nil
	}
	fmt.Printf("Unlinked: contacts %s, properties %s\n",
		types.FormatIDs(contactIDs), types.FormatIDs(propertyIDs))
	return printResult(result.Contacts, result.Properties)
}

// printResult shows the records an engine operation rewrote.
func printResult(contacts []types.Contact, properties []types.Property) error {
	if err := printContacts(contacts); err != nil {
		return err
	}
	return printProperties(properties)
}
