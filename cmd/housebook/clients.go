// Clients command shows every contact associated with one property.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fairmont-labs/housebook/pkg/types"
)

var clientsCmd = &cobra.Command{
	Use:   "clients <property-id>",
	Short: "Show the owner, buyers, and sellers of a property",
	Long: `Clients lists every contact linked to the given property, grouped by
role.

Example:
  housebook clients 10`,
	Args: cobra.ExactArgs(1),
	RunE: runClients,
}

func runClients(cmd *cobra.Command, args []string) error {
	id, err := types.ParseID(args[0], types.KindProperty)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	property, ok := s.engine.Properties().Get(id)
	if !ok {
		return types.NewCommandError("property does not exist", id)
	}

	linked := s.engine.Contacts().FilteredView(func(c types.Contact) bool {
		return property.Linked(c.ID)
	})
	if len(linked) == 0 {
		fmt.Printf("No clients are associated with property %s\n", id)
		return nil
	}

	if flagJSON {
		return printContacts(linked)
	}

	fmt.Printf("Clients associated with property %s:\n", id)
	for _, c := range linked {
		fmt.Printf("  %s%s\n", formatContact(c), roleSuffix(property, c.ID))
	}
	return nil
}

// roleSuffix names the roles the contact holds on the property.
func roleSuffix(p types.Property, contactID types.ID) string {
	var roles []string
	if p.OwnedBy(contactID) {
		roles = append(roles, string(types.RoleOwner))
	}
	if p.Buyers.Contains(contactID) {
		roles = append(roles, string(types.RoleBuyer))
	}
	if p.Sellers.Contains(contactID) {
		roles = append(roles, string(types.RoleSeller))
	}
	out := ""
	for i, r := range roles {
		if i == 0 {
			out = " [" + r
		} else {
			out += ", " + r
		}
	}
	if out != "" {
		out += "]"
	}
	return out
}
