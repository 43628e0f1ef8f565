// List command shows the contents of one book in insertion order.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <contacts|properties>",
	Short: "List all contacts or all properties",
	Long: `List prints every record of one book in insertion order.

Example:
  housebook list contacts
  housebook list properties --json`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	switch args[0] {
	case "contacts":
		contacts := s.engine.Contacts().All()
		if len(contacts) == 0 && !flagJSON {
			fmt.Println("No contacts")
			return nil
		}
		return printContacts(contacts)
	case "properties":
		properties := s.engine.Properties().All()
		if len(properties) == 0 && !flagJSON {
			fmt.Println("No properties")
			return nil
		}
		return printProperties(properties)
	default:
		return fmt.Errorf("unknown book %q (valid: contacts, properties)", args[0])
	}
}
