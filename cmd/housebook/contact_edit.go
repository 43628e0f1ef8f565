// Edit-contact command updates scalar fields of an existing contact.
// Relationship sets are carried over untouched; they belong to the
// engine.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fairmont-labs/housebook/pkg/types"
)

var (
	contactEditName      string
	contactEditPhone     string
	contactEditEmail     string
	contactEditAddress   string
	contactEditBudgetMin int64
	contactEditBudgetMax int64
	contactEditNotes     string
	contactEditStatus    string
)

var editContactCmd = &cobra.Command{
	Use:   "edit-contact <id>",
	Short: "Edit an existing contact",
	Long: `Edit-contact replaces the contact record with a copy carrying the
changed fields. Only supplied flags change; the contact keeps its id,
its position in the book, and all its relationships.

Example:
  housebook edit-contact 1 --phone 91234567
  housebook edit-contact 2 --status inactive --notes "moved abroad"`,
	Args: cobra.ExactArgs(1),
	RunE: runEditContact,
}

func init() {
	editContactCmd.Flags().StringVar(&contactEditName, "name", "", "full name")
	editContactCmd.Flags().StringVar(&contactEditPhone, "phone", "", "phone number")
	editContactCmd.Flags().StringVar(&contactEditEmail, "email", "", "email address")
	editContactCmd.Flags().StringVar(&contactEditAddress, "address", "", "home address")
	editContactCmd.Flags().Int64Var(&contactEditBudgetMin, "budget-min", -1, "minimum budget")
	editContactCmd.Flags().Int64Var(&contactEditBudgetMax, "budget-max", -1, "maximum budget")
	editContactCmd.Flags().StringVar(&contactEditNotes, "notes", "", "free-form notes")
	editContactCmd.Flags().StringVar(&contactEditStatus, "status", "", "contact status (active or inactive)")
}

func runEditContact(cmd *cobra.Command, args []string) error {
	id, err := types.ParseID(args[0], types.KindContact)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	current, ok := s.engine.Contacts().Get(id)
	if !ok {
		return types.NewCommandError("contact does not exist", id)
	}

	updated := current.Clone()
	if cmd.Flags().Changed("name") {
		updated.Name = contactEditName
	}
	if cmd.Flags().Changed("phone") {
		updated.Phone = contactEditPhone
	}
	if cmd.Flags().Changed("email") {
		updated.Email = contactEditEmail
	}
	if cmd.Flags().Changed("address") {
		updated.Address = contactEditAddress
	}
	if cmd.Flags().Changed("budget-min") {
		updated.BudgetMin = contactEditBudgetMin
	}
	if cmd.Flags().Changed("budget-max") {
		updated.BudgetMax = contactEditBudgetMax
	}
	if cmd.Flags().Changed("notes") {
		updated.Notes = contactEditNotes
	}
	if cmd.Flags().Changed("status") {
		updated.Status = contactEditStatus
	}
	if err := updated.Validate(); err != nil {
		return err
	}

	if err := s.engine.Contacts().Replace(current, updated); err != nil {
		return err
	}
	if err := s.commit(); err != nil {
		return err
	}

	fmt.Printf("Edited contact: %s\n", formatContact(updated))
	return nil
}
