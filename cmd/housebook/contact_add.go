// Add-contact command creates a new client record.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fairmont-labs/housebook/pkg/types"
)

var (
	contactAddID        string
	contactAddName      string
	contactAddPhone     string
	contactAddEmail     string
	contactAddAddress   string
	contactAddBudgetMin int64
	contactAddBudgetMax int64
	contactAddNotes     string
	contactAddStatus    string
)

var addContactCmd = &cobra.Command{
	Use:   "add-contact",
	Short: "Add a new contact",
	Long: `Add-contact creates a client record with empty relationship sets.

Two contacts with the same name (case-insensitive) and phone are
considered duplicates regardless of id.

Example:
  housebook add-contact --id 1 --name "Alice Pauline" --phone 94351253
  housebook add-contact --id 2 --name "Benson Meier" --phone 98765432 --budget-max 650000`,
	RunE: runAddContact,
}

func init() {
	addContactCmd.Flags().StringVar(&contactAddID, "id", "", "contact id (required)")
	addContactCmd.Flags().StringVar(&contactAddName, "name", "", "full name (required)")
	addContactCmd.Flags().StringVar(&contactAddPhone, "phone", "", "phone number (required)")
	addContactCmd.Flags().StringVar(&contactAddEmail, "email", "", "email address")
	addContactCmd.Flags().StringVar(&contactAddAddress, "address", "", "home address")
	addContactCmd.Flags().Int64Var(&contactAddBudgetMin, "budget-min", 0, "minimum budget")
	addContactCmd.Flags().Int64Var(&contactAddBudgetMax, "budget-max", 0, "maximum budget")
	addContactCmd.Flags().StringVar(&contactAddNotes, "notes", "", "free-form notes")
	addContactCmd.Flags().StringVar(&contactAddStatus, "status", types.ContactStatusActive, "contact status (active or inactive)")
	_ = addContactCmd.MarkFlagRequired("id")
	_ = addContactCmd.MarkFlagRequired("name")
	_ = addContactCmd.MarkFlagRequired("phone")
}

func runAddContact(cmd *cobra.Command, args []string) error {
	id, err := types.ParseID(contactAddID, types.KindContact)
	if err != nil {
		return err
	}

	contact := types.NewContact(id, contactAddName, contactAddPhone)
	contact.Email = contactAddEmail
	contact.Address = contactAddAddress
	contact.BudgetMin = contactAddBudgetMin
	contact.BudgetMax = contactAddBudgetMax
	contact.Notes = contactAddNotes
	contact.Status = contactAddStatus
	if err := contact.Validate(); err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.engine.Contacts().Add(contact); err != nil {
		return err
	}
	if err := s.commit(); err != nil {
		return err
	}

	fmt.Printf("Added contact: %s\n", formatContact(contact))
	return nil
}
