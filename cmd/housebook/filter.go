// Filter commands narrow the contact and property listings. Supplying
// several criteria widens the result: a record is shown when any one of
// them matches.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fairmont-labs/housebook/pkg/types"
)

var (
	flagFilterCNames     []string
	flagFilterCPhones    []string
	flagFilterCEmails    []string
	flagFilterCAddresses []string
	flagFilterCNotes     []string
	flagFilterCStatuses  []string
	flagFilterCBudgetMin int64
	flagFilterCBudgetMax int64

	flagFilterPAddresses []string
	flagFilterPPostals   []string
	flagFilterPTypes     []string
	flagFilterPStatuses  []string
	flagFilterPBedrooms  []int
	flagFilterPBathrooms []int
	flagFilterPPriceMin  int64
	flagFilterPPriceMax  int64
	flagFilterPAreaMin   int
	flagFilterPAreaMax   int
	flagFilterPOwnerMin  int
	flagFilterPOwnerMax  int
)

var filterContactsCmd = &cobra.Command{
	Use:   "filter-contacts",
	Short: "List contacts matching any of the given criteria",
	Long: `Filter-contacts lists every contact that matches at least one of the
supplied criteria. Text criteria are case-insensitive substring matches,
status is an exact match, and budget bounds are inclusive. With no
criteria every contact is listed.

Example:
  housebook filter-contacts --name alice --status inactive`,
	Args: cobra.NoArgs,
	RunE: runFilterContacts,
}

var filterPropertiesCmd = &cobra.Command{
	Use:   "filter-properties",
	Short: "List properties matching any of the given criteria",
	Long: `Filter-properties lists every property that matches at least one of
the supplied criteria. Text criteria are case-insensitive substring
matches, status is an exact match, and numeric bounds are inclusive.
With no criteria every property is listed.

Example:
  housebook filter-properties --postal 018906 --price-max 1500000`,
	Args: cobra.NoArgs,
	RunE: runFilterProperties,
}

func init() {
	f := filterContactsCmd.Flags()
	f.StringSliceVar(&flagFilterCNames, "name", nil, "name keyword")
	f.StringSliceVar(&flagFilterCPhones, "phone", nil, "phone keyword")
	f.StringSliceVar(&flagFilterCEmails, "email", nil, "email keyword")
	f.StringSliceVar(&flagFilterCAddresses, "address", nil, "address keyword")
	f.StringSliceVar(&flagFilterCNotes, "notes", nil, "notes keyword")
	f.StringSliceVar(&flagFilterCStatuses, "status", nil, "contact status (active or inactive)")
	f.Int64Var(&flagFilterCBudgetMin, "budget-min", 0, "match contacts whose minimum budget is at least this")
	f.Int64Var(&flagFilterCBudgetMax, "budget-max", 0, "match contacts whose maximum budget is at most this")

	p := filterPropertiesCmd.Flags()
	p.StringSliceVar(&flagFilterPAddresses, "address", nil, "address keyword")
	p.StringSliceVar(&flagFilterPPostals, "postal", nil, "postal code keyword")
	p.StringSliceVar(&flagFilterPTypes, "type", nil, "property type keyword")
	p.StringSliceVar(&flagFilterPStatuses, "status", nil, "property status (available or unavailable)")
	p.IntSliceVar(&flagFilterPBedrooms, "bedrooms", nil, "exact bedroom count")
	p.IntSliceVar(&flagFilterPBathrooms, "bathrooms", nil, "exact bathroom count")
	p.Int64Var(&flagFilterPPriceMin, "price-min", 0, "match properties priced at least this")
	p.Int64Var(&flagFilterPPriceMax, "price-max", 0, "match properties priced at most this")
	p.IntVar(&flagFilterPAreaMin, "area-min", 0, "match properties with floor area at least this")
	p.IntVar(&flagFilterPAreaMax, "area-max", 0, "match properties with floor area at most this")
	p.IntVar(&flagFilterPOwnerMin, "owner-min", 0, "match properties whose owner id is at least this")
	p.IntVar(&flagFilterPOwnerMax, "owner-max", 0, "match properties whose owner id is at most this")
}

func runFilterContacts(cmd *cobra.Command, args []string) error {
	filter := types.ContactFilter{
		Names:     flagFilterCNames,
		Phones:    flagFilterCPhones,
		Emails:    flagFilterCEmails,
		Addresses: flagFilterCAddresses,
		Notes:     flagFilterCNotes,
		Statuses:  flagFilterCStatuses,
	}
	if cmd.Flags().Changed("budget-min") {
		filter.BudgetMin = &flagFilterCBudgetMin
	}
	if cmd.Flags().Changed("budget-max") {
		filter.BudgetMax = &flagFilterCBudgetMax
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	matched := s.engine.Contacts().FilteredView(filter.Match)
	if err := printContacts(matched); err != nil {
		return err
	}
	if !flagJSON {
		fmt.Printf("%d contacts matched\n", len(matched))
	}
	return nil
}

func runFilterProperties(cmd *cobra.Command, args []string) error {
	filter := types.PropertyFilter{
		Addresses: flagFilterPAddresses,
		Postals:   flagFilterPPostals,
		Types:     flagFilterPTypes,
		Statuses:  flagFilterPStatuses,
		Bedrooms:  flagFilterPBedrooms,
		Bathrooms: flagFilterPBathrooms,
	}
	if cmd.Flags().Changed("price-min") {
		filter.PriceMin = &flagFilterPPriceMin
	}
	if cmd.Flags().Changed("price-max") {
		filter.PriceMax = &flagFilterPPriceMax
	}
	if cmd.Flags().Changed("area-min") {
		filter.AreaMin = &flagFilterPAreaMin
	}
	if cmd.Flags().Changed("area-max") {
		filter.AreaMax = &flagFilterPAreaMax
	}
	if cmd.Flags().Changed("owner-min") {
		filter.OwnerMin = &flagFilterPOwnerMin
	}
	if cmd.Flags().Changed("owner-max") {
		filter.OwnerMax = &flagFilterPOwnerMax
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	matched := s.engine.Properties().FilteredView(filter.Match)
	if err := printProperties(matched); err != nil {
		return err
	}
	if !flagJSON {
		fmt.Printf("%d properties matched\n", len(matched))
	}
	return nil
}
