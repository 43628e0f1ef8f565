// Add-property command creates a new listing record.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fairmont-labs/housebook/pkg/types"
)

var (
	propertyAddID        string
	propertyAddAddress   string
	propertyAddPostal    string
	propertyAddPrice     int64
	propertyAddBedroom   int
	propertyAddBathroom  int
	propertyAddFloorArea int
	propertyAddType      string
	propertyAddStatus    string
)

var addPropertyCmd = &cobra.Command{
	Use:   "add-property",
	Short: "Add a new property listing",
	Long: `Add-property creates a listing with no owner and empty relationship
sets. Two properties with the same address (case-insensitive) and
postal code are considered duplicates regardless of id.

Example:
  housebook add-property --id 10 --address "123 Clementi Ave" --postal 120300 --price 500000
  housebook add-property --id 11 --address "45 Bukit Timah Rd" --postal 589000 --price 900000 --bedroom 4`,
	RunE: runAddProperty,
}

func init() {
	addPropertyCmd.Flags().StringVar(&propertyAddID, "id", "", "property id (required)")
	addPropertyCmd.Flags().StringVar(&propertyAddAddress, "address", "", "street address (required)")
	addPropertyCmd.Flags().StringVar(&propertyAddPostal, "postal", "", "postal code")
	addPropertyCmd.Flags().Int64Var(&propertyAddPrice, "price", 0, "listing price (required)")
	addPropertyCmd.Flags().IntVar(&propertyAddBedroom, "bedroom", 0, "bedroom count")
	addPropertyCmd.Flags().IntVar(&propertyAddBathroom, "bathroom", 0, "bathroom count")
	addPropertyCmd.Flags().IntVar(&propertyAddFloorArea, "floor-area", 0, "floor area in square meters")
	addPropertyCmd.Flags().StringVar(&propertyAddType, "type", "", "property type (condo, hdb, landed, ...)")
	addPropertyCmd.Flags().StringVar(&propertyAddStatus, "status", types.PropertyStatusAvailable, "listing status (available or unavailable)")
	_ = addPropertyCmd.MarkFlagRequired("id")
	_ = addPropertyCmd.MarkFlagRequired("address")
	_ = addPropertyCmd.MarkFlagRequired("price")
}

func runAddProperty(cmd *cobra.Command, args []string) error {
	id, err := types.ParseID(propertyAddID, types.KindProperty)
	if err != nil {
		return err
	}

	property := types.NewProperty(id, propertyAddAddress, propertyAddPostal, propertyAddPrice)
	property.Bedroom = propertyAddBedroom
	property.Bathroom = propertyAddBathroom
	property.FloorArea = propertyAddFloorArea
	property.Type = propertyAddType
	property.Status = propertyAddStatus
	if err := property.Validate(); err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.engine.Properties().Add(property); err != nil {
		return err
	}
	if err := s.commit(); err != nil {
		return err
	}

	fmt.Printf("Added property: %s\n", formatProperty(property))
	return nil
}
