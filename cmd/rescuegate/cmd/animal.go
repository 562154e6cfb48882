package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rescuegate/rescuegate/internal/config"
)

var animalID string

var getAnimalCmd = &cobra.Command{
	Use:   "get-animal",
	Short: "Fetch one animal's details",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, "get_animal_details", map[string]any{
			"animal_id": animalID,
			"json":      jsonOut,
		}, config.Overrides{})
	},
}

var getContactCmd = &cobra.Command{
	Use:   "get-contact",
	Short: "Fetch an animal's org contact info",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, "get_contact_info", map[string]any{
			"animal_id": animalID,
		}, config.Overrides{})
	},
}

var randomPetSpecies string

var randomPetCmd = &cobra.Command{
	Use:   "random-pet",
	Short: "Fetch one random adoptable pet",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, "get_random_pet", map[string]any{
			"species": randomPetSpecies,
		}, config.Overrides{Species: randomPetSpecies})
	},
}

var compareAnimalIDs []string

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare up to five animals side by side",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, "compare_animals", map[string]any{
			"animal_ids": compareAnimalIDs,
		}, config.Overrides{})
	},
}

func init() {
	getAnimalCmd.Flags().StringVar(&animalID, "animal-id", "", "animal id")
	getContactCmd.Flags().StringVar(&animalID, "animal-id", "", "animal id")
	randomPetCmd.Flags().StringVar(&randomPetSpecies, "species", "", "species slug or name")
	compareCmd.Flags().StringSliceVar(&compareAnimalIDs, "animal-ids", nil, "comma-separated animal ids (max 5)")

	rootCmd.AddCommand(getAnimalCmd, getContactCmd, randomPetCmd, compareCmd)
}
