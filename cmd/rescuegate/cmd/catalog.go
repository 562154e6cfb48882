package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rescuegate/rescuegate/internal/config"
)

var (
	catalogSpecies      string
	catalogPostalCode   string
	catalogMiles        int
	catalogLimit        int
	breedID             string
	metadataType        string
	metadataSpecies     string
)

var listAdoptedCmd = &cobra.Command{
	Use:   "list-adopted",
	Short: "List recently adopted animals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, "list_adopted_animals", map[string]any{
			"species":     catalogSpecies,
			"postal_code": catalogPostalCode,
			"miles":       catalogMiles,
			"limit":       catalogLimit,
		}, config.Overrides{Species: catalogSpecies, PostalCode: catalogPostalCode, Miles: catalogMiles})
	},
}

var listSpeciesCmd = &cobra.Command{
	Use:   "list-species",
	Short: "List supported species",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, "list_species", map[string]any{}, config.Overrides{})
	},
}

var listBreedsCmd = &cobra.Command{
	Use:   "list-breeds",
	Short: "List breeds for a species",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, "list_breeds", map[string]any{
			"species": catalogSpecies,
		}, config.Overrides{Species: catalogSpecies})
	},
}

var getBreedCmd = &cobra.Command{
	Use:   "get-breed",
	Short: "Fetch one breed's details",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, "get_breed", map[string]any{
			"breed_id": breedID,
		}, config.Overrides{})
	},
}

var listMetadataCmd = &cobra.Command{
	Use:   "list-metadata",
	Short: "List a metadata category's values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, "list_metadata", map[string]any{
			"metadata_type": metadataType,
			"species":       metadataSpecies,
		}, config.Overrides{})
	},
}

var listMetadataTypesCmd = &cobra.Command{
	Use:   "list-metadata-types",
	Short: "List available metadata category names",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, "list_metadata_types", map[string]any{}, config.Overrides{})
	},
}

var listAnimalsCmd = &cobra.Command{
	Use:   "list-animals",
	Short: "List recently listed adoptable animals, unfiltered",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, "list_animals", map[string]any{
			"limit": catalogLimit,
			"json":  jsonOut,
		}, config.Overrides{})
	},
}

func init() {
	listAdoptedCmd.Flags().StringVar(&catalogSpecies, "species", "", "species slug or name")
	listAdoptedCmd.Flags().StringVar(&catalogPostalCode, "postal-code", "", "center postal code")
	listAdoptedCmd.Flags().IntVar(&catalogMiles, "miles", 0, "search radius in miles")
	listAdoptedCmd.Flags().IntVar(&catalogLimit, "limit", 0, "max results")

	listBreedsCmd.Flags().StringVar(&catalogSpecies, "species", "", "species slug or name")
	getBreedCmd.Flags().StringVar(&breedID, "breed-id", "", "breed id")

	listMetadataCmd.Flags().StringVar(&metadataType, "metadata-type", "", "colors, patterns, qualities, species, breeds, sizes, ages, sexes, sort-options")
	listMetadataCmd.Flags().StringVar(&metadataSpecies, "species", "", "scope the metadata to one species")

	listAnimalsCmd.Flags().IntVar(&catalogLimit, "limit", 0, "max results")

	rootCmd.AddCommand(listAdoptedCmd, listSpeciesCmd, listBreedsCmd, getBreedCmd, listMetadataCmd, listMetadataTypesCmd, listAnimalsCmd)
}
