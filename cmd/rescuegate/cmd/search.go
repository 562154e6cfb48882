package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rescuegate/rescuegate/internal/config"
)

var searchArgsFlags struct {
	species          string
	postalCode       string
	miles            int
	goodWithChildren bool
	goodWithDogs     bool
	goodWithCats     bool
	houseTrained     bool
	specialNeeds     bool
	needsFoster      bool
	color            string
	pattern          string
	sort             string
	limit            int
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search adoptable pets",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := searchArgsFlags
		payload := map[string]any{
			"species":     f.species,
			"postal_code": f.postalCode,
			"miles":       f.miles,
			"color":       f.color,
			"pattern":     f.pattern,
			"sort":        f.sort,
			"json":        jsonOut,
		}
		setIfFlagged(cmd, "good-with-children", &payload, "good_with_children", f.goodWithChildren)
		setIfFlagged(cmd, "good-with-dogs", &payload, "good_with_dogs", f.goodWithDogs)
		setIfFlagged(cmd, "good-with-cats", &payload, "good_with_cats", f.goodWithCats)
		setIfFlagged(cmd, "house-trained", &payload, "house_trained", f.houseTrained)
		setIfFlagged(cmd, "special-needs", &payload, "special_needs", f.specialNeeds)
		setIfFlagged(cmd, "needs-foster", &payload, "needs_foster", f.needsFoster)
		if cmd.Flags().Changed("limit") {
			payload["limit"] = f.limit
		}

		return runTool(cmd, "search_adoptable_pets", payload, config.Overrides{
			PostalCode: f.postalCode,
			Miles:      f.miles,
			Species:    f.species,
		})
	},
}

// setIfFlagged only includes a tri-state boolean filter when the caller
// explicitly passed the flag, so an unset flag means "no preference"
// rather than "must be false".
func setIfFlagged(cmd *cobra.Command, flag string, payload *map[string]any, key string, val bool) {
	if cmd.Flags().Changed(flag) {
		(*payload)[key] = val
	}
}

func init() {
	f := &searchArgsFlags
	searchCmd.Flags().StringVar(&f.species, "species", "", "species slug or name")
	searchCmd.Flags().StringVar(&f.postalCode, "postal-code", "", "center postal code")
	searchCmd.Flags().IntVar(&f.miles, "miles", 0, "search radius in miles")
	searchCmd.Flags().BoolVar(&f.goodWithChildren, "good-with-children", false, "filter: good with children")
	searchCmd.Flags().BoolVar(&f.goodWithDogs, "good-with-dogs", false, "filter: good with dogs")
	searchCmd.Flags().BoolVar(&f.goodWithCats, "good-with-cats", false, "filter: good with cats")
	searchCmd.Flags().BoolVar(&f.houseTrained, "house-trained", false, "filter: house trained")
	searchCmd.Flags().BoolVar(&f.specialNeeds, "special-needs", false, "filter: special needs")
	searchCmd.Flags().BoolVar(&f.needsFoster, "needs-foster", false, "filter: needs foster")
	searchCmd.Flags().StringVar(&f.color, "color", "", "color substring filter")
	searchCmd.Flags().StringVar(&f.pattern, "pattern", "", "coat pattern substring filter")
	searchCmd.Flags().StringVar(&f.sort, "sort", "", "Newest, Distance, or Random")
	searchCmd.Flags().IntVar(&f.limit, "limit", 0, "max results (1-100)")
	rootCmd.AddCommand(searchCmd)
}
