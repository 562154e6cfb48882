package tool

import (
	"context"
	"encoding/json"
	"fmt"
)

// buildDescriptors assembles the fixed tool set. r is the Registry under
// construction, captured by inspect_tool's handler so it can describe its
// siblings without the registry exposing a separate "self" port.
func buildDescriptors(r *Registry) []Descriptor {
	return []Descriptor{
		{
			Name:        "search_adoptable_pets",
			Description: "Search adoptable animals by species, location, and traits.",
			Visibility:  Core,
			Schema:      schemaSearchAdoptablePets,
			Handler:     handleSearchAdoptablePets,
		},
		{
			Name:        "get_animal_details",
			Description: "Fetch the full profile for one adoptable animal by id.",
			Visibility:  Core,
			Schema:      schemaAnimalID,
			Handler:     handleGetAnimalDetails,
		},
		{
			Name:        "inspect_tool",
			Description: "List every registered tool, or describe one tool's full schema.",
			Visibility:  Core,
			Schema:      schemaInspectTool,
			Handler:     inspectToolHandler(r),
		},
		{
			Name:        "list_animals",
			Description: "List recently listed adoptable animals, unfiltered.",
			Visibility:  Hidden,
			Schema:      schemaLimitJSON,
			Handler:     handleListAnimals,
		},
		{
			Name:        "get_random_pet",
			Description: "Fetch one random adoptable animal, optionally scoped to a species.",
			Visibility:  Hidden,
			Schema:      schemaSpeciesOnly,
			Handler:     handleGetRandomPet,
		},
		{
			Name:        "get_contact_info",
			Description: "Fetch the rescue organization's contact info for one animal.",
			Visibility:  Hidden,
			Schema:      schemaAnimalID,
			Handler:     handleGetContactInfo,
		},
		{
			Name:        "compare_animals",
			Description: "Compare up to five animals side by side in a Markdown table.",
			Visibility:  Hidden,
			Schema:      schemaCompareAnimals,
			Handler:     handleCompareAnimals,
		},
		{
			Name:        "search_organizations",
			Description: "Search rescue organizations by location or name.",
			Visibility:  Hidden,
			Schema:      schemaSearchOrganizations,
			Handler:     handleSearchOrganizations,
		},
		{
			Name:        "get_organization_details",
			Description: "Fetch one rescue organization's profile by id.",
			Visibility:  Hidden,
			Schema:      schemaOrgID,
			Handler:     handleGetOrganizationDetails,
		},
		{
			Name:        "list_org_animals",
			Description: "List adoptable animals belonging to one organization.",
			Visibility:  Hidden,
			Schema:      schemaOrgAnimals,
			Handler:     handleListOrgAnimals,
		},
		{
			Name:        "list_adopted_animals",
			Description: "List already-adopted animals near a location.",
			Visibility:  Hidden,
			Schema:      schemaListAdopted,
			Handler:     handleListAdoptedAnimals,
		},
		{
			Name:        "list_species",
			Description: "List every species recognized by the upstream API.",
			Visibility:  Hidden,
			Schema:      schemaEmpty,
			Handler:     handleListSpecies,
		},
		{
			Name:        "list_breeds",
			Description: "List the breeds of one species.",
			Visibility:  Hidden,
			Schema:      schemaSpeciesOnly,
			Handler:     handleListBreeds,
		},
		{
			Name:        "get_breed",
			Description: "Fetch one breed by id.",
			Visibility:  Hidden,
			Schema:      schemaBreedID,
			Handler:     handleGetBreed,
		},
		{
			Name:        "list_metadata",
			Description: "List one metadata kind (colors, patterns, sizes, etc), optionally scoped to a species.",
			Visibility:  Hidden,
			Schema:      schemaListMetadata,
			Handler:     handleListMetadata,
		},
		{
			Name:        "list_metadata_types",
			Description: "List the recognized metadata kinds accepted by list_metadata.",
			Visibility:  Hidden,
			Schema:      schemaEmpty,
			Handler:     handleListMetadataTypes,
		},
	}
}

// inspectToolHandler closes over the registry so inspect_tool can describe
// its siblings without the Deps interface exposing a "self" accessor.
func inspectToolHandler(r *Registry) Handler {
	return func(_ context.Context, _ Deps, raw json.RawMessage) (string, error) {
		var args struct {
			ToolName string `json:"tool_name"`
		}
		if err := decode(raw, &args); err != nil {
			return "", err
		}
		if args.ToolName == "" {
			var b []byte
			names := r.Names()
			summaries := make([]map[string]string, 0, len(names))
			for _, name := range names {
				d, _ := r.Get(name)
				summaries = append(summaries, map[string]string{
					"name":        d.Name,
					"description": d.Description,
				})
			}
			b, err := json.MarshalIndent(summaries, "", "  ")
			if err != nil {
				return "", err
			}
			return string(b), nil
		}

		d, err := r.Describe(args.ToolName)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("## %s\n\n%s\n\n```json\n%s\n```\n", d.Name, d.Description, string(d.Schema)), nil
	}
}
