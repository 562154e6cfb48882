package tool

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/rescuegate/rescuegate/internal/errs"
	"github.com/rescuegate/rescuegate/internal/format"
	"github.com/rescuegate/rescuegate/internal/rescuegroups"
)

// decode unmarshals rawArgs into dst, treating an absent arguments object
// as an empty one rather than an error.
func decode(rawArgs json.RawMessage, dst any) error {
	if len(rawArgs) == 0 {
		return nil
	}
	if err := json.Unmarshal(rawArgs, dst); err != nil {
		return errs.Validation("arguments", "invalid arguments: %v", err)
	}
	return nil
}

// rawOrFormatted returns the JSON encoding of doc when raw is requested,
// otherwise applies formatter.
func rawOrFormatted(doc rescuegroups.Doc, raw bool, formatter func(rescuegroups.Doc) string) (string, error) {
	if raw {
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", errs.Internal("encode result: %v", err)
		}
		return string(b), nil
	}
	return formatter(doc), nil
}

type searchArgs struct {
	Species          string `json:"species"`
	PostalCode       string `json:"postal_code"`
	Miles            int    `json:"miles"`
	GoodWithChildren *bool  `json:"good_with_children"`
	GoodWithDogs     *bool  `json:"good_with_dogs"`
	GoodWithCats     *bool  `json:"good_with_cats"`
	HouseTrained     *bool  `json:"house_trained"`
	SpecialNeeds     *bool  `json:"special_needs"`
	NeedsFoster      *bool  `json:"needs_foster"`
	Color            string `json:"color"`
	Pattern          string `json:"pattern"`
	Sort             string `json:"sort"`
	Limit            *int   `json:"limit"`
	IncludeOrgs      bool   `json:"include_orgs"`
	JSON             bool   `json:"json"`
}

func (a searchArgs) withDefaults(s Deps) rescuegroups.SearchFilters {
	settings := s.Settings()
	limit := 20
	if a.Limit != nil {
		limit = *a.Limit
	}
	f := rescuegroups.SearchFilters{
		Species:          a.Species,
		PostalCode:       a.PostalCode,
		Miles:            a.Miles,
		GoodWithChildren: a.GoodWithChildren,
		GoodWithDogs:     a.GoodWithDogs,
		GoodWithCats:     a.GoodWithCats,
		HouseTrained:     a.HouseTrained,
		SpecialNeeds:     a.SpecialNeeds,
		NeedsFoster:      a.NeedsFoster,
		Color:            a.Color,
		Pattern:          a.Pattern,
		Sort:             a.Sort,
		Limit:            limit,
		IncludeOrgs:      a.IncludeOrgs,
	}
	if f.Species == "" {
		f.Species = settings.Species
	}
	if f.PostalCode == "" {
		f.PostalCode = settings.PostalCode
	}
	if f.Miles == 0 {
		f.Miles = settings.Miles
	}
	return f
}

func handleSearchAdoptablePets(ctx context.Context, deps Deps, raw json.RawMessage) (string, error) {
	var args searchArgs
	if err := decode(raw, &args); err != nil {
		return "", err
	}
	if args.Limit != nil && *args.Limit <= 0 {
		return "", errs.Validation("limit", "limit must be a positive integer")
	}
	doc, err := deps.Client().SearchPets(ctx, args.withDefaults(deps))
	if err != nil {
		return "", err
	}
	return rawOrFormatted(doc, args.JSON, format.AnimalList)
}

func handleListAnimals(ctx context.Context, deps Deps, raw json.RawMessage) (string, error) {
	var args struct {
		Limit int  `json:"limit"`
		JSON  bool `json:"json"`
	}
	if err := decode(raw, &args); err != nil {
		return "", err
	}
	limit := args.Limit
	if limit == 0 {
		limit = 20
	}
	doc, err := deps.Client().ListPets(ctx, limit)
	if err != nil {
		return "", err
	}
	return rawOrFormatted(doc, args.JSON, format.AnimalList)
}

type animalArgs struct {
	AnimalID string `json:"animal_id"`
	JSON     bool   `json:"json"`
}

func handleGetAnimalDetails(ctx context.Context, deps Deps, raw json.RawMessage) (string, error) {
	var args animalArgs
	if err := decode(raw, &args); err != nil {
		return "", err
	}
	if args.AnimalID == "" {
		return "", errs.Validation("animal_id", "animal_id is required")
	}
	doc, err := deps.Client().GetAnimal(ctx, args.AnimalID)
	if err != nil {
		return "", err
	}
	return rawOrFormatted(doc, args.JSON, format.Animal)
}

func handleGetRandomPet(ctx context.Context, deps Deps, raw json.RawMessage) (string, error) {
	var args struct {
		Species string `json:"species"`
	}
	if err := decode(raw, &args); err != nil {
		return "", err
	}
	species := args.Species
	if species == "" {
		species = deps.Settings().Species
	}
	doc, err := deps.Client().SearchPets(ctx, rescuegroups.SearchFilters{
		Species: species,
		Sort:    "Random",
		Limit:   1,
	})
	if err != nil {
		return "", err
	}
	return format.Animal(doc), nil
}

func handleGetContactInfo(ctx context.Context, deps Deps, raw json.RawMessage) (string, error) {
	var args animalArgs
	if err := decode(raw, &args); err != nil {
		return "", err
	}
	if args.AnimalID == "" {
		return "", errs.Validation("animal_id", "animal_id is required")
	}
	doc, err := deps.Client().GetContact(ctx, args.AnimalID)
	if err != nil {
		return "", err
	}
	return rawOrFormatted(doc, args.JSON, format.Contact)
}

const maxCompareAnimals = 5

func handleCompareAnimals(ctx context.Context, deps Deps, raw json.RawMessage) (string, error) {
	var args struct {
		AnimalIDs []string `json:"animal_ids"`
	}
	if err := decode(raw, &args); err != nil {
		return "", err
	}
	if len(args.AnimalIDs) == 0 {
		return "", errs.Validation("animal_ids", "animal_ids is required")
	}
	if len(args.AnimalIDs) > maxCompareAnimals {
		return "", errs.Validation("animal_ids", "at most %d animal ids may be compared", maxCompareAnimals)
	}

	// Fan out concurrently — the limiter bounds actual upstream concurrency,
	// and a cold cache for N distinct ids is exactly the single-flight
	// fan-out the design notes call "preferable if the limiter permits".
	results := make(map[string]rescuegroups.Doc, len(args.AnimalIDs))
	errors := make(map[string]error, len(args.AnimalIDs))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, id := range args.AnimalIDs {
		id := id
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, err := deps.Client().GetAnimal(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errors[id] = err
				return
			}
			results[id] = doc
		}()
	}
	wg.Wait()

	if len(results) == 0 {
		for _, err := range errors {
			return "", err
		}
	}

	return format.Compare(results, args.AnimalIDs), nil
}

func handleSearchOrganizations(ctx context.Context, deps Deps, raw json.RawMessage) (string, error) {
	var args struct {
		PostalCode string `json:"postal_code"`
		Miles      int    `json:"miles"`
		Query      string `json:"query"`
		Limit      int    `json:"limit"`
	}
	if err := decode(raw, &args); err != nil {
		return "", err
	}
	settings := deps.Settings()
	if args.PostalCode == "" {
		args.PostalCode = settings.PostalCode
	}
	if args.Miles == 0 {
		args.Miles = settings.Miles
	}
	limit := args.Limit
	if limit == 0 {
		limit = 20
	}
	doc, err := deps.Client().SearchOrgs(ctx, args.PostalCode, args.Query, args.Miles, limit)
	if err != nil {
		return "", err
	}
	return format.OrgList(doc), nil
}

func handleGetOrganizationDetails(ctx context.Context, deps Deps, raw json.RawMessage) (string, error) {
	var args struct {
		OrgID string `json:"org_id"`
	}
	if err := decode(raw, &args); err != nil {
		return "", err
	}
	if args.OrgID == "" {
		return "", errs.Validation("org_id", "org_id is required")
	}
	doc, err := deps.Client().GetOrg(ctx, args.OrgID)
	if err != nil {
		return "", err
	}
	return format.Org(doc), nil
}

func handleListOrgAnimals(ctx context.Context, deps Deps, raw json.RawMessage) (string, error) {
	var args struct {
		OrgID string `json:"org_id"`
		Limit int    `json:"limit"`
	}
	if err := decode(raw, &args); err != nil {
		return "", err
	}
	if args.OrgID == "" {
		return "", errs.Validation("org_id", "org_id is required")
	}
	limit := args.Limit
	if limit == 0 {
		limit = 20
	}
	doc, err := deps.Client().ListOrgAnimals(ctx, args.OrgID, limit)
	if err != nil {
		return "", err
	}
	return format.AnimalList(doc), nil
}

func handleListAdoptedAnimals(ctx context.Context, deps Deps, raw json.RawMessage) (string, error) {
	var args struct {
		Species    string `json:"species"`
		PostalCode string `json:"postal_code"`
		Miles      int    `json:"miles"`
		Limit      int    `json:"limit"`
	}
	if err := decode(raw, &args); err != nil {
		return "", err
	}
	settings := deps.Settings()
	if args.Species == "" {
		args.Species = settings.Species
	}
	if args.PostalCode == "" {
		args.PostalCode = settings.PostalCode
	}
	if args.Miles == 0 {
		args.Miles = settings.Miles
	}
	limit := args.Limit
	if limit == 0 {
		limit = 20
	}
	doc, err := deps.Client().ListAdopted(ctx, args.Species, args.PostalCode, args.Miles, limit)
	if err != nil {
		return "", err
	}
	return format.AnimalList(doc), nil
}

func handleListSpecies(ctx context.Context, deps Deps, _ json.RawMessage) (string, error) {
	doc, err := deps.Client().ListSpecies(ctx)
	if err != nil {
		return "", err
	}
	return format.SpeciesList(doc), nil
}

func handleListBreeds(ctx context.Context, deps Deps, raw json.RawMessage) (string, error) {
	var args struct {
		Species string `json:"species"`
	}
	if err := decode(raw, &args); err != nil {
		return "", err
	}
	species := args.Species
	if species == "" {
		species = deps.Settings().Species
	}
	if species == "" {
		return "", errs.Validation("species", "species is required")
	}
	doc, err := deps.Client().ListBreeds(ctx, species)
	if err != nil {
		return "", err
	}
	return format.BreedList(doc), nil
}

func handleGetBreed(ctx context.Context, deps Deps, raw json.RawMessage) (string, error) {
	var args struct {
		BreedID string `json:"breed_id"`
	}
	if err := decode(raw, &args); err != nil {
		return "", err
	}
	if args.BreedID == "" {
		return "", errs.Validation("breed_id", "breed_id is required")
	}
	doc, err := deps.Client().GetBreed(ctx, args.BreedID)
	if err != nil {
		return "", err
	}
	return format.Breed(doc), nil
}

func handleListMetadata(ctx context.Context, deps Deps, raw json.RawMessage) (string, error) {
	var args struct {
		MetadataType string `json:"metadata_type"`
		Species      string `json:"species"`
	}
	if err := decode(raw, &args); err != nil {
		return "", err
	}
	kind := strings.TrimSpace(args.MetadataType)
	if kind == "" {
		return "", errs.Validation("metadata_type", "metadata_type is required")
	}
	doc, err := deps.Client().ListMetadata(ctx, kind, args.Species)
	if err != nil {
		return "", err
	}
	return format.Metadata(kind, doc), nil
}

func handleListMetadataTypes(_ context.Context, deps Deps, _ json.RawMessage) (string, error) {
	return format.MetadataTypes(deps.Client().ListMetadataTypes()), nil
}
