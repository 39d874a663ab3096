package reconcile

// ReconcileAll compares the manifest against the listing for every entity.
// It builds the union of keys from both sources and returns a plan holding a
// result per key, the orphaned listing entries and aggregate counts.
// Output order follows the sources, so identical input yields an identical plan.
func ReconcileAll(adapter Adapter) *ReconcilePlan {
	manifestKeys := adapter.ManifestKeys()
	listingNames := adapter.ListingNames()

	manifestIndex := make(map[string]struct{}, len(manifestKeys))
	for _, key := range manifestKeys {
		manifestIndex[key] = struct{}{}
	}

	listingIndex, listingOrder, structural := buildListingIndex(adapter, listingNames)

	plan := &ReconcilePlan{
		Results: make([]ReconcileResult, 0, len(manifestIndex)+len(listingOrder)),
		Orphans: []ReconcileResult{},
	}

	seen := make(map[string]struct{}, len(manifestIndex)+len(listingOrder))
	for _, key := range manifestKeys {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		name, listed := listingIndex[key]
		plan.Results = append(plan.Results, ReconcileResult{
			ID:              key,
			Name:            name,
			ManifestPresent: true,
			ListingPresent:  listed,
		})
		if !listed {
			plan.Summary.MissingListing++
		}
	}

	for _, key := range listingOrder {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		result := ReconcileResult{
			ID:             key,
			Name:           listingIndex[key],
			ListingPresent: true,
		}
		plan.Results = append(plan.Results, result)
		plan.Orphans = append(plan.Orphans, result)
		plan.Summary.MissingManifest++
	}

	plan.Summary.TotalItems = len(plan.Results)
	plan.Summary.ManifestItems = len(manifestIndex)
	plan.Summary.ListingItems = len(listingNames)
	plan.Summary.StructuralItems = structural

	return plan
}

// buildListingIndex maps entity keys to the first raw name carrying them.
func buildListingIndex(adapter Adapter, names []string) (map[string]string, []string, int) {
	index := make(map[string]string, len(names))
	order := make([]string, 0, len(names))
	structural := 0

	for _, name := range names {
		key, ok := adapter.ExtractListingKey(name)
		if !ok {
			structural++
			continue
		}
		if _, exists := index[key]; exists {
			continue
		}
		index[key] = name
		order = append(order, key)
	}

	return index, order, structural
}
