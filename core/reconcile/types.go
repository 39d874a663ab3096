package reconcile

// ReconcileResult represents the reconciliation output for a single entity.
type ReconcileResult struct {
	// ID is the entity key.
	ID string `json:"id"`

	// Name is the raw listing name, empty when the entity is not listed.
	Name string `json:"name"`

	// ManifestPresent indicates whether the manifest claims the entity.
	ManifestPresent bool `json:"manifest_present"`

	// ListingPresent indicates whether the entity is physically stored.
	ListingPresent bool `json:"listing_present"`
}

// ReconcilePlan contains reconciliation results and the derived orphan set.
type ReconcilePlan struct {
	// Results contains one entry per unique key, manifest keys first.
	Results []ReconcileResult `json:"results"`

	// Orphans are listed entities the manifest does not know about, in listing order.
	Orphans []ReconcileResult `json:"orphans"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// TotalItems is the total number of unique entities.
	TotalItems int `json:"total_items"`

	// ManifestItems counts unique keys claimed by the manifest.
	ManifestItems int `json:"manifest_items"`

	// ListingItems counts every raw listing name, structural ones included.
	ListingItems int `json:"listing_items"`

	// StructuralItems counts listing names that are not entities.
	StructuralItems int `json:"structural_items"`

	// MissingListing counts manifest entities with nothing stored.
	MissingListing int `json:"missing_listing"`

	// MissingManifest counts stored entities unknown to the manifest.
	MissingManifest int `json:"missing_manifest"`
}
