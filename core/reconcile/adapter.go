package reconcile

// Adapter defines the interface for model-specific reconciliation logic.
// An adapter exposes two independently maintained views of the same set of
// entities: a manifest that claims which entities exist, and a raw listing of
// what is physically stored.
type Adapter interface {
	// Name returns the unique name of this adapter (e.g., "destlist").
	Name() string

	// ManifestKeys returns the entity keys claimed by the manifest, in manifest order.
	ManifestKeys() []string

	// ListingNames returns the raw names found in the listing, in listing order.
	ListingNames() []string

	// ExtractListingKey maps a raw listing name to an entity key.
	// Names that belong to the storage format itself report ok=false and are
	// never treated as entities.
	ExtractListingKey(name string) (key string, ok bool)
}
