package ports

// RawPair is a single (value, example index) observation for one feature,
// as handed back unsorted by FeatureMatrix.FetchFeatureVector.
type RawPair struct {
	Value   float32
	Example uint32
}

// FeatureMatrix is the per-example feature collaborator. Only non-zero,
// present values are returned; examples absent from both Pairs and
// Missing are implicitly "sparse zero" for that feature (spec.md §3).
type FeatureMatrix interface {
	// NumCols returns the number of features.
	NumCols() int

	// FetchFeatureVector returns, for feature j, the unsorted list of
	// (value, example index) pairs for examples with a present, non-zero
	// value, plus the list of example indices whose feature j is missing.
	FetchFeatureVector(j int) (pairs []RawPair, missing []uint32)
}

// NominalMask tells the core which features must be split with
// equality/inequality conditions (nominal) versus ≤/> (numerical).
type NominalMask interface {
	// IsNominal reports whether feature j is nominal.
	IsNominal(j int) bool
}
