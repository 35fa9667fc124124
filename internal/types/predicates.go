package types

// RegionOutlives states that the first region outlives the second.
type RegionOutlives struct {
	Long  Region `msgpack:"long"`
	Short Region `msgpack:"short"`
}

// TypeOutlives states that the type outlives the region.
type TypeOutlives struct {
	Ty     RTy    `msgpack:"ty"`
	Region Region `msgpack:"region"`
}

// TraitTypeConstraint constrains a trait associated type, as in
// `T: Foo<Item = String>`.
type TraitTypeConstraint struct {
	TraitRef RTraitRef    `msgpack:"trait_ref"`
	Generics RGenericArgs `msgpack:"generics"`
	TypeName string       `msgpack:"type_name"`
	Ty       RTy          `msgpack:"ty"`
}

// Predicates are the constraints a definition states without requiring
// witnesses at use sites (trait clauses, which do, live in
// GenericParams).
type Predicates struct {
	RegionsOutlive       []RegionOutlives      `msgpack:"regions_outlive"`
	TypesOutlive         []TypeOutlives        `msgpack:"types_outlive"`
	TraitTypeConstraints []TraitTypeConstraint `msgpack:"trait_type_constraints"`
}
