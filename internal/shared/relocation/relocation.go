package relocation

// Scope tags an entity type for the backup/relocation tooling.
// The tag is a static property of the type, never runtime state:
// export jobs consult it once per table, not per row.
type Scope string

const (
	// Excluded entities are skipped entirely by export and import.
	Excluded Scope = "excluded"
	// Organization entities move with the owning organization's data.
	Organization Scope = "organization"
	// Global entities are shared across all organizations.
	Global Scope = "global"
)

// Relocatable is implemented by entity types that declare a relocation scope.
type Relocatable interface {
	RelocationScope() Scope
}

// InScope reports whether an entity type participates in relocation at all.
func InScope(entity Relocatable) bool {
	return entity.RelocationScope() != Excluded
}
