package billing

// Deactivatable is implemented by any workflow holding multi-field financial
// input. The navigation layer consults it before letting the user leave;
// this is a capability interface, not a base type.
type Deactivatable interface {
	HasUnsavedChanges() bool
}

// CanDeactivate reports whether navigation away from the component may
// proceed without confirmation.
func CanDeactivate(component Deactivatable) bool {
	if component == nil {
		return true
	}
	return !component.HasUnsavedChanges()
}
