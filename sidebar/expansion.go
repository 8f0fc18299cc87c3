package sidebar

// Expansion is the ordered set of sidebar item titles currently expanded.
// It JSON-encodes as a plain string array, the same wire shape the original
// UI kept under its local-storage key. The zero value is the empty set.
type Expansion []string

// Contains reports whether title is in the set.
func (e Expansion) Contains(title string) bool {
	for _, t := range e {
		if t == title {
			return true
		}
	}
	return false
}

// Toggle flips membership of title and reports whether it is now expanded.
// Toggling the same title twice leaves the set as it was.
func (e *Expansion) Toggle(title string) bool {
	for i, t := range *e {
		if t == title {
			*e = append((*e)[:i], (*e)[i+1:]...)
			return false
		}
	}
	*e = append(*e, title)
	return true
}
