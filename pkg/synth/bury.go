package synth

// Bury deep-inserts value into m at the location described by path, creating
// intermediate maps as needed. Burying under a terminal segment that already
// holds a value accumulates both into a slice instead of overwriting, which
// is what lets repeatable Terraform blocks (multiple ingress rules under one
// security group) coexist under a single key.
//
// The invariant is that no previously buried value is ever lost: collisions
// convert and accumulate rather than replace.
func Bury(m map[string]any, path []string, value any) error {
	if len(path) == 0 {
		return &InvalidPathError{}
	}

	key := path[0]

	// Terminal segment: write or accumulate.
	if len(path) == 1 {
		existing, ok := m[key]
		if !ok {
			m[key] = value
			return nil
		}
		if list, isList := existing.([]any); isList {
			m[key] = append(list, value)
			return nil
		}
		m[key] = []any{existing, value}
		return nil
	}

	// Intermediate segment: descend, converting whatever is in the way.
	switch child := m[key].(type) {
	case map[string]any:
		return Bury(child, path[1:], value)
	case nil:
		next := make(map[string]any)
		m[key] = next
		return Bury(next, path[1:], value)
	case []any:
		// A repeated block already accumulated here. Continue in its
		// trailing map when there is one, otherwise open a new entry.
		if len(child) > 0 {
			if last, isMap := child[len(child)-1].(map[string]any); isMap {
				return Bury(last, path[1:], value)
			}
		}
		next := make(map[string]any)
		m[key] = append(child, next)
		return Bury(next, path[1:], value)
	default:
		// A scalar occupies an intermediate position. Keep it alongside
		// the new subtree rather than dropping it.
		next := make(map[string]any)
		m[key] = []any{child, next}
		return Bury(next, path[1:], value)
	}
}
