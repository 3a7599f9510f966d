package options

import (
	"fmt"
	"strings"
)

// InvalidOptionsError reports option names that are not in the known set.
// Every invalid name from the request is collected before failing.
type InvalidOptionsError struct {
	Names []string
}

func (e *InvalidOptionsError) Error() string {
	noun := "option"
	if len(e.Names) > 1 {
		noun = "options"
	}
	return fmt.Sprintf("unknown %s: %s", noun, HumanList(e.Names))
}

// HumanList joins names in natural-language form: "a", "a and b",
// "a, b, and c".
func HumanList(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}

// Request describes the caller's selection before resolution.
type Request struct {
	Include        []string // explicit option names, in order
	Exclude        []string // names removed from the selection
	All            bool     // request every known option, ignoring the rest
	Defaults       []string // environment-sourced default list
	IgnoreDefaults bool
}

// Resolve turns a request into the ordered, de-duplicated list of
// options to render. Validation happens before any selection logic so
// that a request naming unknown options fails as a whole.
func Resolve(req Request) ([]ID, error) {
	if err := validate(req.Include, req.Exclude); err != nil {
		return nil, err
	}

	if req.All {
		return All(), nil
	}

	base := req.Include
	if len(base) == 0 && !req.IgnoreDefaults {
		// Defaults come from the environment; unknown names there are
		// dropped rather than fatal so a stale variable cannot brick
		// the command.
		for _, name := range req.Defaults {
			if _, ok := byID[ID(name)]; ok {
				base = append(base, name)
			}
		}
	}
	if len(base) == 0 {
		return applyExclude(All(), req.Exclude), nil
	}

	seen := make(map[ID]bool, len(base))
	ids := make([]ID, 0, len(base))
	for _, name := range base {
		id := ID(name)
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return applyExclude(ids, req.Exclude), nil
}

func validate(lists ...[]string) error {
	var invalid []string
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, name := range list {
			if _, ok := byID[ID(name)]; !ok && !seen[name] {
				seen[name] = true
				invalid = append(invalid, name)
			}
		}
	}
	if len(invalid) > 0 {
		return &InvalidOptionsError{Names: invalid}
	}
	return nil
}

func applyExclude(ids []ID, exclude []string) []ID {
	if len(exclude) == 0 {
		return ids
	}
	drop := make(map[ID]bool, len(exclude))
	for _, name := range exclude {
		drop[ID(name)] = true
	}
	out := ids[:0]
	for _, id := range ids {
		if !drop[id] {
			out = append(out, id)
		}
	}
	return out
}
