package ir

import "fmt"

// Raw is one generic node as produced by a parser collaborator: a "type"
// tag plus type-specific fields. The subprocess parser decodes these
// directly from the JSON AST; the native parser builds the same shapes.
// Every node may additionally carry "position", which is informational.
type Raw map[string]any

// Type returns the node's type tag, or "" when absent.
func (r Raw) Type() string {
	t, _ := r["type"].(string)
	return t
}

// checkFields enforces that the node's field set is a subset of the
// expected fields plus "position" and "type".
func (r Raw) checkFields(expected ...string) error {
	allowed := make(map[string]bool, len(expected)+2)
	for _, k := range expected {
		allowed[k] = true
	}
	allowed["position"] = true
	allowed["type"] = true
	for k := range r {
		if !allowed[k] {
			return fmt.Errorf("%w: %q on %q node", ErrNodeFields, k, r.Type())
		}
	}
	return nil
}

func (r Raw) str(key string) (string, error) {
	v, ok := r[key]
	if !ok {
		return "", fmt.Errorf("%w: %q node missing %q", errInternal, r.Type(), key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q node field %q is %T, not string", errInternal, r.Type(), key, v)
	}
	return s, nil
}

// optStr reads a field that defaults to "" when absent, such as the vendor
// prefix on unprefixed at-rules.
func (r Raw) optStr(key string) (string, error) {
	if _, ok := r[key]; !ok {
		return "", nil
	}
	return r.str(key)
}

func (r Raw) strs(key string) ([]string, error) {
	v, ok := r[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q node missing %q", errInternal, r.Type(), key)
	}
	switch vs := v.(type) {
	case []string:
		return vs, nil
	case []any:
		out := make([]string, 0, len(vs))
		for _, e := range vs {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %q node field %q holds %T, not string", errInternal, r.Type(), key, e)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q node field %q is %T, not a string list", errInternal, r.Type(), key, v)
	}
}

func (r Raw) list(key string) ([]Raw, error) {
	v, ok := r[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q node missing %q", errInternal, r.Type(), key)
	}
	switch vs := v.(type) {
	case []Raw:
		return vs, nil
	case []any:
		out := make([]Raw, 0, len(vs))
		for _, e := range vs {
			switch m := e.(type) {
			case Raw:
				out = append(out, m)
			case map[string]any:
				out = append(out, Raw(m))
			default:
				return nil, fmt.Errorf("%w: %q node field %q holds %T, not a node", errInternal, r.Type(), key, e)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q node field %q is %T, not a node list", errInternal, r.Type(), key, v)
	}
}
