package merge

// DeepMergeMaps performs a deep merge of multiple maps.
// Keys in later maps recursively overwrite keys in earlier ones.
// Every nested map in the result is a new node, so the result can be
// modified without touching any of the inputs. Leaf values are shared.
func DeepMergeMaps(maps ...map[string]any) map[string]any {
	result := make(map[string]any)
	for _, m := range maps {
		mergeInto(result, m)
	}
	return result
}

// AsMap reports whether v is a mapping node the merge descends into.
func AsMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case interface{ Mapping() map[string]any }:
		return m.Mapping(), true
	}
	return nil, false
}

func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		sv, ok := AsMap(v)
		if !ok {
			// scalar, slice or opaque resolver: overwrite
			dst[k] = v
			continue
		}
		if dm, ok := dst[k].(map[string]any); ok {
			// dst nodes are always our own copies
			mergeInto(dm, sv)
			continue
		}
		cpy := make(map[string]any, len(sv))
		mergeInto(cpy, sv)
		dst[k] = cpy
	}
}
