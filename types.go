package cv2pdf

// Data is the document data bound to a template as top-level variables.
// There is no declared schema; the chosen template dictates which keys
// are consumed. Values may be scalars, nested maps, or slices of either.
type Data map[string]any

// DeepCopy returns a copy of the data that shares no nested maps or
// slices with the original. Mutating one copy never affects the other.
func (d Data) DeepCopy() Data {
	if d == nil {
		return nil
	}
	out := make(Data, len(d))
	for k, v := range d {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = deepCopyValue(item)
		}
		return out
	case Data:
		return map[string]any(val.DeepCopy())
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		// Scalars (string, bool, numbers) are copied by value.
		return v
	}
}
