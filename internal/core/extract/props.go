package extract

import "github.com/yndnr/snaptree-go/internal/core/classify"

// ExtractProps formats a unit's props for its shape. Router roots keep only
// location.pathname and matched routes only match.pathname; the pathname
// key is left out when the field is missing. Every other shape gets the
// full FilterAndFormatData copy.
func (e *Extractor) ExtractProps(shape classify.Shape, props any) map[string]any {
	switch shape {
	case classify.ShapeRouter:
		return pathname(props, "location")
	case classify.ShapeRenderedRoute:
		return pathname(props, "match")
	default:
		return e.FilterAndFormatData(props)
	}
}

func pathname(props any, field string) map[string]any {
	out := make(map[string]any, 1)
	m, ok := props.(map[string]any)
	if !ok {
		return out
	}
	inner, ok := m[field].(map[string]any)
	if !ok {
		return out
	}
	if p, ok := inner["pathname"]; ok {
		out["pathname"] = p
	}
	return out
}

// ExtractProps formats props with the default limits.
func ExtractProps(shape classify.Shape, props any) map[string]any {
	return std.ExtractProps(shape, props)
}
