package extract

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"github.com/yndnr/snaptree-go/internal/core/fiber"
)

// Placeholders written in place of values that cannot be copied.
const (
	ElementPlaceholder  = "<element>"
	CircularPlaceholder = "[circular]"
	DepthPlaceholder    = "[max depth]"
)

// internalKeys are framework bookkeeping fields that never reach a snapshot.
var internalKeys = map[string]struct{}{
	"$$typeof": {}, "@@observable": {}, "_debugHookTypes": {}, "_debugID": {},
	"_debugIsCurrentlyTiming": {}, "_debugNeedsRemount": {}, "_debugOwner": {},
	"_debugSource": {}, "_owner": {}, "_self": {}, "_source": {}, "_store": {},
	"alternate": {}, "basename": {}, "baseQueue": {}, "baseState": {},
	"child": {}, "childExpirationTime": {}, "children": {}, "context": {},
	"dependencies": {}, "deps": {}, "destroy": {}, "dispatch": {},
	"effectTag": {}, "elementType": {}, "firstBaseUpdate": {},
	"firstEffect": {}, "flags": {}, "getState": {}, "key": {}, "lanes": {},
	"lastBaseUpdate": {}, "lastEffect": {}, "memoizedProps": {},
	"memoizedState": {}, "mode": {}, "navigator": {}, "next": {},
	"nextEffect": {}, "parentSub": {}, "pending": {}, "pendingProps": {},
	"queue": {}, "ref": {}, "renderLanes": {}, "return": {}, "shared": {},
	"sibling": {}, "stateNode": {}, "subscription": {}, "tag": {},
	"type": {}, "updateQueue": {},
}

// IsInternalKey reports whether key is dropped from formatted payloads.
func IsInternalKey(key string) bool {
	_, ok := internalKeys[key]
	return ok
}

var (
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	taggableType      = reflect.TypeOf((*fiber.Taggable)(nil)).Elem()
	nodePtrType       = reflect.TypeOf((*fiber.Node)(nil))
)

// FilterAndFormatData deep-copies payload into a display-safe map.
//
// Map keys and exported struct fields become map keys. Functions and
// channels are dropped, framework-internal keys are skipped, rendered
// elements and live nodes become ElementPlaceholder, reference cycles
// become CircularPlaceholder and anything nested deeper than MaxDepth
// becomes DepthPlaceholder. Slices at the top level are keyed by index;
// other non-map payloads are stored under "value". It never panics.
func (e *Extractor) FilterAndFormatData(payload any) (out map[string]any) {
	out = make(map[string]any)
	defer func() {
		if r := recover(); r != nil {
			out = map[string]any{"error": fmt.Sprint(r)}
		}
	}()

	if payload == nil {
		return out
	}
	w := &walker{maxDepth: e.maxDepth(), seen: make(map[uintptr]struct{})}
	v := reflect.ValueOf(payload)
	for v.Kind() == reflect.Interface || (v.Kind() == reflect.Pointer && !isElement(v)) {
		if v.IsNil() {
			return out
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map, reflect.Struct:
		if m, ok := w.format(v, 0).(map[string]any); ok {
			return m
		}
	case reflect.Slice, reflect.Array:
		if list, ok := w.format(v, 0).([]any); ok {
			for i, item := range list {
				out[strconv.Itoa(i)] = item
			}
			return out
		}
	}
	if val, keep := w.value(v, 0); keep {
		out["value"] = val
	}
	return out
}

// CopyValue deep-copies a state value into plain maps, slices and scalars
// that share no memory with v. Keys are kept as they are. Functions and
// channels are dropped, and the element, cycle and depth placeholders of
// FilterAndFormatData apply. A nil v stays nil. It never panics.
func (e *Extractor) CopyValue(v any) (out any) {
	defer func() {
		if r := recover(); r != nil {
			out = map[string]any{"error": fmt.Sprint(r)}
		}
	}()
	w := &walker{maxDepth: e.maxDepth(), seen: make(map[uintptr]struct{}), keepKeys: true}
	out, _ = w.value(reflect.ValueOf(v), 0)
	return out
}

type walker struct {
	maxDepth int
	seen     map[uintptr]struct{}
	// keepKeys disables internal key filtering.
	keepKeys bool
}

func (w *walker) skip(key string) bool {
	return !w.keepKeys && IsInternalKey(key)
}

// value formats v and reports whether it should be kept at all.
func (w *walker) value(v reflect.Value, depth int) (any, bool) {
	if !v.IsValid() {
		return nil, true
	}
	switch v.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return nil, false
	}
	return w.format(v, depth), true
}

func (w *walker) format(v reflect.Value, depth int) any {
	if !v.IsValid() {
		return nil
	}
	if isElement(v) {
		return ElementPlaceholder
	}
	if v.CanInterface() && v.Type().Implements(textMarshalerType) && (v.Kind() != reflect.Pointer || !v.IsNil()) {
		if text, err := v.Interface().(encoding.TextMarshaler).MarshalText(); err == nil {
			return string(text)
		}
	}

	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return w.format(v.Elem(), depth)
	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		return w.track(v, func() any { return w.format(v.Elem(), depth) })
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		if v.CanInterface() {
			return v.Interface()
		}
		return fmt.Sprint(v)
	case reflect.Complex64, reflect.Complex128:
		return fmt.Sprint(v.Complex())
	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		if depth >= w.maxDepth {
			return DepthPlaceholder
		}
		return w.track(v, func() any { return w.formatMap(v, depth) })
	case reflect.Slice:
		if v.IsNil() {
			return nil
		}
		if depth >= w.maxDepth {
			return DepthPlaceholder
		}
		return w.track(v, func() any { return w.formatList(v, depth) })
	case reflect.Array:
		if depth >= w.maxDepth {
			return DepthPlaceholder
		}
		return w.formatList(v, depth)
	case reflect.Struct:
		if depth >= w.maxDepth {
			return DepthPlaceholder
		}
		return w.formatStruct(v, depth)
	default:
		return nil
	}
}

// track runs fn with v's address marked as in progress, returning
// CircularPlaceholder when v is already being formatted further up.
func (w *walker) track(v reflect.Value, fn func() any) any {
	addr := v.Pointer()
	if addr == 0 {
		return fn()
	}
	if _, ok := w.seen[addr]; ok {
		return CircularPlaceholder
	}
	w.seen[addr] = struct{}{}
	defer delete(w.seen, addr)
	return fn()
}

func (w *walker) formatMap(v reflect.Value, depth int) any {
	out := make(map[string]any, v.Len())
	if v.Type().Key().Kind() == reflect.String && v.MapIndex(reflect.ValueOf("$$typeof").Convert(v.Type().Key())).IsValid() {
		return ElementPlaceholder
	}
	iter := v.MapRange()
	for iter.Next() {
		key := fmt.Sprint(iter.Key().Interface())
		if w.skip(key) {
			continue
		}
		if val, keep := w.value(iter.Value(), depth+1); keep {
			out[key] = val
		}
	}
	return out
}

func (w *walker) formatList(v reflect.Value, depth int) any {
	out := make([]any, v.Len())
	for i := 0; i < v.Len(); i++ {
		// Dropped items keep their position as nil.
		out[i], _ = w.value(v.Index(i), depth+1)
	}
	return out
}

func (w *walker) formatStruct(v reflect.Value, depth int) any {
	t := v.Type()
	out := make(map[string]any, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := fieldName(field)
		if name == "" || w.skip(name) {
			continue
		}
		if val, keep := w.value(v.Field(i), depth+1); keep {
			out[name] = val
		}
	}
	return out
}

// fieldName uses the json tag name when present; "" means skip.
func fieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	for i := 0; i < len(tag); i++ {
		if tag[i] == ',' {
			tag = tag[:i]
			break
		}
	}
	if tag != "" {
		return tag
	}
	return f.Name
}

func isElement(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	t := v.Type()
	if t == nodePtrType {
		return true
	}
	return t.Kind() != reflect.Interface && t.Implements(taggableType)
}
