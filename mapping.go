package schema

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/finalsatan/schema/i18n"
)

// mapEntry is a candidate schema key with its value schema, priority, and
// rendered form (the tie-break for equal priorities).
type mapEntry struct {
	key  reflect.Value
	val  reflect.Value
	opt  *OptionalSchema // non-nil when the key is an Optional marker
	prio int
	disp string
}

// validateMapping reconciles unordered input pairs against prioritized
// candidate schema keys. Matched pairs land in a fresh mapping of the input's
// concrete type; unmatched pairs are dropped (the wrong-keys policy may still
// reject them); defaults for uncovered Optional keys are inserted only after
// the coverage checks pass.
func (s *Schema) validateMapping(ctx context.Context, data any) (any, error) {
	dv := reflect.ValueOf(data)
	if data == nil || dv.Kind() != reflect.Map {
		return nil, newError(i18n.T(CodeInstanceOf, map[string]string{
			"data": display(data),
			"type": "map",
		}), s.errMsg)
	}

	sv := reflect.ValueOf(s.desc)
	entries := make([]*mapEntry, 0, sv.Len())
	for _, k := range sv.MapKeys() {
		ki := k.Interface()
		opt, _ := ki.(*OptionalSchema)
		entries = append(entries, &mapEntry{
			key:  k,
			val:  sv.MapIndex(k),
			opt:  opt,
			prio: keyPriority(ki),
			disp: display(ki),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].prio != entries[j].prio {
			return entries[i].prio < entries[j].prio
		}
		return entries[i].disp < entries[j].disp
	})

	out := reflect.MakeMapWithSize(dv.Type(), dv.Len())
	covered := make([]bool, len(entries))
	iter := dv.MapRange()
	for iter.Next() {
		key := iter.Key().Interface()
		value := iter.Value().Interface()
		for i, ent := range entries {
			nkey, kerr := s.sub(ent.key.Interface()).Validate(ctx, key)
			if kerr != nil {
				continue
			}
			nvalue, verr := s.sub(ent.val.Interface()).Validate(ctx, value)
			if verr != nil {
				se, ok := AsError(verr)
				if !ok {
					se = newError(verr.Error(), s.errMsg)
				}
				return nil, se.withInvalidKeys(key)
			}
			if err := mapInsert(out, nkey, nvalue, s.errMsg); err != nil {
				return nil, err
			}
			covered[i] = true
			break
		}
		// No candidate matched: the pair is dropped; the wrong-keys check
		// below may still reject it.
	}

	var missing []any
	for i, ent := range entries {
		if ent.opt != nil || covered[i] {
			continue
		}
		missing = append(missing, ent.key.Interface())
	}
	if len(missing) > 0 {
		sortByDisplay(missing)
		e := newError(i18n.T(CodeMissingKeys, map[string]string{
			"keys": joinDisplay(missing),
		}), s.errMsg)
		e.MissingKeys = missing
		return nil, e
	}

	if !s.allowWrongKeys && out.Len() != dv.Len() {
		var wrong []any
		it := dv.MapRange()
		for it.Next() {
			if !out.MapIndex(it.Key()).IsValid() {
				wrong = append(wrong, it.Key().Interface())
			}
		}
		sortByDisplay(wrong)
		e := newError(i18n.T(CodeWrongKeys, map[string]string{
			"keys": joinDisplay(wrong),
			"data": display(data),
		}), s.errMsg)
		e.WrongKeys = wrong
		return nil, e
	}

	// Defaults apply only for Optional keys no input pair ever matched, and
	// only once the coverage checks have passed.
	for i, ent := range entries {
		if ent.opt == nil || !ent.opt.hasDefault || covered[i] {
			continue
		}
		if err := mapInsert(out, ent.opt.key, ent.opt.def, s.errMsg); err != nil {
			return nil, err
		}
	}
	return out.Interface(), nil
}

func mapInsert(out reflect.Value, k, v any, custom string) error {
	kv, ok := toValue(k, out.Type().Key())
	if !ok {
		return newError(fmt.Sprintf("cannot use %s as key of %s", display(k), out.Type()), custom)
	}
	vv, ok := toValue(v, out.Type().Elem())
	if !ok {
		return newError(fmt.Sprintf("cannot place %s into %s", display(v), out.Type()), custom)
	}
	out.SetMapIndex(kv, vv)
	return nil
}

func sortByDisplay(keys []any) {
	sort.SliceStable(keys, func(i, j int) bool { return display(keys[i]) < display(keys[j]) })
}

func joinDisplay(keys []any) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = display(k)
	}
	return strings.Join(parts, ", ")
}
