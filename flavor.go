package schema

import (
	"fmt"
	"reflect"
	"runtime"
	"strconv"
	"strings"
)

// flavor is the dispatch category a schema description maps to.
type flavor int

const (
	flavorComparable flavor = iota // plain equality literal (fallback)
	flavorCallable                 // invokable predicate
	flavorValidator                // implements Validator
	flavorType                     // reflect.Type membership test
	flavorMapping                  // key -> schema mapping
	flavorIterable                 // sequence of alternative schemas
)

// flavorOf classifies a description by its runtime shape. The checks run in
// fixed priority order (container-ness first, literal equality last) so that
// ambiguous shapes resolve deterministically.
func flavorOf(desc any) flavor {
	if desc == nil {
		return flavorComparable
	}
	switch reflect.TypeOf(desc).Kind() {
	case reflect.Slice, reflect.Array:
		return flavorIterable
	case reflect.Map:
		return flavorMapping
	}
	if _, ok := desc.(reflect.Type); ok {
		return flavorType
	}
	if _, ok := desc.(Validator); ok {
		return flavorValidator
	}
	if reflect.TypeOf(desc).Kind() == reflect.Func {
		return flavorCallable
	}
	return flavorComparable
}

// keyPriority orders candidate mapping keys: specific matchers (literals,
// predicates) before generic ones (types, nested mappings, containers), and
// an Optional key immediately after a non-optional key of the same underlying
// flavor. Priorities are doubled so the optional offset stays integral.
func keyPriority(key any) int {
	if opt, ok := key.(*OptionalSchema); ok {
		return 2*int(flavorOf(opt.inner.desc)) + 1
	}
	return 2 * int(flavorOf(key))
}

// display renders a value for diagnostics: strings quoted, types by name,
// funcs by symbol, everything else via fmt.
func display(v any) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(t)
	case reflect.Type:
		return t.String()
	case fmt.Stringer:
		return t.String()
	}
	if reflect.TypeOf(v).Kind() == reflect.Func {
		return funcName(v)
	}
	return fmt.Sprintf("%v", v)
}

// funcName resolves a short symbol name for a func value.
func funcName(fn any) string {
	pc := reflect.ValueOf(fn).Pointer()
	f := runtime.FuncForPC(pc)
	if f == nil {
		return "func"
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
