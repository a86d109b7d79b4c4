package keys

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMapToSlice returns the key.Binding fields of a key map struct, in field
// order. Fields of any other type are skipped.
func KeyMapToSlice(keyMap any) []key.Binding {
	v := reflect.ValueOf(keyMap)
	if v.Kind() != reflect.Struct {
		return nil
	}
	bindings := make([]key.Binding, 0, v.NumField())
	for i := range v.NumField() {
		field := v.Field(i)
		if !field.CanInterface() {
			continue
		}
		if b, ok := field.Interface().(key.Binding); ok {
			bindings = append(bindings, b)
		}
	}
	return bindings
}
