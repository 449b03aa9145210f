package version

import "reflect"

// setProtocolField sets the named bool field on pr by reflection,
// reporting whether the field existed. Kept to the Overrides path only;
// the parser never touches Protocol through reflection.
func setProtocolField(pr *Protocol, name string, value bool) bool {
	v := reflect.ValueOf(pr).Elem().FieldByName(name)
	if !v.IsValid() || v.Kind() != reflect.Bool {
		return false
	}
	v.SetBool(value)
	return true
}
