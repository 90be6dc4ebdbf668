package transform

import (
	"reflect"
	"strings"
)

// TrimSpace removes leading and trailing white space.
func TrimSpace[S ~string](s S) S {
	return S(strings.TrimSpace(string(s)))
}

// ToLower lowercases s.
func ToLower[S ~string](s S) S {
	return S(strings.ToLower(string(s)))
}

// CollapseSpace trims s and replaces every run of white space with a single
// space.
func CollapseSpace[S ~string](s S) S {
	return S(strings.Join(strings.Fields(string(s)), " "))
}

// Compose returns a normalizer that applies fns in order.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for _, fn := range fns {
			v = fn(v)
		}
		return v
	}
}

// Struct returns a copy of v with f applied to every settable string field,
// recursing into nested structs, pointers to structs and string slices.
// Pointers are shared with v, so strings behind them are changed in place.
func Struct[T any](f func(string) string) func(T) T {
	return func(v T) T {
		rv := reflect.ValueOf(&v).Elem()
		walk(rv, f)
		return v
	}
}

func walk(v reflect.Value, f func(string) string) {
	switch v.Kind() {
	case reflect.String:
		if v.CanSet() {
			v.SetString(f(v.String()))
		}
	case reflect.Ptr:
		if !v.IsNil() {
			walk(v.Elem(), f)
		}
	case reflect.Struct:
		for i := range v.NumField() {
			walk(v.Field(i), f)
		}
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.String {
			return
		}
		cp := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		reflect.Copy(cp, v)
		for i := range cp.Len() {
			cp.Index(i).SetString(f(cp.Index(i).String()))
		}
		if v.CanSet() {
			v.Set(cp)
		}
	}
}
