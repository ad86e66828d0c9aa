package models

import "fmt"

func enumName[T ~int](names map[T]string, v T) string {
	if name, ok := names[v]; ok {
		return name
	}
	return fmt.Sprintf("%T(%d)", v, int(v))
}

func marshalEnum[T ~int](names map[T]string, v T) ([]byte, error) {
	name, ok := names[v]
	if !ok {
		return nil, fmt.Errorf("unknown %T value %d", v, int(v))
	}
	return []byte(name), nil
}

func unmarshalEnum[T ~int](names map[T]string, text []byte) (T, error) {
	for v, name := range names {
		if name == string(text) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %T name %q", zero, string(text))
}

func enumFromRaw[T ~int](names map[T]string, raw int) (T, bool) {
	v := T(raw)
	_, ok := names[v]
	return v, ok
}
