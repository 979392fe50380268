// Package mapper holds small generic slice mapping helpers used by DTO and persistence mappers.
package mapper

// MapSlice applies mapFunc to every element. A nil input stays nil.
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	if items == nil {
		return nil
	}
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}

// MapSliceErr is MapSlice for conversions that can fail; it stops at the first error.
func MapSliceErr[T any, R any](items []T, mapFunc func(T) (R, error)) ([]R, error) {
	if items == nil {
		return nil, nil
	}
	result := make([]R, 0, len(items))
	for _, item := range items {
		r, err := mapFunc(item)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, nil
}
