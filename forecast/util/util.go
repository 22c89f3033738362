package util

import "gonum.org/v1/gonum/floats/scalar"

func IndentExpand(indent string, growth int) string {
	indentByte := []byte(indent)
	out := make([]byte, 0, len(indent)*growth)
	for i := 0; i < growth; i++ {
		out = append(out, indentByte...)
	}
	return string(out)
}

func SliceMap(arr []float64, lambda func(float64) float64) []float64 {
	for i, v := range arr {
		arr[i] = lambda(v)
	}
	return arr
}

// Round rounds to the given number of decimal places. Exact ties go to the even digit.
func Round(val float64, precision int) float64 {
	return scalar.RoundEven(val, precision)
}

// Rounder returns a Round lambda usable with SliceMap
func Rounder(precision int) func(float64) float64 {
	return func(val float64) float64 {
		return Round(val, precision)
	}
}
