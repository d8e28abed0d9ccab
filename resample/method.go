package resample

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Method identifies a resampling scheme.
type Method int

const (
	// MethodJackknife is leave-one-out resampling.
	MethodJackknife Method = iota
	// MethodBootstrap is resampling N measurements with replacement.
	MethodBootstrap
	// MethodSubsampling is resampling a fixed number of measurements without replacement.
	MethodSubsampling
)

// methodNames maps Method to their string representations.
var methodNames = map[Method]string{
	MethodJackknife:   "jackknife",
	MethodBootstrap:   "bootstrap",
	MethodSubsampling: "subsampling",
}

// methodFromString maps string names to Method.
var methodFromString = lo.Invert(methodNames)

// String returns the string representation of the method.
func (m Method) String() string {
	if name, exists := methodNames[m]; exists {
		return name
	}

	return "unknown"
}

// MethodFromString returns the Method for a given name (case-insensitive).
// Returns Method(-1) for unknown names.
func MethodFromString(name string) Method {
	if m, exists := methodFromString[strings.ToLower(name)]; exists {
		return m
	}

	return Method(-1)
}

// supportedMethods returns the sorted method names for error messages.
func supportedMethods() []string {
	names := lo.Values(methodNames)
	slices.Sort(names)

	return names
}
