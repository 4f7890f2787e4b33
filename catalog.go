package sphc

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Func is the signature shared by every function in the catalog.
type Func[F constraints.Float] func(theta, phi F) F

// Family identifies the source a catalog entry was taken from.
type Family int
const (
	Fornberg Family = iota
	Beentjes
	Renka
	Reeger
	Bellet
	FrankeFamily
	Custom
	EndFamily
)

// FamilyFromString returns the Family with the given (case-insensitive)
// name.
func FamilyFromString(s string) (f Family, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f = 0; f < EndFamily; f++ {
		if strings.ToLower(f.String()) == s { return f, true }
	}
	switch s {
	case "reegar":
		return Reeger, true
	case "cf":
		return Custom, true
	}
	return Fornberg, false
}

func (f Family) String() string {
	switch f {
	case Fornberg:
		return "Fornberg"
	case Beentjes:
		return "Beentjes"
	case Renka:
		return "Renka"
	case Reeger:
		return "Reeger"
	case Bellet:
		return "Bellet"
	case FrankeFamily:
		return "Franke"
	case Custom:
		return "Custom"
	}
	panic(fmt.Sprintf("Unknown Family %d", int(f)))
}

// Shape describes the regularity of a catalog entry.
type Shape int
const (
	// Smooth functions are infinitely differentiable on the sphere, or are
	// the absolute value of such a function.
	Smooth Shape = iota
	// Ramp functions are continuous but change by O(1) over a narrow band.
	Ramp
	// Step functions are piecewise constant with a jump discontinuity.
	Step
)

func (s Shape) String() string {
	switch s {
	case Smooth:
		return "Smooth"
	case Ramp:
		return "Ramp"
	case Step:
		return "Step"
	}
	panic(fmt.Sprintf("Unknown Shape %d", int(s)))
}

// Entry is a single named function in the catalog, instantiated at both
// standard floating point widths.
type Entry struct {
	Name string
	Family Family
	Shape Shape

	F32 Func[float32]
	F64 Func[float64]
}

var entries = []Entry{
	{"fornberg_f1", Fornberg, Smooth, FornbergF1[float32], FornbergF1[float64]},
	{"fornberg_f4", Fornberg, Step, FornbergF4[float32], FornbergF4[float64]},
	{"beentjes_f3", Beentjes, Ramp, BeentjesF3[float32], BeentjesF3[float64]},
	{"beentjes_f4", Beentjes, Step, BeentjesF4[float32], BeentjesF4[float64]},
	{"beentjes_f5", Beentjes, Step, BeentjesF5[float32], BeentjesF5[float64]},
	{"renka_f3", Renka, Smooth, RenkaF3[float32], RenkaF3[float64]},
	{"renka_f4", Renka, Smooth, RenkaF4[float32], RenkaF4[float64]},
	{"renka_f5", Renka, Smooth, RenkaF5[float32], RenkaF5[float64]},
	{"reeger_f2", Reeger, Smooth, ReegerF2[float32], ReegerF2[float64]},
	{"reeger_f3", Reeger, Ramp, ReegerF3[float32], ReegerF3[float64]},
	{"reeger_f4", Reeger, Ramp, ReegerF4[float32], ReegerF4[float64]},
	{"bellet_f4", Bellet, Step, BelletF4[float32], BelletF4[float64]},
	{"franke", FrankeFamily, Smooth, Franke[float32], Franke[float64]},
	{"cf_f1", Custom, Smooth, CF1[float32], CF1[float64]},
	{"cf_f2", Custom, Smooth, CF2[float32], CF2[float64]},
	{"cf_f3", Custom, Smooth, CF3[float32], CF3[float64]},
	{"cf_f4", Custom, Smooth, CF4[float32], CF4[float64]},
	{"cf_f5", Custom, Smooth, CF5[float32], CF5[float64]},
	{"cf_f6", Custom, Smooth, CF6[float32], CF6[float64]},
	{"cf_f7", Custom, Smooth, CF7[float32], CF7[float64]},
	{"cf_f8", Custom, Smooth, CF8[float32], CF8[float64]},
	{"cf_f9", Custom, Smooth, CF9[float32], CF9[float64]},
	{"cf_f10", Custom, Smooth, CF10[float32], CF10[float64]},
	{"cf_f11", Custom, Smooth, CF11[float32], CF11[float64]},
	{"cf_f12", Custom, Smooth, CF12[float32], CF12[float64]},
	{"cf_f13", Custom, Smooth, CF13[float32], CF13[float64]},
	{"cf_f14", Custom, Smooth, CF14[float32], CF14[float64]},
	{"cf_f15", Custom, Smooth, CF15[float32], CF15[float64]},
}

// aliases maps alternate spellings onto catalog names.
var aliases = map[string]string{
	"reegar_f2": "reeger_f2",
	"reegar_f3": "reeger_f3",
	"reegar_f4": "reeger_f4",
	"cf_15": "cf_f15",
}

// Entries returns every entry in the catalog. The returned slice is a copy
// and may be modified by the caller.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Names returns the name of every entry in catalog order.
func Names() []string {
	names := make([]string, len(entries))
	for i := range entries { names[i] = entries[i].Name }
	return names
}

// ByFamily returns the entries belonging to the given family.
func ByFamily(f Family) []Entry {
	out := []Entry{}
	for i := range entries {
		if entries[i].Family == f { out = append(out, entries[i]) }
	}
	return out
}

// Lookup returns the entry with the given name. Names are case-insensitive
// and the alternate spellings "reegar_f*" and "cf_15" are accepted.
func Lookup(name string) (*Entry, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[key]; ok { key = alias }

	for i := range entries {
		if entries[i].Name == key {
			e := entries[i]
			return &e, nil
		}
	}
	return nil, fmt.Errorf(
		"'%s' is not the name of a catalog function. Recognized names " +
			"are: %s.", name, strings.Join(Names(), ", "),
	)
}
