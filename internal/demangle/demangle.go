// Package demangle turns a mangled linkage name into symbol features usable
// by the pattern matcher. Two backends share one contract: Itanium (GCC/
// Clang/most non-Windows targets) and Microsoft (MSVC).
package demangle

import "github.com/9inefold/debase/internal/symfeat"

// ABI selects which demangler backend Classify dispatches to. The caller
// (the IR-loading side, out of scope for this package) picks the ABI from
// the module's target triple.
type ABI int

const (
	Itanium ABI = iota
	Microsoft
)

// Demangler classifies one mangled symbol, writing the extracted features
// into out and returning its kind. Invalid input never returns an error:
// failure surfaces as symfeat.Invalid with out cleared, per spec.
type Demangler interface {
	Classify(mangled string, out *symfeat.Features) symfeat.Kind
}

// For selects the Demangler backend for abi.
func For(abi ABI) Demangler {
	switch abi {
	case Microsoft:
		return microsoftDemangler{}
	default:
		return itaniumDemangler{}
	}
}

// Classify is a convenience wrapper around For(abi).Classify.
func Classify(abi ABI, mangled string, out *symfeat.Features) symfeat.Kind {
	return For(abi).Classify(mangled, out)
}
