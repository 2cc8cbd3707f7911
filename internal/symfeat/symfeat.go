// Package symfeat defines the shared value type passed from a demangler
// adapter to the symbol matcher: the demangled shape of one linkage name.
package symfeat

// Kind classifies what a demangled symbol refers to.
type Kind int

const (
	// Invalid means the mangled input was empty or failed to parse.
	Invalid Kind = iota
	// Ctor is a constructor.
	Ctor
	// Dtor is a destructor.
	Dtor
	// Other is a recognized-but-uninteresting symbol (vtable, typeinfo,
	// guard variable, ...).
	Other
	// Ignorable is a free function or data symbol.
	Ignorable
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case Ctor:
		return "Ctor"
	case Dtor:
		return "Dtor"
	case Other:
		return "Other"
	case Ignorable:
		return "Ignorable"
	default:
		return "Unknown"
	}
}

// Features is the demangled shape of one mangled symbol. ScopeNames holds
// the full qualified-name chain in outer-to-inner order, including the base
// name as its last element. Variant records the Itanium ABI variant letter
// for constructors/destructors; 0 denotes a deleting destructor, which the
// matcher excludes.
type Features struct {
	ScopeNames []string
	BaseName   string
	Kind       Kind
	Variant    int
}

// Clear resets f to the zero-value Invalid feature set, matching the
// demangler contract that failed parses clear their output.
func (f *Features) Clear() {
	f.ScopeNames = nil
	f.BaseName = ""
	f.Kind = Invalid
	f.Variant = 0
}

// IsStructor reports whether f describes a constructor or destructor.
func (f *Features) IsStructor() bool {
	return f.Kind == Ctor || f.Kind == Dtor
}
