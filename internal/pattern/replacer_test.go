package pattern

import (
	"testing"

	"github.com/9inefold/debase/internal/fileprop"
)

func TestReplacerResolveSolo(t *testing.T) {
	t.Parallel()

	solo, err := newLateBoundSolo("prefix_{0}", []Token{{Kind: LateBind, Member: "stem"}})
	if err != nil {
		t.Fatalf("newLateBoundSolo() error = %v", err)
	}

	cache := fileprop.New("/src/widgets/Scheduler.cpp")
	if err := solo.Replacer.Resolve(cache); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if solo.Literal != "prefix_Scheduler" {
		t.Errorf("Literal = %q, want %q", solo.Literal, "prefix_Scheduler")
	}
	if !solo.MatchSingle("prefix_Scheduler") {
		t.Error("expected resolved Solo to match its literal")
	}
}

func TestReplacerResolveRegexQuotesHoleValue(t *testing.T) {
	t.Parallel()

	rx, err := newLateBoundRegex("CC{0}.*", []Token{{Kind: LateBind, Member: "stem"}})
	if err != nil {
		t.Fatalf("newLateBoundRegex() error = %v", err)
	}

	// A stem containing a regex metacharacter must not alter the compiled
	// expression's structure.
	cache := fileprop.New("/src/widgets/Sched.uler.cpp")
	if err := rx.Replacer.Resolve(cache); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if rx.MatchSingle("CCSched.ulerAnything") == false {
		t.Error("expected literal dot in stem to match literally")
	}
	if rx.MatchSingle("CCSchedXulerAnything") {
		t.Error("quoted dot must not behave as a regex wildcard")
	}
}

func TestReplacerResolvePropagatesFilePropertyError(t *testing.T) {
	t.Parallel()

	solo, err := newLateBoundSolo("{0}", []Token{{Kind: LateBind, Member: "bogus"}})
	if err != nil {
		t.Fatalf("newLateBoundSolo() error = %v", err)
	}
	cache := fileprop.New("/src/widgets/Scheduler.cpp")
	if err := solo.Replacer.Resolve(cache); err == nil {
		t.Error("expected an error for an unknown file property")
	}
}
