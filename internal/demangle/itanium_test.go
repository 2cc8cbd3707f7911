package demangle

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/9inefold/debase/internal/symfeat"
)

func TestItaniumClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mangled  string
		wantKind symfeat.Kind
		want     *symfeat.Features
	}{
		{
			name:     "empty input is invalid",
			mangled:  "",
			wantKind: symfeat.Invalid,
			want:     &symfeat.Features{},
		},
		{
			name:     "not a mangled name",
			mangled:  "update",
			wantKind: symfeat.Invalid,
			want:     &symfeat.Features{},
		},
		{
			name:     "free function is ignorable",
			mangled:  "_Z3fooi",
			wantKind: symfeat.Ignorable,
			want:     &symfeat.Features{},
		},
		{
			name:     "vtable is other",
			mangled:  "_ZTV9cocos2d11CCScheduler",
			wantKind: symfeat.Other,
			want:     &symfeat.Features{},
		},
		{
			name:     "typeinfo is other",
			mangled:  "_ZTI9cocos2d11CCScheduler",
			wantKind: symfeat.Other,
			want:     &symfeat.Features{},
		},
		{
			name:     "destructor base object variant",
			mangled:  "_ZN7cocos2d11CCLightningD2Ev",
			wantKind: symfeat.Dtor,
			want: &symfeat.Features{
				ScopeNames: []string{"cocos2d", "CCLightning", "CCLightning"},
				BaseName:   "CCLightning",
				Kind:       symfeat.Dtor,
				Variant:    2,
			},
		},
		{
			name:     "destructor deleting variant excluded by caller",
			mangled:  "_ZN7cocos2d11CCLightningD0Ev",
			wantKind: symfeat.Dtor,
			want: &symfeat.Features{
				ScopeNames: []string{"cocos2d", "CCLightning", "CCLightning"},
				BaseName:   "CCLightning",
				Kind:       symfeat.Dtor,
				Variant:    0,
			},
		},
		{
			name:     "constructor complete object variant",
			mangled:  "_ZN7cocos2d11CCSchedulerC1Ev",
			wantKind: symfeat.Ctor,
			want: &symfeat.Features{
				ScopeNames: []string{"cocos2d", "CCScheduler", "CCScheduler"},
				BaseName:   "CCScheduler",
				Kind:       symfeat.Ctor,
				Variant:    1,
			},
		},
		{
			name:     "nested non-structor is ignorable",
			mangled:  "_ZN7cocos2d11CCScheduler6updateEf",
			wantKind: symfeat.Ignorable,
			want:     &symfeat.Features{},
		},
		{
			name:     "anonymous namespace collapses to empty scope entry",
			mangled:  "_ZN12_GLOBAL__N_13FooC1Ev",
			wantKind: symfeat.Ctor,
			want: &symfeat.Features{
				ScopeNames: []string{"", "Foo", "Foo"},
				BaseName:   "Foo",
				Kind:       symfeat.Ctor,
				Variant:    1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out symfeat.Features
			got := itaniumDemangler{}.Classify(tt.mangled, &out)
			if got != tt.wantKind {
				t.Errorf("Classify() kind = %v, want %v", got, tt.wantKind)
			}
			if diff := cmp.Diff(*tt.want, out); diff != "" {
				t.Errorf("Classify() features mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
