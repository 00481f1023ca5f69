// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"src.marq.sh/pkg/color"
	"src.marq.sh/pkg/eval/vals"
	"src.marq.sh/pkg/geom"
	"src.marq.sh/pkg/markup"
	"src.marq.sh/pkg/store/storedefs"
	"src.marq.sh/pkg/yamlval"
)

// TestSharedValue tests the shared value functionality of a Store.
func TestSharedValue(t *testing.T, store storedefs.Store) {
	const name = "page"
	value := vals.From(vals.Dict{
		"margin": vals.Linear(geom.Linear{Rel: 0.1, Abs: geom.Points(5)}),
		"fill":   vals.Color(color.RGB(0xf7, 0x91, 0x43)),
		"tags":   vals.From(vals.Array{vals.Str("a"), vals.Int(2), vals.None}),
	})

	if _, err := store.SharedValue(name); !errors.Is(err, storedefs.ErrNoSharedValue) {
		t.Errorf("SharedValue -> error %v, want %v", err, storedefs.ErrNoSharedValue)
	}

	if err := store.SetSharedValue(name, value); err != nil {
		t.Errorf("SetSharedValue -> error %v", err)
	}
	if v, err := store.SharedValue(name); !vals.Equal(v, value) || err != nil {
		t.Errorf("SharedValue -> (%s, %v), want (%s, nil)", vals.Repr(v), err, vals.Repr(value))
	}

	if err := store.SetSharedValue("a", vals.Int(1)); err != nil {
		t.Errorf("SetSharedValue -> error %v", err)
	}
	names, err := store.SharedValueNames()
	if diff := cmp.Diff([]string{"a", name}, names); diff != "" || err != nil {
		t.Errorf("SharedValueNames -> error %v, diff (-want +got):\n%s", err, diff)
	}

	err = store.SetSharedValue("t", vals.Template(markup.Tree{markup.Text("x")}))
	if !errors.Is(err, yamlval.ErrUnsupported) {
		t.Errorf("SetSharedValue(template) -> error %v, want %v", err, yamlval.ErrUnsupported)
	}

	if err := store.DelSharedValue(name); err != nil {
		t.Errorf("DelSharedValue -> error %v", err)
	}
	if _, err := store.SharedValue(name); !errors.Is(err, storedefs.ErrNoSharedValue) {
		t.Errorf("SharedValue after delete -> error %v, want %v", err, storedefs.ErrNoSharedValue)
	}
	if err := store.DelSharedValue(name); err != nil {
		t.Errorf("DelSharedValue of missing value -> error %v", err)
	}
}
