package obj

import (
	"reflect"
	"testing"

	"github.com/ib-77/funk/pkg/fun"
	"github.com/ib-77/funk/pkg/fun/arith"
)

func TestEvolve_Flat(t *testing.T) {
	t.Parallel()
	got := Evolve(map[string]any{"foo": arith.Inc}, map[string]any{"foo": 122})

	want := map[string]any{"foo": 123}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got: %v", want, got)
	}
}

func TestEvolve_Nested(t *testing.T) {
	t.Parallel()
	tr := map[string]any{"foo": map[string]any{"bar": arith.Inc}}
	data := map[string]any{"foo": map[string]any{"bar": 122}}

	got := Evolve(tr, data)
	want := map[string]any{"foo": map[string]any{"bar": 123}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got: %v", want, got)
	}
}

func TestEvolve_UntouchedKeysPassThrough(t *testing.T) {
	t.Parallel()
	tr := map[string]any{"foo": arith.Inc, "ghost": arith.Inc}
	data := map[string]any{"foo": 1, "bar": "keep"}

	got := Evolve(tr, data)
	want := map[string]any{"foo": 2, "bar": "keep"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("keys absent from either side must pass through, got: %v", got)
	}
}

func TestEvolve_NonFunctionEntriesIgnored(t *testing.T) {
	t.Parallel()
	tr := map[string]any{"foo": "not callable"}
	data := map[string]any{"foo": 1}

	got := Evolve(tr, data)
	want := map[string]any{"foo": 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("non-function spec entries must be ignored, got: %v", got)
	}
}

func TestEvolve_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	data := map[string]any{"foo": 122}
	Evolve(map[string]any{"foo": arith.Inc}, data)

	if data["foo"] != 122 {
		t.Fatalf("input map must stay untouched, got: %v", data["foo"])
	}
}

func TestEvolve_TypedUpdater(t *testing.T) {
	t.Parallel()
	upper := func(s string) string { return s + "!" }

	got := Evolve(map[string]any{"msg": upper}, map[string]any{"msg": "hi"})
	want := map[string]any{"msg": "hi!"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected typed updater to lift, got: %v", got)
	}
}

func TestApplySpec_NestedSpec(t *testing.T) {
	t.Parallel()
	sp := map[string]any{
		"sum":    arith.Add,
		"nested": map[string]any{"mul": arith.Multiply},
	}

	got := ApplySpec(sp, 2, 4)
	want := map[string]any{
		"sum":    6,
		"nested": map[string]any{"mul": 8},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got: %v", want, got)
	}
}

func TestApplySpec_Curried(t *testing.T) {
	t.Parallel()
	describe := ApplySpec(map[string]any{
		"same":    fun.Identity,
		"doubled": arith.Multiply(2),
	}).(fun.Fn)

	got := describe(21)
	want := map[string]any{"same": 21, "doubled": 42}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got: %v", want, got)
	}
}
