package optim

import (
	"errors"
	"testing"

	"github.com/gradtree-ml/gradtree/internal/tensor"
	"github.com/gradtree-ml/gradtree/internal/transform"
	"github.com/gradtree-ml/gradtree/internal/tree"
)

// Helper to check float equality with tolerance.
func floatEqual(a, b, eps float32) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < eps
}

func paramTree(t *testing.T, values ...float32) map[string]any {
	t.Helper()
	w, err := tensor.FromSlice(values, tensor.Shape{len(values)})
	if err != nil {
		t.Fatalf("param tree: %v", err)
	}
	return map[string]any{"w": w}
}

func leafValue(t *testing.T, tr any) float32 {
	t.Helper()
	m, ok := tr.(map[string]any)
	if !ok {
		t.Fatalf("expected mapping, got %T", tr)
	}
	leaf, ok := m["w"].(*tensor.Tensor)
	if !ok {
		t.Fatalf("expected tensor leaf, got %T", m["w"])
	}
	return leaf.At(0)
}

// TestInit_ReturnsFreshInstance tests the copy-on-init contract: the
// receiver stays untouched and the returned instance carries the state.
func TestInit_ReturnsFreshInstance(t *testing.T) {
	base := SGD(0.1)
	p := paramTree(t, 0.0)

	opt, err := base.Init(p)
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	if base.Initialized() {
		t.Error("receiver must stay uninitialized after Init")
	}
	if base.State() != nil {
		t.Error("receiver state must stay nil after Init")
	}
	if !opt.Initialized() {
		t.Error("returned optimizer must be initialized")
	}
	if opt.State() == nil {
		t.Error("returned optimizer must carry a state")
	}
}

// TestInit_StateMatchesTransformation checks the adapter stores exactly
// what the wrapped transformation's Init produces.
func TestInit_StateMatchesTransformation(t *testing.T) {
	tx := transform.Momentum(0.1, 0.9)
	p := paramTree(t, 1.0, 2.0)

	direct, err := tx.Init(p)
	if err != nil {
		t.Fatalf("direct init: %v", err)
	}

	opt, err := New(tx).Init(p)
	if err != nil {
		t.Fatalf("adapter init: %v", err)
	}

	if !tree.Equal(direct, opt.State()) {
		t.Error("adapter state differs from the transformation's init result")
	}
}

// TestApplyUpdates_BeforeInit fails for any inputs.
func TestApplyUpdates_BeforeInit(t *testing.T) {
	opt := SGD(0.1)
	g := paramTree(t, 1.0)
	p := paramTree(t, 0.0)

	if _, err := opt.ApplyUpdates(g, p); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ApplyUpdates before Init: got %v, want ErrNotInitialized", err)
	}
	if _, err := opt.Updates(g, p); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Updates before Init: got %v, want ErrNotInitialized", err)
	}

	// The initialized gate comes first even when params are missing.
	if _, err := opt.ApplyUpdates(g, nil); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ApplyUpdates before Init with nil params: got %v, want ErrNotInitialized", err)
	}
}

// TestApplyUpdates_NilParams fails with the params-required error.
func TestApplyUpdates_NilParams(t *testing.T) {
	opt, err := SGD(0.1).Init(paramTree(t, 0.0))
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	if _, err := opt.ApplyUpdates(paramTree(t, 1.0), nil); !errors.Is(err, ErrParamsRequired) {
		t.Errorf("got %v, want ErrParamsRequired", err)
	}
}

// TestApplyUpdates_PlainSGD is the worked gradient-descent example:
// Init({"w": 0}) then ApplyUpdates({"w": 1}, {"w": 0}) yields {"w": -lr},
// and the state keeps its empty shape across calls.
func TestApplyUpdates_PlainSGD(t *testing.T) {
	opt, err := SGD(0.1).Init(paramTree(t, 0.0))
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	before := opt.State()
	applied, err := opt.ApplyUpdates(paramTree(t, 1.0), paramTree(t, 0.0))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if got := leafValue(t, applied); !floatEqual(got, -0.1, 1e-6) {
		t.Errorf("SGD step: got %f, want -0.1", got)
	}
	if !tree.Equal(before, opt.State()) {
		t.Error("stateless transformation must keep its empty state shape")
	}
}

// TestUpdates_ReturnsRawDeltas checks the raw-delta surface against the
// wrapped transformation's own output, and that state advances identically.
func TestUpdates_ReturnsRawDeltas(t *testing.T) {
	tx := transform.Momentum(0.1, 0.9)
	p := paramTree(t, 1.0)
	g := paramTree(t, 1.0)

	// Reference: drive the transformation directly.
	refState, err := tx.Init(p)
	if err != nil {
		t.Fatalf("direct init: %v", err)
	}
	refUpdates, refNext, err := tx.Update(g, refState, p)
	if err != nil {
		t.Fatalf("direct update: %v", err)
	}

	opt, err := New(tx).Init(p)
	if err != nil {
		t.Fatalf("adapter init: %v", err)
	}
	updates, err := opt.Updates(g, p)
	if err != nil {
		t.Fatalf("adapter updates: %v", err)
	}

	if !tree.Equal(refUpdates, updates) {
		t.Error("raw deltas differ from the transformation's own output")
	}
	if !tree.Equal(refNext, opt.State()) {
		t.Error("state transition differs from the transformation's own output")
	}
}

// TestStateAdvance_IndependentOfSurface checks ApplyUpdates and Updates
// advance the state identically for the same inputs.
func TestStateAdvance_IndependentOfSurface(t *testing.T) {
	tx := transform.Momentum(0.1, 0.9)
	p := paramTree(t, 1.0)
	g := paramTree(t, 1.0)

	applier, err := New(tx).Init(p)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	raw, err := New(tx).Init(p)
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	if _, err := applier.ApplyUpdates(g, p); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := raw.Updates(g, p); err != nil {
		t.Fatalf("updates: %v", err)
	}

	if !tree.Equal(applier.State(), raw.State()) {
		t.Error("state transition must not depend on the result surface")
	}
}

// TestApplyUpdates_StateAdvances checks two identical calls to a
// momentum optimizer give different results, proving the state moved.
func TestApplyUpdates_StateAdvances(t *testing.T) {
	opt, err := Momentum(0.1, 0.9).Init(paramTree(t, 1.0))
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	g := paramTree(t, 1.0)
	p := paramTree(t, 1.0)

	first, err := opt.Updates(g, p)
	if err != nil {
		t.Fatalf("step 1: %v", err)
	}
	second, err := opt.Updates(g, p)
	if err != nil {
		t.Fatalf("step 2: %v", err)
	}

	// v_1 = 1, v_2 = 1.9: same inputs, different deltas.
	if tree.Equal(first, second) {
		t.Error("momentum deltas must change as the trace accumulates")
	}
	if got := leafValue(t, first); !floatEqual(got, -0.1, 1e-6) {
		t.Errorf("step 1 delta: got %f, want -0.1", got)
	}
	if got := leafValue(t, second); !floatEqual(got, -0.19, 1e-6) {
		t.Errorf("step 2 delta: got %f, want -0.19", got)
	}
}

// TestApplyUpdates_ErrorPassThrough checks transformation errors reach
// the caller unwrapped and leave the state untouched.
func TestApplyUpdates_ErrorPassThrough(t *testing.T) {
	opt, err := Momentum(0.1, 0.9).Init(paramTree(t, 1.0, 2.0))
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	before := opt.State()

	// Gradient tree with a foreign scaffold (wrong key).
	w, err := tensor.FromSlice([]float32{1.0, 2.0}, tensor.Shape{2})
	if err != nil {
		t.Fatalf("leaf: %v", err)
	}
	badGrads := map[string]any{"b": w}
	if _, err := opt.ApplyUpdates(badGrads, paramTree(t, 1.0, 2.0)); err == nil {
		t.Fatal("expected structure mismatch error")
	} else if !errors.Is(err, tree.ErrMismatch) {
		t.Errorf("expected pass-through tree error, got %v", err)
	}

	if !tree.Equal(before, opt.State()) {
		t.Error("failed update must not advance the state")
	}
}

// TestConvergence_SimpleQuadratic verifies the adapter can minimize
// f(w) = w² with the named variants.
func TestConvergence_SimpleQuadratic(t *testing.T) {
	variants := map[string]*Optimizer{
		"sgd":      SGD(0.1),
		"adam":     Adam(transform.AdamConfig{LR: 0.1}),
		"rmsprop":  RMSProp(transform.RMSPropConfig{LR: 0.05}),
		"adagrad":  Adagrad(transform.AdagradConfig{LR: 0.5}),
		"adamw":    AdamW(transform.AdamWConfig{LR: 0.1}),
		"momentum": Momentum(0.05, 0.5),
	}

	for name, base := range variants {
		t.Run(name, func(t *testing.T) {
			params := paramTree(t, 3.0)
			opt, err := base.Init(params)
			if err != nil {
				t.Fatalf("init: %v", err)
			}

			var updated any = params
			for i := 0; i < 200; i++ {
				// f(w) = w², df/dw = 2w
				w := leafValue(t, updated)
				grads := paramTree(t, 2.0*w)

				updated, err = opt.ApplyUpdates(grads, updated)
				if err != nil {
					t.Fatalf("step %d: %v", i, err)
				}
			}

			if final := leafValue(t, updated); !floatEqual(final, 0, 0.15) {
				t.Errorf("%s convergence: w = %f, expected close to 0", name, final)
			}
		})
	}
}

// TestLoadState restores a captured state into a fresh adapter.
func TestLoadState(t *testing.T) {
	p := paramTree(t, 1.0)
	g := paramTree(t, 1.0)

	opt, err := Momentum(0.1, 0.9).Init(p)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := opt.Updates(g, p); err != nil {
		t.Fatalf("step: %v", err)
	}

	restored := Momentum(0.1, 0.9)
	restored.LoadState(opt.State())

	if !restored.Initialized() {
		t.Fatal("LoadState must mark the optimizer initialized")
	}

	// Both continue identically from the captured state.
	a, err := opt.Updates(g, p)
	if err != nil {
		t.Fatalf("original step: %v", err)
	}
	b, err := restored.Updates(g, p)
	if err != nil {
		t.Fatalf("restored step: %v", err)
	}
	if !tree.Equal(a, b) {
		t.Error("restored optimizer must continue from the captured state")
	}
}

// TestVariant_NamedTable exercises the name-based constructor.
func TestVariant_NamedTable(t *testing.T) {
	opt, err := Variant("adam", transform.Config{LR: 0.01})
	if err != nil {
		t.Fatalf("variant: %v", err)
	}
	initialized, err := opt.Init(paramTree(t, 1.0))
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !initialized.Initialized() {
		t.Error("expected initialized optimizer")
	}

	if _, err := Variant("lion", transform.Config{}); err == nil {
		t.Error("expected error for unsupported variant")
	}
}
