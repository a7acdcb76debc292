package registry

import (
	"testing"

	"github.com/san-kum/galpot/internal/potential"
)

func TestGetAppliesParams(t *testing.T) {
	r := New()

	p, err := r.Get("plummer", map[string]float64{"amp": 2.5, "b": 0.3})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Amplitude() != 2.5 {
		t.Errorf("amp not applied: %f", p.Amplitude())
	}

	c, ok := p.(potential.Configurable)
	if !ok {
		t.Fatal("plummer should be configurable")
	}
	if c.GetParams()["b"] != 0.3 {
		t.Errorf("b not applied: %v", c.GetParams())
	}
}

func TestGetDefaults(t *testing.T) {
	r := New()

	p, err := r.Get("kepler", nil)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Amplitude() != 1.0 {
		t.Errorf("expected default amplitude 1, got %f", p.Amplitude())
	}
}

func TestGetUnknownModel(t *testing.T) {
	r := New()
	if _, err := r.Get("isothermal", nil); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestListIsSortedAndComplete(t *testing.T) {
	r := New()
	names := r.List()

	if len(names) != 5 {
		t.Fatalf("expected 5 models, got %d: %v", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("list not sorted: %v", names)
		}
	}
}

func TestCosMPhiIsNonAxisymmetric(t *testing.T) {
	r := New()
	p, err := r.Get("cosmphi", map[string]float64{"m": 2})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.IsAxisymmetric() {
		t.Error("cosmphi should be non-axisymmetric")
	}
}
