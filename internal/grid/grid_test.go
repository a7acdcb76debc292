package grid

import (
	"errors"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/galpot/internal/models"
	"github.com/san-kum/galpot/internal/potential"
)

func TestEvaluatePotentials(t *testing.T) {
	g := NewWithT(t)

	pots := []potential.Potential{
		models.NewMiyamotoNagai(0.6, 0.5, 0.3),
		models.NewPlummer(0.4, 0.8),
	}
	sp := Spec{Rmin: 0.1, Rmax: 2.0, NR: 8, Zmin: -0.5, Zmax: 0.5, NZ: 5}

	gr, err := EvaluatePotentials(pots, sp)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(gr.Rs).To(HaveLen(8))
	g.Expect(gr.Zs).To(HaveLen(5))
	g.Expect(gr.Values).To(HaveLen(8))

	want, _ := potential.EvaluatePotentials(gr.Rs[3], gr.Zs[2], pots)
	g.Expect(gr.Values[3][2]).To(Equal(want))

	min, max := gr.Bounds()
	g.Expect(min).To(BeNumerically("<", max))
	g.Expect(min).To(BeNumerically("<", 0))
}

func TestEvaluateDensitiesPropagatesErrors(t *testing.T) {
	g := NewWithT(t)

	// Kepler has no closed-form density.
	_, err := EvaluateDensities(models.NewKepler(1.0), DefaultSpec())
	g.Expect(errors.Is(err, potential.ErrNotImplemented)).To(BeTrue())
}

func TestSpecValidation(t *testing.T) {
	g := NewWithT(t)

	_, err := EvaluatePotentials(models.NewKepler(1.0), Spec{Rmin: 1, Rmax: 0, NR: 5, Zmin: 0, Zmax: 1, NZ: 5})
	g.Expect(err).To(HaveOccurred())

	_, err = EvaluatePotentials(models.NewKepler(1.0), Spec{Rmin: 0, Rmax: 1, NR: 1, Zmin: 0, Zmax: 1, NZ: 5})
	g.Expect(err).To(HaveOccurred())
}

func TestSavefileRoundTrip(t *testing.T) {
	g := NewWithT(t)

	pot := models.NewPlummer(1.0, 0.5)
	sp := Spec{Rmin: 0.2, Rmax: 1.2, NR: 4, Zmin: -0.3, Zmax: 0.3, NZ: 3}
	path := filepath.Join(t.TempDir(), "potgrid.json")

	orig, err := EvaluatePotentials(pot, sp)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(orig.Save(path)).To(Succeed())

	loaded, err := Load(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(loaded.Rs).To(Equal(orig.Rs))
	g.Expect(loaded.Zs).To(Equal(orig.Zs))
	g.Expect(loaded.Values).To(Equal(orig.Values))
}

func TestCachedSkipsRecompute(t *testing.T) {
	g := NewWithT(t)

	pot := models.NewPlummer(1.0, 0.5)
	sp := Spec{Rmin: 0.2, Rmax: 1.2, NR: 4, Zmin: -0.3, Zmax: 0.3, NZ: 3}
	path := filepath.Join(t.TempDir(), "potgrid.json")

	calls := 0
	compute := func() (*Grid, error) {
		calls++
		return EvaluatePotentials(pot, sp)
	}

	first, err := Cached(path, compute)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(calls).To(Equal(1))

	second, err := Cached(path, compute)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(calls).To(Equal(1), "savefile should short-circuit the recompute")
	g.Expect(second.Values).To(Equal(first.Values))
}
