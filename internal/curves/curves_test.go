package curves_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/galpot/internal/curves"
	"github.com/san-kum/galpot/internal/models"
	"github.com/san-kum/galpot/internal/potential"
)

var _ = Describe("VCirc", func() {
	It("is Keplerian for a point mass", func() {
		k := models.NewKepler(1.0)
		for _, R := range []float64{0.5, 1.0, 2.0, 4.0} {
			v, err := curves.VCirc(k, R)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(BeNumerically("~", 1.0/math.Sqrt(R), 1e-10))
		}
	})

	It("is unity at R=1 after full normalization", func() {
		p := models.NewPlummer(2.7, 0.4)
		Expect(potential.NormalizeFull(p)).To(Succeed())

		v, err := curves.VCirc(p, 1.0)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeNumerically("~", 1.0, 1e-8))
	})

	It("adds contributions in quadrature for a composition", func() {
		disk := models.NewMiyamotoNagai(0.6, 0.5, 0.3)
		halo := models.NewLogHalo(0.4, 0.2, 1.0)
		pots := []potential.Potential{disk, halo}

		vd, _ := curves.VCirc(disk, 1.3)
		vh, _ := curves.VCirc(halo, 1.3)
		vt, err := curves.VCirc(pots, 1.3)
		Expect(err).NotTo(HaveOccurred())
		Expect(vt * vt).To(BeNumerically("~", vd*vd+vh*vh, 1e-10))
	})

	It("rejects inputs that are not potentials", func() {
		_, err := curves.VCirc("halo", 1.0)
		Expect(err).To(MatchError(potential.ErrInvalidInput))
	})
})

var _ = Describe("VEsc", func() {
	It("is sqrt(2) times the circular velocity for a point mass", func() {
		k := models.NewKepler(1.0)
		for _, R := range []float64{0.5, 1.0, 3.0} {
			ve, err := curves.VEsc(k, R)
			Expect(err).NotTo(HaveOccurred())
			vc, _ := curves.VCirc(k, R)
			Expect(ve).To(BeNumerically("~", math.Sqrt2*vc, 1e-10))
		}
	})

	It("fails for potentials that do not vanish at infinity", func() {
		halo := models.NewLogHalo(1.0, 0.1, 1.0)
		_, err := curves.VEsc(halo, 5.0)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Rotation", func() {
	It("samples n points over the radius range", func() {
		samples, err := curves.Rotation(models.NewKepler(1.0), 0.5, 2.0, 16)
		Expect(err).NotTo(HaveOccurred())
		Expect(samples).To(HaveLen(16))
		Expect(samples[0].R).To(Equal(0.5))
		Expect(samples[15].R).To(BeNumerically("~", 2.0, 1e-12))
	})

	It("is flat for a coreless logarithmic halo", func() {
		samples, err := curves.Rotation(models.NewLogHalo(1.0, 0.0, 1.0), 1.0, 10.0, 10)
		Expect(err).NotTo(HaveOccurred())
		for _, s := range samples {
			Expect(s.V).To(BeNumerically("~", 1.0, 1e-10))
		}
	})

	It("rejects degenerate ranges", func() {
		_, err := curves.Rotation(models.NewKepler(1.0), 2.0, 1.0, 10)
		Expect(err).To(HaveOccurred())
		_, err = curves.Rotation(models.NewKepler(1.0), 0.5, 2.0, 1)
		Expect(err).To(HaveOccurred())
	})

	It("propagates missing raw operations", func() {
		_, err := curves.Escape([]potential.Potential{models.NewKepler(1.0), barePotential()}, 0.5, 2.0, 4)
		Expect(err).To(MatchError(potential.ErrNotImplemented))
	})
})

type bare struct{ potential.Base }

func barePotential() potential.Potential {
	return &bare{Base: potential.NewBase(1.0)}
}
