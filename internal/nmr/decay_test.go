package nmr_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/nmrsim/internal/nmr"
)

var _ = Describe("T2 decay pipeline", func() {
	var (
		sphere nmr.Sphere
		t2     nmr.Milliseconds
	)

	BeforeEach(func() {
		var err error
		sphere, err = nmr.SphereGeometry(10)
		Expect(err).NotTo(HaveOccurred())
		t2, err = nmr.T2(20, sphere.SurfaceToVolume())
		Expect(err).NotTo(HaveOccurred())
	})

	It("reproduces the worked reference example", func() {
		Expect(float64(sphere.SurfaceArea)).To(BeNumerically("~", 1256.637, 1e-3))
		Expect(float64(sphere.Volume)).To(BeNumerically("~", 4188.790, 1e-3))
		Expect(float64(sphere.SurfaceToVolume())).To(BeNumerically("~", 0.3, 1e-12))
		Expect(float64(t2)).To(BeNumerically("~", 0.1667, 1e-4))

		curve, err := nmr.DecayCurve(t2, 25, nmr.TimeDomain{t2})
		Expect(err).NotTo(HaveOccurred())
		Expect(curve[0].Amplitude).To(BeNumerically("~", 9.197, 1e-3))
	})

	It("keeps curve shape identical across porosities", func() {
		domain, err := nmr.UniformDomain(t2, 50)
		Expect(err).NotTo(HaveOccurred())

		curves, err := nmr.GenerateScenarios(t2, []nmr.Scenario{
			{Label: "porosity_1", Porosity: 10},
			{Label: "porosity_2", Porosity: 20},
			{Label: "porosity_3", Porosity: 30},
		}, domain)
		Expect(err).NotTo(HaveOccurred())
		Expect(curves).To(HaveLen(3))

		for i := range domain {
			base := curves[0].Curve[i].Amplitude
			Expect(curves[1].Curve[i].Amplitude).To(BeNumerically("~", 2*base, 1e-9))
			Expect(curves[2].Curve[i].Amplitude).To(BeNumerically("~", 3*base, 1e-9))
		}
	})

	It("is a pure function of its inputs", func() {
		domain, err := nmr.GeometricDomain(0.5, 1024, 12)
		Expect(err).NotTo(HaveOccurred())

		first, err := nmr.DecayCurve(t2, 25, domain)
		Expect(err).NotTo(HaveOccurred())
		second, err := nmr.DecayCurve(t2, 25, domain)
		Expect(err).NotTo(HaveOccurred())
		Expect(second).To(Equal(first))
	})

	It("accepts a negative amplitude as a mirrored curve", func() {
		curve, err := nmr.DecayCurve(t2, -25, nmr.TimeDomain{0, t2})
		Expect(err).NotTo(HaveOccurred())
		Expect(curve[0].Amplitude).To(Equal(-25.0))
		Expect(curve[1].Amplitude).To(BeNumerically("~", -25/math.E, 1e-9))
	})

	It("rejects a non-positive T2", func() {
		_, err := nmr.DecayCurve(0, 25, nmr.TimeDomain{0})
		Expect(err).To(MatchError(nmr.ErrInvalidParameter))
	})
})
