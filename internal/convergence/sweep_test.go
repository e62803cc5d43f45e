package convergence_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sdelab/internal/convergence"
	"github.com/san-kum/sdelab/internal/sde"
)

func coeff(x float64) *float64 { return &x }

func sweep(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Pow(10, lo+(hi-lo)*float64(i)/float64(n-1))
	}
	return out
}

var _ = Describe("Sweep", func() {
	newParams := func(typ sde.Type) convergence.Params {
		opts := sde.DefaultOptions().WithType(typ).WithSeed(1)
		return convergence.Params{
			StepSizes: sweep(-3, -1, 3),
			Paths:     1000,
			Drift:     coeff(1),
			Diffusion: coeff(1),
			Options:   &opts,
			Outputs:   2,
		}
	}

	Describe("end-to-end Stratonovich run", func() {
		It("returns positive finite errors consistent with order 1.0", func() {
			res, err := convergence.Run(newParams(sde.Stratonovich))
			Expect(err).NotTo(HaveOccurred())

			Expect(res.MeanErrors).To(HaveLen(3))
			for _, m := range res.MeanErrors {
				Expect(m).To(BeNumerically(">", 0))
				Expect(math.IsInf(m, 0)).To(BeFalse())
			}
			Expect(res.EmpiricalOrder()).To(BeNumerically("~", 1.0, 0.3))
		})
	})

	Describe("end-to-end Ito run", func() {
		It("halves the empirical order", func() {
			res, err := convergence.Run(newParams(sde.Ito))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.EmpiricalOrder()).To(BeNumerically("~", 0.5, 0.25))
		})
	})

	Describe("coefficient handling", func() {
		It("rejects a lone drift coefficient", func() {
			p := newParams(sde.Stratonovich)
			p.Diffusion = nil
			_, err := convergence.Run(p)
			Expect(err).To(MatchError(convergence.ErrIncompleteCoefficients))
		})

		It("defaults both coefficients to one", func() {
			p := newParams(sde.Stratonovich)
			p.Drift, p.Diffusion = nil, nil
			res, err := convergence.Run(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Drift).To(Equal(1.0))
			Expect(res.Diffusion).To(Equal(1.0))
		})
	})
})
