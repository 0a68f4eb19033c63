package findbugs_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/securego/findbugs-report"
	"github.com/securego/findbugs-report/testutils"
)

var _ = Describe("Threshold", func() {
	It("should give every threshold a name", func() {
		for _, t := range findbugs.Thresholds() {
			Expect(t.Name()).ShouldNot(BeEmpty())
			Expect(t.Valid()).Should(BeTrue())
		}
	})

	It("should map the engine priorities", func() {
		Expect(findbugs.High.Value()).Should(Equal(1))
		Expect(findbugs.Normal.Value()).Should(Equal(2))
		Expect(findbugs.Low.Value()).Should(Equal(3))
		Expect(findbugs.Exp.Value()).Should(Equal(4))
		Expect(findbugs.Ignore.Value()).Should(Equal(5))
	})

	It("should round trip priorities through their names", func() {
		for p := 1; p <= 5; p++ {
			t, ok := findbugs.ParseThreshold(findbugs.PriorityName(p))
			Expect(ok).Should(BeTrue())
			Expect(t.Value()).Should(Equal(p))
		}
	})

	DescribeTable("names of invalid priorities",
		func(priority int) {
			Expect(findbugs.PriorityName(priority)).Should(Equal(findbugs.InvalidPriority))
		},
		Entry("zero", 0),
		Entry("negative", -1),
		Entry("above ignore", 6),
	)

	It("should not parse names in another case", func() {
		_, ok := findbugs.ParseThreshold("high")
		Expect(ok).Should(BeFalse())
	})

	Context("when resolving configured names", func() {
		It("should use the default for an empty name", func() {
			logger, buf := testutils.NewLogger()
			Expect(findbugs.ThresholdFor("", logger)).Should(Equal(findbugs.Low))
			Expect(buf.String()).Should(ContainSubstring("No threshold provided, using default threshold."))
		})

		It("should use the default for an unknown name", func() {
			logger, buf := testutils.NewLogger()
			Expect(findbugs.ThresholdFor("Extreme", logger)).Should(Equal(findbugs.DefaultThreshold))
			Expect(buf.String()).Should(ContainSubstring("Threshold not recognised"))
		})

		It("should use a known name", func() {
			logger, buf := testutils.NewLogger()
			Expect(findbugs.ThresholdFor("High", logger)).Should(Equal(findbugs.High))
			Expect(buf.String()).Should(ContainSubstring("Using High threshold."))
		})
	})
})

var _ = Describe("Effort", func() {
	It("should give every effort a name and settings", func() {
		for _, e := range findbugs.Efforts() {
			Expect(e.Name()).ShouldNot(BeEmpty())
			Expect(e.Settings()).Should(HaveLen(9))
		}
	})

	It("should enable interprocedural analysis only for max effort", func() {
		enabled := func(e findbugs.Effort) bool {
			for _, s := range e.Settings() {
				if s.Name == findbugs.FeatureInterprocedural {
					return s.Enabled
				}
			}
			return false
		}
		Expect(enabled(findbugs.Min)).Should(BeFalse())
		Expect(enabled(findbugs.Default)).Should(BeFalse())
		Expect(enabled(findbugs.Max)).Should(BeTrue())
	})

	It("should hand out copies of the settings", func() {
		settings := findbugs.Max.Settings()
		settings[0].Enabled = !settings[0].Enabled
		Expect(findbugs.Max.Settings()[0].Enabled).ShouldNot(Equal(settings[0].Enabled))
	})

	It("should resolve configured names", func() {
		logger, buf := testutils.NewLogger()
		Expect(findbugs.EffortFor("", logger)).Should(Equal(findbugs.Default))
		Expect(findbugs.EffortFor("Huge", logger)).Should(Equal(findbugs.DefaultEffort))
		Expect(findbugs.EffortFor("Min", logger)).Should(Equal(findbugs.Min))
		Expect(buf.String()).Should(ContainSubstring("Using Min effort."))
	})

	It("should reject undefined values", func() {
		Expect(findbugs.Effort(0).Valid()).Should(BeFalse())
		Expect(findbugs.Effort(4).Valid()).Should(BeFalse())
	})
})
