package xdoc_test

import (
	"bytes"
	"errors"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/securego/findbugs-report"
	"github.com/securego/findbugs-report/report/xdoc"
	"github.com/securego/findbugs-report/testutils"
)

var _ = Describe("XML Document Reporter", func() {
	var (
		delegate *testutils.MockReporter
		buf      *bytes.Buffer
		logs     *bytes.Buffer
		reporter *xdoc.Reporter
	)

	BeforeEach(func() {
		var (
			err    error
			logger *slog.Logger
		)
		logger, logs = testutils.NewLogger()
		delegate = testutils.NewMockReporter()
		buf = &bytes.Buffer{}
		reporter, err = xdoc.NewReporter(delegate, findbugs.NewMessages("en"), logger, findbugs.Low, findbugs.Default, xdoc.Options{})
		Expect(err).ShouldNot(HaveOccurred())
		reporter.SetOutputWriter(buf)
	})

	Context("when a class has a single bug", func() {
		It("should write the class and bug elements", func() {
			reporter.ObserveClass("pkg.A")
			reporter.ReportBug(testutils.NewBug("pkg.A", "X", "CORRECTNESS", 2, 10))
			Expect(reporter.Finish()).Should(Succeed())

			Expect(buf.String()).Should(Equal(`<?xml version="1.0" encoding="UTF-8"?>
<BugCollection version="1.2.1" threshold="Low" effort="Default" >
<file classname="pkg.A" >
<BugInstance type="X" priority="Normal" category="CORRECTNESS" message="NP: Possible null pointer dereference in pkg.A" lineNumber="10" />
</file>
<Errors>
</Errors>
</BugCollection>
`))
			Expect(delegate.Classes).Should(Equal([]string{"pkg.A"}))
			Expect(delegate.Bugs).Should(HaveLen(1))
			Expect(delegate.Finished).Should(Equal(1))
		})
	})

	Context("when the delegate filters bugs", func() {
		It("should only write accepted bugs", func() {
			delegate.Filter = func(bug *findbugs.BugInstance) bool {
				return bug.Priority <= findbugs.Normal.Value()
			}
			reporter.ObserveClass("pkg.A")
			reporter.ReportBug(testutils.NewBug("pkg.A", "X", "CORRECTNESS", 1, 1))
			reporter.ReportBug(testutils.NewBug("pkg.A", "Y", "CORRECTNESS", 3, 2))
			Expect(reporter.Finish()).Should(Succeed())

			Expect(buf.String()).Should(ContainSubstring(`type="X" priority="High"`))
			Expect(buf.String()).ShouldNot(ContainSubstring(`type="Y"`))
			Expect(reporter.Metrics().NumBugs).Should(Equal(1))
		})
	})

	Context("when bugs repeat", func() {
		It("should write a bug once", func() {
			reporter.ObserveClass("pkg.A")
			reporter.ReportBug(testutils.NewBug("pkg.A", "X", "CORRECTNESS", 2, 10))
			reporter.ReportBug(testutils.NewBug("pkg.A", "X", "CORRECTNESS", 2, 10))
			Expect(reporter.Finish()).Should(Succeed())
			Expect(bytes.Count(buf.Bytes(), []byte("<BugInstance"))).Should(Equal(1))
		})
	})

	Context("when several classes are observed", func() {
		It("should close every file element", func() {
			reporter.ObserveClass("pkg/A")
			reporter.ObserveClass("pkg.B")
			reporter.ReportBug(testutils.NewBug("pkg.B", "X", "STYLE", 4, 3))
			Expect(reporter.Finish()).Should(Succeed())

			out := buf.String()
			Expect(out).Should(ContainSubstring(`<file classname="pkg.A" >` + "\n</file>\n"))
			Expect(bytes.Count(buf.Bytes(), []byte("<file "))).Should(Equal(2))
			Expect(bytes.Count(buf.Bytes(), []byte("</file>"))).Should(Equal(2))
			Expect(out).Should(ContainSubstring(`priority="Exp"`))
			Expect(reporter.Metrics().NumClasses).Should(Equal(2))
		})
	})

	Context("when errors and missing classes are reported", func() {
		It("should write them in the error block", func() {
			reporter.ObserveClass("pkg.A")
			reporter.ReportAnalysisError(findbugs.NewAnalysisError("cannot analyze pkg.D", nil))
			reporter.LogError("cannot analyze <pkg.E>", errors.New("class format error"))
			reporter.ReportMissingClass("org/example/Gone")
			reporter.ReportMissingClass("org.example.Gone")
			Expect(reporter.Finish()).Should(Succeed())

			out := buf.String()
			Expect(out).Should(ContainSubstring("<Errors>\n" +
				"<AnalysisError>cannot analyze pkg.D </AnalysisError>\n" +
				"<AnalysisError>cannot analyze &lt;pkg.E&gt; </AnalysisError>\n" +
				"<MissingClass>org.example.Gone </MissingClass>\n" +
				"</Errors>\n"))
			Expect(delegate.Errors).Should(HaveLen(2))
			Expect(delegate.Missing).Should(HaveLen(2))
			Expect(reporter.Metrics().NumMissingClasses).Should(Equal(1))
			Expect(logs.String()).Should(ContainSubstring("Printing Errors"))
		})
	})

	DescribeTable("line values",
		func(line *findbugs.SourceLine, expected string) {
			reporter.ObserveClass("pkg.A")
			bug := testutils.NewBug("pkg.A", "X", "CORRECTNESS", 2, 0)
			bug.Line = line
			reporter.ReportBug(bug)
			Expect(reporter.Finish()).Should(Succeed())
			Expect(buf.String()).Should(ContainSubstring(expected))
		},
		Entry("single line", findbugs.NewSourceLine(5, 5), `lineNumber="5" />`),
		Entry("line range", findbugs.NewSourceLine(3, 7), `lineNumber="3-7" />`),
		Entry("unknown line", findbugs.NewSourceLine(-1, -1), `lineNumber="Line number not available" />`),
		Entry("no line", (*findbugs.SourceLine)(nil), `lineNumber="Line number not available" />`),
	)

	Context("when values need escaping", func() {
		It("should escape attribute values", func() {
			reporter.ObserveClass("pkg.A")
			bug := testutils.NewBug("pkg.A", "X", "CORRECTNESS", 2, 10)
			bug.Description = `compares "a" & <b>`
			reporter.ReportBug(bug)
			Expect(reporter.Finish()).Should(Succeed())
			Expect(buf.String()).Should(ContainSubstring(`message="NP: compares &#34;a&#34; &amp; &lt;b&gt;"`))
		})
	})

	Context("when no output writer is attached", func() {
		It("should fail and still finish the delegate", func() {
			logger, _ := testutils.NewLogger()
			r, err := xdoc.NewReporter(delegate, findbugs.NewMessages("en"), logger, findbugs.Low, findbugs.Default, xdoc.Options{})
			Expect(err).ShouldNot(HaveOccurred())
			r.ObserveClass("pkg.A")
			Expect(r.Finish()).Should(MatchError(xdoc.ErrNoOutput))
			Expect(delegate.Classes).Should(Equal([]string{"pkg.A"}))
			Expect(delegate.Finished).Should(Equal(1))
		})
	})

	Context("when the delegate fails to finish", func() {
		It("should return its error", func() {
			delegate.FinishErr = errors.New("html failed")
			Expect(reporter.Finish()).Should(MatchError(ContainSubstring("html failed")))
			Expect(buf.String()).Should(HaveSuffix("</BugCollection>\n"))
			Expect(reporter.Finish()).Should(MatchError(findbugs.ErrReportClosed))
		})
	})

	It("should use the configured engine version", func() {
		logger, _ := testutils.NewLogger()
		var out bytes.Buffer
		r, err := xdoc.NewReporter(testutils.NewMockReporter(), findbugs.NewMessages("en"), logger, findbugs.High, findbugs.Max, xdoc.Options{EngineVersion: "1.3.9"})
		Expect(err).ShouldNot(HaveOccurred())
		r.SetOutputWriter(&out)
		Expect(r.Finish()).Should(Succeed())
		Expect(out.String()).Should(ContainSubstring(`<BugCollection version="1.3.9" threshold="High" effort="Max" >`))
	})

	It("should reject missing collaborators", func() {
		logger, _ := testutils.NewLogger()
		_, err := xdoc.NewReporter(nil, findbugs.NewMessages("en"), logger, findbugs.Low, findbugs.Default, xdoc.Options{})
		Expect(err).Should(MatchError(findbugs.ErrInvalidArgument))
		_, err = xdoc.NewReporter(delegate, findbugs.NewMessages("en"), logger, findbugs.Threshold(9), findbugs.Default, xdoc.Options{})
		Expect(err).Should(MatchError(findbugs.ErrInvalidArgument))
	})
})
