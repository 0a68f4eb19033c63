package main

import (
	"bytes"
	"errors"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"

	"github.com/securego/findbugs-report/engine"
	"github.com/securego/findbugs-report/testutils"
)

var _ = Describe("findbugs-report", func() {
	var (
		fs     afero.Fs
		stdout *bytes.Buffer
		stderr *bytes.Buffer
	)

	BeforeEach(func() {
		fs = afero.NewMemMapFs()
		stdout = new(bytes.Buffer)
		stderr = new(bytes.Buffer)
	})

	record := func(name string, sample testutils.RunSample) {
		f, err := fs.Create(name)
		Expect(err).ShouldNot(HaveOccurred())
		defer f.Close()
		enc := engine.NewJSONEncoder(f)
		if filepath.Ext(name) == ".msgpack" {
			enc = engine.NewMsgpackEncoder(f)
		}
		Expect(engine.EncodeAll(enc, sample.Events...)).Should(Succeed())
	}

	execute := func(args ...string) error {
		cmd := newRootCommand(fs)
		cmd.SetOut(stdout)
		cmd.SetErr(stderr)
		cmd.SetIn(new(bytes.Buffer))
		cmd.SetArgs(args)
		return cmd.Execute()
	}

	It("should signal found bugs", func() {
		record("run.jsonl", testutils.SampleSingleBug)
		err := execute("--no-color", "run.jsonl")
		Expect(err).Should(MatchError(errBugsFound))
		Expect(exitCode(err)).Should(Equal(exitBugs))
		Expect(stdout.String()).Should(ContainSubstring("Bugs     : 1"))

		exists, err := afero.Exists(fs, filepath.Join("target/site", "findbugs.html"))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(exists).Should(BeTrue())
	})

	It("should apply the command line flags", func() {
		record("run.msgpack", testutils.SampleMixedRun)
		err := execute("--no-color", "--format", "xml", "--out", "reports", "--name", "bugs", "--threshold", "High", "run.msgpack")
		Expect(exitCode(err)).Should(Equal(exitBugs))

		data, err := afero.ReadFile(fs, filepath.Join("reports", "bugs.xml"))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(string(data)).Should(ContainSubstring(`threshold="High"`))
		Expect(bytes.Count(data, []byte("<BugInstance"))).Should(Equal(1))
	})

	It("should read the config file", func() {
		record("run.jsonl", testutils.SampleSingleBug)
		Expect(afero.WriteFile(fs, "findbugs.toml", []byte("formats = [\"xml\"]\noutputName = \"custom\"\n"), 0o600)).Should(Succeed())
		err := execute("--config", "findbugs.toml", "--quiet", "run.jsonl")
		Expect(exitCode(err)).Should(Equal(exitBugs))
		exists, _ := afero.Exists(fs, filepath.Join("target/site", "custom.xml"))
		Expect(exists).Should(BeTrue())
	})

	It("should succeed for clean runs", func() {
		record("run.jsonl", testutils.RunSample{Events: []engine.Event{engine.Observe("pkg.A"), engine.Finish()}})
		err := execute("--no-color", "run.jsonl")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(exitCode(err)).Should(Equal(exitOK))
		Expect(stdout.String()).Should(ContainSubstring("No bugs found"))
	})

	It("should skip the report without compiled classes", func() {
		record("run.jsonl", testutils.SampleSingleBug)
		Expect(execute("--classes", "target/classes", "run.jsonl")).Should(Succeed())
		exists, _ := afero.Exists(fs, filepath.Join("target/site", "findbugs.html"))
		Expect(exists).Should(BeFalse())
		Expect(stderr.String()).Should(ContainSubstring("Skipping report"))
	})

	It("should write logs to a file", func() {
		record("run.jsonl", testutils.SampleSingleBug)
		_ = execute("--log", "findbugs.log", "--verbose", "--no-color", "run.jsonl")
		data, err := afero.ReadFile(fs, "findbugs.log")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(string(data)).Should(ContainSubstring("Observe class: pkg.A"))
	})

	It("should fail for invalid settings", func() {
		err := execute("--format", "pdf")
		Expect(err).Should(HaveOccurred())
		Expect(exitCode(err)).Should(Equal(exitFailed))
	})

	It("should fail for missing event files", func() {
		err := execute("missing.jsonl")
		Expect(err).Should(MatchError(ContainSubstring("opening events")))
		Expect(exitCode(err)).Should(Equal(exitFailed))
	})

	It("should map errors to exit codes", func() {
		Expect(exitCode(nil)).Should(Equal(exitOK))
		Expect(exitCode(errBugsFound)).Should(Equal(exitBugs))
		Expect(exitCode(errors.New("boom"))).Should(Equal(exitFailed))
	})
})
