package main

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("prepareVersionInfo", func() {
	var originalVersion string

	BeforeEach(func() {
		originalVersion = Version
	})

	AfterEach(func() {
		Version = originalVersion
	})

	It("should set Version to 'dev' when it is empty", func() {
		Version = ""
		prepareVersionInfo()
		Expect(Version).To(Equal("dev"))
	})

	It("should not change an injected Version", func() {
		Version = "1.2.3"
		prepareVersionInfo()
		Expect(Version).To(Equal("1.2.3"))
	})

	It("should print the version", func() {
		Version = "1.2.3"
		out := new(bytes.Buffer)
		cmd := newVersionCommand()
		cmd.SetOut(out)
		cmd.SetArgs([]string{})
		Expect(cmd.Execute()).To(Succeed())
		Expect(out.String()).To(ContainSubstring("Version: 1.2.3"))
	})
})
