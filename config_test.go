package findbugs_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"

	"github.com/securego/findbugs-report"
)

var _ = Describe("Configuration", func() {
	var configuration *findbugs.Config
	BeforeEach(func() {
		configuration = findbugs.NewConfig()
	})

	Context("when using the defaults", func() {
		It("should render html into the site directory", func() {
			Expect(configuration.Formats).Should(Equal([]string{"html"}))
			Expect(configuration.OutputDirectory).Should(Equal("target/site"))
			Expect(configuration.OutputName).Should(Equal("findbugs"))
			Expect(configuration.Validate()).Should(Succeed())
		})
	})

	Context("when loading from a reader", func() {
		It("should be possible to load configuration from yaml", func() {
			data := "threshold: High\neffort: Max\nformats: [html, xml]\nlinkXref: true\n"
			nread, err := configuration.ReadFrom(bytes.NewBufferString(data))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(nread).Should(Equal(int64(len(data))))
			Expect(configuration.Threshold).Should(Equal("High"))
			Expect(configuration.Effort).Should(Equal("Max"))
			Expect(configuration.Formats).Should(Equal([]string{"html", "xml"}))
			Expect(configuration.LinkXref).Should(BeTrue())
			Expect(configuration.OutputName).Should(Equal("findbugs"))
		})

		It("should return an error if configuration is invalid", func() {
			_, err := configuration.ReadFrom(bytes.NewBufferString("formats: {"))
			Expect(err).Should(HaveOccurred())
		})
	})

	Context("when saving", func() {
		It("should be possible to write the configuration back", func() {
			buffer := bytes.NewBuffer([]byte{})
			_, err := configuration.WriteTo(buffer)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(buffer.String()).Should(ContainSubstring("outputName: findbugs"))

			restored := &findbugs.Config{}
			_, err = restored.ReadFrom(buffer)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(restored).Should(Equal(configuration))
		})
	})

	Context("when loading from a file", func() {
		var fs afero.Fs
		BeforeEach(func() {
			fs = afero.NewMemMapFs()
		})

		It("should read yaml files", func() {
			Expect(afero.WriteFile(fs, "findbugs.yaml", []byte("threshold: Normal\nlocale: de\n"), 0o600)).Should(Succeed())
			cfg, err := findbugs.LoadConfig(fs, "findbugs.yaml")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(cfg.Threshold).Should(Equal("Normal"))
			Expect(cfg.Locale).Should(Equal("de"))
			Expect(cfg.Formats).Should(Equal([]string{"html"}))
		})

		It("should read toml files", func() {
			data := "threshold = \"Exp\"\nformats = [\"xml\"]\noutputDirectory = \"out\"\n"
			Expect(afero.WriteFile(fs, "findbugs.toml", []byte(data), 0o600)).Should(Succeed())
			cfg, err := findbugs.LoadConfig(fs, "findbugs.toml")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(cfg.Threshold).Should(Equal("Exp"))
			Expect(cfg.Formats).Should(Equal([]string{"xml"}))
			Expect(cfg.OutputDirectory).Should(Equal("out"))
		})

		It("should reject unknown formats", func() {
			Expect(afero.WriteFile(fs, "findbugs.yaml", []byte("formats: [pdf]\n"), 0o600)).Should(Succeed())
			_, err := findbugs.LoadConfig(fs, "findbugs.yaml")
			Expect(err).Should(MatchError(ContainSubstring("validating config")))
		})

		It("should accept unknown threshold names", func() {
			Expect(afero.WriteFile(fs, "findbugs.yaml", []byte("threshold: Extreme\n"), 0o600)).Should(Succeed())
			cfg, err := findbugs.LoadConfig(fs, "findbugs.yaml")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(cfg.Threshold).Should(Equal("Extreme"))
		})

		It("should fail for missing files", func() {
			_, err := findbugs.LoadConfig(fs, "missing.yaml")
			Expect(err).Should(HaveOccurred())
		})
	})
})
