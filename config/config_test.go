// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"

	"github.com/d42-tools/d42"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("configuration", func() {

	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		for _, name := range []string{"URL", "USER", "PASS", "VERSION", "OUTPUT", "INSECURE"} {
			GinkgoT().Setenv("D42TEST_"+name, "")
			Expect(os.Unsetenv("D42TEST_" + name)).To(Succeed())
		}
	})

	writeConfig := func(content string) string {
		GinkgoHelper()
		path := filepath.Join(dir, "config.yaml")
		Expect(os.WriteFile(path, []byte(content), 0600)).To(Succeed())
		return path
	}

	It("defaults when there's nothing to load", func() {
		cfg, err := NewLoader(
			WithEnvPrefix("D42TEST_"),
			WithDefaultFile(filepath.Join(dir, "missing.yaml")),
		).Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(&Config{
			URL:     d42.DefaultAPIURL,
			Version: d42.DefaultAPIVersion,
		}))
	})

	It("loads a configuration file", func() {
		path := writeConfig(`
url: https://cmdb.example.com
user: admin
pass: s3cr3t
output: json
insecure: true
`)
		cfg, err := NewLoader(WithEnvPrefix("D42TEST_"), WithConfigFile(path)).Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(&Config{
			URL:      "https://cmdb.example.com",
			User:     "admin",
			Password: "s3cr3t",
			Version:  d42.DefaultAPIVersion,
			Output:   "json",
			Insecure: true,
		}))
	})

	It("lets the environment override the file", func() {
		path := writeConfig("url: https://cmdb.example.com\nuser: admin\n")
		GinkgoT().Setenv("D42TEST_USER", "operator")
		GinkgoT().Setenv("D42TEST_INSECURE", "true")
		cfg, err := NewLoader(WithEnvPrefix("D42TEST_"), WithConfigFile(path)).Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.URL).To(Equal("https://cmdb.example.com"))
		Expect(cfg.User).To(Equal("operator"))
		Expect(cfg.Insecure).To(BeTrue())
	})

	It("fails on a missing explicit file", func() {
		_, err := NewLoader(WithEnvPrefix("D42TEST_"),
			WithConfigFile(filepath.Join(dir, "missing.yaml"))).Load()
		Expect(err).To(MatchError(ContainSubstring("load config file")))
	})

	It("fails on a broken file", func() {
		path := writeConfig("url: [\n")
		_, err := NewLoader(WithEnvPrefix("D42TEST_"), WithConfigFile(path)).Load()
		Expect(err).To(HaveOccurred())
	})

})

var _ = Describe("configuration file selection", func() {

	It("prefers an explicit file over the default file", func() {
		dir := GinkgoT().TempDir()
		explicit := filepath.Join(dir, "explicit.yaml")
		Expect(os.WriteFile(explicit, []byte("user: explicit\n"), 0600)).To(Succeed())
		def := filepath.Join(dir, "default.yaml")
		Expect(os.WriteFile(def, []byte("user: default\n"), 0600)).To(Succeed())

		cfg, err := NewLoader(WithEnvPrefix("D42TEST_"),
			WithConfigFile(explicit), WithDefaultFile(def)).Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.User).To(Equal("explicit"))

		cfg, err = NewLoader(WithEnvPrefix("D42TEST_"),
			WithConfigFile(""), WithDefaultFile(def)).Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.User).To(Equal("default"))
	})

})
