// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/siemens/subdig/pipeline"
	"github.com/siemens/subdig/test"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

// writeLines writes the lines to a new file in dir, returning its path.
func writeLines(dir, name string, lines ...string) string {
	GinkgoHelper()
	path := filepath.Join(dir, name)
	Expect(os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644)).To(Succeed())
	return path
}

// readCSV returns all rows of the CSV file at path.
func readCSV(path string) [][]string {
	GinkgoHelper()
	f := Successful(os.Open(path))
	defer f.Close()
	return Successful(csv.NewReader(f).ReadAll())
}

// run executes the root command with the specified CLI arguments, returning
// the rendered output and the command's error.
func run(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var _ = Describe("subdig command", func() {

	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		oldLookuper := lookuper
		DeferCleanup(func() { lookuper = oldLookuper })
		lookuper = test.NewLookup().
			WithAnswer("example.com", "93.184.216.34").
			WithAnswer("other.example.org", "1.2.3.4")
	})

	It("shows usage when called without any arguments", func() {
		out, err := run()
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("Usage:"))
		Expect(out).To(ContainSubstring("--scope"))
	})

	It("stops digging when interrupted", func() {
		input := writeLines(dir, "in.txt", "example.com")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := execute(ctx, []string{"-i", input, "-o", filepath.Join(dir, "out.csv")})
		Expect(err).To(MatchError(context.Canceled))
		Expect(lookuper.(*test.Lookup).TotalCalls()).To(BeZero())
	})

	It("digs and reports", func() {
		input := writeLines(dir, "in.txt", "example.com", "other.example.org", "")
		scope := writeLines(dir, "scope.txt", "93.184.216.34")
		csvpath := filepath.Join(dir, "out.csv")
		out, err := run("-i", input, "-s", scope, "-o", csvpath, "-t", "1000")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("Processed 3/3 subdomains."))
		Expect(out).To(ContainSubstring("Subdomain resolution completed. 3 subdomains from 1 file(s)"))
		Expect(out).To(ContainSubstring("1 in-scope rows written to " + filepath.Join(dir, "out_in_scope.csv")))

		Expect(readCSV(csvpath)).To(ConsistOf(
			[]string{"Domain", "Subdomain", "IPs"},
			[]string{"example.com", "example.com", "93.184.216.34"},
			[]string{"example.org", "other.example.org", "1.2.3.4"},
			[]string{"", "", "Empty subdomain"},
		))
		Expect(readCSV(filepath.Join(dir, "out_in_scope.csv"))).To(Equal([][]string{
			{"Domain", "Subdomain", "IPs"},
			{"example.com", "example.com", "93.184.216.34"},
		}))
	})

	It("accepts input files as arguments, in plain mode", func() {
		first := writeLines(dir, "first.txt", "example.com")
		second := writeLines(dir, "second.txt", "other.example.org")
		csvpath := filepath.Join(dir, "plain.csv")
		_, err := run("--plain", "-o", csvpath, first, second)
		Expect(err).NotTo(HaveOccurred())
		Expect(readCSV(csvpath)).To(Equal([][]string{
			{"Subdomain", "IPs"},
			{"example.com", "93.184.216.34"},
			{"other.example.org", "1.2.3.4"},
		}))
	})

	It("reads defaults from a configuration file, with flags taking precedence", func() {
		input := writeLines(dir, "in.txt", "example.com")
		csvpath := filepath.Join(dir, "flag.csv")
		config := writeLines(dir, "subdig.yaml",
			"inputs: ["+input+"]",
			"output: "+filepath.Join(dir, "config.csv"),
			"plain: true",
			"threads: 2")
		_, err := run("--config", config, "-o", csvpath)
		Expect(err).NotTo(HaveOccurred())
		Expect(filepath.Join(dir, "config.csv")).NotTo(BeAnExistingFile())
		Expect(readCSV(csvpath)).To(HaveExactElements(
			[]string{"Subdomain", "IPs"},
			[]string{"example.com", "93.184.216.34"},
		))
	})

	It("fails on missing input files", func() {
		out, err := run("-i", filepath.Join(dir, "missing.txt"), "-o", filepath.Join(dir, "out.csv"))
		var cerr *pipeline.ConfigError
		Expect(errors.As(err, &cerr)).To(BeTrue())
		Expect(out).To(ContainSubstring("Error: configuration error: cannot open input file"))
		Expect(filepath.Join(dir, "out.csv")).NotTo(BeAnExistingFile())
	})

	It("fails on a missing configuration file", func() {
		_, err := run("--config", filepath.Join(dir, "missing.yaml"))
		var cerr *pipeline.ConfigError
		Expect(errors.As(err, &cerr)).To(BeTrue())
	})

	DescribeTable("rejects invalid flags",
		func(args []string) {
			_, err := run(args...)
			Expect(err).To(HaveOccurred())
		},
		Entry("non-numeric threads", []string{"-t", "many", "in.txt"}),
		Entry("zero batch size", []string{"-b", "0", "in.txt"}),
		Entry("zero report interval", []string{"--report-every", "0", "in.txt"}),
	)

})
