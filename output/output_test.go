// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/siemens/subdig/types"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

// readCSV returns all rows of the CSV file at path.
func readCSV(path string) [][]string {
	GinkgoHelper()
	f := Successful(os.Open(path))
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return Successful(r.ReadAll())
}

var _ = Describe("output", func() {

	DescribeTable("extracts registrable domains",
		func(host, domain string) {
			Expect(RegisteredDomain(host)).To(Equal(domain))
		},
		Entry("subdomain", "www.example.com", "example.com"),
		Entry("registrable domain", "example.com", "example.com"),
		Entry("multi-label suffix", "www.example.co.uk", "example.co.uk"),
		Entry("fully qualified", "WWW.Example.COM.", "example.com"),
		Entry("public suffix only", "co.uk", ""),
		Entry("empty", "", ""),
		Entry("empty label", "bad..label", ""),
		Entry("IPv4 literal", "1.2.3.4", ""),
		Entry("IPv6 literal", "2001:db8::1", ""),
	)

	It("derives the in-scope path", func() {
		Expect(InScopePath("subdomains.csv")).To(Equal("subdomains_in_scope.csv"))
		Expect(InScopePath("/tmp/out")).To(Equal("/tmp/out_in_scope"))
		Expect(InScopePath("/tmp/a.b/out.csv")).To(Equal("/tmp/a.b/out_in_scope.csv"))
	})

	It("creates records", func() {
		rec := NewRecord(types.Result{
			Subdomain: "www.example.com",
			Outcome:   types.NewResolved("10.0.0.1", "10.0.0.2"),
		}, true, RegisteredDomain)
		Expect(rec).To(Equal(Record{
			Domain:    "example.com",
			Subdomain: "www.example.com",
			Value:     "10.0.0.1, 10.0.0.2",
			InScope:   true,
		}))
		Expect(rec.Row(true)).To(Equal([]string{"example.com", "www.example.com", "10.0.0.1, 10.0.0.2"}))
		Expect(rec.Row(false)).To(Equal([]string{"www.example.com", "10.0.0.1, 10.0.0.2"}))

		rec = NewRecord(types.Result{Outcome: types.NewInvalid(types.EmptyInput)}, false,
			func(string) string { panic("must not be called for empty subdomains") })
		Expect(rec.Domain).To(BeEmpty())
		Expect(rec.Value).To(Equal("Empty subdomain"))

		rec = NewRecord(types.Result{Subdomain: "a.example.com"}, false, nil)
		Expect(rec.Domain).To(BeEmpty())
	})

	It("sorts records", func() {
		recs := []Record{
			{Subdomain: "b", Value: "1"},
			{Subdomain: "a", Value: "2"},
			{Subdomain: "a", Value: "1"},
		}
		SortRecords(recs)
		Expect(recs).To(HaveExactElements(
			Record{Subdomain: "a", Value: "1"},
			Record{Subdomain: "a", Value: "2"},
			Record{Subdomain: "b", Value: "1"},
		))
	})

	When("writing CSV files", func() {

		var dir string

		BeforeEach(func() {
			dir = GinkgoT().TempDir()
		})

		It("appends without rewriting the header", func() {
			path := filepath.Join(dir, "out.csv")
			c := Successful(OpenCSV(path, Header(false)))
			Expect(c.Path()).To(Equal(path))
			Expect(c.Append([][]string{{"a.example.com", "10.0.0.1, 10.0.0.2"}})).To(Succeed())
			Expect(c.Close()).To(Succeed())

			c = Successful(OpenCSV(path, Header(false)))
			Expect(c.Append([][]string{{"b.example.com", "Empty subdomain"}})).To(Succeed())
			Expect(c.Close()).To(Succeed())

			Expect(readCSV(path)).To(Equal([][]string{
				{"Subdomain", "IPs"},
				{"a.example.com", "10.0.0.1, 10.0.0.2"},
				{"b.example.com", "Empty subdomain"},
			}))
		})

		It("fails for unwritable paths", func() {
			_, err := OpenCSV(filepath.Join(dir, "nonexisting", "out.csv"), nil)
			Expect(err).To(MatchError(ContainSubstring("cannot open output file")))
			_, err = NewWriter(filepath.Join(dir, "nonexisting", "out.csv"))
			Expect(err).To(HaveOccurred())
		})

		It("writes in-scope records to a separate file only when needed", func() {
			path := filepath.Join(dir, "results.csv")
			w := Successful(NewWriter(path))
			defer w.Close()
			Expect(w.WithDomain()).To(BeTrue())
			Expect(w.Path()).To(Equal(path))
			Expect(w.InScopePath()).To(Equal(filepath.Join(dir, "results_in_scope.csv")))

			Expect(Successful(w.Write(nil))).To(BeZero())
			Expect(Successful(w.Write([]Record{
				{Domain: "example.com", Subdomain: "b.example.com", Value: "1.2.3.4"},
			}))).To(BeZero())
			Expect(w.InScopePath()).NotTo(BeAnExistingFile())

			Expect(Successful(w.Write([]Record{
				{Domain: "example.com", Subdomain: "example.com", Value: "93.184.216.34", InScope: true},
				{Domain: "example.com", Subdomain: "c.example.com", Value: "1.2.3.5"},
			}))).To(Equal(1))
			Expect(w.Close()).To(Succeed())
			Expect(w.Close()).To(Succeed())

			Expect(readCSV(path)).To(Equal([][]string{
				{"Domain", "Subdomain", "IPs"},
				{"example.com", "b.example.com", "1.2.3.4"},
				{"example.com", "example.com", "93.184.216.34"},
				{"example.com", "c.example.com", "1.2.3.5"},
			}))
			Expect(readCSV(w.InScopePath())).To(Equal([][]string{
				{"Domain", "Subdomain", "IPs"},
				{"example.com", "example.com", "93.184.216.34"},
			}))
		})

		It("writes without domains to explicit paths", func() {
			path := filepath.Join(dir, "plain.csv")
			inscope := filepath.Join(dir, "hits.csv")
			w := Successful(NewWriter(path, WithoutDomain(), WithInScopePath(inscope)))
			Expect(Successful(w.Write([]Record{
				{Domain: "example.com", Subdomain: "example.com", Value: "93.184.216.34", InScope: true},
			}))).To(Equal(1))
			Expect(w.Close()).To(Succeed())
			Expect(readCSV(path)).To(Equal([][]string{
				{"Subdomain", "IPs"},
				{"example.com", "93.184.216.34"},
			}))
			Expect(readCSV(inscope)).To(HaveLen(2))
		})

	})

})
