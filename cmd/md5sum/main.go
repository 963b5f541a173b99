// Command md5sum prints the MD5 digests of files, or of standard input when
// no files are named.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/markkurossi/tabulate"
	"github.com/zeebo/md5"
)

type result struct {
	name   string
	size   int64
	digest []byte
}

func main() {
	table := flag.Bool("table", false, "print results as a table")
	flag.Parse()
	log.SetFlags(0)

	var results []result
	if flag.NArg() == 0 {
		r, err := sum("-", os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		results = append(results, r)
	}
	for _, name := range flag.Args() {
		r, err := sumFile(name)
		if err != nil {
			log.Fatal(err)
		}
		results = append(results, r)
	}

	if *table {
		printTable(os.Stdout, results)
	} else {
		printList(os.Stdout, results)
	}
}

func sumFile(name string) (result, error) {
	f, err := os.Open(name)
	if err != nil {
		return result{}, err
	}
	defer f.Close()
	return sum(name, f)
}

func sum(name string, r io.Reader) (result, error) {
	h := md5.New()
	n, err := io.Copy(h, r)
	if err != nil {
		return result{}, fmt.Errorf("md5sum: %s: %w", name, err)
	}
	return result{
		name:   name,
		size:   n,
		digest: h.Sum(nil),
	}, nil
}

func printList(w io.Writer, results []result) {
	for _, r := range results {
		fmt.Fprintf(w, "%x  %s\n", r.digest, r.name)
	}
}

func printTable(w io.Writer, results []result) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("File").SetAlign(tabulate.ML)
	tab.Header("Bytes").SetAlign(tabulate.MR)
	tab.Header("MD5").SetAlign(tabulate.ML)

	for _, r := range results {
		row := tab.Row()
		row.Column(r.name)
		row.Column(fmt.Sprintf("%d", r.size))
		row.Column(fmt.Sprintf("%x", r.digest))
	}
	tab.Print(w)
}
