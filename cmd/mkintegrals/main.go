// mkintegrals writes the built-in H2/STO-3G integrals to a serialized
// .qmd file, for use with the groundstate program's -file flag.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/kingsraghav/qiskit-tutorials/moldata"
)

func main() {
	out := flag.String("o", "h2.qmd", "output file")
	flag.Parse()
	M := moldata.H2()
	if err := moldata.Write(*out, M); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Wrote %s (%s, %s) to %s\n", M.Name, M.Basis, "R=1.401 bohr", *out)
}
