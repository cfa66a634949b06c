package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fuzzil-dev/fuzzil"
	"github.com/fuzzil-dev/fuzzil/internal/ir"
)

func main() {
	os.Exit(doMain(os.Args[1:], os.Stdout, os.Stderr))
}

// doMain is separated out for the purpose of unit testing.
func doMain(args []string, stdOut, stdErr io.Writer) int {
	flags := flag.NewFlagSet("fuzzilgen", flag.ContinueOnError)
	flags.SetOutput(stdErr)

	var help bool
	flags.BoolVar(&help, "h", false, "Prints usage.")

	var template string
	flags.StringVar(&template, "template", "Codegen50",
		"Program template to run. See -list for the full set.")

	var list bool
	flags.BoolVar(&list, "list", false, "Prints the registered template names and exits.")

	var count int
	flags.IntVar(&count, "count", 1, "Number of programs to generate.")

	var seed int64
	flags.Int64Var(&seed, "seed", 0, "PRNG seed for the first generated program; subsequent programs use seed+i.")

	var emitGob string
	flags.StringVar(&emitGob, "emit-gob", "",
		"Path to write the generated programs to as length-prefixed gob records. Defaults to stdout if set to \"-\".")

	if err := flags.Parse(args); err != nil {
		return 1
	}

	if help {
		flags.Usage()
		return 0
	}

	if list {
		for _, name := range fuzzil.TemplateNames() {
			fmt.Fprintln(stdOut, name)
		}
		return 0
	}

	var out io.Writer = io.Discard
	switch emitGob {
	case "":
	case "-":
		out = stdOut
	default:
		f, err := os.Create(emitGob)
		if err != nil {
			fmt.Fprintf(stdErr, "error creating %s: %v\n", emitGob, err)
			return 1
		}
		defer f.Close()
		out = f
	}

	gen := fuzzil.New(nil)
	for i := 0; i < count; i++ {
		p, err := gen.Build(template, seed+int64(i))
		if err != nil {
			fmt.Fprintf(stdErr, "error generating program %d: %v\n", i, err)
			return 1
		}
		fmt.Fprintf(stdOut, "program %d: template=%s seed=%d instructions=%d\n", i, template, seed+int64(i), len(p.Code))

		if emitGob == "" {
			continue
		}
		data, err := ir.Serialize(p)
		if err != nil {
			fmt.Fprintf(stdErr, "error serializing program %d: %v\n", i, err)
			return 1
		}
		if err := writeRecord(out, data); err != nil {
			fmt.Fprintf(stdErr, "error writing program %d: %v\n", i, err)
			return 1
		}
	}
	return 0
}

// writeRecord writes data as a 4-byte big-endian length prefix followed
// by the bytes themselves, so a reader can split the stream back into
// individual gob records without a trailing delimiter.
func writeRecord(w io.Writer, data []byte) error {
	n := len(data)
	prefix := []byte{byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)}
	if _, err := w.Write(prefix); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}
