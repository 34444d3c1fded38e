// Command ahda encodes Themisto or Fulgor pseudoalignment text (the format
// is detected from the first line) into the AHDA binary container, and
// prints AHDA files as Themisto text (decode) or Bifrost text (cat).
// Bifrost and Metagraph input, and Fulgor and Metagraph output, are not
// handled by this command.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/tmaklin/ahda-sub000/record"
	"github.com/tmaklin/ahda-sub000/section"
	"github.com/tmaklin/ahda-sub000/stream"
	"github.com/tmaklin/ahda-sub000/textfmt"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "encode":
		err = runEncode(os.Args[2:])
	case "decode":
		err = runDecode(os.Args[2:])
	case "cat":
		err = runCat(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "ahda: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "ahda: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: ahda <encode|decode|cat> [flags] <input...>")
}

func runEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	nTargets := fs.Int("n-targets", 0, "number of targets in the input (required)")
	verbose := fs.Bool("verbose", false, "enable verbose logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *nTargets <= 0 {
		return fmt.Errorf("encode: --n-targets is required and must be positive")
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("encode: at least one input file is required")
	}

	for _, path := range fs.Args() {
		if *verbose {
			fmt.Fprintf(os.Stderr, "ahda: encoding %s\n", path)
		}
		if err := encodeFile(path, uint32(*nTargets)); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	return nil
}

// encodeFile reads the whole input to establish the query catalogue (the
// AHDA header fixes n_queries up front), then streams the resulting
// records through a stream.Encoder.
func encodeFile(path string, nTargets uint32) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var format section.Format
	var recs []record.PseudoAln
	var queries []string

	for scanner.Scan() {
		line := scanner.Text()
		if len(recs) == 0 && queries == nil {
			format, err = textfmt.DetectFormat([]byte(line))
			if err != nil {
				return err
			}
		}

		var rec record.PseudoAln
		switch format {
		case section.FormatThemisto:
			rec, err = textfmt.ParseThemistoLine(line)
		case section.FormatFulgor:
			rec, err = textfmt.ParseFulgorLine(line)
		default:
			err = fmt.Errorf("encode: unsupported auto-detected format %s", format)
		}
		if err != nil {
			return err
		}

		if rec.QueryID == nil {
			id := uint32(len(recs))
			rec.QueryID = &id
		}
		if rec.QueryName == nil {
			name := fmt.Sprintf("%d", *rec.QueryID)
			rec.QueryName = &name
		}
		for uint32(len(queries)) <= *rec.QueryID {
			queries = append(queries, "")
		}
		queries[*rec.QueryID] = *rec.QueryName

		recs = append(recs, rec)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	out, err := os.Create(path + ".ahda")
	if err != nil {
		return err
	}
	defer out.Close()

	bw := bufio.NewWriter(out)
	targetNames := make([]string, nTargets)
	for i := range targetNames {
		targetNames[i] = fmt.Sprintf("target_%d", i)
	}

	enc, err := stream.NewEncoder(bw, targetNames, "", queries, stream.WithFormat(format))
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if err := enc.Write(rec); err != nil {
			return err
		}
	}
	if err := enc.Close(); err != nil {
		return err
	}

	return bw.Flush()
}

func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	verbose := fs.Bool("verbose", false, "enable verbose logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("decode: exactly one input file is required")
	}

	path := fs.Arg(0)
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	dec, err := stream.NewDecoder(bufio.NewReader(in))
	if err != nil {
		return err
	}
	if *verbose {
		fmt.Fprintf(os.Stderr, "ahda: %d targets, %d queries\n", dec.Header.NTargets, dec.Header.NQueries)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for {
		rec, ok, err := dec.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		line, err := textfmt.FormatThemistoLine(rec)
		if err != nil {
			return err
		}
		if _, err := out.WriteString(line); err != nil {
			return err
		}
	}
}

func runCat(args []string) error {
	fs := flag.NewFlagSet("cat", flag.ExitOnError)
	verbose := fs.Bool("verbose", false, "enable verbose logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("cat: exactly one input file is required")
	}

	path := fs.Arg(0)
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	dec, err := stream.NewDecoder(bufio.NewReader(in))
	if err != nil {
		return err
	}
	if *verbose {
		fmt.Fprintf(os.Stderr, "ahda: sample %q, %d targets, %d queries\n", dec.Flags.QueryName, dec.Header.NTargets, dec.Header.NQueries)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	fmt.Fprintf(out, "%s\t%s\n", "query_name", joinTargetNames(dec.Flags.TargetNames))

	for {
		rec, ok, err := dec.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		line, err := textfmt.FormatBifrostLine(rec, dec.Header.NTargets)
		if err != nil {
			return err
		}
		if _, err := out.WriteString(line); err != nil {
			return err
		}
	}
}

func joinTargetNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += "\t"
		}
		out += n
	}

	return out
}
