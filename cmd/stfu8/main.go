package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/stfu8/stream"
)

func main() {
	var (
		decode      = flag.Bool("decode", false, "Decode STFU-8 text back to raw elements")
		width       = flag.Int("width", 8, "Element width: 8 (bytes) or 16 (UTF-16LE units)")
		pretty      = flag.Bool("pretty", false, "Keep tab, line feed and carriage return literal when encoding")
		inFile      = flag.String("in", "", "Input file (default stdin)")
		outFile     = flag.String("out", "", "Output file (default stdout)")
		verbose     = flag.Bool("v", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive escape inspector")
	)
	flag.Parse()

	if *verbose {
		if logger, err := zap.NewDevelopment(); err == nil {
			stream.SetLogger(logger)
			defer logger.Sync()
		}
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *width != 8 && *width != 16 {
		fmt.Fprintln(os.Stderr, "Usage: stfu8 [-decode] [-width 8|16] [-pretty] [-in file] [-out file]")
		fmt.Fprintln(os.Stderr, "       stfu8 -i  (interactive escape inspector)")
		os.Exit(1)
	}

	if err := run(*decode, *width, *pretty, *inFile, *outFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(decode bool, width int, pretty bool, inFile, outFile string) error {
	in := io.Reader(os.Stdin)
	if inFile != "" {
		f, err := os.Open(inFile)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	out := io.Writer(os.Stdout)
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	var err error
	switch {
	case decode && width == 8:
		err = decodeBytes(out, in)
	case decode:
		err = decodeUnits(out, in)
	case width == 8:
		err = encodeBytes(out, in, pretty)
	default:
		err = encodeUnits(out, in, pretty)
	}
	if err != nil {
		return err
	}

	// Encoded text gets a closing newline on a terminal so the shell prompt
	// starts clean. Redirected output stays byte-exact.
	if !decode && outFile == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(out)
	}
	return nil
}

func encodeBytes(w io.Writer, r io.Reader, pretty bool) error {
	enc := stream.NewByteEncoder(w)
	if pretty {
		enc = stream.NewPrettyByteEncoder(w)
	}
	if _, err := io.Copy(enc, r); err != nil {
		return err
	}
	return enc.Close()
}

func decodeBytes(w io.Writer, r io.Reader) error {
	_, err := io.Copy(w, stream.NewByteDecoder(r))
	return err
}

func encodeUnits(w io.Writer, r io.Reader, pretty bool) error {
	enc := stream.NewUnitEncoder(w)
	if pretty {
		enc = stream.NewPrettyUnitEncoder(w)
	}

	buf := make([]byte, 64*1024)
	units := make([]uint16, 0, 32*1024)
	carry := 0
	for {
		n, err := r.Read(buf[carry:])
		n += carry

		units = units[:0]
		for i := 0; i+1 < n; i += 2 {
			units = append(units, binary.LittleEndian.Uint16(buf[i:]))
		}
		if _, werr := enc.WriteUnits(units); werr != nil {
			return werr
		}

		if n%2 == 1 {
			buf[0] = buf[n-1]
			carry = 1
		} else {
			carry = 0
		}

		switch {
		case err == io.EOF:
			if carry == 1 {
				return fmt.Errorf("input is not UTF-16LE: odd byte count")
			}
			return enc.Close()
		case err != nil:
			return err
		}
	}
}

func decodeUnits(w io.Writer, r io.Reader) error {
	dec := stream.NewUnitDecoder(r)
	units := make([]uint16, 32*1024)
	out := make([]byte, 64*1024)
	for {
		n, err := dec.ReadUnits(units)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(out[i*2:], units[i])
		}
		if n > 0 {
			if _, werr := w.Write(out[:n*2]); werr != nil {
				return werr
			}
		}
		switch {
		case err == io.EOF:
			return nil
		case err != nil:
			return err
		}
	}
}
