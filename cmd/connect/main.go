// Command connect shows flagset in use. It parses a server address and some
// options and prints what it would do.
package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/anacrolix/flagset"
)

func main() {
	bold := color.New(color.Bold)
	fs := flagset.NewFlagSet(os.Args,
		flagset.Description("Pretends to connect to a server."),
		flagset.NameStyle(func(s string) string { return bold.Sprint(s) }),
	)
	host := fs.String("h", "localhost", "Server host string")
	port := fs.Int("p", 1234, "Network port(TCP)")
	race := fs.Float("race", 0, "Test the float value")
	logg := fs.Bool("log", false, "show the log")
	bufSize := fs.String("bufsize", "32 KiB", "read buffer `size`, for example 64KiB or 1MB")
	fs.Parse()

	buf, err := parseBufSize(bufSize.Get())
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect: %s\n", err)
		os.Exit(2)
	}
	fmt.Printf("connect to %s:%d with race %v. Show log?:%v\n", host.Get(), port.Get(), race.Get(), logg.Get())
	fmt.Printf("buffer %s\n", humanize.IBytes(buf))
	if fs.NArg() != 0 {
		fmt.Printf("extra args %q\n", fs.Args())
	}
}

func parseBufSize(s string) (uint64, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing -bufsize %q", s)
	}
	return n, nil
}
