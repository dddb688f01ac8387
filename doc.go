// Package flagset parses typed command-line flags from an argument slice.
//
// For example:
//
//	fs := flagset.NewFlagSet(os.Args)
//	host := fs.String("h", "localhost", "Server host string")
//	port := fs.Int("p", 1234, "Network `port` (TCP)")
//	verbose := fs.Bool("log", false, "show the log")
//	fs.Parse()
//	fmt.Println(host.Get(), port.Get(), verbose.Get())
//
// Flags are given as -name, --name, -name=value or --name=value. Non-bool
// flags take the following argument as their value if none is given with
// "=". A bare bool flag is set true. "--" ends flag parsing and the arguments
// after it are returned by Args. Any other argument that isn't a flag is an
// error.
//
// Unless NoDefaultHelp is given, an unregistered -h or -help prints usage.
// Parse exits the program on errors and help; ParseErr returns them instead.
package flagset
