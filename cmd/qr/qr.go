package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"
	"syscall"

	qr "github.com/unixdj/qrenc"
	"github.com/unixdj/qrenc/coding"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g = struct {
	fn      string         // output file name
	charset string         // input charset
	mode    coding.Mode    // encoding mode
	lev     coding.Level   // QR correction level
	ver     coding.Version // QR version
	mask    coding.Mask    // mask pattern
	format  int            // output format
	rev     bool           // reverse colours
	upper   bool           // uppercase
	info    bool           // print symbol information
	debug   bool           // print codewords
}{}

var (
	modeNames  = []string{"auto", "numeric", "alphanumeric", "byte"}
	modeValues = []coding.Mode{qr.Auto, coding.Numeric,
		coding.Alphanumeric, coding.Byte}
	levelNames = []string{"auto", "l", "m", "q", "h", "L", "M", "Q", "H"}
)

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [string ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:max(n, 0)]
		ml = 60
	}
	fmt.Fprint(w, "QR code encoder\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no string is given, data is read from standard input and the final
newline is stripped.  Defaults are taken from the environment variables
QR_MODE, QR_LEVEL, QR_VERSION, QR_MASK, QR_FORMAT and QR_CHARSET, which
may be set in a .env file.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qr version 0.9.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

func parseFlags(cfg config) {
	g.charset = cfg.Charset
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.Flag(&g.upper, 'u', "convert input to uppercase")
	getopt.Flag(&g.info, 'i', "print symbol information to standard error")
	getopt.Flag(&g.debug, 'd', "print codewords to standard error")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	getopt.Flag(&g.charset, 'c', `input charset for standard input, `+
		`any WHATWG encoding label such as "utf-16le" or "shift_jis"`,
		"charset")
	mode := getopt.Enum('m', modeNames, cfg.Mode,
		"encoding mode", strings.Join(modeNames, "|"))
	lev := getopt.Enum('l', levelNames, cfg.Level,
		"error correction level, lowest to highest; "+
			"auto picks the highest that fits", "auto|l|m|q|h")
	ver := getopt.Unsigned('v', cfg.Version,
		&getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 40},
		"QR code version; 0 picks the smallest that fits", "ver")
	mask := getopt.Unsigned('k', cfg.Mask,
		&getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 8},
		"mask pattern; 8 picks the one with the lowest penalty", "mask")
	ff := getopt.Enum('t', formats, cfg.Format, `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is bits, otherwise json`, "type")

	getopt.Parse()
	g.mode = modeValues[slices.Index(modeNames, *mode)]
	g.lev = qr.Auto
	if l := strings.ToLower(*lev); l != "auto" {
		g.lev = coding.Level(strings.Index("mlhq", l))
	}
	g.ver = coding.Version(*ver)
	if g.ver == 0 {
		g.ver = qr.Auto
	}
	g.mask = coding.Mask(*mask)
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "bits"
		} else {
			*ff = "json"
		}
	}
	i := slices.Index(formats, *ff)
	g.format = i >> 1
	g.rev = i&1 != 0
	if g.fn == "-" {
		g.fn = ""
	}
}

func main() {
	log.SetFlags(0)
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalln(err)
	}
	parseFlags(cfg)

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else if s, err = readText(os.Stdin, g.charset); err != nil {
		log.Fatalln(err)
	}
	if g.upper {
		s = strings.ToUpper(s)
	}

	c, err := qr.EncodeCode(qr.Request{
		Text:    s,
		Mode:    g.mode,
		Level:   g.lev,
		Version: g.ver,
		Mask:    g.mask,
	})
	if err != nil {
		log.Fatalln(err)
	}
	if g.debug {
		log.Printf("%d data bits, %d blocks of %d check bytes, "+
			"%d bit count, alignment %v",
			c.DataBits, c.NumBlocks, c.ECBytes, c.CountBits,
			c.AlignCenters)
		log.Printf("data: % x", c.Data)
		log.Printf("codewords: % x", c.Codewords)
	}
	if g.info {
		log.Println(info(c))
	}
	write(c)
}

func write(c *coding.Symbol) {
	var w = os.Stdout
	if g.fn != "" {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	err := encoders[g.format](c, w, g.rev)
	if g.fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}
