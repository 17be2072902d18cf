package main

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"path"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"syscall"

	qr "github.com/unixdj/qrmatrix"
	"github.com/unixdj/qrmatrix/coding"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/sync/errgroup"
)

var g = struct {
	opts     qr.Options                  // encoder options
	scale    int                         // scale
	palette  *[2]color.Color             // palette
	colors   *qr.RoleValues[color.Color] // per-role colours
	shape    qr.Shape                    // svg module shape
	rev      bool                        // reverse colours
	fn       string                      // filename
	fext     string                      // filename suffix
	format   int                         // output file format
	bg, fg   rgba                        // colour
	accent   rgba                        // finder and alignment colour
	colSet   bool                        // colour set
	byteOnly bool                        // byte mode only
	upper    bool                        // uppercase
	lines    bool                        // one code per input line
	debug    bool                        // print diagnostics
}{
	bg: rgba{0xff, 0xff, 0xff, 0xff},
	fg: rgba{0x00, 0x00, 0x00, 0xff},
}

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
	fmt.Fprint(w, "QR code generator\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no string is given, data is read from standard input and the final
newline is stripped.  Defaults: level L, smallest fitting version,
automatic mask, first of numeric, alphanumeric and byte modes that
accepts the data.

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

type rgba struct {
	R, G, B, A uint8
}

// rgb maps colour names to colours.
var rgb = map[string]rgba{
	"black":       {0x00, 0x00, 0x00, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"red":         {0xff, 0x00, 0x00, 0xff},
	"green":       {0x00, 0xff, 0x00, 0xff},
	"blue":        {0x00, 0x00, 0xff, 0xff},
	"navy":        {0x00, 0x00, 0x80, 0xff},
	"gray":        {0xbe, 0xbe, 0xbe, 0xff},
	"grey":        {0xbe, 0xbe, 0xbe, 0xff},
	"transparent": {0x00, 0x00, 0x00, 0x00},
}

func (c *rgba) String() string {
	if *c == (rgba{0x00, 0x00, 0x00, 0xff}) {
		return "black"
	} else if *c == (rgba{0xff, 0xff, 0xff, 0xff}) {
		return "white"
	} else if c.A == 0xff {
		return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	} else {
		return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
}

func (c *rgba) Set(s string, _ getopt.Option) error {
	var ok bool
	if *c, ok = rgb[strings.ToLower(strings.ReplaceAll(s, " ", ""))]; ok {
		return nil
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("%q: bad colour spec", s)
	}
	switch len(s) {
	case 3:
		n = n<<4 | 0xf
		fallthrough
	case 4:
		var nn uint64
		for i := 0; i < 4; i++ {
			nn <<= 8
			nn |= n >> 12 & 0xf * 0x11
			n <<= 4
		}
		n = nn
	case 6:
		n = n<<8 | 0xff
	case 8:
	default:
		return fmt.Errorf("%q: bad colour spec", s)
	}
	c.R, c.G, c.B, c.A = uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)
	return nil
}

// versionRange implements getopt.Value for "min-max" version ranges.
type versionRange struct{ min, max *coding.Version }

func (r versionRange) String() string {
	return r.min.String() + "-" + r.max.String()
}

func (r versionRange) Set(s string, _ getopt.Option) error {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		hi = lo
	}
	a, err := strconv.Atoi(lo)
	if err != nil {
		return fmt.Errorf("%q: bad version range", s)
	}
	b, err := strconv.Atoi(hi)
	if err != nil {
		return fmt.Errorf("%q: bad version range", s)
	}
	*r.min, *r.max = coding.Version(a), coding.Version(b)
	return nil
}

// logoSize implements getopt.Value for "W[xH]" logo dimensions.
type logoSize struct{ w, h *int }

func (l logoSize) String() string {
	return strconv.Itoa(*l.w) + "x" + strconv.Itoa(*l.h)
}

func (l logoSize) Set(s string, _ getopt.Option) error {
	ws, hs, _ := strings.Cut(strings.ToLower(s), "x")
	w, err := strconv.Atoi(ws)
	if err != nil {
		return fmt.Errorf("%q: bad logo size", s)
	}
	h := 0
	if hs != "" {
		if h, err = strconv.Atoi(hs); err != nil {
			return fmt.Errorf("%q: bad logo size", s)
		}
	}
	*l.w, *l.h = w, h
	return nil
}

var formats = []string{
	"png", "pngi", "pbm", "pbmi", "svg", "svgi", "pdf", "pdfi",
	"eps", "epsi", "json", "jsoni", "utf8", "utf8i", "ascii", "asciii",
}

// shapes are indexed by qr.Shape.
var shapes = []string{"square", "rounded", "circle"}

var encoders = [...]func(*qr.Code, io.Writer) error{
	(*qr.Code).EncodePNG,
	(*qr.Code).EncodePBM,
	(*qr.Code).EncodeSVG,
	(*qr.Code).EncodePDF,
	eps,
	(*qr.Code).EncodeJSON,
	(*qr.Code).EncodeUTF8,
	(*qr.Code).EncodeASCII,
}

func parseFlags() {
	o := qr.DefaultOptions()
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.FlagLong(opt(version), "version", 0,
		"print version and copyright").SetFlag()
	bgo := getopt.FlagLong(&g.bg, "background", 'B',
		`background colour; see -F`, "RGB[A]|name")
	fgo := getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3, 4, 6 or 8 hex digits or a colour name; `+
		`only for types png[i], svg[i], pdf[i] and eps[i]`, "RGB[A]|name")
	aco := getopt.FlagLong(&g.accent, "accent", 'A', `colour of dark `+
		`finder and alignment modules; see -F, not for type eps[i]`,
		"RGB[A]|name")
	shape := getopt.Enum('S', shapes, shapes[qr.Square],
		`module shape for type svg[i], one of: `+
			strings.Join(shapes, ", "), "shape")
	getopt.Flag(&o.Latin1, '1', "convert input to Latin-1")
	getopt.Flag(&g.byteOnly, '8', "encode entire data in byte mode")
	getopt.Flag(&g.upper, 'i', `ignore case, convert input to uppercase`)
	getopt.Flag(&g.lines, 'n', `encode each input line as a separate `+
		`code; "-01", "-02" etc. is appended to the -o filename `+
		`before suffix`)
	getopt.Flag(&g.debug, 'd', "print version, level and mask to "+
		"standard error")
	getopt.Flag(&o.QuietZone, 'm', `quiet zone modules`, "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	getopt.Flag(versionRange{&o.MinVersion, &o.MaxVersion}, 'V',
		"range of versions to choose from", "min-max")
	getopt.Flag(logoSize{&o.LogoWidth, &o.LogoHeight}, 'L',
		"reserve centred logo space of the given size in modules; "+
			"requires -l h", "W[xH]")
	ver := getopt.Unsigned('v', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 40},
		"fixed QR code version; 0 chooses the smallest that fits", "ver")
	mask := getopt.Signed('k', -1, &getopt.SignedLimit{Base: 0, Bits: 8, Min: -1, Max: 7},
		"mask pattern; -1 chooses the best", "mask")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "l",
		"error correction level, lowest to highest", "l|m|q|h")
	scale := getopt.Unsigned('s', 8,
		&(getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 1, Max: 1 << 28}),
		`image pixels (type eps[i]: points) per QR module; `+
			`ignored for types json, utf8[i] and ascii[i]`, "scale")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	g.colSet = bgo.Seen() || fgo.Seen()
	g.scale = int(*scale)
	g.shape = qr.Shape(slices.Index(shapes, *shape))
	o.Version = coding.Version(*ver)
	o.Mask = coding.Mask(*mask)
	o.Level = coding.Level(strings.Index("lmqhLMQH", *lev) & 3)
	if g.byteOnly {
		o.Mode = coding.Byte
	}
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			break
		}
	}
	if g.fn == "-" {
		g.fn = ""
	}
	if g.colSet {
		g.palette = &[2]color.Color{color.RGBA(g.bg), color.RGBA(g.fg)}
	}
	if aco.Seen() {
		g.colors = qr.NewRoleValues[color.Color](color.RGBA(g.bg),
			color.RGBA(g.fg))
		g.colors.SetDark(color.RGBA(g.accent),
			coding.Finder, coding.FinderDot, coding.Alignment)
	}
	g.opts = *o
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	if g.upper {
		s = strings.ToUpper(s)
	}

	text := []string{s}
	if g.lines {
		text = strings.Split(s, "\n")
		g.fext = path.Ext(g.fn)
		g.fn = g.fn[:len(g.fn)-len(g.fext)]
	}
	cc := make([]*qr.Code, len(text))
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, t := range text {
		i, t := i, t
		eg.Go(func() error {
			c, err := qr.Encode(t, &g.opts)
			if err != nil && g.lines {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			cc[i] = c
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
	for i, c := range cc {
		if !g.lines {
			i = -1
		}
		write(i, c)
	}
}

func write(i int, c *qr.Code) {
	if g.debug {
		mask, _ := c.MaskPattern()
		log.Printf("version %s, level %s, mask %s, %dx%d modules",
			c.Version(), c.Level(), mask, c.Size(), c.Size())
	}
	fn := g.fn
	open := fn != "" || g.fext != ""
	var w = os.Stdout
	if open {
		if i >= 0 {
			fn = fmt.Sprintf("%s-%02d%s", fn, i+1, g.fext)
		}
		var err error
		if w, err = os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	c.Scale = g.scale
	c.Palette = g.palette
	c.Colors = g.colors
	c.Reverse = g.rev
	c.Shape = g.shape
	c.KeepSquare = []coding.Role{coding.Finder, coding.FinderDot}
	err := encoders[g.format](c, w)
	if open && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

func eps(c *qr.Code, w io.Writer) error {
	const midx, midy = 306, 396
	siz := c.Size()
	scale := c.Scale
	xorig := (midx*2 - siz*scale) / 2
	yorig := (midy*2 - siz*scale) / 2
	fmt.Fprintf(w, `%%!PS-Adobe-2.0 EPSF-2.0
%%%%Creator: QR https://github.com/unixdj/qrmatrix
%%%%Title: QR Code
%%%%BoundingBox: %d %d %d %d
%%%%EndComments
%%%%EndProlog
<< >> begin
gsave
%g %g translate
%d dup neg scale
/row 0 def
/p { 0 rmoveto 0 rlineto } def
/r { 0 row 1 add dup /row exch def moveto } def
`,
		xorig-1, yorig-1, midx*2-xorig, midy*2-yorig,
		midx-float64(siz*scale)/2, midy+float64((siz-1)*scale)/2-1,
		scale)
	if rev := c.Reverse; rev || g.colSet {
		bg, fg := g.bg, g.fg
		if rev {
			bg, fg = fg, bg
			c.Reverse = false
		}
		fmt.Fprintf(w, `gsave
newpath 0 %d moveto
%d dup neg scale
%.3g %.3g %.3g setrgbcolor
1 0 rlineto stroke
grestore
%.3g %.3g %.3g setrgbcolor
`,
			siz/2, siz,
			float64(bg.R)/0xff, float64(bg.G)/0xff,
			float64(bg.B)/0xff, float64(fg.R)/0xff,
			float64(fg.G)/0xff, float64(fg.B)/0xff)
	}
	fmt.Fprintln(w, "newpath 0 0 moveto")
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; {
			s := x
			for x < siz && !c.Black(x, y) {
				x++
			}
			if x == siz {
				break
			}
			b := x
			for x < siz && c.Black(x, y) {
				x++
			}
			fmt.Fprintf(w, "%d %d p ", x-b, b-s)
		}
		fmt.Fprintln(w, "r")
	}
	_, err := io.WriteString(w, "stroke grestore\nend\n%%Trailer\n")
	return err
}
