package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"

	"github.com/synadia-labs/floatconsts/floatconsts"
	"github.com/synadia-labs/floatconsts/internal/gen"
)

// CLI defines the floatconsts command-line interface. With no command
// it prints the table.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose diagnostics"`

	Show   ShowCmd   `cmd:"" default:"1" help:"Print the float32 limits table."`
	Verify VerifyCmd `cmd:"" help:"Check that the bit masks partition a 32-bit word."`
	Encode EncodeCmd `cmd:"" help:"Write the table as CBOR or MessagePack."`
	Gen    GenCmd    `cmd:"" help:"Generate a Go file declaring the table in another package."`
}

// env is bound into every command's Run method.
type env struct {
	out io.Writer
	log *log.Logger
}

func newEnv(stdout, stderr io.Writer, verbose bool) *env {
	logger := log.New()
	logger.SetOutput(stderr)
	logger.SetLevel(log.WarnLevel)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return &env{out: stdout, log: logger}
}

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "floatconsts:", err)
		os.Exit(1)
	}
}

func execute(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("floatconsts"),
		kong.Description("Inspect, verify, encode and generate IEEE 754 binary32 limits."),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return ctx.Run(newEnv(stdout, stderr, cli.Verbose))
}

// ShowCmd prints the table.
type ShowCmd struct{}

// Run writes one tab-aligned row per entry.
func (c *ShowCmd) Run(e *env) error {
	tw := tabwriter.NewWriter(e.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Name\tType\tValue\tBits")
	for _, ent := range floatconsts.Entries() {
		bits := "-"
		if ent.Kind != floatconsts.IntKind {
			bits = fmt.Sprintf("0x%08X", ent.Bits)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", ent.Name, ent.Kind, ent.Value, bits)
	}
	return tw.Flush()
}

// VerifyCmd checks the bit-mask partition.
type VerifyCmd struct{}

// Run prints ok, or returns the *InvariantViolation.
func (c *VerifyCmd) Run(e *env) error {
	if err := floatconsts.Float32().Verify(); err != nil {
		e.log.WithError(err).Error("float32 layout failed verification")
		return err
	}
	e.log.Debug("sign, exponent and significand masks partition 32 bits")
	_, err := fmt.Fprintln(e.out, "ok")
	return err
}

// EncodeCmd writes the serialized table.
type EncodeCmd struct {
	Format string `short:"f" enum:"cbor,msgpack" default:"cbor" help:"Encoding: cbor or msgpack."`
	Hex    bool   `help:"Write lowercase hex instead of raw bytes."`
	Output string `short:"o" help:"Output file (defaults to stdout)."`
}

// Run encodes the table to stdout or to Output.
func (c *EncodeCmd) Run(e *env) error {
	layout := floatconsts.Float32()

	var (
		b   []byte
		err error
	)
	switch c.Format {
	case "msgpack":
		b, err = layout.MarshalMsg(nil)
	default:
		b, err = layout.MarshalCBOR()
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.Format, err)
	}
	e.log.WithFields(log.Fields{"format": c.Format, "bytes": len(b)}).Debug("encoded table")

	if c.Hex {
		b = []byte(hex.EncodeToString(b) + "\n")
	}
	if c.Output == "" {
		_, err = e.out.Write(b)
		return err
	}
	if err := os.WriteFile(c.Output, b, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", c.Output, err)
	}
	e.log.WithField("path", c.Output).Debug("wrote encoded table")
	return nil
}

// GenCmd generates a Go file declaring the table.
type GenCmd struct {
	Package string `short:"p" required:"" help:"Package name of the generated file."`
	Prefix  string `help:"Prefix for every generated identifier."`
	Output  string `short:"o" help:"Output file (defaults to stdout)."`
}

// Run renders the file to stdout or to Output.
func (c *GenCmd) Run(e *env) error {
	opts := gen.Options{Package: c.Package, Prefix: c.Prefix}
	if c.Output == "" {
		return gen.Generate(e.out, opts)
	}
	if err := gen.WriteFile(c.Output, opts); err != nil {
		return err
	}
	e.log.WithFields(log.Fields{"path": c.Output, "package": c.Package}).Debug("generated constants")
	return nil
}
