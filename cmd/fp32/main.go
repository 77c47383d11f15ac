package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
)

// Globals are shared by all commands.
type Globals struct {
	Verbose bool `short:"v" help:"Enable debug logging." env:"FP32_VERBOSE"`

	ctx    context.Context
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
}

// CLI defines the fp32 command-line interface.
// If any operand is negative, "--" must come before the first operand,
// like `fp32 add -- 1.5 -2` or `fp32 show -- 1 -2 -3`.
type CLI struct {
	Globals

	Add   AddCmd   `cmd:"" help:"Add two operands with the software engine and compare with hardware."`
	Mul   MulCmd   `cmd:"" help:"Multiply two operands with the software engine and compare with hardware."`
	Show  ShowCmd  `cmd:"" help:"Print the fields and the exact value of operands."`
	BF24  BF24Cmd  `cmd:"" name:"bf24" help:"Reduce operands to the 24-bit format."`
	Check CheckCmd `cmd:"" help:"Run test vector suites (yaml or cbor)."`
	Sweep SweepCmd `cmd:"" help:"Compare the engine with hardware on random operands."`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("fp32"),
		kong.Description("Software single precision addition and multiplication."),
		kong.UsageOnError(),
	)
	err := run(ctx, kctx, &cli, os.Stdout, os.Stderr)
	kctx.FatalIfErrorf(err)
}

func run(ctx context.Context, kctx *kong.Context, cli *CLI, out, errOut io.Writer) error {
	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	cli.ctx = ctx
	cli.out = out
	cli.errOut = errOut
	cli.logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
	return kctx.Run(&cli.Globals)
}
