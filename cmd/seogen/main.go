package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/seogen/cmd/seogen/commands"
	ferrors "git.home.luguber.info/inful/seogen/internal/foundation/errors"
	"git.home.luguber.info/inful/seogen/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("seogen"),
		kong.Description("Generate programmatic SEO landing pages and their sitemap."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := parser.Run(&commands.Global{Ctx: ctx, Stdout: os.Stdout}, cli)
	stop()

	ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
