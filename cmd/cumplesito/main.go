package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/five82/cumplesito/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (optional, defaults to ~/.config/cumplesito/config.toml)")
	envFiles := flag.String("env", "", "comma-separated .env files to load (optional, defaults to ./.env)")
	link := flag.String("wishlist", "", "wishlist id or share link to open at start (optional)")
	owner := flag.Bool("owner", false, "show owner controls for -wishlist")
	lang := flag.String("lang", "", "interface language: es or en (optional)")
	flag.Parse()

	if *link == "" && flag.NArg() > 0 {
		*link = flag.Arg(0)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		EnvFiles:   splitList(*envFiles),
		Link:       *link,
		Owner:      *owner,
		Lang:       *lang,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "cumplesito: %v\n", err)
		return 1
	}
	return 0
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
