package main

import (
	"flag"
	"log/slog"
	"os"

	jsx "github.com/jdmiranda/acorn-jsx"
)

var (
	renderFlag = flag.Bool("render", false, "evaluate expressions and print HTML instead of the AST dump")
	nameFlag   = flag.String("name", "World", "value bound to the 'name' variable in expressions")
)

const defaultSource = `<section class="greeting">
	<h1>Hello {name}!</h1>
	<ul aria-label="facts">
		<li>Fragments: <>yes &bull; indeed</></li>
		<li><input type="checkbox" checked value={name}/></li>
	</ul>
</section>`

func main() {
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	src := defaultSource
	if flag.NArg() > 0 {
		src = flag.Arg(0)
	}

	node, err := jsx.Parse(src)
	if err != nil {
		logger.Error("parse failed", "error", err)
		os.Exit(1)
	}
	logger.Debug("parsed", "span", node.Span())

	if *renderFlag {
		env := map[string]any{"name": *nameFlag}
		if err := jsx.Render(os.Stdout, node, env); err != nil {
			logger.Error("render failed", "error", err)
			os.Exit(1)
		}
		os.Stdout.WriteString("\n")
		return
	}

	os.Stdout.WriteString(jsx.Dump(node))
}
