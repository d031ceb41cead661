package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/markpad/markpad/engine/blockedit"
	"github.com/markpad/markpad/engine/dom"
	cleanup "github.com/markpad/markpad/input/html"
	"github.com/markpad/markpad/input/markdown"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'markpad.demo'
func tracer() tracing.Trace {
	return tracing.Select("markpad.demo")
}

const sample = `# Scratchpad

A paragraph to play with.

> Quoted thought.
> Another line of it.

- first item
- second item
`

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fname := flag.String("f", "", "Markdown file to load")
	flag.Parse()
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.markpad.*": *tlevel,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	markup := sample
	if *fname != "" {
		data, err := os.ReadFile(*fname)
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
		markup = string(data)
	}
	root, err := markdown.Render(markup)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	surf, err := dom.NewSurface(root)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	surf.Observe(func(cmd dom.Command, value string) {
		tracer().Infof("journal: %s %q", cmd, value)
	})
	ed, err := blockedit.New(surf)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	surf.CaretAtStart(surf.Root())

	pterm.Info.Println("Welcome to the markpad demo")
	pterm.Info.Println("Commands: show | md | caret <n> | backspace | enter | tab | paste <html>")
	pterm.Info.Println("Quit with <ctrl>D")
	repl, err := readline.New("markpad > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	loop(repl, ed)
}

func loop(repl *readline.Instance, ed *blockedit.Editor) {
	surf := ed.Surface()
	for {
		line, err := repl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return
		} else if err != nil {
			pterm.Error.Println(err.Error())
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		switch cmd {
		case "":
		case "show":
			pterm.Println(surf.InnerHTML())
		case "md":
			markup, err := markdown.Serialize(surf.Root())
			if err != nil {
				pterm.Error.Println(err.Error())
				continue
			}
			pterm.Println(markup)
		case "caret":
			n, err := strconv.Atoi(arg)
			if err != nil {
				pterm.Error.Println("caret needs a text offset")
				continue
			}
			surf.SetAbsoluteCaretOffset(n)
		case "backspace", "enter", "tab":
			handled := ed.HandleKey(keyFor(cmd))
			surf.Settle()
			pterm.Info.Printfln("%s handled: %v", cmd, handled)
		case "paste":
			handled := surf.InsertFragment(cleanup.Clean(arg))
			pterm.Info.Printfln("paste handled: %v", handled)
		default:
			pterm.Error.Printfln("unknown command %q", cmd)
		}
	}
}

func keyFor(cmd string) blockedit.Key {
	switch cmd {
	case "enter":
		return blockedit.KeyEnter
	case "tab":
		return blockedit.KeyTab
	}
	return blockedit.KeyBackspace
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
