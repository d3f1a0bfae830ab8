package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	interp "github.com/JoshuaCrotts/MicroScheme/internal/interp"
	"github.com/JoshuaCrotts/MicroScheme/internal/mcpserver"
)

const (
	promptMain = "ms> "
	promptCont = "  > "
)

var banner = "MicroScheme REPL. Ctrl+C cancels input, Ctrl+D exits."

// main implements the CLI surface: a single file argument evaluates that
// file and exits; no arguments starts an interactive REPL. Neither mode
// reads environment variables or persists state between runs.
func main() {
	if len(os.Args) == 2 && os.Args[1] == "serve-mcp" {
		if err := mcpserver.New().ServeStdio(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}
	if len(os.Args) > 2 {
		fmt.Fprintln(os.Stderr, "usage: microscheme [file|serve-mcp]")
		os.Exit(1)
	}
	if len(os.Args) == 2 {
		os.Exit(runFile(os.Args[1]))
	}
	os.Exit(runRepl())
}

func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	ev := interp.NewEvaluator()
	if _, err := interp.RunSource(ev, string(src)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runRepl() int {
	fmt.Println(banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	ev := interp.NewEvaluator()

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}
		if strings.TrimSpace(code) == "" {
			continue
		}
		if strings.TrimSpace(code) == ":quit" {
			break
		}

		v, err := interp.RunSource(ev, code)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(v.String())
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}
	return 0
}

// readByParseProbe accumulates lines until the buffer parses cleanly or
// fails for a reason other than running out of input, so multi-line forms
// prompt with promptCont instead of erroring on their first incomplete line.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.TrimSpace(src) == "" || strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		_, perr := interp.Parse(src)
		if perr == nil {
			return src, true
		}
		if interp.IsIncompleteParse(perr) {
			continue
		}
		return src, true
	}
}
