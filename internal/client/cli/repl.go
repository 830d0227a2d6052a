package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL needs. App satisfies it; tests
// provide a stub.
type execIface interface {
	Get(ctx context.Context) error
	Show(ctx context.Context) error
	Save(ctx context.Context, key, value string) error
	Advance(ctx context.Context, target string) error
	Appraise(ctx context.Context) error
	Pay(ctx context.Context) error
	Verify(ctx context.Context, reference string) error
	Photo(ctx context.Context, file string) error
	Reset(ctx context.Context) error
	Seed(ctx context.Context) error
}

const helpText = "Available commands: get, show, save <key> [value], advance <STEP>, appraise, pay, verify [reference], photo <file>, reset, seed, exit"

// runREPL reads commands line by line and dispatches them to a. The loop
// exits on EOF or on "exit"/"quit". Handler errors are printed and the
// loop goes on. Commands that prompt for more input share reader.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("jw %s> ", statusFn()))
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && raw == "" {
			return
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		var err error
		switch cmd {
		case "help":
			printlnFn(helpText)

		case "get":
			err = a.Get(ctx)

		case "show":
			err = a.Show(ctx)

		case "save":
			key, value, _ := strings.Cut(rest, " ")
			if key == "" {
				printlnFn("Usage: save <key> [value]")
				continue
			}
			err = a.Save(ctx, key, strings.TrimSpace(value))

		case "advance":
			if rest == "" {
				printlnFn("Usage: advance <PROFILE|DETAILS|PRICING|PAYMENT>")
				continue
			}
			err = a.Advance(ctx, strings.ToUpper(rest))

		case "appraise":
			err = a.Appraise(ctx)

		case "pay":
			err = a.Pay(ctx)

		case "verify":
			err = a.Verify(ctx, rest)

		case "photo":
			if rest == "" {
				printlnFn("Usage: photo <file>")
				continue
			}
			err = a.Photo(ctx, rest)

		case "reset":
			err = a.Reset(ctx)

		case "seed":
			err = a.Seed(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
