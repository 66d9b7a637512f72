package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/geange/thompson"
)

// quitCommand ends the test string loop.
const quitCommand = "QUIT"

const unsupportedMessage = `Not a valid or supported regular expression. It only supports:
1) 'a' - 'z'
2) open and close parenthesis
3) '|' for union
4) '*' for zero or more and '+' for one or more`

func main() {
	dotPath := flag.String("dot", "", "write the compiled automaton as Graphviz DOT to this path")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(getEnv("THOMPSON_LOG_LEVEL", "warn")),
	}))
	slog.SetDefault(logger)

	err := run(os.Stdin, os.Stdout, logger, *dotPath)
	if err != nil && !errors.Is(err, thompson.ErrInvalidExpression) {
		fmt.Fprintf(os.Stderr, "thompson: %v\n", err)
	}
	os.Exit(exitCode(err))
}

// exitCode is 1 for any error, a rejected expression included, so scripts can tell it apart
// from a session that ran to the end.
func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

// run reads one expression from in, then evaluates every following line against it until
// quitCommand or end of input.
func run(in io.Reader, out io.Writer, logger *slog.Logger, dotPath string) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprint(out, "Enter a regular expression: ")
	if !scanner.Scan() {
		fmt.Fprintln(out)
		return scanner.Err()
	}

	a, err := thompson.Compile(scanner.Text(), thompson.WithLogger(logger))
	if err != nil {
		fmt.Fprintln(out, unsupportedMessage)
		return err
	}

	if dotPath != "" {
		if err := writeDOT(dotPath, a); err != nil {
			return err
		}
		logger.Info("automaton written", "path", dotPath, "states", a.GetNumStates())
	}

	for {
		fmt.Fprint(out, "Enter a string: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := scanner.Text()
		if line == quitCommand {
			return nil
		}
		fmt.Fprintln(out, a.Accepts(line))
	}
}

func writeDOT(path string, a *thompson.Automaton) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dot file: %w", err)
	}
	if err := thompson.WriteDOT(f, a); err != nil {
		f.Close()
		return fmt.Errorf("write dot file: %w", err)
	}
	return f.Close()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
