package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"GO-janken/internal/janken"
)

// runConsole reads one move per line from in until EOF, the quit word or
// cancellation of ctx, and plays it against match. Only legal move names
// reach the match, and no round starts once ctx is done.
func runConsole(ctx context.Context, in io.Reader, out io.Writer, match *janken.Match) error {
	fmt.Fprintln(out, title)

	lines, readErr := readLines(ctx, in)

loop:
	for {
		if ctx.Err() != nil {
			fmt.Fprintln(out)
			break
		}
		fmt.Fprint(out, inputPrompt)

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			break loop
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(out)
			break
		}
		input := strings.TrimSpace(line)

		if input == quitWord {
			break
		}
		if input == historyWord {
			printHistoryNewestFirst(out, match.History())
			continue
		}

		human, ok := janken.ParseMove(input)
		if !ok {
			fmt.Fprintln(out, invalidInput)
			continue
		}

		if ctx.Err() != nil {
			fmt.Fprintln(out)
			break
		}
		round, err := match.Play(ctx, human)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, "--------------------------------------------------")
		fmt.Fprintf(out, "あなた: %s\n", round.Human)
		fmt.Fprintf(out, "アシスタント: %s\n", round.Opponent)
		fmt.Fprintln(out, round.Outcome)
		fmt.Fprintln(out, "--------------------------------------------------")
	}

	select {
	case err := <-readErr:
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	default:
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, historyTitle)
	if match.History().Len() == 0 {
		fmt.Fprintln(out, noHistory)
	} else {
		fmt.Fprintln(out, match.History().Render())
	}
	fmt.Fprintln(out, goodbye)
	return nil
}

func printHistoryNewestFirst(out io.Writer, history *janken.History) {
	records := history.Records()
	if len(records) == 0 {
		fmt.Fprintln(out, noHistory)
		return
	}
	for i := len(records) - 1; i >= 0; i-- {
		fmt.Fprintln(out, records[i])
	}
}

// readLines scans in on its own goroutine so a blocked read never delays
// cancellation. lines is closed at EOF; the scan error, if any, is sent on
// the buffered error channel before that. A reader blocked on a terminal
// stays parked until the process exits.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}
