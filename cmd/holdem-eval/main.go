package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/lox/holdemcore/holdem"
)

var CLI struct {
	Cards []string `arg:"" help:"5 to 7 cards, e.g. As Kh Qh Jh Th 2c 3d"`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("holdem-eval"),
		kong.Description("Evaluate the best five-card hand from the given cards."))

	cards, err := holdem.ParseCards(CLI.Cards...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		kctx.Exit(1)
	}

	eval, err := holdem.Evaluate(cards)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		kctx.Exit(1)
	}

	best := make([]string, len(eval.BestFive))
	for i, c := range eval.BestFive {
		best[i] = c.String()
	}

	fmt.Println(eval.String())
	fmt.Printf("best five: %s\n", strings.Join(best, " "))
	fmt.Printf("score: %d\n", eval.Score())
}
