// Command football inspects StatsBomb matches from the terminal.
package main

import "github.com/riskibarqy/football-ai/internal/cli"

func main() {
	cli.Execute()
}
