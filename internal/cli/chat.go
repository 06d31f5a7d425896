package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/riskibarqy/football-ai/internal/agent"
	"github.com/spf13/cobra"
)

const chatHelp = "Ask anything about the match. Commands: /clear forgets the conversation, /export writes the history, /quit leaves."

func newChatCommand(o *rootOptions) *cobra.Command {
	var (
		exportPath string
		quiet      bool
	)
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the analyst agent about one match",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := o.load(cmd)
			if err != nil {
				return err
			}
			ref := o.ref()
			details, err := c.Matches.GetMatch(cmd.Context(), ref)
			if err != nil {
				return err
			}
			conv, err := c.NewAgent(agent.MatchContext{
				MatchID:       ref.MatchID,
				CompetitionID: ref.CompetitionID,
				SeasonID:      ref.SeasonID,
				MatchName:     details.Name(),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var thoughts io.Writer = cmd.ErrOrStderr()
			if quiet {
				thoughts = io.Discard
			}
			fmt.Fprintf(out, "Chatting about %s.\n%s\n", conv.Match().MatchName, chatHelp)

			err = chatLoop(cmd, conv, cmd.InOrStdin(), out, thoughts, exportPath)
			if exportPath != "" && conv.Memory().HasHistory() {
				if exportErr := exportHistory(conv, exportPath); exportErr != nil {
					return exportErr
				}
				fmt.Fprintf(out, "History written to %s\n", exportPath)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&exportPath, "export", "", "write the chat history to this file on exit (default name "+agent.HistoryFileName+" with /export)")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "do not print the agent's streamed thoughts")
	return cmd
}

func chatLoop(cmd *cobra.Command, conv *agent.Agent, in io.Reader, out, thoughts io.Writer, exportPath string) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "/quit", "/exit", "exit", "quit":
			return nil
		case "/clear":
			conv.Memory().Clear()
			fmt.Fprintln(out, "Conversation cleared.")
			continue
		case "/export":
			path := exportPath
			if path == "" {
				path = agent.HistoryFileName
			}
			if err := exportHistory(conv, path); err != nil {
				fmt.Fprintf(out, "export failed: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "History written to %s\n", path)
			continue
		}

		answer := conv.Ask(cmd.Context(), line, func(delta string) {
			fmt.Fprint(thoughts, delta)
		})
		fmt.Fprintln(thoughts)
		fmt.Fprintf(out, "%s\n", answer)
	}
}

func exportHistory(conv *agent.Agent, path string) error {
	raw, err := conv.Memory().ExportJSON()
	if err != nil {
		return fmt.Errorf("export chat history: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
