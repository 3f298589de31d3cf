package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/civicgrid/yojana/internal/model"
	"github.com/civicgrid/yojana/internal/pipeline"
	"github.com/spf13/cobra"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Ask follow-up questions about your matched schemes",
	Long: `Chat first runs the same evaluation as recommend, then opens an
interactive session where follow-up questions are answered using only the
matched schemes as context.

Requires a narrative provider (--llm-provider openai|gemini|local).

Example:
  yojana chat --age 25 --income 200000 --state "Madhya Pradesh" --gender Female --llm-provider local`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
	addProfileFlags(chatCmd)
	addOutputFlags(chatCmd)
	addLLMFlags(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	// Chat is pointless without a provider; default to the deterministic one
	// unless the user asked for a specific backend
	if !llmEnabled {
		llmEnabled = true
		if !cmd.Flags().Changed("llm-provider") {
			llmProvider = "local"
		}
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	rec, err := p.Recommend(ctx, profileForm())
	if err != nil {
		return err
	}

	renderer := pipeline.NewRenderer(cfg.Language)
	if err := renderer.RenderText(os.Stdout, rec); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Ask about your matched schemes. Type 'exit' to quit.")
	fmt.Println()

	// Transcript is append-only and lives only for this session
	var transcript []model.ChatTurn
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if message == "exit" || message == "quit" {
			break
		}

		// Each reply gets its own timeout, independent of the session length
		replyCtx, cancelReply := context.WithTimeout(context.Background(), timeout)
		answer := p.Reply(replyCtx, transcript, message, rec)
		cancelReply()

		fmt.Printf("\n%s\n\n", answer)

		transcript = append(transcript,
			model.NewTurn(model.RoleUser, message),
			model.NewTurn(model.RoleAssistant, answer),
		)
	}

	return scanner.Err()
}
