package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/civicgrid/yojana/internal/model"
	"github.com/civicgrid/yojana/internal/pipeline"
	"github.com/civicgrid/yojana/internal/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Profile flags, shared by recommend and chat
	flagAge        string
	flagIncome     string
	flagOccupation string
	flagState      string
	flagGender     string
	flagCategory   string
	flagDisability bool

	// Output flags
	outJSON string
	outMD   string
	lang    string
	noCache bool
	timeout time.Duration

	// LLM flags
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// recommendCmd represents the recommend command
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Match a profile against the scheme catalog",
	Long: `Recommend evaluates a demographic profile against every scheme in the
catalog and prints the eligible schemes ranked by match score.

Age and income are required; other fields fall back to defaults.

Example:
  yojana recommend --age 30 --income 100000 --occupation "Wheat Farmer" --state Delhi --gender Male
  yojana recommend --age 25 --income 200000 --state "Madhya Pradesh" --gender Female --llm --llm-provider gemini
  yojana recommend --age 8 --income 50000 --gender Female --lang hi --json report.json`,
	RunE: runRecommend,
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	addProfileFlags(recommendCmd)
	addOutputFlags(recommendCmd)
	addLLMFlags(recommendCmd)
}

func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagAge, "age", "", "age in years (required)")
	cmd.Flags().StringVar(&flagIncome, "income", "", "annual household income in INR (required)")
	cmd.Flags().StringVar(&flagOccupation, "occupation", "", "occupation (free text, e.g. \"Wheat Farmer\")")
	cmd.Flags().StringVar(&flagState, "state", "", "state of residence")
	cmd.Flags().StringVar(&flagGender, "gender", "", "gender (Male, Female, Other)")
	cmd.Flags().StringVar(&flagCategory, "category", "", "social category (General, OBC, SC, ST, EWS)")
	cmd.Flags().BoolVar(&flagDisability, "disability", false, "person with disability")
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	cmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	cmd.Flags().StringVar(&lang, "lang", model.LangEnglish, "display language (en, hi)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the narration cache")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall request timeout")
}

func addLLMFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable narrative generation")
	cmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "narrative provider (openai, gemini, local)")
	cmd.Flags().StringVar(&llmModel, "llm-model", "", "model name (provider default when empty)")
}

// profileForm collects the profile flags into a validator form
func profileForm() profile.Form {
	return profile.Form{
		Age:        flagAge,
		Income:     flagIncome,
		Occupation: flagOccupation,
		State:      flagState,
		Gender:     flagGender,
		Category:   flagCategory,
		Disability: flagDisability,
	}
}

// buildConfig merges defaults, config file/env values, and command flags
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Language = lang
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose

	if v := viper.GetString("llm.provider"); v != "" && !llmEnabled {
		llmEnabled = true
		llmProvider = v
	}
	if v := viper.GetString("llm.model"); v != "" && llmModel == "" {
		llmModel = v
	}

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "gemini", "google":
			cfg.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
			}
		case "local":
			// Deterministic provider, nothing to configure
		}
	}

	return cfg, nil
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Catalog: %d schemes\n", p.Catalog().Len())
		if p.NarrationEnabled() {
			fmt.Fprintf(os.Stderr, "Narration: %s\n", p.ProviderName())
		}
		fmt.Fprintln(os.Stderr)
	}

	rec, err := p.Recommend(ctx, profileForm())
	if err != nil {
		return err
	}

	renderer := pipeline.NewRenderer(cfg.Language)
	if err := renderer.RenderText(os.Stdout, rec); err != nil {
		return err
	}

	if outJSON != "" {
		if err := renderer.RenderJSON(rec, outJSON); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(rec, outMD); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}

	return nil
}
