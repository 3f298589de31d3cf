package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/civicgrid/yojana/internal/pipeline"
	"github.com/civicgrid/yojana/internal/profile"
	"github.com/civicgrid/yojana/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchForm is one line of the batch input file.
type batchForm struct {
	Age        string `json:"age"`
	Income     string `json:"income"`
	Occupation string `json:"occupation,omitempty"`
	State      string `json:"state,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Category   string `json:"category,omitempty"`
	Disability bool   `json:"disability,omitempty"`
}

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Evaluate many profiles from a JSON-lines file in parallel",
	Long: `Batch reads one profile per line (JSON) and evaluates them concurrently,
writing one JSON report per profile to the output directory.

The engine is a pure function, so profiles never contend; narration calls,
if enabled, share one rate limiter per provider.

Example:
  yojana batch profiles.jsonl
  yojana batch profiles.jsonl --concurrency 8 --output-dir ./reports
  yojana batch profiles.jsonl --llm --llm-provider local`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./yojana-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	addOutputFlags(batchCmd)
	addLLMFlags(batchCmd)
}

// recommendJob evaluates one profile in the pool
type recommendJob struct {
	index    int
	form     profile.Form
	pipe     *pipeline.Pipeline
	renderer *pipeline.Renderer
	outDir   string
}

// recommendResult is one finished evaluation
type recommendResult struct {
	index   int
	path    string
	matches int
	err     error
}

func (r recommendResult) GetError() error { return r.err }

func (j recommendJob) Execute(ctx context.Context) worker.Result {
	rec, err := j.pipe.Recommend(ctx, j.form)
	if err != nil {
		return recommendResult{index: j.index, err: fmt.Errorf("profile %d: %w", j.index, err)}
	}

	path := filepath.Join(j.outDir, fmt.Sprintf("profile-%03d.json", j.index))
	if err := j.renderer.RenderJSON(rec, path); err != nil {
		return recommendResult{index: j.index, err: fmt.Errorf("profile %d: %w", j.index, err)}
	}

	return recommendResult{index: j.index, path: path, matches: len(rec.Results)}
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	forms, err := readBatchFile(file)
	if err != nil {
		return err
	}
	if len(forms) == 0 {
		return fmt.Errorf("no profiles found in %s", file)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Evaluating %d profiles with %d workers\n", len(forms), concurrency)

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	renderer := pipeline.NewRenderer(cfg.Language)
	pool := worker.NewPoolContext(ctx, concurrency)
	pool.Start()

	for i, form := range forms {
		pool.Submit(recommendJob{
			index:    i + 1,
			form:     form,
			pipe:     p,
			renderer: renderer,
			outDir:   outputDir,
		})
	}

	results := pool.Wait()

	succeeded, failed := 0, 0
	for _, res := range results {
		if err := res.GetError(); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %v\n", err)
			continue
		}
		succeeded++
		if r, ok := res.(recommendResult); ok && verbose {
			fmt.Fprintf(os.Stderr, "✓ profile %d: %d match(es) → %s\n", r.index, r.matches, r.path)
		}
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d succeeded, %d failed, reports in %s\n", succeeded, failed, outputDir)

	if failed > 0 {
		return fmt.Errorf("%d profile(s) failed", failed)
	}
	return nil
}

// readBatchFile parses one JSON profile per line, skipping blank lines
func readBatchFile(path string) ([]profile.Form, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	defer f.Close()

	var forms []profile.Form
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if len(text) == 0 {
			continue
		}
		var bf batchForm
		if err := json.Unmarshal([]byte(text), &bf); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		forms = append(forms, profile.Form{
			Age:        bf.Age,
			Income:     bf.Income,
			Occupation: bf.Occupation,
			State:      bf.State,
			Gender:     bf.Gender,
			Category:   bf.Category,
			Disability: bf.Disability,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	return forms, nil
}
