// Command layout-demo wires the layout simulation engine to a fixed resume
// fixture and prints what the engine decided: verified line counts,
// verdicts, and the page fill recommendation. It is a composition
// root, not a server: one run, one report, then exit.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/PsychoPunkSage/templar/internal/layout/fontmetrics"
	"github.com/PsychoPunkSage/templar/internal/layout/pagefill"
	"github.com/PsychoPunkSage/templar/internal/layout/simulator"
	"github.com/PsychoPunkSage/templar/internal/llmgateway"
	"github.com/PsychoPunkSage/templar/internal/platform/config"
	"github.com/PsychoPunkSage/templar/internal/platform/worker"
	"github.com/PsychoPunkSage/templar/internal/resume"
)

func main() {
	fontFlag := flag.String("font", "inter", "font family: inter, eb_garamond, lato, oswald, computer_modern")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.AppEnv, cfg.LogLevel).With().
		Str("run_id", uuid.New().String()).
		Logger()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	gw := buildGateway(cfg, logger)

	pool := worker.NewBlockingPool(cfg.BlockingPoolSize).WithLogger(logger)

	drafts, jd := fixture()

	tbl := fontmetrics.Get(fontmetrics.FontFamily(*fontFlag))
	pageCfg := fontmetrics.DefaultPageConfig(fontmetrics.FontFamily(*fontFlag))

	result, err := simulator.Run(ctx, pool, gw, drafts, jd, tbl, pageCfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("simulation failed")
		os.Exit(1)
	}

	for _, b := range result.Bullets {
		logger.Info().
			Str("section", b.Source.Section).
			Int("lines", b.LineCount).
			Str("verdict", b.Verdict.String()).
			Bool("was_adjusted", b.WasAdjusted).
			Bool("flagged_for_review", b.FlaggedForReview).
			Str("text", b.Text).
			Msg("bullet simulated")
	}

	logger.Info().
		Int("total_passes", result.TotalPasses).
		Int("llm_calls_made", result.LLMCallsMade).
		Int("residual_violations", result.ResidualViolations).
		Msg("simulation loop finished")

	analysis := pagefill.Analyze(pagefill.TotalLinesUsed(result.Bullets), pageCfg.UsableHeightLines)
	rec := pagefill.Recommend(analysis, result.Bullets, jd)

	logger.Info().
		Int("used_lines", analysis.TotalLinesUsed).
		Int("usable_lines", analysis.LinesAvailable).
		Str("page_verdict", analysis.Verdict.String()).
		Str("recommended_action", rec.Action.String()).
		Int("recommended_bullet_index", rec.BulletIndex).
		Msg("page fill analysis")

	for _, status := range gw.Statuses() {
		logger.Debug().
			Str("provider", status.Name).
			Int("priority", status.Priority).
			Bool("available", status.Available).
			Bool("circuit_open", status.CircuitOpen).
			Msg("provider status")
	}
}

func newLogger(appEnv, level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}

	if appEnv == "local" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
			Level(parsed).
			With().Timestamp().Logger()
	}

	return zerolog.New(os.Stdout).Level(parsed).With().Timestamp().Logger()
}

func buildGateway(cfg config.Config, logger zerolog.Logger) *llmgateway.Gateway {
	var providers []llmgateway.Provider

	if cfg.AnthropicAPIKey != "" {
		providers = append(providers, llmgateway.NewAnthropicProvider(cfg.AnthropicAPIKey, cfg.ProviderRPS))
	}

	if cfg.OpenAIAPIKey != "" {
		providers = append(providers, llmgateway.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.ProviderRPS))
	}

	if len(providers) == 0 {
		logger.Warn().Msg("no llm provider configured, falling back to a deterministic mock")
		providers = append(providers, &llmgateway.MockProvider{Respond: mockRespond})
	}

	return llmgateway.New(logger, providers...)
}

// mockRespond answers every remediation prompt with the same fixed
// sentence, so the demo produces plausible output with no API key
// configured. It is not a substitute for a real provider: it does not read
// the prompt at all, only demonstrates that the loop converges given any
// responsive provider.
func mockRespond(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return `{"text": "Delivered a streaming ingestion pipeline processing nine billion events per day"}`, nil
}

func fixture() ([]resume.DraftBullet, resume.ParsedJD) {
	jd := resume.ParsedJD{
		DetectedTone: resume.ToneProductOriented,
		KeywordInventory: []resume.KeywordEntry{
			{Keyword: "Kubernetes", Frequency: 4, PositionWeight: 1.0, WeightedScore: 4.0},
			{Keyword: "Go", Frequency: 3, PositionWeight: 0.8, WeightedScore: 2.4},
			{Keyword: "observability", Frequency: 2, PositionWeight: 0.6, WeightedScore: 1.2},
			{Keyword: "stakeholder management", Frequency: 1, PositionWeight: 0.3, WeightedScore: 0.3},
		},
	}

	drafts := []resume.DraftBullet{
		{
			Text:           "Led the team",
			SourceEntryID:  uuid.New(),
			Section:        "experience",
			LineEstimate:   1,
			JDKeywordsUsed: nil,
		},
		{
			Text: "Architected and delivered a multi region payments platform migration " +
				"reducing checkout latency by 42 percent while coordinating across six " +
				"engineering teams and three external vendor integrations over eighteen months",
			SourceEntryID:  uuid.New(),
			Section:        "experience",
			LineEstimate:   2,
			JDKeywordsUsed: []string{"Kubernetes"},
		},
		{
			Text:           "Improved observability by adding structured logging and dashboards for the Go services",
			SourceEntryID:  uuid.New(),
			Section:        "experience",
			LineEstimate:   1,
			JDKeywordsUsed: []string{"Go", "observability"},
		},
	}

	return drafts, jd
}
