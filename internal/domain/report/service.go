package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sicklesense/api/internal/domain/healthlog"
	"github.com/sicklesense/api/internal/platform/genai"
)

// ErrInsufficientData is returned when a user lacks the events a summary
// needs: at least one hydration and one jaundice record.
var ErrInsufficientData = errors.New("not enough recorded data to generate a summary")

// NarrativeReport pairs the generated prose with the structured metrics it
// was derived from, so callers can render both views.
type NarrativeReport struct {
	Narrative       string  `json:"narrative"`
	Metrics         Metrics `json:"metrics"`
	CurrentWaterML  float64 `json:"current_water_ml"`
	CurrentJaundice float64 `json:"current_jaundice_index"`
}

// ContentGenerator is the slice of the generation client the summary
// generator needs.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req genai.Request) (string, error)
}

// Service builds clinical summaries from the most recent event of each
// relevant type.
type Service struct {
	events healthlog.Repository
	gen    ContentGenerator
	logger zerolog.Logger
}

func NewService(events healthlog.Repository, gen ContentGenerator, logger zerolog.Logger) *Service {
	return &Service{
		events: events,
		gen:    gen,
		logger: logger.With().Str("component", "report").Logger(),
	}
}

const narrativeSystemInstruction = "You are a clinical documentation assistant for a Sickle Cell Disease care team. " +
	"Write concise, factual summaries for clinicians. Do not invent measurements."

// Summarize reads the user's most recent hydration and jaundice events and
// produces a narrative report. The narrative prose is treated as opaque; if
// the generation call fails, a deterministic local narrative carrying the
// same figures is used instead.
func (s *Service) Summarize(ctx context.Context, userID uuid.UUID) (*NarrativeReport, error) {
	hydration, err := s.events.Latest(ctx, userID, healthlog.EventHydration, 0)
	if errors.Is(err, healthlog.ErrNoEvent) {
		return nil, ErrInsufficientData
	}
	if err != nil {
		return nil, fmt.Errorf("loading hydration event: %w", err)
	}

	jaundice, err := s.events.Latest(ctx, userID, healthlog.EventJaundice, 0)
	if errors.Is(err, healthlog.ErrNoEvent) {
		return nil, ErrInsufficientData
	}
	if err != nil {
		return nil, fmt.Errorf("loading jaundice event: %w", err)
	}

	metrics := Metrics{
		WaterDropPct:     WaterDropPct(hydration.Value),
		BilirubinRisePct: BilirubinRisePct(jaundice.Value),
	}

	narrative := s.generateNarrative(ctx, hydration.Value, jaundice.Value, metrics)

	return &NarrativeReport{
		Narrative:       narrative,
		Metrics:         metrics,
		CurrentWaterML:  hydration.Value,
		CurrentJaundice: jaundice.Value,
	}, nil
}

func (s *Service) generateNarrative(ctx context.Context, waterML, yellowIndex float64, m Metrics) string {
	prompt := fmt.Sprintf(`Write a clinical summary for a Sickle Cell Disease patient based on these measurements:

- Latest verified water intake: %.0f ml against a daily target of %.0f ml, a hydration drop of %.1f%%.
- Latest scleral yellow index: %.1f against a healthy baseline of %.1f, a bilirubin rise of %.1f%%.

The summary must:
1. State the hydration drop percentage of %.1f%% verbatim.
2. State the bilirubin rise percentage of %.1f%% verbatim.
3. Explain the elevated Vaso-Occlusive Crisis risk arising from this combination.
4. Close with an explicit advisory to seek medical attention.`,
		waterML, TargetWaterML, m.WaterDropPct,
		yellowIndex, BaselineJaundice, m.BilirubinRisePct,
		m.WaterDropPct, m.BilirubinRisePct)

	narrative, err := s.gen.GenerateContent(ctx, genai.Request{
		SystemInstruction: narrativeSystemInstruction,
		Prompt:            prompt,
	})
	if err != nil || narrative == "" {
		s.logger.Warn().Err(err).Msg("narrative generation failed, using local fallback")
		return fallbackNarrative(waterML, yellowIndex, m)
	}
	return narrative
}

// fallbackNarrative renders a deterministic summary when the generation
// service is unavailable, carrying the same figures the prompt contract
// requires.
func fallbackNarrative(waterML, yellowIndex float64, m Metrics) string {
	return fmt.Sprintf(
		"Hydration is %.1f%% below the %.0f ml daily target (latest verified intake %.0f ml). "+
			"The scleral yellow index is %.1f, a bilirubin rise of %.1f%% above baseline. "+
			"Dehydration combined with rising bilirubin elevates the risk of a Vaso-Occlusive Crisis. "+
			"Please seek medical attention.",
		m.WaterDropPct, TargetWaterML, waterML, yellowIndex, m.BilirubinRisePct)
}
