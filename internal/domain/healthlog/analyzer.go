package healthlog

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sicklesense/api/internal/platform/genai"
)

// Rubrics sent to the multimodal reasoning service. The hydration rubric is
// deliberately adversarial: the model must default to rejection unless the
// footage proves a real swallow.
const (
	hydrationSystemInstruction = "You are a strict fraud-detection AI for medical compliance. " +
		"Your default answer is 'is_drinking: false' unless you see undeniable proof of swallowing."

	hydrationRubric = `Analyze this video for Sickle Cell hydration compliance.

CRITICAL CHECKLIST:
1. Container Tilt: Is the bottle/cup tilted towards the mouth?
2. Mouth Contact: Is the container actually touching the lips?
3. Water Test: Is there water in the container?
4. The "Truth" Test: Do you see the throat move (swallow) or the water level drop?

If the person is just holding the bottle to their face without drinking, or if the bottle is closed/empty, you MUST return is_drinking: false.

Return ONLY JSON:
{
    "is_drinking": bool,
    "ml": int,
    "explanation": "State exactly what frames or movements proved the drink happened, or why it looks fake."
}`

	jaundiceSystemInstruction = "You are a specialized ophthalmology AI. " +
		"Your goal is to detect jaundice (icterus) in the sclera of patients with Sickle Cell Disease."

	jaundiceRubric = `TASK: Analyze the white part (sclera) of the eye in this image.

BASELINE: A healthy sclera is clear white (Index 0.0).
COMPARISON:
- 0.0 - 2.0: Normal/Healthy.
- 2.1 - 5.0: Mild yellowing (Observation required).
- 5.1 - 8.0: Significant yellowing (Possible impending crisis).
- 8.1 - 10.0: Severe jaundice (Immediate clinical attention).

Strictly evaluate the intensity of yellow/amber hues compared to a pure white baseline. Ignore redness/veins.

Return ONLY JSON:
{
    "yellow_index": float,
    "status": "string",
    "observation": "detailed reason for the score"
}`
)

// Fail-closed defaults. An unverifiable claim must never become a positive
// health event, so any transport or parse failure degrades to these.
var (
	hydrationFallback = HydrationResult{IsDrinking: false, ML: 0, Explanation: "Verification failed."}
	jaundiceFallback  = JaundiceResult{YellowIndex: 0.0, Status: "Error", Observation: "Analysis failed."}
)

// ContentGenerator is the slice of the generation client the analyzer needs.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req genai.Request) (string, error)
}

// Analyzer grades media evidence by sending it to the reasoning service with
// an intent-specific rubric. It never returns an error: every failure mode
// collapses into the fail-closed default for the intent.
type Analyzer struct {
	gen    ContentGenerator
	logger zerolog.Logger
}

func NewAnalyzer(gen ContentGenerator, logger zerolog.Logger) *Analyzer {
	return &Analyzer{
		gen:    gen,
		logger: logger.With().Str("component", "analyzer").Logger(),
	}
}

// hydrationReply mirrors HydrationResult with pointer fields so a reply
// missing a required field is detected rather than zero-valued.
type hydrationReply struct {
	IsDrinking  *bool   `json:"is_drinking"`
	ML          *int    `json:"ml"`
	Explanation *string `json:"explanation"`
}

type jaundiceReply struct {
	YellowIndex *float64 `json:"yellow_index"`
	Status      *string  `json:"status"`
	Observation *string  `json:"observation"`
}

// AnalyzeHydration grades a drinking video against the hydration rubric.
func (a *Analyzer) AnalyzeHydration(ctx context.Context, media []byte, mimeType string) HydrationResult {
	reply, err := a.gen.GenerateContent(ctx, genai.Request{
		SystemInstruction: hydrationSystemInstruction,
		Prompt:            hydrationRubric,
		Media:             &genai.MediaPart{MIMEType: mimeType, Data: media},
	})
	if err != nil {
		a.logger.Warn().Err(err).Msg("hydration analysis call failed")
		return hydrationFallback
	}
	a.logger.Debug().Str("reply", reply).Msg("hydration analysis reply")

	var parsed hydrationReply
	if err := genai.ExtractJSON(reply, &parsed); err != nil {
		a.logger.Warn().Err(err).Msg("hydration reply not parseable")
		return hydrationFallback
	}
	if parsed.IsDrinking == nil || parsed.ML == nil || parsed.Explanation == nil {
		a.logger.Warn().Msg("hydration reply missing required fields")
		return hydrationFallback
	}

	return HydrationResult{
		IsDrinking:  *parsed.IsDrinking,
		ML:          *parsed.ML,
		Explanation: *parsed.Explanation,
	}
}

// AnalyzeJaundice grades a sclera photo against the jaundice rubric.
func (a *Analyzer) AnalyzeJaundice(ctx context.Context, media []byte, mimeType string) JaundiceResult {
	reply, err := a.gen.GenerateContent(ctx, genai.Request{
		SystemInstruction: jaundiceSystemInstruction,
		Prompt:            jaundiceRubric,
		Media:             &genai.MediaPart{MIMEType: mimeType, Data: media},
	})
	if err != nil {
		a.logger.Warn().Err(err).Msg("jaundice analysis call failed")
		return jaundiceFallback
	}
	a.logger.Debug().Str("reply", reply).Msg("jaundice analysis reply")

	var parsed jaundiceReply
	if err := genai.ExtractJSON(reply, &parsed); err != nil {
		a.logger.Warn().Err(err).Msg("jaundice reply not parseable")
		return jaundiceFallback
	}
	if parsed.YellowIndex == nil || parsed.Status == nil || parsed.Observation == nil {
		a.logger.Warn().Msg("jaundice reply missing required fields")
		return jaundiceFallback
	}

	return JaundiceResult{
		YellowIndex: *parsed.YellowIndex,
		Status:      *parsed.Status,
		Observation: *parsed.Observation,
	}
}
