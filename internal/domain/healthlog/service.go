package healthlog

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sicklesense/api/internal/platform/blobstore"
)

// MediaAnalyzer grades evidence media. Implemented by Analyzer; faked in
// tests.
type MediaAnalyzer interface {
	AnalyzeHydration(ctx context.Context, media []byte, mimeType string) HydrationResult
	AnalyzeJaundice(ctx context.Context, media []byte, mimeType string) JaundiceResult
}

// Service runs the ingestion pipeline: archive evidence, analyze, gate,
// append, derive trend.
type Service struct {
	repo     Repository
	analyzer MediaAnalyzer
	media    blobstore.MediaStore
	logger   zerolog.Logger
}

func NewService(repo Repository, analyzer MediaAnalyzer, media blobstore.MediaStore, logger zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		analyzer: analyzer,
		media:    media,
		logger:   logger.With().Str("component", "healthlog").Logger(),
	}
}

// VerifyHydration runs a drinking video through analysis and, if the gate
// admits it, appends a verified hydration event and reports today's
// progress. Rejections return ErrNotVerified and store nothing.
func (s *Service) VerifyHydration(ctx context.Context, userID uuid.UUID, media []byte, mimeType string) (*HydrationOutcome, error) {
	s.archiveEvidence(ctx, userID, string(EventHydration), mimeType, media)

	result := s.analyzer.AnalyzeHydration(ctx, media, mimeType)

	value, note, err := AdmitHydration(result)
	if err != nil {
		s.logger.Info().
			Str("user_id", userID.String()).
			Str("explanation", result.Explanation).
			Msg("hydration claim rejected")
		return nil, err
	}

	event := &HealthEvent{
		UserID:    userID,
		EventType: EventHydration,
		Value:     value,
		Verified:  true,
		Note:      note,
	}
	if err := s.repo.Append(ctx, event); err != nil {
		return nil, fmt.Errorf("appending hydration event: %w", err)
	}

	count, err := s.repo.CountVerifiedToday(ctx, userID, EventHydration)
	if err != nil {
		return nil, fmt.Errorf("counting verified drinks: %w", err)
	}

	progress := Round1(HydrationProgress(count))
	return &HydrationOutcome{
		Verified:    true,
		MLAdded:     result.ML,
		DrinksToday: count,
		ProgressPct: progress,
		Message:     fmt.Sprintf("Verified! Progress: %.1f%%", progress),
	}, nil
}

// CheckJaundice runs a sclera photo through analysis, appends the resulting
// event unconditionally and compares it against the previous index for the
// rising-risk signal.
func (s *Service) CheckJaundice(ctx context.Context, userID uuid.UUID, media []byte, mimeType string) (*JaundiceOutcome, error) {
	s.archiveEvidence(ctx, userID, string(EventJaundice), mimeType, media)

	result := s.analyzer.AnalyzeJaundice(ctx, media, mimeType)
	value, note := AdmitJaundice(result)

	event := &HealthEvent{
		UserID:    userID,
		EventType: EventJaundice,
		Value:     value,
		Verified:  true,
		Note:      note,
	}
	if err := s.repo.Append(ctx, event); err != nil {
		return nil, fmt.Errorf("appending jaundice event: %w", err)
	}

	var prev *float64
	prevEvent, err := s.repo.Latest(ctx, userID, EventJaundice, 1)
	switch {
	case err == nil:
		prev = &prevEvent.Value
	case errors.Is(err, ErrNoEvent):
		// first record for this user, nothing to compare against
	default:
		return nil, fmt.Errorf("loading previous jaundice event: %w", err)
	}

	rising, alert := JaundiceRisk(prev, value)

	message := "Jaundice record updated."
	if alert {
		message = "Warning: jaundice level is rising. Please consult your care team."
	}

	return &JaundiceOutcome{
		YellowIndex: value,
		Status:      result.Status,
		Observation: result.Observation,
		RiskRising:  rising,
		Alert:       alert,
		Message:     message,
	}, nil
}

// ListEvents returns a page of a user's health log, newest first.
func (s *Service) ListEvents(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*HealthEvent, int, error) {
	return s.repo.ListByUser(ctx, userID, limit, offset)
}

// archiveEvidence keeps the raw media for clinical review. Archival failure
// never blocks ingestion.
func (s *Service) archiveEvidence(ctx context.Context, userID uuid.UUID, kind, mimeType string, media []byte) {
	if s.media == nil {
		return
	}
	_, err := s.media.Save(ctx, blobstore.MediaMetadata{
		UserID:      userID.String(),
		Kind:        kind,
		ContentType: mimeType,
	}, bytes.NewReader(media))
	if err != nil {
		s.logger.Warn().Err(err).
			Str("user_id", userID.String()).
			Str("kind", kind).
			Msg("evidence archive failed")
	}
}
