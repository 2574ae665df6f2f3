package healthlog

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sicklesense/api/internal/platform/genai"
)

type stubGenerator struct {
	reply   string
	err     error
	lastReq genai.Request
}

func (s *stubGenerator) GenerateContent(_ context.Context, req genai.Request) (string, error) {
	s.lastReq = req
	return s.reply, s.err
}

func newTestAnalyzer(gen ContentGenerator) *Analyzer {
	return NewAnalyzer(gen, zerolog.Nop())
}

func TestAnalyzeHydrationParsesReply(t *testing.T) {
	gen := &stubGenerator{reply: `{"is_drinking": true, "ml": 300, "explanation": "swallow visible"}`}
	res := newTestAnalyzer(gen).AnalyzeHydration(context.Background(), []byte("clip"), "video/mp4")

	if !res.IsDrinking || res.ML != 300 || res.Explanation != "swallow visible" {
		t.Errorf("result = %+v", res)
	}
	if gen.lastReq.Media == nil || gen.lastReq.Media.MIMEType != "video/mp4" {
		t.Errorf("media part = %+v", gen.lastReq.Media)
	}
	if gen.lastReq.SystemInstruction == "" {
		t.Error("expected a system instruction")
	}
}

func TestAnalyzeHydrationFencedReply(t *testing.T) {
	gen := &stubGenerator{reply: "```json\n{\"is_drinking\": true, \"ml\": 150, \"explanation\": \"ok\"}\n```"}
	res := newTestAnalyzer(gen).AnalyzeHydration(context.Background(), []byte("clip"), "video/mp4")

	if !res.IsDrinking || res.ML != 150 {
		t.Errorf("result = %+v", res)
	}
}

func TestAnalyzeHydrationFailClosed(t *testing.T) {
	tests := []struct {
		name string
		gen  *stubGenerator
	}{
		{"transport error", &stubGenerator{err: errors.New("connection refused")}},
		{"non-JSON reply", &stubGenerator{reply: "I cannot analyze this video."}},
		{"missing is_drinking", &stubGenerator{reply: `{"ml": 100, "explanation": "x"}`}},
		{"missing ml", &stubGenerator{reply: `{"is_drinking": true, "explanation": "x"}`}},
		{"missing explanation", &stubGenerator{reply: `{"is_drinking": true, "ml": 100}`}},
		{"empty reply", &stubGenerator{reply: ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newTestAnalyzer(tt.gen).AnalyzeHydration(context.Background(), []byte("clip"), "video/mp4")
			if res != hydrationFallback {
				t.Errorf("result = %+v, want fail-closed default", res)
			}
		})
	}
}

func TestAnalyzeJaundiceParsesReply(t *testing.T) {
	gen := &stubGenerator{reply: `{"yellow_index": 3.4, "status": "Mild yellowing", "observation": "faint amber tint"}`}
	res := newTestAnalyzer(gen).AnalyzeJaundice(context.Background(), []byte("photo"), "image/jpeg")

	if res.YellowIndex != 3.4 || res.Status != "Mild yellowing" {
		t.Errorf("result = %+v", res)
	}
}

func TestAnalyzeJaundiceFailClosed(t *testing.T) {
	tests := []struct {
		name string
		gen  *stubGenerator
	}{
		{"transport error", &stubGenerator{err: errors.New("timeout")}},
		{"non-JSON reply", &stubGenerator{reply: "the sclera looks fine"}},
		{"missing yellow_index", &stubGenerator{reply: `{"status": "ok", "observation": "x"}`}},
		{"missing status", &stubGenerator{reply: `{"yellow_index": 1.0, "observation": "x"}`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newTestAnalyzer(tt.gen).AnalyzeJaundice(context.Background(), []byte("photo"), "image/jpeg")
			if res != jaundiceFallback {
				t.Errorf("result = %+v, want fail-closed default", res)
			}
		})
	}
}
