package review

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/reviewloop/gemini-pr-review/internal/comment"
	"github.com/reviewloop/gemini-pr-review/internal/errors"
	"github.com/reviewloop/gemini-pr-review/internal/gemini"
	"github.com/reviewloop/gemini-pr-review/internal/prompt"
)

// fakeModel implements the gemini.API interface for testing. It records every
// conversation and message, and replies with canned strings in call order.
type fakeModel struct {
	replies []string
	calls   []modelCall
	failAt  int // call index that should fail, -1 for none
	err     error
}

type modelCall struct {
	seed    []gemini.Turn
	message string
}

func newFakeModel(replies ...string) *fakeModel {
	return &fakeModel{replies: replies, failAt: -1}
}

func (m *fakeModel) StartConversation(history []gemini.Turn) gemini.Conversation {
	return &fakeConversation{model: m, seed: history}
}

func (m *fakeModel) Close() error { return nil }

type fakeConversation struct {
	model *fakeModel
	seed  []gemini.Turn
}

func (c *fakeConversation) SendMessage(_ context.Context, text string) (string, error) {
	m := c.model
	index := len(m.calls)
	m.calls = append(m.calls, modelCall{seed: c.seed, message: text})

	if m.failAt == index {
		return "", m.err
	}
	if index >= len(m.replies) {
		return "", fmt.Errorf("unexpected call %d", index)
	}
	return m.replies[index], nil
}

func reviewSeed(t *testing.T) []gemini.Turn {
	t.Helper()
	return []gemini.Turn{
		{Role: gemini.RoleUser, Text: prompt.Review("")},
		{Role: gemini.RoleModel, Text: prompt.Ack},
	}
}

func assertSeeded(t *testing.T, call modelCall) {
	t.Helper()
	want := reviewSeed(t)
	if len(call.seed) != len(want) {
		t.Fatalf("conversation seeded with %d turns, want %d", len(call.seed), len(want))
	}
	for i := range want {
		if call.seed[i] != want[i] {
			t.Errorf("seed turn %d = %+v, want %+v", i, call.seed[i], want[i])
		}
	}
}

func TestRunSingleChunk(t *testing.T) {
	model := newFakeModel("only review")
	p, err := New(model, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	diff := strings.Repeat("x", 100)
	result, err := p.Run(context.Background(), diff)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(model.calls) != 1 {
		t.Fatalf("model received %d calls, want 1 (no summarization)", len(model.calls))
	}
	assertSeeded(t, model.calls[0])
	if model.calls[0].message != diff {
		t.Errorf("chunk call message = %q, want the diff", model.calls[0].message)
	}

	if len(result.ChunkReviews) != 1 || result.ChunkReviews[0] != "only review" {
		t.Errorf("ChunkReviews = %v", result.ChunkReviews)
	}
	if result.Summary != "only review" {
		t.Errorf("Summary = %q, want the sole chunk review", result.Summary)
	}

	if body := comment.Format(result.Summary, result.ChunkReviews); body != "only review" {
		t.Errorf("formatted comment = %q, want the reply unchanged", body)
	}
}

func TestRunMultipleChunks(t *testing.T) {
	model := newFakeModel("first review", "second review", "summary")
	p, err := NewWithOptions(model, WithChunkSize(3500))
	if err != nil {
		t.Fatalf("NewWithOptions() error = %v", err)
	}

	diff := strings.Repeat("A", 7000)
	result, err := p.Run(context.Background(), diff)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(model.calls) != 3 {
		t.Fatalf("model received %d calls, want 2 chunk calls + 1 summarization", len(model.calls))
	}

	for i := 0; i < 2; i++ {
		assertSeeded(t, model.calls[i])
		if len(model.calls[i].message) != 3500 {
			t.Errorf("chunk %d message length = %d, want 3500", i, len(model.calls[i].message))
		}
	}

	summarization := model.calls[2]
	if len(summarization.seed) != 0 {
		t.Errorf("summarization conversation seeded with %d turns, want none", len(summarization.seed))
	}
	wantMessage := prompt.Summarize() + "\n\nfirst review\nsecond review"
	if summarization.message != wantMessage {
		t.Errorf("summarization message = %q, want %q", summarization.message, wantMessage)
	}

	if len(result.ChunkReviews) != 2 ||
		result.ChunkReviews[0] != "first review" ||
		result.ChunkReviews[1] != "second review" {
		t.Errorf("ChunkReviews = %v, want chunk-order reviews", result.ChunkReviews)
	}
	if result.Summary != "summary" {
		t.Errorf("Summary = %q, want %q", result.Summary, "summary")
	}

	body := comment.Format(result.Summary, result.ChunkReviews)
	for _, want := range []string{"summary", "first review", "second review"} {
		if !strings.Contains(body, want) {
			t.Errorf("formatted comment missing %q", want)
		}
	}
}

func TestRunPreservesChunkOrder(t *testing.T) {
	model := newFakeModel("r0", "r1", "r2", "summary")
	p, err := NewWithOptions(model, WithChunkSize(2))
	if err != nil {
		t.Fatalf("NewWithOptions() error = %v", err)
	}

	result, err := p.Run(context.Background(), "aabbcc")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{"r0", "r1", "r2"}
	for i, r := range want {
		if result.ChunkReviews[i] != r {
			t.Errorf("ChunkReviews[%d] = %q, want %q", i, result.ChunkReviews[i], r)
		}
	}
	if !strings.HasSuffix(model.calls[3].message, "r0\nr1\nr2") {
		t.Errorf("summarization input out of order: %q", model.calls[3].message)
	}
}

// An empty input still issues exactly one summarization call carrying the
// fixed no-changes instruction, and no per-chunk calls.
func TestRunEmptyInput(t *testing.T) {
	model := newFakeModel("nothing to report")
	p, err := New(model, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	result, err := p.Run(context.Background(), "")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(model.calls) != 1 {
		t.Fatalf("model received %d calls, want exactly 1", len(model.calls))
	}
	call := model.calls[0]
	if len(call.seed) != 0 {
		t.Errorf("no-changes conversation seeded with %d turns, want none", len(call.seed))
	}
	if !strings.HasPrefix(call.message, prompt.NoChanges) {
		t.Errorf("no-changes message = %q, want prefix %q", call.message, prompt.NoChanges)
	}

	if len(result.ChunkReviews) != 0 {
		t.Errorf("ChunkReviews = %v, want empty", result.ChunkReviews)
	}
	if result.Summary != "nothing to report" {
		t.Errorf("Summary = %q", result.Summary)
	}
}

func TestRunChunkFailureAbortsRun(t *testing.T) {
	model := newFakeModel("first review")
	model.failAt = 1
	model.err = stderrors.New("service unavailable")

	p, err := NewWithOptions(model, WithChunkSize(3))
	if err != nil {
		t.Fatalf("NewWithOptions() error = %v", err)
	}

	result, err := p.Run(context.Background(), "aaabbb")
	if result != nil {
		t.Error("Run() returned a partial result on failure")
	}

	var rerr *errors.ReviewError
	if !stderrors.As(err, &rerr) {
		t.Fatalf("Run() error = %T, want *ReviewError", err)
	}
	if rerr.Stage != "chunk review" || rerr.Chunk != 1 {
		t.Errorf("ReviewError stage = %q chunk = %d, want chunk review / 1", rerr.Stage, rerr.Chunk)
	}
	if !stderrors.Is(err, model.err) {
		t.Error("Run() error should wrap the model error")
	}

	if len(model.calls) != 2 {
		t.Errorf("model received %d calls after failure, want 2", len(model.calls))
	}
}

func TestRunSummarizationFailure(t *testing.T) {
	model := newFakeModel("first review", "second review")
	model.failAt = 2
	model.err = stderrors.New("timeout")

	p, err := NewWithOptions(model, WithChunkSize(3))
	if err != nil {
		t.Fatalf("NewWithOptions() error = %v", err)
	}

	_, err = p.Run(context.Background(), "aaabbb")
	var rerr *errors.ReviewError
	if !stderrors.As(err, &rerr) {
		t.Fatalf("Run() error = %T, want *ReviewError", err)
	}
	if rerr.Stage != "summarization" || rerr.Chunk != -1 {
		t.Errorf("ReviewError stage = %q chunk = %d, want summarization / -1", rerr.Stage, rerr.Chunk)
	}
}

func TestNewRejectsInvalidChunkSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := New(newFakeModel(), &Config{ChunkSize: size})
		if !stderrors.Is(err, errors.ErrChunkSize) {
			t.Errorf("New(ChunkSize=%d) error = %v, want ErrChunkSize", size, err)
		}
	}
}
