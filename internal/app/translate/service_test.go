package translate

import (
	"context"
	"errors"
	"sync"
	"testing"

	"zazachat/internal/pkg/errs"
)

// fakeTranslator counts calls and can be switched between failure and success.
type fakeTranslator struct {
	mu     sync.Mutex
	calls  int
	fail   bool
	result string

	// block, when non-nil, holds the call open until closed.
	block chan struct{}

	// started signals that a blocked call has begun.
	started chan struct{}
}

func (f *fakeTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	f.mu.Lock()
	f.calls++
	block := f.block
	started := f.started
	fail := f.fail
	result := f.result
	f.mu.Unlock()

	if started != nil {
		close(started)
	}
	if block != nil {
		<-block
	}
	if fail {
		return "", errors.New("upstream unavailable")
	}
	return result, nil
}

func (f *fakeTranslator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestTranslateCachesPerMessage(t *testing.T) {
	translator := &fakeTranslator{result: "Der Film beginnt!"}
	service := NewService(translator)

	first, err := service.Translate(context.Background(), "m1", "Film başlıyor!", "Deutsch")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if first != "Der Film beginnt!" {
		t.Fatalf("unexpected translation %q", first)
	}

	second, err := service.Translate(context.Background(), "m1", "Film başlıyor!", "Deutsch")
	if err != nil {
		t.Fatalf("cached translate: %v", err)
	}
	if second != first {
		t.Fatalf("expected cached result, got %q", second)
	}
	if translator.callCount() != 1 {
		t.Fatalf("expected one upstream call, got %d", translator.callCount())
	}

	if cached, ok := service.Cached("m1"); !ok || cached != first {
		t.Fatalf("expected cache entry for m1, got %q/%v", cached, ok)
	}
}

func TestTranslateFailureAllowsRetry(t *testing.T) {
	translator := &fakeTranslator{fail: true}
	service := NewService(translator)

	_, err := service.Translate(context.Background(), "m1", "Geliyorum", "English")
	if err == nil || err.Code != errs.ErrTranslationFailed {
		t.Fatalf("expected translation failure, got %v", err)
	}
	if service.IsPending("m1") {
		t.Fatal("expected pending marker cleared after failure")
	}
	if _, ok := service.Cached("m1"); ok {
		t.Fatal("expected no cache entry after failure")
	}

	translator.mu.Lock()
	translator.fail = false
	translator.result = "I am coming"
	translator.mu.Unlock()

	translated, retryErr := service.Translate(context.Background(), "m1", "Geliyorum", "English")
	if retryErr != nil {
		t.Fatalf("retry: %v", retryErr)
	}
	if translated != "I am coming" {
		t.Fatalf("unexpected retry result %q", translated)
	}
	if translator.callCount() != 2 {
		t.Fatalf("expected two upstream calls, got %d", translator.callCount())
	}
}

func TestTranslateRejectsDuplicateInFlight(t *testing.T) {
	translator := &fakeTranslator{
		result:  "Welcome",
		block:   make(chan struct{}),
		started: make(chan struct{}),
	}
	service := NewService(translator)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := service.Translate(context.Background(), "m1", "Hoş Geldiniz", "English"); err != nil {
			t.Errorf("blocked translate: %v", err)
		}
	}()

	<-translator.started
	if !service.IsPending("m1") {
		t.Fatal("expected m1 marked pending while in flight")
	}

	_, err := service.Translate(context.Background(), "m1", "Hoş Geldiniz", "English")
	if err == nil || err.Code != errs.ErrTranslationPending {
		t.Fatalf("expected pending rejection, got %v", err)
	}

	close(translator.block)
	<-done

	if translator.callCount() != 1 {
		t.Fatalf("expected one upstream call, got %d", translator.callCount())
	}
	if service.IsPending("m1") {
		t.Fatal("expected pending marker cleared after completion")
	}
}

func TestTranslateDistinctMessagesCachedSeparately(t *testing.T) {
	translator := &fakeTranslator{result: "same"}
	service := NewService(translator)

	if _, err := service.Translate(context.Background(), "m1", "bir", "English"); err != nil {
		t.Fatalf("m1: %v", err)
	}
	if _, err := service.Translate(context.Background(), "m2", "bir", "English"); err != nil {
		t.Fatalf("m2: %v", err)
	}

	// The cache keys on message id, not text, so the same text in two
	// messages costs two upstream calls.
	if translator.callCount() != 2 {
		t.Fatalf("expected two upstream calls, got %d", translator.callCount())
	}
}
