package domain

import (
	"testing"
	"time"
)

func TestProgressUpdate_Normalize_Clamps(t *testing.T) {
	high := 140.0
	u := ProgressUpdate{Progress: &high}
	u.Normalize()
	if *u.Progress != 100 {
		t.Fatalf("expected clamp to 100, got %v", *u.Progress)
	}

	low := -5.0
	u = ProgressUpdate{Progress: &low}
	u.Normalize()
	if *u.Progress != 0 {
		t.Fatalf("expected clamp to 0, got %v", *u.Progress)
	}
}

func TestProgressUpdate_Normalize_CompletedImpliesFull(t *testing.T) {
	done := true
	u := ProgressUpdate{Completed: &done}
	u.Normalize()
	if u.Progress == nil || *u.Progress != 100 {
		t.Fatalf("expected completed without progress to imply 100, got %+v", u.Progress)
	}
}

func TestProgressUpdate_Normalize_KeepsExplicitProgress(t *testing.T) {
	done := true
	partial := 40.0
	u := ProgressUpdate{Completed: &done, Progress: &partial}
	u.Normalize()
	if *u.Progress != 40 {
		t.Fatalf("explicit progress must survive normalization, got %v", *u.Progress)
	}
}

func TestSummarizeProgress(t *testing.T) {
	now := time.Now()
	records := []ProgressRecord{
		{Completed: true, Progress: 100, LastAccessed: now},
		{Completed: false, Progress: 50, LastAccessed: now.Add(-time.Hour)},
	}

	s := SummarizeProgress(records)
	if s.TutorialsStarted != 2 {
		t.Fatalf("expected 2 started, got %d", s.TutorialsStarted)
	}
	if s.TutorialsCompleted != 1 {
		t.Fatalf("expected 1 completed, got %d", s.TutorialsCompleted)
	}
	if s.AverageProgress != 75 {
		t.Fatalf("expected average 75, got %v", s.AverageProgress)
	}
	if !s.LastAccessed.Equal(now) {
		t.Fatalf("expected last accessed %v, got %v", now, s.LastAccessed)
	}
}

func TestSummarizeProgress_Empty(t *testing.T) {
	s := SummarizeProgress(nil)
	if s.TutorialsStarted != 0 || s.AverageProgress != 0 {
		t.Fatalf("expected zero summary, got %+v", s)
	}
}
