package scheduler

import (
	"context"
	"testing"

	"dominant_assurance/internal/usecase"
)

type sweepStub struct {
	runs [][]string
}

func (s *sweepStub) RefundSweep(context.Context, string) (usecase.RefundSweepResult, error) {
	return usecase.RefundSweepResult{}, nil
}

func (s *sweepStub) BonusSweep(context.Context, string) (usecase.BonusSweepResult, error) {
	return usecase.BonusSweepResult{}, nil
}

func (s *sweepStub) RunAll(_ context.Context, projectIDs []string) {
	s.runs = append(s.runs, projectIDs)
}

func TestSweepScheduler_RunSweeps(t *testing.T) {
	stub := &sweepStub{}
	s := NewSweepScheduler(stub, "@every 1h", []string{"p1", "p2"})

	s.RunSweeps()

	if len(stub.runs) != 1 || len(stub.runs[0]) != 2 || stub.runs[0][1] != "p2" {
		t.Fatalf("unexpected runs: %v", stub.runs)
	}
}

func TestSweepScheduler_StartRejectsBadSchedule(t *testing.T) {
	s := NewSweepScheduler(&sweepStub{}, "not a schedule", nil)
	if err := s.Start(); err == nil {
		t.Fatal("expected invalid schedule error")
	}
}

func TestSweepScheduler_StartStop(t *testing.T) {
	s := NewSweepScheduler(&sweepStub{}, "@every 1h", nil)
	if err := s.Start(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	<-s.Stop().Done()
}
