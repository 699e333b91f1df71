// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"
)

// mockJob is a test implementation of the Job interface that tracks how many
// times Start and Stop were called.
type mockJob struct {
	startCount int
	stopCount  int
}

func (m *mockJob) Start(_ context.Context, _ time.Duration) {
	m.startCount++
}

func (m *mockJob) Stop() {
	m.stopCount++
}

// orderJob records its id into the shared order slice.
type orderJob struct {
	id    int
	order *[]int
}

func (o *orderJob) Start(_ context.Context, _ time.Duration) {
	*o.order = append(*o.order, o.id)
}

func (o *orderJob) Stop() {
	*o.order = append(*o.order, -o.id)
}

func TestJobs_Start_AllJobsAreCalled(t *testing.T) {
	j1 := &mockJob{}
	j2 := &mockJob{}
	j3 := &mockJob{}

	js := NewJobs(j1, j2, j3)
	js.Start(context.Background(), time.Second)

	for i, j := range []*mockJob{j1, j2, j3} {
		if j.startCount != 1 {
			t.Errorf("job[%d]: expected startCount=1, got %d", i, j.startCount)
		}
	}
}

func TestJobs_Start_Empty(t *testing.T) {
	js := NewJobs()

	// Should not panic on empty job list
	js.Start(context.Background(), time.Second)
	js.Stop()
}

func TestJobs_Start_SkipsNil(t *testing.T) {
	j := &mockJob{}
	js := NewJobs(nil, j, nil)

	// Should not panic on nil entries
	js.Start(context.Background(), time.Second)
	js.Stop()

	if j.startCount != 1 || j.stopCount != 1 {
		t.Errorf("expected start/stop to be called once, got %d/%d", j.startCount, j.stopCount)
	}
}

func TestJobs_StopOrder_IsReversed(t *testing.T) {
	order := []int{}

	js := NewJobs(
		&orderJob{id: 1, order: &order},
		&orderJob{id: 2, order: &order},
		&orderJob{id: 3, order: &order},
	)
	js.Start(context.Background(), time.Second)
	js.Stop()

	expected := []int{1, 2, 3, -3, -2, -1}
	if len(order) != len(expected) {
		t.Fatalf("expected %d events, got %d", len(expected), len(order))
	}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

func TestJobs_Stop_CalledOncePerJob(t *testing.T) {
	j := &mockJob{}
	js := NewJobs(j)

	js.Start(context.Background(), time.Second)
	js.Stop()

	if j.stopCount != 1 {
		t.Errorf("expected Stop to be called exactly once, got %d", j.stopCount)
	}
}
