// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSessionJob(t *testing.T) (*clientSessionJob, *mock.MockAuthClient, *mock.MockClientAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthClient(ctrl)
	authSvc := mock.NewMockClientAuthService(ctrl)

	job := NewClientSessionJob(auth, authSvc, logger.Nop()).(*clientSessionJob)
	job.now = func() time.Time { return fixedNow }
	return job, auth, authSvc
}

// ── tick ─────────────────────────────────────────────────────────────────────

func TestClientSessionJob_Tick_RefreshesNearExpiry(t *testing.T) {
	job, auth, authSvc := newTestSessionJob(t)
	ctx := context.Background()

	gomock.InOrder(
		auth.EXPECT().Token().Return("T1"),
		auth.EXPECT().SessionExpiry().Return(fixedNow.Add(10*time.Second), true),
		auth.EXPECT().Refresh(ctx).Return(nil),
		authSvc.EXPECT().Persist(ctx).Return(nil),
	)

	job.tick(ctx, 30*time.Second)
}

func TestClientSessionJob_Tick_FailedRefreshStillPersists(t *testing.T) {
	job, auth, authSvc := newTestSessionJob(t)

	auth.EXPECT().Token().Return("T1")
	auth.EXPECT().SessionExpiry().Return(fixedNow.Add(-time.Second), true)
	auth.EXPECT().Refresh(gomock.Any()).Return(errors.New("session expired"))
	// persisting an anonymous session clears the local store
	authSvc.EXPECT().Persist(gomock.Any()).Return(nil)

	job.tick(context.Background(), 30*time.Second)
}

func TestClientSessionJob_Tick_SkipsFreshToken(t *testing.T) {
	job, auth, _ := newTestSessionJob(t)

	auth.EXPECT().Token().Return("T1")
	auth.EXPECT().SessionExpiry().Return(fixedNow.Add(5*time.Minute), true)

	job.tick(context.Background(), 30*time.Second)
}

func TestClientSessionJob_Tick_SkipsAnonymous(t *testing.T) {
	job, auth, _ := newTestSessionJob(t)

	auth.EXPECT().Token().Return("")

	job.tick(context.Background(), 30*time.Second)
}

func TestClientSessionJob_Tick_SkipsTokenWithoutExpiry(t *testing.T) {
	job, auth, _ := newTestSessionJob(t)

	auth.EXPECT().Token().Return("opaque")
	auth.EXPECT().SessionExpiry().Return(time.Time{}, false)

	job.tick(context.Background(), 30*time.Second)
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientSessionJob_Start_TicksUntilStopped(t *testing.T) {
	job, auth, _ := newTestSessionJob(t)

	ticked := make(chan struct{}, 100)
	auth.EXPECT().Token().DoAndReturn(func() string {
		ticked <- struct{}{}
		return ""
	}).MinTimes(2)

	job.Start(context.Background(), 5*time.Millisecond, time.Second)
	for range 2 {
		select {
		case <-ticked:
		case <-time.After(2 * time.Second):
			t.Fatal("job did not tick")
		}
	}
	job.Stop()

	// no tick after Stop returned
	drained := len(ticked)
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, drained, len(ticked))
}

func TestClientSessionJob_Stop_Idempotent(t *testing.T) {
	job, _, _ := newTestSessionJob(t)

	job.Stop()
	job.Stop()
}

func TestClientSessionJob_Start_StopsOnContextCancel(t *testing.T) {
	job, auth, _ := newTestSessionJob(t)
	auth.EXPECT().Token().Return("").AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, time.Millisecond, time.Second)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop blocked after context cancel")
	}
}
