package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/lixenwraith/mandelview/constants"
	"github.com/lixenwraith/mandelview/input"
	"github.com/lixenwraith/mandelview/mocks"
)

// TestRunStopsOnQuit verifies the tick order and the reveal delay while idle
func TestRunStopsOnQuit(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	pacer := mocks.NewMockPacer(ctrl)

	c := NewController(testSize, testSize)

	gomock.InOrder(
		backend.EXPECT().Present(gomock.Any()).Return(nil),
		backend.EXPECT().Poll().Return(input.State{}, nil),
		pacer.EXPECT().WaitTick(),
		pacer.EXPECT().Delay(constants.RevealDelay),

		backend.EXPECT().Present(gomock.Any()).Return(nil),
		backend.EXPECT().Poll().Return(input.State{}, nil),
		pacer.EXPECT().WaitTick(),
		pacer.EXPECT().Delay(constants.RevealDelay),

		backend.EXPECT().Present(gomock.Any()).Return(nil),
		backend.EXPECT().Poll().Return(input.State{Quit: true}, nil),
	)

	if err := Run(context.Background(), c, backend, pacer); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

// TestRunNoDelayWhileMoving verifies input suppresses the reveal delay
func TestRunNoDelayWhileMoving(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	pacer := mocks.NewMockPacer(ctrl)

	c := NewController(testSize, testSize)

	gomock.InOrder(
		backend.EXPECT().Present(gomock.Any()).Return(nil),
		backend.EXPECT().Poll().Return(panRight(), nil),
		pacer.EXPECT().WaitTick(),

		backend.EXPECT().Present(gomock.Any()).Return(nil),
		backend.EXPECT().Poll().Return(input.State{Quit: true}, nil),
	)

	if err := Run(context.Background(), c, backend, pacer); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestRunPropagatesBackendErrors(t *testing.T) {
	errDisplay := errors.New("display gone")

	t.Run("Present", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		backend := mocks.NewMockBackend(ctrl)
		pacer := mocks.NewMockPacer(ctrl)

		backend.EXPECT().Present(gomock.Any()).Return(errDisplay)

		err := Run(context.Background(), NewController(testSize, testSize), backend, pacer)
		if !errors.Is(err, errDisplay) {
			t.Errorf("Expected wrapped display error, got %v", err)
		}
	})

	t.Run("Poll", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		backend := mocks.NewMockBackend(ctrl)
		pacer := mocks.NewMockPacer(ctrl)

		backend.EXPECT().Present(gomock.Any()).Return(nil)
		backend.EXPECT().Poll().Return(input.State{}, errDisplay)

		err := Run(context.Background(), NewController(testSize, testSize), backend, pacer)
		if !errors.Is(err, errDisplay) {
			t.Errorf("Expected wrapped poll error, got %v", err)
		}
	})
}

func TestRunCancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	pacer := mocks.NewMockPacer(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := Run(ctx, NewController(testSize, testSize), backend, pacer); err != nil {
		t.Errorf("Expected clean stop on cancelled context, got %v", err)
	}
}
