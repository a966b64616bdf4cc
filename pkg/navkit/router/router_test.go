package router

import (
	"errors"
	"strings"
	"testing"
)

const (
	screenRoot Screen = iota
	screenChild
	screenSheet
	screenSheetChild
)

type childInput struct{ ID int }
type sheetInput struct{}
type sheetChildInput struct{}

type resumeResult struct{ index int }

func (r resumeResult) ResumeState() any { return r.index }

func TestStackPresentation(t *testing.T) {
	s := NewStack()
	if s.Presented() || !s.SegmentEmpty() {
		t.Fatal("new stack should be unpresented and empty")
	}

	s.Push(screenRoot, nil, nil)
	if s.Presented() || s.SegmentEmpty() {
		t.Fatal("pushed entry should make the segment non empty")
	}

	s.PushModal(screenChild, nil, nil)
	if !s.Presented() || !s.SegmentEmpty() {
		t.Fatal("modal entry should start an empty presentation")
	}

	s.Push(screenSheet, nil, nil)
	s.Push(screenSheetChild, nil, nil)
	if !s.Presented() || s.SegmentEmpty() {
		t.Fatal("push inside presentation should be non empty")
	}

	entry := s.PopPresentation()
	if entry == nil || entry.Screen != screenChild || !entry.Modal {
		t.Fatalf("PopPresentation returned %+v, want the modal opener", entry)
	}
	if s.Len() != 1 || s.Presented() {
		t.Fatalf("stack after dismiss: len=%d presented=%v", s.Len(), s.Presented())
	}

	entry = s.PopPresentation()
	if entry == nil || entry.Screen != screenRoot {
		t.Fatalf("PopPresentation outside a presentation should pop, got %+v", entry)
	}
	if s.PopPresentation() != nil {
		t.Fatal("PopPresentation on empty stack should return nil")
	}
}

func TestStackClear(t *testing.T) {
	s := NewStack()
	s.Push(screenRoot, 1, nil)
	s.PushModal(screenChild, 2, nil)
	s.Clear()
	if !s.IsEmpty() || s.Peek() != nil || s.Presented() {
		t.Fatal("Clear should leave an empty stack")
	}
}

func TestSendAndBackRestoresResume(t *testing.T) {
	r := New()
	Destination[childInput](r, screenChild, Push)

	var resumes []any
	var childIDs []int

	r.Register(screenRoot, func(nav *Navigator, input any) (any, error) {
		resumes = append(resumes, nav.Resume())
		if nav.Resume() == nil {
			nav.Send(childInput{ID: 7})
			return resumeResult{index: 3}, nil
		}
		nav.Back()
		return nil, nil
	})
	r.Register(screenChild, func(nav *Navigator, input any) (any, error) {
		childIDs = append(childIDs, input.(childInput).ID)
		if nav.IsEmpty() {
			t.Error("child should have the root below it")
		}
		nav.Back()
		return nil, nil
	})

	if err := r.Run(screenRoot, nil); err != nil {
		t.Fatalf("Run returned %v", err)
	}

	if len(resumes) != 2 || resumes[0] != nil || resumes[1] != 3 {
		t.Fatalf("resumes = %v, want [<nil> 3]", resumes)
	}
	if len(childIDs) != 1 || childIDs[0] != 7 {
		t.Fatalf("child inputs = %v, want [7]", childIDs)
	}
	if !r.Stack().IsEmpty() {
		t.Fatal("stack should be empty after exit")
	}
}

func TestDismissUnwindsPresentation(t *testing.T) {
	r := New()
	Destination[sheetInput](r, screenSheet, Present)
	Destination[sheetChildInput](r, screenSheetChild, Push)

	var visits []Screen
	rootVisits := 0

	r.Register(screenRoot, func(nav *Navigator, input any) (any, error) {
		visits = append(visits, screenRoot)
		rootVisits++
		if rootVisits == 1 {
			nav.Send(sheetInput{})
		}
		return nil, nil
	})
	r.Register(screenSheet, func(nav *Navigator, input any) (any, error) {
		visits = append(visits, screenSheet)
		nav.Send(sheetChildInput{})
		return nil, nil
	})
	r.Register(screenSheetChild, func(nav *Navigator, input any) (any, error) {
		visits = append(visits, screenSheetChild)
		if !nav.IsPresented() || nav.IsEmpty() {
			t.Errorf("sheet child context = %+v", nav.Context())
		}
		nav.Dismiss()
		return nil, nil
	})

	if err := r.Run(screenRoot, nil); err != nil {
		t.Fatalf("Run returned %v", err)
	}

	want := []Screen{screenRoot, screenSheet, screenSheetChild, screenRoot}
	if len(visits) != len(want) {
		t.Fatalf("visits = %v, want %v", visits, want)
	}
	for i := range want {
		if visits[i] != want[i] {
			t.Fatalf("visits = %v, want %v", visits, want)
		}
	}
}

func TestLastRequestWins(t *testing.T) {
	r := New()
	Destination[childInput](r, screenChild, Push)

	childRan := false
	r.Register(screenRoot, func(nav *Navigator, input any) (any, error) {
		nav.Send(childInput{})
		nav.Back()
		if !nav.Pending() {
			t.Error("navigator should report a pending request")
		}
		return nil, nil
	})
	r.Register(screenChild, func(nav *Navigator, input any) (any, error) {
		childRan = true
		return nil, nil
	})

	if err := r.Run(screenRoot, nil); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if childRan {
		t.Fatal("Back after Send should win")
	}
}

func TestRunErrors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name  string
		setup func(r *Router)
		want  string
	}{
		{
			name:  "unregistered screen",
			setup: func(r *Router) {},
			want:  "not registered",
		},
		{
			name: "screen error",
			setup: func(r *Router) {
				r.Register(screenRoot, func(nav *Navigator, input any) (any, error) {
					return nil, boom
				})
			},
			want: "boom",
		},
		{
			name: "no destination",
			setup: func(r *Router) {
				r.Register(screenRoot, func(nav *Navigator, input any) (any, error) {
					nav.Send(sheetInput{})
					return nil, nil
				})
			},
			want: "no destination",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			tt.setup(r)
			err := r.Run(screenRoot, nil)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Run error = %v, want containing %q", err, tt.want)
			}
		})
	}

	r := New()
	r.Register(screenRoot, func(nav *Navigator, input any) (any, error) {
		return nil, boom
	})
	if err := r.Run(screenRoot, nil); !errors.Is(err, boom) {
		t.Fatalf("screen error should be wrapped, got %v", err)
	}
}

func TestRunWithoutTransitionExits(t *testing.T) {
	r := New()
	runs := 0
	r.Register(screenRoot, func(nav *Navigator, input any) (any, error) {
		runs++
		return nil, nil
	})
	if err := r.Run(screenRoot, nil); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if runs != 1 {
		t.Fatalf("screen ran %d times, want 1", runs)
	}
}
