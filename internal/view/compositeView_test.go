package view

import (
	"testing"
)

type MockView struct {
	lines int
}

func (mv *MockView) Render(int) int {
	return mv.lines
}

func TestCompositeView_Render(t *testing.T) {
	view1 := &MockView{lines: 3}
	view2 := &MockView{lines: 5}

	compositeView := NewCompositeView([]View{view1, view2})
	compositeView.AddFooter(&MockView{lines: 2})

	totalLines := compositeView.Render(80)
	expectedLines := 10

	if totalLines != expectedLines {
		t.Errorf("expected %d lines, got %d", expectedLines, totalLines)
	}
}

func TestCompositeView_AddView(t *testing.T) {
	compositeView := NewCompositeView(make([]View, 0))
	compositeView.AddView(&MockView{lines: 4})

	if got := compositeView.Render(80); got != 4 {
		t.Errorf("expected 4 lines, got %d", got)
	}
}
