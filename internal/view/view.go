package view

import (
	"fmt"
)

type View interface {
	Render(width int) (lines int)
}

type CompositeView struct {
	views   []View
	footers []View
}

func NewCompositeView(views []View) *CompositeView {
	return &CompositeView{views: views}
}

func (cv *CompositeView) AddView(v View) {
	cv.views = append(cv.views, v)
}

func (cv *CompositeView) AddFooter(v View) {
	cv.footers = append(cv.footers, v)
}

func (cv *CompositeView) Render(w int) int {
	totalLines := 0
	for _, view := range cv.views {
		totalLines += view.Render(w)
	}
	for _, footer := range cv.footers {
		totalLines += footer.Render(w)
	}
	return totalLines
}

func ansiLineOffset(lines int) string {
	return fmt.Sprintf("\033[%dA", lines)
}
