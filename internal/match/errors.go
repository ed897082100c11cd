package match

import (
	"errors"
	"fmt"
)

// ErrDegenerateTemplate is returned by Correlate when the template has zero
// variance (every sample identical). NCC divides by the template's energy,
// so a flat template has no defined correlation with anything.
var ErrDegenerateTemplate = errors.New("template has zero variance, correlation is undefined")

// DimensionError reports a template that does not fit inside the parent
// image in at least one axis.
type DimensionError struct {
	TemplateWidth  int
	TemplateHeight int
	ParentWidth    int
	ParentHeight   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("template %dx%d exceeds parent %dx%d",
		e.TemplateWidth, e.TemplateHeight, e.ParentWidth, e.ParentHeight)
}
