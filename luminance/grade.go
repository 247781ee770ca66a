package luminance

// Grade classifies a contrast ratio for text legibility.
type Grade string

const (
	OK  Grade = "OK"
	Low Grade = "LOW"
	Bad Grade = "BAD"
)

// WCAG AA thresholds for normal and large text.
const (
	MinNormalText = 4.5
	MinLargeText  = 3.0
)

// GradeOf grades a contrast ratio.
func GradeOf(ratio float64) Grade {
	switch {
	case ratio >= MinNormalText:
		return OK
	case ratio >= MinLargeText:
		return Low
	default:
		return Bad
	}
}

// Check is a graded background/foreground pair.
type Check struct {
	Background string  `json:"background"`
	Foreground string  `json:"foreground"`
	Ratio      float64 `json:"ratio"`
	Grade      Grade   `json:"grade"`
}

// CheckPair computes and grades the contrast of fg over bg.
func CheckPair(bg, fg string) (Check, error) {
	r, err := ContrastRatio(bg, fg)
	if err != nil {
		return Check{}, err
	}
	return Check{Background: bg, Foreground: fg, Ratio: r, Grade: GradeOf(r)}, nil
}
