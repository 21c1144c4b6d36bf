package pdf

import "math"

// measureFunc returns the rendered width of text in points for a font. The
// document writer backs it with real Helvetica metrics; tests substitute
// synthetic measurers.
type measureFunc func(text string, f fontSpec) float64

// pairSpec describes one right-aligned label/value block to be sized.
type pairSpec struct {
	label     string
	values    []string
	labelFont fontSpec
	valueFont fontSpec
	minLabelW float64
	minValueW float64
	pad       float64
	maxTotalW float64
}

// pairRow is one rendered line of a pair block. Rows sharing a block share
// the column widths computed for the block as a whole.
type pairRow struct {
	label     string
	value     string
	labelFont fontSpec
	valueFont fontSpec
	color     rgb
	lineH     float64
	ruleAbove bool
}

// computePairWidths sizes the two columns of a label/value block so neither
// side can paint into the other.
//
// The value column is sized to the widest value string plus padding, the
// label column to the label text, both with a 10% metric safety margin and
// never below their floors. If the pair overflows maxTotalW the label column
// is squeezed first, then the value column, but each squeeze stops at a hard
// floor derived from the measured text, so the floors win over the cap and
// the result may still exceed maxTotalW for extreme inputs.
func computePairWidths(spec pairSpec, measure measureFunc) (labelW, valueW float64) {
	values := spec.values
	if len(values) == 0 {
		values = []string{"$0.00"}
	}

	widestValue := 0.0
	for _, v := range values {
		if w := measure(v, spec.valueFont) * 1.1; w > widestValue {
			widestValue = w
		}
	}
	valueW = math.Max(spec.minValueW, widestValue+2*spec.pad+20)

	labelTextW := measure(spec.label, spec.labelFont)
	labelW = math.Max(spec.minLabelW, labelTextW*1.1+2*spec.pad+15)

	if labelW+valueW > spec.maxTotalW {
		floor := math.Max(spec.minLabelW, labelTextW*1.15+15)
		overflow := labelW + valueW - spec.maxTotalW
		labelW = math.Max(floor, labelW-overflow)
	}

	if labelW+valueW > spec.maxTotalW {
		floor := math.Max(spec.minValueW, widestValue+15)
		overflow := labelW + valueW - spec.maxTotalW
		valueW = math.Max(floor, valueW-overflow)
	}

	return labelW, valueW
}
