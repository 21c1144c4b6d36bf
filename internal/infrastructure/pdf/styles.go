package pdf

// All text is Helvetica; glyph metrics ship with the font core, so width
// measurement needs no external font files.
const fontFamily = "Helvetica"

// fontSpec pins a Helvetica variant and size for one run of text.
type fontSpec struct {
	style string // "", "B" or "I"
	size  float64
}

var (
	fontTitle       = fontSpec{style: "B", size: 20}
	fontBody        = fontSpec{style: "", size: 10}
	fontBodyBold    = fontSpec{style: "B", size: 10}
	fontLabel       = fontSpec{style: "", size: 9}
	fontSection     = fontSpec{style: "B", size: 11}
	fontTableHeader = fontSpec{style: "B", size: 10}
	fontQty         = fontSpec{style: "", size: 9}
	fontMoney       = fontSpec{style: "", size: 9}
	fontPair        = fontSpec{style: "B", size: 10}
	fontTotal       = fontSpec{style: "B", size: 14}
	fontFooter      = fontSpec{style: "I", size: 10}
	fontFooterSmall = fontSpec{style: "", size: 9}
)

type rgb struct {
	r, g, b int
}

// styleSet is the document palette. Built per render and passed by value;
// renders never share mutable state.
type styleSet struct {
	primary    rgb // #667eea brand
	text       rgb // #333333 body text
	muted      rgb // #666666 labels, footer
	grid       rgb // #eeeeee table grid
	fill       rgb // #f5f5f5 table body fill
	headerText rgb // whitesmoke on the primary header band
	alert      rgb // #ff0000 overdue status
}

func defaultStyles() styleSet {
	return styleSet{
		primary:    rgb{0x66, 0x7e, 0xea},
		text:       rgb{0x33, 0x33, 0x33},
		muted:      rgb{0x66, 0x66, 0x66},
		grid:       rgb{0xee, 0xee, 0xee},
		fill:       rgb{0xf5, 0xf5, 0xf5},
		headerText: rgb{0xf5, 0xf5, 0xf5},
		alert:      rgb{0xff, 0x00, 0x00},
	}
}

// statusColor resolves the badge color for an upper-cased invoice status.
// OVERDUE alerts in red; every other status renders in the brand color.
func (st styleSet) statusColor(status string) rgb {
	if status == "OVERDUE" {
		return st.alert
	}
	return st.primary
}
