package report

import "github.com/xuri/excelize/v2"

// Fill colors used across the census sheet.
const (
	colorYellow    = "FFFF00"
	colorGreen     = "92D050"
	colorRed       = "FF0000"
	colorLightBlue = "DDEBF7"
)

// styleSet holds the style IDs for one workbook. excelize styles are opaque
// per-file IDs combining font, fill, border, and alignment, so every
// combination the sheet uses is registered once up front.
type styleSet struct {
	title      int // letterhead first line: bold 12pt, left
	letterhead int // remaining letterhead lines
	normal     int // plain 10pt, no border (footnotes)

	banner       int // month/year banner: bold, centered, light blue
	dayOfWeek    int // day-of-week cells: light blue, bordered
	columnHeader int // row 7 headers: bold, light blue, bordered

	legendTitle  int // LEGEND / CLAIMS LEGEND banners
	legendCode   int // bordered, centered
	legendDesc   int // bordered, left
	legendNotice int // italic 8pt, centered

	claimsCenter int
	claimsLeft   int
	claimsWarn   int // yellow fill
	claimsOK     int // green fill
	claimsBad    int // red fill

	patientField int // bordered, left
	patientWrap  int // bordered, wrapped (ICD 10)
	dayCell      int
	dayCellHit   int // yellow highlight for billable codes
	comment      int // bordered, wrapped (UR / billing comments)
	divider      int // Medicaid divider: bold blue, light blue fill
}

func thinBorder() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	borders := make([]excelize.Border, len(sides))
	for i, s := range sides {
		borders[i] = excelize.Border{Type: s, Style: 1, Color: "000000"}
	}
	return borders
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

func newStyleSet(f *excelize.File) (*styleSet, error) {
	normalFont := &excelize.Font{Family: "Calibri", Size: 10}
	headerFont := &excelize.Font{Family: "Calibri", Size: 11, Bold: true}

	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	left := &excelize.Alignment{Horizontal: "left", Vertical: "center"}
	wrap := &excelize.Alignment{WrapText: true, Vertical: "center"}

	st := &styleSet{}
	var err error

	reg := func(dst *int, s *excelize.Style) {
		if err != nil {
			return
		}
		*dst, err = f.NewStyle(s)
	}

	reg(&st.title, &excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Size: 12, Bold: true},
		Alignment: left,
	})
	reg(&st.letterhead, &excelize.Style{Font: normalFont, Alignment: left})
	reg(&st.normal, &excelize.Style{Font: normalFont})

	reg(&st.banner, &excelize.Style{
		Font: headerFont, Alignment: center, Fill: solidFill(colorLightBlue),
	})
	reg(&st.dayOfWeek, &excelize.Style{
		Font: normalFont, Alignment: center, Fill: solidFill(colorLightBlue), Border: thinBorder(),
	})
	reg(&st.columnHeader, &excelize.Style{
		Font: headerFont, Alignment: center, Fill: solidFill(colorLightBlue), Border: thinBorder(),
	})

	reg(&st.legendTitle, &excelize.Style{Font: headerFont, Alignment: center})
	reg(&st.legendCode, &excelize.Style{Font: normalFont, Alignment: center, Border: thinBorder()})
	reg(&st.legendDesc, &excelize.Style{Font: normalFont, Alignment: left, Border: thinBorder()})
	reg(&st.legendNotice, &excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Size: 8, Italic: true},
		Alignment: center,
	})

	reg(&st.claimsCenter, &excelize.Style{Font: normalFont, Alignment: center, Border: thinBorder()})
	reg(&st.claimsLeft, &excelize.Style{Font: normalFont, Alignment: left, Border: thinBorder()})
	reg(&st.claimsWarn, &excelize.Style{
		Font: normalFont, Alignment: center, Border: thinBorder(), Fill: solidFill(colorYellow),
	})
	reg(&st.claimsOK, &excelize.Style{
		Font: normalFont, Alignment: center, Border: thinBorder(), Fill: solidFill(colorGreen),
	})
	reg(&st.claimsBad, &excelize.Style{
		Font: normalFont, Alignment: center, Border: thinBorder(), Fill: solidFill(colorRed),
	})

	reg(&st.patientField, &excelize.Style{Font: normalFont, Alignment: left, Border: thinBorder()})
	reg(&st.patientWrap, &excelize.Style{Font: normalFont, Alignment: wrap, Border: thinBorder()})
	reg(&st.dayCell, &excelize.Style{Font: normalFont, Alignment: center, Border: thinBorder()})
	reg(&st.dayCellHit, &excelize.Style{
		Font: normalFont, Alignment: center, Border: thinBorder(), Fill: solidFill(colorYellow),
	})
	reg(&st.comment, &excelize.Style{Font: normalFont, Alignment: wrap, Border: thinBorder()})
	reg(&st.divider, &excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Size: 11, Bold: true, Color: "0000FF"},
		Alignment: center,
		Fill:      solidFill(colorLightBlue),
		Border:    thinBorder(),
	})

	if err != nil {
		return nil, err
	}
	return st, nil
}
