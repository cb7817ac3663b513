package report

import (
	"fmt"
	"strings"
)

// writeLegend writes the service-code legend band: the LEGEND banner merged
// across L1:N1, one code/description pair per row, and the proprietary notice
// under the table.
func (b *Builder) writeLegend() error {
	if err := b.merge(legendCol, legendEndCol, 1, "LEGEND", b.st.legendTitle); err != nil {
		return err
	}
	for i, entry := range legendEntries {
		row := firstLegendRow + i
		if err := b.set(legendCol, row, entry.Code, b.st.legendCode); err != nil {
			return err
		}
		if err := b.set(legendDescCol, row, entry.Desc, b.st.legendDesc); err != nil {
			return err
		}
	}
	noticeRow := firstLegendRow + len(legendEntries)
	return b.merge(legendCol, legendEndCol, noticeRow, legendNotice, b.st.legendNotice)
}

// writeClaimsLegend writes the claim-status sub-table under its merged
// banner. The two code columns carry conditional fills; the status and
// description columns never do.
func (b *Builder) writeClaimsLegend() error {
	if err := b.merge(claimsStartCol, claimsEndCol, 1, "CLAIMS LEGEND", b.st.legendTitle); err != nil {
		return err
	}
	for i, cr := range claimsRows {
		row := firstLegendRow + i
		for j, v := range cr {
			col := claimsStartCol + j
			var style int
			switch j {
			case 1, 4: // code columns
				style = b.claimsCodeStyle(v)
			case 2: // description column
				style = b.st.claimsLeft
			default: // status columns
				style = b.st.claimsCenter
			}
			if err := b.set(col, row, v, style); err != nil {
				return err
			}
		}
	}
	return nil
}

// claimsCodeStyle picks the fill for a claim-code cell: warning for cells
// carrying the review code, green for authorized, red for unbillable.
func (b *Builder) claimsCodeStyle(v string) int {
	switch {
	case strings.Contains(v, claimsWarnSubstr) || v == claimsWarnExact:
		return b.st.claimsWarn
	case v == claimsAuthorized:
		return b.st.claimsOK
	case v == claimsUnbillable:
		return b.st.claimsBad
	}
	return b.st.claimsCenter
}

// writeFootnotes appends the auxiliary Footnotes sheet: the fixed annotation
// list, one line per row in column A.
func (b *Builder) writeFootnotes() error {
	const sheet = "Footnotes"
	if _, err := b.f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create footnotes sheet: %w", err)
	}
	for i, note := range footnoteLines {
		ref := cell(1, i+1)
		if err := b.f.SetCellValue(sheet, ref, note); err != nil {
			return fmt.Errorf("set footnote %s: %w", ref, err)
		}
		if err := b.f.SetCellStyle(sheet, ref, ref, b.st.normal); err != nil {
			return fmt.Errorf("style footnote %s: %w", ref, err)
		}
	}
	return nil
}
