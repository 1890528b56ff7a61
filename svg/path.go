package svg

import (
	"strings"

	"github.com/tsawler/dstv/contour"
	"github.com/tsawler/dstv/model"
)

// pathData formats p as the d attribute of a <path> element.
func pathData(p *contour.Path) string {
	var sb strings.Builder
	for i, seg := range p.Segments {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch seg.Type {
		case contour.MoveTo:
			sb.WriteString("M")
			writePoint(&sb, seg.Points[0])
		case contour.LineTo:
			sb.WriteString("L")
			writePoint(&sb, seg.Points[0])
		case contour.QuadTo:
			sb.WriteString("Q")
			writePoint(&sb, seg.Points[0])
			sb.WriteByte(' ')
			writePoint(&sb, seg.Points[1])
		case contour.ArcTo:
			sb.WriteString("A")
			sb.WriteString(num(seg.RX))
			sb.WriteByte(' ')
			sb.WriteString(num(seg.RY))
			sb.WriteString(" 0 ")
			sb.WriteString(flag(seg.LargeArc))
			sb.WriteByte(' ')
			sb.WriteString(flag(seg.Sweep))
			sb.WriteByte(' ')
			writePoint(&sb, seg.Points[0])
		case contour.ClosePath:
			sb.WriteString("Z")
		}
	}
	return sb.String()
}

func writePoint(sb *strings.Builder, p model.Point) {
	sb.WriteString(num(p.X))
	sb.WriteByte(',')
	sb.WriteString(num(p.Y))
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func num(v float64) string {
	return model.FormatNumber(v)
}
