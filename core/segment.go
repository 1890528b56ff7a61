package core

import (
	"strconv"
	"strings"
)

// HeaderLines is the number of positional header lines in a DSTV file.
const HeaderLines = 24

// Block type codes.
const (
	CodeStart       = "ST"
	CodeEnd         = "EN"
	CodeOuterBorder = "AK"
	CodeInnerBorder = "IK"
	CodeHole        = "BO"
	CodeNumeration  = "SI"
	CodeBend        = "KA"
	CodeCut         = "SC"
	CodePowderMark  = "PU"
	CodePunchMark   = "KO"
)

// knownCodes are the codes that terminate the header block. PU and KO are
// part of the format but have no record parser; they still end the header.
var knownCodes = map[string]bool{
	CodeEnd:         true,
	CodeOuterBorder: true,
	CodeInnerBorder: true,
	CodeHole:        true,
	CodeNumeration:  true,
	CodeBend:        true,
	CodeCut:         true,
	CodePowderMark:  true,
	CodePunchMark:   true,
}

// Block is one typed group of lines.
type Block struct {
	Code  string
	Lines []string // trimmed content lines, without the code line
	Nums  []int    // 1-based source line of each entry in Lines
	Line  int      // 1-based source line of the code line
}

// Segmented is the result of splitting a document.
type Segmented struct {
	Header     []string
	HeaderLine int   // 1-based source line of the first header line
	HeaderNums []int // 1-based source line of each entry in Header
	Blocks     []Block
}

// sourceLine is a line that survived comment removal.
type sourceLine struct {
	text string
	num  int
}

// stripComments splits text into lines, drops comment lines (first non-space
// character '*') and removes trailing carriage returns. Line numbers are
// kept 1-based.
func stripComments(text string) []sourceLine {
	raw := strings.Split(text, "\n")
	lines := make([]sourceLine, 0, len(raw))
	for i, l := range raw {
		l = strings.TrimRight(l, "\r")
		if strings.HasPrefix(strings.TrimSpace(l), "*") {
			continue
		}
		lines = append(lines, sourceLine{text: l, num: i + 1})
	}
	return lines
}

// Segment splits a decoded document into its header block and typed blocks.
// Warnings, if non-nil, receives non-fatal diagnostics.
func Segment(text string, warnings *Warnings) (*Segmented, error) {
	lines := stripComments(text)
	seg := &Segmented{}

	i := 0
	for ; i < len(lines); i++ {
		l := lines[i]
		code := lineCode(l.text)
		if code == CodeStart {
			continue
		}
		if l.text == "" {
			if len(seg.Header) > 0 {
				i++
				break
			}
			continue
		}
		// Header values may start at column 0, so before the header is
		// complete only a bare known code ends it.
		if knownCodes[code] && strings.TrimSpace(l.text) == code {
			break
		}
		if code != "" && len(seg.Header) >= HeaderLines {
			break
		}
		if seg.HeaderLine == 0 {
			seg.HeaderLine = l.num
		}
		seg.Header = append(seg.Header, l.text)
		seg.HeaderNums = append(seg.HeaderNums, l.num)
	}

	if len(seg.Header) < HeaderLines {
		return nil, &FieldError{
			Kind:  ErrInvalidHeader,
			Field: "header lines",
			Value: strconv.Itoa(len(seg.Header)),
			Line:  seg.HeaderLine,
		}
	}
	if len(seg.Header) > HeaderLines {
		warnings.Add(seg.HeaderLine+HeaderLines, "", "header has %d lines, ignoring %d surplus lines",
			len(seg.Header), len(seg.Header)-HeaderLines)
		seg.Header = seg.Header[:HeaderLines]
		seg.HeaderNums = seg.HeaderNums[:HeaderLines]
	}

	seg.Blocks = groupBlocks(lines[i:], warnings)
	return seg, nil
}

func groupBlocks(lines []sourceLine, warnings *Warnings) []Block {
	var blocks []Block
	for _, l := range lines {
		if strings.TrimSpace(l.text) == "" {
			continue
		}

		code := lineCode(l.text)
		if code == CodeEnd {
			break
		}

		if code != "" {
			blocks = append(blocks, Block{Code: code, Line: l.num})
			continue
		}

		if len(blocks) == 0 {
			warnings.Add(l.num, "", "data line outside of any block ignored")
			continue
		}

		cur := &blocks[len(blocks)-1]
		// A run of hole lines below one BO code is one hole per line.
		if cur.Code == CodeHole && len(cur.Lines) == 1 {
			blocks = append(blocks, Block{Code: CodeHole, Line: l.num})
			cur = &blocks[len(blocks)-1]
		}
		cur.Lines = append(cur.Lines, strings.TrimSpace(l.text))
		cur.Nums = append(cur.Nums, l.num)
	}
	return blocks
}

// lineCode returns the type code a line starts with, or "" if the line is a
// continuation (starts with whitespace) or empty.
func lineCode(line string) string {
	if line == "" || line[0] == ' ' || line[0] == '\t' {
		return ""
	}
	if len(line) < 2 {
		return line
	}
	return strings.TrimSpace(line[:2])
}
