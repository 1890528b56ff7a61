package model

import "sort"

// Piece is a parsed DSTV document: the header and its records in file order.
type Piece struct {
	Header  Header
	Records []Record
}

// NewPiece creates an empty piece
func NewPiece() *Piece {
	return &Piece{
		Records: make([]Record, 0),
	}
}

// AddRecord appends a record
func (p *Piece) AddRecord(r Record) {
	p.Records = append(p.Records, r)
}

// SortedRecords returns a copy of the records stable-sorted by draw
// priority. Records with equal priority keep file order.
func (p *Piece) SortedRecords() []Record {
	sorted := make([]Record, len(p.Records))
	copy(sorted, p.Records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ZIndex() < sorted[j].ZIndex()
	})
	return sorted
}

// RecordsByFace returns the records belonging to face in draw order, as
// SortedRecords orders them.
func (p *Piece) RecordsByFace(face Face) []Record {
	var out []Record
	for _, r := range p.SortedRecords() {
		if r.Face() == face {
			out = append(out, r)
		}
	}
	return out
}

// CountByKind returns the number of records of each kind.
func (p *Piece) CountByKind() map[RecordKind]int {
	counts := make(map[RecordKind]int)
	for _, r := range p.Records {
		counts[r.Kind()]++
	}
	return counts
}
