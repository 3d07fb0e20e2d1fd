// Package document provides the editable text model: an ordered sequence of
// rows, an optional backing file, and a dirty flag.
//
// Basic usage:
//
//	doc, err := document.Open("notes.txt")
//	if err != nil {
//	    doc = document.New()
//	}
//
//	doc.Insert(document.Position{X: 0, Y: 0}, 'a')  // dirty
//	doc.Insert(document.Position{X: 1, Y: 0}, '\n') // split the row
//	doc.Delete(document.Position{X: 1, Y: 0})       // join it back
//
//	if err := doc.Save(); err != nil {
//	    // document stays dirty
//	}
//
// Positions are grapheme coordinates (see Position). The virtual position
// Y == Len() sits just past the last row; inserting there appends a row.
// The document never tracks a cursor itself.
package document
