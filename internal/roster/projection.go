package roster

// Row is one projected row: the stored record plus derived display columns.
//
// Number is the 1-based display row number. It is only set for editable
// variants and is never written back.
type Row struct {
	Number int `json:"row,omitempty"`
	Record
	Rating string `json:"rating"`
}

// Projection is the read-only display form of the collection.
type Projection []Row

// EditedProjection is a projection as returned by the editable grid. Rows may
// have been added, removed or changed; derived columns are ignored.
type EditedProjection []Row

// Records strips the derived columns and returns the rows as stored records.
// The result is never nil.
func (p EditedProjection) Records() []Record {
	out := make([]Record, len(p))
	for i, row := range p {
		out[i] = row.Record.clone()
	}
	return out
}

// Project builds the display projection for records. It does not retain or
// modify records.
func Project(records []Record, v Variant, r Rating) Projection {
	out := make(Projection, len(records))
	for i, rec := range records {
		row := Row{
			Record: rec.clone(),
			Rating: r.Render(rec.Score),
		}
		if v.Editable {
			row.Number = i + 1
		}
		out[i] = row
	}
	return out
}
