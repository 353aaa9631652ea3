package userdata

// Migrate brings an older persisted document forward to the current schema:
// missing top-level collections become empty mappings and an absent version
// is stamped with the current one. It is a pure function of the input and is
// run once at load time.
func Migrate(d Document) Document {
	if d.Version == 0 {
		d.Version = CurrentVersion
	}
	if d.Regulations == nil {
		d.Regulations = make(map[string]Regulation)
	}
	if d.Links == nil {
		d.Links = make(map[string]Link)
	}
	if d.Notes == nil {
		d.Notes = make(map[string]Note)
	}
	if d.Themes == nil {
		d.Themes = make(map[string]Theme)
	}
	return d
}
