// Package userdata models the single JSON document holding everything the
// user has created: regulations, links, notes and themes. The document is
// the unit of persistence; mutations derive a new value from the old one so
// the rest of the program never observes a half-applied change.
package userdata

// CurrentVersion is the schema version stamped on new and migrated documents
const CurrentVersion = 1

// Document is the persisted user-data schema
type Document struct {
	Version     int                   `json:"version"`
	ExportedAt  string                `json:"exportedAt,omitempty"`
	Regulations map[string]Regulation `json:"regulations"`
	Links       map[string]Link       `json:"links"`
	Notes       map[string]Note       `json:"notes"`
	Themes      map[string]Theme      `json:"themes"`
}

// Regulation is a user-entered internal company rule record. Its category is
// a free-text label (OM volume etc.), unrelated to corpus categories.
type Regulation struct {
	ID              string `json:"id"`
	Category        string `json:"category"`
	ReferenceNumber string `json:"referenceNumber"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// Link associates a corpus article, optionally a highlighted excerpt of its
// official text, with a regulation. Article ids are not validated at write
// time; dangling references are filtered out at read time.
type Link struct {
	ID                 string `json:"id"`
	SourceArticleID    string `json:"sourceArticleId"`
	HighlightedText    string `json:"highlightedText,omitempty"`
	TargetRegulationID string `json:"targetRegulationId"`
	Note               string `json:"note,omitempty"`
	CreatedAt          string `json:"createdAt"`
	UpdatedAt          string `json:"updatedAt"`
}

// Note is free-text content attached to a corpus article
type Note struct {
	ID        string `json:"id"`
	ArticleID string `json:"articleId"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Section is a named subdivision of a theme holding article ids
type Section struct {
	ID         string   `json:"id"`
	Name       string   `json:"name,omitempty"`
	ArticleIDs []string `json:"articleIds"`
}

// Theme is a user-defined study collection of articles
type Theme struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Sections  []Section `json:"sections"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

// NewDocument returns an empty document at the current schema version
func NewDocument() Document {
	return Document{
		Version:     CurrentVersion,
		Regulations: make(map[string]Regulation),
		Links:       make(map[string]Link),
		Notes:       make(map[string]Note),
		Themes:      make(map[string]Theme),
	}
}

// Clone returns a deep copy of the document
func (d Document) Clone() Document {
	out := Document{
		Version:     d.Version,
		ExportedAt:  d.ExportedAt,
		Regulations: make(map[string]Regulation, len(d.Regulations)),
		Links:       make(map[string]Link, len(d.Links)),
		Notes:       make(map[string]Note, len(d.Notes)),
		Themes:      make(map[string]Theme, len(d.Themes)),
	}
	for id, r := range d.Regulations {
		out.Regulations[id] = r
	}
	for id, l := range d.Links {
		out.Links[id] = l
	}
	for id, n := range d.Notes {
		out.Notes[id] = n
	}
	for id, t := range d.Themes {
		out.Themes[id] = t.clone()
	}
	return out
}

func (t Theme) clone() Theme {
	out := t
	out.Sections = make([]Section, len(t.Sections))
	for i, s := range t.Sections {
		cp := s
		cp.ArticleIDs = append([]string(nil), s.ArticleIDs...)
		out.Sections[i] = cp
	}
	return out
}

// DeleteRegulation removes the regulation and cascades deletion to every
// link targeting it, in a single transition. Reports whether the regulation
// existed.
func (d *Document) DeleteRegulation(id string) bool {
	if _, ok := d.Regulations[id]; !ok {
		return false
	}
	delete(d.Regulations, id)
	for linkID, link := range d.Links {
		if link.TargetRegulationID == id {
			delete(d.Links, linkID)
		}
	}
	return true
}

// AssignArticle places the article into the given section with move
// semantics: the article is first removed from every other section of this
// theme, so it appears in at most one section per theme. Reports whether the
// section exists.
func (t *Theme) AssignArticle(sectionID, articleID string) bool {
	target := -1
	for i := range t.Sections {
		if t.Sections[i].ID == sectionID {
			target = i
		}
	}
	if target < 0 {
		return false
	}

	for i := range t.Sections {
		t.Sections[i].removeArticle(articleID)
	}
	t.Sections[target].ArticleIDs = append(t.Sections[target].ArticleIDs, articleID)
	return true
}

// RemoveArticle removes the article from every section of the theme.
// Reports whether the article was assigned anywhere.
func (t *Theme) RemoveArticle(articleID string) bool {
	found := t.ContainsArticle(articleID)
	for i := range t.Sections {
		t.Sections[i].removeArticle(articleID)
	}
	return found
}

func (s *Section) removeArticle(articleID string) {
	out := s.ArticleIDs[:0]
	for _, id := range s.ArticleIDs {
		if id != articleID {
			out = append(out, id)
		}
	}
	s.ArticleIDs = out
}

// ContainsArticle reports whether any section of the theme holds the article
func (t Theme) ContainsArticle(articleID string) bool {
	for _, s := range t.Sections {
		for _, id := range s.ArticleIDs {
			if id == articleID {
				return true
			}
		}
	}
	return false
}
