package userdata

import "sort"

// Derived read-views over the document. All of these are pure functions of
// the current state, recomputed on demand rather than persisted. Where the
// result is a slice, ordering is by record creation time (id as tie-break)
// so repeated reads over the same document are stable.

// sortedLinks returns the document's links ordered by creation time then id
func (d Document) sortedLinks() []Link {
	links := make([]Link, 0, len(d.Links))
	for _, l := range d.Links {
		links = append(links, l)
	}
	sort.Slice(links, func(i, j int) bool {
		if links[i].CreatedAt != links[j].CreatedAt {
			return links[i].CreatedAt < links[j].CreatedAt
		}
		return links[i].ID < links[j].ID
	})
	return links
}

// sortedThemes returns the document's themes ordered by creation time then id
func (d Document) sortedThemes() []Theme {
	themes := make([]Theme, 0, len(d.Themes))
	for _, t := range d.Themes {
		themes = append(themes, t)
	}
	sort.Slice(themes, func(i, j int) bool {
		if themes[i].CreatedAt != themes[j].CreatedAt {
			return themes[i].CreatedAt < themes[j].CreatedAt
		}
		return themes[i].ID < themes[j].ID
	})
	return themes
}

// SortedRegulations returns the document's regulations ordered by creation
// time then id
func (d Document) SortedRegulations() []Regulation {
	regs := make([]Regulation, 0, len(d.Regulations))
	for _, r := range d.Regulations {
		regs = append(regs, r)
	}
	sort.Slice(regs, func(i, j int) bool {
		if regs[i].CreatedAt != regs[j].CreatedAt {
			return regs[i].CreatedAt < regs[j].CreatedAt
		}
		return regs[i].ID < regs[j].ID
	})
	return regs
}

// SortedLinks returns the document's links ordered by creation time then id
func (d Document) SortedLinks() []Link {
	return d.sortedLinks()
}

// SortedNotes returns the document's notes ordered by creation time then id
func (d Document) SortedNotes() []Note {
	notes := make([]Note, 0, len(d.Notes))
	for _, n := range d.Notes {
		notes = append(notes, n)
	}
	sort.Slice(notes, func(i, j int) bool {
		if notes[i].CreatedAt != notes[j].CreatedAt {
			return notes[i].CreatedAt < notes[j].CreatedAt
		}
		return notes[i].ID < notes[j].ID
	})
	return notes
}

// SortedThemes returns the document's themes ordered by creation time then id
func (d Document) SortedThemes() []Theme {
	return d.sortedThemes()
}

// LinkCountByArticle counts links per source article id
func (d Document) LinkCountByArticle() map[string]int {
	counts := make(map[string]int)
	for _, l := range d.Links {
		counts[l.SourceArticleID]++
	}
	return counts
}

// NoteCountByArticle counts notes per article id
func (d Document) NoteCountByArticle() map[string]int {
	counts := make(map[string]int)
	for _, n := range d.Notes {
		counts[n.ArticleID]++
	}
	return counts
}

// LinkedRegulationsByArticle returns the distinct regulations linked from
// each article, deduplicated by regulation id in first-occurrence order.
// Links whose target regulation no longer exists are skipped.
func (d Document) LinkedRegulationsByArticle() map[string][]Regulation {
	result := make(map[string][]Regulation)
	for _, link := range d.sortedLinks() {
		reg, ok := d.Regulations[link.TargetRegulationID]
		if !ok {
			continue
		}
		seen := false
		for _, r := range result[link.SourceArticleID] {
			if r.ID == reg.ID {
				seen = true
				break
			}
		}
		if !seen {
			result[link.SourceArticleID] = append(result[link.SourceArticleID], reg)
		}
	}
	return result
}

// LinksByRegulation groups links by their target regulation id. Dangling
// targets are kept: the caller renders them against its own regulation
// lookup and shows a placeholder for missing ones.
func (d Document) LinksByRegulation() map[string][]Link {
	result := make(map[string][]Link)
	for _, link := range d.sortedLinks() {
		result[link.TargetRegulationID] = append(result[link.TargetRegulationID], link)
	}
	return result
}

// LinksForArticle returns the links whose source is the given article
func (d Document) LinksForArticle(articleID string) []Link {
	var out []Link
	for _, l := range d.sortedLinks() {
		if l.SourceArticleID == articleID {
			out = append(out, l)
		}
	}
	return out
}

// NotesForArticle returns the notes attached to the given article
func (d Document) NotesForArticle(articleID string) []Note {
	notes := make([]Note, 0)
	for _, n := range d.Notes {
		if n.ArticleID == articleID {
			notes = append(notes, n)
		}
	}
	sort.Slice(notes, func(i, j int) bool {
		if notes[i].CreatedAt != notes[j].CreatedAt {
			return notes[i].CreatedAt < notes[j].CreatedAt
		}
		return notes[i].ID < notes[j].ID
	})
	return notes
}

// ThemesByArticle maps each article id to the themes containing it in any
// section. Membership is not exclusive across themes, so an article may map
// to several.
func (d Document) ThemesByArticle() map[string][]Theme {
	result := make(map[string][]Theme)
	for _, theme := range d.sortedThemes() {
		seen := make(map[string]bool)
		for _, sec := range theme.Sections {
			for _, articleID := range sec.ArticleIDs {
				if seen[articleID] {
					continue
				}
				seen[articleID] = true
				result[articleID] = append(result[articleID], theme)
			}
		}
	}
	return result
}
