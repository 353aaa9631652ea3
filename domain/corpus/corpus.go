// Package corpus holds the fixed, hand-authored set of aviation law articles
// the application cross-references. The corpus is immutable: it is decoded
// once from the embedded data file and never mutated afterwards.
package corpus

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed corpus.yaml
var corpusData []byte

// Article is one legal provision entry in the corpus
type Article struct {
	ID           string   `yaml:"id" json:"id"`
	Law          string   `yaml:"law" json:"law"`
	Article      string   `yaml:"article" json:"article"`
	Title        string   `yaml:"title" json:"title"`
	Summary      string   `yaml:"summary" json:"summary"`
	OfficialText string   `yaml:"officialText,omitempty" json:"officialText,omitempty"`
	ReferenceURL string   `yaml:"referenceUrl,omitempty" json:"referenceUrl,omitempty"`
	Keywords     []string `yaml:"keywords" json:"keywords"`
	RelatedTo    []string `yaml:"relatedTo" json:"relatedTo"`

	// CategoryID is filled in at load time from the owning category
	CategoryID string `yaml:"-" json:"categoryId"`
}

// Category is a thematic grouping of articles. An article belongs to exactly
// one category.
type Category struct {
	ID       string    `yaml:"id" json:"id"`
	Name     string    `yaml:"name" json:"name"`
	Color    string    `yaml:"color" json:"color"`
	Articles []Article `yaml:"articles" json:"articles"`
}

// Corpus is the loaded article set with lookup indexes
type Corpus struct {
	categories []Category
	articles   []Article
	byID       map[string]int
	catByID    map[string]int
}

type corpusFile struct {
	Categories []Category `yaml:"categories"`
}

// Load decodes the embedded corpus
func Load() (*Corpus, error) {
	var file corpusFile
	if err := yaml.Unmarshal(corpusData, &file); err != nil {
		return nil, fmt.Errorf("failed to decode corpus: %w", err)
	}

	c := &Corpus{
		categories: file.Categories,
		byID:       make(map[string]int),
		catByID:    make(map[string]int),
	}

	for ci := range c.categories {
		cat := &c.categories[ci]
		if _, dup := c.catByID[cat.ID]; dup {
			return nil, fmt.Errorf("duplicate category id %q", cat.ID)
		}
		c.catByID[cat.ID] = ci

		for ai := range cat.Articles {
			art := &cat.Articles[ai]
			art.CategoryID = cat.ID
			if _, dup := c.byID[art.ID]; dup {
				return nil, fmt.Errorf("duplicate article id %q", art.ID)
			}
			c.byID[art.ID] = len(c.articles)
			c.articles = append(c.articles, *art)
		}
	}

	return c, nil
}

// MustLoad is Load, panicking on error. The corpus is compiled in, so a
// failure here is a build defect, not a runtime condition.
func MustLoad() *Corpus {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Articles returns all articles in corpus order
func (c *Corpus) Articles() []Article {
	return c.articles
}

// Categories returns all categories in corpus order
func (c *Corpus) Categories() []Category {
	return c.categories
}

// ArticleByID returns the article with the given id
func (c *Corpus) ArticleByID(id string) (Article, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Article{}, false
	}
	return c.articles[i], true
}

// CategoryByID returns the category with the given id
func (c *Corpus) CategoryByID(id string) (Category, bool) {
	i, ok := c.catByID[id]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// Related resolves the articles related to the given one. The relation is
// symmetric: a one-way declaration from either side surfaces on both. Results
// are in corpus order; unknown ids in relatedTo lists are skipped.
func (c *Corpus) Related(id string) []Article {
	art, ok := c.ArticleByID(id)
	if !ok {
		return nil
	}

	relatedIDs := make(map[string]bool, len(art.RelatedTo))
	for _, rid := range art.RelatedTo {
		relatedIDs[rid] = true
	}
	for _, other := range c.articles {
		for _, rid := range other.RelatedTo {
			if rid == id {
				relatedIDs[other.ID] = true
			}
		}
	}
	delete(relatedIDs, id)

	var related []Article
	for _, a := range c.articles {
		if relatedIDs[a.ID] {
			related = append(related, a)
		}
	}
	return related
}
