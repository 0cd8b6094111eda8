// Package catalog holds the browsable game catalog: games, categories and
// the queries the web and terminal front ends list them with.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed seed/catalog.yaml
var seedYAML []byte

// PerPage is the page size of All.
const PerPage = 20

const maxLimit = 50

var (
	// ErrNotFound is returned for unknown game or category slugs.
	ErrNotFound = errors.New("catalog: not found")
	// ErrQueryTooShort is returned by Search for queries under two characters.
	ErrQueryTooShort = errors.New("catalog: search query must be at least 2 characters")
)

// Category groups games.
type Category struct {
	Slug        string `yaml:"slug" json:"slug"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
	GameCount   int    `yaml:"-" json:"game_count"`
}

// Game is one catalog entry. Local names the registry id of a built-in
// mini-game; entries without it are embedded from GameURL.
type Game struct {
	Slug           string    `yaml:"slug" json:"slug"`
	Title          string    `yaml:"title" json:"title"`
	Description    string    `yaml:"description" json:"description"`
	Instructions   string    `yaml:"instructions" json:"instructions,omitempty"`
	Category       string    `yaml:"category" json:"category_slug"`
	CategoryName   string    `yaml:"-" json:"category_name"`
	CategoryIcon   string    `yaml:"-" json:"category_icon"`
	Thumbnail      string    `yaml:"thumbnail" json:"thumbnail_url"`
	GameURL        string    `yaml:"game_url" json:"game_url,omitempty"`
	Featured       bool      `yaml:"featured" json:"featured"`
	MobileFriendly bool      `yaml:"mobile_friendly" json:"mobile_friendly"`
	Multiplayer    bool      `yaml:"multiplayer" json:"multiplayer"`
	Added          time.Time `yaml:"added" json:"created_at"`
	Local          string    `yaml:"local" json:"local_game,omitempty"`
	Plays          int       `yaml:"-" json:"plays"`
}

// IsLocal reports whether the entry is a built-in mini-game.
func (g Game) IsLocal() bool {
	return g.Local != ""
}

// Page is one page of All.
type Page struct {
	Games      []Game `json:"games"`
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
}

// PlayCounter reports how often each game has been played.
type PlayCounter interface {
	PlayCounts() (map[string]int, error)
}

type seed struct {
	Categories []Category `yaml:"categories"`
	Games      []Game     `yaml:"games"`
}

// Catalog is an immutable set of games and categories. Play counts are
// read from the counter on every query.
type Catalog struct {
	games      []Game
	categories []Category
	counter    PlayCounter
}

// Load reads a catalog YAML file, or the embedded seed when path is empty.
func Load(path string) (*Catalog, error) {
	data := seedYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("catalog: read %s: %w", path, err)
		}
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var s seed
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	return build(s)
}

func build(s seed) (*Catalog, error) {
	var errs []error
	cats := make(map[string]int, len(s.Categories))
	for i, c := range s.Categories {
		if c.Slug == "" {
			errs = append(errs, fmt.Errorf("category %d: missing slug", i))
			continue
		}
		if _, dup := cats[c.Slug]; dup {
			errs = append(errs, fmt.Errorf("category %q: duplicate slug", c.Slug))
			continue
		}
		cats[c.Slug] = i
	}

	seen := make(map[string]bool, len(s.Games))
	for i := range s.Games {
		g := &s.Games[i]
		if g.Slug == "" || g.Title == "" {
			errs = append(errs, fmt.Errorf("game %d: slug and title are required", i))
			continue
		}
		if seen[g.Slug] {
			errs = append(errs, fmt.Errorf("game %q: duplicate slug", g.Slug))
		}
		seen[g.Slug] = true

		ci, ok := cats[g.Category]
		if !ok {
			errs = append(errs, fmt.Errorf("game %q: unknown category %q", g.Slug, g.Category))
			continue
		}
		g.CategoryName = s.Categories[ci].Name
		g.CategoryIcon = s.Categories[ci].Icon
		s.Categories[ci].GameCount++
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("catalog: %w", errors.Join(errs...))
	}

	return &Catalog{games: s.Games, categories: s.Categories}, nil
}

// WithPlayCounter returns a catalog that reads play counts from pc.
func (c *Catalog) WithPlayCounter(pc PlayCounter) *Catalog {
	cp := *c
	cp.counter = pc
	return &cp
}

// snapshot copies the games with current play counts.
func (c *Catalog) snapshot() ([]Game, error) {
	games := make([]Game, len(c.games))
	copy(games, c.games)
	if c.counter == nil {
		return games, nil
	}
	counts, err := c.counter.PlayCounts()
	if err != nil {
		return nil, fmt.Errorf("catalog: play counts: %w", err)
	}
	for i := range games {
		games[i].Plays = counts[games[i].Slug]
	}
	return games, nil
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return min(limit, maxLimit)
}

func head(games []Game, n int) []Game {
	if len(games) > n {
		return games[:n]
	}
	return games
}

// All returns one page of games ordered by title. Pages start at 1.
func (c *Catalog) All(page int) (Page, error) {
	games, err := c.snapshot()
	if err != nil {
		return Page{}, err
	}
	sort.SliceStable(games, func(i, j int) bool { return games[i].Title < games[j].Title })

	page = max(page, 1)
	p := Page{
		Games:      []Game{},
		Page:       page,
		PerPage:    PerPage,
		Total:      len(games),
		TotalPages: (len(games) + PerPage - 1) / PerPage,
	}
	if from := (page - 1) * PerPage; from < len(games) {
		p.Games = games[from:min(from+PerPage, len(games))]
	}
	return p, nil
}

// Game returns a single game by slug.
func (c *Catalog) Game(slug string) (Game, error) {
	games, err := c.snapshot()
	if err != nil {
		return Game{}, err
	}
	slug = Normalize(slug)
	for _, g := range games {
		if g.Slug == slug {
			return g, nil
		}
	}
	return Game{}, fmt.Errorf("game %q: %w", slug, ErrNotFound)
}

// Featured returns featured games, newest first. Defaults to 6.
func (c *Catalog) Featured(limit int) ([]Game, error) {
	games, err := c.snapshot()
	if err != nil {
		return nil, err
	}
	out := games[:0]
	for _, g := range games {
		if g.Featured {
			out = append(out, g)
		}
	}
	sortNewest(out)
	return head(out, clampLimit(limit, 6)), nil
}

// Trending returns the most played games. Ties keep title order. Defaults to 12.
func (c *Catalog) Trending(limit int) ([]Game, error) {
	games, err := c.snapshot()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(games, func(i, j int) bool {
		if games[i].Plays != games[j].Plays {
			return games[i].Plays > games[j].Plays
		}
		return games[i].Title < games[j].Title
	})
	return head(games, clampLimit(limit, 12)), nil
}

// New returns the most recently added games. Defaults to 12.
func (c *Catalog) New(limit int) ([]Game, error) {
	games, err := c.snapshot()
	if err != nil {
		return nil, err
	}
	sortNewest(games)
	return head(games, clampLimit(limit, 12)), nil
}

// Similar returns other games from the same category. Defaults to 6.
func (c *Catalog) Similar(slug string, limit int) ([]Game, error) {
	g, err := c.Game(slug)
	if err != nil {
		return nil, err
	}
	games, err := c.snapshot()
	if err != nil {
		return nil, err
	}
	var out []Game
	for _, other := range games {
		if other.Category == g.Category && other.Slug != g.Slug {
			out = append(out, other)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Plays > out[j].Plays })
	return head(out, clampLimit(limit, 6)), nil
}

// Search matches q case-insensitively against titles and descriptions.
// Title matches come first. Defaults to 20.
func (c *Catalog) Search(q string, limit int) ([]Game, error) {
	q = strings.ToLower(strings.TrimSpace(q))
	if len([]rune(q)) < 2 {
		return nil, ErrQueryTooShort
	}
	games, err := c.snapshot()
	if err != nil {
		return nil, err
	}
	var byTitle, byDesc []Game
	for _, g := range games {
		switch {
		case strings.Contains(strings.ToLower(g.Title), q):
			byTitle = append(byTitle, g)
		case strings.Contains(strings.ToLower(g.Description), q):
			byDesc = append(byDesc, g)
		}
	}
	return head(append(byTitle, byDesc...), clampLimit(limit, 20)), nil
}

// Categories returns every category with its game count.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Category returns a category and its games ordered by title.
func (c *Catalog) Category(slug string) (Category, []Game, error) {
	slug = Normalize(slug)
	for _, cat := range c.categories {
		if cat.Slug != slug {
			continue
		}
		games, err := c.snapshot()
		if err != nil {
			return Category{}, nil, err
		}
		out := []Game{}
		for _, g := range games {
			if g.Category == slug {
				out = append(out, g)
			}
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
		return cat, out, nil
	}
	return Category{}, nil, fmt.Errorf("category %q: %w", slug, ErrNotFound)
}

func sortNewest(games []Game) {
	sort.SliceStable(games, func(i, j int) bool { return games[i].Added.After(games[j].Added) })
}

// Normalize lowercases and trims a slug.
func Normalize(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
