package tabletop

import "fmt"

// TableSpec describes the backdrop rectangle.
type TableSpec struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// CardSpec describes one card slot. Zones are positional slots with no card
// identity data.
type CardSpec struct {
	Name     string  `yaml:"name" toml:"name"`
	Value    int     `yaml:"value" toml:"value"`
	BaseFame int     `yaml:"base_fame" toml:"base_fame"`
	Zone     bool    `yaml:"zone" toml:"zone"`
	Pos      *Vec2   `yaml:"pos" toml:"pos"`       // nil: evenly spaced
	Width    float64 `yaml:"width" toml:"width"`   // 0: Layout.CardSize.X
	Height   float64 `yaml:"height" toml:"height"` // 0: Layout.CardSize.Y
}

// Layout is the static description of the initial scene.
type Layout struct {
	Name     string     `yaml:"name" toml:"name"`
	Table    TableSpec  `yaml:"table" toml:"table"`
	Spacing  float64    `yaml:"spacing" toml:"spacing"`
	CardSize Vec2       `yaml:"card_size" toml:"card_size"`
	Cards    []CardSpec `yaml:"cards" toml:"cards"`
}

// Population lists what a single Populate call attached.
type Population struct {
	Table   Handle
	Cards   []Handle
	Created int // total nodes attached, nested labels included
}

var (
	tableColor = Color{R: 0.13, G: 0.33, B: 0.2, A: 1}
	labelColor = Color{R: 0.1, G: 0.1, B: 0.1, A: 1}

	cardPalette = []Color{
		{R: 0.95, G: 0.9, B: 0.78, A: 1},
		{R: 0.78, G: 0.86, B: 0.95, A: 1},
		{R: 0.95, G: 0.8, B: 0.8, A: 1},
		{R: 0.82, G: 0.94, B: 0.8, A: 1},
		{R: 0.92, G: 0.84, B: 0.95, A: 1},
	}
)

const (
	labelInset    = 8
	zoneAlpha     = 0.35
	defaultCardW  = 120
	defaultCardH  = 220
	defaultTableW = 1200
	defaultTableH = 700
)

// DefaultLayout returns the named-card table: five animals evenly spaced
// along the horizontal axis.
func DefaultLayout() Layout {
	return Layout{
		Name:     "cards",
		Table:    TableSpec{Width: defaultTableW, Height: defaultTableH},
		Spacing:  180,
		CardSize: Vec2{defaultCardW, defaultCardH},
		Cards: []CardSpec{
			{Name: "Ostrich", Value: 1, BaseFame: 2},
			{Name: "Eagle", Value: 4, BaseFame: 1},
			{Name: "Dog", Value: 5, BaseFame: 1},
			{Name: "Camel", Value: 8, BaseFame: 0},
			{Name: "Rabbit", Value: 9, BaseFame: 0},
		},
	}
}

// ZonesLayout returns the unlabeled-zone table: hand-placed slots with no
// card data.
func ZonesLayout() Layout {
	return Layout{
		Name:     "zones",
		Table:    TableSpec{Width: defaultTableW, Height: defaultTableH},
		CardSize: Vec2{defaultCardW, defaultCardH},
		Cards: []CardSpec{
			{Name: "deck", Zone: true, Pos: &Vec2{-450, -180}},
			{Name: "discard", Zone: true, Pos: &Vec2{450, -180}},
			{Name: "play-1", Zone: true, Pos: &Vec2{-180, 150}},
			{Name: "play-2", Zone: true, Pos: &Vec2{0, 150}},
			{Name: "play-3", Zone: true, Pos: &Vec2{180, 150}},
		},
	}
}

// Validate reports the first structural problem in l.
func (l Layout) Validate() error {
	if l.Table.Width <= 0 || l.Table.Height <= 0 {
		return fmt.Errorf("layout %q: table size must be positive, got %vx%v", l.Name, l.Table.Width, l.Table.Height)
	}
	for i := range l.Cards {
		size := l.cardSize(i)
		if size.X <= 0 || size.Y <= 0 {
			return fmt.Errorf("layout %q: card %d (%q) size must be positive, got %vx%v",
				l.Name, i, l.Cards[i].Name, size.X, size.Y)
		}
		if !l.Cards[i].Zone && l.Cards[i].Name == "" {
			return fmt.Errorf("layout %q: card %d has no name", l.Name, i)
		}
	}
	// Cards without Pos share one row; they would stack on a single point.
	if l.Spacing <= 0 && l.unpositioned() > 1 {
		return fmt.Errorf("layout %q: spacing must be positive for %d cards without pos, got %v",
			l.Name, l.unpositioned(), l.Spacing)
	}
	return nil
}

func (l Layout) unpositioned() int {
	n := 0
	for _, cs := range l.Cards {
		if cs.Pos == nil {
			n++
		}
	}
	return n
}

// CardPosition returns the center of card i: its explicit position if set,
// otherwise its slot on a row spaced Spacing apart and centered on x = 0.
func (l Layout) CardPosition(i int) Vec2 {
	if p := l.Cards[i].Pos; p != nil {
		return *p
	}
	n := len(l.Cards)
	return Vec2{X: (float64(i) - float64(n-1)/2) * l.Spacing}
}

func (l Layout) cardSize(i int) Vec2 {
	cs := l.Cards[i]
	size := Vec2{cs.Width, cs.Height}
	if size.X == 0 {
		size.X = l.CardSize.X
	}
	if size.Y == 0 {
		size.Y = l.CardSize.Y
	}
	return size
}

func cardColor(i int, zone bool) Color {
	c := cardPalette[i%len(cardPalette)]
	if zone {
		c.A = zoneAlpha
	}
	return c
}

// Populate attaches the table and every card of l under parent, in layout
// order. Repeated calls with the same layout produce identical geometry.
func Populate(g *Graph, parent Handle, l Layout) Population {
	var p Population
	p.Table = g.AttachChild(parent, NodeSpec{
		Name:   "table",
		Type:   NodeTypeTable,
		Width:  l.Table.Width,
		Height: l.Table.Height,
		Color:  tableColor,
	})
	p.Created++

	p.Cards = make([]Handle, 0, len(l.Cards))
	for i, cs := range l.Cards {
		pos := l.CardPosition(i)
		size := l.cardSize(i)
		spec := NodeSpec{
			Name:   cs.Name,
			Type:   NodeTypeCard,
			X:      pos.X,
			Y:      pos.Y,
			Width:  size.X,
			Height: size.Y,
			Color:  cardColor(i, cs.Zone),
		}
		if !cs.Zone {
			spec.Card = &Card{Name: cs.Name, Value: cs.Value, BaseFame: cs.BaseFame}
		}
		h := g.AttachChild(parent, spec)
		p.Cards = append(p.Cards, h)
		p.Created++

		if spec.Card == nil {
			continue
		}
		g.AttachChild(h, NodeSpec{
			Name:  cs.Name + "/label",
			Type:  NodeTypeLabel,
			X:     -size.X/2 + labelInset,
			Y:     -size.Y/2 + labelInset,
			Color: labelColor,
			Text:  fmt.Sprintf("%s\nvalue %d\nfame %d", cs.Name, cs.Value, cs.BaseFame),
		})
		p.Created++
	}
	return p
}
