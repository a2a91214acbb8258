package render

// Graph is the glyph set used to draw the tree. Vertical continues an
// ancestor that still has siblings below, Blank an ancestor that was
// last; Branch marks a non-last child, Corner the last one.
type Graph struct {
	Vertical string
	Blank    string
	Branch   string
	Corner   string
}

var (
	Unicode = Graph{Vertical: "│   ", Blank: "    ", Branch: "├── ", Corner: "└── "}
	ASCII   = Graph{Vertical: "|   ", Blank: "    ", Branch: "|-- ", Corner: "`-- "}
)
