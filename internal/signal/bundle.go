package signal

// Bundle pairs two oscillators plotted against one scrolling x-domain.
type Bundle struct {
	first  *Sliding[Point]
	second *Sliding[Point]
	window [2]float64
}

func NewBundle(first, second *Sliding[Point], lo, hi float64) *Bundle {
	return &Bundle{first: first, second: second, window: [2]float64{lo, hi}}
}

// Tick advances both signals and shifts the x-domain right by one.
func (b *Bundle) Tick() {
	b.first.Tick()
	b.second.Tick()
	b.window[0]++
	b.window[1]++
}

func (b *Bundle) First() *Sliding[Point]  { return b.first }
func (b *Bundle) Second() *Sliding[Point] { return b.second }
func (b *Bundle) XWindow() [2]float64     { return b.window }
