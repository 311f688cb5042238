package state

// TabBar is a cyclic index over a fixed set of view titles.
type TabBar struct {
	titles []string
	index  int
}

func NewTabBar(titles []string) *TabBar {
	cp := make([]string, len(titles))
	copy(cp, titles)
	return &TabBar{titles: cp}
}

func (t *TabBar) Index() int { return t.index }

func (t *TabBar) Titles() []string {
	cp := make([]string, len(t.titles))
	copy(cp, t.titles)
	return cp
}

// Current returns the active title, or "" for an empty bar.
func (t *TabBar) Current() string {
	if len(t.titles) == 0 {
		return ""
	}
	return t.titles[t.index]
}

func (t *TabBar) Next() {
	if len(t.titles) == 0 {
		return
	}
	t.index = (t.index + 1) % len(t.titles)
}

func (t *TabBar) Previous() {
	if len(t.titles) == 0 {
		return
	}
	t.index = (t.index - 1 + len(t.titles)) % len(t.titles)
}
