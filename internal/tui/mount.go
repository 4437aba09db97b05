package tui

import (
	"log"

	"github.com/vnclrd/folio/internal/carousel"
	"github.com/vnclrd/folio/internal/content"
)

// syncMounts mounts carousels whose strip entered the body window and
// unmounts those that left it. Mounted carousels pick up geometry changes.
func (m *PortfolioModel) syncMounts() {
	for _, s := range content.Carousels() {
		st := m.layout.strips[s]
		c := m.carousels[s]
		visible := st != nil && m.stripVisible(st)

		switch {
		case visible && c == nil:
			m.mount(st)
		case !visible && c != nil:
			m.unmount(s)
		case c != nil:
			if c.Geometry() != st.geom {
				c.SetGeometry(st.geom)
			}
			c.SetWindowWidth(m.width)
			c.Start()
		}
	}
}

func (m *PortfolioModel) mount(st *stripLayout) {
	c, err := carousel.New(string(st.section), m.opts.Carousel, m.sched, st.geom)
	if err != nil {
		log.Printf("tui: mount %s: %v", st.section, err)
		return
	}
	c.SetWindowWidth(m.width)
	c.Start()
	m.carousels[st.section] = c
	log.Printf("tui: mounted %s carousel (max offset %d)", st.section, st.geom.MaxOffset())
}

func (m *PortfolioModel) unmount(s content.Section) {
	c, ok := m.carousels[s]
	if !ok {
		return
	}
	c.Close()
	delete(m.carousels, s)
	if m.dragging == s {
		m.dragging = ""
	}
	log.Printf("tui: unmounted %s carousel", s)
}
