package gc

import "github.com/gckit/gckit/internal/mem"

// sweep visits every tracked block exactly once. Unmarked blocks are
// finalized (exactly once, before release), their regions released, and
// their slots removed. Marked blocks survive with the mark flag cleared, so
// the registry leaves the cycle fully demarked. Returns the number of
// reclaimed blocks.
func (c *Collector) sweep() int {
	reclaimed := 0
	i := 0
	for i < len(c.reg.blocks) {
		b := &c.reg.blocks[i]
		if b.marked {
			b.marked = false
			i++
			continue
		}
		size := b.region.Len()
		if b.fin != nil {
			b.fin(b.region.Bytes())
		}
		if err := mem.Free(b.region); err != nil {
			c.log.Error("region release failed", "base", b.region.Base(), "err", err)
		}
		// Swap-remove pulls an unvisited block into slot i, so i stays put.
		c.reg.removeAt(i)
		c.stats.Frees++
		c.stats.LiveBytes -= size
		reclaimed++
	}
	return reclaimed
}
