package tabletop

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the geometry and card data of every node below h, in
// child order. Handles are not part of the hash, so two populations of the
// same layout fingerprint equal across rebuilds.
func Fingerprint(g *Graph, h Handle) uint64 {
	d := xxhash.New()
	var buf [8]byte
	writeFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}
	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		_, _ = d.Write(buf[:])
	}

	var walk func(h Handle, depth int)
	walk = func(h Handle, depth int) {
		for _, c := range g.Children(h) {
			n := g.Node(c)
			if n == nil {
				continue
			}
			writeInt(depth)
			_, _ = d.Write([]byte{byte(n.Type)})
			_, _ = d.WriteString(n.Name)
			writeFloat(n.X)
			writeFloat(n.Y)
			writeFloat(n.Width)
			writeFloat(n.Height)
			if n.Card != nil {
				_, _ = d.WriteString(n.Card.Name)
				writeInt(n.Card.Value)
				writeInt(n.Card.BaseFame)
			}
			walk(c, depth+1)
		}
	}
	walk(h, 0)
	return d.Sum64()
}
