package lock

import "errors"

// ErrNoRoutes indicates the route search found fewer disjoint
// cycle-forming routes than requested after repeated attempts. Lock treats
// this as non-fatal: it logs the error as a warning, embeds all key gates,
// and inserts muxes only along the routes it found. With no route at all,
// the key inputs are embedded but drive no gate.
var ErrNoRoutes = errors.New("lock: no eligible insertion routes found")

// ErrKeyTooShort indicates fewer key bits were supplied than the selected
// routes need to drive their mux selectors.
var ErrKeyTooShort = errors.New("lock: key shorter than required by selected routes")
