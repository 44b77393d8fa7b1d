//go:build cell_opt_cachelinesize_64

package cell

// CacheLineSize is forced to 64 bytes by the cell_opt_cachelinesize_64 build tag.
// Use: go build -tags=cell_opt_cachelinesize_64
const CacheLineSize = 64
