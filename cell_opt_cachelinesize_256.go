//go:build cell_opt_cachelinesize_256

package cell

// CacheLineSize is forced to 256 bytes by the cell_opt_cachelinesize_256 build tag.
// Use: go build -tags=cell_opt_cachelinesize_256
const CacheLineSize = 256
