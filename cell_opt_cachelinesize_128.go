//go:build cell_opt_cachelinesize_128

package cell

// CacheLineSize is forced to 128 bytes by the cell_opt_cachelinesize_128 build tag.
// Use: go build -tags=cell_opt_cachelinesize_128
const CacheLineSize = 128
