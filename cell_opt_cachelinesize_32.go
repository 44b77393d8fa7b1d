//go:build cell_opt_cachelinesize_32

package cell

// CacheLineSize is forced to 32 bytes by the cell_opt_cachelinesize_32 build tag.
// Use: go build -tags=cell_opt_cachelinesize_32
const CacheLineSize = 32
