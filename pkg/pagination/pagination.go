package pagination

const (
	// DefaultPageSize matches the rows shown per page in the storefront views.
	DefaultPageSize = 5
	// MaxPageSize caps how many rows a single page request can return.
	MaxPageSize = 100
)

// Params holds page-based pagination inputs from controllers.
type Params struct {
	Page     int
	PageSize int
}

// Result describes one page of a collection.
type Result[T any] struct {
	Items       []T  `json:"items"`
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// NormalizePageSize enforces the default and maximum page sizes.
func NormalizePageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// TotalPages returns the number of pages needed for total items, never less than one.
func TotalPages(total, size int) int {
	size = NormalizePageSize(size)
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// ClampPage keeps page within [1, TotalPages].
func ClampPage(page, total, size int) int {
	if page < 1 {
		return 1
	}
	if last := TotalPages(total, size); page > last {
		return last
	}
	return page
}

func CanGoPrevious(page int) bool {
	return page > 1
}

func CanGoNext(page, total, size int) bool {
	return page < TotalPages(total, size)
}

// Page slices items for the requested page. Out-of-range pages are clamped.
func Page[T any](items []T, params Params) Result[T] {
	size := NormalizePageSize(params.PageSize)
	total := len(items)
	page := ClampPage(params.Page, total, size)

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	window := make([]T, 0, end-start)
	window = append(window, items[start:end]...)

	return Result[T]{
		Items:       window,
		Page:        page,
		PageSize:    size,
		TotalItems:  total,
		TotalPages:  TotalPages(total, size),
		HasPrevious: CanGoPrevious(page),
		HasNext:     CanGoNext(page, total, size),
	}
}
