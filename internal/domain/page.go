package domain

type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

type NullHandling int

const (
	NullsNative NullHandling = iota
	NullsFirst
	NullsLast
)

type Order struct {
	Property  string
	Direction Direction
	Nulls     NullHandling
}

func Asc(property string) Order {
	return Order{Property: property, Direction: ASC}
}

func Desc(property string) Order {
	return Order{Property: property, Direction: DESC}
}

func (o Order) NullsLast() Order {
	o.Nulls = NullsLast
	return o
}

func (o Order) NullsFirst() Order {
	o.Nulls = NullsFirst
	return o
}

type PageRequest struct {
	Offset int
	Size   int
	Sort   []Order
}

// PageParams - страница так, как ее задает клиент: номер с нуля и размер (0 - размер по умолчанию).
// Смещение считается только после того, как размер окончательно известен.
type PageParams struct {
	Page int
	Size int
	Sort []Order
}

// PageOf строит запрос страницы по номеру (с нуля) и размеру
func PageOf(page, size int, orders ...Order) PageRequest {
	return PageRequest{Offset: page * size, Size: size, Sort: orders}
}

func (r PageRequest) Validate() error {
	if r.Size <= 0 {
		return NewInvalidPageRequestError("page size must be positive, got %d", r.Size)
	}
	if r.Offset < 0 {
		return NewInvalidPageRequestError("offset must not be negative, got %d", r.Offset)
	}
	return nil
}

func (r PageRequest) Number() int {
	if r.Size <= 0 {
		return 0
	}
	return r.Offset / r.Size
}

type Page[T any] struct {
	Content       []T
	TotalElements int64
	Size          int
	Number        int
}

func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	return Page[T]{
		Content:       content,
		TotalElements: total,
		Size:          req.Size,
		Number:        req.Number(),
	}
}

func (p Page[T]) NumberOfElements() int {
	return len(p.Content)
}

func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 1
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

func (p Page[T]) HasNext() bool {
	return p.Number+1 < p.TotalPages()
}

func (p Page[T]) IsLast() bool {
	return !p.HasNext()
}

// QueryResults - контент вместе с общим количеством строк (fetchResults)
type QueryResults[T any] struct {
	Results []T
	Total   int64
	Offset  int
	Limit   int
}
