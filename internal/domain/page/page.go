package page

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidQuery is returned by repositories for page requests they cannot run
// (negative or overflowing page number, non-positive size, unknown sort field).
var ErrInvalidQuery = errors.New("invalid query")

type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// Sort is either Unsorted() or SortedBy(field, dir). The zero value is Unsorted.
type Sort struct {
	field string
	dir   Direction
}

func Unsorted() Sort { return Sort{} }

func SortedBy(field string, dir Direction) Sort { return Sort{field: field, dir: dir} }

// By reports the sort field and direction; ok is false for Unsorted.
func (s Sort) By() (field string, dir Direction, ok bool) {
	return s.field, s.dir, s.field != ""
}

type Request struct {
	Number int
	Size   int
	Sort   Sort
}

// NewRequest builds a Request the way the query string expresses it: an empty
// sortField means natural order.
func NewRequest(number, size int, asc bool, sortField string) Request {
	r := Request{Number: number, Size: size}
	if sortField != "" {
		dir := Desc
		if asc {
			dir = Asc
		}
		r.Sort = SortedBy(sortField, dir)
	}
	return r
}

// Validate checks the bounds every repository query relies on.
func (r Request) Validate() error {
	if r.Number < 0 {
		return fmt.Errorf("%w: page number %d is negative", ErrInvalidQuery, r.Number)
	}
	if r.Size <= 0 {
		return fmt.Errorf("%w: page size %d must be positive", ErrInvalidQuery, r.Size)
	}
	if r.Number > math.MaxInt/r.Size {
		return fmt.Errorf("%w: page number %d is out of range", ErrInvalidQuery, r.Number)
	}
	return nil
}

func (r Request) Offset() int { return r.Number * r.Size }

type Page[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Last          bool  `json:"last"`
}

func New[T any](content []T, req Request, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	pages := 0
	if req.Size > 0 {
		pages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Content:       content,
		PageNumber:    req.Number,
		PageSize:      req.Size,
		TotalElements: total,
		TotalPages:    pages,
		Last:          req.Number >= pages-1,
	}
}

// Map converts every element while keeping the paging metadata.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(p.Content))
	for _, v := range p.Content {
		out = append(out, fn(v))
	}
	return Page[U]{
		Content:       out,
		PageNumber:    p.PageNumber,
		PageSize:      p.PageSize,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		Last:          p.Last,
	}
}
