package utils

// Sorter adapts a slice of pointers and a scoring function into
// sort.Interface, ascending by score. Ported from the teacher's
// alg.Sorter[T] generic helper.
type Sorter[Obj any] struct {
	Objects []*Obj
	By      func(*Obj) float64
}

func (s *Sorter[Obj]) Len() int { return len(s.Objects) }

func (s *Sorter[Obj]) Swap(i, j int) { s.Objects[i], s.Objects[j] = s.Objects[j], s.Objects[i] }

func (s *Sorter[Obj]) Less(i, j int) bool { return s.By(s.Objects[i]) < s.By(s.Objects[j]) }

// ReverseSorter is Sorter with the comparison reversed, descending by
// score.
type ReverseSorter[Obj any] struct {
	Objects []*Obj
	By      func(*Obj) float64
}

func (s *ReverseSorter[Obj]) Len() int { return len(s.Objects) }

func (s *ReverseSorter[Obj]) Swap(i, j int) { s.Objects[i], s.Objects[j] = s.Objects[j], s.Objects[i] }

func (s *ReverseSorter[Obj]) Less(i, j int) bool { return s.By(s.Objects[i]) > s.By(s.Objects[j]) }
