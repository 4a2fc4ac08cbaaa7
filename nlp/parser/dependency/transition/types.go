package transition

import (
	"errors"
	"fmt"
	"sort"

	. "eagerparse/alg/transition"
	nlp "eagerparse/nlp/types"
	"eagerparse/util"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrEmptySentence     = errors.New("sentence has no tokens")
	ErrMissingRoot       = errors.New("sentence does not start with the root token")
)

// InvalidTransitionError reports a transition whose precondition does not
// hold in the configuration it was applied to.
type InvalidTransitionError struct {
	Transition Transition
	Reason     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%v %s: %s", ErrInvalidTransition, TransitionString(e.Transition), e.Reason)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

type BasicDepArc struct {
	Head     int
	Modifier int
}

var _ nlp.DepArc = &BasicDepArc{}

func (arc *BasicDepArc) GetHead() int {
	return arc.Head
}

func (arc *BasicDepArc) GetModifier() int {
	return arc.Modifier
}

func (arc *BasicDepArc) Equal(otherEq util.Equaler) bool {
	other, ok := otherEq.(*BasicDepArc)
	return ok && arc.Head == other.Head && arc.Modifier == other.Modifier
}

func (arc *BasicDepArc) String() string {
	return fmt.Sprintf("(%d,%d)", arc.Head, arc.Modifier)
}

type ArcSet interface {
	Clear()
	Add(*BasicDepArc)
	Size() int
	Last() *BasicDepArc
	Index(int) *BasicDepArc

	Head(int) (int, bool)
	HasHead(int) bool
	HasArc(int, int) bool

	Copy() ArcSet
	Equal(ArcSet) bool
}

// ArcSetSimple is an append-only list of arcs with lookup indices.
// Arcs keep the order in which they were added.
type ArcSetSimple struct {
	Arcs    []*BasicDepArc
	HeadOf  map[int]int
	SeenArc map[[2]int]bool
}

var _ ArcSet = &ArcSetSimple{}

func (s *ArcSetSimple) Clear() {
	s.Arcs = s.Arcs[0:0]
	s.HeadOf = make(map[int]int)
	s.SeenArc = make(map[[2]int]bool)
}

func (s *ArcSetSimple) Add(arc *BasicDepArc) {
	s.Arcs = append(s.Arcs, arc)
	if _, exists := s.HeadOf[arc.Modifier]; !exists {
		s.HeadOf[arc.Modifier] = arc.Head
	}
	s.SeenArc[[2]int{arc.Head, arc.Modifier}] = true
}

func (s *ArcSetSimple) Size() int {
	return len(s.Arcs)
}

func (s *ArcSetSimple) Last() *BasicDepArc {
	if len(s.Arcs) == 0 {
		return nil
	}
	return s.Arcs[len(s.Arcs)-1]
}

func (s *ArcSetSimple) Index(i int) *BasicDepArc {
	if i < 0 || i >= len(s.Arcs) {
		return nil
	}
	return s.Arcs[i]
}

func (s *ArcSetSimple) Head(modifier int) (int, bool) {
	head, exists := s.HeadOf[modifier]
	return head, exists
}

func (s *ArcSetSimple) HasHead(modifier int) bool {
	_, exists := s.HeadOf[modifier]
	return exists
}

func (s *ArcSetSimple) HasArc(head, modifier int) bool {
	return s.SeenArc[[2]int{head, modifier}]
}

// Copy duplicates the indices; arcs themselves are never modified once
// added so the pointers are shared.
func (s *ArcSetSimple) Copy() ArcSet {
	newSet := &ArcSetSimple{
		Arcs:    make([]*BasicDepArc, len(s.Arcs), len(s.Arcs)+1),
		HeadOf:  make(map[int]int, len(s.HeadOf)+1),
		SeenArc: make(map[[2]int]bool, len(s.SeenArc)+1),
	}
	copy(newSet.Arcs, s.Arcs)
	for k, v := range s.HeadOf {
		newSet.HeadOf[k] = v
	}
	for k, v := range s.SeenArc {
		newSet.SeenArc[k] = v
	}
	return newSet
}

func (s *ArcSetSimple) Equal(other ArcSet) bool {
	if s.Size() != other.Size() {
		return false
	}
	left, right := s.Sorted(), sortedArcs(other)
	for i := range left {
		if !left[i].Equal(right[i]) {
			return false
		}
	}
	return true
}

// Sorted returns the arcs ordered by head, then modifier
func (s *ArcSetSimple) Sorted() []*BasicDepArc {
	return sortedArcs(s)
}

// Contains reports whether every arc of other is in s
func (s *ArcSetSimple) Contains(other ArcSet) bool {
	for i := 0; i < other.Size(); i++ {
		arc := other.Index(i)
		if !s.HasArc(arc.Head, arc.Modifier) {
			return false
		}
	}
	return true
}

func (s *ArcSetSimple) String() string {
	return fmt.Sprintf("%v", s.Sorted())
}

func sortedArcs(set ArcSet) []*BasicDepArc {
	retval := make([]*BasicDepArc, set.Size())
	for i := range retval {
		retval[i] = set.Index(i)
	}
	sort.Slice(retval, func(i, j int) bool {
		if retval[i].Head == retval[j].Head {
			return retval[i].Modifier < retval[j].Modifier
		}
		return retval[i].Head < retval[j].Head
	})
	return retval
}

func NewArcSetSimple(size int) *ArcSetSimple {
	return &ArcSetSimple{
		Arcs:    make([]*BasicDepArc, 0, size),
		HeadOf:  make(map[int]int, size),
		SeenArc: make(map[[2]int]bool, size),
	}
}

// NewArcSetSimpleFromGold collects the gold tree's arcs over the given
// sentence, e.g. to compare a derivation against its reference.
func NewArcSetSimpleFromGold(sent nlp.Sentence, gold nlp.GoldTree) *ArcSetSimple {
	set := NewArcSetSimple(len(sent))
	for _, head := range sent {
		for _, mod := range sent {
			if gold.HasEdge(head.ID, mod.ID) {
				set.Add(&BasicDepArc{head.ID, mod.ID})
			}
		}
	}
	return set
}
