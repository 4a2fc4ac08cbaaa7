package transition

import (
	"fmt"
	"strings"

	. "eagerparse/alg"
	. "eagerparse/alg/transition"
	nlp "eagerparse/nlp/types"
)

// SimpleConfiguration is an arc-eager parser state. Stack and Queue hold
// positions into Nodes; arcs are stored by token id.
//
// A configuration is never modified after it is returned from
// NewConfiguration or Apply, so holding on to earlier configurations
// (through Previous or otherwise) is always safe.
type SimpleConfiguration struct {
	Nodes            nlp.Sentence
	InternalStack    Stack
	InternalQueue    Queue
	InternalArcs     *ArcSetSimple
	InternalPrevious *SimpleConfiguration
	Last             Transition
}

// Verify that SimpleConfiguration is a Configuration
var _ Configuration = &SimpleConfiguration{}

// NewConfiguration places the sentence in the buffer and shifts the root
// onto the stack. The shift is part of initialization and is not recorded
// as a transition.
func NewConfiguration(sent nlp.Sentence) (*SimpleConfiguration, error) {
	c := new(SimpleConfiguration)
	if err := c.Init(sent); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *SimpleConfiguration) Init(sent nlp.Sentence) error {
	if len(sent) == 0 {
		return ErrEmptySentence
	}
	if !sent.HasRoot() {
		return fmt.Errorf("%w (first token is %#v)", ErrMissingRoot, sent[0])
	}
	sentLength := len(sent)
	// Nodes is always the same slice to the same token array
	c.Nodes = sent
	c.InternalStack = NewStackArray(sentLength)
	c.InternalQueue = NewQueueSlice(sentLength)
	c.InternalArcs = NewArcSetSimple(sentLength)
	for i := 0; i < sentLength; i++ {
		c.InternalQueue.Enqueue(i)
	}
	root, _ := c.InternalQueue.Dequeue()
	c.InternalStack.Push(root)
	c.Last = NO_TRANSITION
	c.InternalPrevious = nil
	return nil
}

func (c *SimpleConfiguration) Terminal() bool {
	return c.Queue().Size() == 0 && c.Stack().Size() == 1
}

func (c *SimpleConfiguration) Stack() Stack {
	return c.InternalStack
}

func (c *SimpleConfiguration) Queue() Queue {
	return c.InternalQueue
}

func (c *SimpleConfiguration) Arcs() *ArcSetSimple {
	return c.InternalArcs
}

// Copy returns an independent successor of c; it records c as its
// predecessor.
func (c *SimpleConfiguration) Copy() *SimpleConfiguration {
	return &SimpleConfiguration{
		Nodes:            c.Nodes,
		InternalStack:    c.Stack().Copy(),
		InternalQueue:    c.Queue().Copy(),
		InternalArcs:     c.Arcs().Copy().(*ArcSetSimple),
		InternalPrevious: c,
		Last:             c.Last,
	}
}

// StackTop is the token at the top of the stack (s)
func (c *SimpleConfiguration) StackTop() (nlp.Token, bool) {
	pos, exists := c.Stack().Peek()
	if !exists {
		return nlp.Token{}, false
	}
	return c.Nodes[pos], true
}

// BufferHead is the first token of the buffer (b)
func (c *SimpleConfiguration) BufferHead() (nlp.Token, bool) {
	pos, exists := c.Queue().Peek()
	if !exists {
		return nlp.Token{}, false
	}
	return c.Nodes[pos], true
}

// StackTokens lists the stack top first
func (c *SimpleConfiguration) StackTokens() []nlp.Token {
	retval := make([]nlp.Token, c.Stack().Size())
	for i := range retval {
		pos, _ := c.Stack().Index(i)
		retval[i] = c.Nodes[pos]
	}
	return retval
}

// BufferTokens lists the buffer head first
func (c *SimpleConfiguration) BufferTokens() []nlp.Token {
	retval := make([]nlp.Token, c.Queue().Size())
	for i := range retval {
		pos, _ := c.Queue().Index(i)
		retval[i] = c.Nodes[pos]
	}
	return retval
}

func (c *SimpleConfiguration) Previous() Configuration {
	if c.InternalPrevious == nil {
		return nil
	}
	return c.InternalPrevious
}

func (c *SimpleConfiguration) GetLastTransition() Transition {
	return c.Last
}

func (c *SimpleConfiguration) GetSequence() ConfigurationSequence {
	retval := make(ConfigurationSequence, 0, 2*len(c.Nodes))
	for currentConf := c; currentConf != nil; currentConf = currentConf.InternalPrevious {
		retval = append(retval, currentConf)
	}
	return retval
}

func (c *SimpleConfiguration) Len() int {
	if c == nil {
		return 0
	}
	length := 0
	for currentConf := c; currentConf != nil; currentConf = currentConf.InternalPrevious {
		length++
	}
	return length
}

// Head returns the assigned head id of the token with the given id
func (c *SimpleConfiguration) Head(id int) (int, bool) {
	return c.Arcs().Head(id)
}

// Heads maps every non-root token id to its assigned head; tokens that
// never received an arc are attached to the root.
func (c *SimpleConfiguration) Heads() map[int]int {
	heads := make(map[int]int, len(c.Nodes))
	for _, token := range c.Nodes {
		if token.IsRoot() {
			continue
		}
		head, exists := c.Arcs().Head(token.ID)
		if !exists {
			head = nlp.ROOT_ID
		}
		heads[token.ID] = head
	}
	return heads
}

func (c *SimpleConfiguration) NumberOfArcs() int {
	return c.Arcs().Size()
}

func (c *SimpleConfiguration) tokenByID(id int) (nlp.Token, bool) {
	if id >= 0 && id < len(c.Nodes) && c.Nodes[id].ID == id {
		return c.Nodes[id], true
	}
	for _, token := range c.Nodes {
		if token.ID == id {
			return token, true
		}
	}
	return nlp.Token{}, false
}

// OUTPUT FUNCTIONS

func (c *SimpleConfiguration) String() string {
	var transitionVal string
	if c.Last != NO_TRANSITION {
		transitionVal = TransitionString(c.Last)
	}
	return fmt.Sprintf("%s\t=>([%s],\t[%s],\t%s)",
		transitionVal, c.StringStack(), c.StringQueue(),
		c.StringArcs())
}

func (c *SimpleConfiguration) StringStack() string {
	stackSize := c.Stack().Size()
	switch {
	case stackSize > 0 && stackSize <= 3:
		stackStrings := make([]string, 0, 3)
		for i := stackSize - 1; i >= 0; i-- {
			atI, _ := c.Stack().Index(i)
			stackStrings = append(stackStrings, c.Nodes[atI].Word)
		}
		return strings.Join(stackStrings, ",")
	case stackSize > 3:
		headID, _ := c.Stack().Index(0)
		tailID, _ := c.Stack().Index(stackSize - 1)
		return strings.Join([]string{c.Nodes[tailID].Word, "...", c.Nodes[headID].Word}, ",")
	default:
		return ""
	}
}

func (c *SimpleConfiguration) StringQueue() string {
	queueSize := c.Queue().Size()
	switch {
	case queueSize > 0 && queueSize <= 3:
		queueStrings := make([]string, 0, 3)
		for i := 0; i < queueSize; i++ {
			atI, _ := c.Queue().Index(i)
			queueStrings = append(queueStrings, c.Nodes[atI].Word)
		}
		return strings.Join(queueStrings, ",")
	case queueSize > 3:
		headID, _ := c.Queue().Index(0)
		tailID, _ := c.Queue().Index(queueSize - 1)
		return strings.Join([]string{c.Nodes[headID].Word, "...", c.Nodes[tailID].Word}, ",")
	default:
		return ""
	}
}

func (c *SimpleConfiguration) StringArcs() string {
	numArcs := c.Arcs().Size()
	switch c.Last {
	case LEFT_ARC, RIGHT_ARC:
		lastArc := c.Arcs().Last()
		head, _ := c.tokenByID(lastArc.Head)
		mod, _ := c.tokenByID(lastArc.Modifier)
		arcStr := fmt.Sprintf("(%s,%s)", head.Word, mod.Word)
		return fmt.Sprintf("A%d=A%d+{%s}", numArcs, numArcs-1, arcStr)
	default:
		return fmt.Sprintf("A%d", numArcs)
	}
}
