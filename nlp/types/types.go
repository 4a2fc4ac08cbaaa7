package types

import (
	"fmt"

	"eagerparse/util"
)

const (
	ROOT_ID    = 0
	ROOT_TOKEN = "*root*"
	ROOT_POS   = "*root*"
)

// A Token is a single sentence position. Tokens are values and
// are never modified once a sentence has been built.
type Token struct {
	ID   int
	Word string
	POS  string
}

var _ util.Equaler = Token{}

func (t Token) IsRoot() bool {
	return t.ID == ROOT_ID
}

func (t Token) String() string {
	return t.Word
}

func (t Token) Equal(otherEq util.Equaler) bool {
	other, ok := otherEq.(Token)
	return ok && other == t
}

func (t Token) GoString() string {
	return fmt.Sprintf("%d:%s/%s", t.ID, t.Word, t.POS)
}

func NewRootToken() Token {
	return Token{ROOT_ID, ROOT_TOKEN, ROOT_POS}
}

// Sentence is an ordered token sequence, root first
type Sentence []Token

func (s Sentence) Tokens() []string {
	retval := make([]string, len(s))
	for i, token := range s {
		retval[i] = token.Word
	}
	return retval
}

func (s Sentence) HasRoot() bool {
	return len(s) > 0 && s[0].IsRoot()
}

// NewSentence builds a rooted sentence from parallel word and tag slices;
// ids are assigned by position starting at 1.
func NewSentence(words, tags []string) Sentence {
	sent := make(Sentence, 1, len(words)+1)
	sent[0] = NewRootToken()
	for i, word := range words {
		var pos string
		if i < len(tags) {
			pos = tags[i]
		}
		sent = append(sent, Token{i + 1, word, pos})
	}
	return sent
}
