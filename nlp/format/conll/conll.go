// Package conll reads and writes CoNLL-X dependency files.
// For a description see http://ilk.uvt.nl/conll/#dataformat
package conll

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	nlp "eagerparse/nlp/types"
)

const (
	FIELD_SEPARATOR = "\t"
	NUM_FIELDS      = 10
	EMPTY_FIELD     = "_"

	// NO_HEAD marks a row whose HEAD field is empty
	NO_HEAD = -1
)

var ErrMalformedRow = errors.New("malformed conll row")

// A Row is a single parsed row of a conll data set. Fields the parser
// does not use are carried verbatim so they survive a round trip.
type Row struct {
	ID      int
	Form    string
	Lemma   string
	CPosTag string
	PosTag  string
	Feats   string
	Head    int
	DepRel  string
	PHead   string
	PDepRel string
}

func (r Row) HasHead() bool {
	return r.Head != NO_HEAD
}

func (r Row) String() string {
	head := EMPTY_FIELD
	if r.HasHead() {
		head = strconv.Itoa(r.Head)
	}
	fields := []string{
		strconv.Itoa(r.ID),
		r.Form,
		FormatString(r.Lemma),
		FormatString(r.CPosTag),
		FormatString(r.PosTag),
		FormatString(r.Feats),
		head,
		FormatString(r.DepRel),
		FormatString(r.PHead),
		FormatString(r.PDepRel),
	}
	return strings.Join(fields, FIELD_SEPARATOR)
}

// A Sentence is the rows of one sentence in file order
type Sentence []Row

type Sentences []Sentence

// Tokens returns the sentence as parser input: the root token followed by
// one token per row. The tag is taken from CPOSTAG.
func (s Sentence) Tokens() nlp.Sentence {
	tokens := make(nlp.Sentence, 0, len(s)+1)
	tokens = append(tokens, nlp.NewRootToken())
	for _, row := range s {
		tokens = append(tokens, nlp.Token{ID: row.ID, Word: row.Form, POS: row.CPosTag})
	}
	return tokens
}

// GoldTree builds the reference tree from the HEAD column; rows without a
// head contribute no edge.
func (s Sentence) GoldTree() *nlp.BasicGoldTree {
	gold := nlp.NewBasicGoldTree(len(s) + 1)
	for _, row := range s {
		if row.HasHead() {
			gold.AddEdge(row.Head, row.ID)
		}
	}
	return gold
}

// Heads maps every row id to its HEAD; rows without a head are omitted
func (s Sentence) Heads() map[int]int {
	heads := make(map[int]int, len(s))
	for _, row := range s {
		if row.HasHead() {
			heads[row.ID] = row.Head
		}
	}
	return heads
}

// WithHeads returns a copy of the sentence carrying predicted heads. Rows
// missing from heads are attached to the root; DEPREL, PHEAD and PDEPREL
// are cleared.
func (s Sentence) WithHeads(heads map[int]int) Sentence {
	retval := make(Sentence, len(s))
	for i, row := range s {
		head, exists := heads[row.ID]
		if !exists {
			head = nlp.ROOT_ID
		}
		row.Head = head
		row.DepRel, row.PHead, row.PDepRel = "", "", ""
		retval[i] = row
	}
	return retval
}

func ParseInt(value string) (int, error) {
	if value == EMPTY_FIELD {
		return 0, nil
	}
	i, err := strconv.ParseInt(value, 10, 0)
	return int(i), err
}

func ParseString(value string) string {
	if value == EMPTY_FIELD {
		return ""
	}
	return value
}

func FormatString(value string) string {
	if value == "" {
		return EMPTY_FIELD
	}
	return value
}

func ParseRow(record []string) (Row, error) {
	var row Row
	if len(record) != NUM_FIELDS {
		return row, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRow, NUM_FIELDS, len(record))
	}
	id, err := strconv.Atoi(record[0])
	if err != nil || id <= 0 {
		return row, fmt.Errorf("%w: error parsing ID field (%s)", ErrMalformedRow, record[0])
	}
	row.ID = id

	form := ParseString(record[1])
	if form == "" {
		return row, fmt.Errorf("%w: empty FORM field", ErrMalformedRow)
	}
	row.Form = form
	row.Lemma = ParseString(record[2])
	row.CPosTag = ParseString(record[3])
	row.PosTag = ParseString(record[4])
	row.Feats = ParseString(record[5])

	if record[6] == EMPTY_FIELD {
		row.Head = NO_HEAD
	} else {
		head, err := ParseInt(record[6])
		if err != nil || head < 0 {
			return row, fmt.Errorf("%w: error parsing HEAD field (%s)", ErrMalformedRow, record[6])
		}
		row.Head = head
	}

	row.DepRel = ParseString(record[7])
	row.PHead = ParseString(record[8])
	row.PDepRel = ParseString(record[9])
	return row, nil
}

// Read parses sentences separated by blank lines. A limit above 0 stops
// reading after that many sentences.
func Read(reader io.Reader, limit int) (Sentences, error) {
	var (
		sentences   Sentences
		currentSent Sentence
	)
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			if len(currentSent) > 0 {
				sentences = append(sentences, currentSent)
				currentSent = nil
				if limit > 0 && len(sentences) >= limit {
					return sentences, nil
				}
			}
			continue
		}
		row, err := ParseRow(strings.Split(line, FIELD_SEPARATOR))
		if err != nil {
			return nil, fmt.Errorf("line %d (sentence %d): %w", lineNum, len(sentences)+1, err)
		}
		if row.ID != len(currentSent)+1 {
			return nil, fmt.Errorf("line %d (sentence %d): %w: expected ID %d, got %d",
				lineNum, len(sentences)+1, ErrMalformedRow, len(currentSent)+1, row.ID)
		}
		currentSent = append(currentSent, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failure reading conll: %w", err)
	}
	if len(currentSent) > 0 {
		sentences = append(sentences, currentSent)
	}
	return sentences, nil
}

func ReadFile(filename string, limit int) (Sentences, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file, limit)
}

func Write(writer io.Writer, sents []Sentence) error {
	bufWriter := bufio.NewWriter(writer)
	for _, sent := range sents {
		for _, row := range sent {
			if _, err := bufWriter.WriteString(row.String() + "\n"); err != nil {
				return err
			}
		}
		if err := bufWriter.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bufWriter.Flush()
}

func WriteFile(filename string, sents []Sentence) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return Write(file, sents)
}
