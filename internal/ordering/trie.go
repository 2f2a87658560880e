package ordering

import (
	"github.com/Kunalv272/StudentTracker/internal/domain/course"
	"github.com/Kunalv272/StudentTracker/internal/domain/student"
)

// The trie alphabet: 'a'..'z' in slots 0..25, and a separator bucket in slot
// 26 that absorbs spaces and every character outside the letters. Letters
// therefore sort before the separator, which places "Amitabh Bachchan" ahead
// of "Amit Kumar". Folding hyphens and punctuation into the separator bucket
// is lossy: names differing only in such characters are indistinguishable
// during descent, though all of them are still retained and returned. That
// folding is a deliberate compatibility choice, not a defect to fix here.
const (
	trieAlphabet   = 27
	separatorIndex = 26
)

// charIndex maps a name character to its trie slot, case-insensitively.
func charIndex(c rune) int {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	if c >= 'a' && c <= 'z' {
		return int(c - 'a')
	}
	return separatorIndex
}

// trieNode represents one character position in name-space. Students whose
// name terminates at the node are kept in insertion order, which is also the
// tie-break for identical normalized names.
type trieNode struct {
	children [trieAlphabet]*trieNode
	students []*student.Student
}

// NameTrie orders students by display name. It is a transient structure:
// built for one sort call, holding borrowed references only, and discarded
// afterwards. Nothing is cached across calls.
type NameTrie struct {
	root *trieNode
	size int
}

// NewNameTrie creates an empty name trie.
func NewNameTrie() *NameTrie {
	return &NameTrie{root: &trieNode{}}
}

// Insert walks the trie by each character of the student's name, creating
// child nodes as needed, and appends the student at the terminal node.
// O(len(name)).
func (t *NameTrie) Insert(s *student.Student) {
	cur := t.root
	for _, c := range s.Name() {
		idx := charIndex(c)
		if cur.children[idx] == nil {
			cur.children[idx] = &trieNode{}
		}
		cur = cur.children[idx]
	}
	cur.students = append(cur.students, s)
	t.size++
}

// Collect returns every inserted student in ascending name order under the
// trie alphabet: a preorder walk that emits a node's own students first, then
// recurses into children by increasing slot. Linear in nodes plus students.
func (t *NameTrie) Collect() []*student.Student {
	out := make([]*student.Student, 0, t.size)
	return collect(t.root, out)
}

func collect(node *trieNode, out []*student.Student) []*student.Student {
	if node == nil {
		return out
	}
	out = append(out, node.students...)
	for i := 0; i < trieAlphabet; i++ {
		out = collect(node.children[i], out)
	}
	return out
}

// SortByName returns a new snapshot of the course ordered by name,
// case-insensitively, with equal normalized names kept in insertion order.
// Equal-name records are deliberately NOT re-ordered by roll. An empty course
// yields an empty result.
func SortByName(c *course.Course) []*student.Student {
	trie := NewNameTrie()
	for _, s := range c.Snapshot() {
		trie.Insert(s)
	}
	return trie.Collect()
}
