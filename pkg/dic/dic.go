/*
Package dic implements the dictionary side of the word model: entry parsing
with affix cross-product form generation, and the in-memory index answering
homonym and flag-membership queries for the lookup engine.

The index is built once (or mutated incrementally through Add and Remove)
and then read repeatedly. Mutation is not safe against concurrent reads;
hosts embedding the index in a multi-threaded setting must serialize
writes externally. Parsed entries themselves are immutable and safe to
share.
*/
package dic

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/bastiangx/hunlex/pkg/aff"
)

// skipRe matches lines a bulk load ignores: blanks and the leading
// word-count header of a .dic file.
var skipRe = regexp.MustCompile(`^\s*\d*\s*$`)

// slot holds the index value for one stem: a single entry for the common
// case, promoted to a slice on the first collision. Semantically it is
// always "one or more entries"; the split exists to save a slice
// allocation per unique stem.
type slot struct {
	one  *Word
	many []*Word
}

func (s slot) entries() []*Word {
	if s.many != nil {
		return s.many
	}
	return []*Word{s.one}
}

// Dic owns the set of dictionary entries and indexes them by exact stem
// and by every lowercase variant of non-lowercase stems. It shares the
// ruleset by reference and never copies it.
type Dic struct {
	rules *aff.Aff

	words     []*Word
	index     map[string]slot
	lowercase map[string][]*Word

	// stems mirrors the index keys for prefix queries feeding the
	// suggestion engine's candidate enumeration.
	stems *patricia.Trie
}

// New returns an empty dictionary bound to rules.
func New(rules *aff.Aff) *Dic {
	return &Dic{
		rules:     rules,
		index:     make(map[string]slot),
		lowercase: make(map[string][]*Word),
		stems:     patricia.NewTrie(),
	}
}

// Rules returns the shared ruleset.
func (d *Dic) Rules() *aff.Aff { return d.rules }

// Len is the number of entries currently held.
func (d *Dic) Len() int { return len(d.words) }

// Words returns a fresh slice of all entries.
func (d *Dic) Words() []*Word {
	out := make([]*Word, len(d.words))
	copy(out, d.words)
	return out
}

// AddDictionary parses and adds every line from src until it is
// exhausted, skipping blanks and the leading count line. A malformed line
// aborts the load with an error; there is no best-effort mode, callers
// pre-filter input if they want one.
func (d *Dic) AddDictionary(src LineSource) error {
	added := 0
	for !src.Exhausted() {
		line := src.Line()
		src.Advance()
		if skipRe.MatchString(line) {
			continue
		}
		w, err := ParseWord(line, d.rules)
		if err != nil {
			return fmt.Errorf("dictionary load: %w", err)
		}
		d.Add(w)
		added++
	}
	log.Debugf("Dictionary load done: %d entries added, %d total", added, len(d.words))
	return nil
}

// Add inserts w into the entry set, the exact-stem index and, when the
// stem is not pure lowercase, the lowercase index under every lowered
// variant.
func (d *Dic) Add(w *Word) {
	d.words = append(d.words, w)

	if cur, ok := d.index[w.Stem]; ok {
		if cur.many != nil {
			cur.many = append(cur.many, w)
		} else {
			cur.many = []*Word{cur.one, w}
			cur.one = nil
		}
		d.index[w.Stem] = cur
	} else {
		d.index[w.Stem] = slot{one: w}
	}

	if w.CapType != aff.CapNone {
		for _, variant := range d.rules.Lower(w.Stem) {
			d.lowercase[variant] = append(d.lowercase[variant], w)
		}
	}

	d.stems.Set(patricia.Prefix(w.Stem), len(d.index[w.Stem].entries()))
}

// Remove drops every homonym of stem (exact and case-folded) from the
// entry set, deletes the exact index key and every lowercase-index key
// derived from stem. Unknown stems are a no-op.
func (d *Dic) Remove(stem string) {
	doomed := d.Homonyms(stem, true)
	if len(doomed) == 0 {
		return
	}

	gone := make(map[*Word]struct{}, len(doomed))
	for _, w := range doomed {
		gone[w] = struct{}{}
	}
	kept := d.words[:0]
	for _, w := range d.words {
		if _, drop := gone[w]; !drop {
			kept = append(kept, w)
		}
	}
	d.words = kept

	delete(d.index, stem)
	for _, variant := range d.rules.Lower(stem) {
		delete(d.lowercase, variant)
	}
	d.stems.Delete(patricia.Prefix(stem))
}

// Homonyms returns a fresh, independently mutable slice of every entry
// indexed under stem. With ignoreCase it also unions in entries reachable
// through any lowercase variant of stem.
func (d *Dic) Homonyms(stem string, ignoreCase bool) []*Word {
	var out []*Word
	if s, ok := d.index[stem]; ok {
		out = append(out, s.entries()...)
	}
	if !ignoreCase {
		return out
	}
	seen := make(map[*Word]struct{}, len(out))
	for _, w := range out {
		seen[w] = struct{}{}
	}
	for _, variant := range d.rules.Lower(stem) {
		for _, w := range d.lowercase[variant] {
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}

// HasFlag reports whether homonyms of stem carry f: any homonym by
// default, every homonym (at least one) when all is set. An empty flag or
// unknown stem answers false, never an error.
func (d *Dic) HasFlag(stem string, f aff.Flag, all bool) bool {
	if f == "" {
		return false
	}
	homonyms := d.Homonyms(stem, false)
	if all {
		if len(homonyms) == 0 {
			return false
		}
		for _, w := range homonyms {
			if !w.HasFlag(f) {
				return false
			}
		}
		return true
	}
	for _, w := range homonyms {
		if w.HasFlag(f) {
			return true
		}
	}
	return false
}

// StemsWithPrefix returns every indexed stem starting with prefix, in
// lexical order. This is the candidate channel a suggestion engine walks
// when enumerating completion or ngram candidates.
func (d *Dic) StemsWithPrefix(prefix string) []string {
	var out []string
	err := d.stems.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		out = append(out, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting stem trie: %v", err)
	}
	sort.Strings(out)
	return out
}
