package dic

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/hunlex/pkg/aff"
)

// Compiled-dictionary cache: a msgpack stream holding the parsed entries
// so repeat startups skip line parsing. Replacement patterns registered
// during parsing live on the ruleset and are carried alongside the
// entries.

const (
	compiledMagic   = "HLDC"
	compiledVersion = 1
)

type compiledHeader struct {
	Magic        string           `msgpack:"m"`
	Version      int              `msgpack:"v"`
	Count        int              `msgpack:"c"`
	Replacements []aff.RepPattern `msgpack:"r,omitempty"`
}

type compiledEntry struct {
	Stem         string              `msgpack:"s"`
	Flags        []string            `msgpack:"f,omitempty"`
	Data         map[string][]string `msgpack:"d,omitempty"`
	AltSpellings []string            `msgpack:"a,omitempty"`
}

// WriteCompiled encodes the dictionary to w, entries sorted by stem for a
// reproducible file.
func (d *Dic) WriteCompiled(w io.Writer) error {
	enc := msgpack.NewEncoder(w)

	header := compiledHeader{
		Magic:        compiledMagic,
		Version:      compiledVersion,
		Count:        len(d.words),
		Replacements: d.rules.Replacements,
	}
	if err := enc.Encode(header); err != nil {
		return fmt.Errorf("compiled dictionary header: %w", err)
	}

	sorted := d.Words()
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Stem < sorted[j].Stem })

	for _, word := range sorted {
		entry := compiledEntry{
			Stem:         word.Stem,
			Data:         word.Data,
			AltSpellings: word.AltSpellings,
		}
		for _, f := range word.Flags.Sorted() {
			entry.Flags = append(entry.Flags, string(f))
		}
		if err := enc.Encode(entry); err != nil {
			return fmt.Errorf("compiled entry %q: %w", word.Stem, err)
		}
	}
	log.Debugf("Compiled dictionary written: %d entries", len(sorted))
	return nil
}

// ReadCompiled decodes a compiled dictionary from r into a fresh Dic
// bound to rules. Capitalization types are re-derived through the
// ruleset; recorded replacement patterns are appended to it.
func ReadCompiled(r io.Reader, rules *aff.Aff) (*Dic, error) {
	dec := msgpack.NewDecoder(r)

	var header compiledHeader
	if err := dec.Decode(&header); err != nil {
		return nil, fmt.Errorf("compiled dictionary header: %w", err)
	}
	if header.Magic != compiledMagic {
		return nil, fmt.Errorf("not a compiled dictionary (magic %q)", header.Magic)
	}
	if header.Version != compiledVersion {
		return nil, fmt.Errorf("unsupported compiled dictionary version %d", header.Version)
	}

	d := New(rules)
	for _, rep := range header.Replacements {
		rules.AddReplacement(rep.From, rep.To)
	}

	for i := 0; i < header.Count; i++ {
		var entry compiledEntry
		if err := dec.Decode(&entry); err != nil {
			return nil, fmt.Errorf("compiled entry %d/%d: %w", i+1, header.Count, err)
		}
		word := &Word{
			Stem:         entry.Stem,
			CapType:      rules.Classify(entry.Stem),
			Data:         entry.Data,
			AltSpellings: entry.AltSpellings,
			rules:        rules,
		}
		if len(entry.Flags) > 0 {
			flags := aff.NewFlagSet()
			for _, f := range entry.Flags {
				flags.Add(aff.Flag(f))
			}
			word.Flags = flags
		}
		d.Add(word)
	}
	log.Debugf("Compiled dictionary read: %d entries", d.Len())
	return d, nil
}
