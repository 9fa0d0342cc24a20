// Package audio derives pronunciation audio file names and plays them.
package audio

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jask/hanzicards/internal/catalog"
)

// Stem returns the audio file name stem for an entry. An explicit tone-free
// pronunciation wins over the one derived from Pronunciation.
func Stem(v catalog.VocabEntry) string {
	src := v.PronunciationWithoutTone
	if src == "" {
		src = v.Pronunciation
	}
	return StemOf(src)
}

// StemOf turns a pronunciation string into a file name stem:
// "Nǐ hǎo" becomes "ni-hao".
func StemOf(pronunciation string) string {
	s := stripMarks(pronunciation)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), "-")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stripMarks(s string) string {
	// transform.Chain keeps state, so build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Path joins the audio directory with stem and extension. It returns "" for
// an empty stem.
func Path(dir, stem, ext string) string {
	if stem == "" {
		return ""
	}
	return filepath.Join(dir, stem+ext)
}
