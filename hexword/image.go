package hexword

import (
	"bufio"
	"io"
	"iter"
	"os"
	"slices"

	"github.com/ezrec/img2hex/internal"
)

// HEADER is the load address marker preceding the words of a dump.
const HEADER = "@1000"

// ReadFile reads the whole image at path. Bytes are returned untranslated.
func ReadFile(path string) (data []byte, err error) {
	inf, err := os.Open(path)
	if err != nil {
		err = &ErrFileAccess{Path: path, Err: err}
		return
	}
	defer inf.Close()

	data, err = io.ReadAll(inf)
	if err != nil {
		err = &ErrFileAccess{Path: path, Err: err}
		data = nil
	}

	return
}

// Words returns an iterator of the image offset and value of each word,
// in image order. A partial final word is only yielded for TAIL_PAD.
func Words(data []byte, tail TailPolicy) iter.Seq2[int, Word] {
	return func(yield func(offset int, word Word) bool) {
		offset := 0
		for ; offset+WORD_SIZE <= len(data); offset += WORD_SIZE {
			if !yield(offset, MakeWord(data[offset:offset+WORD_SIZE])) {
				return
			}
		}

		if offset < len(data) && tail == TAIL_PAD {
			yield(offset, MakeWord(data[offset:]))
		}
	}
}

// Tail checks the trailing bytes of the image against the policy.
func Tail(data []byte, tail TailPolicy) (err error) {
	err = tail.Check()
	if err != nil {
		return
	}

	remain := len(data) % WORD_SIZE
	if remain != 0 && tail == TAIL_FAULT {
		err = &ErrShortTail{Offset: len(data) - remain, Length: remain}
	}

	return
}

// Lines returns an iterator of the dump lines: HEADER, then one line per word.
func Lines(data []byte, tail TailPolicy) iter.Seq[string] {
	return internal.IterSeqConcat(
		internal.IterSeqOf(HEADER),
		internal.IterSeq2Values(Words(data, tail), Word.String),
	)
}

// Convert returns the dump lines of the image.
// For TAIL_FAULT with trailing bytes, the lines of all complete words are
// returned along with an *ErrShortTail.
func Convert(data []byte, tail TailPolicy) (lines []string, err error) {
	err = tail.Check()
	if err != nil {
		return
	}

	lines = slices.Collect(Lines(data, tail))
	err = Tail(data, tail)
	return
}

// Dump writes the dump lines of the image to w, and returns the number of
// words written. Errors are as for Convert.
func Dump(w io.Writer, data []byte, tail TailPolicy) (count int, err error) {
	err = tail.Check()
	if err != nil {
		return
	}

	out := bufio.NewWriter(w)

	for line := range Lines(data, tail) {
		_, err = out.WriteString(line + "\n")
		if err != nil {
			return
		}
		if line != HEADER {
			count++
		}
	}

	err = out.Flush()
	if err != nil {
		return
	}

	err = Tail(data, tail)
	return
}
