package hexword

import (
	"fmt"

	"github.com/ezrec/img2hex/translate"
)

var f = translate.From

// ErrShortTail indicates an image whose length is not a multiple of the
// word size.
type ErrShortTail struct {
	Offset int
	Length int
}

func (err *ErrShortTail) Error() string {
	return f("offset %v: %v trailing bytes do not complete a word", fmt.Sprintf("%#x", err.Offset), err.Length)
}

// ErrFileAccess indicates an image file that could not be read.
type ErrFileAccess struct {
	Path string
	Err  error
}

func (err *ErrFileAccess) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrFileAccess) Unwrap() error {
	return err.Err
}

// ErrTailPolicy indicates an unknown tail policy name or value.
type ErrTailPolicy string

func (err ErrTailPolicy) Error() string {
	return f("'%v' is not a tail policy", string(err))
}
