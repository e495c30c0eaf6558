package hexword

// TailPolicy selects the handling of trailing bytes that do not complete
// a word.
type TailPolicy int

//go:generate go tool stringer -linecomment -type=TailPolicy
const (
	TAIL_FAULT = TailPolicy(0) // fault
	TAIL_DROP  = TailPolicy(1) // drop
	TAIL_PAD   = TailPolicy(2) // pad
)

// ParseTailPolicy returns the policy with the given name.
func ParseTailPolicy(name string) (tail TailPolicy, err error) {
	for tail = TAIL_FAULT; tail <= TAIL_PAD; tail++ {
		if tail.String() == name {
			return
		}
	}

	return TAIL_FAULT, ErrTailPolicy(name)
}

// Check returns an ErrTailPolicy for values outside the defined policies.
func (tail TailPolicy) Check() (err error) {
	if tail < TAIL_FAULT || tail > TAIL_PAD {
		err = ErrTailPolicy(tail.String())
	}

	return
}
