package atlas

import "strconv"

// Returned when an atlas file can't be opened or read.
// The underlying error is available through errors.Unwrap,
// so errors.Is(err, fs.ErrNotExist) works as expected.
type IOError struct {
	Path string
	Err error
}

func (self *IOError) Error() string {
	return "atlas: failed to read '" + self.Path + "': " + self.Err.Error()
}

func (self *IOError) Unwrap() error { return self.Err }

// Returned when the atlas bitmap header is malformed or inconsistent
// with the file contents. Field names the offending header field, and
// Value and Expected give context when relevant (Expected may be empty).
type DecodeError struct {
	Field string
	Value uint32
	Expected string
}

func (self *DecodeError) Error() string {
	msg := "atlas: invalid " + self.Field + " (" + strconv.FormatUint(uint64(self.Value), 10) + ")"
	if self.Expected != "" { msg += ", expected " + self.Expected }
	return msg
}
