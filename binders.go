package optmatch

import (
	"regexp"
	"strconv"
)

// The typed helpers below build table entries for the common flag shapes so
// callers only write a regular expression when they need one. The name is the
// bare flag name without dashes; it is quoted before being embedded in the
// pattern, so names containing regex metacharacters are safe.

// StringOpt recognises --name=<value> and stores the value.
func StringOpt(name, help string, dst *string) Opt {
	return NewOpt(`--`+regexp.QuoteMeta(name)+`=(.*)`, help, func(groups []string) {
		*dst = groups[1]
	})
}

// BoolOpt recognises the bare flag --name and sets dst to true.
func BoolOpt(name, help string, dst *bool) Opt {
	return NewOpt(`--`+regexp.QuoteMeta(name), help, func(groups []string) {
		*dst = true
	})
}

// Numeric binders cap the value at 18 digits so the conversion below cannot
// overflow a 64-bit int. A longer run of digits simply fails the pattern and
// lands on the unrecognised-option diagnostic like any other malformed value.
const digits = `([0-9]{1,18})`

// IntOpt recognises --name=<digits> and stores the number. Tokens with a
// non-numeric or out-of-range value do not match the pattern and fall through
// to the unrecognised-option diagnostic.
func IntOpt(name, help string, dst *int) Opt {
	return NewOpt(`--`+regexp.QuoteMeta(name)+`=`+digits, help, func(groups []string) {
		*dst, _ = strconv.Atoi(groups[1])
	})
}

// DimensionsOpt recognises --name=<W>x<H> and stores both numbers, for flags
// like --screen=1280x1024.
func DimensionsOpt(name, help string, width, height *int) Opt {
	return NewOpt(`--`+regexp.QuoteMeta(name)+`=`+digits+`x`+digits, help, func(groups []string) {
		*width, _ = strconv.Atoi(groups[1])
		*height, _ = strconv.Atoi(groups[2])
	})
}
