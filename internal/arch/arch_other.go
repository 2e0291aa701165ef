// +build !386,!amd64

package arch

// Current is the architecture variant this program is compiled for.
// This program can only patch x86 machine code, on other processors
// the variant must be selected explicitly.
const Current = Invalid
