// +build amd64

package arch

// Current is the architecture variant this program is compiled for.
const Current = AMD64
