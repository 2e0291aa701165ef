// +build 386

package arch

// Current is the architecture variant this program is compiled for.
const Current = I386
