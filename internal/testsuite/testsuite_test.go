package testsuite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytes(t *testing.T) {
	testdata := Bytes()
	require.Len(t, testdata, 256)
	require.Equal(t, byte(0), testdata[0])
	require.Equal(t, byte(255), testdata[255])
}

func TestIsDestroyed(t *testing.T) {
	object := new(int)
	*object = 153
	IsDestroyed(t, object)
}

func TestMarkGoroutines(t *testing.T) {
	mark := MarkGoroutines(t)
	mark.Compare()
}
