package random

import (
	cr "crypto/rand"
	"io"
	"math/rand"
	"sync"
	"time"

	"crylauncher/internal/convert"
)

var gRand *Rand

func init() {
	gRand = New(0)
}

// Rand is a goroutine safe pseudo random generator.
type Rand struct {
	rand *rand.Rand
	m    sync.Mutex
}

// New is used to create a generator, seed zero selects a seed from
// crypto/rand or the clock.
func New(seed int64) *Rand {
	if seed == 0 {
		b := make([]byte, 8)
		_, err := io.ReadFull(cr.Reader, b)
		if err == nil {
			seed = int64(convert.BEBytesToUint64(b))
		} else {
			seed = time.Now().UnixNano()
		}
	}
	return &Rand{
		rand: rand.New(rand.NewSource(seed)), // #nosec
	}
}

// Bytes is used to generate random []byte with length n.
func (r *Rand) Bytes(n int) []byte {
	if n < 1 {
		return nil
	}
	result := make([]byte, n)
	for i := 0; i < n; i++ {
		r.m.Lock()
		ri := r.rand.Intn(256)
		r.m.Unlock()
		result[i] = byte(ri)
	}
	return result
}

// String is used to generate a random string with length n, printable
// characters only.
func (r *Rand) String(n int) string {
	if n < 1 {
		return ""
	}
	result := make([]rune, n)
	for i := 0; i < n; i++ {
		r.m.Lock()
		ri := r.rand.Intn(90)
		r.m.Unlock()
		result[i] = rune(33 + ri)
	}
	return string(result)
}

// Int is used to generate a random int in [0, n).
func (r *Rand) Int(n int) int {
	if n < 1 {
		return 0
	}
	r.m.Lock()
	defer r.m.Unlock()
	return r.rand.Intn(n)
}

// Bytes is used to generate random []byte with the global generator.
func Bytes(n int) []byte {
	return gRand.Bytes(n)
}

// String is used to generate a random string with the global generator.
func String(n int) string {
	return gRand.String(n)
}

// Int is used to generate a random int with the global generator.
func Int(n int) int {
	return gRand.Int(n)
}
