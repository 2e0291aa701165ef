package logger

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	testPrintF  = "test format %s %s"
	testPrint   = "test print"
	testPrintLn = "test println"
	testSrc     = "test src"
	testLog1    = "test"
	testLog2    = "log"
)

func TestParse(t *testing.T) {
	for _, testdata := range []struct {
		name  string
		level Level
	}{
		{"debug", Debug},
		{"info", Info},
		{"warning", Warning},
		{"error", Error},
		{"fatal", Fatal},
		{"off", Off},
	} {
		t.Run(testdata.name, func(t *testing.T) {
			l, err := Parse(testdata.name)
			require.NoError(t, err)
			require.Equal(t, l, testdata.level)
		})
	}

	t.Run("invalid level", func(t *testing.T) {
		l, err := Parse("invalid level")
		require.Error(t, err)
		require.Equal(t, l, Debug)
	})
}

func TestPrefix(t *testing.T) {
	for lv := Level(0); lv < Off; lv++ {
		fmt.Println(Prefix(time.Now(), lv, testSrc).String())
	}
	// unknown level
	fmt.Println(Prefix(time.Now(), Level(153), testSrc).String())
}

func TestLogger(t *testing.T) {
	Common.Printf(Debug, testSrc, testPrintF, testLog1, testLog2)
	Common.Print(Debug, testSrc, testPrint, testLog1, testLog2)
	Common.Println(Debug, testSrc, testPrintLn, testLog1, testLog2)

	Test.Printf(Debug, testSrc, testPrintF, testLog1, testLog2)
	Test.Print(Debug, testSrc, testPrint, testLog1, testLog2)
	Test.Println(Debug, testSrc, testPrintLn, testLog1, testLog2)

	Discard.Printf(Debug, testSrc, testPrintF, testLog1, testLog2)
	Discard.Print(Debug, testSrc, testPrint, testLog1, testLog2)
	Discard.Println(Debug, testSrc, testPrintLn, testLog1, testLog2)
}

func TestWrap(t *testing.T) {
	l := Wrap(Debug, "test wrap", Test)
	l.Println("Println")
}

func TestHijackLogWriter(t *testing.T) {
	defer func() {
		log.SetFlags(log.LstdFlags)
		log.SetOutput(os.Stderr)
	}()
	HijackLogWriter(Test)
	log.Println("Println")
}
