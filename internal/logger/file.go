package logger

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// the first log line carries the attachment that names the backup of
// this file on the next start, the game engine writes its own log the
// same way
const (
	backupNameKey = `BackupNameAttachment="`
	backupDirName = "LogBackups"
)

// File is a logger that writes prefixed lines to a log file and
// mirrors them to an optional second writer, usually the console.
// Opening backs up an existing file before it is truncated.
type File struct {
	level  Level
	file   *os.File
	mirror io.Writer

	mu sync.Mutex
}

// NewFile is used to create a file logger. Lines below lv are
// dropped, mirror can be nil.
func NewFile(path string, lv Level, mirror io.Writer) (*File, error) {
	err := backupLogFile(path)
	if err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to open log file")
	}
	now := time.Now()
	_, err = fmt.Fprintf(file, "%s-%s\" -- used by the backup system\n",
		backupNameKey, now.Format("2006-01-02_15-04-05"))
	if err != nil {
		_ = file.Close()
		return nil, errors.WithMessage(err, "failed to write log file header")
	}
	fl := File{
		level:  lv,
		file:   file,
		mirror: mirror,
	}
	return &fl, nil
}

// backupLogFile moves an old log file into the backup directory, the
// attachment parsed from its header line becomes part of the name.
func backupLogFile(path string) error {
	data, err := ioutil.ReadFile(path) // #nosec
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.WithMessage(err, "failed to read old log file")
	}
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)

	backupDir := filepath.Join(dir, backupDirName)
	err = os.MkdirAll(backupDir, 0755)
	if err != nil {
		return errors.WithMessage(err, "failed to create log backup directory")
	}
	backup := filepath.Join(backupDir, name+parseBackupName(data)+ext)
	err = os.Rename(path, backup)
	if err != nil {
		return errors.WithMessage(err, "failed to back up old log file")
	}
	return nil
}

func parseBackupName(data []byte) string {
	idx := bytes.Index(data, []byte(backupNameKey))
	if idx != 0 {
		return ""
	}
	rest := data[len(backupNameKey):]
	end := bytes.IndexByte(rest, '"')
	if end < 1 {
		return ""
	}
	return string(rest[:end])
}

// SetLevel is used to change the log level of the file logger.
func (f *File) SetLevel(lv Level) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.level = lv
}

// Close is used to close the log file, the logger drops every line
// afterwards.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.level = Off
	return f.file.Close()
}

func (f *File) write(lv Level, src string, buf *bytes.Buffer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if lv < f.level || f.level == Off {
		return
	}
	buf.WriteString("\n")
	_, _ = f.file.Write(buf.Bytes())
	if f.mirror != nil {
		_, _ = f.mirror.Write(buf.Bytes())
	}
}

// Printf implements the Logger interface.
func (f *File) Printf(lv Level, src, format string, log ...interface{}) {
	buf := Prefix(time.Now(), lv, src)
	_, _ = fmt.Fprintf(buf, format, log...)
	f.write(lv, src, buf)
}

// Print implements the Logger interface.
func (f *File) Print(lv Level, src string, log ...interface{}) {
	buf := Prefix(time.Now(), lv, src)
	_, _ = fmt.Fprint(buf, log...)
	f.write(lv, src, buf)
}

// Println implements the Logger interface.
func (f *File) Println(lv Level, src string, log ...interface{}) {
	buf := Prefix(time.Now(), lv, src)
	_, _ = fmt.Fprint(buf, fmt.Sprintln(log...))
	buf.Truncate(buf.Len() - 1)
	f.write(lv, src, buf)
}
