package system

import (
	"fmt"
	"os"
	"path/filepath"
)

// ChangeCurrentDirectory is used to changed path for service program
// and prevent to get invalid path when running test.
func ChangeCurrentDirectory() error {
	path, err := os.Executable()
	if err != nil {
		return err
	}
	return os.Chdir(filepath.Dir(path))
}

// CheckError is used to check error before the logger is usable, if
// the error is not nil, it prints it and exits.
func CheckError(err error) {
	if err != nil {
		PrintError(err.Error())
	}
}

// PrintError is used to print an error and exit the program.
func PrintError(err string) {
	fmt.Println(err)
	os.Exit(1)
}
