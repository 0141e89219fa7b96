package utils

import (
	"os"

	"github.com/mitchellh/go-homedir"
)

// ExpandPath resolves a leading ~ against the current user's home.
func ExpandPath(path string) (string, error) {
	return homedir.Expand(path)
}

func PathExists(path string) bool {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false
	} else if err != nil {
		return false //?
	}
	return true
}
