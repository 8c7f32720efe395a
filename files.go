package main

import (
	"os"
)

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	return err == nil, err
}
