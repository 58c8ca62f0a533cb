package test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Test runs the specs of the calling package as a suite named after the package directory
func Test(t *testing.T) {
	RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, callerSuiteName())
}

// LoadFixture reads a file relative to the directory of the package under test
func LoadFixture(relativePath string) ([]byte, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	return os.ReadFile(filepath.Join(wd, filepath.FromSlash(relativePath)))
}

func callerSuiteName() string {
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		return "riskanalytics"
	}
	return filepath.Base(filepath.Dir(file))
}
