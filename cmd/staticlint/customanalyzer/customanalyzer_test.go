package customanalyzer

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestOsExitInMainAnalyzer(t *testing.T) {
	// expectations live next to the offending calls as // want comments
	analysistest.Run(t, analysistest.TestData(), OsExitInMainAnalyzer, "./...")
}
