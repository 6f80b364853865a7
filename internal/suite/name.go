package suite

import (
	"path/filepath"
	"strings"
)

// nameComponents is the number of dot-separated components that make up a
// test name. Test directories carry extra components after the name, such as
// the generation tag and the test id:
//
//	ERS_D.f10_f10_mg37.I2000Clm50BgcCrop.derecho_intel.clm-default.GC.0618-145127de_int
const nameComponents = 5

// TestName derives the test name from a test directory path.
func TestName(path string) string {
	parts := strings.Split(filepath.Base(path), ".")
	if len(parts) > nameComponents {
		parts = parts[:nameComponents]
	}
	return strings.Join(parts, ".")
}
