package utils

import (
	"os"
	"path/filepath"
	"runtime"
)

// GetProjectRootDir returns the absolute path of the repository root, so
// asset entries resolve no matter which directory synthesis runs from
// (cdk deploy at the root, go test inside a package).
//
// $PROJECT_ROOT overrides; otherwise walk up from this source file until a
// directory holds go.mod or cdk.json.
func GetProjectRootDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return filepath.Clean(root)
	}

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		panic("GetProjectRootDir: runtime.Caller failed (cannot determine source path)")
	}

	dir := filepath.Dir(thisFile)
	for {
		for _, marker := range []string{"go.mod", "cdk.json"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			panic("GetProjectRootDir: no go.mod or cdk.json above " + filepath.Dir(thisFile) + "; set $PROJECT_ROOT")
		}
		dir = parent
	}
}
