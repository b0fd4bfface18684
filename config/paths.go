package config

import (
	"log/slog"
	"os"
	"path/filepath"
)

// ExecutableDir is the directory holding the running binary, with symlinks
// resolved. It falls back to the working directory.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		slog.DebugContext(packageCtx(), "Could not locate executable", "error", err)

		return "."
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Dir(exe)
}

// SearchPaths lists the directories searched for the main configuration,
// most specific first.
func SearchPaths() []string {
	paths := []string{filepath.Join(ExecutableDir(), "cnf")}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", AppName), home)
	}

	return append(paths, ".")
}

// ResolvePath makes a relative path relative to baseDir.
func ResolvePath(path, baseDir string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}

	slog.DebugContext(packageCtx(), "Resolving relative path", "path", path, "base", baseDir)

	return filepath.Join(baseDir, path)
}
