//go:build mage

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main contains Mage build targets for alert-processor developer tooling.
package main

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/magefile/mage/mg"
)

// projectDirs lists the folders the processor reads from and writes to.
var projectDirs = []string{
	"PDF",
	"TXT",
}

// Init creates the input and output folders in the working directory.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Bulletin folders initialized.")
	return nil
}

const (
	binDir  = "bin"
	binName = "alert-processor"
	cmdPkg  = "./cmd/alert-processor"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := run("go", "build", "-o", out, cmdPkg); err != nil {
		return err
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests of every package.
func Test() error {
	return run("go", "test", "./...")
}

// Install copies the CLI binary into GOBIN (or GOPATH/bin).
func Install() error {
	mg.Deps(Build)

	dest := os.Getenv("GOBIN")
	if dest == "" {
		out, err := exec.Command("go", "env", "GOPATH").Output()
		if err != nil {
			return fmt.Errorf("go env GOPATH: %w", err)
		}
		dest = filepath.Join(strings.TrimSpace(string(out)), "bin")
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}

	data, err := os.ReadFile(filepath.Join(binDir, binName))
	if err != nil {
		return err
	}
	target := filepath.Join(dest, binName)
	if err := os.WriteFile(target, data, 0o755); err != nil {
		return fmt.Errorf("installing %s: %w", target, err)
	}
	fmt.Printf("Installed %s\n", target)
	return nil
}

func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %v: %w", name, args, err)
	}
	return nil
}

// Stats prints Go line counts per top-level package and the number of
// bulletins waiting in PDF/ and converted in TXT/.
func Stats() error {
	counts := map[string][2]int{}
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != "." && (strings.HasPrefix(d.Name(), ".") || strings.HasPrefix(d.Name(), "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		n, err := nonBlankLines(path)
		if err != nil {
			return err
		}
		pkg := packageOf(path)
		c := counts[pkg]
		if strings.HasSuffix(path, "_test.go") {
			c[1] += n
		} else {
			c[0] += n
		}
		counts[pkg] = c
		return nil
	})
	if err != nil {
		return err
	}

	pkgs := make([]string, 0, len(counts))
	for p := range counts {
		pkgs = append(pkgs, p)
	}
	sort.Strings(pkgs)

	fmt.Printf("%-28s  %6s  %6s\n", "Package", "Prod", "Test")
	for _, p := range pkgs {
		fmt.Printf("%-28s  %6d  %6d\n", p, counts[p][0], counts[p][1])
	}
	for _, dir := range projectDirs {
		fmt.Printf("Files in %s: %d\n", dir, countFiles(dir))
	}
	return nil
}

// packageOf maps a file to its package directory, e.g. internal/monitor.
func packageOf(path string) string {
	dir := filepath.ToSlash(filepath.Dir(path))
	parts := strings.Split(dir, "/")
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, "/")
}

func nonBlankLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			n++
		}
	}
	return n, sc.Err()
}

// countFiles returns the number of regular files in dir, or 0 when it is missing.
func countFiles(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	n := 0
	for _, e := range entries {
		if e.Type().IsRegular() {
			n++
		}
	}
	return n
}
