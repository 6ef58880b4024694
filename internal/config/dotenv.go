package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"band-practice-go/pkg/logger"
)

const dotenvFilename = ".env"

type dotenvEntry struct {
	key   string
	value string
}

// loadDotEnv applies the nearest .env file (or the one named by DOTENV_PATH)
// to the process environment. Variables already set win. A missing file is
// not an error.
func loadDotEnv(log logger.Logger) error {
	path := os.Getenv("DOTENV_PATH")
	if path == "" {
		found, ok := findUp(dotenvFilename)
		if !ok {
			log.Debug("dotenv: no .env file found")
			return nil
		}
		path = found
	}

	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug("dotenv: file not found", "path", path)
		return nil
	}
	if err != nil {
		return err
	}
	defer file.Close()

	entries, err := readDotEnv(file)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	loaded, skipped := 0, 0
	for _, entry := range entries {
		if _, exists := os.LookupEnv(entry.key); exists {
			skipped++
			continue
		}
		if err := os.Setenv(entry.key, entry.value); err != nil {
			return err
		}
		loaded++
	}

	log.Info("dotenv: loaded variables", "path", path, "loaded", loaded, "skipped", skipped)
	return nil
}

// findUp looks for name in the working directory and each parent.
func findUp(name string) (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func readDotEnv(r io.Reader) ([]dotenvEntry, error) {
	var entries []dotenvEntry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		key, value, ok := parseDotEnvLine(scanner.Text())
		if ok {
			entries = append(entries, dotenvEntry{key: key, value: value})
		}
	}
	return entries, scanner.Err()
}

// parseDotEnvLine handles KEY=value, an optional "export " prefix, quoted
// values and trailing " # comments" on unquoted values.
func parseDotEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))

	key, value, found := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", "", false
	}
	value = strings.TrimSpace(value)

	if n := len(value); n >= 2 && (value[0] == '"' || value[0] == '\'') && value[n-1] == value[0] {
		if value[0] == '"' {
			if unquoted, err := strconv.Unquote(value); err == nil {
				return key, unquoted, true
			}
		}
		return key, value[1 : n-1], true
	}

	if idx := strings.Index(value, " #"); idx >= 0 {
		value = strings.TrimSpace(value[:idx])
	} else if idx := strings.Index(value, "\t#"); idx >= 0 {
		value = strings.TrimSpace(value[:idx])
	}
	return key, value, true
}
