package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/datazip-inc/rogue-records/constants"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// TimestampedFileName returns <prefix>_<YYYYMMDD>_<HHMMSS>.<ext> for the given instant.
func TimestampedFileName(prefix, extension string, at time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, at.Format(constants.FileTimestampLayout), strings.TrimPrefix(extension, "."))
}

// ParseFileTimestamp extracts the timestamp embedded by TimestampedFileName.
func ParseFileTimestamp(fileName, prefix, extension string) (time.Time, bool) {
	pattern := fileNamePattern(prefix, extension)
	matches := pattern.FindStringSubmatch(fileName)
	if matches == nil {
		return time.Time{}, false
	}

	at, err := time.ParseInLocation(constants.FileTimestampLayout, matches[1], time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return at, true
}

func fileNamePattern(prefix, extension string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`^%s_(\d{8}_\d{6})\.%s$`,
		regexp.QuoteMeta(prefix), regexp.QuoteMeta(strings.TrimPrefix(extension, "."))))
}

// LatestFile returns the path of the newest <prefix>_YYYYMMDD_HHMMSS.<ext> file
// in dir with one of the given extensions, ordered by the timestamp in the
// name rather than the file mtime.
func LatestFile(dir, prefix string, extensions ...string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to list %s: %s", dir, err)
	}

	type candidate struct {
		name string
		at   time.Time
	}
	var candidates []candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		for _, extension := range extensions {
			if at, ok := ParseFileTimestamp(entry.Name(), prefix, extension); ok {
				candidates = append(candidates, candidate{name: entry.Name(), at: at})
				break
			}
		}
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("no %s files found in %s", prefix, dir)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].at.Equal(candidates[j].at) {
			return candidates[i].name > candidates[j].name
		}
		return candidates[i].at.After(candidates[j].at)
	})

	return filepath.Join(dir, candidates[0].name), nil
}

// UnmarshalFile reads a JSON file into dest, validating it when asked to.
func UnmarshalFile(file string, dest any, validate bool) error {
	if _, err := os.Stat(file); err != nil {
		return fmt.Errorf("file not found: %s", err)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read file[%s]: %s", file, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal file[%s]: %s", file, err)
	}

	if validate {
		return Validate(dest)
	}
	return nil
}

// Unmarshal converts from into to through a JSON round trip; used to turn the
// generic `upload` section of a destination config into its typed struct.
func Unmarshal(from, to any) error {
	data, err := json.Marshal(from)
	if err != nil {
		return fmt.Errorf("error marshaling object: %s", err)
	}

	if err := json.Unmarshal(data, to); err != nil {
		return fmt.Errorf("error unmarshaling object: %s", err)
	}
	return nil
}

// IsValidSubcommand reports whether cmd names one of the registered commands.
func IsValidSubcommand(available []*cobra.Command, cmd string) bool {
	for _, s := range available {
		if cmd == s.Name() || cmd == "help" || cmd == "completion" {
			return true
		}
		for _, alias := range s.Aliases {
			if alias == cmd {
				return true
			}
		}
	}
	return false
}
