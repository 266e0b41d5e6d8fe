package credentials

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
)

// Credentials identify the station to the upload endpoint.
// Immutable after parsing.
type Credentials struct {
	ID  string
	Key string
}

// The identifier must not contain a comma; the key is everything after "KEY:"
// up to the end of the line, commas included.
var lineRe = regexp.MustCompile(`^ID:([^,]+),KEY:(.*)$`)

// Load reads the first line of the file at path and parses it as credentials.
func Load(path string) (Credentials, error) {
	f, err := os.Open(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("open credentials file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	var line string
	if scanner.Scan() {
		line = scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		return Credentials{}, fmt.Errorf("read credentials file: %w", err)
	}

	return Parse(line)
}

// Parse parses a single "ID:<identifier>,KEY:<secret>" line.
func Parse(line string) (Credentials, error) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return Credentials{}, fmt.Errorf("invalid credentials: %s", line)
	}
	return Credentials{ID: m[1], Key: m[2]}, nil
}
