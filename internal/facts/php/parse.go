package php

import (
	"bufio"
	"strings"
)

const (
	extensionDirKey = "extension_dir"
	// noValue is how phpinfo() renders a directive without a value.
	noValue = "no value"
	sep     = "=>"
)

// ParseExtensionDir extracts the extension_dir value from phpinfo() text
// output. Lines have the shape
//
//	extension_dir => /usr/lib/php/20220829 => /usr/lib/php/20220829
//
// where the first value is the local setting and the second the master one.
// The local value is returned. ok is false when no line's first token is
// extension_dir or the value is empty.
func ParseExtensionDir(out string) (string, bool) {
	sc := bufio.NewScanner(strings.NewReader(out))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		line := sc.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] != extensionDirKey {
			continue
		}

		parts := strings.Split(line, sep)
		if len(parts) < 2 {
			return "", false
		}

		value := strings.TrimSpace(parts[1])
		if value == "" || value == noValue {
			return "", false
		}
		return value, true
	}

	return "", false
}
