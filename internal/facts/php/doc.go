// Package php provides facts gathered by asking the local php interpreter
// about its own configuration.
package php
