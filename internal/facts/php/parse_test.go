package php

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseExtensionDir(t *testing.T) {
	tests := []struct {
		name   string
		out    string
		want   string
		wantOK bool
	}{
		{
			name:   "single value",
			out:    "extension_dir => /usr/lib/php/20220829\n",
			want:   "/usr/lib/php/20220829",
			wantOK: true,
		},
		{
			name: "phpinfo local and master columns",
			out: "PHP Version => 8.2.7\n" +
				"enable_dl => On => On\n" +
				"extension_dir => /usr/lib/php/20220829 => /usr/lib/php/20220829\n" +
				"file_uploads => On => On\n",
			want:   "/usr/lib/php/20220829",
			wantOK: true,
		},
		{
			name:   "local differs from master",
			out:    "extension_dir => /opt/ext => /usr/lib/php/20220829\n",
			want:   "/opt/ext",
			wantOK: true,
		},
		{
			name:   "extra whitespace",
			out:    "extension_dir   =>   /usr/lib/php/extensions   \n",
			want:   "/usr/lib/php/extensions",
			wantOK: true,
		},
		{
			name:   "path with spaces",
			out:    "extension_dir => C:\\Program Files\\php\\ext => C:\\Program Files\\php\\ext\r\n",
			want:   "C:\\Program Files\\php\\ext",
			wantOK: true,
		},
		{
			name:   "first match wins",
			out:    "extension_dir => /first\nextension_dir => /second\n",
			want:   "/first",
			wantOK: true,
		},
		{
			name: "key must be the first token",
			out:  "sqlite3.extension_dir => no value => no value\n",
		},
		{
			name: "prefix of key does not match",
			out:  "extension_dir_extra => /nope\n",
		},
		{
			name: "no value",
			out:  "extension_dir => no value => no value\n",
		},
		{
			name: "missing separator",
			out:  "extension_dir /usr/lib/php\n",
		},
		{
			name: "empty value",
			out:  "extension_dir =>\n",
		},
		{
			name: "no line",
			out:  "PHP Version => 8.2.7\n",
		},
		{
			name: "empty output",
			out:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseExtensionDir(tt.out)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
